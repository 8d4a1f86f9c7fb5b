package reflow

import (
	"fmt"

	"github.com/signadot/tabflow/debug"
)

type LineKind int

const (
	// PassLine is a line copied from a passthrough unit.
	PassLine LineKind = iota
	// LaneLine is a lane of a block, whole or a segment of it.
	LaneLine
	// LabelLine is a "--- Part k/m ---" label.
	LabelLine
	// BlankLine separates segments and blocks.
	BlankLine
)

func (k LineKind) String() string {
	switch k {
	case PassLine:
		return "pass"
	case LaneLine:
		return "lane"
	case LabelLine:
		return "label"
	case BlankLine:
		return "blank"
	default:
		return "unknown"
	}
}

// Line is one output line.
type Line struct {
	Kind LineKind
	Text string
}

// Span is the column range [Start, End) of segment Index out of Count.
type Span struct {
	Index int
	Count int
	Start int
	End   int
}

func (s Span) Label() string {
	return fmt.Sprintf("--- Part %d/%d ---", s.Index+1, s.Count)
}

// Width returns the length of the longest line of u.
func (c Config) Width(u Unit) int {
	w := 0
	for _, line := range u.Lines {
		w = max(w, c.Measure.Len(line))
	}
	return w
}

// Plan returns the segments a block is cut into, or nil if the block fits
// in MaxWidth or u is not a block.
//
// Count is always ceil(Width/SegmentWidth), but with [FirstLane]
// termination fewer spans may be returned: a span starting at or past the
// end of the first lane is dropped along with all later ones.
func (c Config) Plan(u Unit) []Span {
	if u.Kind != BlockUnit || len(u.Lines) == 0 {
		return nil
	}
	width := c.Width(u)
	if width <= c.MaxWidth {
		return nil
	}
	count := (width + c.SegmentWidth - 1) / c.SegmentWidth
	limit := width
	if c.Termination == FirstLane {
		limit = c.Measure.Len(u.Lines[0])
	}
	spans := make([]Span, 0, count)
	for s := 0; s < count; s++ {
		start := s * c.SegmentWidth
		if start >= limit {
			break
		}
		spans = append(spans, Span{
			Index: s,
			Count: count,
			Start: start,
			End:   min(start+c.SegmentWidth, width),
		})
	}
	return spans
}

// Rewrap renders a unit. A passthrough unit yields its line. A block that
// fits yields its lanes unchanged; a wider block yields its segments,
// labelled when there is more than one, separated by blank lines. Every
// block is followed by a blank line, so a block cut short by [FirstLane]
// termination ends with two: one after its last emitted segment and one
// after the block.
func (c Config) Rewrap(u Unit) []Line {
	if u.Kind == PassUnit {
		res := make([]Line, 0, len(u.Lines))
		for _, line := range u.Lines {
			res = append(res, Line{Kind: PassLine, Text: line})
		}
		return res
	}
	spans := c.Plan(u)
	if len(spans) == 0 {
		res := make([]Line, 0, len(u.Lines)+1)
		for _, line := range u.Lines {
			res = append(res, Line{Kind: LaneLine, Text: line})
		}
		return append(res, Line{Kind: BlankLine})
	}
	if debug.Rewrap() {
		debug.Logf("rewrap: block at line %d width %d -> %d of %d segments\n",
			u.Start+1, c.Width(u), len(spans), spans[0].Count)
	}
	lanes := make([]text, len(u.Lines))
	for i, line := range u.Lines {
		lanes[i] = c.Measure.split(line)
	}
	res := make([]Line, 0, len(spans)*(len(lanes)+2)+1)
	for _, span := range spans {
		if span.Count > 1 {
			res = append(res, Line{Kind: LabelLine, Text: span.Label()})
		}
		for _, lane := range lanes {
			res = append(res, Line{Kind: LaneLine, Text: c.cut(lane, span)})
		}
		// follows every segment but the nominal last, emitted or not.
		if span.Index < span.Count-1 {
			res = append(res, Line{Kind: BlankLine})
		}
	}
	return append(res, Line{Kind: BlankLine})
}

// cut returns a lane's part of a segment. The first segment is the raw
// line sliced at the span. Later segments are the lane prefix followed by
// SegmentWidth units of content, starting at the span's start shifted left
// by the prefix length, so consecutive segments cover the content without
// gaps.
func (c Config) cut(lane text, span Span) string {
	if span.Index == 0 {
		return lane.slice(span.Start, span.End)
	}
	sep := lane.index(c.Separator)
	if sep < 0 {
		return lane.slice(span.Start, span.End)
	}
	prefix := lane.slice(0, sep+1)
	content := lane[sep+1:]
	cs := max(span.Start-sep-1, 0)
	if cs >= len(content) {
		return prefix
	}
	return prefix + content.slice(cs, cs+c.SegmentWidth)
}

package reflow

import (
	"strings"

	"github.com/signadot/tabflow/debug"
)

type UnitKind int

const (
	PassUnit UnitKind = iota
	BlockUnit
)

func (k UnitKind) String() string {
	switch k {
	case PassUnit:
		return "pass"
	case BlockUnit:
		return "block"
	default:
		return "unknown"
	}
}

// Unit is either a lane block or a single passthrough line.
type Unit struct {
	Kind UnitKind
	// Start is the 0 based index of the unit's first line in the input.
	Start int
	// Lines holds LaneCount lines for a block and one line for a
	// passthrough unit.
	Lines []string
}

// SplitLines splits text on newlines. Trailing newlines do not produce
// empty trailing lines and a carriage return ending a line is dropped.
func SplitLines(text string) []string {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Segment groups lines into units. Each run of LaneCount consecutive lines
// containing the separator becomes a block; any other line is passed
// through. Runs are matched greedily from the top, so a run of 8
// separator lines with LaneCount 6 yields one block and two passthrough
// lines.
func (c Config) Segment(lines []string) []Unit {
	n := c.LaneCount
	units := make([]Unit, 0, len(lines))
	for i := 0; i < len(lines); {
		if i+n <= len(lines) && c.allLanes(lines[i:i+n]) {
			units = append(units, Unit{Kind: BlockUnit, Start: i, Lines: lines[i : i+n]})
			i += n
			continue
		}
		units = append(units, Unit{Kind: PassUnit, Start: i, Lines: lines[i : i+1]})
		i++
	}
	if debug.Segment() {
		blocks := 0
		for i := range units {
			if units[i].Kind == BlockUnit {
				blocks++
			}
		}
		debug.Logf("segment: %d lines -> %d units, %d blocks\n", len(lines), len(units), blocks)
	}
	return units
}

func (c Config) allLanes(lines []string) bool {
	for _, line := range lines {
		if !strings.ContainsRune(line, c.Separator) {
			return false
		}
	}
	return true
}

package reflow

import (
	"strings"

	"github.com/signadot/tabflow/sanitize"
)

// Lines sanitizes text, groups it into units and rewraps each unit.
func Lines(text string, cfg Config) ([]Line, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	units := cfg.Segment(SplitLines(sanitize.String(text)))
	var res []Line
	for _, u := range units {
		res = append(res, cfg.Rewrap(u)...)
	}
	return res, nil
}

// Reflow returns text rewrapped according to cfg.
func Reflow(text string, cfg Config) (string, error) {
	lines, err := Lines(text, cfg)
	if err != nil {
		return "", err
	}
	return Assemble(lines), nil
}

// Assemble joins lines with newlines. No newline is added after the last
// line.
func Assemble(lines []Line) string {
	var b strings.Builder
	for i := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(lines[i].Text)
	}
	return b.String()
}

// Units sanitizes and segments text without rewrapping it.
func Units(text string, cfg Config) ([]Unit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg.Segment(SplitLines(sanitize.String(text))), nil
}

// Summary describes a unit and what Rewrap does with it.
type Summary struct {
	Kind string `json:"kind" yaml:"kind"`
	// Line is the 1 based input line of the unit's first line.
	Line  int `json:"line" yaml:"line"`
	Lanes int `json:"lanes" yaml:"lanes"`
	Width int `json:"width" yaml:"width"`
	// Parts is the number of segments emitted, 1 for an unsplit block
	// and 0 for a passthrough line.
	Parts    int      `json:"parts" yaml:"parts"`
	Prefixes []string `json:"prefixes,omitempty" yaml:"prefixes,omitempty"`
}

func (c Config) Summarize(u Unit) Summary {
	s := Summary{
		Kind:  u.Kind.String(),
		Line:  u.Start + 1,
		Width: c.Width(u),
	}
	if u.Kind != BlockUnit {
		return s
	}
	s.Lanes = len(u.Lines)
	s.Parts = max(len(c.Plan(u)), 1)
	s.Prefixes = make([]string, len(u.Lines))
	for i, line := range u.Lines {
		if j := strings.IndexRune(line, c.Separator); j >= 0 {
			s.Prefixes[i] = line[:j+len(string(c.Separator))]
		}
	}
	return s
}

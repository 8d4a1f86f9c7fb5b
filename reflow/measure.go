package reflow

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Measure is the unit in which line lengths, widths and slice offsets are
// counted.
type Measure int

const (
	// Runes counts Unicode code points.
	Runes Measure = iota
	// Graphemes counts user perceived characters, so a base letter and its
	// combining marks occupy one column and are never split apart.
	Graphemes
)

func ParseMeasure(v string) (Measure, error) {
	m, ok := map[string]Measure{
		"r":         Runes,
		"rune":      Runes,
		"runes":     Runes,
		"g":         Graphemes,
		"grapheme":  Graphemes,
		"graphemes": Graphemes,
	}[strings.ToLower(v)]
	if ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: unknown measure %q", ErrConfig, v)
}

func (m Measure) String() string {
	d, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (m Measure) MarshalText() ([]byte, error) {
	switch m {
	case Runes:
		return []byte("runes"), nil
	case Graphemes:
		return []byte("graphemes"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a measure>", m)
	}
}

func (m *Measure) UnmarshalText(d []byte) error {
	pm, err := ParseMeasure(string(d))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}

// Len returns the length of s in m.
func (m Measure) Len(s string) int {
	switch m {
	case Graphemes:
		return uniseg.GraphemeClusterCount(s)
	default:
		return utf8.RuneCountInString(s)
	}
}

// text is a line broken into measure units.
type text []string

func (m Measure) split(s string) text {
	switch m {
	case Graphemes:
		res := make(text, 0, len(s))
		g := uniseg.NewGraphemes(s)
		for g.Next() {
			res = append(res, g.Str())
		}
		return res
	default:
		// byte ranges, not string(r): invalid UTF-8 stays as it was.
		res := make(text, 0, len(s))
		for i := 0; i < len(s); {
			_, n := utf8.DecodeRuneInString(s[i:])
			res = append(res, s[i:i+n])
			i += n
		}
		return res
	}
}

// slice returns units [i, j) clamped to the text, the way a string slice
// with out of range bounds would be if it did not panic.
func (t text) slice(i, j int) string {
	if i < 0 {
		i = 0
	}
	if j > len(t) {
		j = len(t)
	}
	if i >= j {
		return ""
	}
	return strings.Join(t[i:j], "")
}

// index returns the unit index of the first separator, or -1.
func (t text) index(sep rune) int {
	for i, u := range t {
		if strings.ContainsRune(u, sep) {
			return i
		}
	}
	return -1
}

// Termination selects when a split block stops emitting segments.
type Termination int

const (
	// FirstLane stops once a segment would start at or past the end of the
	// block's first lane. Lanes longer than the first lane can lose their
	// tail; this matches the renderers this package was built against,
	// which always emit equal length lanes.
	FirstLane Termination = iota
	// LongestLane emits every segment needed to cover the longest lane.
	LongestLane
)

func ParseTermination(v string) (Termination, error) {
	t, ok := map[string]Termination{
		"first":        FirstLane,
		"first-lane":   FirstLane,
		"longest":      LongestLane,
		"longest-lane": LongestLane,
	}[strings.ToLower(v)]
	if ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: unknown termination %q", ErrConfig, v)
}

func (t Termination) String() string {
	d, err := t.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (t Termination) MarshalText() ([]byte, error) {
	switch t {
	case FirstLane:
		return []byte("first-lane"), nil
	case LongestLane:
		return []byte("longest-lane"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a termination>", t)
	}
}

func (t *Termination) UnmarshalText(d []byte) error {
	pt, err := ParseTermination(string(d))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}

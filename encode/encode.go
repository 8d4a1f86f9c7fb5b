package encode

import (
	"io"
	"strings"

	"github.com/signadot/tabflow/reflow"
)

// Encode writes lines to w, each followed by a newline.
func Encode(lines []reflow.Line, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{sep: reflow.DefaultSeparator}
	for _, opt := range opts {
		opt(es)
	}
	var b strings.Builder
	for i := range lines {
		line := &lines[i]
		if es.Color == nil {
			b.WriteString(line.Text)
		} else {
			encodeLine(&b, line, es)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func encodeLine(b *strings.Builder, line *reflow.Line, es *EncState) {
	switch line.Kind {
	case reflow.LaneLine:
		encodeLane(b, line.Text, es)
	case reflow.BlankLine:
		b.WriteString(line.Text)
	default:
		if line.Text != "" {
			b.WriteString(es.Color(line.Kind, ValueColor, line.Text))
		}
	}
}

// encodeLane colors the lane name, the separator, fret numbers and filler
// separately.
func encodeLane(b *strings.Builder, s string, es *EncState) {
	k := reflow.LaneLine
	if i := strings.IndexRune(s, es.sep); i >= 0 {
		n := len(string(es.sep))
		if i > 0 {
			b.WriteString(es.Color(k, PrefixColor, s[:i]))
		}
		b.WriteString(es.Color(k, SepColor, s[i:i+n]))
		s = s[i+n:]
	}
	for len(s) > 0 {
		j := 1
		digit := isDigit(s[0])
		for j < len(s) && isDigit(s[j]) == digit {
			j++
		}
		attr := ValueColor
		if digit {
			attr = FretColor
		}
		b.WriteString(es.Color(k, attr, s[:j]))
		s = s[j:]
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

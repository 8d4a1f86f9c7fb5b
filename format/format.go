package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/tabflow/reflow"

	"github.com/goccy/go-yaml"
)

type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":    TextFormat,
		"text": TextFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Write writes summaries to w in format f.
func Write(w io.Writer, f Format, summaries []reflow.Summary) error {
	switch f {
	case YAMLFormat:
		if len(summaries) == 0 {
			_, err := io.WriteString(w, "[]\n")
			return err
		}
		d, err := yaml.Marshal(summaries)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case JSONFormat:
		if summaries == nil {
			summaries = []reflow.Summary{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	case TextFormat:
		return writeText(w, summaries)
	default:
		return fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}

func writeText(w io.Writer, summaries []reflow.Summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-6s %-5s %-5s %-5s %-5s %s\n", "LINE", "KIND", "LANES", "WIDTH", "PARTS", "PREFIXES")
	for _, s := range summaries {
		fmt.Fprintf(&b, "%-6d %-5s %-5d %-5d %-5d %s\n",
			s.Line, s.Kind, s.Lanes, s.Width, s.Parts, strings.Join(s.Prefixes, " "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

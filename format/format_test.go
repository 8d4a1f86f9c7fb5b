package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/tabflow/reflow"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

var summaries = []reflow.Summary{
	{Kind: "pass", Line: 1, Width: 7},
	{Kind: "block", Line: 2, Lanes: 2, Width: 120, Parts: 2, Prefixes: []string{"e|", "B|"}},
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"t": TextFormat, "yaml": YAMLFormat, "j": JSONFormat} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("json")); err != nil || f != JSONFormat {
		t.Errorf("UnmarshalText: %v %v", f, err)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, JSONFormat, summaries); err != nil {
		t.Fatal(err)
	}
	var got []reflow.Summary
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(summaries, got); diff != "" {
		t.Errorf("json (-want +got):\n%s", diff)
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, YAMLFormat, summaries); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "kind: block") {
		t.Errorf("unexpected yaml %q", buf.String())
	}
	var got []reflow.Summary
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(summaries, got); diff != "" {
		t.Errorf("yaml (-want +got):\n%s", diff)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, TextFormat, summaries); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", lines)
	}
	if !strings.HasPrefix(lines[2], "2      block 2") || !strings.HasSuffix(lines[2], "e| B|") {
		t.Errorf("unexpected row %q", lines[2])
	}
}

func TestWriteEmpty(t *testing.T) {
	for _, f := range []Format{YAMLFormat, JSONFormat} {
		var buf bytes.Buffer
		if err := Write(&buf, f, nil); err != nil {
			t.Fatal(err)
		}
		if got := strings.TrimSpace(buf.String()); got != "[]" {
			t.Errorf("%s: got %q", f, got)
		}
	}
}

package query

import (
	"errors"
	"testing"

	"github.com/signadot/tabflow/reflow"
)

var (
	pass  = reflow.Summary{Kind: "pass", Line: 1, Width: 5}
	short = reflow.Summary{Kind: "block", Line: 2, Lanes: 6, Width: 40, Parts: 1, Prefixes: []string{"e|", "B|", "G|", "D|", "A|", "E|"}}
	wide  = reflow.Summary{Kind: "block", Line: 9, Lanes: 4, Width: 200, Parts: 3, Prefixes: []string{"G|", "D|", "A|", "E|"}}
)

func TestMatch(t *testing.T) {
	tests := []struct {
		src  string
		want [3]bool
	}{
		{`kind == "block"`, [3]bool{false, true, true}},
		{`parts > 1`, [3]bool{false, false, true}},
		{`width <= 40 && line > 1`, [3]bool{false, true, false}},
		{`"e|" in prefixes`, [3]bool{false, true, false}},
		{`lanes == 4 || kind == "pass"`, [3]bool{true, false, true}},
	}
	for _, tt := range tests {
		f, err := Compile(tt.src)
		if err != nil {
			t.Fatalf("compile %q: %v", tt.src, err)
		}
		for i, s := range []reflow.Summary{pass, short, wide} {
			got, err := f.Match(s)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want[i] {
				t.Errorf("%q on %+v = %v, want %v", tt.src, s, got, tt.want[i])
			}
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`width +`, `width`, `nosuchfield > 1`} {
		if _, err := Compile(src); !errors.Is(err, ErrQuery) {
			t.Errorf("Compile(%q): expected ErrQuery, got %v", src, err)
		}
	}
}

func TestNilFilter(t *testing.T) {
	var f *Filter
	ok, err := f.Match(pass)
	if err != nil || !ok {
		t.Errorf("nil filter: %v %v", ok, err)
	}
}

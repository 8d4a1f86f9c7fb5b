package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/signadot/tabflow/format"
	"github.com/signadot/tabflow/query"
	"github.com/signadot/tabflow/reflow"
	"github.com/signadot/tabflow/tabsource"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func lanes(content string) string {
	var res []string
	for _, p := range []string{"e|", "B|", "G|", "D|", "A|", "E|"} {
		res = append(res, p+content)
	}
	return strings.Join(res, "\n")
}

func TestReflowTo(t *testing.T) {
	tab := "\x1b[1mIntro\x1b[0m\n" + lanes(strings.Repeat("-0-", 40)) + "\n"
	var buf bytes.Buffer
	if err := reflowTo(&buf, tab, reflow.Default()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Intro\n--- Part 1/2 ---\ne|") {
		t.Errorf("unexpected start %q", out[:min(len(out), 40)])
	}
	if !strings.HasSuffix(out, "\n\n") {
		t.Errorf("expected block separator and final newline, got %q", out[len(out)-10:])
	}
}

func TestReflowToBadConfig(t *testing.T) {
	var buf bytes.Buffer
	err := reflowTo(&buf, "e|-", reflow.New(reflow.WithLaneCount(0)))
	if !errors.Is(err, reflow.ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
}

func TestBlocksTo(t *testing.T) {
	tab := "title\n" + lanes("-1-") + "\n" + lanes(strings.Repeat("-", 150))
	filter, err := query.Compile(`kind == "block"`)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := blocksTo(&buf, tab, reflow.Default(), format.JSONFormat, filter); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"line": 2`, `"line": 8`, `"parts": 2`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %s in %s", want, buf.String())
		}
	}
	if strings.Contains(buf.String(), `"kind": "pass"`) {
		t.Errorf("filter let a passthrough line through: %s", buf.String())
	}
}

func TestDiffTo(t *testing.T) {
	var buf bytes.Buffer
	changed, err := diffTo(&buf, "just text\n", reflow.Default(), false)
	if err != nil || changed || buf.Len() != 0 {
		t.Errorf("plain text should not change: %v %v %q", changed, err, buf.String())
	}
	changed, err = diffTo(&buf, lanes("-3-"), reflow.Default(), false)
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("expected the block separator to be reported")
	}
	if got := buf.String(); !strings.HasSuffix(got, "\n+\n") {
		t.Errorf("expected an inserted blank line, got %q", got)
	}
}

func TestDiffLoop(t *testing.T) {
	tabs := []string{lanes("-1-"), lanes("-1-"), lanes("-2-")}
	calls := 0
	src := tabsource.SourceFunc(func(context.Context) (string, error) {
		tab := tabs[calls]
		calls++
		return tab, nil
	})
	cfg := &DiffConfig{LoopEvery: time.Millisecond, LoopLim: 3}
	var buf bytes.Buffer
	if err := diffLoop(context.Background(), cfg, &buf, reflow.Default(), src, false); err != nil {
		t.Fatal(err)
	}
	if calls != 3 {
		t.Errorf("ran %d times, want 3", calls)
	}
	if n := strings.Count(buf.String(), "# difference found at"); n != 2 {
		t.Errorf("got %d differences, want 2:\n%s", n, buf.String())
	}
	if !strings.Contains(buf.String(), "-e|-1-\n") || !strings.Contains(buf.String(), "+e|-2-\n") {
		t.Errorf("missing lane change in\n%s", buf.String())
	}
}

func TestApply(t *testing.T) {
	cfg := &MainConfig{Lanes: 4, Width: 60, Sep: ":", Measure: "graphemes", Stop: "longest"}
	given := map[string]bool{"lanes": true, "width": true}
	rc := reflow.Default()
	if err := cfg.apply(&rc, func(n string) bool { return given[n] }); err != nil {
		t.Fatal(err)
	}
	want := reflow.Config{
		LaneCount:    4,
		MaxWidth:     60,
		SegmentWidth: 60,
		Separator:    ':',
		Measure:      reflow.Graphemes,
		Termination:  reflow.LongestLane,
	}
	if diff := cmp.Diff(want, rc); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}

	cfg = &MainConfig{Width: 60, Segment: 50}
	given = map[string]bool{"width": true, "segment": true}
	rc = reflow.Default()
	if err := cfg.apply(&rc, func(n string) bool { return given[n] }); err != nil {
		t.Fatal(err)
	}
	if rc.MaxWidth != 60 || rc.SegmentWidth != 50 {
		t.Errorf("explicit segment width lost: %+v", rc)
	}
}

func TestApplyUsageErrors(t *testing.T) {
	for _, cfg := range []*MainConfig{{Sep: "||"}, {Measure: "cells"}, {Stop: "never"}} {
		rc := reflow.Default()
		err := cfg.apply(&rc, func(string) bool { return false })
		if !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%+v: expected usage error, got %v", cfg, err)
		}
	}
}

func TestColorsNonTerminal(t *testing.T) {
	cfg := &MainConfig{}
	if cfg.colors(&bytes.Buffer{}) {
		t.Error("buffer should not get colors")
	}
	cfg.Color = true
	if !cfg.colors(&bytes.Buffer{}) {
		t.Error("-color should force colors")
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/tabflow/reflow"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "tabflow.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadEnv("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(reflow.Default(), cfg); diff != "" {
		t.Errorf("defaults (-want +got):\n%s", diff)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	p := writeFile(t, `
laneCount: 4
maxWidth: 100
segmentWidth: 96
separator: ":"
measure: graphemes
`)
	cfg, err := LoadEnv(p, []string{
		"TABFLOW_MAX_WIDTH=120",
		"TABFLOW_TERMINATION=longest-lane",
		"UNRELATED=1",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := reflow.Config{
		LaneCount:    4,
		MaxWidth:     120,
		SegmentWidth: 96,
		Separator:    ':',
		Measure:      reflow.Graphemes,
		Termination:  reflow.LongestLane,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadFileFromEnv(t *testing.T) {
	p := writeFile(t, "laneCount: 7\n")
	cfg, err := LoadEnv("", []string{EnvConfigFile + "=" + p})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LaneCount != 7 {
		t.Errorf("lane count %d, want 7", cfg.LaneCount)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		environ []string
		want    error
	}{
		{name: "unknown key", body: "lanes: 6\n", want: ErrConfigFile},
		{name: "bad yaml", body: "laneCount: [\n", want: ErrConfigFile},
		{name: "zero width", body: "maxWidth: 0\n", want: reflow.ErrConfig},
		{name: "long separator", body: "separator: '||'\n", want: reflow.ErrConfig},
		{name: "bad measure", body: "measure: cells\n", want: reflow.ErrConfig},
		{name: "env not int", environ: []string{"TABFLOW_LANE_COUNT=six"}, want: reflow.ErrConfig},
		{name: "env negative", environ: []string{"TABFLOW_SEGMENT_WIDTH=-3"}, want: reflow.ErrConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ""
			if tt.body != "" {
				p = writeFile(t, tt.body)
			}
			_, err := LoadEnv(p, tt.environ)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadEnv(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	if !errors.Is(err, ErrConfigFile) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestMarshalParses(t *testing.T) {
	cfg := reflow.New(reflow.WithLaneCount(4), reflow.WithSeparator('|'), reflow.WithMeasure(reflow.Graphemes))
	d, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	f, err := Parse(d)
	if err != nil {
		t.Fatalf("parse %q: %v", d, err)
	}
	got := reflow.Default()
	if err := f.Apply(&got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

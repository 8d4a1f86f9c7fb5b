// Package config loads a reflow.Config from a yaml file and the
// environment.
//
// Values are layered: reflow defaults, then the file, then TABFLOW_*
// environment variables. Command line flags are applied on top by the
// caller.
//
//	laneCount: 4
//	maxWidth: 100
//	segmentWidth: 96
//	separator: "|"
//	measure: graphemes
//	termination: longest-lane
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/tabflow/debug"
	"github.com/signadot/tabflow/reflow"

	"github.com/goccy/go-yaml"
)

var ErrConfigFile = errors.New("config file error")

// EnvConfigFile names a config file used when Load is given no path.
const EnvConfigFile = "TABFLOW_CONFIG"

// File is the on disk form. Unset fields keep their previous value.
type File struct {
	LaneCount    *int    `yaml:"laneCount,omitempty"`
	MaxWidth     *int    `yaml:"maxWidth,omitempty"`
	SegmentWidth *int    `yaml:"segmentWidth,omitempty"`
	Separator    *string `yaml:"separator,omitempty"`
	Measure      *string `yaml:"measure,omitempty"`
	Termination  *string `yaml:"termination,omitempty"`
}

// Load returns the validated configuration from path and the process
// environment.
func Load(path string) (reflow.Config, error) {
	return LoadEnv(path, os.Environ())
}

// LoadEnv is Load with an explicit environment in os.Environ form.
func LoadEnv(path string, environ []string) (reflow.Config, error) {
	env := envMap(environ)
	if path == "" {
		path = env[EnvConfigFile]
	}
	cfg := reflow.Default()
	if path != "" {
		d, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("%w: %w", ErrConfigFile, err)
		}
		f, err := Parse(d)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
		if err := f.Apply(&cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}
	f, err := fromEnv(env)
	if err != nil {
		return cfg, err
	}
	if err := f.Apply(&cfg); err != nil {
		return cfg, fmt.Errorf("environment: %w", err)
	}
	if debug.Config() {
		debug.Logf("config: %s lanes=%d max=%d segment=%d sep=%q measure=%s stop=%s\n",
			path, cfg.LaneCount, cfg.MaxWidth, cfg.SegmentWidth, cfg.Separator, cfg.Measure, cfg.Termination)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes a yaml config document. Unknown keys are an error.
func Parse(d []byte) (*File, error) {
	f := &File{}
	if err := yaml.UnmarshalWithOptions(d, f, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFile, err)
	}
	return f, nil
}

// Apply sets the fields of f present in the file on cfg.
func (f *File) Apply(cfg *reflow.Config) error {
	if f.LaneCount != nil {
		cfg.LaneCount = *f.LaneCount
	}
	if f.MaxWidth != nil {
		cfg.MaxWidth = *f.MaxWidth
	}
	if f.SegmentWidth != nil {
		cfg.SegmentWidth = *f.SegmentWidth
	}
	if f.Separator != nil {
		r, err := ParseSeparator(*f.Separator)
		if err != nil {
			return err
		}
		cfg.Separator = r
	}
	if f.Measure != nil {
		m, err := reflow.ParseMeasure(*f.Measure)
		if err != nil {
			return err
		}
		cfg.Measure = m
	}
	if f.Termination != nil {
		t, err := reflow.ParseTermination(*f.Termination)
		if err != nil {
			return err
		}
		cfg.Termination = t
	}
	return nil
}

// ParseSeparator accepts exactly one character.
func ParseSeparator(v string) (rune, error) {
	if utf8.RuneCountInString(v) != 1 {
		return 0, fmt.Errorf("%w: separator must be a single character, got %q", reflow.ErrConfig, v)
	}
	r, _ := utf8.DecodeRuneInString(v)
	return r, nil
}

// Marshal returns cfg as a yaml document Parse accepts.
func Marshal(cfg reflow.Config) ([]byte, error) {
	sep := string(cfg.Separator)
	measure := cfg.Measure.String()
	term := cfg.Termination.String()
	f := &File{
		LaneCount:    &cfg.LaneCount,
		MaxWidth:     &cfg.MaxWidth,
		SegmentWidth: &cfg.SegmentWidth,
		Separator:    &sep,
		Measure:      &measure,
		Termination:  &term,
	}
	return yaml.Marshal(f)
}

func fromEnv(env map[string]string) (*File, error) {
	f := &File{}
	ints := []struct {
		name string
		dst  **int
	}{
		{"TABFLOW_LANE_COUNT", &f.LaneCount},
		{"TABFLOW_MAX_WIDTH", &f.MaxWidth},
		{"TABFLOW_SEGMENT_WIDTH", &f.SegmentWidth},
	}
	for _, e := range ints {
		v, ok := env[e.name]
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q is not an integer", reflow.ErrConfig, e.name, v)
		}
		*e.dst = &n
	}
	strs := []struct {
		name string
		dst  **string
	}{
		{"TABFLOW_SEPARATOR", &f.Separator},
		{"TABFLOW_MEASURE", &f.Measure},
		{"TABFLOW_TERMINATION", &f.Termination},
	}
	for _, e := range strs {
		v, ok := env[e.name]
		if !ok || v == "" {
			continue
		}
		*e.dst = &v
	}
	return f, nil
}

func envMap(environ []string) map[string]string {
	res := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		res[k] = v
	}
	return res
}

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/signadot/tabflow/config"
	"github.com/signadot/tabflow/encode"
	"github.com/signadot/tabflow/format"
	"github.com/signadot/tabflow/reflow"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Config  string `cli:"name=config desc='yaml config file (default $TABFLOW_CONFIG)'"`
	Lanes   int    `cli:"name=lanes desc='lines per lane block (default 6)'"`
	Width   int    `cli:"name=width aliases=w desc='widest block left unsplit; also the segment width unless -segment is given (default 80)'"`
	Segment int    `cli:"name=segment desc='width of each segment of a split block (default 80)'"`
	Sep     string `cli:"name=sep desc='lane separator (default |)'"`
	Measure string `cli:"name=measure desc='length unit: runes or graphemes'"`
	Stop    string `cli:"name=stop desc='when to stop segmenting: first-lane or longest-lane'"`
	Color   bool   `cli:"name=color desc='output with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// optSet reports whether the named option was given on the command line.
func optSet(cmd *cli.Command, name string) bool {
	if cmd == nil {
		return false
	}
	for _, opt := range cmd.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

// reflowConfig layers the command line over the config file and
// environment.
func (cfg *MainConfig) reflowConfig() (reflow.Config, error) {
	rc, err := config.Load(cfg.Config)
	if err != nil {
		return rc, err
	}
	if err := cfg.apply(&rc, func(name string) bool { return optSet(cfg.Main, name) }); err != nil {
		return rc, err
	}
	if err := rc.Validate(); err != nil {
		return rc, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return rc, nil
}

func (cfg *MainConfig) apply(rc *reflow.Config, set func(string) bool) error {
	if set("lanes") {
		rc.LaneCount = cfg.Lanes
	}
	if set("width") {
		rc.MaxWidth = cfg.Width
		rc.SegmentWidth = cfg.Width
	}
	if set("segment") {
		rc.SegmentWidth = cfg.Segment
	}
	if cfg.Sep != "" {
		r, err := config.ParseSeparator(cfg.Sep)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		rc.Separator = r
	}
	if cfg.Measure != "" {
		m, err := reflow.ParseMeasure(cfg.Measure)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		rc.Measure = m
	}
	if cfg.Stop != "" {
		t, err := reflow.ParseTermination(cfg.Stop)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		rc.Termination = t
	}
	return nil
}

// colors reports whether output to w should be colored: -color if given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color || optSet(cfg.Main, "color") {
		return cfg.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer, rc reflow.Config) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeSeparator(rc.Separator)}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ReflowConfig struct {
	*MainConfig
	Exec string `cli:"name=exec aliases=e desc='shell command whose output is the tablature'"`

	Reflow *cli.Command
}

type BlocksConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='only list units matching an expression such as: parts > 1'"`
	Exec  string `cli:"name=exec aliases=e desc='shell command whose output is the tablature'"`

	OutFormat format.Format
	Blocks    *cli.Command
}

func (cfg *BlocksConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.OutFormat = f
		return f, nil
	})
}

type DiffConfig struct {
	*MainConfig
	Loop      string `cli:"name=loop desc='renderer command to rerun while printing changes to its reflowed output'"`
	LoopEvery time.Duration
	LoopLim   int `cli:"name=loopLim desc='max number of times to loop'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) mkLoopEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		if d <= 0 {
			return nil, fmt.Errorf("%w: loopEvery must be positive", cli.ErrUsage)
		}
		cfg.LoopEvery = d
		return d, nil
	}
}

type ShowConfig struct {
	*MainConfig

	Show *cli.Command
}

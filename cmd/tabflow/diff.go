package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/signadot/tabflow/libdiff"
	"github.com/signadot/tabflow/reflow"
	"github.com/signadot/tabflow/sanitize"
	"github.com/signadot/tabflow/tabsource"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	rc, err := cfg.reflowConfig()
	if err != nil {
		return err
	}
	ctx, cancel := interruptContext()
	defer cancel()
	colors := cfg.colors(cc.Out)
	if cfg.Loop != "" {
		if len(args) != 0 {
			return fmt.Errorf("%w: diff -loop takes no files, got %v", cli.ErrUsage, args)
		}
		return diffLoop(ctx, cfg, cc.Out, rc, tabsource.Command(cfg.Loop), colors)
	}
	srcs, err := sources(cc, args, "")
	if err != nil {
		return err
	}
	changed := false
	for _, s := range srcs {
		tab, err := s.src.Tab(ctx)
		if err != nil {
			return err
		}
		c, err := diffTo(cc.Out, tab, rc, colors)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", s.name, err)
		}
		changed = changed || c
	}
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffTo writes the line diff between the sanitized tab and its reflow and
// reports whether they differ.
func diffTo(w io.Writer, tab string, rc reflow.Config, colors bool) (bool, error) {
	out, err := reflow.Reflow(tab, rc)
	if err != nil {
		return false, err
	}
	in := reflow.SplitLines(sanitize.String(tab))
	var outLines []string
	if out != "" {
		outLines = strings.Split(out, "\n")
	}
	diffs := libdiff.Lines(joinLines(in), joinLines(outLines))
	if !libdiff.Changed(diffs) {
		return false, nil
	}
	return true, libdiff.Write(w, diffs, colors)
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func diffLoop(ctx context.Context, cfg *DiffConfig, w io.Writer, rc reflow.Config, src tabsource.Source, colors bool) error {
	i := 0
	last := ""
	ticker := time.NewTicker(cfg.LoopEvery)
	defer ticker.Stop()
	for {
		if i == cfg.LoopLim {
			break
		}
		tab, err := src.Tab(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		next, err := reflow.Reflow(tab, rc)
		if err != nil {
			return err
		}
		if next != "" {
			next += "\n"
		}
		diffs := libdiff.Lines(last, next)
		if libdiff.Changed(diffs) {
			when := time.Now().Format(time.RFC3339Nano)
			if _, err := io.WriteString(w, "# difference found at "+when+"\n"); err != nil {
				return err
			}
			if err := libdiff.Write(w, diffs, colors); err != nil {
				return err
			}
		}
		last = next
		i++
		if i == cfg.LoopLim {
			break
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

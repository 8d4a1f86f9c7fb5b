package main

import (
	"fmt"
	"io"

	"github.com/signadot/tabflow/format"
	"github.com/signadot/tabflow/query"
	"github.com/signadot/tabflow/reflow"

	"github.com/scott-cotton/cli"
)

func blocks(cfg *BlocksConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Blocks.Parse(cc, args)
	if err != nil {
		return err
	}
	rc, err := cfg.reflowConfig()
	if err != nil {
		return err
	}
	var filter *query.Filter
	if cfg.Where != "" {
		filter, err = query.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	srcs, err := sources(cc, args, cfg.Exec)
	if err != nil {
		return err
	}
	ctx, cancel := interruptContext()
	defer cancel()
	for _, s := range srcs {
		tab, err := s.src.Tab(ctx)
		if err != nil {
			return err
		}
		if err := blocksTo(cc.Out, tab, rc, cfg.OutFormat, filter); err != nil {
			return fmt.Errorf("error processing %s: %w", s.name, err)
		}
	}
	return nil
}

func blocksTo(w io.Writer, tab string, rc reflow.Config, f format.Format, filter *query.Filter) error {
	units, err := reflow.Units(tab, rc)
	if err != nil {
		return err
	}
	var res []reflow.Summary
	for _, u := range units {
		s := rc.Summarize(u)
		ok, err := filter.Match(s)
		if err != nil {
			return err
		}
		if ok {
			res = append(res, s)
		}
	}
	return format.Write(w, f, res)
}

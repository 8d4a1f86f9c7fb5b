package main

import (
	"fmt"
	"io"

	"github.com/signadot/tabflow/encode"
	"github.com/signadot/tabflow/reflow"

	"github.com/scott-cotton/cli"
)

func reflowFiles(cfg *ReflowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Reflow.Parse(cc, args)
	if err != nil {
		return err
	}
	rc, err := cfg.reflowConfig()
	if err != nil {
		return err
	}
	srcs, err := sources(cc, args, cfg.Exec)
	if err != nil {
		return err
	}
	ctx, cancel := interruptContext()
	defer cancel()
	opts := cfg.encOpts(cc.Out, rc)
	for i, s := range srcs {
		tab, err := s.src.Tab(ctx)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return err
			}
		}
		if err := reflowTo(cc.Out, tab, rc, opts...); err != nil {
			return fmt.Errorf("error processing %s: %w", s.name, err)
		}
	}
	return nil
}

func reflowTo(w io.Writer, tab string, rc reflow.Config, opts ...encode.EncodeOption) error {
	lines, err := reflow.Lines(tab, rc)
	if err != nil {
		return err
	}
	return encode.Encode(lines, w, opts...)
}

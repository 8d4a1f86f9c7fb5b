package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/signadot/tabflow/tabsource"

	"github.com/scott-cotton/cli"
)

func tabflowMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

type namedSource struct {
	name string
	src  tabsource.Source
}

// sources returns where to read tablature from: the -exec command, the
// named files, or standard input.
func sources(cc *cli.Context, args []string, execCmd string) ([]namedSource, error) {
	if execCmd != "" {
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: -exec cannot be combined with files %v", cli.ErrUsage, args)
		}
		return []namedSource{{name: execCmd, src: tabsource.Command(execCmd)}}, nil
	}
	if len(args) == 0 {
		return []namedSource{{name: "-", src: tabsource.Reader(cc.In)}}, nil
	}
	res := make([]namedSource, 0, len(args))
	for _, arg := range args {
		src := tabsource.File(arg)
		if arg == "-" {
			src = tabsource.Reader(cc.In)
		}
		res = append(res, namedSource{name: arg, src: src})
	}
	return res, nil
}

func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

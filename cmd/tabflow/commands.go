package main

import (
	"time"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "tabflow").
		WithSynopsis("tabflow [opts] command [opts]").
		WithDescription("tabflow rewraps guitar tablature to fit a display width.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tabflowMain(cfg, cc, args)
		}).
		WithSubs(
			ReflowCommand(cfg),
			BlocksCommand(cfg),
			DiffCommand(cfg),
			ConfigCommand(cfg))
}

func ReflowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReflowConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Reflow, "reflow").
		WithAliases("r").
		WithSynopsis("reflow [-exec cmd] [files]").
		WithDescription(reflowDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return reflowFiles(cfg, cc, args)
		})
}

const reflowDescription = `reflow rewraps tablature read from files, standard input or a renderer.

Every run of -lanes consecutive lines containing the separator is a lane
block. Blocks wider than -width are cut into segments of -segment columns
labelled "--- Part k/m ---", each lane keeping its prefix (e|, B|, ...).
Other lines are copied unchanged. Terminal escape sequences are removed.

With -exec, the command is run with sh -c and its standard output is the
tablature, for example

  tabflow reflow -exec 'python3 render_tab.py song.mid 1'`

func BlocksCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BlocksConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "O",
		Aliases:     []string{"ofmt"},
		Description: "output format: text/t, yaml/y, json/j",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
	})
	return cli.NewCommandAt(&cfg.Blocks, "blocks").
		WithAliases("b").
		WithSynopsis("blocks [-O format] [-where expr] [files]").
		WithDescription("list lane blocks and passthrough lines and how they are wrapped").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return blocks(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, LoopEvery: time.Second, LoopLim: -1}
	loopEveryOpt := &cli.Opt{
		Name:        "loopEvery",
		Description: "interval between -loop runs (default 1s)",
		Type:        cli.FuncOpt(cfg.mkLoopEvery()),
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, loopEveryOpt)

	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [files] or diff -loop <cmd>").
		WithDescription("show what reflow changes, or watch a renderer's reflowed output").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func ConfigCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShowConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Show, "config").
		WithAliases("c").
		WithSynopsis("config").
		WithDescription("print the effective configuration as yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return showConfig(cfg, cc, args)
		})
}

package main

import (
	"github.com/signadot/tabflow/config"

	"github.com/scott-cotton/cli"
)

func showConfig(cfg *ShowConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Show.Parse(cc, args)
	if err != nil {
		return err
	}
	rc, err := cfg.reflowConfig()
	if err != nil {
		return err
	}
	d, err := config.Marshal(rc)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}

package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/louisbranch/encounter-xp/internal/platform/config"
	"github.com/louisbranch/encounter-xp/internal/tools/encounterxp"
)

func main() {
	fs := flag.NewFlagSet("encounter-xp", flag.ContinueOnError)
	cfg, err := encounterxp.ParseConfig(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		config.Exitf("parse flags: %v", err)
	}
	if err := encounterxp.Run(context.Background(), cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("%v", err)
	}
}

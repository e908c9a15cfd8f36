package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/meghashyamc/debugview/config"
	"github.com/meghashyamc/debugview/view"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	v, err := view.New(cfg)
	if err != nil {
		slog.Error("error creating view", "err", err)
		os.Exit(1)
	}
	if err := v.Run(); err != nil {
		slog.Error("error running view", "err", err)
		os.Exit(1)
	}
}

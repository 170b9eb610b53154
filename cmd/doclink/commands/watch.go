package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/doclink/internal/daemon"
	"git.home.luguber.info/inful/doclink/internal/logfields"
	"git.home.luguber.info/inful/doclink/internal/state"
)

// WatchCmd runs the daemon: continuous rewriting plus the HTTP endpoint.
type WatchCmd struct {
	Listen string `help:"Override the configured HTTP listen address"`
}

func (w *WatchCmd) Run(_ *Global, cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}
	if w.Listen != "" {
		cfg.Daemon.Listen = w.Listen
	}

	store, err := state.Open(cfg.State.Path)
	if err != nil {
		slog.Warn("Run history unavailable", logfields.Error(err))
		store = nil
	} else {
		defer store.Close()
	}

	d, err := daemon.New(cfg, store)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return d.Run(ctx)
}

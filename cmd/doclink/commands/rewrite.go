package commands

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/doclink/internal/events"
	"git.home.luguber.info/inful/doclink/internal/logfields"
	"git.home.luguber.info/inful/doclink/internal/pipeline"
	"git.home.luguber.info/inful/doclink/internal/state"
)

// RewriteCmd runs one full rewrite pass.
type RewriteCmd struct {
	DocsRoot string `name:"docs-root" short:"d" help:"Override the configured docs root"`
	NoState  bool   `name:"no-state" help:"Do not record the run in the history database"`
}

func (r *RewriteCmd) Run(_ *Global, cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}
	if r.DocsRoot != "" {
		cfg.Rewrite.DocsRoot = r.DocsRoot
	}

	var store *state.Store
	if !r.NoState {
		store, err = state.Open(cfg.State.Path)
		if err != nil {
			slog.Warn("Run history unavailable", logfields.Error(err))
		} else {
			defer store.Close()
		}
	}

	var pub pipeline.Publisher
	if cfg.Events.Enabled {
		publisher, err := events.NewPublisher(cfg.Events)
		if err != nil {
			slog.Warn("Event publishing unavailable", logfields.Error(err))
		} else {
			defer publisher.Close()
			pub = publisher
		}
	}

	run, err := pipeline.Run(context.Background(), cfg, store, nil, pub)
	if err != nil {
		return err
	}
	fmt.Printf("Rewrote %d links in %d of %d documents\n",
		run.LinksRewritten, run.DocsRewritten, run.DocsScanned)
	return nil
}

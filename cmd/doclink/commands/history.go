package commands

import (
	"context"
	"fmt"
	"time"

	"git.home.luguber.info/inful/doclink/internal/state"
)

// HistoryCmd lists recent rewrite runs from the state database.
type HistoryCmd struct {
	Limit int `short:"n" help:"Maximum number of runs to show" default:"20"`
}

func (h *HistoryCmd) Run(_ *Global, cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	store, err := state.Open(cfg.State.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(context.Background(), h.Limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs")
		return nil
	}

	for _, r := range runs {
		commit := r.Commit
		if len(commit) > 8 {
			commit = commit[:8]
		}
		fmt.Printf("%s  %-7s  scanned=%-4d rewritten=%-4d links=%-5d commit=%s %s\n",
			r.FinishedAt.Format(time.RFC3339), r.Status,
			r.DocsScanned, r.DocsRewritten, r.LinksRewritten, commit, r.Error)
	}
	return nil
}

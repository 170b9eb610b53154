package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"git.home.luguber.info/inful/doclink/internal/logfields"
	"git.home.luguber.info/inful/doclink/internal/pipeline"
	"git.home.luguber.info/inful/doclink/internal/report"
	"git.home.luguber.info/inful/doclink/internal/state"
)

// ReportCmd writes a summary of the registry, the classpath mapping and
// recent runs, as markdown or rendered HTML.
type ReportCmd struct {
	Output string `short:"o" help:"Output file (stdout when empty)"`
	HTML   bool   `help:"Render the report as HTML instead of markdown"`
}

func (rc *ReportCmd) Run(_ *Global, cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	data := report.Data{
		GeneratedAt: time.Now(),
		Registry:    pipeline.BuildRegistry(cfg),
	}
	if mappings, err := pipeline.BuildMappings(cfg, data.Registry); err == nil {
		data.Mappings = mappings
	} else {
		slog.Warn("Classpath mapping unavailable for report", logfields.Error(err))
	}
	if store, err := state.Open(cfg.State.Path); err == nil {
		if runs, err := store.Recent(context.Background(), 20); err == nil {
			data.Runs = runs
		}
		_ = store.Close()
	}

	var out string
	if rc.HTML {
		out, err = report.HTML(data)
		if err != nil {
			return err
		}
	} else {
		out = report.Markdown(data)
	}

	if rc.Output == "" {
		fmt.Print(out)
		return nil
	}
	return os.WriteFile(rc.Output, []byte(out), 0o644)
}

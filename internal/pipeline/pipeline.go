// Package pipeline orchestrates one rewrite pass: registry construction,
// classpath matching, link rewriting, and run bookkeeping.
package pipeline

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/doclink/internal/classpath"
	"git.home.luguber.info/inful/doclink/internal/config"
	"git.home.luguber.info/inful/doclink/internal/events"
	"git.home.luguber.info/inful/doclink/internal/gitinfo"
	"git.home.luguber.info/inful/doclink/internal/logfields"
	"git.home.luguber.info/inful/doclink/internal/metrics"
	"git.home.luguber.info/inful/doclink/internal/registry"
	"git.home.luguber.info/inful/doclink/internal/rewrite"
	"git.home.luguber.info/inful/doclink/internal/state"
)

// BuildRegistry constructs the library URL registry from configuration.
func BuildRegistry(cfg *config.Config) *registry.Registry {
	reg := registry.New(cfg.Platform.DocURL)
	reg.RegisterAll(registry.External, cfg.Libraries.External)
	reg.RegisterAll(registry.Source, cfg.Libraries.Source)
	return reg
}

// BuildMappings resolves the classpath and produces the artifact -> doc URL
// mapping, including the fixed runtime-platform entry. Failure to locate the
// platform artifact is fatal: every cross-reference depends on that mapping.
func BuildMappings(cfg *config.Config, reg *registry.Registry) (map[string]string, error) {
	platformArtifact, err := classpath.LocatePlatformArtifact(cfg.Platform.Home)
	if err != nil {
		return nil, err
	}
	entries, err := classpath.Scan(cfg.Classpath.Dirs, cfg.Classpath.Extensions)
	if err != nil {
		return nil, err
	}
	return classpath.Match(entries, reg, platformArtifact), nil
}

// BaseURLs extracts the distinct documentation base URLs from a mapping, in
// stable order. Only URLs with a matched artifact participate in the rewrite.
func BaseURLs(mappings map[string]string) []string {
	seen := make(map[string]struct{}, len(mappings))
	urls := make([]string, 0, len(mappings))
	for _, u := range mappings {
		if _, dup := seen[u]; dup || u == "" {
			continue
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

// Publisher publishes completed runs to downstream consumers.
// Satisfied by *events.Publisher.
type Publisher interface {
	PublishRunCompleted(event *events.RunCompletedEvent) error
}

// Run executes one full rewrite pass and records it. The store, recorder and
// publisher may be nil when bookkeeping is not wanted (e.g. dry CLI
// invocations). Publish failures never fail the pass: the rewrite already
// happened, the event is advisory.
func Run(ctx context.Context, cfg *config.Config, store *state.Store, rec metrics.Recorder, pub Publisher) (state.Run, error) {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}

	run := state.Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		DocsRoot:  cfg.Rewrite.DocsRoot,
		Commit:    gitinfo.HeadCommit(cfg.Rewrite.DocsRoot),
		Status:    state.StatusSuccess,
	}
	slog.Info("Starting rewrite pass", logfields.RunID(run.ID), logfields.DocsRoot(run.DocsRoot))

	reg := BuildRegistry(cfg)
	mappings, err := BuildMappings(cfg, reg)
	var res rewrite.Result
	if err == nil {
		rewriter := rewrite.New(BaseURLs(mappings), cfg.Rewrite.PageExtension)
		res, err = rewrite.Pass(cfg.Rewrite.DocsRoot, cfg.Rewrite.Extensions, rewriter)
	}

	run.FinishedAt = time.Now()
	run.DocsScanned = res.DocsScanned
	run.DocsRewritten = res.DocsRewritten
	run.LinksRewritten = res.LinksRewritten

	elapsed := run.FinishedAt.Sub(run.StartedAt)
	rec.ObservePassDuration(elapsed)
	rec.AddDocsScanned(res.DocsScanned)
	rec.AddDocsRewritten(res.DocsRewritten)
	rec.AddLinksRewritten(res.LinksRewritten)

	if err != nil {
		run.Status = state.StatusFailed
		run.Error = err.Error()
		rec.IncPassOutcome("failed")
		slog.Error("Rewrite pass failed", logfields.RunID(run.ID), logfields.Error(err))
	} else {
		rec.IncPassOutcome("success")
		slog.Info("Rewrite pass complete",
			logfields.RunID(run.ID),
			slog.Int("docs_scanned", res.DocsScanned),
			slog.Int("docs_rewritten", res.DocsRewritten),
			slog.Int("links_rewritten", res.LinksRewritten),
			logfields.DurationMS(float64(elapsed.Milliseconds())))
	}

	if store != nil {
		if recordErr := store.Record(ctx, run); recordErr != nil {
			slog.Warn("Failed to record run", logfields.RunID(run.ID), logfields.Error(recordErr))
		}
	}
	if pub != nil {
		event := &events.RunCompletedEvent{
			RunID:          run.ID,
			DocsRoot:       run.DocsRoot,
			Commit:         run.Commit,
			DocsScanned:    run.DocsScanned,
			DocsRewritten:  run.DocsRewritten,
			LinksRewritten: run.LinksRewritten,
			Status:         string(run.Status),
			Error:          run.Error,
		}
		if pubErr := pub.PublishRunCompleted(event); pubErr != nil {
			slog.Warn("Failed to publish run event", logfields.RunID(run.ID), logfields.Error(pubErr))
		}
	}
	return run, err
}

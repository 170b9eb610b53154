// Package daemon implements watch mode: it re-runs the rewrite pass after
// the external documentation generator touches the docs tree, optionally on a
// fixed interval as well, and serves metrics plus a status report over HTTP.
package daemon

import (
	"context"
	"log/slog"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/doclink/internal/config"
	"git.home.luguber.info/inful/doclink/internal/events"
	"git.home.luguber.info/inful/doclink/internal/metrics"
	"git.home.luguber.info/inful/doclink/internal/pipeline"
	"git.home.luguber.info/inful/doclink/internal/report"
	"git.home.luguber.info/inful/doclink/internal/state"
)

// Daemon coordinates the watcher, the optional schedule, the HTTP server and
// the event publisher around the rewrite pipeline.
type Daemon struct {
	cfg       *config.Config
	store     *state.Store
	recorder  metrics.Recorder
	publisher *events.Publisher
	watcher   *Watcher
	scheduler *Scheduler
	http      *httpServer
}

// New assembles a daemon from configuration. The state store is owned by the
// caller; everything else is constructed here.
func New(cfg *config.Config, store *state.Store) (*Daemon, error) {
	promReg := prom.NewRegistry()
	d := &Daemon{
		cfg:      cfg,
		store:    store,
		recorder: metrics.NewPrometheusRecorder(promReg),
	}

	watcher, err := NewWatcher(cfg.Rewrite.DocsRoot, cfg.Daemon.DebounceDuration())
	if err != nil {
		return nil, err
	}
	d.watcher = watcher

	if cfg.Daemon.IntervalDuration() > 0 {
		scheduler, err := NewScheduler()
		if err != nil {
			watcher.Close()
			return nil, err
		}
		d.scheduler = scheduler
	}

	if cfg.Events.Enabled {
		publisher, err := events.NewPublisher(cfg.Events)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		d.publisher = publisher
	}

	d.http = newHTTPServer(cfg.Daemon.Listen, promReg, d.reportData)
	return d, nil
}

// Run blocks until the context is canceled, executing one pass per trigger.
// Triggers collapse: changes arriving during a pass fire a single follow-up.
func (d *Daemon) Run(ctx context.Context) error {
	d.watcher.Start(ctx)
	d.http.Start()

	if d.scheduler != nil {
		interval := d.cfg.Daemon.IntervalDuration()
		if _, err := d.scheduler.SchedulePeriodicPass(interval, func() {
			d.runPass(ctx, "schedule")
		}); err != nil {
			return err
		}
		d.scheduler.Start()
	}

	// Initial pass so a daemon started after generation still converges.
	d.runPass(ctx, "startup")

	for {
		select {
		case <-ctx.Done():
			return d.shutdown()
		case <-d.watcher.Trigger():
			d.runPass(ctx, "filesystem")
		}
	}
}

func (d *Daemon) runPass(ctx context.Context, reason string) {
	slog.Info("Triggering rewrite pass", slog.String("reason", reason))
	var pub pipeline.Publisher
	if d.publisher != nil {
		pub = d.publisher
	}
	_, _ = pipeline.Run(ctx, d.cfg, d.store, d.recorder, pub) // outcome already logged and recorded
}

func (d *Daemon) reportData() report.Data {
	data := report.Data{
		GeneratedAt: time.Now(),
		Registry:    pipeline.BuildRegistry(d.cfg),
	}
	reg := data.Registry
	if mappings, err := pipeline.BuildMappings(d.cfg, reg); err == nil {
		data.Mappings = mappings
	}
	if d.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if runs, err := d.store.Recent(ctx, 20); err == nil {
			data.Runs = runs
		}
	}
	return data
}

func (d *Daemon) shutdown() error {
	slog.Info("Shutting down daemon")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var firstErr error
	if err := d.http.Stop(shutdownCtx); err != nil {
		firstErr = err
	}
	if d.scheduler != nil {
		if err := d.scheduler.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := d.watcher.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if d.publisher != nil {
		d.publisher.Close()
	}
	return firstErr
}

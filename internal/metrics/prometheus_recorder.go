package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	passDuration   prom.Histogram
	docsScanned    prom.Counter
	docsRewritten  prom.Counter
	linksRewritten prom.Counter
	passOutcome    *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		passDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "doclink",
			Name:      "pass_duration_seconds",
			Help:      "Duration of rewrite passes",
			Buckets:   prom.DefBuckets,
		}),
		docsScanned: prom.NewCounter(prom.CounterOpts{
			Namespace: "doclink",
			Name:      "docs_scanned_total",
			Help:      "Generated documents scanned across all passes",
		}),
		docsRewritten: prom.NewCounter(prom.CounterOpts{
			Namespace: "doclink",
			Name:      "docs_rewritten_total",
			Help:      "Documents rewritten in place",
		}),
		linksRewritten: prom.NewCounter(prom.CounterOpts{
			Namespace: "doclink",
			Name:      "links_rewritten_total",
			Help:      "Individual links converted to the target convention",
		}),
		passOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doclink",
			Name:      "pass_outcomes_total",
			Help:      "Pass outcomes by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.passDuration, pr.docsScanned, pr.docsRewritten, pr.linksRewritten, pr.passOutcome)
	return pr
}

func (pr *PrometheusRecorder) ObservePassDuration(d time.Duration) {
	pr.passDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) AddDocsScanned(n int) {
	pr.docsScanned.Add(float64(n))
}

func (pr *PrometheusRecorder) AddDocsRewritten(n int) {
	pr.docsRewritten.Add(float64(n))
}

func (pr *PrometheusRecorder) AddLinksRewritten(n int) {
	pr.linksRewritten.Add(float64(n))
}

func (pr *PrometheusRecorder) IncPassOutcome(outcome string) {
	pr.passOutcome.WithLabelValues(outcome).Inc()
}

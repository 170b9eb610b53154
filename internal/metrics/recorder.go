package metrics

import "time"

// Recorder defines observability hooks for rewrite passes. Implementations
// may forward to Prometheus, OpenTelemetry, etc. The NoopRecorder allows
// optional injection.
type Recorder interface {
	ObservePassDuration(d time.Duration)
	AddDocsScanned(n int)
	AddDocsRewritten(n int)
	AddLinksRewritten(n int)
	IncPassOutcome(outcome string) // outcome: success|failed
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObservePassDuration(time.Duration) {}
func (NoopRecorder) AddDocsScanned(int)                {}
func (NoopRecorder) AddDocsRewritten(int)              {}
func (NoopRecorder) AddLinksRewritten(int)             {}
func (NoopRecorder) IncPassOutcome(string)             {}

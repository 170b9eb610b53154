package events

import "time"

// RunCompletedEvent is published after every rewrite pass.
type RunCompletedEvent struct {
	RunID          string    `json:"run_id"`
	DocsRoot       string    `json:"docs_root"`
	Commit         string    `json:"commit,omitempty"`
	DocsScanned    int       `json:"docs_scanned"`
	DocsRewritten  int       `json:"docs_rewritten"`
	LinksRewritten int       `json:"links_rewritten"`
	Status         string    `json:"status"`
	Error          string    `json:"error,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

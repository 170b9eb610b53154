// Package report produces a human-readable summary of the registry, the
// classpath mapping, and recent rewrite runs.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"git.home.luguber.info/inful/doclink/internal/registry"
	"git.home.luguber.info/inful/doclink/internal/state"
)

// Data collects everything a report renders.
type Data struct {
	GeneratedAt time.Time
	Registry    *registry.Registry
	Mappings    map[string]string // classpath file -> base URL
	Runs        []state.Run
}

// Markdown renders the report as a markdown document.
func Markdown(d Data) string {
	var b strings.Builder
	b.WriteString("# doclink report\n\n")
	fmt.Fprintf(&b, "Generated %s\n\n", d.GeneratedAt.Format(time.RFC3339))

	if d.Registry != nil {
		b.WriteString("## Registry\n\n")
		fmt.Fprintf(&b, "Platform API: <%s>\n\n", d.Registry.PlatformURL())
		writeTable(&b, "External libraries", d.Registry.Entries(registry.External))
		writeTable(&b, "Source libraries", d.Registry.Entries(registry.Source))
	}

	if len(d.Mappings) > 0 {
		b.WriteString("## Classpath mapping\n\n")
		b.WriteString("| Artifact | Documentation |\n|---|---|\n")
		for _, file := range sortedKeys(d.Mappings) {
			fmt.Fprintf(&b, "| `%s` | <%s> |\n", file, d.Mappings[file])
		}
		b.WriteString("\n")
	}

	if len(d.Runs) > 0 {
		b.WriteString("## Recent runs\n\n")
		b.WriteString("| Run | Finished | Scanned | Rewritten | Links | Status |\n|---|---|---|---|---|---|\n")
		for _, r := range d.Runs {
			fmt.Fprintf(&b, "| `%s` | %s | %d | %d | %d | %s |\n",
				shortID(r.ID), r.FinishedAt.Format(time.RFC3339),
				r.DocsScanned, r.DocsRewritten, r.LinksRewritten, r.Status)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// HTML renders the report as an HTML page.
func HTML(d Data) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(d)), &buf); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return "<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>doclink report</title></head><body>\n" +
		buf.String() + "</body></html>\n", nil
}

func writeTable(b *strings.Builder, title string, entries map[string]string) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(b, "### %s\n\n", title)
	b.WriteString("| Library | Documentation |\n|---|---|\n")
	for _, name := range sortedKeys(entries) {
		fmt.Fprintf(b, "| `%s` | <%s> |\n", name, entries[name])
	}
	b.WriteString("\n")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

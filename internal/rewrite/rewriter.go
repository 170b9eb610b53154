// Package rewrite converts generator-style documentation links into the
// target site's addressing convention.
//
// Generated API docs reference external symbols as <baseURL>#dotted.symbol.Path.
// The documentation sites themselves address pages as
// <baseURL>?slash/delimited/Path<ext>. The rewriter patches every such link in
// a generated document tree, in place.
package rewrite

import (
	"regexp"
	"strings"
)

// DefaultExtension is the page extension of the target documentation sites.
const DefaultExtension = ".html"

// Rewriter rewrites links for a fixed set of documentation base URLs.
//
// Base URLs are matched as literal strings: each one is regex-escaped before
// being folded into a single alternation, so URLs containing characters with
// pattern meaning (every URL has dots) never match lookalikes.
type Rewriter struct {
	pattern   *regexp.Regexp
	extension string
}

// New builds a Rewriter for the given base URLs. The extension is appended to
// every converted fragment; when empty, DefaultExtension is used.
func New(baseURLs []string, extension string) *Rewriter {
	if extension == "" {
		extension = DefaultExtension
	}
	r := &Rewriter{extension: extension}
	if len(baseURLs) == 0 {
		return r
	}
	quoted := make([]string, 0, len(baseURLs))
	for _, u := range baseURLs {
		if u == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(u))
	}
	if len(quoted) == 0 {
		return r
	}
	// One alternation over all bases, followed by '#' and the dotted symbol
	// path, which runs to the closing quote of the href attribute.
	r.pattern = regexp.MustCompile("(" + strings.Join(quoted, "|") + `)#([^"]*)`)
	return r
}

// Rewrite converts every matching link in content. It returns the converted
// content and the number of links rewritten; when no link matches, content is
// returned unchanged and the count is zero.
func (r *Rewriter) Rewrite(content string) (string, int) {
	if r.pattern == nil {
		return content, 0
	}
	count := 0
	out := r.pattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := r.pattern.FindStringSubmatch(match)
		count++
		return groups[1] + "?" + strings.ReplaceAll(groups[2], ".", "/") + r.extension
	})
	return out, count
}

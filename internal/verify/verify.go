// Package verify inspects a rewritten documentation tree for links still in
// the generator's fragment convention. It never fetches any URL.
package verify

import (
	"io/fs"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/doclink/internal/errors"
)

// Finding is one link that still uses the generator's base#fragment form for
// a known base URL, meaning a rewrite pass was skipped or ran with a smaller
// registry.
type Finding struct {
	Document string // document containing the link
	Link     string // the offending href value
	BaseURL  string // the registered base it matches
}

// Tree walks a documentation tree and reports unrewritten links against the
// given base URLs. Extensions defaults to .html.
func Tree(root string, extensions []string, baseURLs []string) ([]Finding, error) {
	if len(extensions) == 0 {
		extensions = []string{".html"}
	}
	accepted := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		accepted[strings.ToLower(ext)] = struct{}{}
	}

	var findings []Finding
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityError, "walk docs tree").WithContext("path", path)
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := accepted[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		links, err := ExtractLinks(path)
		if err != nil {
			return err
		}
		for _, link := range links {
			if base, ok := matchesGeneratorForm(link.URL, baseURLs); ok {
				findings = append(findings, Finding{Document: path, Link: link.URL, BaseURL: base})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findings, nil
}

// matchesGeneratorForm reports whether url is <base>#<fragment> for one of
// the known bases. Rewritten links use '?' and never match.
func matchesGeneratorForm(url string, baseURLs []string) (string, bool) {
	for _, base := range baseURLs {
		if base == "" {
			continue
		}
		if strings.HasPrefix(url, base) && strings.HasPrefix(url[len(base):], "#") {
			return base, true
		}
	}
	return "", false
}

package rewrite

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/doclink/internal/errors"
	"git.home.luguber.info/inful/doclink/internal/logfields"
)

// Result summarizes one pass over a generated document tree.
type Result struct {
	DocsScanned    int
	DocsRewritten  int
	LinksRewritten int
}

// Pass runs the rewriter over every matching document under root.
//
// A document is written back only when its content changed, so untouched
// files keep their modification timestamps. Any read or write failure aborts
// the pass: partial output is not a valid deliverable, the caller re-runs the
// whole documentation generation step instead.
func Pass(root string, extensions []string, r *Rewriter) (Result, error) {
	if len(extensions) == 0 {
		extensions = []string{DefaultExtension}
	}
	accepted := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		accepted[strings.ToLower(ext)] = struct{}{}
	}

	var res Result
	if _, err := os.Stat(root); err != nil {
		return res, errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "docs root not accessible").WithContext("root", root)
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "walk docs tree").WithContext("path", path)
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := accepted[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		res.DocsScanned++

		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "read document").WithContext("path", path)
		}

		converted, links := r.Rewrite(string(data))
		if links == 0 {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "stat document").WithContext("path", path)
		}
		if err := os.WriteFile(path, []byte(converted), info.Mode().Perm()); err != nil {
			return errors.Wrap(err, errors.CategoryRewrite, errors.SeverityFatal, "write document").WithContext("path", path)
		}

		res.DocsRewritten++
		res.LinksRewritten += links
		slog.Debug("Rewrote documentation links", logfields.Path(path), slog.Int("links", links))
		return nil
	})
	if err != nil {
		return res, err
	}
	return res, nil
}

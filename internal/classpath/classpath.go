// Package classpath scans resolved dependency artifacts and pairs them with
// registered documentation base URLs.
package classpath

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/doclink/internal/errors"
	"git.home.luguber.info/inful/doclink/internal/registry"
)

// Entry is one resolved dependency artifact on the classpath.
type Entry struct {
	FilePath string // filesystem path to the artifact
}

// LibraryName derives the short library identifier from the artifact file
// name by stripping the conventional version suffix:
// <name>-<version>.<ext> or <name>_<binaryVersion>-<version>.<ext>.
func (e Entry) LibraryName() string {
	base := filepath.Base(e.FilePath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	// Strip the trailing -<version> segment when it starts with a digit.
	if idx := strings.LastIndex(base, "-"); idx > 0 && idx+1 < len(base) {
		if c := base[idx+1]; c >= '0' && c <= '9' {
			base = base[:idx]
		}
	}
	return base
}

// Scan walks the configured directories and collects artifact files with one
// of the accepted extensions. Directories that do not exist are skipped.
func Scan(dirs []string, extensions []string) ([]Entry, error) {
	if len(extensions) == 0 {
		extensions = []string{".jar"}
	}
	accepted := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		accepted[strings.ToLower(ext)] = struct{}{}
	}

	var entries []Entry
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if _, ok := accepted[strings.ToLower(filepath.Ext(path))]; ok {
				entries = append(entries, Entry{FilePath: path})
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryClasspath, errors.SeverityError, "scan classpath directory").WithContext("dir", dir)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].FilePath < entries[j].FilePath })
	return entries, nil
}

// Match pairs classpath entries with registered documentation base URLs.
//
// For each registered library name (external and source sets), the first
// classpath file whose base name contains the name as a substring is taken.
// The match is deliberately permissive: a library name that happens to be a
// substring of an unrelated artifact name will produce a false match. Callers
// depend on this for artifact names carrying binary-version classifiers
// (e.g. "config_2.11-1.2.0.jar" matching "config"), so it is not tightened.
//
// Registered names with no matching entry are silently dropped; classpath
// entries matching no name are ignored. The returned mapping always contains
// the fixed runtime-platform entry.
func Match(entries []Entry, reg *registry.Registry, platformArtifact string) map[string]string {
	mappings := make(map[string]string)
	mappings[platformArtifact] = reg.PlatformURL()

	for _, kind := range []registry.Kind{registry.External, registry.Source} {
		for name, url := range reg.Entries(kind) {
			for _, e := range entries {
				if strings.Contains(filepath.Base(e.FilePath), name) {
					slog.Debug("Matched classpath artifact",
						slog.String("library", name),
						slog.String("artifact", e.LibraryName()),
						slog.String("url", url))
					mappings[e.FilePath] = url
					break
				}
			}
		}
	}
	return mappings
}

// Conventional runtime library locations relative to the platform home.
// Pre-9 JDKs ship rt.jar, modular JDKs expose the image through jrt-fs.jar.
var platformArtifactLayouts = []string{
	filepath.Join("jre", "lib", "rt.jar"),
	filepath.Join("lib", "rt.jar"),
	filepath.Join("lib", "jrt-fs.jar"),
}

// LocatePlatformArtifact finds the runtime library artifact under the
// platform home directory. Every generated cross-reference depends on the
// platform mapping, so failure to locate it is a fatal configuration error.
func LocatePlatformArtifact(home string) (string, error) {
	if home == "" {
		home = os.Getenv("JAVA_HOME")
	}
	if home == "" {
		return "", errors.FatalConfig("platform home not configured and JAVA_HOME is unset")
	}
	for _, rel := range platformArtifactLayouts {
		candidate := filepath.Join(home, rel)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", errors.FatalConfig("runtime platform artifact not found under " + home).WithContext("home", home)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doclink.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "rewrite:\n  docs_root: ./target/api\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DefaultPlatformDocURL, cfg.Platform.DocURL)
	require.Equal(t, []string{"lib"}, cfg.Classpath.Dirs)
	require.Equal(t, []string{".jar"}, cfg.Classpath.Extensions)
	require.Equal(t, []string{".html"}, cfg.Rewrite.Extensions)
	require.Equal(t, ".html", cfg.Rewrite.PageExtension)
	require.Equal(t, "./doclink.db", cfg.State.Path)
	require.Equal(t, "doclink.runs", cfg.Events.Subject)
	require.Contains(t, cfg.Libraries.External, "slf4j-api")
	require.Contains(t, cfg.Libraries.Source, "config")
}

func TestLoad_ConfigOverridesDefaultTableEntry(t *testing.T) {
	path := writeConfig(t, `
rewrite:
  docs_root: ./target/api
libraries:
  external:
    slf4j-api: http://mirror.example.com/slf4j/
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://mirror.example.com/slf4j/", cfg.Libraries.External["slf4j-api"])
	// Untouched defaults survive the merge.
	require.Contains(t, cfg.Libraries.External, "joda-time")
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("DOCS_OUT", "/tmp/generated-api")
	path := writeConfig(t, "rewrite:\n  docs_root: ${DOCS_OUT}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/generated-api", cfg.Rewrite.DocsRoot)
}

func TestLoad_MissingDocsRootFailsValidation(t *testing.T) {
	path := writeConfig(t, "classpath:\n  dirs: [lib]\n")
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "docs_root")
}

func TestLoad_MissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestDaemonConfig_DurationFallbacks(t *testing.T) {
	d := DaemonConfig{}
	require.Equal(t, 2*time.Second, d.DebounceDuration())
	require.Equal(t, time.Duration(0), d.IntervalDuration())

	d = DaemonConfig{Debounce: "500ms", Interval: "30m"}
	require.Equal(t, 500*time.Millisecond, d.DebounceDuration())
	require.Equal(t, 30*time.Minute, d.IntervalDuration())
}

func TestInit_RefusesToOverwriteWithoutForce(t *testing.T) {
	path := writeConfig(t, "rewrite:\n  docs_root: ./x\n")
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "./target/api", cfg.Rewrite.DocsRoot)
}

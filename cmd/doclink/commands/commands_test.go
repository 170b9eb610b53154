package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"
)

// runCLI parses and executes a command line against the real grammar.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return ctx.Run(&Global{}, &cli)
}

// writeFixture lays out a platform home, classpath and docs tree, and writes
// a config file pointing at them. Returns the config path and docs root.
func writeFixture(t *testing.T) (string, string) {
	t.Helper()
	base := t.TempDir()

	home := filepath.Join(base, "jdk")
	require.NoError(t, os.MkdirAll(filepath.Join(home, "jre", "lib"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "jre", "lib", "rt.jar"), []byte("stub"), 0o644))

	cp := filepath.Join(base, "lib")
	require.NoError(t, os.MkdirAll(cp, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cp, "slf4j-api-1.7.10.jar"), []byte("stub"), 0o644))

	docs := filepath.Join(base, "api")
	require.NoError(t, os.MkdirAll(docs, 0o755))
	doc := `<a href="https://www.slf4j.org/api/#org.slf4j.Logger">Logger</a>`
	require.NoError(t, os.WriteFile(filepath.Join(docs, "Foo.html"), []byte(doc), 0o644))

	configPath := filepath.Join(base, "doclink.yaml")
	content := fmt.Sprintf(`
platform:
  home: %s
classpath:
  dirs: [%s]
rewrite:
  docs_root: %s
state:
  path: ":memory:"
`, home, cp, docs)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	return configPath, docs
}

func TestInitCmd_WritesExampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doclink.yaml")
	require.NoError(t, runCLI(t, "-c", path, "init"))
	require.FileExists(t, path)

	// Refuses a second time without --force.
	require.Error(t, runCLI(t, "-c", path, "init"))
	require.NoError(t, runCLI(t, "-c", path, "init", "--force"))
}

func TestRewriteCmd_EndToEnd(t *testing.T) {
	configPath, docs := writeFixture(t)
	require.NoError(t, runCLI(t, "-c", configPath, "rewrite", "--no-state"))

	data, err := os.ReadFile(filepath.Join(docs, "Foo.html"))
	require.NoError(t, err)
	require.Contains(t, string(data), "https://www.slf4j.org/api/?org/slf4j/Logger.html")
}

func TestVerifyCmd_FailsOnStaleLinksThenPassesAfterRewrite(t *testing.T) {
	configPath, _ := writeFixture(t)

	require.Error(t, runCLI(t, "-c", configPath, "verify"))
	require.NoError(t, runCLI(t, "-c", configPath, "rewrite", "--no-state"))
	require.NoError(t, runCLI(t, "-c", configPath, "verify"))
}

func TestScanCmd_RunsAgainstFixture(t *testing.T) {
	configPath, _ := writeFixture(t)
	require.NoError(t, runCLI(t, "-c", configPath, "scan"))
}

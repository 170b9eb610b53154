package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/doclink/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"doclink.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
	Rewrite RewriteCmd `cmd:"" help:"Rewrite documentation links in the generated docs tree"`
	Scan    ScanCmd    `cmd:"" help:"Show the classpath to documentation URL mapping without rewriting"`
	Verify  VerifyCmd  `cmd:"" help:"Report generator-style links left in the docs tree"`
	History HistoryCmd `cmd:"" help:"List recent rewrite runs"`
	Report  ReportCmd  `cmd:"" help:"Write a summary report of registry, mapping and runs"`
	Watch   WatchCmd   `cmd:"" help:"Watch the docs tree and rewrite continuously"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig loads and validates the configuration referenced by the root flag.
func loadConfig(cli *CLI) (*config.Config, error) {
	return config.Load(cli.Config)
}

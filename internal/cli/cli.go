// Package cli implements the tabwrap command-line interface.
//
// The root command is the formatter itself: it reads delimiter-separated
// text from stdin or a file argument and prints a word-wrapped table.
// Subcommands list the available layouts and generate shell completions.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Logs go
// to stderr so the rendered table on stdout stays pipeable. With -v the
// planner and pipeline observability hooks are wired to the logger.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tabwrap/tabwrap/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "tabwrap"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.formatCommand()
	root.SetVersionTemplate(buildinfo.Template())
	root.AddCommand(c.layoutsCommand())
	root.AddCommand(c.completionCommand())
	return root
}

// configPath returns the config file location using the XDG standard
// (~/.config/tabwrap/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

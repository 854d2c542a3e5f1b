// Package commands implements the CLI commands for hexofm.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dimaslanjaka/hexo-front-matter/cmd"
	"github.com/dimaslanjaka/hexo-front-matter/internal/config"
	fmerrors "github.com/dimaslanjaka/hexo-front-matter/internal/errors"
	"github.com/dimaslanjaka/hexo-front-matter/internal/logging"
	"github.com/dimaslanjaka/hexo-front-matter/pkg/frontmatter"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// cfgFile holds the value of the --config flag.
var cfgFile string

// cfg is the loaded configuration; nil until initConfig runs.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./config.yaml, then XDG config dir)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("hexofm version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(cfgFile)
}

var rootCmd = &cobra.Command{
	Use:   "hexofm",
	Short: "Inspect and edit front matter in content files",
	Long: `hexofm reads and writes the front matter convention used by static
site generators: a metadata block fenced by "---" (YAML) or ";;;" (JSON)
lines, either wrapping the block or trailing it, followed by the document
body.

Documents without front matter are handled gracefully everywhere: parsing
treats them as all body, and editing commands can add a fresh block.`,
	Example: `  # Show a page's metadata
  hexofm parse content/post.md

  # Change the title and mark the post as a draft
  hexofm set content/post.md title="New title" draft=true

  # Clear a key (null value)
  hexofm set content/post.md updated=

  # Remove keys entirely
  hexofm remove content/post.md draft updated`,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		if err := setupLogging(c); err != nil {
			return err
		}
		return checkConfig(c)
	},
	Run: func(c *cobra.Command, args []string) {
		_ = c.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(c *cobra.Command) error {
	if quiet && verbosity > 0 {
		return fmerrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		level = logging.LevelFromVerbosity(verbosity)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(c.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(c.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmerrors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	c.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces configuration problems before any subcommand runs.
func checkConfig(c *cobra.Command) error {
	if c.Name() == "help" || c.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return fmerrors.NewConfigError(configLoadErr)
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		return fmerrors.NewConfigError(errs[0])
	}

	return nil
}

// baseOptions returns the configured stringify defaults. Safe to call even
// when config loading has not run (direct test invocation).
func baseOptions() frontmatter.Options {
	if cfg == nil {
		return frontmatter.Options{Indent: 2}
	}
	return cfg.Options()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

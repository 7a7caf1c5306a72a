package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"todo-api/internal/config"
	"todo-api/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	stores StoreOpener
	out    io.Writer
	errOut io.Writer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(stores StoreOpener, out, errOut io.Writer) *RootCommand {
	root := &RootCommand{
		stores: stores,
		out:    out,
		errOut: errOut,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A REST API for managing tasks",
		Long: `todo serves a small REST API for creating, listing, updating and deleting
tasks stored in an embedded SQLite database.

EXAMPLES:
  todo init-db                             # Create the database schema
  todo serve                               # Serve on :5000
  todo serve --addr 127.0.0.1:8080         # Serve on a custom address
  todo docs --format yaml                  # Print the Swagger document

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  The config file is todo.yaml (or .toml/.json) in the working directory
  or in $HOME/.todo, or the file given with --config.

  Environment variables:
    TODO_DATABASE_DIR                      Database directory (default: .)
    TODO_DATABASE_FILENAME                 Database filename (default: todo.sq3)
    TODO_DATABASE_BUSY_TIMEOUT             SQLite busy timeout (default: 5s)
    TODO_DATABASE_DIR_PERMISSIONS          Mode for a created database directory (default: 0755)
    TODO_SERVER_ADDR                       Listen address (default: :5000)
    TODO_SERVER_BODY_LIMIT                 Request body limit (default: 1M)
    TODO_SERVER_SHUTDOWN_TIMEOUT           Graceful shutdown window (default: 10s)
    TODO_LOGGING_LEVEL                     debug, info, warn or error (default: info)
    TODO_LOGGING_FORMAT                    text or json (default: text)
    TODO_ENV                               development, testing or production (default: production)
    TODO_DEBUG                             Any value forces debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadApp(cmd)
		},
	}
	root.cmd.SetOut(out)
	root.cmd.SetErr(errOut)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command with args
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (default: ./todo.yaml or $HOME/.todo/todo.yaml)")

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TODO_DATABASE_DIR)")
	flags.String("db-filename", "", "Database filename, :memory: for an in-memory database (overrides TODO_DATABASE_FILENAME)")
	flags.Duration("db-busy-timeout", 0, "SQLite busy timeout (overrides TODO_DATABASE_BUSY_TIMEOUT)")

	// Logging configuration
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides TODO_LOGGING_LEVEL)")
	flags.String("log-format", "", "Log format: text or json (overrides TODO_LOGGING_FORMAT)")

	// Application configuration
	flags.String("env", "", "Environment: development, testing, production (overrides TODO_ENV)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API",
		Long: `Create the schema if needed and serve the REST API until interrupted.

SIGINT and SIGTERM trigger a graceful shutdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return NewServeCommand(r.app).Execute(ctx)
		},
	}
	serveCmd.Flags().String("addr", "", "Listen address (overrides TODO_SERVER_ADDR)")

	initDBCmd := &cobra.Command{
		Use:   "init-db",
		Short: "Create the database schema if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewInitDBCommand(r.app).Execute(cmd.Context())
		},
	}

	docsCmd := &cobra.Command{
		Use:   "docs",
		Short: "Print the Swagger 2.0 document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return NewDocsCommand(r.app).Execute(format)
		},
	}
	docsCmd.Flags().String("format", "json", "Output format: json or yaml")

	r.cmd.AddCommand(
		serveCmd,
		initDBCmd,
		docsCmd,
	)
}

// loadApp loads configuration, applies flag overrides and builds the App
func (r *RootCommand) loadApp(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loader.SetConfigFile(path)
	}

	cfg, err := loader.LoadWithOverrides(getConfigFromFlags(cmd.Flags()))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging, r.errOut)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	if used := loader.ConfigFileUsed(); used != "" {
		logger.WithField("file", used).Debug("loaded config file")
	}

	r.app = NewApp(cfg, logger, r.stores, r.out)
	return nil
}

// getConfigFromFlags collects the flags that were set on the command line
func getConfigFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	overrides.DBDir = changedString(flags, "db-dir")
	overrides.DBFilename = changedString(flags, "db-filename")
	if flags.Changed("db-busy-timeout") {
		if d, err := flags.GetDuration("db-busy-timeout"); err == nil {
			overrides.DBBusyTimeout = &d
		}
	}
	overrides.ServerAddr = changedString(flags, "addr")
	overrides.LogLevel = changedString(flags, "log-level")
	overrides.LogFormat = changedString(flags, "log-format")
	overrides.Environment = changedString(flags, "env")

	return overrides
}

func changedString(flags *pflag.FlagSet, name string) *string {
	if flags.Lookup(name) == nil || !flags.Changed(name) {
		return nil
	}
	value, err := flags.GetString(name)
	if err != nil {
		return nil
	}
	return &value
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/phrazzld/task-repository/internal/config"
	"github.com/phrazzld/task-repository/internal/platform/backend"
	"github.com/phrazzld/task-repository/internal/platform/logger"
	"github.com/phrazzld/task-repository/internal/repository"
	"github.com/spf13/cobra"
)

// globalOptions are the flags shared by every subcommand and the state
// built from them before a subcommand runs.
type globalOptions struct {
	configPath string
	envFile    string
	tableName  string

	cfg    *config.Config
	logger *slog.Logger
}

// newRootCmd builds the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "taskctl",
		Short: "Store and fetch tasks in the configured key-value backend",
		Long: `taskctl writes tasks to, and reads them from, the table selected by the
task repository configuration.

Configuration comes from an optional YAML file (--config), an optional
dotenv file (--env-file), and TASKREPO_* environment variables, in
increasing order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before configuration")
	rootCmd.PersistentFlags().StringVar(&opts.tableName, "table", "", "table name (overrides store.table_name)")

	rootCmd.AddCommand(newPutCmd(opts))
	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newMigrateCmd(opts))

	return rootCmd
}

// load reads the env file and configuration and sets up logging on stderr.
func (o *globalOptions) load() error {
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.tableName != "" {
		cfg.Store.TableName = o.tableName
	}

	o.cfg = cfg
	o.logger = logger.SetupWriter(cfg.Log, os.Stderr)
	return nil
}

// openRepository opens the configured backend and returns a repository on
// top of it. The caller closes the backend.
func (o *globalOptions) openRepository(ctx context.Context) (*repository.TaskRepository, *backend.Backend, error) {
	b, err := backend.Open(ctx, o.cfg, false, o.logger)
	if err != nil {
		return nil, nil, err
	}
	return repository.New(o.cfg.Store.TableName, b.Client, o.logger), b, nil
}

package main

import (
	"errors"
	"fmt"

	"github.com/phrazzld/task-repository/internal/domain"
	"github.com/phrazzld/task-repository/internal/store"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type getOptions struct {
	userUUID string
	taskUUID string
}

func newGetCmd(global *globalOptions) *cobra.Command {
	opts := &getOptions{}

	cmd := &cobra.Command{
		Use:   "get [global-id]",
		Short: "Print a stored task as YAML",
		Long: `Fetch a task by its global id, or by --user and --task, and print it as
YAML. A missing task is reported as an error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			globalID, err := opts.globalID(args)
			if err != nil {
				return err
			}

			repo, b, err := global.openRepository(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = b.Close() }()

			task, err := repo.Lookup(cmd.Context(), globalID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("task %q not found", globalID)
				}
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(task); err != nil {
				return fmt.Errorf("failed to render task: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.Flags().StringVar(&opts.userUUID, "user", "", "owning user id")
	cmd.Flags().StringVar(&opts.taskUUID, "task", "", "task id")

	return cmd
}

// globalID resolves the id from the positional argument or the flags.
func (o *getOptions) globalID(args []string) (string, error) {
	byFlags := o.userUUID != "" || o.taskUUID != ""

	switch {
	case len(args) == 1 && byFlags:
		return "", errors.New("pass either a global id or --user and --task, not both")
	case len(args) == 1:
		if _, _, err := domain.SplitGlobalID(args[0]); err != nil {
			return "", err
		}
		return args[0], nil
	case o.userUUID == "" || o.taskUUID == "":
		return "", errors.New("a global id, or both --user and --task, is required")
	default:
		return domain.GlobalID(o.userUUID, o.taskUUID), nil
	}
}

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/task-repository/internal/domain"
	"github.com/spf13/cobra"
)

type putOptions struct {
	userUUID   string
	taskUUID   string
	taskType   string
	state      string
	sourceFile string
	resultFile string
}

func newPutCmd(global *globalOptions) *cobra.Command {
	opts := &putOptions{}

	cmd := &cobra.Command{
		Use:   "put",
		Short: "Write a task, replacing any task with the same identity",
		Long: `Write a whole task record. A task already stored under the same user and
task id is overwritten. When --task is omitted a random id is generated.
The task's global id is printed on success.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := domain.ParseTaskState(opts.state)
			if err != nil {
				return err
			}

			if opts.taskUUID == "" {
				opts.taskUUID = uuid.NewString()
			}

			task, err := domain.NewTask(opts.userUUID, opts.taskUUID, opts.taskType, state, opts.sourceFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("result") {
				task = task.WithResult(opts.resultFile)
			}

			repo, b, err := global.openRepository(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = b.Close() }()

			if err := repo.Store(cmd.Context(), task); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), task.GlobalID())
			return err
		},
	}

	cmd.Flags().StringVar(&opts.userUUID, "user", "", "owning user id")
	cmd.Flags().StringVar(&opts.taskUUID, "task", "", "task id (default: random UUID)")
	cmd.Flags().StringVar(&opts.taskType, "type", "", "task type")
	cmd.Flags().StringVar(&opts.state, "state", domain.TaskStatePending.String(), "task state")
	cmd.Flags().StringVar(&opts.sourceFile, "source", "", "input artifact reference")
	cmd.Flags().StringVar(&opts.resultFile, "result", "", "output artifact reference (omit for an incomplete task)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

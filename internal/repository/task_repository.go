package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/task-repository/internal/domain"
	"github.com/phrazzld/task-repository/internal/platform/logger"
	"github.com/phrazzld/task-repository/internal/redact"
	"github.com/phrazzld/task-repository/internal/store"
)

const entityTask = "task"

// TaskRepository stores and fetches tasks through an ItemClient.
// The client and table name are fixed at construction; the repository holds
// no other state and is safe for concurrent use.
type TaskRepository struct {
	client    store.ItemClient
	tableName string
	logger    *slog.Logger
}

// Ensure TaskRepository implements store.TaskStore interface
var _ store.TaskStore = (*TaskRepository)(nil)

// New creates a TaskRepository bound to tableName. It performs no I/O; a
// misconfigured client surfaces on first use.
// If logger is nil, a default logger will be used.
func New(tableName string, client store.ItemClient, logger *slog.Logger) *TaskRepository {
	if client == nil {
		panic("client cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TaskRepository{
		client:    client,
		tableName: tableName,
		logger: logger.With(
			slog.String("component", "task_repository"),
			slog.String("table", tableName),
		),
	}
}

// TableName returns the table the repository writes to.
func (r *TaskRepository) TableName() string {
	return r.tableName
}

// Store writes the whole task under its global id, replacing any previous
// record with that id. The task is validated first; nothing is written for
// an invalid task. Every failure matches store.ErrRepository.
func (r *TaskRepository) Store(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, r.logger)

	if task == nil {
		return store.NewRepositoryError(entityTask, "put", "nil task", nil)
	}

	globalID := task.GlobalID()

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during store",
			slog.String("task_global_id", globalID),
			slog.String("error", err.Error()))
		return store.NewRepositoryError(entityTask, "put", "invalid task", err)
	}

	item := store.EncodeTask(task)

	log.Debug("putting task",
		slog.String("task_global_id", globalID),
		slog.String("task_type", task.TaskType),
		slog.String("state", task.State.String()),
		slog.Bool("has_result", task.HasResult()),
		slog.Int("attributes", len(item)))

	if err := r.client.PutItem(ctx, r.tableName, item); err != nil {
		log.Error("failed to put task",
			slog.String("task_global_id", globalID),
			slog.String("error", redact.Error(err)))
		return store.NewRepositoryError(entityTask, "put", "request failed", err)
	}

	log.Info("task stored",
		slog.String("task_global_id", globalID),
		slog.String("state", task.State.String()))
	return nil
}

// Fetch returns the task stored under globalID. A missing record, a record
// that does not decode, and a failed request all yield (nil, false); the
// cause is only visible in the logs. Callers that need to tell those apart
// use Lookup.
func (r *TaskRepository) Fetch(ctx context.Context, globalID string) (*domain.Task, bool) {
	task, err := r.Lookup(ctx, globalID)
	if err != nil {
		return nil, false
	}
	return task, true
}

// FetchTask is Fetch addressed by the two identity components.
func (r *TaskRepository) FetchTask(ctx context.Context, userUUID, taskUUID string) (*domain.Task, bool) {
	return r.Fetch(ctx, domain.GlobalID(userUUID, taskUUID))
}

// Lookup returns the task stored under globalID, or an error matching
// store.ErrTaskNotFound, store.ErrMalformedRecord or store.ErrRepository.
// Each failure is logged where it occurs.
func (r *TaskRepository) Lookup(ctx context.Context, globalID string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, r.logger).With(
		slog.String("task_global_id", globalID))

	log.Debug("getting task")

	item, found, err := r.client.GetItem(ctx, r.tableName, store.TaskKey(globalID))
	if err != nil {
		log.Error("failed to get task", slog.String("error", redact.Error(err)))
		return nil, store.NewRepositoryError(entityTask, "get", "request failed", err)
	}

	if !found {
		log.Debug("task not found")
		return nil, store.ErrTaskNotFound
	}

	task, err := store.DecodeTask(item)
	if err != nil {
		var malformed *store.MalformedRecordError
		attrs := []any{slog.String("error", err.Error())}
		if errors.As(err, &malformed) {
			attrs = append(attrs, slog.String("attribute", malformed.Field))
		}
		log.Error("stored task record is malformed", attrs...)
		return nil, err
	}

	log.Debug("task fetched", slog.String("state", task.State.String()))
	return task, nil
}

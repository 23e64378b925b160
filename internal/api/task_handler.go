package api

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-repository/internal/api/shared"
	"github.com/phrazzld/task-repository/internal/domain"
	"github.com/phrazzld/task-repository/internal/platform/logger"
	"github.com/phrazzld/task-repository/internal/store"
)

// TaskHandler serves the task endpoints.
type TaskHandler struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
// If logger is nil, a default logger will be used.
func NewTaskHandler(tasks store.TaskStore, logger *slog.Logger) *TaskHandler {
	if tasks == nil {
		panic("tasks cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_handler")),
	}
}

// Routes registers the task endpoints on r.
func (h *TaskHandler) Routes(r chi.Router) {
	r.Put("/tasks", h.PutTask)
	r.Get("/tasks/{globalID}", h.GetTask)
	r.Get("/users/{userUUID}/tasks/{taskUUID}", h.GetUserTask)
}

// PutTask handles PUT /api/tasks. The whole task is written; a task with
// the same identity is replaced.
func (h *TaskHandler) PutTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req TaskRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid task data", err)
		return
	}

	task, err := req.ToDomain()
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.tasks.Store(r.Context(), task); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task written via API", slog.String("task_global_id", task.GlobalID()))
	w.WriteHeader(http.StatusNoContent)
}

// GetTask handles GET /api/tasks/{globalID}. Clients percent-encode the
// separator, e.g. /api/tasks/u1%23t1.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	globalID, err := pathParam(r, "globalID")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid task id", err)
		return
	}

	if _, _, err := domain.SplitGlobalID(globalID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.respondWithTask(w, r, globalID)
}

// GetUserTask handles GET /api/users/{userUUID}/tasks/{taskUUID}.
func (h *TaskHandler) GetUserTask(w http.ResponseWriter, r *http.Request) {
	userUUID, err := pathParam(r, "userUUID")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid user id", err)
		return
	}

	taskUUID, err := pathParam(r, "taskUUID")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid task id", err)
		return
	}

	h.respondWithTask(w, r, domain.GlobalID(userUUID, taskUUID))
}

func (h *TaskHandler) respondWithTask(w http.ResponseWriter, r *http.Request, globalID string) {
	task, err := h.tasks.Lookup(r.Context(), globalID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// pathParam returns the decoded value of a chi path parameter. chi matches
// on the escaped path when the request carries one, so the value may still
// be percent-encoded.
func pathParam(r *http.Request, name string) (string, error) {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}

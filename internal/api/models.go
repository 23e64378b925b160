package api

import (
	"github.com/phrazzld/task-repository/internal/domain"
)

// TaskRequest is the body of PUT /api/tasks.
type TaskRequest struct {
	UserUUID   string  `json:"user_uuid"   validate:"required"`
	TaskUUID   string  `json:"task_uuid"   validate:"required"`
	TaskType   string  `json:"task_type"   validate:"required"`
	State      string  `json:"state"       validate:"required"`
	SourceFile string  `json:"source_file" validate:"required"`
	ResultFile *string `json:"result_file"`
}

// ToDomain converts the request into a task. The state must be one of the
// canonical state names.
func (r *TaskRequest) ToDomain() (*domain.Task, error) {
	state, err := domain.ParseTaskState(r.State)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		UserUUID:   r.UserUUID,
		TaskUUID:   r.TaskUUID,
		TaskType:   r.TaskType,
		State:      state,
		SourceFile: r.SourceFile,
	}
	if r.ResultFile != nil {
		result := *r.ResultFile
		task.ResultFile = &result
	}
	return task, nil
}

// TaskResponse is the representation of a stored task.
type TaskResponse struct {
	GlobalID   string  `json:"global_id"`
	UserUUID   string  `json:"user_uuid"`
	TaskUUID   string  `json:"task_uuid"`
	TaskType   string  `json:"task_type"`
	State      string  `json:"state"`
	SourceFile string  `json:"source_file"`
	ResultFile *string `json:"result_file,omitempty"`
}

// taskToResponse converts a domain task to its response form.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		GlobalID:   task.GlobalID(),
		UserUUID:   task.UserUUID,
		TaskUUID:   task.TaskUUID,
		TaskType:   task.TaskType,
		State:      task.State.String(),
		SourceFile: task.SourceFile,
		ResultFile: task.ResultFile,
	}
}

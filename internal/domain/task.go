package domain

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Common validation errors for Task
var (
	ErrEmptyUserUUID   = errors.New("task user uuid cannot be empty")
	ErrEmptyTaskUUID   = errors.New("task uuid cannot be empty")
	ErrEmptyTaskType   = errors.New("task type cannot be empty")
	ErrEmptySourceFile = errors.New("task source file cannot be empty")
	ErrInvalidEncoding = errors.New("task field is not valid UTF-8")
)

// Task represents one unit of asynchronous work owned by a user.
// It carries a reference to its input artifact and, once the work has
// produced output, a reference to the result.
type Task struct {
	UserUUID   string    `json:"user_uuid"             yaml:"user_uuid"`
	TaskUUID   string    `json:"task_uuid"             yaml:"task_uuid"`
	TaskType   string    `json:"task_type"             yaml:"task_type"`
	State      TaskState `json:"state"                 yaml:"state"`
	SourceFile string    `json:"source_file"           yaml:"source_file"`
	ResultFile *string   `json:"result_file,omitempty" yaml:"result_file,omitempty"`
}

// NewTask creates a Task without a result file and validates it.
func NewTask(userUUID, taskUUID, taskType string, state TaskState, sourceFile string) (*Task, error) {
	task := &Task{
		UserUUID:   userUUID,
		TaskUUID:   taskUUID,
		TaskType:   taskType,
		State:      state,
		SourceFile: sourceFile,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// GlobalID returns the derived store key for the task.
func (t *Task) GlobalID() string {
	return GlobalID(t.UserUUID, t.TaskUUID)
}

// HasResult reports whether the task has produced an output artifact.
func (t *Task) HasResult() bool {
	return t.ResultFile != nil
}

// WithResult returns a copy of the task pointing at the given result file.
func (t *Task) WithResult(resultFile string) *Task {
	clone := *t
	clone.ResultFile = &resultFile
	return &clone
}

// Validate checks that every required field is set and the state is a
// member of the enumeration.
func (t *Task) Validate() error {
	if t.UserUUID == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyUserUUID)
	}

	if t.TaskUUID == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyTaskUUID)
	}

	if t.TaskType == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyTaskType)
	}

	if !t.State.IsValid() {
		return fmt.Errorf("%w: %w: %s", ErrValidation, ErrInvalidTaskState, t.State)
	}

	if t.SourceFile == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptySourceFile)
	}

	// Backends store strings as UTF-8 text; other bytes do not round-trip.
	fields := [][2]string{
		{"user_uuid", t.UserUUID},
		{"task_uuid", t.TaskUUID},
		{"task_type", t.TaskType},
		{"source_file", t.SourceFile},
	}
	if t.ResultFile != nil {
		fields = append(fields, [2]string{"result_file", *t.ResultFile})
	}
	for _, f := range fields {
		if !utf8.ValidString(f[1]) {
			return fmt.Errorf("%w: %w: %s", ErrValidation, ErrInvalidEncoding, f[0])
		}
	}

	return nil
}

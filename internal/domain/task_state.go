package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTaskState is returned when a string does not name a TaskState.
var ErrInvalidTaskState = errors.New("invalid task state")

// TaskState is the lifecycle stage of a Task.
type TaskState int

// Possible task states. The zero value is not a member.
const (
	TaskStatePending TaskState = iota + 1
	TaskStateInProgress
	TaskStatePaused
	TaskStateFailed
	TaskStateDone
)

// taskStateNames is the single source of truth for the persisted form of
// each state. Parsing uses the inverse built in init.
var taskStateNames = map[TaskState]string{
	TaskStatePending:    "Pending",
	TaskStateInProgress: "InProgress",
	TaskStatePaused:     "Paused",
	TaskStateFailed:     "Failed",
	TaskStateDone:       "Done",
}

var taskStatesByName = make(map[string]TaskState, len(taskStateNames))

func init() {
	for state, name := range taskStateNames {
		taskStatesByName[name] = state
	}
}

// AllTaskStates returns every TaskState in lifecycle order.
func AllTaskStates() []TaskState {
	return []TaskState{
		TaskStatePending,
		TaskStateInProgress,
		TaskStatePaused,
		TaskStateFailed,
		TaskStateDone,
	}
}

// String returns the canonical text form used for storage.
// Values outside the enumeration render as TaskState(n).
func (s TaskState) String() string {
	if name, ok := taskStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("TaskState(%d)", int(s))
}

// IsValid reports whether s is a member of the enumeration.
func (s TaskState) IsValid() bool {
	_, ok := taskStateNames[s]
	return ok
}

// ParseTaskState converts a canonical state string back into a TaskState.
// Matching is exact and case sensitive.
func ParseTaskState(name string) (TaskState, error) {
	state, ok := taskStatesByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTaskState, name)
	}
	return state, nil
}

// MarshalText implements encoding.TextMarshaler so JSON and YAML encoders
// emit the canonical name.
func (s TaskState) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTaskState, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *TaskState) UnmarshalText(text []byte) error {
	state, err := ParseTaskState(string(text))
	if err != nil {
		return err
	}
	*s = state
	return nil
}

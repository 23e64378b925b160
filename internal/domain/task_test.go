package domain

import (
	"errors"
	"testing"
)

func validTask() Task {
	return Task{
		UserUUID:   "u1",
		TaskUUID:   "t1",
		TaskType:   "resize",
		State:      TaskStatePending,
		SourceFile: "in.png",
	}
}

func TestNewTask(t *testing.T) {
	t.Parallel()

	task, err := NewTask("u1", "t1", "resize", TaskStatePending, "in.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ResultFile != nil {
		t.Errorf("Expected no result file, got %q", *task.ResultFile)
	}

	if task.GlobalID() != GlobalID("u1", "t1") {
		t.Errorf("Expected global id %s, got %s", GlobalID("u1", "t1"), task.GlobalID())
	}

	_, err = NewTask("", "t1", "resize", TaskStatePending, "in.png")
	if !errors.Is(err, ErrEmptyUserUUID) {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserUUID, err)
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr error
	}{
		{name: "valid", mutate: func(*Task) {}},
		{name: "empty user uuid", mutate: func(t *Task) { t.UserUUID = "" }, wantErr: ErrEmptyUserUUID},
		{name: "empty task uuid", mutate: func(t *Task) { t.TaskUUID = "" }, wantErr: ErrEmptyTaskUUID},
		{name: "empty task type", mutate: func(t *Task) { t.TaskType = "" }, wantErr: ErrEmptyTaskType},
		{name: "zero state", mutate: func(t *Task) { t.State = 0 }, wantErr: ErrInvalidTaskState},
		{name: "unknown state", mutate: func(t *Task) { t.State = 42 }, wantErr: ErrInvalidTaskState},
		{name: "empty source file", mutate: func(t *Task) { t.SourceFile = "" }, wantErr: ErrEmptySourceFile},
		{name: "invalid utf-8 user uuid", mutate: func(t *Task) { t.UserUUID = "u\xff" }, wantErr: ErrInvalidEncoding},
		{name: "invalid utf-8 task uuid", mutate: func(t *Task) { t.TaskUUID = "\xc3" }, wantErr: ErrInvalidEncoding},
		{name: "invalid utf-8 task type", mutate: func(t *Task) { t.TaskType = "re\xfesize" }, wantErr: ErrInvalidEncoding},
		{name: "invalid utf-8 source file", mutate: func(t *Task) { t.SourceFile = "in\xff.png" }, wantErr: ErrInvalidEncoding},
		{name: "invalid utf-8 result file", mutate: func(t *Task) {
			bad := "out\xff.png"
			t.ResultFile = &bad
		}, wantErr: ErrInvalidEncoding},
		{name: "multibyte text is allowed", mutate: func(t *Task) { t.SourceFile = "фото-圖.png" }},
		{name: "empty result file is allowed", mutate: func(t *Task) {
			empty := ""
			t.ResultFile = &empty
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			task := validTask()
			tt.mutate(&task)

			err := task.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected error to wrap %v, got %v", ErrValidation, err)
			}
		})
	}
}

func TestTaskWithResult(t *testing.T) {
	t.Parallel()

	task := validTask()
	done := task.WithResult("out.png")

	if task.HasResult() {
		t.Error("WithResult must not modify the receiver")
	}
	if !done.HasResult() || *done.ResultFile != "out.png" {
		t.Errorf("Expected result file out.png, got %v", done.ResultFile)
	}
	if done.GlobalID() != task.GlobalID() {
		t.Error("Expected the copy to keep the same identity")
	}
}

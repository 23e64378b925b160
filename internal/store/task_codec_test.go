package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/task-repository/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func newTestTask() *domain.Task {
	return &domain.Task{
		UserUUID:   uuid.NewString(),
		TaskUUID:   uuid.NewString(),
		TaskType:   "resize",
		State:      domain.TaskStatePending,
		SourceFile: "in.png",
	}
}

func TestEncodeTask(t *testing.T) {
	t.Parallel()

	task := &domain.Task{
		UserUUID:   "u1",
		TaskUUID:   "t1",
		TaskType:   "resize",
		State:      domain.TaskStateDone,
		SourceFile: "in.png",
		ResultFile: strPtr("out.png"),
	}

	want := Item{
		"task_global_id": S(domain.GlobalID("u1", "t1")),
		"user_uuid":      S("u1"),
		"task_uuid":      S("t1"),
		"task_type":      S("resize"),
		"state":          S("Done"),
		"source_file":    S("in.png"),
		"result_file":    S("out.png"),
	}

	got := EncodeTask(task)
	assert.True(t, want.Equal(got), "EncodeTask() = %v, want %v", got, want)
}

func TestEncodeTaskOmitsAbsentResultFile(t *testing.T) {
	t.Parallel()

	item := EncodeTask(newTestTask())

	_, ok := item[AttrResultFile]
	assert.False(t, ok, "result_file must not be written for an incomplete task")
	assert.Len(t, item, 6)
}

func TestEncodeTaskKeepsEmptyResultFile(t *testing.T) {
	t.Parallel()

	task := newTestTask()
	task.ResultFile = strPtr("")

	attr, ok := EncodeTask(task)[AttrResultFile]
	require.True(t, ok)
	value, ok := attr.AsString()
	require.True(t, ok)
	assert.Equal(t, "", value)
}

func TestTaskRoundTrip(t *testing.T) {
	t.Parallel()

	withResult := newTestTask()
	withResult.State = domain.TaskStateDone
	withResult.ResultFile = strPtr("out.png")

	emptyResult := newTestTask()
	emptyResult.ResultFile = strPtr("")

	adversarial := newTestTask()
	adversarial.UserUUID = `user#with\separator`
	adversarial.TaskUUID = "#"

	tests := []struct {
		name string
		task *domain.Task
	}{
		{name: "without result file", task: newTestTask()},
		{name: "with result file", task: withResult},
		{name: "with empty result file", task: emptyResult},
		{name: "separator inside identifiers", task: adversarial},
	}

	for _, state := range domain.AllTaskStates() {
		task := newTestTask()
		task.State = state
		tests = append(tests, struct {
			name string
			task *domain.Task
		}{name: "state " + state.String(), task: task})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decoded, err := DecodeTask(EncodeTask(tt.task))
			require.NoError(t, err)
			assert.Equal(t, tt.task, decoded)
		})
	}
}

func TestDecodeTaskOptionality(t *testing.T) {
	t.Parallel()

	item := EncodeTask(newTestTask())

	decoded, err := DecodeTask(item)
	require.NoError(t, err)
	assert.Nil(t, decoded.ResultFile)

	item[AttrResultFile] = S("x")
	decoded, err = DecodeTask(item)
	require.NoError(t, err)
	require.NotNil(t, decoded.ResultFile)
	assert.Equal(t, "x", *decoded.ResultFile)
}

func TestDecodeTaskFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(Item)
		wantField string
		wantErr   error
	}{
		{
			name:      "missing user_uuid",
			mutate:    func(i Item) { delete(i, AttrUserUUID) },
			wantField: AttrUserUUID,
		},
		{
			name:      "missing task_uuid",
			mutate:    func(i Item) { delete(i, AttrTaskUUID) },
			wantField: AttrTaskUUID,
		},
		{
			name:      "missing task_type",
			mutate:    func(i Item) { delete(i, AttrTaskType) },
			wantField: AttrTaskType,
		},
		{
			name:      "missing state",
			mutate:    func(i Item) { delete(i, AttrState) },
			wantField: AttrState,
		},
		{
			name:      "missing source_file",
			mutate:    func(i Item) { delete(i, AttrSourceFile) },
			wantField: AttrSourceFile,
		},
		{
			name:      "bogus state",
			mutate:    func(i Item) { i[AttrState] = S("bogus") },
			wantField: AttrState,
			wantErr:   domain.ErrInvalidTaskState,
		},
		{
			name:      "numeric user_uuid",
			mutate:    func(i Item) { i[AttrUserUUID] = N("42") },
			wantField: AttrUserUUID,
		},
		{
			name:      "null task_type",
			mutate:    func(i Item) { i[AttrTaskType] = Null() },
			wantField: AttrTaskType,
		},
		{
			name:      "boolean result_file",
			mutate:    func(i Item) { i[AttrResultFile] = Bool(true) },
			wantField: AttrResultFile,
		},
		{
			name:      "composite source_file",
			mutate:    func(i Item) { i[AttrSourceFile] = Composite() },
			wantField: AttrSourceFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item := EncodeTask(newTestTask())
			tt.mutate(item)

			task, err := DecodeTask(item)
			require.Error(t, err)
			assert.Nil(t, task, "a failed decode must not return a partial task")
			assert.ErrorIs(t, err, ErrMalformedRecord)

			var malformed *MalformedRecordError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tt.wantField, malformed.Field)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDecodeTaskValidStateText(t *testing.T) {
	t.Parallel()

	item := EncodeTask(newTestTask())
	item[AttrState] = S("InProgress")

	task, err := DecodeTask(item)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStateInProgress, task.State)
}

func TestDecodeTaskIgnoresUnknownAttributes(t *testing.T) {
	t.Parallel()

	want := newTestTask()
	item := EncodeTask(want)
	item["ttl"] = N("1700000000")

	got, err := DecodeTask(item)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPartitionKey(t *testing.T) {
	t.Parallel()

	key, err := PartitionKey(TaskKey("u#t"), TaskKeyAttribute)
	require.NoError(t, err)
	assert.Equal(t, "u#t", key)

	_, err = PartitionKey(Item{}, TaskKeyAttribute)
	assert.ErrorIs(t, err, ErrMalformedRecord)

	_, err = PartitionKey(Item{TaskKeyAttribute: N("1")}, TaskKeyAttribute)
	assert.ErrorIs(t, err, ErrMalformedRecord)

	_, err = PartitionKey(TaskKey(""), TaskKeyAttribute)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

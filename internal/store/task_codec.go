package store

import (
	"fmt"

	"github.com/phrazzld/task-repository/internal/domain"
)

// Attribute names of a stored task. They are a wire contract shared with
// every reader of the table.
const (
	AttrGlobalID   = "task_global_id"
	AttrUserUUID   = "user_uuid"
	AttrTaskUUID   = "task_uuid"
	AttrTaskType   = "task_type"
	AttrState      = "state"
	AttrSourceFile = "source_file"
	AttrResultFile = "result_file"
)

// TaskKeyAttribute is the table's single partition key.
const TaskKeyAttribute = AttrGlobalID

// TaskKey returns the primary key item for a global id.
func TaskKey(globalID string) Item {
	return Item{TaskKeyAttribute: S(globalID)}
}

// EncodeTask converts a Task into its attribute map. result_file is only
// written when the task has one; an absent attribute is how readers tell a
// task that has not completed yet.
func EncodeTask(task *domain.Task) Item {
	item := Item{
		AttrGlobalID:   S(task.GlobalID()),
		AttrUserUUID:   S(task.UserUUID),
		AttrTaskUUID:   S(task.TaskUUID),
		AttrTaskType:   S(task.TaskType),
		AttrState:      S(task.State.String()),
		AttrSourceFile: S(task.SourceFile),
	}

	if task.ResultFile != nil {
		item[AttrResultFile] = S(*task.ResultFile)
	}

	return item
}

// DecodeTask rebuilds a Task from its attribute map. It never returns a
// partially populated Task: any missing or non-string required attribute,
// a non-string result_file, or an unknown state yields a
// *MalformedRecordError.
func DecodeTask(item Item) (*domain.Task, error) {
	userUUID, err := requiredString(item, AttrUserUUID)
	if err != nil {
		return nil, err
	}

	taskUUID, err := requiredString(item, AttrTaskUUID)
	if err != nil {
		return nil, err
	}

	taskType, err := requiredString(item, AttrTaskType)
	if err != nil {
		return nil, err
	}

	stateName, err := requiredString(item, AttrState)
	if err != nil {
		return nil, err
	}

	state, err := domain.ParseTaskState(stateName)
	if err != nil {
		return nil, &MalformedRecordError{
			Field:  AttrState,
			Reason: fmt.Sprintf("holds unknown state %q", stateName),
			Err:    err,
		}
	}

	sourceFile, err := requiredString(item, AttrSourceFile)
	if err != nil {
		return nil, err
	}

	resultFile, err := optionalString(item, AttrResultFile)
	if err != nil {
		return nil, err
	}

	return &domain.Task{
		UserUUID:   userUUID,
		TaskUUID:   taskUUID,
		TaskType:   taskType,
		State:      state,
		SourceFile: sourceFile,
		ResultFile: resultFile,
	}, nil
}

// PartitionKey extracts the string value of the key attribute from an item.
// Backends that index rows by key value use it on both put and get.
func PartitionKey(item Item, keyAttribute string) (string, error) {
	value, err := requiredString(item, keyAttribute)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", &MalformedRecordError{Field: keyAttribute, Reason: "is empty"}
	}
	return value, nil
}

func requiredString(item Item, key string) (string, error) {
	value, err := optionalString(item, key)
	if err != nil {
		return "", err
	}
	if value == nil {
		return "", &MalformedRecordError{Field: key, Reason: "is missing"}
	}
	return *value, nil
}

func optionalString(item Item, key string) (*string, error) {
	attr, ok := item[key]
	if !ok {
		return nil, nil
	}

	value, ok := attr.AsString()
	if !ok {
		return nil, &MalformedRecordError{
			Field:  key,
			Reason: fmt.Sprintf("has type %s, want S", attr.Kind()),
		}
	}
	return &value, nil
}

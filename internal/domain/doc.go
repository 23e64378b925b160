// Package domain defines the Task entity, its lifecycle states and the
// derived identity used as the store key. It has no knowledge of how tasks
// are persisted.
package domain

// Package store defines the persistence boundary for tasks: the weakly typed
// attribute map a key-value backend understands, the lossless conversion
// between that map and domain.Task, the ItemClient capability that backends
// implement, and the error taxonomy shared by every implementation.
//
// Nothing outside this package and the backends under internal/platform
// should handle an Item directly.
package store

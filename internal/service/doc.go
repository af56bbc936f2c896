// Package service contains the task repository: the operations that
// validate input, enforce existence invariants and apply field mutations on
// top of a store.TaskStore.
//
// The service depends on domain entities and the store interface, never on a
// specific storage backend. Each operation runs under a single read/write
// lock, so lookup-then-mutate sequences are atomic with respect to every
// other operation on the same service.
//
// Error handling:
//
//   - Missing tasks on mutating operations yield *domain.TaskDoesNotExistError.
//   - Rejected input yields *domain.ValidationError.
//   - Storage failures are wrapped in *TaskServiceError.
//
// GetTaskDetails reports absence through its boolean result, never as an error.
// The service does not log failures; that is left to the caller.
package service

// Package postgres provides the PostgreSQL implementation of store.TaskStore.
// It handles query execution and the mapping between domain tasks and rows
// of the tasks table created by the embedded migrations.
package postgres

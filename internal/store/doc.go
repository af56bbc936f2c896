// Package store defines the ordered key-value abstraction that backs the
// task repository. Implementations live under internal/platform and must
// return copies of records and traverse values in ascending identifier order.
package store

// Package mysql provides the MySQL implementation of store.TaskStore using
// go-sql-driver/mysql. Task IDs are stored in their canonical lowercase text
// form in an ascii_bin CHAR(36) column, whose ordering matches the byte order
// of the underlying UUID.
package mysql

// Package mocks provides testify-based test doubles for the interfaces in
// internal/store and internal/domain.
package mocks

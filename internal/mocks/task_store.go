package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockTaskStore is a mock of store.TaskStore interface for use with testify/mock
type TestifyMockTaskStore struct {
	mock.Mock
}

var _ store.TaskStore = (*TestifyMockTaskStore)(nil)

// Put is a mock implementation of store.TaskStore.Put
func (m *TestifyMockTaskStore) Put(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

// Get is a mock implementation of store.TaskStore.Get
func (m *TestifyMockTaskStore) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if task, ok := args.Get(0).(*domain.Task); ok {
		return task, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of store.TaskStore.Delete
func (m *TestifyMockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Values is a mock implementation of store.TaskStore.Values
func (m *TestifyMockTaskStore) Values(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	if tasks, ok := args.Get(0).([]*domain.Task); ok {
		return tasks, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockIDGenerator is a mock of domain.IDGenerator
type MockIDGenerator struct {
	mock.Mock
}

var _ domain.IDGenerator = (*MockIDGenerator)(nil)

// NewID is a mock implementation of domain.IDGenerator.NewID
func (m *MockIDGenerator) NewID() (uuid.UUID, error) {
	args := m.Called()
	if id, ok := args.Get(0).(uuid.UUID); ok {
		return id, args.Error(1)
	}
	return uuid.Nil, args.Error(1)
}

// Package storetest provides a conformance suite that every store.TaskStore
// implementation runs from its own tests.
package storetest

import (
	"bytes"
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, empty store for one subtest.
type Factory func(t *testing.T) store.TaskStore

// RunTaskStoreTests exercises the ordered map contract of store.TaskStore.
func RunTaskStoreTests(t *testing.T, newStore Factory) {
	t.Helper()
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		s := newStore(t)

		tasks, err := s.Values(ctx)
		require.NoError(t, err)
		assert.NotNil(t, tasks, "Values should return an empty slice, not nil")
		assert.Empty(t, tasks)

		_, err = s.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		err = s.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("put then get", func(t *testing.T) {
		s := newStore(t)
		task := &domain.Task{ID: uuid.New(), Description: "write spec", Status: "todo"}

		require.NoError(t, s.Put(ctx, task))

		got, err := s.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, task, got)
	})

	t.Run("empty text round trips", func(t *testing.T) {
		s := newStore(t)
		task := &domain.Task{ID: uuid.New()}

		require.NoError(t, s.Put(ctx, task))

		got, err := s.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "", got.Description)
		assert.Equal(t, "", got.Status)
	})

	t.Run("non-ASCII text round trips", func(t *testing.T) {
		s := newStore(t)
		texts := []struct{ description, status string }{
			{"café ✓ 日本語", "状态"},
			{"emoji 🚀 and tab\t", "ready\n"},
			{"\u00a0leading nbsp", "ñ"},
		}

		for _, tc := range texts {
			task := &domain.Task{ID: uuid.New(), Description: tc.description, Status: tc.status}
			require.NoError(t, task.Validate(true), "text accepted by the service must be storable")
			require.NoError(t, s.Put(ctx, task))

			got, err := s.Get(ctx, task.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.description, got.Description)
			assert.Equal(t, tc.status, got.Status)
		}
	})

	t.Run("put replaces", func(t *testing.T) {
		s := newStore(t)
		id := uuid.New()

		require.NoError(t, s.Put(ctx, &domain.Task{ID: id, Description: "a", Status: "todo"}))
		require.NoError(t, s.Put(ctx, &domain.Task{ID: id, Description: "a", Status: "done"}))

		got, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "done", got.Status)

		tasks, err := s.Values(ctx)
		require.NoError(t, err)
		assert.Len(t, tasks, 1)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		s := newStore(t)
		task := &domain.Task{ID: uuid.New(), Description: "original", Status: "todo"}
		require.NoError(t, s.Put(ctx, task))

		task.Description = "mutated after put"
		got, err := s.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "original", got.Description)

		got.Status = "mutated after get"
		again, err := s.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "todo", again.Status)
	})

	t.Run("delete removes only the target", func(t *testing.T) {
		s := newStore(t)
		keep := &domain.Task{ID: uuid.New(), Description: "keep", Status: "todo"}
		drop := &domain.Task{ID: uuid.New(), Description: "drop", Status: "todo"}
		require.NoError(t, s.Put(ctx, keep))
		require.NoError(t, s.Put(ctx, drop))

		require.NoError(t, s.Delete(ctx, drop.ID))

		_, err := s.Get(ctx, drop.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		err = s.Delete(ctx, drop.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound, "second delete should report not found")

		tasks, err := s.Values(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, keep.ID, tasks[0].ID)
	})

	t.Run("values are ordered by ID bytes", func(t *testing.T) {
		s := newStore(t)
		ids := make([]uuid.UUID, 0, 25)
		for i := 0; i < 25; i++ {
			id := uuid.New()
			ids = append(ids, id)
			require.NoError(t, s.Put(ctx, &domain.Task{ID: id, Description: id.String(), Status: "todo"}))
		}
		sort.Slice(ids, func(i, j int) bool {
			return bytes.Compare(ids[i][:], ids[j][:]) < 0
		})

		tasks, err := s.Values(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, len(ids))
		for i, task := range tasks {
			assert.Equal(t, ids[i], task.ID, "position %d", i)
			assert.Equal(t, ids[i].String(), task.Description)
		}
	})

	t.Run("values snapshot is stable", func(t *testing.T) {
		s := newStore(t)
		first := &domain.Task{ID: uuid.New(), Description: "first", Status: "todo"}
		require.NoError(t, s.Put(ctx, first))

		snapshot, err := s.Values(ctx)
		require.NoError(t, err)

		require.NoError(t, s.Put(ctx, &domain.Task{ID: uuid.New(), Description: "second", Status: "todo"}))
		require.NoError(t, s.Delete(ctx, first.ID))

		require.Len(t, snapshot, 1)
		assert.Equal(t, "first", snapshot[0].Description)
	})

	t.Run("canceled context", func(t *testing.T) {
		s := newStore(t)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		err := s.Put(canceled, &domain.Task{ID: uuid.New()})
		assert.Error(t, err)
	})
}

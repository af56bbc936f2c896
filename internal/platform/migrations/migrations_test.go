package migrations

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql"} {
		t.Run(driver, func(t *testing.T) {
			files, err := Files(driver)
			require.NoError(t, err)
			assert.Equal(t, []string{"00001_create_tasks.sql"}, files)
		})
	}

	_, err := Files("bolt")
	assert.Error(t, err)
}

func TestRunRejectsUnknownInput(t *testing.T) {
	ctx := context.Background()

	err := Run(ctx, nil, "memory", CommandUp, nil)
	assert.ErrorContains(t, err, "no migrations for driver")

	err = Run(ctx, nil, "postgres", "sideways", nil)
	assert.ErrorContains(t, err, "unknown migration command")
}

func TestSlogGooseLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &slogGooseLogger{logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	assert.NotPanics(t, func() {
		l.Printf("applied %d migrations", 1)
		l.Fatalf("failed: %s", "boom")
	})
	assert.Contains(t, buf.String(), "applied 1 migrations")
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

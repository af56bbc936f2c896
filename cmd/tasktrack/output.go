package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/phrazzld/tasktrack/internal/domain"
)

var taskHeaders = []string{"ID", "DESCRIPTION", "STATUS"}

// printTask writes a single task: a one-row table or a JSON object.
func (c *cli) printTask(w io.Writer, task *domain.Task) error {
	if c.output == outputJSON {
		return writeJSON(w, task)
	}
	return writeTable(w, []*domain.Task{task})
}

// printTasks writes a task listing: a table or a JSON array.
func (c *cli) printTasks(w io.Writer, tasks []*domain.Task) error {
	if c.output == outputJSON {
		return writeJSON(w, tasks)
	}
	return writeTable(w, tasks)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, tasks []*domain.Task) error {
	table := NewTableFormatter(taskHeaders)
	for _, task := range tasks {
		table.AddRow([]string{task.ID.String(), task.Description, task.Status})
	}
	_, err := fmt.Fprint(w, table.String())
	return err
}

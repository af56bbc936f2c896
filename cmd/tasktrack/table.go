package main

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TableFormatter renders rows as a box-drawn table for terminal output.
type TableFormatter struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTableFormatter creates a new table formatter with headers
func NewTableFormatter(headers []string) *TableFormatter {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	return &TableFormatter{
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row to the table. Rows with the wrong number of cells are ignored.
func (t *TableFormatter) AddRow(row []string) {
	if len(row) != len(t.headers) {
		return
	}
	cells := make([]string, len(row))
	for i, cell := range row {
		// Embedded newlines would break the box layout.
		cells[i] = strings.ReplaceAll(cell, "\n", " ")
		if n := utf8.RuneCountInString(cells[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, cells)
}

// String returns the formatted table
func (t *TableFormatter) String() string {
	var sb strings.Builder

	t.writeBorder(&sb, "┌", "┬", "┐")
	t.writeRow(&sb, t.headers)
	t.writeBorder(&sb, "├", "┼", "┤")
	for _, row := range t.rows {
		t.writeRow(&sb, row)
	}
	t.writeBorder(&sb, "└", "┴", "┘")

	return sb.String()
}

func (t *TableFormatter) writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("│")
	for i, cell := range cells {
		// fmt pads by runes, matching the widths computed above.
		fmt.Fprintf(sb, " %-*s ", t.widths[i], cell)
		sb.WriteString("│")
	}
	sb.WriteString("\n")
}

func (t *TableFormatter) writeBorder(sb *strings.Builder, left, middle, right string) {
	sb.WriteString(left)
	for i, w := range t.widths {
		sb.WriteString(strings.Repeat("─", w+2))
		if i < len(t.widths)-1 {
			sb.WriteString(middle)
		}
	}
	sb.WriteString(right)
	sb.WriteString("\n")
}

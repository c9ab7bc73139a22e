// Package table renders a task tree as a bordered, aligned text table.
//
// Rendering is two passes. Measure walks every task at every depth to find
// the widest name, due and description cells; Render then walks the tree
// in display order and pads every row to those widths, so rows at any depth
// line up under one header:
//
//	------------------------------------------
//	| Name               | Due | Description |
//	------------------------------------------
//	| 1. [ ] Clean       |     |             |
//	|     1. [x] Kitchen |     |             |
//	------------------------------------------
//
// A divider precedes every top-level task; nested rows follow their parent
// directly.
package table

import (
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nibzard/tasktree/internal/todo"
)

// Header labels.
const (
	NameHeader        = "Name"
	DueHeader         = "Due"
	DescriptionHeader = "Description"
)

const (
	// indentWidth is the indentation added per tree level.
	indentWidth = 4
	// decorationWidth covers ". [x] " around the position label.
	decorationWidth = 6
	// borderWidth is the fixed "| " + " | " + " | " + " |" framing a row.
	borderWidth = 10
)

// Widths holds the content width of each column.
type Widths struct {
	Name        int
	Due         int
	Description int
}

// MinWidths fits the header labels.
func MinWidths() Widths {
	return Widths{
		Name:        len(NameHeader),
		Due:         len(DueHeader),
		Description: len(DescriptionHeader),
	}
}

// Total returns the full table width, borders included.
func (w Widths) Total() int {
	return w.Name + w.Due + w.Description + borderWidth
}

func (w Widths) max(o Widths) Widths {
	return Widths{
		Name:        max(w.Name, o.Name),
		Due:         max(w.Due, o.Due),
		Description: max(w.Description, o.Description),
	}
}

// Measure computes the column widths needed by every task in tasks and in
// all of their descendants.
func Measure(tasks []todo.Task) Widths {
	return measure(tasks, 0, MinWidths())
}

func measure(tasks []todo.Task, depth int, widths Widths) Widths {
	for i := range tasks {
		task := &tasks[i]
		widths = widths.max(Widths{
			Name:        nameCellWidth(task, i+1, depth),
			Due:         runewidth.StringWidth(task.Due),
			Description: runewidth.StringWidth(task.Description),
		})
		if !task.IsLeaf() {
			widths = measure(task.Children, depth+1, widths)
		}
	}
	return widths
}

// nameCellWidth is the unpadded width of a task's name cell: indentation,
// position label, decoration and name.
func nameCellWidth(task *todo.Task, position, depth int) int {
	return runewidth.StringWidth(task.Name) + depth*indentWidth + digitCount(position) + decorationWidth
}

func digitCount(n int) int {
	return len(strconv.Itoa(n))
}

// String renders tasks as a table.
func String(tasks []todo.Task) string {
	var b strings.Builder
	writeTable(&b, tasks, Measure(tasks))
	return b.String()
}

// Render writes tasks as a table to w.
func Render(w io.Writer, tasks []todo.Task) error {
	_, err := io.WriteString(w, String(tasks))
	return err
}

func writeTable(b *strings.Builder, tasks []todo.Task, widths Widths) {
	divider := strings.Repeat("-", widths.Total()) + "\n"

	b.WriteString(divider)
	writeRow(b, widths, NameHeader, DueHeader, DescriptionHeader)
	for i := range tasks {
		b.WriteString(divider)
		writeTask(b, &tasks[i], i+1, 0, widths)
	}
	b.WriteString(divider)
}

// writeTask writes a task row followed by its whole subtree.
func writeTask(b *strings.Builder, task *todo.Task, position, depth int, widths Widths) {
	writeRow(b, widths, nameCell(task, position, depth), task.Due, task.Description)
	if task.IsLeaf() {
		return
	}
	for i := range task.Children {
		writeTask(b, &task.Children[i], i+1, depth+1, widths)
	}
}

func nameCell(task *todo.Task, position, depth int) string {
	mark := " "
	if task.Done {
		mark = "x"
	}
	return strings.Repeat(" ", depth*indentWidth) + strconv.Itoa(position) + ". [" + mark + "] " + task.Name
}

func writeRow(b *strings.Builder, widths Widths, name, due, description string) {
	b.WriteString("| ")
	b.WriteString(runewidth.FillRight(name, widths.Name))
	b.WriteString(" | ")
	b.WriteString(runewidth.FillRight(due, widths.Due))
	b.WriteString(" | ")
	b.WriteString(runewidth.FillRight(description, widths.Description))
	b.WriteString(" |\n")
}

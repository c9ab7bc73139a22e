// Package todo holds the task tree and its dotted-path addressing.
package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath reports a path segment that is not a positive integer.
	ErrInvalidPath = errors.New("invalid path")
	// ErrNotFound reports a path segment that is out of range.
	ErrNotFound = errors.New("task not found")
	// ErrEmptyName reports an attempt to create a task without a name.
	ErrEmptyName = errors.New("task name is empty")
)

// PathError records a failed path operation and the path it was given.
type PathError struct {
	Path string // dotted, 1-based as the user wrote it
	Err  error  // ErrInvalidPath or ErrNotFound
}

func (e *PathError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}

// Task is a single to-do entry. It owns its children.
type Task struct {
	Name        string
	Done        bool
	Due         string
	Description string
	Children    []Task
}

// IsLeaf returns true if the task has no children.
func (t *Task) IsLeaf() bool {
	return len(t.Children) == 0
}

// Tree is the root container: an ordered sequence of top-level tasks.
// The zero value is an empty tree ready to use. A Tree is not safe for
// concurrent use.
type Tree struct {
	Tasks []Task
}

// Resolve returns the task at path.
// An empty path, or any out-of-range segment, yields ErrNotFound.
func (t *Tree) Resolve(path Path) (*Task, error) {
	if len(path) == 0 {
		return nil, &PathError{Err: ErrNotFound}
	}
	container, last, err := t.ResolveParent(path)
	if err != nil {
		return nil, err
	}
	if last < 0 || last >= len(*container) {
		return nil, &PathError{Path: path.String(), Err: ErrNotFound}
	}
	return &(*container)[last], nil
}

// ResolveParent returns the sequence holding the task at path and the
// task's index within it. The root sequence is returned for single-segment
// paths. The final index is not range-checked; callers that need the task
// itself must check it.
func (t *Tree) ResolveParent(path Path) (*[]Task, int, error) {
	if len(path) == 0 {
		return nil, 0, &PathError{Err: ErrNotFound}
	}

	container := &t.Tasks
	for _, idx := range path[:len(path)-1] {
		if idx < 0 || idx >= len(*container) {
			return nil, 0, &PathError{Path: path.String(), Err: ErrNotFound}
		}
		container = &(*container)[idx].Children
	}
	return container, path[len(path)-1], nil
}

// Add appends a new, unchecked task under parent and returns its path.
// An empty parent appends to the top level.
func (t *Tree) Add(parent Path, name, due, description string) (Path, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	container := &t.Tasks
	if len(parent) > 0 {
		task, err := t.Resolve(parent)
		if err != nil {
			return nil, err
		}
		container = &task.Children
	}

	*container = append(*container, Task{
		Name:        name,
		Due:         due,
		Description: description,
	})
	return parent.Child(len(*container) - 1), nil
}

// SetStatus marks the task at path done or not done.
func (t *Tree) SetStatus(path Path, done bool) error {
	task, err := t.Resolve(path)
	if err != nil {
		return err
	}
	task.Done = done
	return nil
}

// Delete removes the task at path together with its subtree.
// It returns false, leaving the tree unchanged, when there is nothing at
// path.
func (t *Tree) Delete(path Path) bool {
	container, last, err := t.ResolveParent(path)
	if err != nil {
		return false
	}
	if last < 0 || last >= len(*container) {
		return false
	}
	*container = append((*container)[:last], (*container)[last+1:]...)
	return true
}

// Len returns the number of tasks in the tree at every depth.
func (t *Tree) Len() int {
	n := 0
	t.Walk(func(Path, int, *Task) bool {
		n++
		return true
	})
	return n
}

// WalkFunc is called for every task visited by Walk. Returning false stops
// the walk.
type WalkFunc func(path Path, depth int, task *Task) bool

// Walk visits every task depth-first, pre-order: a task, then its whole
// subtree, then its next sibling.
func (t *Tree) Walk(fn WalkFunc) {
	walk(t.Tasks, nil, fn)
}

func walk(tasks []Task, parent Path, fn WalkFunc) bool {
	for i := range tasks {
		path := parent.Child(i)
		if !fn(path, len(parent), &tasks[i]) {
			return false
		}
		if !walk(tasks[i].Children, path, fn) {
			return false
		}
	}
	return true
}

// Package task defines the task list model and its wire format.
package task

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Task represents a single to-do item.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// IsZero returns true if the task is empty (has no ID).
func (t *Task) IsZero() bool {
	return t.ID == ""
}

// New creates a task with a fresh unique id. The text is stored as
// given; callers reject blank input before creation.
func New(text string) Task {
	return Task{
		ID:   uuid.NewString(),
		Text: text,
	}
}

// List is an ordered collection of tasks. Insertion order is display
// order and persisted order. No two tasks share an id.
type List []Task

// Get returns a task by ID, or nil if not found.
func (l List) Get(id string) *Task {
	for i := range l {
		if l[i].ID == id {
			return &l[i]
		}
	}
	return nil
}

// Index returns the position of the task with the given id, or -1.
func (l List) Index(id string) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// Remove deletes the task with the given id, preserving the relative
// order of the rest. Returns false if no such task exists.
func (l *List) Remove(id string) bool {
	i := l.Index(id)
	if i < 0 {
		return false
	}
	*l = append((*l)[:i], (*l)[i+1:]...)
	return true
}

// Toggle flips the completed flag on the task with the given id.
// Returns false if no such task exists.
func (l List) Toggle(id string) bool {
	t := l.Get(id)
	if t == nil {
		return false
	}
	t.Completed = !t.Completed
	return true
}

// SetText replaces the text on the task with the given id. Empty text
// is allowed. Returns false if no such task exists.
func (l List) SetText(id, text string) bool {
	t := l.Get(id)
	if t == nil {
		return false
	}
	t.Text = text
	return true
}

// Clone returns an independent copy of the list.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// IsBlank reports whether text is empty after trimming whitespace.
// Blank input is rejected on creation but allowed on edit.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Encode serializes the list as a JSON array with 2-space indentation.
// A nil list encodes as an empty array.
func Encode(l List) ([]byte, error) {
	if l == nil {
		l = List{}
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal task list: %w", err)
	}

	// Add trailing newline
	data = append(data, '\n')
	return data, nil
}

// Decode parses and validates a serialized task array. Schema
// violations and duplicate ids are parse failures.
func Decode(data []byte) (List, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse task list: %w", err)
	}
	if err := listSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("validate task list: %w", err)
	}

	var l List
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse task list: %w", err)
	}

	seen := make(map[string]bool, len(l))
	for i := range l {
		if seen[l[i].ID] {
			return nil, fmt.Errorf("validate task list: duplicate id %q", l[i].ID)
		}
		seen[l[i].ID] = true
	}

	return l, nil
}

package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrDuplicateSubItem = errors.New("model: duplicate sub-item")

type Todo struct {
	ID          string
	Title       string
	Due         *time.Time
	SubItems    []string
	Description string
}

func NewTodo(title string) Todo {
	return Todo{
		ID:    uuid.NewString(),
		Title: strings.TrimSpace(title),
	}
}

func (t Todo) HasSubItem(label string) bool {
	for _, item := range t.SubItems {
		if item == label {
			return true
		}
	}
	return false
}

func (t Todo) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: todo id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: todo title is required")
	}
	seen := make(map[string]bool, len(t.SubItems))
	for _, item := range t.SubItems {
		if seen[item] {
			return fmt.Errorf("%w: %q", ErrDuplicateSubItem, item)
		}
		seen[item] = true
	}
	return nil
}

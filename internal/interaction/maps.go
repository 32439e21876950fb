// Package interaction holds the live, in-memory completion state and the pure
// copy-on-write operations that change it.
package interaction

import "github.com/sandeepkv93/habitflower/internal/model"

// ToggleBoolean returns a copy of m with key flipped; absent keys start false.
func ToggleBoolean(m map[string]bool, key string) map[string]bool {
	out := copyBools(m)
	out[key] = !m[key]
	return out
}

// IncrementCount returns a copy of m with key raised by one, capped at ceiling.
// A non-positive ceiling means unbounded.
func IncrementCount(m map[string]int, key string, ceiling int) map[string]int {
	out := copyInts(m)
	next := m[key] + 1
	if ceiling > 0 && next > ceiling {
		next = ceiling
	}
	out[key] = next
	return out
}

// DecrementCount returns a copy of m with key lowered by one, floored at zero.
func DecrementCount(m map[string]int, key string) map[string]int {
	out := copyInts(m)
	next := m[key] - 1
	if next < 0 {
		next = 0
	}
	out[key] = next
	return out
}

// ToggleSubItem flips nested[parent][child], creating the inner map on first
// touch. Untouched parents keep sharing their inner maps with the input.
func ToggleSubItem(nested map[string]map[string]bool, parent, child string) map[string]map[string]bool {
	out := make(map[string]map[string]bool, len(nested)+1)
	for k, v := range nested {
		out[k] = v
	}
	out[parent] = ToggleBoolean(nested[parent], child)
	return out
}

// Partition splits todos into pending and completed, preserving order.
func Partition(todos []model.Todo, checked map[string]bool) (pending, completed []model.Todo) {
	pending = make([]model.Todo, 0, len(todos))
	completed = make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if checked[t.ID] {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	return pending, completed
}

// FilterTodos returns the completed partition when showCompleted is set, else
// the pending one. An empty result is a normal state.
func FilterTodos(todos []model.Todo, checked map[string]bool, showCompleted bool) []model.Todo {
	pending, completed := Partition(todos, checked)
	if showCompleted {
		return completed
	}
	return pending
}

func copyBools(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyInts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

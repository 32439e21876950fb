package model

// InteractionState is the live, session-only completion state keyed by entity
// id. Absent keys read as the zero value, meaning "never interacted with".
type InteractionState struct {
	CheckedHabits      map[string]bool
	HabitCounts        map[string]int
	CheckedTodos       map[string]bool
	SubItemChecked     map[string]map[string]bool
	ShowCompletedTodos bool
}

func NewInteractionState() InteractionState {
	return InteractionState{
		CheckedHabits:  make(map[string]bool),
		HabitCounts:    make(map[string]int),
		CheckedTodos:   make(map[string]bool),
		SubItemChecked: make(map[string]map[string]bool),
	}
}

func (s InteractionState) HabitChecked(id string) bool {
	return s.CheckedHabits[id]
}

func (s InteractionState) HabitCount(id string) int {
	return s.HabitCounts[id]
}

func (s InteractionState) TodoChecked(id string) bool {
	return s.CheckedTodos[id]
}

func (s InteractionState) SubItemDone(todoID, item string) bool {
	return s.SubItemChecked[todoID][item]
}

// Clone deep-copies every map so callers can hand out snapshots safely.
func (s InteractionState) Clone() InteractionState {
	out := InteractionState{
		CheckedHabits:      make(map[string]bool, len(s.CheckedHabits)),
		HabitCounts:        make(map[string]int, len(s.HabitCounts)),
		CheckedTodos:       make(map[string]bool, len(s.CheckedTodos)),
		SubItemChecked:     make(map[string]map[string]bool, len(s.SubItemChecked)),
		ShowCompletedTodos: s.ShowCompletedTodos,
	}
	for k, v := range s.CheckedHabits {
		out.CheckedHabits[k] = v
	}
	for k, v := range s.HabitCounts {
		out.HabitCounts[k] = v
	}
	for k, v := range s.CheckedTodos {
		out.CheckedTodos[k] = v
	}
	for parent, inner := range s.SubItemChecked {
		cp := make(map[string]bool, len(inner))
		for k, v := range inner {
			cp[k] = v
		}
		out.SubItemChecked[parent] = cp
	}
	return out
}

package model

import "strings"

type Friend struct {
	Name       string
	HabitCount int
}

// Username lower-cases the display name and drops all whitespace.
func (f Friend) Username() string {
	return strings.Join(strings.Fields(strings.ToLower(f.Name)), "")
}

// SeedFriends is placeholder social data; there is no friends backend.
func SeedFriends() []Friend {
	names := []string{"Batman", "Superman", "Wonder Woman", "Flash", "Aquaman"}
	out := make([]Friend, 0, len(names))
	for _, n := range names {
		out = append(out, Friend{Name: n, HabitCount: 5})
	}
	return out
}

func SeedActivity() []string {
	return []string{
		"Batman liked your habit",
		"Superman completed a streak",
		"Wonder Woman commented on your post",
		"Flash started a new habit",
		"Aquaman sent a request",
	}
}

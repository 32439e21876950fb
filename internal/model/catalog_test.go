package model

import (
	"errors"
	"testing"
	"time"
)

func TestSeedCatalogIsStable(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	a := Seed(now)
	b := Seed(now.Add(48 * time.Hour))
	if len(a.Habits()) != 3 || len(a.Todos()) != 2 {
		t.Fatalf("unexpected seed sizes: %d habits, %d todos", len(a.Habits()), len(a.Todos()))
	}
	for i := range a.Habits() {
		if a.Habits()[i].ID != b.Habits()[i].ID {
			t.Fatalf("seed id changed between runs: %q vs %q", a.Habits()[i].ID, b.Habits()[i].ID)
		}
	}
	if got := SeedID("habit/push-ups"); got != a.Habits()[1].ID {
		t.Fatalf("SeedID mismatch: %q", got)
	}
}

func TestCatalogLookupByTitleIsCaseFolded(t *testing.T) {
	c := Seed(time.Now())
	h, err := c.FindHabitByTitle("  push-UPS ")
	if err != nil {
		t.Fatalf("find habit: %v", err)
	}
	if h.Title != "Push-ups" {
		t.Fatalf("unexpected habit: %+v", h)
	}
	if _, err := c.FindHabitByTitle("Swim"); !errors.Is(err, ErrUnknownHabit) {
		t.Fatalf("expected ErrUnknownHabit, got %v", err)
	}
	todo, err := c.FindTodoByTitle("grocery run")
	if err != nil || len(todo.SubItems) != 3 {
		t.Fatalf("unexpected todo lookup: %+v %v", todo, err)
	}
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	h := Habit{ID: "same", Title: "A", Kind: HabitKindBoolean}
	g := Habit{ID: "same", Title: "B", Kind: HabitKindBoolean}
	if _, err := NewCatalog([]Habit{h, g}, nil); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	x := Habit{ID: "x", Title: "Walk", Kind: HabitKindBoolean}
	y := Habit{ID: "y", Title: "walk", Kind: HabitKindBoolean}
	c, err := NewCatalog([]Habit{x, y}, nil)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if _, err := c.FindHabitByTitle("Walk"); !errors.Is(err, ErrAmbiguousTitle) {
		t.Fatalf("expected ErrAmbiguousTitle, got %v", err)
	}
}

func TestInteractionStateDefaultsAndClone(t *testing.T) {
	s := NewInteractionState()
	if s.HabitChecked("nope") || s.HabitCount("nope") != 0 || s.TodoChecked("nope") || s.SubItemDone("nope", "Milk") {
		t.Fatal("expected zero values for absent keys")
	}
	s.SubItemChecked["t"] = map[string]bool{"Milk": true}
	cp := s.Clone()
	cp.SubItemChecked["t"]["Milk"] = false
	if !s.SubItemDone("t", "Milk") {
		t.Fatal("clone shares inner map with original")
	}
}

func TestFriendUsername(t *testing.T) {
	f := Friend{Name: "Wonder Woman"}
	if got := f.Username(); got != "wonderwoman" {
		t.Fatalf("username = %q", got)
	}
	if len(SeedFriends()) != 5 || len(SeedActivity()) != 5 {
		t.Fatal("unexpected social seed sizes")
	}
}

package commands

import (
	"errors"
	"testing"
)

func TestParseHabitCommands(t *testing.T) {
	cases := map[string]Type{
		"/check Hit the gym": TypeCheck,
		"inc push-ups":       TypeInc,
		"DEC Push-ups":       TypeDec,
	}
	for input, want := range cases {
		cmd, err := Parse(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if cmd.Type != want || cmd.Habit == nil || cmd.Habit.Title == "" {
			t.Fatalf("parse %q: unexpected command %+v", input, cmd)
		}
	}

	cmd, _ := Parse("/check   Hit the gym ")
	if cmd.Habit.Title != "Hit the gym" {
		t.Fatalf("unexpected title: %q", cmd.Habit.Title)
	}
}

func TestParseSubSplitsOnPipe(t *testing.T) {
	cmd, err := Parse("sub Grocery run | Milk")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Sub == nil || cmd.Sub.Todo != "Grocery run" || cmd.Sub.Item != "Milk" {
		t.Fatalf("unexpected sub args: %+v", cmd.Sub)
	}

	for _, input := range []string{"sub Grocery run", "sub | Milk", "sub Grocery run |"} {
		_, err := Parse(input)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument, got %v", input, err)
		}
	}
}

func TestParseThemeAndTab(t *testing.T) {
	cmd, err := Parse("theme")
	if err != nil || cmd.Theme == nil || cmd.Theme.Scheme != "" {
		t.Fatalf("bare theme should toggle: %+v err=%v", cmd, err)
	}
	cmd, err = Parse("theme Dark")
	if err != nil || cmd.Theme.Scheme != "dark" {
		t.Fatalf("theme dark: %+v err=%v", cmd, err)
	}
	if _, err := Parse("theme sepia"); err == nil {
		t.Fatal("expected unknown theme error")
	}

	cmd, err = Parse("/tab friends")
	if err != nil || cmd.Tab == nil || cmd.Tab.Name != "friends" {
		t.Fatalf("tab friends: %+v err=%v", cmd, err)
	}
	if _, err := Parse("tab"); err == nil {
		t.Fatal("expected missing tab error")
	}
	if _, err := Parse("tab calendar"); err == nil {
		t.Fatal("expected unknown tab error")
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]ErrorCode{
		"":        ErrCodeEmptyInput,
		"  /  ":   ErrCodeEmptyInput,
		"water":   ErrCodeUnknownCommand,
		"check":   ErrCodeInvalidArgument,
		"done   ": ErrCodeInvalidArgument,
	}
	for input, want := range cases {
		_, err := Parse(input)
		var ce *CommandError
		if !errors.As(err, &ce) {
			t.Fatalf("parse %q: expected CommandError, got %v", input, err)
		}
		if ce.Code != want {
			t.Fatalf("parse %q: code = %s, want %s", input, ce.Code, want)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/done Finish assignment")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Done: func(a TodoArgs) (Result, error) {
			called = true
			if a.Title != "Finish assignment" {
				t.Fatalf("unexpected title: %q", a.Title)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("completed")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}

func TestExecuteUnknownType(t *testing.T) {
	_, err := Execute(Command{Type: "snooze"}, Handlers{})
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

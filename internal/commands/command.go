package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeCheck     Type = "check"
	TypeInc       Type = "inc"
	TypeDec       Type = "dec"
	TypeDone      Type = "done"
	TypeSub       Type = "sub"
	TypeCompleted Type = "completed"
	TypeTheme     Type = "theme"
	TypeTab       Type = "tab"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HabitArgs names a habit by its display title.
type HabitArgs struct {
	Title string
}

type TodoArgs struct {
	Title string
}

type SubItemArgs struct {
	Todo string
	Item string
}

type ThemeArgs struct {
	// Scheme is empty when the command should toggle.
	Scheme string
}

type TabArgs struct {
	Name string
}

type Command struct {
	Type  Type
	Raw   string
	Habit *HabitArgs
	Todo  *TodoArgs
	Sub   *SubItemArgs
	Theme *ThemeArgs
	Tab   *TabArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeCheck, TypeInc, TypeDec:
		return parseHabit(input, Type(head), args)
	case TypeDone:
		return parseDone(input, args)
	case TypeSub:
		return parseSub(input, args)
	case TypeCompleted:
		return Command{Type: TypeCompleted, Raw: input}, nil
	case TypeTheme:
		return parseTheme(input, args)
	case TypeTab:
		return parseTab(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseHabit(raw string, typ Type, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a habit title", typ)}
	}
	return Command{Type: typ, Raw: raw, Habit: &HabitArgs{Title: title}}, nil
}

func parseDone(raw string, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "done requires a to-do title"}
	}
	return Command{Type: TypeDone, Raw: raw, Todo: &TodoArgs{Title: title}}, nil
}

// parseSub splits "sub <todo> | <item>"; titles may contain spaces.
func parseSub(raw string, args []string) (Command, error) {
	joined := strings.Join(args, " ")
	todo, item, ok := strings.Cut(joined, "|")
	todo = strings.TrimSpace(todo)
	item = strings.TrimSpace(item)
	if !ok || todo == "" || item == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sub requires: <todo> | <item>"}
	}
	return Command{Type: TypeSub, Raw: raw, Sub: &SubItemArgs{Todo: todo, Item: item}}, nil
}

func parseTheme(raw string, args []string) (Command, error) {
	if len(args) > 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "theme takes at most one argument"}
	}
	scheme := ""
	if len(args) == 1 {
		scheme = strings.ToLower(args[0])
		if scheme != "light" && scheme != "dark" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown theme: %s", args[0])}
		}
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Scheme: scheme}}, nil
}

func parseTab(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "tab requires one of: overview, friends, settings"}
	}
	name := strings.ToLower(args[0])
	switch name {
	case "overview", "friends", "settings":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown tab: %s", args[0])}
	}
	return Command{Type: TypeTab, Raw: raw, Tab: &TabArgs{Name: name}}, nil
}

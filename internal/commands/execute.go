package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Check     func(HabitArgs) (Result, error)
	Inc       func(HabitArgs) (Result, error)
	Dec       func(HabitArgs) (Result, error)
	Done      func(TodoArgs) (Result, error)
	Sub       func(SubItemArgs) (Result, error)
	Completed func() (Result, error)
	Theme     func(ThemeArgs) (Result, error)
	Tab       func(TabArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeCheck:
		if handlers.Check == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Check(*cmd.Habit)
	case TypeInc:
		if handlers.Inc == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Inc(*cmd.Habit)
	case TypeDec:
		if handlers.Dec == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Dec(*cmd.Habit)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Done(*cmd.Todo)
	case TypeSub:
		if handlers.Sub == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Sub(*cmd.Sub)
	case TypeCompleted:
		if handlers.Completed == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Completed()
	case TypeTheme:
		if handlers.Theme == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Theme(*cmd.Theme)
	case TypeTab:
		if handlers.Tab == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Tab(*cmd.Tab)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}

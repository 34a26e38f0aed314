package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Block func(BlockArgs) (Result, error)
	Reset func() (Result, error)
	Add   func(AddArgs) (Result, error)
	Done  func(DoneArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeBlock:
		if handlers.Block == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "block handler not configured"}
		}
		return handlers.Block(*cmd.Block)
	case TypeReset:
		if handlers.Reset == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "reset handler not configured"}
		}
		return handlers.Reset()
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "done handler not configured"}
		}
		return handlers.Done(*cmd.Done)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

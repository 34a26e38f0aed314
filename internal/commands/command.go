package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeBlock Type = "block"
	TypeReset Type = "reset"
	TypeAdd   Type = "add"
	TypeDone  Type = "done"
)

// aliases maps accepted command words onto their canonical type.
var aliases = map[string]Type{
	"block":    TypeBlock,
	"start":    TypeBlock,
	"reset":    TypeReset,
	"stop":     TypeReset,
	"add":      TypeAdd,
	"done":     TypeDone,
	"complete": TypeDone,
}

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

type BlockArgs struct {
	Domain string
}

type AddArgs struct {
	Text string
}

type DoneArgs struct {
	Text string
}

type Command struct {
	Type  Type
	Raw   string
	Block *BlockArgs
	Add   *AddArgs
	Done  *DoneArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	rest := strings.TrimSpace(strings.TrimPrefix(raw, parts[0]))

	typ, ok := aliases[head]
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
	switch typ {
	case TypeBlock:
		if len(parts) != 2 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "block requires exactly one domain"}
		}
		return Command{Type: TypeBlock, Raw: input, Block: &BlockArgs{Domain: parts[1]}}, nil
	case TypeReset:
		return Command{Type: TypeReset, Raw: input}, nil
	case TypeAdd:
		if rest == "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
		}
		return Command{Type: TypeAdd, Raw: input, Add: &AddArgs{Text: rest}}, nil
	default:
		if rest == "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "done requires task text"}
		}
		return Command{Type: TypeDone, Raw: input, Done: &DoneArgs{Text: rest}}, nil
	}
}

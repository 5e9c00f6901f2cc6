package domain

import (
	"context"
	"errors"
	"fmt"
)

type CommandError string

const (
	UnknownCommand    CommandError = "UnknownCommand"
	ParseFailed       CommandError = "ParseFailed"
	UnmetPrecondition CommandError = "UnmetPrecondition"
	Exception         CommandError = "Exception"
)

// Result is the outcome of a single command execution. A zero Error means success.
type Result struct {
	Error  CommandError
	Reason string
}

func Success() Result {
	return Result{}
}

func (r Result) IsSuccess() bool {
	return r.Error == ""
}

func (r Result) String() string {
	if r.IsSuccess() {
		return "Success"
	}

	return fmt.Sprintf("%s: %s", r.Error, r.Reason)
}

// ResultFromError classifies an error returned by a command handler.
func ResultFromError(err error) Result {
	switch {
	case err == nil:
		return Success()
	case errors.Is(err, ErrBadArguments):
		return Result{Error: ParseFailed, Reason: err.Error()}
	case errors.Is(err, ErrUnauthorized):
		return Result{Error: UnmetPrecondition, Reason: err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return Result{Error: Exception, Reason: "command timed out"}
	default:
		return Result{Error: Exception, Reason: err.Error()}
	}
}

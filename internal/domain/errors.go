package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrUnknownCommand = errors.New("I'm sorry, but I don't know what that means :-(")
)

// ValidationError reports an empty or malformed command argument.
type ValidationError struct {
	Op      string // Command keyword: "todo", "deadline", "mark", etc.
	Message string // Human-readable context shown to the user
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("invalid arguments for %s", e.Op)
}

// DateFormatError reports date text that does not match the expected layout.
type DateFormatError struct {
	Field   string // "deadline", "event start", "event end", "search date"
	Input   string
	Pattern string // Human form of the layout, e.g. "yyyy-MM-dd HHmm"
	Example string
	Err     error
}

func (e *DateFormatError) Error() string {
	msg := fmt.Sprintf("Invalid date-time format for %s: %q.", e.Field, e.Input)
	if e.Pattern != "" {
		msg += " Please use " + e.Pattern
		if e.Example != "" {
			msg += " (e.g., " + e.Example + ")"
		}
		msg += "."
	}
	return msg
}

func (e *DateFormatError) Unwrap() error {
	return e.Err
}

// RangeError reports dates that parse but are logically inconsistent.
type RangeError struct {
	Field   string
	Message string
}

func (e *RangeError) Error() string {
	if e.Field != "" && e.Message == "" {
		return fmt.Sprintf("%s is out of range", e.Field)
	}
	return e.Message
}

// NumberFormatError reports a task number that is not an integer.
type NumberFormatError struct {
	Input string
	Err   error
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("The task number you specified must be a valid integer! (got %q)", e.Input)
}

func (e *NumberFormatError) Unwrap() error {
	return e.Err
}

// IndexError reports a zero-based position outside [0, Size).
type IndexError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("There is no task number %d, your task list is empty.", e.Index+1)
	}
	return fmt.Sprintf("There is no task number %d, please pick a number from 1 to %d.", e.Index+1, e.Size)
}

// PersistenceError represents a failure reading or writing task storage.
type PersistenceError struct {
	Op   string // "open", "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("storage %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

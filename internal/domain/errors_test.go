package domain

import (
	"errors"
	"strconv"
	"testing"
)

func TestIndexError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  IndexError
		want string
	}{
		{
			name: "empty list",
			err:  IndexError{Op: "mark", Index: 0, Size: 0},
			want: "There is no task number 1, your task list is empty.",
		},
		{
			name: "past the end",
			err:  IndexError{Op: "delete", Index: 5, Size: 3},
			want: "There is no task number 6, please pick a number from 1 to 3.",
		},
		{
			name: "before the start",
			err:  IndexError{Op: "unmark", Index: -1, Size: 2},
			want: "There is no task number 0, please pick a number from 1 to 2.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("IndexError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  ValidationError
		want string
	}{
		{
			name: "with message",
			err:  ValidationError{Op: "todo", Message: "The description of a todo cannot be empty."},
			want: "The description of a todo cannot be empty.",
		},
		{
			name: "op only",
			err:  ValidationError{Op: "mark"},
			want: "invalid arguments for mark",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateFormatError_Error(t *testing.T) {
	err := &DateFormatError{
		Field:   "deadline",
		Input:   "tomorrow",
		Pattern: StoragePattern,
		Example: "2019-12-02 1800",
	}
	want := `Invalid date-time format for deadline: "tomorrow". Please use yyyy-MM-dd HHmm (e.g., 2019-12-02 1800).`
	if got := err.Error(); got != want {
		t.Errorf("DateFormatError.Error() = %v, want %v", got, want)
	}
}

func TestPersistenceError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  PersistenceError
		want string
	}{
		{
			name: "with path",
			err:  PersistenceError{Op: "save", Path: "data/fiona.txt", Err: errors.New("permission denied")},
			want: "storage save [data/fiona.txt]: permission denied",
		},
		{
			name: "without path",
			err:  PersistenceError{Op: "load", Err: errors.New("database is locked")},
			want: "storage load: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("PersistenceError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrors_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")

	wrapped := []error{
		&PersistenceError{Op: "save", Err: underlying},
		&DateFormatError{Field: "deadline", Err: underlying},
		&NumberFormatError{Input: "abc", Err: underlying},
	}

	for _, err := range wrapped {
		if !errors.Is(err, underlying) {
			t.Errorf("errors.Is(%T, underlying) = false, want true", err)
		}
	}
}

func TestNumberFormatError_FromStrconv(t *testing.T) {
	_, parseErr := strconv.Atoi("two")
	err := error(&NumberFormatError{Input: "two", Err: parseErr})

	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatal("expected strconv.NumError in chain")
	}
	want := `The task number you specified must be a valid integer! (got "two")`
	if got := err.Error(); got != want {
		t.Errorf("NumberFormatError.Error() = %v, want %v", got, want)
	}
}

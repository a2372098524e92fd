package domain

import (
	"strings"
	"time"
)

// Separator joins record fields in storage. Descriptions may not contain
// the bar character or a line break, so a record stays one line.
const Separator = " | "

// DatePolicy decides whether dates already in the past are accepted.
type DatePolicy int

const (
	AllowPast DatePolicy = iota
	RejectPast
)

func (p DatePolicy) String() string {
	switch p {
	case AllowPast:
		return "allow-past"
	case RejectPast:
		return "reject-past"
	default:
		return "unknown"
	}
}

// Factory constructs validated tasks and assigns their sequence identifiers.
type Factory struct {
	Seq    *Sequence
	Policy DatePolicy
	Now    func() time.Time
}

// NewFactory creates a Factory with a fresh sequence and the wall clock
func NewFactory(policy DatePolicy) *Factory {
	return &Factory{
		Seq:    NewSequence(),
		Policy: policy,
		Now:    time.Now,
	}
}

// Todo constructs a plain task.
func (f *Factory) Todo(description string) (Task, error) {
	desc, err := validateDescription("todo", description)
	if err != nil {
		return Task{}, err
	}
	return Task{ID: f.Seq.Next(), Kind: KindTodo, Description: desc}, nil
}

// Deadline constructs a task due at byText (yyyy-MM-dd HHmm).
func (f *Factory) Deadline(description, byText string) (Task, error) {
	desc, err := validateDescription("deadline", description)
	if err != nil {
		return Task{}, err
	}
	by, err := ParseDateTime("deadline", byText)
	if err != nil {
		return Task{}, err
	}
	if f.Policy == RejectPast && by.Before(f.now()) {
		return Task{}, &RangeError{Field: "deadline", Message: "The deadline cannot be before today's date."}
	}
	return Task{ID: f.Seq.Next(), Kind: KindDeadline, Description: desc, By: by}, nil
}

// Event constructs a task spanning fromText to toText (yyyy-MM-dd HHmm).
func (f *Factory) Event(description, fromText, toText string) (Task, error) {
	desc, err := validateDescription("event", description)
	if err != nil {
		return Task{}, err
	}
	from, err := ParseDateTime("event start", fromText)
	if err != nil {
		return Task{}, err
	}
	to, err := ParseDateTime("event end", toText)
	if err != nil {
		return Task{}, err
	}
	if from.After(to) {
		return Task{}, &RangeError{Field: "event", Message: "Start date time cannot be after end date time."}
	}
	if f.Policy == RejectPast && to.Before(f.now()) {
		return Task{}, &RangeError{Field: "event end", Message: "End date cannot be before today's date."}
	}
	return Task{ID: f.Seq.Next(), Kind: KindEvent, Description: desc, From: from, To: to}, nil
}

// now returns the current wall-clock minute
func (f *Factory) now() time.Time {
	if f.Now == nil {
		return WallClock(time.Now())
	}
	return WallClock(f.Now())
}

func validateDescription(op, description string) (string, error) {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return "", &ValidationError{Op: op, Message: "The description of a " + op + " cannot be empty."}
	}
	if strings.Contains(desc, "|") {
		return "", &ValidationError{Op: op, Message: "The description of a " + op + " cannot contain '|'."}
	}
	if strings.ContainsAny(desc, "\r\n") {
		return "", &ValidationError{Op: op, Message: "The description of a " + op + " must fit on one line."}
	}
	return desc, nil
}

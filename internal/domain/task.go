// Package domain contains the task model shared by the parser, list engine and storage codec.
package domain

import (
	"strings"
	"time"
)

// Kind tags the task variant
type Kind int

const (
	KindTodo Kind = iota
	KindDeadline
	KindEvent
)

// Tag returns the single-letter tag used in display and storage
func (k Kind) Tag() string {
	switch k {
	case KindTodo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

// String returns the display string
func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// KindFromTag maps a storage tag back to its Kind.
func KindFromTag(tag string) (Kind, bool) {
	switch tag {
	case "T":
		return KindTodo, true
	case "D":
		return KindDeadline, true
	case "E":
		return KindEvent, true
	default:
		return 0, false
	}
}

// Task is a tagged union over the three variants. By is set only for
// deadlines, From and To only for events.
type Task struct {
	ID          int
	Kind        Kind
	Description string
	Done        bool
	By          time.Time
	From        time.Time
	To          time.Time
}

// MarkDone sets the completion flag.
func (t *Task) MarkDone() {
	t.Done = true
}

// MarkUndone clears the completion flag.
func (t *Task) MarkUndone() {
	t.Done = false
}

// StatusIcon returns the completion marker shown between brackets
func (t Task) StatusIcon() string {
	if t.Done {
		return "X"
	}
	return " "
}

// String renders the task for display, e.g. "[D][ ] return book (by: Jan 01 2030 18:00)".
func (t Task) String() string {
	var b strings.Builder
	b.WriteString("[" + t.Kind.Tag() + "][" + t.StatusIcon() + "] ")
	b.WriteString(t.Description)

	switch t.Kind {
	case KindDeadline:
		b.WriteString(" (by: " + FormatDisplay(t.By) + ")")
	case KindEvent:
		b.WriteString(" (from: " + FormatDisplay(t.From) + " to: " + FormatDisplay(t.To) + ")")
	}
	return b.String()
}

// StorageFields returns the ordered record fields for the storage codec.
func (t Task) StorageFields() []string {
	done := "0"
	if t.Done {
		done = "1"
	}
	fields := []string{t.Kind.Tag(), done, t.Description}

	switch t.Kind {
	case KindDeadline:
		fields = append(fields, FormatStorage(t.By))
	case KindEvent:
		fields = append(fields, FormatStorage(t.From), FormatStorage(t.To))
	}
	return fields
}

// InRange reports whether the task's dates fall within r. Deadlines match
// when due inside r, events when their interval intersects r.
func (t Task) InRange(r DateRange) bool {
	switch t.Kind {
	case KindDeadline:
		return r.Contains(t.By)
	case KindEvent:
		return r.Overlaps(t.From, t.To)
	default:
		return false
	}
}

// ContainsKeyword does a case-insensitive substring match on the description
func (t Task) ContainsKeyword(keyword string) bool {
	return strings.Contains(strings.ToLower(t.Description), strings.ToLower(keyword))
}

// IsOverdue reports whether a dated task has already ended at now.
func (t Task) IsOverdue(now time.Time) bool {
	switch t.Kind {
	case KindDeadline:
		return t.By.Before(now)
	case KindEvent:
		return t.To.Before(now)
	default:
		return false
	}
}

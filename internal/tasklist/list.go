// Package tasklist holds the ordered, in-memory task list.
package tasklist

import (
	"time"

	"github.com/darrenchooji/fiona/internal/domain"
)

// List is an ordered task collection addressed by zero-based position.
// Positions shift after Remove; sequence identifiers never change.
type List struct {
	tasks []domain.Task
}

// New creates a list holding tasks in the given order
func New(tasks ...domain.Task) *List {
	l := &List{tasks: make([]domain.Task, 0, len(tasks))}
	l.tasks = append(l.tasks, tasks...)
	return l
}

// Add appends a task at the end.
func (l *List) Add(task domain.Task) {
	l.tasks = append(l.tasks, task)
}

// Size returns the number of tasks
func (l *List) Size() int {
	return len(l.tasks)
}

// Get returns the task at pos.
func (l *List) Get(pos int) (domain.Task, error) {
	if err := l.check("get", pos); err != nil {
		return domain.Task{}, err
	}
	return l.tasks[pos], nil
}

// Mark sets the task at pos as done and returns it.
func (l *List) Mark(pos int) (domain.Task, error) {
	if err := l.check("mark", pos); err != nil {
		return domain.Task{}, err
	}
	l.tasks[pos].MarkDone()
	return l.tasks[pos], nil
}

// Unmark sets the task at pos as not done and returns it.
func (l *List) Unmark(pos int) (domain.Task, error) {
	if err := l.check("unmark", pos); err != nil {
		return domain.Task{}, err
	}
	l.tasks[pos].MarkUndone()
	return l.tasks[pos], nil
}

// Remove deletes the task at pos and returns it. Later tasks move down by one.
func (l *List) Remove(pos int) (domain.Task, error) {
	if err := l.check("delete", pos); err != nil {
		return domain.Task{}, err
	}
	removed := l.tasks[pos]
	l.tasks = append(l.tasks[:pos], l.tasks[pos+1:]...)
	return removed, nil
}

// Snapshot returns a copy of the tasks in order.
func (l *List) Snapshot() []domain.Task {
	out := make([]domain.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Find returns the tasks matching f, in list order.
func (l *List) Find(f *domain.Filter) []domain.Task {
	return f.Apply(l.Snapshot())
}

// PurgeOverdue removes deadlines and events that ended before now and
// returns them in their former order.
func (l *List) PurgeOverdue(now time.Time) []domain.Task {
	var purged []domain.Task
	kept := l.tasks[:0]
	for _, task := range l.tasks {
		if task.IsOverdue(now) {
			purged = append(purged, task)
			continue
		}
		kept = append(kept, task)
	}
	// Clear the tail so removed tasks are not retained by the backing array
	for i := len(kept); i < len(l.tasks); i++ {
		l.tasks[i] = domain.Task{}
	}
	l.tasks = kept
	return purged
}

func (l *List) check(op string, pos int) error {
	if pos < 0 || pos >= len(l.tasks) {
		return &domain.IndexError{Op: op, Index: pos, Size: len(l.tasks)}
	}
	return nil
}

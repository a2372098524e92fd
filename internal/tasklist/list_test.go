package tasklist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darrenchooji/fiona/internal/domain"
)

func newList(t *testing.T, descriptions ...string) *List {
	t.Helper()
	f := domain.NewFactory(domain.AllowPast)
	l := New()
	for _, desc := range descriptions {
		task, err := f.Todo(desc)
		require.NoError(t, err)
		l.Add(task)
	}
	return l
}

func TestList_AddAppends(t *testing.T) {
	l := newList(t, "a", "b", "c")

	require.Equal(t, 3, l.Size())
	snap := l.Snapshot()
	assert.Equal(t, "a", snap[0].Description)
	assert.Equal(t, "c", snap[2].Description)
}

func TestList_MarkUnmark(t *testing.T) {
	l := newList(t, "a", "b")
	before, err := l.Get(1)
	require.NoError(t, err)

	marked, err := l.Mark(1)
	require.NoError(t, err)
	assert.True(t, marked.Done)
	assert.Equal(t, "[T][X] b", marked.String())

	// Marking twice is fine
	_, err = l.Mark(1)
	require.NoError(t, err)

	unmarked, err := l.Unmark(1)
	require.NoError(t, err)
	assert.Equal(t, before.String(), unmarked.String())

	first, _ := l.Get(0)
	assert.False(t, first.Done, "other tasks are untouched")
}

func TestList_RemoveShiftsLaterTasks(t *testing.T) {
	l := newList(t, "a", "b", "c", "d")
	before := l.Snapshot()

	removed, err := l.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "b", removed.Description)
	assert.Equal(t, 3, l.Size())

	after := l.Snapshot()
	assert.Equal(t, before[0], after[0])
	for i := 2; i < len(before); i++ {
		assert.Equal(t, before[i], after[i-1], "task %d moves down one position", before[i].ID)
	}
}

func TestList_IndexErrors(t *testing.T) {
	tests := []struct {
		name string
		size int
		pos  int
		op   func(l *List, pos int) (domain.Task, error)
	}{
		{"mark on empty list", 0, 0, (*List).Mark},
		{"unmark past end", 2, 2, (*List).Unmark},
		{"delete negative", 2, -1, (*List).Remove},
		{"get past end", 1, 5, (*List).Get},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			for i := 0; i < tt.size; i++ {
				l.Add(domain.Task{ID: i + 1, Kind: domain.KindTodo, Description: "x"})
			}

			_, err := tt.op(l, tt.pos)
			var idxErr *domain.IndexError
			require.ErrorAs(t, err, &idxErr)
			assert.Equal(t, tt.pos, idxErr.Index)
			assert.Equal(t, tt.size, idxErr.Size)
			assert.Equal(t, tt.size, l.Size(), "failed operations leave the list alone")
		})
	}
}

func TestList_SnapshotIsACopy(t *testing.T) {
	l := newList(t, "a")

	snap := l.Snapshot()
	snap[0].Description = "changed"
	snap[0].MarkDone()

	task, _ := l.Get(0)
	assert.Equal(t, "a", task.Description)
	assert.False(t, task.Done)
}

func TestNew_CopiesInput(t *testing.T) {
	tasks := []domain.Task{{ID: 1, Kind: domain.KindTodo, Description: "a"}}
	l := New(tasks...)

	_, err := l.Mark(0)
	require.NoError(t, err)
	assert.False(t, tasks[0].Done)
}

func TestList_Find(t *testing.T) {
	f := domain.NewFactory(domain.AllowPast)
	deadline, _ := f.Deadline("return book", "2025-06-01 0830")
	event, _ := f.Event("camp", "2025-05-30 0000", "2025-06-02 0000")
	late, _ := f.Deadline("submit", "2025-06-02 0001")
	todo, _ := f.Todo("read book")
	l := New(deadline, event, late, todo)

	day, _ := domain.ParseDate("search date", "2025-06-01")
	found := l.Find(domain.NewDateFilter(domain.DayRange(day)))
	require.Len(t, found, 2)
	assert.Equal(t, deadline.ID, found[0].ID)
	assert.Equal(t, event.ID, found[1].ID)

	found = l.Find(domain.NewKeywordFilter("BOOK"))
	require.Len(t, found, 2)
	assert.Equal(t, deadline.ID, found[0].ID)
	assert.Equal(t, todo.ID, found[1].ID)
}

func TestList_PurgeOverdue(t *testing.T) {
	f := domain.NewFactory(domain.AllowPast)
	oldDeadline, _ := f.Deadline("old", "2026-10-01 0900")
	todo, _ := f.Todo("read")
	ongoing, _ := f.Event("conference", "2026-10-18 0900", "2026-10-20 1800")
	oldEvent, _ := f.Event("camp", "2026-09-01 0000", "2026-09-03 0000")
	future, _ := f.Deadline("new", "2026-12-01 0900")
	l := New(oldDeadline, todo, ongoing, oldEvent, future)

	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	purged := l.PurgeOverdue(now)

	require.Len(t, purged, 2)
	assert.Equal(t, "old", purged[0].Description)
	assert.Equal(t, "camp", purged[1].Description)

	var remaining []string
	for _, task := range l.Snapshot() {
		remaining = append(remaining, task.Description)
	}
	assert.Equal(t, []string{"read", "conference", "new"}, remaining)
}

func TestList_PurgeOverdueNothingToDo(t *testing.T) {
	l := newList(t, "a", "b")
	purged := l.PurgeOverdue(time.Now())
	assert.Empty(t, purged)
	assert.Equal(t, 2, l.Size())
}

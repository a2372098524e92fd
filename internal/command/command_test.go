package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"todo buy milk", Command{AddTodo, "buy milk"}},
		{"  TODO   buy milk  ", Command{AddTodo, "buy milk"}},
		{"todo", Command{AddTodo, ""}},
		{"deadline return book /by 2030-01-01 1800", Command{AddDeadline, "return book /by 2030-01-01 1800"}},
		{"Event camp /from 2025-05-30 0000 /to 2025-06-02 0000", Command{AddEvent, "camp /from 2025-05-30 0000 /to 2025-06-02 0000"}},
		{"list", Command{List, ""}},
		{"LIST extra", Command{List, "extra"}},
		{"mark 2", Command{Mark, "2"}},
		{"unmark\t3", Command{Unmark, "3"}},
		{"delete 1", Command{Delete, "1"}},
		{"bye", Command{Exit, ""}},
		{"find 2025-06-01", Command{FindByDate, "2025-06-01"}},
		{"find 2025-06-01 1200", Command{FindByDate, "2025-06-01 1200"}},
		{"find 2025-06-01    1200", Command{FindByDate, "2025-06-01    1200"}},
		{"find book", Command{FindByKeyword, "book"}},
		{"find 2025-6-1", Command{FindByKeyword, "2025-6-1"}},
		{"find due 2025-06-01", Command{FindByKeyword, "due 2025-06-01"}},
		{"find", Command{FindByKeyword, ""}},
		{"blah blah", Command{Unknown, "blah"}},
		{"", Command{Unknown, ""}},
		{"   ", Command{Unknown, ""}},
		{"todos buy milk", Command{Unknown, "buy milk"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.line))
		})
	}
}

func TestIsDateQuery(t *testing.T) {
	assert.True(t, IsDateQuery("2025-02-13"))
	assert.True(t, IsDateQuery("2025-02-13 0900"))
	assert.False(t, IsDateQuery("2025-02-13T0900"))
	assert.False(t, IsDateQuery("2025-02-13 09:00"))
	assert.False(t, IsDateQuery(" 2025-02-13"))
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "todo", AddTodo.String())
	assert.Equal(t, "find-date", FindByDate.String())
	assert.Equal(t, "bye", Exit.String())
	assert.Equal(t, "unknown", Action(99).String())
}

// Package storage persists the task list as line-oriented records.
//
// Every backend shares the same record format:
//
//	T | 0 | read book
//	D | 1 | return book | 2030-01-01 1800
//	E | 0 | project meeting | 2030-08-06 1400 | 2030-08-06 1600
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/darrenchooji/fiona/internal/domain"
)

// MalformedRecordError marks a record that cannot be decoded. Loaders skip
// such records and keep going.
type MalformedRecordError struct {
	Line   int // 1-based, 0 when unknown
	Record string
	Reason string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	msg := "malformed record"
	if e.Line > 0 {
		msg = fmt.Sprintf("malformed record at line %d", e.Line)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// Codec converts between tasks and records. Decoded tasks are built through
// the Factory, so they receive fresh sequence identifiers and pass the same
// validation as tasks created from commands.
type Codec struct {
	factory *domain.Factory
	logger  *slog.Logger
}

// NewCodec creates a codec that constructs tasks with factory
func NewCodec(factory *domain.Factory, logger *slog.Logger) *Codec {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Codec{factory: factory, logger: logger}
}

// Encode renders a task as a single record without a line terminator.
func (c *Codec) Encode(task domain.Task) string {
	return strings.Join(task.StorageFields(), domain.Separator)
}

// Decode parses one record. Any failure is a *MalformedRecordError.
func (c *Codec) Decode(record string) (domain.Task, error) {
	record = strings.TrimRight(record, "\r")
	if strings.TrimSpace(record) == "" {
		return domain.Task{}, &MalformedRecordError{Record: record, Reason: "blank record"}
	}

	fields := strings.Split(record, domain.Separator)
	kind, ok := domain.KindFromTag(fields[0])
	if !ok {
		return domain.Task{}, &MalformedRecordError{Record: record, Reason: fmt.Sprintf("unknown tag %q", fields[0])}
	}

	want := fieldCount(kind)
	if len(fields) != want {
		return domain.Task{}, &MalformedRecordError{
			Record: record,
			Reason: fmt.Sprintf("%s record needs %d fields, got %d", kind, want, len(fields)),
		}
	}

	var done bool
	switch fields[1] {
	case "1":
		done = true
	case "0":
	default:
		return domain.Task{}, &MalformedRecordError{Record: record, Reason: fmt.Sprintf("bad status flag %q", fields[1])}
	}

	var (
		task domain.Task
		err  error
	)
	switch kind {
	case domain.KindTodo:
		task, err = c.factory.Todo(fields[2])
	case domain.KindDeadline:
		task, err = c.factory.Deadline(fields[2], fields[3])
	case domain.KindEvent:
		task, err = c.factory.Event(fields[2], fields[3], fields[4])
	}
	if err != nil {
		return domain.Task{}, &MalformedRecordError{Record: record, Err: err}
	}

	if done {
		task.MarkDone()
	}
	return task, nil
}

func fieldCount(kind domain.Kind) int {
	switch kind {
	case domain.KindDeadline:
		return 4
	case domain.KindEvent:
		return 5
	default:
		return 3
	}
}

// Load reads records from r in order, skipping malformed ones. Only read
// errors are returned.
func (c *Codec) Load(r io.Reader) ([]domain.Task, error) {
	var tasks []domain.Task

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		task, ok := c.decodeLine(line, scanner.Text())
		if ok {
			tasks = append(tasks, task)
		}
	}
	if err := scanner.Err(); err != nil {
		return tasks, fmt.Errorf("reading records: %w", err)
	}
	return tasks, nil
}

// decodeLine decodes a numbered record and logs it when it is skipped
func (c *Codec) decodeLine(line int, record string) (domain.Task, bool) {
	task, err := c.Decode(record)
	if err == nil {
		return task, true
	}

	var malformed *MalformedRecordError
	if errors.As(err, &malformed) {
		malformed.Line = line
	}
	c.logger.Warn("skipping record", "line", line, "error", err)
	return domain.Task{}, false
}

// Save writes one newline-terminated record per task.
func (c *Codec) Save(w io.Writer, tasks []domain.Task) error {
	bw := bufio.NewWriter(w)
	for _, task := range tasks {
		if _, err := bw.WriteString(c.Encode(task) + "\n"); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing records: %w", err)
	}
	return nil
}

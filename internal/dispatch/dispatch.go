// Package dispatch executes parsed commands against the task list.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/darrenchooji/fiona/internal/command"
	"github.com/darrenchooji/fiona/internal/domain"
	"github.com/darrenchooji/fiona/internal/storage"
	"github.com/darrenchooji/fiona/internal/tasklist"
)

// Messages shown to the user
const (
	MsgAdded        = "Got it. I've added this task:"
	MsgEmptyList    = "Your task list is empty!"
	MsgListHeader   = "Here are your existing tasks:"
	MsgMarked       = "Nice! I've marked this task as done:"
	MsgUnmarked     = "OK, I've marked this task as not done yet:"
	MsgRemoved      = "Noted. I've removed this task:"
	MsgDateMatches  = "Here are the matching tasks:"
	MsgNoDateMatch  = "No tasks found matching the date/date-time you provided"
	MsgBye          = "Bye. Hope to see you again soon!"
	MsgNotPersisted = "The change is kept for this session but could not be saved:"
)

type handler func(ctx context.Context, args string) Response

// Dispatcher runs commands against a task list and persists every change.
type Dispatcher struct {
	list     *tasklist.List
	store    storage.Store
	factory  *domain.Factory
	logger   *slog.Logger
	handlers map[command.Action]handler
}

// NewDispatcher creates a dispatcher over list, saving to store
func NewDispatcher(list *tasklist.List, store storage.Store, factory *domain.Factory, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	d := &Dispatcher{
		list:    list,
		store:   store,
		factory: factory,
		logger:  logger,
	}
	d.handlers = map[command.Action]handler{
		command.AddTodo:       d.addTodo,
		command.AddDeadline:   d.addDeadline,
		command.AddEvent:      d.addEvent,
		command.List:          d.listTasks,
		command.Mark:          d.mark,
		command.Unmark:        d.unmark,
		command.Delete:        d.remove,
		command.FindByDate:    d.findByDate,
		command.FindByKeyword: d.findByKeyword,
		command.Exit:          d.exit,
	}
	return d
}

// Dispatch executes cmd. It never panics on bad input: every failure is
// reported through the returned Response.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd command.Command) Response {
	d.logger.Debug("dispatching command", "action", cmd.Action.String(), "args", cmd.Args)

	h, ok := d.handlers[cmd.Action]
	if !ok {
		h = d.unknown
	}

	resp := h(ctx, cmd.Args)
	switch resp.Level {
	case LevelError:
		d.logger.Warn("command failed", "action", cmd.Action.String(), "error", resp.Err)
	case LevelWarning:
		d.logger.Warn("command not persisted", "action", cmd.Action.String(), "error", resp.Err)
	}
	return resp
}

func (d *Dispatcher) addTodo(ctx context.Context, args string) Response {
	task, err := d.factory.Todo(args)
	if err != nil {
		return failure(err)
	}
	return d.added(ctx, task)
}

func (d *Dispatcher) addDeadline(ctx context.Context, args string) Response {
	if !strings.Contains(args, "/by") {
		return failure(&domain.ValidationError{
			Op:      "deadline",
			Message: "The description of a deadline must include a '/by' clause.",
		})
	}
	desc, by, _ := strings.Cut(args, "/by")
	if strings.TrimSpace(desc) == "" || strings.TrimSpace(by) == "" {
		return failure(&domain.ValidationError{
			Op:      "deadline",
			Message: "Invalid format for deadline. Use: deadline <description> /by <yyyy-MM-dd HHmm>",
		})
	}

	task, err := d.factory.Deadline(desc, by)
	if err != nil {
		return failure(err)
	}
	return d.added(ctx, task)
}

func (d *Dispatcher) addEvent(ctx context.Context, args string) Response {
	if !strings.Contains(args, "/from") || !strings.Contains(args, "/to") {
		return failure(&domain.ValidationError{
			Op:      "event",
			Message: "The description of an event must include '/from' and '/to' clauses.",
		})
	}
	usage := &domain.ValidationError{
		Op:      "event",
		Message: "Invalid format for event. Use: event <description> /from <yyyy-MM-dd HHmm> /to <yyyy-MM-dd HHmm>",
	}

	desc, rest, ok := strings.Cut(args, "/from")
	if !ok || strings.TrimSpace(desc) == "" {
		return failure(usage)
	}
	from, to, ok := strings.Cut(rest, "/to")
	if !ok || strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return failure(usage)
	}

	task, err := d.factory.Event(desc, from, to)
	if err != nil {
		return failure(err)
	}
	return d.added(ctx, task)
}

func (d *Dispatcher) added(ctx context.Context, task domain.Task) Response {
	d.list.Add(task)
	return d.persist(ctx, success(MsgAdded, task.String(), d.countLine()))
}

func (d *Dispatcher) listTasks(_ context.Context, _ string) Response {
	tasks := d.list.Snapshot()
	if len(tasks) == 0 {
		return info(MsgEmptyList)
	}
	return info(enumerate(MsgListHeader, tasks)...)
}

func (d *Dispatcher) mark(ctx context.Context, args string) Response {
	pos, err := position("mark", args)
	if err != nil {
		return failure(err)
	}
	task, err := d.list.Mark(pos)
	if err != nil {
		return failure(err)
	}
	return d.persist(ctx, success(MsgMarked, task.String()))
}

func (d *Dispatcher) unmark(ctx context.Context, args string) Response {
	pos, err := position("unmark", args)
	if err != nil {
		return failure(err)
	}
	task, err := d.list.Unmark(pos)
	if err != nil {
		return failure(err)
	}
	return d.persist(ctx, success(MsgUnmarked, task.String()))
}

func (d *Dispatcher) remove(ctx context.Context, args string) Response {
	pos, err := position("delete", args)
	if err != nil {
		return failure(err)
	}
	task, err := d.list.Remove(pos)
	if err != nil {
		return failure(err)
	}
	return d.persist(ctx, success(MsgRemoved, task.String(), d.countLine()))
}

func (d *Dispatcher) findByDate(_ context.Context, args string) Response {
	r, err := searchRange(args)
	if err != nil {
		return failure(err)
	}

	matches := d.list.Find(domain.NewDateFilter(r))
	if len(matches) == 0 {
		return info(MsgNoDateMatch)
	}
	return info(enumerate(MsgDateMatches, matches)...)
}

func (d *Dispatcher) findByKeyword(_ context.Context, args string) Response {
	if args == "" {
		return failure(&domain.ValidationError{Op: "find", Message: "You must specify a keyword or a date to search for."})
	}

	matches := d.list.Find(domain.NewKeywordFilter(args))
	if len(matches) == 0 {
		return info("No tasks found containing the keyword: " + args)
	}
	return info(enumerate("Here are the tasks containing \""+args+"\":", matches)...)
}

func (d *Dispatcher) exit(_ context.Context, _ string) Response {
	return Response{Lines: []string{MsgBye}, Level: LevelInfo, Exit: true}
}

func (d *Dispatcher) unknown(_ context.Context, _ string) Response {
	return failure(domain.ErrUnknownCommand)
}

// persist saves the list after a mutation. The mutation stands even when
// saving fails; the response is downgraded to a warning.
func (d *Dispatcher) persist(ctx context.Context, resp Response) Response {
	if err := d.store.Save(ctx, d.list.Snapshot()); err != nil {
		resp.Level = LevelWarning
		resp.Err = err
		resp.Lines = append(resp.Lines, MsgNotPersisted+" "+err.Error())
	}
	return resp
}

func (d *Dispatcher) countLine() string {
	return fmt.Sprintf("Now you have %d task(s) in the list.", d.list.Size())
}

// position converts a 1-based task number to a list position
func position(op, args string) (int, error) {
	if args == "" {
		return 0, &domain.ValidationError{Op: op, Message: "You must specify a task number to " + op + "."}
	}
	n, err := strconv.Atoi(args)
	if err != nil {
		return 0, &domain.NumberFormatError{Input: args, Err: err}
	}
	return n - 1, nil
}

// searchRange expands a date to the whole day and a date-time to one instant
func searchRange(args string) (domain.DateRange, error) {
	normalized := strings.Join(strings.Fields(args), " ")
	if !strings.Contains(normalized, " ") {
		day, err := domain.ParseDate("search date", normalized)
		if err != nil {
			return domain.DateRange{}, err
		}
		return domain.DayRange(day), nil
	}

	at, err := domain.ParseDateTime("search date", normalized)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.InstantRange(at), nil
}

func enumerate(header string, tasks []domain.Task) []string {
	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, header)
	for i, task := range tasks {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, task))
	}
	return lines
}

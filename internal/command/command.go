// Package command turns an input line into a Command.
package command

import (
	"regexp"
	"strings"
)

// Action identifies what a command asks for
type Action int

const (
	Unknown Action = iota
	AddTodo
	AddDeadline
	AddEvent
	List
	Mark
	Unmark
	Delete
	FindByDate
	FindByKeyword
	Exit
)

var actionNames = map[Action]string{
	Unknown:       "unknown",
	AddTodo:       "todo",
	AddDeadline:   "deadline",
	AddEvent:      "event",
	List:          "list",
	Mark:          "mark",
	Unmark:        "unmark",
	Delete:        "delete",
	FindByDate:    "find-date",
	FindByKeyword: "find-keyword",
	Exit:          "bye",
}

// String returns the display string
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// keywords maps lower-cased command words to actions. "find" is resolved
// separately because its action depends on the argument.
var keywords = map[string]Action{
	"todo":     AddTodo,
	"deadline": AddDeadline,
	"event":    AddEvent,
	"list":     List,
	"mark":     Mark,
	"unmark":   Unmark,
	"delete":   Delete,
	"bye":      Exit,
}

var (
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s+\d{4}$`)
)

// Command is a parsed input line. Args is the trimmed text after the keyword.
type Command struct {
	Action Action
	Args   string
}

// Parse splits line into keyword and arguments. It never fails: unrecognised
// keywords produce an Unknown command and argument checks happen at dispatch.
func Parse(line string) Command {
	line = strings.TrimSpace(line)

	keyword, args := line, ""
	if i := strings.IndexFunc(line, isSpace); i >= 0 {
		keyword, args = line[:i], strings.TrimSpace(line[i:])
	}
	keyword = strings.ToLower(keyword)

	if keyword == "find" {
		return Command{Action: findAction(args), Args: args}
	}
	if action, ok := keywords[keyword]; ok {
		return Command{Action: action, Args: args}
	}
	return Command{Action: Unknown, Args: args}
}

// IsDateQuery reports whether a find argument names a date or date-time
func IsDateQuery(args string) bool {
	return datePattern.MatchString(args) || dateTimePattern.MatchString(args)
}

func findAction(args string) Action {
	if IsDateQuery(args) {
		return FindByDate
	}
	return FindByKeyword
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
}

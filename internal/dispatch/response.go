package dispatch

import "strings"

// Level classifies a response for display
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Response is the narrative produced by one command. Err carries the typed
// failure for Error responses and the persistence failure for Warning ones.
type Response struct {
	Lines []string
	Level Level
	Err   error
	Exit  bool
}

// Text joins the lines with newlines
func (r Response) Text() string {
	return strings.Join(r.Lines, "\n")
}

func info(lines ...string) Response {
	return Response{Lines: lines, Level: LevelInfo}
}

func success(lines ...string) Response {
	return Response{Lines: lines, Level: LevelSuccess}
}

func failure(err error) Response {
	return Response{Lines: []string{err.Error()}, Level: LevelError, Err: err}
}

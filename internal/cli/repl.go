package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/darrenchooji/fiona/internal/dispatch"
	"github.com/darrenchooji/fiona/internal/session"
)

// Divider separates responses in the plain REPL
const Divider = "-------------------------------------------------------------"

// RunREPL reads commands line by line from in until an exit command or EOF,
// writing each response between dividers to out.
func RunREPL(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer) error {
	printResponse(out, sess.Welcome(ctx))

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		printResponse(out, sess.Handle(ctx, line))
		if sess.Exited() {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func printResponse(out io.Writer, resp dispatch.Response) {
	fmt.Fprintln(out, Divider)
	for _, line := range resp.Lines {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, Divider)
}

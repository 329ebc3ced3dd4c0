// Package prompt implements the interactive yes/no question used when the
// local plugin registry needs the user's permission to change an entry.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Terminal asks questions on Out and reads answers line by line from In.
type Terminal struct {
	In  io.Reader
	Out io.Writer
	// Logger records answers taken by default when In is exhausted.
	Logger *slog.Logger

	scanner *bufio.Scanner
}

// NewTerminal returns a Terminal reading from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{In: in, Out: out}
}

// Confirm prints question with a (Y/n) or (y/N) hint and waits for a line.
// An empty answer, or EOF, takes the default. Anything other than y/yes/n/no
// re-asks.
func (t *Terminal) Confirm(ctx context.Context, question string, defaultYes bool) (bool, error) {
	if t.scanner == nil {
		t.scanner = bufio.NewScanner(t.In)
	}

	hint := "(y/N)"
	if defaultYes {
		hint = "(Y/n)"
	}

	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		fmt.Fprintf(t.Out, "? %s %s ", question, hint)
		if !t.scanner.Scan() {
			if err := t.scanner.Err(); err != nil {
				return false, fmt.Errorf("reading answer: %w", err)
			}
			fmt.Fprintln(t.Out)
			if t.Logger != nil {
				t.Logger.Debug("no answer on input, using default", "question", question, "default", defaultYes)
			}
			return defaultYes, nil
		}

		switch strings.TrimSpace(strings.ToLower(t.scanner.Text())) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(t.Out, "Please answer y or n.")
		}
	}
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spachava753/addressbook/commands"
	"github.com/spachava753/addressbook/parser"
)

const (
	messageWelcome = "Welcome to your Address Book!"
	messageGoodbye = "Good bye!"
	prompt         = "Enter command: "
)

// repl reads commands from in until exit, end of input or cancellation.
// Input is read on its own goroutine so cancellation ends the loop even while
// it waits for a line. A line that arrives after cancellation is dropped.
func repl(ctx context.Context, in io.Reader, out io.Writer, session *commands.Session) error {
	fmt.Fprintln(out, messageWelcome)

	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(in, done)

	var err error
loop:
	for {
		if ctx.Err() != nil {
			break
		}
		fmt.Fprint(out, prompt)

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			break loop
		case l, more := <-lines:
			if !more {
				err = <-readErr
				break loop
			}
			line = l
		}
		if ctx.Err() != nil {
			fmt.Fprintln(out)
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		res := session.Execute(ctx, parser.Parse(line))
		fmt.Fprintln(out, formatResult(res))
		if res.Exit {
			break
		}
	}
	fmt.Fprintln(out, messageGoodbye)
	if err != nil {
		return fmt.Errorf("addressbook: reading input failed: %w", err)
	}
	return nil
}

// readLines scans in on a goroutine. The lines channel is closed at end of
// input, after the scanner error has been sent on the error channel. Closing
// done releases a goroutine blocked on a send.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
		close(lines)
	}()
	return lines, errc
}

// formatResult renders a displayed list, private fields hidden, followed by
// the result message.
func formatResult(res commands.Result) string {
	var b strings.Builder
	if res.Listed() {
		for i, p := range res.Persons {
			fmt.Fprintf(&b, "\t%d. %s\n", i+1, p.AsTextHidePrivate())
		}
	}
	b.WriteString(res.Message)
	return b.String()
}

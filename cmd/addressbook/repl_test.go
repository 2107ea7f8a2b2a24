package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/nalgeon/be"
	"github.com/spachava753/addressbook/book"
	"github.com/spachava753/addressbook/commands"
	"github.com/spachava753/addressbook/person"
)

func TestREPLSession(t *testing.T) {
	b, err := book.New()
	be.Err(t, err, nil)
	session := commands.NewSession(b)

	input := strings.Join([]string{
		"add Alice pp/91234567 e/alice@example.com a/1 Main St t/friends",
		"add Bob p/98765432 e/bob@example.com a/2 High St",
		"list",
		"edit 1 p/98765432",
		"",
		"findbynumber 98765432",
		"edit 1 x/1",
		"exit",
		"list",
	}, "\n")

	var out bytes.Buffer
	be.Err(t, repl(context.Background(), strings.NewReader(input), &out, session), nil)

	got := out.String()
	be.True(t, strings.HasPrefix(got, messageWelcome+"\n"))
	be.True(t, strings.Contains(got, "New person added: Alice Phone: (private) 91234567"))
	be.True(t, strings.Contains(got, "\t1. Alice Email: alice@example.com Address: 1 Main St Tags: [friends]\n"))
	be.True(t, strings.Contains(got, "Edited Person: Alice Phone: (private) 98765432"))
	be.True(t, strings.Contains(got, "\t2. Bob Phone: 98765432 Email: bob@example.com Address: 2 High St Tags: \n2 persons listed!"))
	be.True(t, strings.Contains(got, "The contact type: x is invalid"))
	be.True(t, strings.Contains(got, commands.MessageExitAcknowledgement))
	be.True(t, strings.HasSuffix(got, messageGoodbye+"\n"))
	be.Equal(t, strings.Count(got, "persons listed!"), 2)
}

func TestREPLStopsOnCancel(t *testing.T) {
	b, err := book.New()
	be.Err(t, err, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	be.Err(t, repl(ctx, strings.NewReader("list\n"), &out, commands.NewSession(b)), nil)
	be.Equal(t, out.String(), messageWelcome+"\n"+messageGoodbye+"\n")
}

// cancelOnRead cancels its context on the first Read and then hands back a
// line as if the user had typed it after the interrupt.
type cancelOnRead struct {
	cancel context.CancelFunc
	line   string
	read   bool
}

func (r *cancelOnRead) Read(p []byte) (int, error) {
	if r.read {
		return 0, io.EOF
	}
	r.read = true
	r.cancel()
	return copy(p, r.line), nil
}

func TestREPLDropsLineReadAfterCancel(t *testing.T) {
	alice, err := person.NewName("Alice", false)
	be.Err(t, err, nil)
	phone, _ := person.NewPhone("91234567", false)
	email, _ := person.NewEmail("alice@example.com", false)
	address, _ := person.NewAddress("1 Main St", false)
	b, err := book.New(person.New(alice, phone, email, address, person.Tags{}))
	be.Err(t, err, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	in := &cancelOnRead{cancel: cancel, line: "clear\n"}

	var out bytes.Buffer
	be.Err(t, repl(ctx, in, &out, commands.NewSession(b)), nil)

	be.Equal(t, b.Len(), 1)
	be.True(t, !strings.Contains(out.String(), commands.MessageClearSuccess))
	be.True(t, strings.HasSuffix(out.String(), messageGoodbye+"\n"))
}

// blockingReader never returns, like a terminal nobody is typing into.
type blockingReader struct{ unblock chan struct{} }

func (r blockingReader) Read(p []byte) (int, error) {
	<-r.unblock
	return 0, io.EOF
}

func TestREPLStopsWhileWaitingForInput(t *testing.T) {
	b, err := book.New()
	be.Err(t, err, nil)
	ctx, cancel := context.WithCancel(context.Background())
	in := blockingReader{unblock: make(chan struct{})}
	defer close(in.unblock)

	errc := make(chan error, 1)
	var out bytes.Buffer
	go func() { errc <- repl(ctx, in, &out, commands.NewSession(b)) }()

	cancel()
	select {
	case err := <-errc:
		be.Err(t, err, nil)
	case <-time.After(5 * time.Second):
		t.Fatal("repl did not return after cancellation")
	}
	be.True(t, strings.HasSuffix(out.String(), messageGoodbye+"\n"))
}

func TestFormatResult(t *testing.T) {
	res := commands.Result{Code: commands.CodeOK, Message: "done"}
	be.Equal(t, formatResult(res), "done")
}

package commands

import (
	"context"
	"fmt"
)

const (
	// ListWord is the command word of List.
	ListWord = "list"
	// ListUsage describes List.
	ListUsage = ListWord + ":\n" +
		"Displays all persons in the address book as a list with index numbers.\n\t" +
		"Example: " + ListWord

	// ViewWord is the command word of View.
	ViewWord = "view"
	// ViewUsage describes View.
	ViewUsage = ViewWord + ":\n" +
		"Views the non-private details of the person identified by the index number in the last shown person listing.\n\t" +
		"Parameters: INDEX\n\t" +
		"Example: " + ViewWord + " 1"

	// ViewAllWord is the command word of ViewAll.
	ViewAllWord = "viewall"
	// ViewAllUsage describes ViewAll.
	ViewAllUsage = ViewAllWord + ":\n" +
		"Views all details of the person identified by the index number in the last shown person listing.\n\t" +
		"Parameters: INDEX\n\t" +
		"Example: " + ViewAllWord + " 1"

	// MessageViewPersonDetails introduces a viewed person.
	MessageViewPersonDetails = "Viewing person: %s"
)

// List displays every person.
type List struct{}

// Word returns ListWord.
func (List) Word() string { return ListWord }

// Execute lists the book in order.
func (List) Execute(_ context.Context, s *Session) Result {
	return listed(s.book.AllPersons())
}

// View shows the public fields of a displayed person.
type View struct {
	Index int
}

// Word returns ViewWord.
func (View) Word() string { return ViewWord }

// Execute renders the target without private fields.
func (c View) Execute(_ context.Context, s *Session) Result {
	return view(s, c.Index, false)
}

// ViewAll shows every field of a displayed person.
type ViewAll struct {
	Index int
}

// Word returns ViewAllWord.
func (ViewAll) Word() string { return ViewAllWord }

// Execute renders the target with private fields.
func (c ViewAll) Execute(_ context.Context, s *Session) Result {
	return view(s, c.Index, true)
}

func view(s *Session, index int, showPrivate bool) Result {
	target, err := s.TargetPerson(index)
	if err != nil {
		return failed(CodeInvalidIndex, MessageInvalidPersonDisplayedIndex, err)
	}
	if !s.book.Contains(target) {
		return failed(CodePersonNotFound, MessagePersonNotInAddressBook, nil)
	}
	text := target.AsTextHidePrivate()
	if showPrivate {
		text = target.AsTextShowAll()
	}
	return ok(fmt.Sprintf(MessageViewPersonDetails, text))
}

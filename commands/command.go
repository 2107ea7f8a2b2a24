package commands

import (
	"context"
	"fmt"

	"github.com/spachava753/addressbook/person"
)

// Code classifies the outcome of a command.
type Code string

const (
	// CodeOK indicates the command succeeded.
	CodeOK Code = "ok"
	// CodeInvalidIndex indicates the displayed index is out of range.
	CodeInvalidIndex Code = "invalid_index"
	// CodeInvalidContactType indicates an unknown contact type key.
	CodeInvalidContactType Code = "invalid_contact_type"
	// CodeInvalidContactDetail indicates a value failed format validation.
	CodeInvalidContactDetail Code = "invalid_contact_detail"
	// CodePersonNotFound indicates the target left the book before commit.
	CodePersonNotFound Code = "person_not_found"
	// CodeDuplicatePerson indicates the change would duplicate a stored person.
	CodeDuplicatePerson Code = "duplicate_person"
	// CodeInvalidCommand indicates input that does not parse as a command.
	CodeInvalidCommand Code = "invalid_command"
	// CodeMailUnavailable indicates mail is not configured.
	CodeMailUnavailable Code = "mail_unavailable"
	// CodeMailFailed indicates the mail server rejected or dropped the request.
	CodeMailFailed Code = "mail_failed"
	// CodeFailed indicates an unclassified failure.
	CodeFailed Code = "failed"
)

// Result is the uniform outcome of every command.
//
// Persons is set only by commands that display a list; that list becomes the
// session's last-shown list. Err holds the typed cause of a failure.
type Result struct {
	Code    Code
	Message string
	Persons []person.ReadOnly
	Err     error
	Exit    bool

	listed bool
}

// Succeeded reports whether Code is CodeOK.
func (r Result) Succeeded() bool {
	return r.Code == CodeOK
}

// Listed reports whether the result carries a person list, possibly empty.
func (r Result) Listed() bool {
	return r.listed
}

func ok(message string) Result {
	return Result{Code: CodeOK, Message: message}
}

func listed(persons []person.ReadOnly) Result {
	if persons == nil {
		persons = []person.ReadOnly{}
	}
	return Result{
		Code:    CodeOK,
		Message: fmt.Sprintf(MessagePersonsListedOverview, len(persons)),
		Persons: persons,
		listed:  true,
	}
}

func failed(code Code, message string, err error) Result {
	return Result{Code: code, Message: message, Err: err}
}

// Command is one executable user request. A command holds only its
// arguments and is executed once through Session.Execute.
type Command interface {
	Word() string
	Execute(ctx context.Context, s *Session) Result
}

// AddressBook is the collaborator commands read and mutate.
type AddressBook interface {
	AllPersons() []person.ReadOnly
	Contains(target person.ReadOnly) bool
	Add(p *person.Person) error
	Remove(target person.ReadOnly) error
	EditPerson(old person.ReadOnly, updated *person.Person) error
	Clear()
	Version() uint64
}

// IndexError is returned when a displayed index is outside the last-shown
// list.
type IndexError struct {
	Index int
	Size  int
}

// Error returns the formatted error message.
func (e *IndexError) Error() string {
	return fmt.Sprintf("commands: index %d out of range [1, %d]", e.Index, e.Size)
}

// ContactTypeError is returned for a contact type key other than p, e or a.
type ContactTypeError struct {
	Type string
}

// Error returns the formatted error message.
func (e *ContactTypeError) Error() string {
	return fmt.Sprintf("commands: invalid contact type %q", e.Type)
}

// ContactDetailError wraps the validation failure of a new contact value.
type ContactDetailError struct {
	Value string
	Err   error
}

// Error returns the formatted error message.
func (e *ContactDetailError) Error() string {
	return fmt.Sprintf("commands: invalid contact detail %q: %v", e.Value, e.Err)
}

// Unwrap returns the underlying validation error.
func (e *ContactDetailError) Unwrap() error {
	return e.Err
}

package book

import (
	"errors"
	"fmt"

	"github.com/spachava753/addressbook/person"
)

// ErrorCode classifies book errors.
type ErrorCode string

const (
	// ErrorCodeNotFound indicates the referenced person is not in the book.
	ErrorCodeNotFound ErrorCode = "not_found"
	// ErrorCodeDuplicate indicates the change would store two equal persons.
	ErrorCodeDuplicate ErrorCode = "duplicate"
)

// Error is a typed package error for book operations.
type Error struct {
	Code    ErrorCode
	Message string
}

// Error returns the formatted error message.
func (e *Error) Error() string {
	if e == nil {
		return "book: <nil>"
	}
	if e.Message == "" {
		return fmt.Sprintf("book: %s", e.Code)
	}
	return fmt.Sprintf("book: %s: %s", e.Code, e.Message)
}

// IsNotFound reports whether err carries ErrorCodeNotFound.
func IsNotFound(err error) bool {
	return hasCode(err, ErrorCodeNotFound)
}

// IsDuplicate reports whether err carries ErrorCodeDuplicate.
func IsDuplicate(err error) bool {
	return hasCode(err, ErrorCodeDuplicate)
}

func hasCode(err error, code ErrorCode) bool {
	var bookErr *Error
	if !errors.As(err, &bookErr) {
		return false
	}
	return bookErr.Code == code
}

// Book is an ordered list of unique persons.
//
// A Book is not safe for concurrent use; callers serialize access.
type Book struct {
	persons []*person.Person
	version uint64
}

// New returns a book holding persons in order. It fails if two of them are
// equal.
func New(persons ...*person.Person) (*Book, error) {
	b := &Book{}
	for _, p := range persons {
		if err := b.Add(p); err != nil {
			return nil, err
		}
	}
	b.version = 0
	return b, nil
}

// AllPersons returns the stored persons in book order. The slice is a fresh
// copy; the persons are shared read-only views.
func (b *Book) AllPersons() []person.ReadOnly {
	out := make([]person.ReadOnly, 0, len(b.persons))
	for _, p := range b.persons {
		out = append(out, p)
	}
	return out
}

// Len returns the number of stored persons.
func (b *Book) Len() int {
	return len(b.persons)
}

// Version returns a counter that increases on every successful mutation.
func (b *Book) Version() uint64 {
	return b.version
}

// Contains reports whether a person equal to target is stored.
func (b *Book) Contains(target person.ReadOnly) bool {
	return b.indexOf(target) >= 0
}

// Add appends p.
func (b *Book) Add(p *person.Person) error {
	if p == nil {
		return errors.New("book: person is required")
	}
	if b.Contains(p) {
		return duplicateError(p)
	}
	b.persons = append(b.persons, p)
	b.version++
	return nil
}

// Remove deletes the stored person equal to target.
func (b *Book) Remove(target person.ReadOnly) error {
	i := b.indexOf(target)
	if i < 0 {
		return notFoundError(target)
	}
	b.persons = append(b.persons[:i], b.persons[i+1:]...)
	b.version++
	return nil
}

// EditPerson replaces the stored person equal to old with updated, keeping
// its position. Nothing changes when old is missing or when updated equals
// another stored person.
func (b *Book) EditPerson(old person.ReadOnly, updated *person.Person) error {
	if updated == nil {
		return errors.New("book: updated person is required")
	}
	i := b.indexOf(old)
	if i < 0 {
		return notFoundError(old)
	}
	for j, existing := range b.persons {
		if j != i && existing.Equal(updated) {
			return duplicateError(updated)
		}
	}
	b.persons[i] = updated
	b.version++
	return nil
}

// Clear removes every person.
func (b *Book) Clear() {
	b.persons = nil
	b.version++
}

func (b *Book) indexOf(target person.ReadOnly) int {
	if target == nil {
		return -1
	}
	for i, p := range b.persons {
		if p.Equal(target) {
			return i
		}
	}
	return -1
}

func notFoundError(p person.ReadOnly) error {
	msg := ""
	if p != nil {
		msg = p.Name().String()
	}
	return &Error{Code: ErrorCodeNotFound, Message: msg}
}

func duplicateError(p person.ReadOnly) error {
	return &Error{Code: ErrorCodeDuplicate, Message: p.Name().String()}
}

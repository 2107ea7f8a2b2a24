// Package book holds the address book collaborator used by commands.
//
// A Book keeps persons in insertion order and never stores two equal persons
// (see person.Person.Equal). Edits swap a whole record:
//
//	err := b.EditPerson(target, target.WithPhone(newPhone))
//	switch {
//	case book.IsNotFound(err):
//		// target is no longer stored
//	case book.IsDuplicate(err):
//		// the edited record equals another stored person; nothing changed
//	}
//
// Version increases on every successful mutation so callers can tell when
// the book needs to be persisted.
package book

package commands

import (
	"context"
	"fmt"

	"github.com/spachava753/addressbook/book"
	"github.com/spachava753/addressbook/person"
)

const (
	// EditWord is the command word of Edit.
	EditWord = "edit"
	// EditUsage describes Edit.
	EditUsage = EditWord + ":\n" +
		"Edits the default phone, email or address of the person identified by the index number used in the last person listing.\n\t" +
		"Parameters: INDEX TYPE/NEWVALUE (TYPE is p, e or a)\n\t" +
		"Example: " + EditWord + " 1 p/98765432"

	// MessageEditPersonSuccess reports a committed edit.
	MessageEditPersonSuccess = "Edited Person: %s"
)

// Contact type keys accepted by Edit.
const (
	EditContactTypePhone   = "p"
	EditContactTypeEmail   = "e"
	EditContactTypeAddress = "a"
)

// Edit replaces one default contact value of a displayed person.
//
// The new value keeps the privacy flag of the value it replaces. The person
// is swapped as a whole through the book, so a value that would make the
// record equal to another stored person is rejected and nothing changes.
type Edit struct {
	Index       int
	ContactType string
	Value       string
}

// Word returns EditWord.
func (Edit) Word() string { return EditWord }

// Execute resolves the target, builds the edited record and commits it.
func (c Edit) Execute(_ context.Context, s *Session) Result {
	target, err := s.TargetPerson(c.Index)
	if err != nil {
		return failed(CodeInvalidIndex, MessageInvalidPersonDisplayedIndex, err)
	}

	updated, res, built := c.build(target)
	if !built {
		return res
	}

	if err := s.book.EditPerson(target, updated); err != nil {
		return commitFailure(err)
	}
	s.replaceShown(target, updated)
	return ok(fmt.Sprintf(MessageEditPersonSuccess, updated.AsTextShowAll()))
}

func (c Edit) build(target person.ReadOnly) (*person.Person, Result, bool) {
	base := person.Copy(target)
	switch c.ContactType {
	case EditContactTypePhone:
		phone, err := person.NewPhone(c.Value, target.Phone().Private())
		if err != nil {
			return nil, invalidDetail(c.Value, err), false
		}
		return base.WithPhone(phone), Result{}, true
	case EditContactTypeEmail:
		email, err := person.NewEmail(c.Value, target.Email().Private())
		if err != nil {
			return nil, invalidDetail(c.Value, err), false
		}
		return base.WithEmail(email), Result{}, true
	case EditContactTypeAddress:
		address, err := person.NewAddress(c.Value, target.Address().Private())
		if err != nil {
			return nil, invalidDetail(c.Value, err), false
		}
		return base.WithAddress(address), Result{}, true
	default:
		return nil, failed(
			CodeInvalidContactType,
			fmt.Sprintf(MessageInvalidContactType, c.ContactType),
			&ContactTypeError{Type: c.ContactType},
		), false
	}
}

func invalidDetail(value string, err error) Result {
	return failed(
		CodeInvalidContactDetail,
		fmt.Sprintf(MessageInvalidContactDetail, value),
		&ContactDetailError{Value: value, Err: err},
	)
}

func commitFailure(err error) Result {
	switch {
	case book.IsNotFound(err):
		return failed(CodePersonNotFound, MessagePersonNotInAddressBook, err)
	case book.IsDuplicate(err):
		return failed(CodeDuplicatePerson, MessageDuplicatePerson, err)
	default:
		return failed(CodeFailed, err.Error(), err)
	}
}

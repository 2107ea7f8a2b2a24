package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spachava753/addressbook/person"
)

const (
	// AddWord is the command word of Add.
	AddWord = "add"
	// AddUsage describes Add.
	AddUsage = AddWord + ":\n" +
		"Adds a person to the address book. Contact details can be marked private by prepending 'p' to the prefix.\n\t" +
		"Parameters: NAME [p]p/PHONE [p]e/EMAIL [p]a/ADDRESS [t/TAG]...\n\t" +
		"Example: " + AddWord + " John Doe p/98765432 e/johnd@gmail.com a/311, Clementi Ave 2, #02-25 t/friends t/owesMoney"
	// MessageAddSuccess reports an added person.
	MessageAddSuccess = "New person added: %s"

	// DeleteWord is the command word of Delete.
	DeleteWord = "delete"
	// DeleteUsage describes Delete.
	DeleteUsage = DeleteWord + ":\n" +
		"Deletes the person identified by the index number used in the last person listing.\n\t" +
		"Parameters: INDEX\n\t" +
		"Example: " + DeleteWord + " 1"
	// MessageDeleteSuccess reports a deleted person.
	MessageDeleteSuccess = "Deleted Person: %s"

	// ClearWord is the command word of Clear.
	ClearWord = "clear"
	// ClearUsage describes Clear.
	ClearUsage = ClearWord + ":\n" +
		"Clears address book permanently.\n\t" +
		"Example: " + ClearWord
	// MessageClearSuccess reports a cleared book.
	MessageClearSuccess = "Address book has been cleared!"

	// AltWord is the command word of Alt.
	AltWord = "alt"
	// AltUsage describes Alt.
	AltUsage = AltWord + ":\n" +
		"Adds or replaces a typed alternative phone, email or address of the person identified by the index number used in the last person listing. Prepend 'p' to the prefix to make it private.\n\t" +
		"Parameters: INDEX [p]CATEGORY/TYPE/VALUE (CATEGORY is p, e or a)\n\t" +
		"Example: " + AltWord + " 1 p/work/61234567"
	// MessageAltSuccess reports an added alternative value.
	MessageAltSuccess = "Added %s (%s) to: %s"

	// TagWord is the command word of Tag.
	TagWord = "tag"
	// TagUsage describes Tag.
	TagUsage = TagWord + ":\n" +
		"Replaces the tags of the person identified by the index number used in the last person listing. No tags clears them.\n\t" +
		"Parameters: INDEX [t/TAG]...\n\t" +
		"Example: " + TagWord + " 1 t/friends t/colleagues"
	// MessageTagSuccess reports replaced tags.
	MessageTagSuccess = "Tags updated: %s"
)

// Add stores a new person built from raw values.
type Add struct {
	Name           string
	Phone          string
	PhonePrivate   bool
	Email          string
	EmailPrivate   bool
	Address        string
	AddressPrivate bool
	Tags           []string
}

// Word returns AddWord.
func (Add) Word() string { return AddWord }

// Execute validates every value and adds the person.
func (c Add) Execute(_ context.Context, s *Session) Result {
	p, err := c.build()
	if err != nil {
		return invalidValue(err)
	}
	if err := s.book.Add(p); err != nil {
		return commitFailure(err)
	}
	return ok(fmt.Sprintf(MessageAddSuccess, p.AsTextShowAll()))
}

func (c Add) build() (*person.Person, error) {
	name, err := person.NewName(c.Name, false)
	if err != nil {
		return nil, err
	}
	phone, err := person.NewPhone(c.Phone, c.PhonePrivate)
	if err != nil {
		return nil, err
	}
	email, err := person.NewEmail(c.Email, c.EmailPrivate)
	if err != nil {
		return nil, err
	}
	address, err := person.NewAddress(c.Address, c.AddressPrivate)
	if err != nil {
		return nil, err
	}
	tags, err := person.ParseTags(c.Tags...)
	if err != nil {
		return nil, err
	}
	return person.New(name, phone, email, address, tags), nil
}

// invalidValue reports the offending raw value of a validation failure.
func invalidValue(err error) Result {
	var verr *person.ValidationError
	if errors.As(err, &verr) {
		return invalidDetail(verr.Value, err)
	}
	return failed(CodeInvalidContactDetail, err.Error(), err)
}

// Delete removes a displayed person from the book.
type Delete struct {
	Index int
}

// Word returns DeleteWord.
func (Delete) Word() string { return DeleteWord }

// Execute removes the target.
func (c Delete) Execute(_ context.Context, s *Session) Result {
	target, err := s.TargetPerson(c.Index)
	if err != nil {
		return failed(CodeInvalidIndex, MessageInvalidPersonDisplayedIndex, err)
	}
	if err := s.book.Remove(target); err != nil {
		return commitFailure(err)
	}
	return ok(fmt.Sprintf(MessageDeleteSuccess, target.AsTextShowAll()))
}

// Clear removes every person from the book.
type Clear struct{}

// Word returns ClearWord.
func (Clear) Word() string { return ClearWord }

// Execute clears the book.
func (Clear) Execute(_ context.Context, s *Session) Result {
	s.book.Clear()
	return ok(MessageClearSuccess)
}

// Alt adds or replaces a typed alternative value of a displayed person.
type Alt struct {
	Index    int
	Category string
	Type     string
	Value    string
	Private  bool
}

// Word returns AltWord.
func (Alt) Word() string { return AltWord }

var altCategories = map[string]person.Category{
	EditContactTypePhone:   person.CategoryPhone,
	EditContactTypeEmail:   person.CategoryEmail,
	EditContactTypeAddress: person.CategoryAddress,
}

// Execute commits a copy of the target holding the new entry. Alternative
// entries are outside person equality, so the swap never collides.
func (c Alt) Execute(_ context.Context, s *Session) Result {
	target, err := s.TargetPerson(c.Index)
	if err != nil {
		return failed(CodeInvalidIndex, MessageInvalidPersonDisplayedIndex, err)
	}
	category, known := altCategories[c.Category]
	if !known {
		return failed(
			CodeInvalidContactType,
			fmt.Sprintf(MessageInvalidContactType, c.Category),
			&ContactTypeError{Type: c.Category},
		)
	}

	updated := person.Copy(target)
	if err := updated.AddAlternative(category, c.Type, c.Value, c.Private); err != nil {
		var verr *person.ValidationError
		if errors.As(err, &verr) {
			return invalidDetail(c.Value, err)
		}
		return failed(CodeInvalidContactType, fmt.Sprintf(MessageInvalidContactType, c.Type), err)
	}
	if err := s.book.EditPerson(target, updated); err != nil {
		return commitFailure(err)
	}
	s.replaceShown(target, updated)
	return ok(fmt.Sprintf(MessageAltSuccess, category, c.Type, updated.AsTextShowAll()))
}

// Tag replaces the tag set of a displayed person.
type Tag struct {
	Index int
	Tags  []string
}

// Word returns TagWord.
func (Tag) Word() string { return TagWord }

// Execute commits a copy of the target holding the new tags.
func (c Tag) Execute(_ context.Context, s *Session) Result {
	target, err := s.TargetPerson(c.Index)
	if err != nil {
		return failed(CodeInvalidIndex, MessageInvalidPersonDisplayedIndex, err)
	}
	tags, err := person.ParseTags(c.Tags...)
	if err != nil {
		return invalidValue(err)
	}
	updated := person.Copy(target).WithTags(tags)
	if err := s.book.EditPerson(target, updated); err != nil {
		return commitFailure(err)
	}
	s.replaceShown(target, updated)
	return ok(fmt.Sprintf(MessageTagSuccess, updated.AsTextShowAll()))
}

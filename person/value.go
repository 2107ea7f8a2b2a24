package person

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError is returned when a raw string does not satisfy the format
// rule of a value object.
type ValidationError struct {
	Field      string
	Value      string
	Constraint string
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	if e == nil {
		return "person: <nil>"
	}
	return fmt.Sprintf("person: invalid %s %q: %s", e.Field, e.Value, e.Constraint)
}

type rule struct {
	field      string
	pattern    *regexp.Regexp
	constraint string
}

var (
	nameRule = rule{
		field:      "name",
		pattern:    regexp.MustCompile(`^[\p{L} ]+$`),
		constraint: "names may only contain letters and spaces",
	}
	phoneRule = rule{
		field:      "phone",
		pattern:    regexp.MustCompile(`^\d{3,}$`),
		constraint: "phone numbers must be at least 3 digits",
	}
	emailRule = rule{
		field:      "email",
		pattern:    regexp.MustCompile(`^[\w.]+@[\w.]+$`),
		constraint: "emails must be of the form local@domain",
	}
	addressRule = rule{
		field:      "address",
		pattern:    regexp.MustCompile(`^.+$`),
		constraint: "addresses can be in any format but must not be blank",
	}
	tagRule = rule{
		field:      "tag",
		pattern:    regexp.MustCompile(`^[\p{L}\p{N}]+$`),
		constraint: "tags may only contain letters and digits",
	}
)

func (r rule) check(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if !r.pattern.MatchString(value) {
		return "", &ValidationError{Field: r.field, Value: raw, Constraint: r.constraint}
	}
	return value, nil
}

// detail is the shared representation of a contact value.
type detail struct {
	value   string
	private bool
}

func newDetail(r rule, raw string, private bool) (detail, error) {
	value, err := r.check(raw)
	if err != nil {
		return detail{}, err
	}
	return detail{value: value, private: private}, nil
}

// String returns the raw, unmasked value.
func (d detail) String() string {
	return d.value
}

// Private reports whether the value is hidden from restricted views.
func (d detail) Private() bool {
	return d.private
}

// Name is a person's full name.
type Name struct{ detail }

// NewName validates raw and returns a Name.
func NewName(raw string, private bool) (Name, error) {
	d, err := newDetail(nameRule, raw, private)
	return Name{d}, err
}

// Equal compares names by value.
func (n Name) Equal(other Name) bool {
	return n.value == other.value
}

// Words returns the whitespace separated words of the name.
func (n Name) Words() []string {
	return strings.Fields(n.value)
}

// Phone is a phone number made of digits only.
type Phone struct{ detail }

// NewPhone validates raw and returns a Phone.
func NewPhone(raw string, private bool) (Phone, error) {
	d, err := newDetail(phoneRule, raw, private)
	return Phone{d}, err
}

// Equal compares phones by value; the privacy flag is ignored.
func (p Phone) Equal(other Phone) bool {
	return p.value == other.value
}

// Email is an email address.
type Email struct{ detail }

// NewEmail validates raw and returns an Email.
func NewEmail(raw string, private bool) (Email, error) {
	d, err := newDetail(emailRule, raw, private)
	return Email{d}, err
}

// Equal compares emails by value; the privacy flag is ignored.
func (e Email) Equal(other Email) bool {
	return e.value == other.value
}

// Address is a free-form postal address.
type Address struct{ detail }

// NewAddress validates raw and returns an Address.
func NewAddress(raw string, private bool) (Address, error) {
	d, err := newDetail(addressRule, raw, private)
	return Address{d}, err
}

// Equal compares addresses by value; the privacy flag is ignored.
func (a Address) Equal(other Address) bool {
	return a.value == other.value
}

// Tag labels a person. Tags are never private.
type Tag struct {
	name string
}

// NewTag validates raw and returns a Tag.
func NewTag(raw string) (Tag, error) {
	name, err := tagRule.check(raw)
	if err != nil {
		return Tag{}, err
	}
	return Tag{name: name}, nil
}

// String returns the tag name.
func (t Tag) String() string {
	return t.name
}

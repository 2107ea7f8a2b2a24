package person

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
)

// DefaultType is the type key every contact category always holds.
const DefaultType = "default"

const privateMarker = "(private) "

var (
	// ErrDefaultType is returned when an alternative entry targets DefaultType.
	// Defaults are only replaced by building a new Person.
	ErrDefaultType = errors.New("person: the default entry cannot be set as an alternative")
	// ErrEmptyType is returned when an alternative entry has no type key.
	ErrEmptyType = errors.New("person: contact type key is required")
)

// Category selects one of the multi-valued contact fields.
type Category string

const (
	// CategoryPhone selects phone numbers.
	CategoryPhone Category = "phone"
	// CategoryEmail selects email addresses.
	CategoryEmail Category = "email"
	// CategoryAddress selects postal addresses.
	CategoryAddress Category = "address"
)

// Categories lists every contact category in display order.
var Categories = []Category{CategoryPhone, CategoryEmail, CategoryAddress}

// NotFoundError is returned by typed lookups for a type key the person does
// not hold.
type NotFoundError struct {
	Category Category
	Type     string
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e == nil {
		return "person: <nil>"
	}
	return fmt.Sprintf("person: no %s of type %q", e.Category, e.Type)
}

// Entry is one typed contact value, flattened for storage and display.
type Entry struct {
	Type    string
	Value   string
	Private bool
}

// ReadOnly is the read-only view of a person shared with commands and the
// book.
type ReadOnly interface {
	Name() Name
	Phone() Phone
	PhoneOf(typ string) (Phone, error)
	Email() Email
	EmailOf(typ string) (Email, error)
	Address() Address
	AddressOf(typ string) (Address, error)
	Tags() Tags
	Entries(category Category) []Entry
	AsTextShowAll() string
	AsTextHidePrivate() string
}

// Person is an address book record.
//
// Every contact category holds a DefaultType entry at all times. Equality
// covers the name, the three defaults and the tag set; alternative entries
// are not part of a person's identity.
type Person struct {
	name      Name
	phones    typed[Phone]
	emails    typed[Email]
	addresses typed[Address]
	tags      Tags
}

var _ ReadOnly = (*Person)(nil)

// New returns a fully formed person. The tag set is copied.
func New(name Name, phone Phone, email Email, address Address, tags Tags) *Person {
	return &Person{
		name:      name,
		phones:    newTyped(phone),
		emails:    newTyped(email),
		addresses: newTyped(address),
		tags:      tags.clone(),
	}
}

// Copy returns a person holding the same name, contact entries and tags as
// source.
func Copy(source ReadOnly) *Person {
	if p, ok := source.(*Person); ok {
		return p.clone()
	}
	p := New(source.Name(), source.Phone(), source.Email(), source.Address(), source.Tags())
	for _, category := range Categories {
		for _, entry := range source.Entries(category) {
			if entry.Type == DefaultType {
				continue
			}
			// Values already passed validation in source.
			_ = p.AddAlternative(category, entry.Type, entry.Value, entry.Private)
		}
	}
	return p
}

func (p *Person) clone() *Person {
	return &Person{
		name:      p.name,
		phones:    p.phones.clone(),
		emails:    p.emails.clone(),
		addresses: p.addresses.clone(),
		tags:      p.tags.clone(),
	}
}

// Name returns the person's name.
func (p *Person) Name() Name {
	return p.name
}

// Phone returns the default phone.
func (p *Person) Phone() Phone {
	return p.phones.def()
}

// PhoneOf returns the phone stored under typ.
func (p *Person) PhoneOf(typ string) (Phone, error) {
	v, ok := p.phones.get(typ)
	if !ok {
		return Phone{}, &NotFoundError{Category: CategoryPhone, Type: typ}
	}
	return v, nil
}

// Email returns the default email.
func (p *Person) Email() Email {
	return p.emails.def()
}

// EmailOf returns the email stored under typ.
func (p *Person) EmailOf(typ string) (Email, error) {
	v, ok := p.emails.get(typ)
	if !ok {
		return Email{}, &NotFoundError{Category: CategoryEmail, Type: typ}
	}
	return v, nil
}

// Address returns the default address.
func (p *Person) Address() Address {
	return p.addresses.def()
}

// AddressOf returns the address stored under typ.
func (p *Person) AddressOf(typ string) (Address, error) {
	v, ok := p.addresses.get(typ)
	if !ok {
		return Address{}, &NotFoundError{Category: CategoryAddress, Type: typ}
	}
	return v, nil
}

func checkAlternativeType(typ string) (string, error) {
	typ = strings.TrimSpace(typ)
	switch typ {
	case "":
		return "", ErrEmptyType
	case DefaultType:
		return "", ErrDefaultType
	}
	return typ, nil
}

// AddAlternativePhone stores phone under typ, replacing any previous value of
// that type.
func (p *Person) AddAlternativePhone(typ string, phone Phone) error {
	typ, err := checkAlternativeType(typ)
	if err != nil {
		return err
	}
	p.phones.put(typ, phone)
	return nil
}

// AddAlternativeEmail stores email under typ, replacing any previous value of
// that type.
func (p *Person) AddAlternativeEmail(typ string, email Email) error {
	typ, err := checkAlternativeType(typ)
	if err != nil {
		return err
	}
	p.emails.put(typ, email)
	return nil
}

// AddAlternativeAddress stores address under typ, replacing any previous value
// of that type.
func (p *Person) AddAlternativeAddress(typ string, address Address) error {
	typ, err := checkAlternativeType(typ)
	if err != nil {
		return err
	}
	p.addresses.put(typ, address)
	return nil
}

// AddAlternative validates raw as a value of category and stores it under typ.
func (p *Person) AddAlternative(category Category, typ string, raw string, private bool) error {
	switch category {
	case CategoryPhone:
		v, err := NewPhone(raw, private)
		if err != nil {
			return err
		}
		return p.AddAlternativePhone(typ, v)
	case CategoryEmail:
		v, err := NewEmail(raw, private)
		if err != nil {
			return err
		}
		return p.AddAlternativeEmail(typ, v)
	case CategoryAddress:
		v, err := NewAddress(raw, private)
		if err != nil {
			return err
		}
		return p.AddAlternativeAddress(typ, v)
	default:
		return fmt.Errorf("person: unknown category %q", category)
	}
}

// WithPhone returns a copy of p whose default phone is phone.
func (p *Person) WithPhone(phone Phone) *Person {
	out := p.clone()
	out.phones.put(DefaultType, phone)
	return out
}

// WithEmail returns a copy of p whose default email is email.
func (p *Person) WithEmail(email Email) *Person {
	out := p.clone()
	out.emails.put(DefaultType, email)
	return out
}

// WithAddress returns a copy of p whose default address is address.
func (p *Person) WithAddress(address Address) *Person {
	out := p.clone()
	out.addresses.put(DefaultType, address)
	return out
}

// WithTags returns a copy of p holding tags instead of its current set.
func (p *Person) WithTags(tags Tags) *Person {
	out := p.clone()
	out.SetTags(tags)
	return out
}

// Tags returns a copy of the person's tag set.
func (p *Person) Tags() Tags {
	return p.tags.clone()
}

// SetTags replaces the person's tags with a copy of replacement.
func (p *Person) SetTags(replacement Tags) {
	p.tags = replacement.clone()
}

// Entries returns the typed values of category, default first.
func (p *Person) Entries(category Category) []Entry {
	var entries []Entry
	collect := func(key string, d detail) {
		entries = append(entries, Entry{Type: key, Value: d.value, Private: d.private})
	}
	switch category {
	case CategoryPhone:
		p.phones.each(func(key string, v Phone) { collect(key, v.detail) })
	case CategoryEmail:
		p.emails.each(func(key string, v Email) { collect(key, v.detail) })
	case CategoryAddress:
		p.addresses.each(func(key string, v Address) { collect(key, v.detail) })
	}
	return entries
}

// Equal reports whether other has the same name, default phone, default
// email, default address and tag set.
func (p *Person) Equal(other ReadOnly) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(*Person); ok && o == p {
		return true
	}
	return p.name.Equal(other.Name()) &&
		p.Phone().Equal(other.Phone()) &&
		p.Email().Equal(other.Email()) &&
		p.Address().Equal(other.Address()) &&
		p.tags.Equal(other.Tags())
}

// Hash returns a hash of the fields compared by Equal.
func (p *Person) Hash() uint64 {
	h := fnv.New64a()
	for _, part := range []string{p.name.value, p.Phone().value, p.Email().value, p.Address().value} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	for _, tag := range p.tags.sortedNames() {
		h.Write([]byte(tag))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// AsTextShowAll renders every field, marking private values.
func (p *Person) AsTextShowAll() string {
	return p.render(true)
}

// AsTextHidePrivate renders only the public fields.
func (p *Person) AsTextHidePrivate() string {
	return p.render(false)
}

// String implements fmt.Stringer using AsTextShowAll.
func (p *Person) String() string {
	return p.AsTextShowAll()
}

var categoryLabels = map[Category]string{
	CategoryPhone:   "Phone",
	CategoryEmail:   "Email",
	CategoryAddress: "Address",
}

func (p *Person) render(showPrivate bool) string {
	var b strings.Builder
	b.WriteString(p.name.value)
	for _, category := range Categories {
		for _, entry := range p.Entries(category) {
			if entry.Private && !showPrivate {
				continue
			}
			b.WriteString(" " + categoryLabels[category])
			if entry.Type != DefaultType {
				b.WriteString(" (" + entry.Type + ")")
			}
			b.WriteString(": ")
			if entry.Private {
				b.WriteString(privateMarker)
			}
			b.WriteString(entry.Value)
		}
	}
	b.WriteString(" Tags: ")
	b.WriteString(p.tags.String())
	return b.String()
}

// Package person defines the address book record and its contact values.
//
// Contact values (Name, Phone, Email, Address) are immutable and validated at
// construction. Editing a contact means building a new value and a new Person
// around it; the book swaps the whole record so it can reject duplicates
// before anything changes.
//
// Every Person holds one or more typed values per category (phone, email,
// address). The DefaultType entry always exists and is the one used for
// identity, display and search:
//
//	phone, err := person.NewPhone("98765432", false)
//	if err != nil {
//		// handle *person.ValidationError
//	}
//	p := person.New(name, phone, email, address, person.Tags{})
//	_ = p.AddAlternativePhone("work", workPhone)
//
//	p.Phone()               // default phone
//	p.PhoneOf("work")       // typed lookup, *person.NotFoundError if missing
//	edited := p.WithPhone(n) // new record, alternates and tags carried over
//
// Two persons are equal when their names, default values and tag sets match.
// Alternative entries do not take part in equality, so adding one never makes
// a record collide with another.
package person

package commands

import (
	"context"

	"github.com/spachava753/addressbook/person"
)

const (
	// FindByNumberWord is the command word of FindByNumber.
	FindByNumberWord = "findbynumber"
	// FindByNumberUsage describes FindByNumber.
	FindByNumberUsage = FindByNumberWord + ":\n" +
		"Finds all persons whose default phone number is exactly the given number and displays them as a list with index numbers.\n\t" +
		"Parameters: NUMBER\n\t" +
		"Example: " + FindByNumberWord + " 98765432"

	// FindWord is the command word of Find.
	FindWord = "find"
	// FindUsage describes Find.
	FindUsage = FindWord + ":\n" +
		"Finds all persons whose names contain any of the specified keywords (case-sensitive) and displays them as a list with index numbers.\n\t" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n\t" +
		"Example: " + FindWord + " alice bob charlie"
)

// FindByNumber lists every person whose default phone is exactly Query.
type FindByNumber struct {
	Query string
}

// Word returns FindByNumberWord.
func (FindByNumber) Word() string { return FindByNumberWord }

// Execute scans the book in order. It never fails; no match yields an empty
// list.
func (c FindByNumber) Execute(_ context.Context, s *Session) Result {
	matches := make([]person.ReadOnly, 0, 4)
	for _, p := range s.book.AllPersons() {
		if p.Phone().String() == c.Query {
			matches = append(matches, p)
		}
	}
	return listed(matches)
}

// Find lists every person with a name word equal to one of Keywords.
type Find struct {
	Keywords []string
}

// Word returns FindWord.
func (Find) Word() string { return FindWord }

// Execute scans the book in order.
func (c Find) Execute(_ context.Context, s *Session) Result {
	keywords := make(map[string]struct{}, len(c.Keywords))
	for _, keyword := range c.Keywords {
		keywords[keyword] = struct{}{}
	}

	matches := make([]person.ReadOnly, 0, 4)
	for _, p := range s.book.AllPersons() {
		for _, word := range p.Name().Words() {
			if _, hit := keywords[word]; hit {
				matches = append(matches, p)
				break
			}
		}
	}
	return listed(matches)
}

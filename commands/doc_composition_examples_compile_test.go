package commands_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/nalgeon/be"
	"github.com/spachava753/addressbook/book"
	"github.com/spachava753/addressbook/commands"
	"github.com/spachava753/addressbook/parser"
	"github.com/spachava753/addressbook/person"
)

// composeRenumber moves every person whose default phone is from to the
// number to. Persons that would become duplicates are reported and left as
// they were.
func composeRenumber(ctx context.Context, s *commands.Session, from, to string) (int, []string) {
	found := s.Execute(ctx, commands.FindByNumber{Query: from})
	if !found.Succeeded() {
		return 0, []string{found.Message}
	}

	edited := 0
	var problems []string
	for i := range found.Persons {
		res := s.Execute(ctx, commands.Edit{Index: i + 1, ContactType: commands.EditContactTypePhone, Value: to})
		if !res.Succeeded() {
			problems = append(problems, fmt.Sprintf("%d: %s", i+1, res.Code))
			continue
		}
		edited++
	}
	return edited, problems
}

// composeScript runs text commands in order and stops at the first failure.
func composeScript(ctx context.Context, s *commands.Session, lines ...string) error {
	for _, line := range lines {
		res := s.Execute(ctx, parser.Parse(line))
		if !res.Succeeded() {
			return fmt.Errorf("%q: %s: %s", line, res.Code, res.Message)
		}
	}
	return nil
}

func TestComposeRenumber(t *testing.T) {
	ctx := context.Background()
	b, err := book.New()
	be.Err(t, err, nil)
	s := commands.NewSession(b)

	err = composeScript(ctx, s,
		"add Alice p/91234567 e/alice@example.com a/1 Main St",
		"add Alice p/90000000 e/alice@example.com a/1 Main St",
		"add Bob p/91234567 e/bob@example.com a/2 High St",
	)
	be.Err(t, err, nil)

	edited, problems := composeRenumber(ctx, s, "91234567", "90000000")
	be.Equal(t, edited, 1)
	be.Equal(t, problems, []string{"1: duplicate_person"})

	phones := make([]string, 0, b.Len())
	for _, p := range b.AllPersons() {
		phones = append(phones, p.Phone().String())
	}
	be.Equal(t, phones, []string{"91234567", "90000000", "90000000"})
}

func TestComposeScriptStopsAtFailure(t *testing.T) {
	ctx := context.Background()
	alice, err := person.NewName("Alice", false)
	be.Err(t, err, nil)
	phone, _ := person.NewPhone("91234567", false)
	email, _ := person.NewEmail("alice@example.com", false)
	address, _ := person.NewAddress("1 Main St", false)
	b, err := book.New(person.New(alice, phone, email, address, person.Tags{}))
	be.Err(t, err, nil)
	s := commands.NewSession(b)

	err = composeScript(ctx, s, "tag 1 t/friends", "edit 2 p/1234", "tag 1")
	be.True(t, err != nil)
	be.Equal(t, b.AllPersons()[0].Tags().Names(), []string{"friends"})
}

func TestScriptEditThenFindByOldNumber(t *testing.T) {
	ctx := context.Background()
	b, err := book.New()
	be.Err(t, err, nil)
	s := commands.NewSession(b)

	err = composeScript(ctx, s,
		"add Alice p/91234567 e/alice@example.com a/1 Main St",
		"add Bob p/98765432 e/bob@example.com a/2 High St",
		"list",
		"edit 2 p/90000000",
	)
	be.Err(t, err, nil)

	res := s.Execute(ctx, parser.Parse("findbynumber 98765432"))
	be.Equal(t, res.Code, commands.CodeOK)
	be.Equal(t, len(res.Persons), 0)
	be.Equal(t, res.Message, "0 persons listed!")

	res = s.Execute(ctx, parser.Parse("findbynumber 90000000"))
	be.Equal(t, len(res.Persons), 1)
	be.Equal(t, res.Persons[0].Name().String(), "Bob")
}

package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"
	"github.com/spachava753/addressbook/person"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "address book.db"))
	be.Err(t, err, nil)
	t.Cleanup(func() { store.Close() })
	return store
}

func newPerson(t *testing.T, name, phone string, phonePrivate bool, tags ...string) *person.Person {
	t.Helper()
	n, err := person.NewName(name, false)
	be.Err(t, err, nil)
	ph, err := person.NewPhone(phone, phonePrivate)
	be.Err(t, err, nil)
	em, err := person.NewEmail(name+"@example.com", false)
	be.Err(t, err, nil)
	ad, err := person.NewAddress("1 Main St", true)
	be.Err(t, err, nil)
	ts, err := person.ParseTags(tags...)
	be.Err(t, err, nil)
	return person.New(n, ph, em, ad, ts)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), " ")
	be.True(t, err != nil)
}

func TestLoadEmpty(t *testing.T) {
	store := openTestStore(t)
	persons, err := store.Load(context.Background())
	be.Err(t, err, nil)
	be.Equal(t, len(persons), 0)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	carol := newPerson(t, "Carol", "97777777", false, "work", "friends")
	be.Err(t, carol.AddAlternative(person.CategoryPhone, "work", "61234567", true), nil)
	be.Err(t, carol.AddAlternative(person.CategoryPhone, "home", "62222222", false), nil)
	be.Err(t, carol.AddAlternative(person.CategoryEmail, "work", "carol@work.example", false), nil)

	saved := []person.ReadOnly{
		newPerson(t, "Bob", "98765432", true),
		carol,
		newPerson(t, "Alice", "91234567", false, "friends"),
	}
	be.Err(t, store.Save(ctx, saved), nil)

	loaded, err := store.Load(ctx)
	be.Err(t, err, nil)
	be.Equal(t, len(loaded), 3)
	for i, p := range loaded {
		be.True(t, p.Equal(saved[i]))
		be.Equal(t, p.AsTextShowAll(), saved[i].AsTextShowAll())
	}

	got := loaded[1]
	be.Equal(t, got.Tags().Names(), []string{"work", "friends"})
	be.Equal(t, got.Entries(person.CategoryPhone), []person.Entry{
		{Type: person.DefaultType, Value: "97777777"},
		{Type: "work", Value: "61234567", Private: true},
		{Type: "home", Value: "62222222"},
	})
	be.True(t, loaded[0].Phone().Private())
	be.True(t, loaded[0].Address().Private())
}

func TestSaveReplacesBook(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	be.Err(t, store.Save(ctx, []person.ReadOnly{
		newPerson(t, "Alice", "91234567", false),
		newPerson(t, "Bob", "98765432", false),
	}), nil)
	be.Err(t, store.Save(ctx, []person.ReadOnly{
		newPerson(t, "Bob", "98765432", false),
	}), nil)

	loaded, err := store.Load(ctx)
	be.Err(t, err, nil)
	be.Equal(t, len(loaded), 1)
	be.Equal(t, loaded[0].Name().String(), "Bob")

	be.Err(t, store.Save(ctx, nil), nil)
	loaded, err = store.Load(ctx)
	be.Err(t, err, nil)
	be.Equal(t, len(loaded), 0)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "book.db")

	store, err := Open(ctx, path)
	be.Err(t, err, nil)
	be.Err(t, store.Save(ctx, []person.ReadOnly{newPerson(t, "Alice", "91234567", false)}), nil)
	be.Err(t, store.Close(), nil)

	store, err = Open(ctx, path)
	be.Err(t, err, nil)
	defer store.Close()
	loaded, err := store.Load(ctx)
	be.Err(t, err, nil)
	be.Equal(t, len(loaded), 1)
	be.Equal(t, loaded[0].Phone().String(), "91234567")
}

func TestLoadRejectsInvalidRows(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	be.Err(t, store.Save(ctx, []person.ReadOnly{newPerson(t, "Alice", "91234567", false)}), nil)

	_, err := store.db.ExecContext(ctx, `UPDATE contacts SET value = 'abc' WHERE category = 'phone'`)
	be.Err(t, err, nil)
	_, err = store.Load(ctx)
	var verr *person.ValidationError
	be.True(t, errors.As(err, &verr))
	be.Equal(t, verr.Field, "phone")

	_, err = store.db.ExecContext(ctx, `DELETE FROM contacts WHERE category = 'email'`)
	be.Err(t, err, nil)
	_, err = store.Load(ctx)
	be.True(t, err != nil)
}

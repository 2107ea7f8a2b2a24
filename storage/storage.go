package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/spachava753/addressbook/person"
)

const schema = `
CREATE TABLE IF NOT EXISTS persons (
	id       TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	name     TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS contacts (
	person_id TEXT NOT NULL REFERENCES persons(id) ON DELETE CASCADE,
	position  INTEGER NOT NULL,
	category  TEXT NOT NULL,
	type      TEXT NOT NULL,
	value     TEXT NOT NULL,
	private   INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (person_id, category, type)
);
CREATE TABLE IF NOT EXISTS tags (
	person_id TEXT NOT NULL REFERENCES persons(id) ON DELETE CASCADE,
	position  INTEGER NOT NULL,
	name      TEXT NOT NULL,
	PRIMARY KEY (person_id, name)
);
`

// Store persists an address book in a sqlite database file.
type Store struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open opens or creates the database at path and creates missing tables.
//
// Example:
//
//	store, err := storage.Open(ctx, "addressbook.db", storage.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//	persons, err := store.Load(ctx)
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage: database path is required")
	}
	s := &Store{path: path, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	dsn := fmt.Sprintf("file:%s?mode=rwc&_busy_timeout=5000&_foreign_keys=on", strings.ReplaceAll(path, " ", "%20"))
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: opening sqlite database failed: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: connecting to sqlite database failed: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: creating schema failed: %w", err)
	}
	s.db = db
	s.logger.Debug("address book database opened", zap.String("path", path))
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("storage: closing sqlite database failed: %w", err)
	}
	return nil
}

// Save replaces the stored book with persons in one transaction. Each person
// gets a fresh row id.
func (s *Store) Save(ctx context.Context, persons []person.ReadOnly) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: starting transaction failed: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, table := range []string{"tags", "contacts", "persons"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("storage: clearing %s failed: %w", table, err)
		}
	}

	for i, p := range persons {
		if err := insertPerson(ctx, tx, i, p); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: committing transaction failed: %w", err)
	}
	s.logger.Debug("address book saved", zap.String("path", s.path), zap.Int("persons", len(persons)))
	return nil
}

func insertPerson(ctx context.Context, tx *sql.Tx, position int, p person.ReadOnly) error {
	id := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO persons (id, position, name) VALUES (?, ?, ?)`,
		id, position, p.Name().String(),
	); err != nil {
		return fmt.Errorf("storage: inserting person %q failed: %w", p.Name(), err)
	}

	for _, category := range person.Categories {
		for i, entry := range p.Entries(category) {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO contacts (person_id, position, category, type, value, private) VALUES (?, ?, ?, ?, ?, ?)`,
				id, i, string(category), entry.Type, entry.Value, entry.Private,
			); err != nil {
				return fmt.Errorf("storage: inserting %s of %q failed: %w", category, p.Name(), err)
			}
		}
	}

	for i, name := range p.Tags().Names() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tags (person_id, position, name) VALUES (?, ?, ?)`,
			id, i, name,
		); err != nil {
			return fmt.Errorf("storage: inserting tag %q of %q failed: %w", name, p.Name(), err)
		}
	}
	return nil
}

type record struct {
	id       string
	name     string
	contacts map[person.Category][]person.Entry
	tags     []string
}

// Load returns the stored persons in saved order. Every stored value is
// validated again.
func (s *Store) Load(ctx context.Context) ([]*person.Person, error) {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	persons := make([]*person.Person, 0, len(records))
	for _, r := range records {
		p, err := r.build()
		if err != nil {
			return nil, fmt.Errorf("storage: stored person %s is invalid: %w", r.id, err)
		}
		persons = append(persons, p)
	}
	s.logger.Debug("address book loaded", zap.String("path", s.path), zap.Int("persons", len(persons)))
	return persons, nil
}

func (s *Store) loadRecords(ctx context.Context) ([]*record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM persons ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("storage: querying persons failed: %w", err)
	}
	defer rows.Close()

	var records []*record
	byID := make(map[string]*record)
	for rows.Next() {
		r := &record{contacts: make(map[person.Category][]person.Entry, len(person.Categories))}
		if err := rows.Scan(&r.id, &r.name); err != nil {
			return nil, fmt.Errorf("storage: scanning person row failed: %w", err)
		}
		records = append(records, r)
		byID[r.id] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: iterating person rows failed: %w", err)
	}

	if err := s.loadContacts(ctx, byID); err != nil {
		return nil, err
	}
	if err := s.loadTags(ctx, byID); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) loadContacts(ctx context.Context, byID map[string]*record) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT person_id, category, type, value, private FROM contacts ORDER BY person_id, position`)
	if err != nil {
		return fmt.Errorf("storage: querying contacts failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, category string
			entry        person.Entry
		)
		if err := rows.Scan(&id, &category, &entry.Type, &entry.Value, &entry.Private); err != nil {
			return fmt.Errorf("storage: scanning contact row failed: %w", err)
		}
		if r, ok := byID[id]; ok {
			c := person.Category(category)
			r.contacts[c] = append(r.contacts[c], entry)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("storage: iterating contact rows failed: %w", err)
	}
	return nil
}

func (s *Store) loadTags(ctx context.Context, byID map[string]*record) error {
	rows, err := s.db.QueryContext(ctx, `SELECT person_id, name FROM tags ORDER BY person_id, position`)
	if err != nil {
		return fmt.Errorf("storage: querying tags failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return fmt.Errorf("storage: scanning tag row failed: %w", err)
		}
		if r, ok := byID[id]; ok {
			r.tags = append(r.tags, name)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("storage: iterating tag rows failed: %w", err)
	}
	return nil
}

func (r *record) build() (*person.Person, error) {
	name, err := person.NewName(r.name, false)
	if err != nil {
		return nil, err
	}
	defaults := make(map[person.Category]person.Entry, len(person.Categories))
	for _, category := range person.Categories {
		def, ok := findDefault(r.contacts[category])
		if !ok {
			return nil, fmt.Errorf("no default %s", category)
		}
		defaults[category] = def
	}

	phone, err := person.NewPhone(defaults[person.CategoryPhone].Value, defaults[person.CategoryPhone].Private)
	if err != nil {
		return nil, err
	}
	email, err := person.NewEmail(defaults[person.CategoryEmail].Value, defaults[person.CategoryEmail].Private)
	if err != nil {
		return nil, err
	}
	address, err := person.NewAddress(defaults[person.CategoryAddress].Value, defaults[person.CategoryAddress].Private)
	if err != nil {
		return nil, err
	}
	tags, err := person.ParseTags(r.tags...)
	if err != nil {
		return nil, err
	}

	p := person.New(name, phone, email, address, tags)
	for _, category := range person.Categories {
		for _, entry := range r.contacts[category] {
			if entry.Type == person.DefaultType {
				continue
			}
			if err := p.AddAlternative(category, entry.Type, entry.Value, entry.Private); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

func findDefault(entries []person.Entry) (person.Entry, bool) {
	for _, entry := range entries {
		if entry.Type == person.DefaultType {
			return entry, true
		}
	}
	return person.Entry{}, false
}

package commands

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/spachava753/addressbook/person"
)

// Saver persists the whole book after a mutating command.
type Saver interface {
	Save(ctx context.Context, persons []person.ReadOnly) error
}

// Mailer sends records out of the book.
type Mailer interface {
	Share(ctx context.Context, to string, p person.ReadOnly) error
	Backup(ctx context.Context, persons []person.ReadOnly) error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSaver persists the book whenever a command changes it.
func WithSaver(saver Saver) Option {
	return func(s *Session) {
		s.saver = saver
	}
}

// WithMailer enables the share and backup commands.
func WithMailer(mailer Mailer) Option {
	return func(s *Session) {
		s.mailer = mailer
	}
}

// Session executes commands against one address book and remembers the
// list of persons last shown to the user, which displayed indexes refer to.
//
// Execute holds a lock for the whole command, so lookup, validation, commit
// and persistence of one command never interleave with another.
type Session struct {
	mu        sync.Mutex
	book      AddressBook
	lastShown []person.ReadOnly
	saver     Saver
	mailer    Mailer
	logger    *zap.Logger
}

// NewSession returns a session whose last-shown list is the whole book.
func NewSession(book AddressBook, opts ...Option) *Session {
	s := &Session{
		book:   book,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastShown = book.AllPersons()
	return s
}

// Execute runs cmd to completion and returns its result. It never panics on
// command failures; every failure is reported through Result.
//
// Example:
//
//	res := session.Execute(ctx, commands.Edit{Index: 2, ContactType: "p", Value: "90000000"})
//	if !res.Succeeded() {
//		log.Printf("%s: %s", res.Code, res.Message)
//	}
//	found := session.Execute(ctx, commands.FindByNumber{Query: "90000000"})
//	for i, p := range found.Persons {
//		fmt.Printf("%d. %s\n", i+1, p.AsTextHidePrivate())
//	}
func (s *Session) Execute(ctx context.Context, cmd Command) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.book.Version()
	res := cmd.Execute(ctx, s)
	if res.listed {
		s.lastShown = append([]person.ReadOnly(nil), res.Persons...)
	}

	if s.book.Version() != before && s.saver != nil {
		if err := s.saver.Save(ctx, s.book.AllPersons()); err != nil {
			s.logger.Error("saving address book failed",
				zap.String("command", cmd.Word()),
				zap.Error(err),
			)
			res.Message += "\n" + fmt.Sprintf(MessageSaveFailed, err)
		}
	}

	if res.Succeeded() {
		s.logger.Debug("command executed",
			zap.String("command", cmd.Word()),
			zap.Int("listed", len(res.Persons)),
		)
	} else {
		s.logger.Info("command failed",
			zap.String("command", cmd.Word()),
			zap.String("code", string(res.Code)),
			zap.Error(res.Err),
		)
	}
	return res
}

// TargetPerson returns the person at the 1-based index of the last-shown
// list. It reads the list without taking the session lock, so it is only
// safe to call from a Command's Execute, which Session.Execute runs with the
// lock held. Outside of a command use LastShown.
func (s *Session) TargetPerson(index int) (person.ReadOnly, error) {
	if index < 1 || index > len(s.lastShown) {
		return nil, &IndexError{Index: index, Size: len(s.lastShown)}
	}
	return s.lastShown[index-1], nil
}

// LastShown returns a copy of the last-shown list.
func (s *Session) LastShown() []person.ReadOnly {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]person.ReadOnly(nil), s.lastShown...)
}

func (s *Session) replaceShown(old person.ReadOnly, updated person.ReadOnly) {
	for i, p := range s.lastShown {
		if p == old {
			s.lastShown[i] = updated
		}
	}
}

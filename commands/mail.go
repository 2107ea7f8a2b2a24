package commands

import (
	"context"
	"fmt"

	"github.com/spachava753/addressbook/person"
)

const (
	// ShareWord is the command word of Share.
	ShareWord = "share"
	// ShareUsage describes Share.
	ShareUsage = ShareWord + ":\n" +
		"Emails the non-private details of the person identified by the index number in the last shown person listing.\n\t" +
		"Parameters: INDEX RECIPIENT_EMAIL\n\t" +
		"Example: " + ShareWord + " 1 friend@example.com"
	// MessageShareSuccess reports a sent record.
	MessageShareSuccess = "Shared %s with %s"

	// BackupWord is the command word of Backup.
	BackupWord = "backup"
	// BackupUsage describes Backup.
	BackupUsage = BackupWord + ":\n" +
		"Stores a snapshot of the whole address book in the configured backup mailbox.\n\t" +
		"Example: " + BackupWord
	// MessageBackupSuccess reports a stored snapshot.
	MessageBackupSuccess = "Backed up %d persons"
)

// Share emails a displayed person to a recipient.
type Share struct {
	Index int
	To    string
}

// Word returns ShareWord.
func (Share) Word() string { return ShareWord }

// Execute validates the recipient and hands the record to the mailer.
func (c Share) Execute(ctx context.Context, s *Session) Result {
	if s.mailer == nil {
		return failed(CodeMailUnavailable, MessageMailUnavailable, nil)
	}
	target, err := s.TargetPerson(c.Index)
	if err != nil {
		return failed(CodeInvalidIndex, MessageInvalidPersonDisplayedIndex, err)
	}
	to, err := person.NewEmail(c.To, false)
	if err != nil {
		return invalidDetail(c.To, err)
	}
	if err := s.mailer.Share(ctx, to.String(), target); err != nil {
		return failed(CodeMailFailed, err.Error(), err)
	}
	return ok(fmt.Sprintf(MessageShareSuccess, target.Name(), to))
}

// Backup stores the whole book through the mailer.
type Backup struct{}

// Word returns BackupWord.
func (Backup) Word() string { return BackupWord }

// Execute sends every person in book order.
func (Backup) Execute(ctx context.Context, s *Session) Result {
	if s.mailer == nil {
		return failed(CodeMailUnavailable, MessageMailUnavailable, nil)
	}
	persons := s.book.AllPersons()
	if err := s.mailer.Backup(ctx, persons); err != nil {
		return failed(CodeMailFailed, err.Error(), err)
	}
	return ok(fmt.Sprintf(MessageBackupSuccess, len(persons)))
}

package mail

import (
	"bytes"
	"context"
	netmail "net/mail"
	"strings"
	"testing"
	"time"

	"github.com/nalgeon/be"
	"github.com/spachava753/addressbook/person"
)

func newPerson(t *testing.T) *person.Person {
	t.Helper()
	name, err := person.NewName("Alice Tan", false)
	be.Err(t, err, nil)
	phone, err := person.NewPhone("91234567", true)
	be.Err(t, err, nil)
	email, err := person.NewEmail("alice@example.com", false)
	be.Err(t, err, nil)
	address, err := person.NewAddress("1 Main St", false)
	be.Err(t, err, nil)
	tags, err := person.ParseTags("friends")
	be.Err(t, err, nil)
	p := person.New(name, phone, email, address, tags)
	be.Err(t, p.AddAlternative(person.CategoryEmail, "work", "alice@work.example", false), nil)
	return p
}

func TestNewValidatesConfig(t *testing.T) {
	valid := Config{
		Address:  "me@example.com",
		Password: "abcd efgh",
		SMTPAddr: "smtp.example.com:465",
	}

	c, err := New(valid)
	be.Err(t, err, nil)
	be.Equal(t, c.cfg.Password, "abcdefgh")
	be.Equal(t, c.cfg.BackupMailbox, DefaultBackupMailbox)

	tests := map[string]func(*Config){
		"missing address":  func(c *Config) { c.Address = "" },
		"invalid address":  func(c *Config) { c.Address = "me" },
		"missing password": func(c *Config) { c.Password = " " },
		"missing port":     func(c *Config) { c.SMTPAddr = "smtp.example.com" },
		"bad imap":         func(c *Config) { c.IMAPAddr = "imap" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			mutate(&cfg)
			_, err := New(cfg)
			be.True(t, err != nil)
		})
	}
}

func TestConfigEnabled(t *testing.T) {
	be.True(t, !Config{}.Enabled())
	be.True(t, Config{Address: "me@example.com"}.Enabled())
}

func TestBackupRequiresIMAP(t *testing.T) {
	c, err := New(Config{Address: "me@example.com", Password: "x", SMTPAddr: "smtp.example.com:465"})
	be.Err(t, err, nil)
	err = c.Backup(context.Background(), nil)
	be.True(t, err != nil && strings.Contains(err.Error(), "IMAP address is required"))
}

func TestShareRequiresRecipient(t *testing.T) {
	c, err := New(Config{Address: "me@example.com", Password: "x", SMTPAddr: "smtp.example.com:465"})
	be.Err(t, err, nil)
	err = c.Share(context.Background(), "\r\n", newPerson(t))
	be.True(t, err != nil && strings.Contains(err.Error(), "recipient is required"))
}

func TestBuildMessageHeaders(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	raw := buildMessage("me@example.com", "friend@example.com", "Contact:\r\nAlice", "line one\nline two", now)

	msg, err := netmail.ReadMessage(bytes.NewReader(raw))
	be.Err(t, err, nil)
	be.Equal(t, msg.Header.Get("From"), "me@example.com")
	be.Equal(t, msg.Header.Get("To"), "friend@example.com")
	be.Equal(t, msg.Header.Get("Subject"), "Contact:  Alice")
	be.Equal(t, msg.Header.Get("Content-Type"), "text/plain; charset=UTF-8")
	be.True(t, strings.HasSuffix(msg.Header.Get("Message-ID"), ".example.com>"))

	date, err := msg.Header.Date()
	be.Err(t, err, nil)
	be.True(t, date.Equal(now))
	be.True(t, bytes.HasSuffix(raw, []byte("line one\r\nline two\r\n")))
}

func TestCardHidesPrivate(t *testing.T) {
	p := newPerson(t)

	be.Equal(t, card(p, false), strings.Join([]string{
		"Name: Alice Tan",
		"Email: alice@example.com",
		"Email (work): alice@work.example",
		"Address: 1 Main St",
		"Tags: [friends]",
	}, "\n"))

	be.True(t, strings.Contains(card(p, true), "Phone: (private) 91234567"))
}

func TestSnapshot(t *testing.T) {
	be.Equal(t, snapshot(nil), "The address book is empty.")

	got := snapshot([]person.ReadOnly{newPerson(t)})
	be.True(t, strings.HasPrefix(got, "1.\nName: Alice Tan\nPhone: (private) 91234567"))
}

func TestGenerateMessageID(t *testing.T) {
	now := time.Unix(0, 42)
	be.Equal(t, generateMessageID("me@example.com", now), "<42.example.com>")
	be.Equal(t, generateMessageID("me", now), "<42.localhost>")
}

// Package mail shares address book records by email and stores backups in a
// mailbox.
//
// Share sends the public fields of one person as a plain-text message over
// SMTPS with SASL PLAIN authentication. Backup appends a snapshot of the
// whole book, private fields included, to an IMAP mailbox owned by the
// account, creating the mailbox on first use.
//
// # Configuration
//
// The account comes from Config, normally loaded by package config:
//
//   - ADDRESSBOOK_MAIL_ADDRESS
//   - ADDRESSBOOK_MAIL_PASSWORD
//   - ADDRESSBOOK_MAIL_SMTP_ADDR (host:port, implicit TLS)
//   - ADDRESSBOOK_MAIL_IMAP_ADDR (host:port, implicit TLS; backups only)
//   - ADDRESSBOOK_MAIL_BACKUP_MAILBOX
//
// Example:
//
//	client, err := mail.New(mail.Config{
//		Address:  "me@example.com",
//		Password: "app password",
//		SMTPAddr: "smtp.example.com:465",
//		IMAPAddr: "imap.example.com:993",
//	})
//	if err != nil {
//		return err
//	}
//	err = client.Share(ctx, "friend@example.com", p)
package mail

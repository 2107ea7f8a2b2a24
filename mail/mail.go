package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"go.uber.org/zap"

	"github.com/spachava753/addressbook/person"
)

// DefaultBackupMailbox receives backups when Config.BackupMailbox is empty.
const DefaultBackupMailbox = "AddressBook Backup"

// Config holds the mail account used to share records and store backups.
type Config struct {
	Address       string
	Password      string
	SMTPAddr      string
	IMAPAddr      string
	BackupMailbox string
}

// Enabled reports whether an account is configured.
func (c Config) Enabled() bool {
	return strings.TrimSpace(c.Address) != ""
}

// Client sends address book records over SMTP and stores backups over IMAP.
// Each call opens and closes its own connection.
type Client struct {
	cfg    Config
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New validates cfg and returns a client for it.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.Address = strings.TrimSpace(cfg.Address)
	if cfg.Address == "" {
		return nil, errors.New("mail: account address is required")
	}
	if _, err := person.NewEmail(cfg.Address, false); err != nil {
		return nil, fmt.Errorf("mail: invalid account address: %w", err)
	}
	cfg.Password = strings.ReplaceAll(cfg.Password, " ", "")
	if cfg.Password == "" {
		return nil, errors.New("mail: account password is required")
	}
	if _, _, err := net.SplitHostPort(cfg.SMTPAddr); err != nil {
		return nil, fmt.Errorf("mail: invalid SMTP address %q: %w", cfg.SMTPAddr, err)
	}
	if cfg.IMAPAddr != "" {
		if _, _, err := net.SplitHostPort(cfg.IMAPAddr); err != nil {
			return nil, fmt.Errorf("mail: invalid IMAP address %q: %w", cfg.IMAPAddr, err)
		}
	}
	if strings.TrimSpace(cfg.BackupMailbox) == "" {
		cfg.BackupMailbox = DefaultBackupMailbox
	}

	c := &Client{cfg: cfg, logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Share emails the public fields of p to the recipient.
//
// Example:
//
//	client, err := mail.New(mail.Config{
//		Address:  "me@example.com",
//		Password: os.Getenv("ADDRESSBOOK_MAIL_PASSWORD"),
//		SMTPAddr: "smtp.example.com:465",
//		IMAPAddr: "imap.example.com:993",
//	})
//	if err != nil {
//		return err
//	}
//	err = client.Share(ctx, "friend@example.com", p)
func (c *Client) Share(ctx context.Context, to string, p person.ReadOnly) error {
	to = sanitizeHeader(to)
	if to == "" {
		return errors.New("mail: recipient is required")
	}
	now := c.now()
	raw := buildMessage(c.cfg.Address, to, "Contact: "+p.Name().String(), card(p, false), now)

	smtpClient, err := c.connectSMTP(ctx)
	if err != nil {
		return err
	}
	defer smtpClient.Close()

	if err := smtpClient.Mail(c.cfg.Address, nil); err != nil {
		return fmt.Errorf("mail: MAIL FROM failed: %w", err)
	}
	if err := smtpClient.Rcpt(to, nil); err != nil {
		return fmt.Errorf("mail: RCPT TO %q failed: %w", to, err)
	}
	writer, err := smtpClient.Data()
	if err != nil {
		return fmt.Errorf("mail: DATA failed: %w", err)
	}
	if _, err := writer.Write(raw); err != nil {
		return fmt.Errorf("mail: writing message failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("mail: finalizing message failed: %w", err)
	}
	if err := smtpClient.Quit(); err != nil {
		return fmt.Errorf("mail: QUIT failed: %w", err)
	}

	c.logger.Info("person shared", zap.String("to", to), zap.String("person", p.Name().String()))
	return nil
}

// Backup appends a snapshot of every person, private fields included, to the
// backup mailbox. The mailbox is created when missing.
func (c *Client) Backup(ctx context.Context, persons []person.ReadOnly) error {
	if c.cfg.IMAPAddr == "" {
		return errors.New("mail: IMAP address is required for backups")
	}
	now := c.now()
	raw := buildMessage(c.cfg.Address, c.cfg.Address, backupSubject(len(persons), now), snapshot(persons), now)

	imapClient, err := c.connectIMAP(ctx)
	if err != nil {
		return err
	}
	defer imapClient.Logout()

	if err := ensureMailbox(imapClient, c.cfg.BackupMailbox); err != nil {
		return err
	}
	if err := imapClient.Append(c.cfg.BackupMailbox, []string{imap.SeenFlag}, now, bytes.NewBuffer(raw)); err != nil {
		return fmt.Errorf("mail: appending backup to %q failed: %w", c.cfg.BackupMailbox, err)
	}

	c.logger.Info("address book backed up",
		zap.String("mailbox", c.cfg.BackupMailbox),
		zap.Int("persons", len(persons)),
	)
	return nil
}

func ensureMailbox(imapClient *client.Client, name string) error {
	mailboxes := make(chan *imap.MailboxInfo, 8)
	done := make(chan error, 1)
	go func() {
		done <- imapClient.List("", name, mailboxes)
	}()

	exists := false
	for mailbox := range mailboxes {
		if mailbox.Name == name {
			exists = true
		}
	}
	if err := <-done; err != nil {
		return fmt.Errorf("mail: listing mailbox %q failed: %w", name, err)
	}
	if exists {
		return nil
	}
	if err := imapClient.Create(name); err != nil {
		return fmt.Errorf("mail: creating mailbox %q failed: %w", name, err)
	}
	return nil
}

func (c *Client) dialTLS(ctx context.Context, addr string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	dialer := &tls.Dialer{Config: &tls.Config{ServerName: host}}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}
	return conn, nil
}

func (c *Client) connectSMTP(ctx context.Context) (*smtp.Client, error) {
	conn, err := c.dialTLS(ctx, c.cfg.SMTPAddr)
	if err != nil {
		return nil, fmt.Errorf("mail: SMTP TLS dial failed: %w", err)
	}

	smtpClient := smtp.NewClient(conn)
	auth := sasl.NewPlainClient("", c.cfg.Address, c.cfg.Password)
	if err := smtpClient.Auth(auth); err != nil {
		smtpClient.Close()
		return nil, fmt.Errorf("mail: SMTP auth failed: %w", err)
	}
	return smtpClient, nil
}

func (c *Client) connectIMAP(ctx context.Context) (*client.Client, error) {
	conn, err := c.dialTLS(ctx, c.cfg.IMAPAddr)
	if err != nil {
		return nil, fmt.Errorf("mail: IMAP TLS dial failed: %w", err)
	}

	imapClient, err := client.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("mail: IMAP greeting failed: %w", err)
	}
	if err := imapClient.Login(c.cfg.Address, c.cfg.Password); err != nil {
		imapClient.Logout()
		return nil, fmt.Errorf("mail: IMAP login failed: %w", err)
	}
	return imapClient, nil
}

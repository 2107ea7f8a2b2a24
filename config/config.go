// Package config loads address book settings from the environment and .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/spachava753/addressbook/mail"
)

// DefaultEnvFile is read by Load when no files are named.
const DefaultEnvFile = ".env"

// Config is the runtime configuration of the address book.
type Config struct {
	DataPath  string `env:"ADDRESSBOOK_DATA" envDefault:"addressbook.db"`
	LogLevel  string `env:"ADDRESSBOOK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ADDRESSBOOK_LOG_FORMAT" envDefault:"console"` // console, json

	Mail Mail `envPrefix:"ADDRESSBOOK_MAIL_"`
}

// Mail holds the optional mail account. Sharing and backups are disabled
// while Address is empty.
type Mail struct {
	Address       string `env:"ADDRESS"`
	Password      string `env:"PASSWORD"`
	SMTPAddr      string `env:"SMTP_ADDR"`
	IMAPAddr      string `env:"IMAP_ADDR"`
	BackupMailbox string `env:"BACKUP_MAILBOX" envDefault:"AddressBook Backup"`
}

// Load reads the named env files, then the environment. Variables already
// set in the environment win over file values. With no names, Load reads
// DefaultEnvFile if it exists.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading %s failed: %w", DefaultEnvFile, err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("config: loading env files failed: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.DataPath = strings.TrimSpace(c.DataPath)
	if c.DataPath == "" {
		return errors.New("config: ADDRESSBOOK_DATA must not be empty")
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("config: ADDRESSBOOK_LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	return nil
}

// MailConfig converts the mail section for package mail.
func (c Config) MailConfig() mail.Config {
	return mail.Config{
		Address:       c.Mail.Address,
		Password:      c.Mail.Password,
		SMTPAddr:      c.Mail.SMTPAddr,
		IMAPAddr:      c.Mail.IMAPAddr,
		BackupMailbox: c.Mail.BackupMailbox,
	}
}

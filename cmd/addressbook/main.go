// Command addressbook is an interactive address book kept in a sqlite file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/spachava753/addressbook/book"
	"github.com/spachava753/addressbook/commands"
	"github.com/spachava753/addressbook/config"
	"github.com/spachava753/addressbook/logging"
	"github.com/spachava753/addressbook/mail"
	"github.com/spachava753/addressbook/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// Restore the default handling once the first signal arrives, so a second
	// interrupt ends the process.
	go func() {
		<-ctx.Done()
		stop()
	}()

	store, err := storage.Open(ctx, cfg.DataPath, storage.WithLogger(logger))
	if err != nil {
		return err
	}
	defer store.Close()

	persons, err := store.Load(ctx)
	if err != nil {
		return err
	}
	b, err := book.New(persons...)
	if err != nil {
		return fmt.Errorf("addressbook: stored data is inconsistent: %w", err)
	}

	opts := []commands.Option{
		commands.WithLogger(logger),
		commands.WithSaver(store),
	}
	if mailCfg := cfg.MailConfig(); mailCfg.Enabled() {
		client, err := mail.New(mailCfg, mail.WithLogger(logger))
		if err != nil {
			return err
		}
		opts = append(opts, commands.WithMailer(client))
	} else {
		logger.Info("mail not configured; share and backup are disabled")
	}

	logger.Info("address book ready",
		zap.String("data", cfg.DataPath),
		zap.Int("persons", b.Len()),
	)
	return repl(ctx, os.Stdin, os.Stdout, commands.NewSession(b, opts...))
}

package commands

import (
	"context"
	"strings"
)

const (
	// HelpWord is the command word of Help.
	HelpWord = "help"
	// HelpUsage describes Help.
	HelpUsage = HelpWord + ":\n" +
		"Shows program usage instructions.\n\t" +
		"Example: " + HelpWord

	// ExitWord is the command word of Exit.
	ExitWord = "exit"
	// ExitUsage describes Exit.
	ExitUsage = ExitWord + ":\n" +
		"Exits the program.\n\t" +
		"Example: " + ExitWord
	// MessageExitAcknowledgement confirms Exit.
	MessageExitAcknowledgement = "Exiting Address Book as requested ..."
)

// Usages returns the usage text of every command, in help order.
func Usages() []string {
	return []string{
		AddUsage,
		DeleteUsage,
		ClearUsage,
		EditUsage,
		AltUsage,
		TagUsage,
		FindUsage,
		FindByNumberUsage,
		ListUsage,
		ViewUsage,
		ViewAllUsage,
		ShareUsage,
		BackupUsage,
		HelpUsage,
		ExitUsage,
	}
}

// Help shows the usage of every command.
type Help struct{}

// Word returns HelpWord.
func (Help) Word() string { return HelpWord }

// Execute returns the joined usages.
func (Help) Execute(context.Context, *Session) Result {
	return ok(strings.Join(Usages(), "\n"))
}

// Exit asks the caller to stop reading commands.
type Exit struct{}

// Word returns ExitWord.
func (Exit) Word() string { return ExitWord }

// Execute acknowledges the request.
func (Exit) Execute(context.Context, *Session) Result {
	res := ok(MessageExitAcknowledgement)
	res.Exit = true
	return res
}

// Incorrect is produced for input that does not parse. It carries the
// feedback to show instead of running anything.
type Incorrect struct {
	Feedback string
}

// Word returns an empty word; Incorrect has no text form.
func (Incorrect) Word() string { return "" }

// Execute reports the feedback.
func (c Incorrect) Execute(context.Context, *Session) Result {
	return failed(CodeInvalidCommand, c.Feedback, nil)
}

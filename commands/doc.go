// Package commands implements the address book commands and the session that
// runs them.
//
// A Session owns the book collaborator and the list of persons last shown to
// the user. Displayed indexes are 1-based positions in that list. Every
// command runs through Session.Execute and reports a Result with a Code:
//
//	s := commands.NewSession(b,
//		commands.WithLogger(logger),
//		commands.WithSaver(store),
//	)
//	res := s.Execute(ctx, commands.Edit{Index: 1, ContactType: "p", Value: "98765432"})
//	if !res.Succeeded() {
//		switch res.Code {
//		case commands.CodeInvalidIndex, commands.CodeDuplicatePerson:
//			// res.Message is ready for display
//		}
//	}
//
// Commands that display a list (list, find, findbynumber) replace the
// last-shown list. Edit, alt and tag swap the edited record into it, so the
// same index keeps referring to the same person. Delete and clear leave it
// as it was; a stale index then fails with CodePersonNotFound.
//
// When a Saver is configured, the whole book is saved after every command
// that changed it. A save failure does not undo the change; it is logged
// and appended to the result message.
package commands

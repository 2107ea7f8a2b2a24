// Package parser turns one line of user input into a commands.Command.
//
// The first word selects the command; the rest is matched against that
// command's argument form:
//
//	add NAME [p]p/PHONE [p]e/EMAIL [p]a/ADDRESS [t/TAG]...
//	edit INDEX TYPE/NEWVALUE
//	alt INDEX [p]C/TYPE/VALUE
//	tag INDEX [t/TAG]...
//	findbynumber NUMBER
//
// A leading p on a contact prefix marks the value private. Arguments that do
// not match produce commands.Incorrect with the command's usage; unknown
// words produce commands.Help. Values are not validated here; that happens
// when the command runs.
package parser

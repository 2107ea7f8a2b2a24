package commands

// User-facing messages shared by several commands.
const (
	MessageInvalidCommandFormat        = "Invalid command format!\n%s"
	MessageInvalidPersonDisplayedIndex = "The person index provided is invalid"
	MessagePersonNotInAddressBook      = "Person could not be found in address book"
	MessagePersonsListedOverview       = "%d persons listed!"
	MessageDuplicatePerson             = "This person already exists in the address book"
	MessageInvalidContactType          = "The contact type: %s is invalid"
	MessageInvalidContactDetail        = "The contact detail: %s is invalid"
	MessageSaveFailed                  = "Warning: changes could not be saved: %v"
	MessageMailUnavailable             = "Mail is not configured"
)

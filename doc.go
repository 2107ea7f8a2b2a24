// Package addressbook is an index for the packages of the address book
// module.
//
// This root package is documentation-only. Import specific subpackages to use
// concrete helpers.
//
// Available subpackages:
//   - github.com/spachava753/addressbook/person
//     Person records with typed phone, email and address values.
//   - github.com/spachava753/addressbook/book
//     The ordered, duplicate-free collection of persons.
//   - github.com/spachava753/addressbook/commands
//     Commands (edit, findbynumber, ...) and the Session that runs them.
//   - github.com/spachava753/addressbook/parser
//     Text command parsing.
//   - github.com/spachava753/addressbook/storage
//     sqlite persistence of the whole book.
//   - github.com/spachava753/addressbook/mail
//     Sharing records over SMTP and backups over IMAP.
//   - github.com/spachava753/addressbook/config
//     Environment and .env configuration.
//   - github.com/spachava753/addressbook/logging
//     zap logger construction.
//
// The interactive program lives in cmd/addressbook:
//   - Run: go run ./cmd/addressbook
//   - Then type: help
package addressbook

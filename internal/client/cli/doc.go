// Package cli provides the interactive contacts command-line client.
//
// It wires configuration, local storage, the API client and the services
// into a REPL. Typical flow: restore or ask for the user name, load the
// contact list, then execute user commands.
//
// Key features:
//   - List contacts as a table
//   - Add / Edit contacts through a field-by-field form
//   - Delete with confirmation
//   - Whoami / Logout
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

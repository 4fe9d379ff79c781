// Package cli provides the interactive medreminder command-line client.
//
// It wires configuration, local storage, the backend client and the services,
// and runs a REPL: log in, list reminders, add, edit or delete them.
//
// Reminders can be referenced by their position in the last listing or by
// their ID. Dates and times are entered and shown in the local time zone.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

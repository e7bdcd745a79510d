// Package cli provides the gophauth command-line client.
//
// A command can be given on the command line (register, login, profile,
// status, logout, ping) or, with no command, an interactive REPL is started
// that accepts the same commands until the user types exit.
//
// The access token returned by register and login is kept in a file so that
// later invocations can call protected endpoints. See App and runREPL.
package cli

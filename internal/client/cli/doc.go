// Package cli provides the interactive notes command-line client.
//
// It wires configuration, local storage, the notes API client and the state
// store, then runs a REPL. On start the previous session is restored from
// local storage, the notes are fetched and a background watcher keeps the
// online/offline status in the prompt up to date.
//
// Every command that changes state re-renders the screen through the view
// package, so transient notifications appear right after the action that
// caused them.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli

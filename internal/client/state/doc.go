// Package state holds the client's in-memory view of the world: the
// authoritative note list, the current session and a few transient UI flags.
//
// State values are never mutated in place. Every change goes through a
// Reducer which returns a new State; Store serializes those updates and owns
// the timer that clears transient messages.
package state

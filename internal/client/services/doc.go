// Package services contains the application services of the notes client.
//
// NoteService and AuthService sit between the interactive view and the
// transport: they call the API through client.Client, merge results into the
// state.Store through reducers, and turn failures into transient messages.
package services

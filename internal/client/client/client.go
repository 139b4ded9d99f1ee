package client

import (
	"context"

	"github.com/dmitrijs2005/noteapp/internal/client/models"
)

// Client is the transport contract towards the notes backend.
type Client interface {
	Close() error
	SetToken(token string)
	Ping(ctx context.Context) error
	GetAll(ctx context.Context) ([]models.Note, error)
	Create(ctx context.Context, note models.Note) (models.Note, error)
	Update(ctx context.Context, id models.NoteID, note models.Note) (models.Note, error)
	Delete(ctx context.Context, id models.NoteID) error
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)
}

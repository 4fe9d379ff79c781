package client

import (
	"context"

	"github.com/dmitrijs2005/medreminder/internal/client/models"
)

// Client is the backend API used by the services.
type Client interface {
	Register(ctx context.Context, r models.Registration) error
	Login(ctx context.Context, c models.Credentials) (token string, err error)

	List(ctx context.Context) ([]models.Reminder, error)
	Create(ctx context.Context, p models.ReminderPayload) (models.Reminder, error)
	Update(ctx context.Context, id string, p models.ReminderPatch) (models.Reminder, error)
	Delete(ctx context.Context, id string) error
}

// CredentialSource supplies the bearer token for reminder calls.
type CredentialSource interface {
	Credential() (token string, ok bool)
}

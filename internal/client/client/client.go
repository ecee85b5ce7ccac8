package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/contacto/internal/client/models"
)

// Client is the remote contact service. Every method is a single round trip
// without retries or caching; failures are *TransportError values.
type Client interface {
	List(ctx context.Context) ([]models.Contact, error)
	Create(ctx context.Context, draft models.ContactDraft) error
	Update(ctx context.Context, id int64, name, email, message string, date time.Time) (*models.Contact, error)
	Delete(ctx context.Context, id int64) error
}

package interfaces

import (
	"context"

	"oficina_os/internal/domain/entities"
)

// IClientResolver resolves a client id, or creates a client record from a
// (name, phone) pair, returning the stable id referenced by work orders.
type IClientResolver interface {
	Resolve(ctx context.Context, establishmentID string, clientID int, name, phone string) (entities.Client, error)
	GetByID(ctx context.Context, id int) (entities.Client, error)
}

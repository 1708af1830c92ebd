package interfaces

import (
	"context"

	"oficina_os/internal/domain/entities"
)

// IPartCatalog is the read-only inventory contract consumed at allocation
// time. Catalog management itself lives outside this service.
type IPartCatalog interface {
	// ListAvailable returns parts with available quantity > 0.
	ListAvailable(ctx context.Context, establishmentID string) ([]entities.CatalogPart, error)
	GetByID(ctx context.Context, id int) (entities.CatalogPart, error)
}

// IFaultTypeCatalog lists the establishment's selectable fault entries.
type IFaultTypeCatalog interface {
	List(ctx context.Context, establishmentID string) ([]entities.FaultType, error)
	GetByID(ctx context.Context, id int) (entities.FaultType, error)
}

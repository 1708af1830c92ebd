package interfaces

import (
	"context"
	"errors"

	"oficina_os/internal/domain/entities"
)

// ErrPartialWrite marks a failure inside the child-row write sequence. The
// transaction is rolled back; retrying the whole submission is safe because
// the protocol replaces all children before re-inserting.
var ErrPartialWrite = errors.New("work order tree write failed")

// IWorkOrderRepository abstracts the relational persistence of the work-order
// tree.
//
// Save is the reconciliation protocol: it replaces all child rows of the
// order (devices, faults, part allocations) inside one transaction and writes
// the denormalized totals back onto the order row. GetByID/GetByCode rebuild
// the full in-memory tree from the normalized tables, keeping the historical
// unit cost/price frozen on each allocation row.
type IWorkOrderRepository interface {
	Create(ctx context.Context, o *entities.WorkOrder) (*entities.WorkOrder, error)
	GetByID(ctx context.Context, id int) (*entities.WorkOrder, error)
	GetByCode(ctx context.Context, establishmentID, code string) (*entities.WorkOrder, error)
	List(ctx context.Context, establishmentID string) ([]*entities.WorkOrder, error)
	Save(ctx context.Context, o *entities.WorkOrder) (*entities.WorkOrder, error)
	Delete(ctx context.Context, id int) error
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

// WorkOrderGormRepository reconciles the in-memory work-order tree with its
// normalized MySQL tables.
//
// Save uses a replace-all-children strategy: inside one transaction the order
// row is updated, every child device row is deleted (faults and allocations
// cascade), and the current tree is re-inserted parent-first so each level
// can reference the id generated for the level above. There is no row
// diffing; saving an unchanged order rewrites an identical tree under fresh
// child ids.
type WorkOrderGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderGormRepository)(nil)

func NewWorkOrderGormRepository(db *gorm.DB) *WorkOrderGormRepository {
	return &WorkOrderGormRepository{db: db}
}

func (r *WorkOrderGormRepository) Create(ctx context.Context, o *entities.WorkOrder) (*entities.WorkOrder, error) {
	var id int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := toWorkOrderRow(o)
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		id = row.ID
		if err := insertChildren(tx, row.ID, o); err != nil {
			return fmt.Errorf("%w: %v", interfaces.ErrPartialWrite, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *WorkOrderGormRepository) Save(ctx context.Context, o *entities.WorkOrder) (*entities.WorkOrder, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := toWorkOrderRow(o)
		err := tx.Model(&workOrderRow{}).Where("id = ?", o.ID).Select(
			"code", "kind", "client_id", "item", "description", "status",
			"assignee_id", "price", "cost", "payment_status", "paid_amount",
			"unlocked", "serial_number", "diagnostic_at", "started_at",
			"completed_at", "updated_at",
		).Updates(&row).Error
		if err != nil {
			return err
		}

		// Destroy-and-recreate: drop all children before re-inserting the
		// current tree. Faults and allocations go with their devices via FK
		// cascade; the simple-mode flat list hangs off the order directly.
		if err := tx.Where("work_order_id = ?", o.ID).Delete(&deviceRow{}).Error; err != nil {
			return fmt.Errorf("%w: %v", interfaces.ErrPartialWrite, err)
		}
		if err := tx.Where("work_order_id = ?", o.ID).Delete(&partAllocationRow{}).Error; err != nil {
			return fmt.Errorf("%w: %v", interfaces.ErrPartialWrite, err)
		}
		if err := insertChildren(tx, o.ID, o); err != nil {
			return fmt.Errorf("%w: %v", interfaces.ErrPartialWrite, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, o.ID)
}

// insertChildren writes the tree parent-first: a fault row needs its device's
// generated id, an allocation row needs its fault's.
func insertChildren(tx *gorm.DB, workOrderID int, o *entities.WorkOrder) error {
	if o.Kind == entities.WorkOrderKindSimple {
		for _, alloc := range o.Parts {
			ar := toAllocationRow(nil, &workOrderID, alloc)
			if err := tx.Create(&ar).Error; err != nil {
				return err
			}
		}
		return nil
	}

	for _, device := range o.Devices {
		dr := toDeviceRow(workOrderID, device)
		if err := tx.Create(&dr).Error; err != nil {
			return err
		}
		for _, fault := range device.Faults {
			fr := toFaultRow(dr.ID, fault)
			if err := tx.Create(&fr).Error; err != nil {
				return err
			}
			for _, alloc := range fault.Parts {
				faultID := fr.ID
				ar := toAllocationRow(&faultID, nil, alloc)
				if err := tx.Create(&ar).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (r *WorkOrderGormRepository) GetByID(ctx context.Context, id int) (*entities.WorkOrder, error) {
	var row workOrderRow
	err := r.treeQuery(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fromWorkOrderRow(row), nil
}

func (r *WorkOrderGormRepository) GetByCode(ctx context.Context, establishmentID, code string) (*entities.WorkOrder, error) {
	var row workOrderRow
	err := r.treeQuery(ctx).
		Where("establishment_id = ? AND code = ?", establishmentID, code).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fromWorkOrderRow(row), nil
}

func (r *WorkOrderGormRepository) List(ctx context.Context, establishmentID string) ([]*entities.WorkOrder, error) {
	var rows []workOrderRow
	err := r.treeQuery(ctx).
		Where("establishment_id = ?", establishmentID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	orders := make([]*entities.WorkOrder, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, fromWorkOrderRow(row))
	}
	return orders, nil
}

// treeQuery preloads the full tree in one read: devices in ordinal order,
// faults joined to their fault type, allocations joined to the part catalog
// for display names (unit values stay frozen on the allocation rows).
func (r *WorkOrderGormRepository) treeQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Devices", func(db *gorm.DB) *gorm.DB {
			return db.Order("devices.order_index ASC")
		}).
		Preload("Devices.Faults", func(db *gorm.DB) *gorm.DB {
			return db.Order("faults.id ASC")
		}).
		Preload("Devices.Faults.FaultType").
		Preload("Devices.Faults.Parts", func(db *gorm.DB) *gorm.DB {
			return db.Order("part_allocations.id ASC")
		}).
		Preload("Devices.Faults.Parts.CatalogPart").
		Preload("Parts", func(db *gorm.DB) *gorm.DB {
			return db.Order("part_allocations.id ASC")
		}).
		Preload("Parts.CatalogPart")
}

func (r *WorkOrderGormRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_order_id = ?", id).Delete(&deviceRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("work_order_id = ?", id).Delete(&partAllocationRow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&workOrderRow{}, id).Error
	})
}

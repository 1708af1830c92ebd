package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"oficina_os/internal/domain/entities"
)

// Normalized row shapes for the work-order tree and its collaborators.
//
// work_orders carries the denormalized price/cost cache; devices, faults and
// part_allocations are replaced wholesale on every save. An allocation row
// belongs either to a fault (intervention tree) or directly to a work order
// (simple flat list); exactly one of FaultID/WorkOrderID is set.

type workOrderRow struct {
	ID              int             `gorm:"primaryKey"`
	Code            string          `gorm:"size:32;not null;uniqueIndex:uix_work_orders_est_code"`
	EstablishmentID string          `gorm:"size:64;not null;uniqueIndex:uix_work_orders_est_code;index"`
	Kind            string          `gorm:"size:16;not null"`
	ClientID        int             `gorm:"index;not null"`
	Item            string          `gorm:"size:255;not null"`
	Description     string          `gorm:"type:text"`
	Status          string          `gorm:"size:32;not null"`
	AssigneeID      *int            `gorm:"index;default:null"`
	Price           decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
	Cost            decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
	PaymentStatus   string          `gorm:"size:16;not null"`
	PaidAmount      decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
	Unlocked        bool            `gorm:"default:false"`
	SerialNumber    string          `gorm:"size:128;default:null"`
	DiagnosticAt    *time.Time
	StartedAt       *time.Time
	CompletedAt     *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`

	Devices []deviceRow         `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE"`
	Parts   []partAllocationRow `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE"`
}

func (workOrderRow) TableName() string { return "work_orders" }

type deviceRow struct {
	ID          int    `gorm:"primaryKey"`
	WorkOrderID int    `gorm:"index;not null"`
	OrderIndex  int    `gorm:"not null;default:0"`
	Model       string `gorm:"size:255"`
	Serial      string `gorm:"size:128"`
	Notes       string `gorm:"type:text"`

	Faults []faultRow `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE"`
}

func (deviceRow) TableName() string { return "devices" }

type faultRow struct {
	ID          int             `gorm:"primaryKey"`
	DeviceID    int             `gorm:"index;not null"`
	FaultTypeID int             `gorm:"index;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
	Status      string          `gorm:"size:32;not null"`

	FaultType faultTypeRow        `gorm:"foreignKey:FaultTypeID"`
	Parts     []partAllocationRow `gorm:"foreignKey:FaultID;constraint:OnDelete:CASCADE"`
}

func (faultRow) TableName() string { return "faults" }

type partAllocationRow struct {
	ID            int             `gorm:"primaryKey"`
	FaultID       *int            `gorm:"index;default:null"`
	WorkOrderID   *int            `gorm:"index;default:null"`
	CatalogPartID int             `gorm:"index;not null"`
	Quantity      int             `gorm:"not null"`
	UnitCost      decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(20,4);default:0"`

	CatalogPart catalogPartRow `gorm:"foreignKey:CatalogPartID"`
}

func (partAllocationRow) TableName() string { return "part_allocations" }

type catalogPartRow struct {
	ID                int             `gorm:"primaryKey"`
	EstablishmentID   string          `gorm:"size:64;index;not null"`
	Name              string          `gorm:"size:255;not null"`
	UnitCost          decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
	AvailableQuantity int             `gorm:"not null;default:0"`
	CreatedAt         time.Time       `gorm:"autoCreateTime"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime"`
}

func (catalogPartRow) TableName() string { return "catalog_parts" }

type faultTypeRow struct {
	ID              int    `gorm:"primaryKey"`
	EstablishmentID string `gorm:"size:64;index;not null"`
	Name            string `gorm:"size:255;not null"`
}

func (faultTypeRow) TableName() string { return "fault_types" }

type clientRow struct {
	ID              int       `gorm:"primaryKey"`
	EstablishmentID string    `gorm:"size:64;index;not null"`
	Name            string    `gorm:"size:255;not null"`
	Phone           string    `gorm:"size:32;index"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (clientRow) TableName() string { return "clients" }

type paymentRecordRow struct {
	ID          int             `gorm:"primaryKey"`
	WorkOrderID int             `gorm:"index;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Method      string          `gorm:"size:64"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}

func (paymentRecordRow) TableName() string { return "payment_records" }

// AutoMigrate creates/updates the engine's tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&clientRow{},
		&faultTypeRow{},
		&catalogPartRow{},
		&workOrderRow{},
		&deviceRow{},
		&faultRow{},
		&partAllocationRow{},
		&paymentRecordRow{},
	)
}

// --- flatten: entity tree -> rows -------------------------------------------

func toWorkOrderRow(o *entities.WorkOrder) workOrderRow {
	return workOrderRow{
		ID:              o.ID,
		Code:            o.Code,
		EstablishmentID: o.EstablishmentID,
		Kind:            string(o.Kind),
		ClientID:        o.ClientID,
		Item:            o.Item,
		Description:     o.Description,
		Status:          string(o.Status),
		AssigneeID:      o.AssigneeID,
		Price:           o.Price,
		Cost:            o.Cost,
		PaymentStatus:   string(o.PaymentStatus),
		PaidAmount:      o.PaidAmount,
		Unlocked:        o.Unlocked,
		SerialNumber:    o.SerialNumber,
		DiagnosticAt:    o.DiagnosticAt,
		StartedAt:       o.StartedAt,
		CompletedAt:     o.CompletedAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toDeviceRow(workOrderID int, d entities.Device) deviceRow {
	return deviceRow{
		WorkOrderID: workOrderID,
		OrderIndex:  d.OrderIndex,
		Model:       d.Model,
		Serial:      d.Serial,
		Notes:       d.Notes,
	}
}

func toFaultRow(deviceID int, f entities.Fault) faultRow {
	return faultRow{
		DeviceID:    deviceID,
		FaultTypeID: f.FaultTypeID,
		Price:       f.Price,
		Status:      string(f.Status),
	}
}

func toAllocationRow(faultID, workOrderID *int, a entities.PartAllocation) partAllocationRow {
	return partAllocationRow{
		FaultID:       faultID,
		WorkOrderID:   workOrderID,
		CatalogPartID: a.CatalogPartID,
		Quantity:      a.Quantity,
		UnitCost:      a.UnitCost,
		UnitPrice:     a.UnitPrice,
	}
}

// --- assemble: rows -> entity tree ------------------------------------------

func fromWorkOrderRow(row workOrderRow) *entities.WorkOrder {
	o := &entities.WorkOrder{
		ID:              row.ID,
		Code:            row.Code,
		EstablishmentID: row.EstablishmentID,
		Kind:            entities.WorkOrderKind(row.Kind),
		ClientID:        row.ClientID,
		Item:            row.Item,
		Description:     row.Description,
		Status:          entities.WorkOrderStatus(row.Status),
		AssigneeID:      row.AssigneeID,
		Price:           row.Price,
		Cost:            row.Cost,
		PaymentStatus:   entities.PaymentStatus(row.PaymentStatus),
		PaidAmount:      row.PaidAmount,
		Unlocked:        row.Unlocked,
		SerialNumber:    row.SerialNumber,
		DiagnosticAt:    row.DiagnosticAt,
		StartedAt:       row.StartedAt,
		CompletedAt:     row.CompletedAt,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	for _, d := range row.Devices {
		o.Devices = append(o.Devices, fromDeviceRow(d))
	}
	for _, p := range row.Parts {
		o.Parts = append(o.Parts, fromAllocationRow(p))
	}
	return o
}

func fromDeviceRow(row deviceRow) entities.Device {
	d := entities.Device{
		ID:         row.ID,
		OrderIndex: row.OrderIndex,
		Model:      row.Model,
		Serial:     row.Serial,
		Notes:      row.Notes,
	}
	for _, f := range row.Faults {
		d.Faults = append(d.Faults, fromFaultRow(f))
	}
	return d
}

func fromFaultRow(row faultRow) entities.Fault {
	f := entities.Fault{
		ID:          row.ID,
		FaultTypeID: row.FaultTypeID,
		Name:        row.FaultType.Name,
		Price:       row.Price,
		Status:      entities.FaultStatus(row.Status),
	}
	for _, p := range row.Parts {
		f.Parts = append(f.Parts, fromAllocationRow(p))
	}
	return f
}

// fromAllocationRow keeps the HISTORICAL unit cost/price stored on the row;
// the joined catalog entry only contributes its display name.
func fromAllocationRow(row partAllocationRow) entities.PartAllocation {
	return entities.PartAllocation{
		ID:            row.ID,
		CatalogPartID: row.CatalogPartID,
		Name:          row.CatalogPart.Name,
		Quantity:      row.Quantity,
		UnitCost:      row.UnitCost,
		UnitPrice:     row.UnitPrice,
	}
}

func fromCatalogPartRow(row catalogPartRow) entities.CatalogPart {
	return entities.CatalogPart{
		ID:                row.ID,
		Name:              row.Name,
		UnitCost:          row.UnitCost,
		UnitPrice:         row.UnitPrice,
		AvailableQuantity: row.AvailableQuantity,
	}
}

func fromClientRow(row clientRow) entities.Client {
	return entities.Client{ID: row.ID, Name: row.Name, Phone: row.Phone}
}

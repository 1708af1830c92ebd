package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMinimumDeviceRequired   = errors.New("an intervention order must keep at least one device")
	ErrDeviceNotFound          = errors.New("device not found")
	ErrNotInterventionOrder    = errors.New("operation requires an intervention order")
	ErrNotSimpleOrder          = errors.New("operation requires a simple order")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidPaymentStatus    = errors.New("invalid payment status")
	ErrNegativePaidAmount      = errors.New("paid amount must not be negative")
)

type WorkOrderKind string

const (
	WorkOrderKindSimple       WorkOrderKind = "simple"
	WorkOrderKindIntervention WorkOrderKind = "intervention"
)

// WorkOrderStatus is the repair lifecycle. Transitions are user-driven and
// stage skipping is allowed; cancelled is terminal and reachable from any
// non-terminal state.
type WorkOrderStatus string

const (
	WorkOrderStatusNew            WorkOrderStatus = "new"
	WorkOrderStatusDiagnosing     WorkOrderStatus = "diagnosing"
	WorkOrderStatusInRepair       WorkOrderStatus = "in_repair"
	WorkOrderStatusReadyForPickup WorkOrderStatus = "ready_for_pickup"
	WorkOrderStatusPickedUp       WorkOrderStatus = "picked_up"
	WorkOrderStatusCancelled      WorkOrderStatus = "cancelled"
)

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderStatusNew, WorkOrderStatusDiagnosing, WorkOrderStatusInRepair,
		WorkOrderStatusReadyForPickup, WorkOrderStatusPickedUp, WorkOrderStatusCancelled:
		return true
	}
	return false
}

func (s WorkOrderStatus) Terminal() bool {
	return s == WorkOrderStatusPickedUp || s == WorkOrderStatusCancelled
}

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusPaid:
		return true
	}
	return false
}

// WorkOrder is the top-level repair aggregate.
//
// Two shapes share the struct, discriminated by Kind:
//   - simple: flat Price (direct), flat Parts list, optional unlock info;
//     Devices is always empty.
//   - intervention: Devices tree; Price and Cost are derived caches of the
//     tree, written by the pricing engine at save time, never hand-edited.
type WorkOrder struct {
	ID              int             `json:"id"`
	Code            string          `json:"code"`
	Kind            WorkOrderKind   `json:"kind"`
	EstablishmentID string          `json:"establishment_id"`
	ClientID        int             `json:"client_id"`
	Item            string          `json:"item"`
	Description     string          `json:"description"`
	Status          WorkOrderStatus `json:"status"`
	AssigneeID      *int            `json:"assignee_id"`
	Price           decimal.Decimal `json:"price"`
	Cost            decimal.Decimal `json:"cost"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	Unlocked        bool            `json:"unlocked"`
	SerialNumber    string          `json:"serial_number"`

	DiagnosticAt *time.Time `json:"diagnostic_at"`
	StartedAt    *time.Time `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Devices []Device         `json:"devices,omitempty"`
	Parts   []PartAllocation `json:"parts,omitempty"`
}

// AddDevice appends an empty device and returns a pointer into the tree.
func (o *WorkOrder) AddDevice() (*Device, error) {
	if o.Kind != WorkOrderKindIntervention {
		return nil, ErrNotInterventionOrder
	}
	o.Devices = append(o.Devices, Device{OrderIndex: len(o.Devices)})
	return &o.Devices[len(o.Devices)-1], nil
}

// RemoveDevice drops the device at the given ordinal position. The last
// remaining device cannot be removed.
func (o *WorkOrder) RemoveDevice(orderIndex int) error {
	if o.Kind != WorkOrderKindIntervention {
		return ErrNotInterventionOrder
	}
	if len(o.Devices) <= 1 {
		return ErrMinimumDeviceRequired
	}
	for i := range o.Devices {
		if o.Devices[i].OrderIndex == orderIndex {
			o.Devices = append(o.Devices[:i], o.Devices[i+1:]...)
			for j := range o.Devices {
				o.Devices[j].OrderIndex = j
			}
			return nil
		}
	}
	return ErrDeviceNotFound
}

// DeviceAt returns the device at the given ordinal position.
func (o *WorkOrder) DeviceAt(orderIndex int) (*Device, error) {
	if o.Kind != WorkOrderKindIntervention {
		return nil, ErrNotInterventionOrder
	}
	for i := range o.Devices {
		if o.Devices[i].OrderIndex == orderIndex {
			return &o.Devices[i], nil
		}
	}
	return nil, ErrDeviceNotFound
}

// AddPart allocates a part on the order's flat list (simple kind only), with
// the same delta-to-price semantics a Fault applies.
func (o *WorkOrder) AddPart(part CatalogPart, qty int) error {
	if o.Kind != WorkOrderKindSimple {
		return ErrNotSimpleOrder
	}
	for i := range o.Parts {
		if o.Parts[i].CatalogPartID == part.ID {
			delta, err := o.Parts[i].ChangeQuantity(part.AvailableQuantity, qty)
			if err != nil {
				return err
			}
			o.Price = flooredAdd(o.Price, delta)
			return nil
		}
	}
	alloc, err := NewPartAllocation(part, qty)
	if err != nil {
		return err
	}
	o.Parts = append(o.Parts, alloc)
	o.Price = flooredAdd(o.Price, alloc.Contribution())
	return nil
}

// RemovePart releases a flat-list allocation (simple kind only), reversing
// its price contribution.
func (o *WorkOrder) RemovePart(catalogPartID int) error {
	if o.Kind != WorkOrderKindSimple {
		return ErrNotSimpleOrder
	}
	for i := range o.Parts {
		if o.Parts[i].CatalogPartID == catalogPartID {
			contribution := o.Parts[i].Contribution()
			o.Parts = append(o.Parts[:i], o.Parts[i+1:]...)
			o.Price = flooredAdd(o.Price, contribution.Neg())
			return nil
		}
	}
	return ErrPartNotAllocated
}

// ApplyStatus moves the order to next, stamping lifecycle timestamps on the
// actual change. Saving again at the current status is a no-op: nothing is
// re-stamped and no notification is requested.
//
// The returned notify flag is true exactly when the order just entered
// ready_for_pickup.
func (o *WorkOrder) ApplyStatus(next WorkOrderStatus, now time.Time) (changed bool, notify bool, err error) {
	if !next.Valid() {
		return false, false, ErrInvalidStatusTransition
	}
	if next == o.Status {
		return false, false, nil
	}
	if o.Status.Terminal() {
		return false, false, ErrInvalidStatusTransition
	}

	o.Status = next
	switch next {
	case WorkOrderStatusDiagnosing:
		o.DiagnosticAt = &now
	case WorkOrderStatusInRepair:
		o.StartedAt = &now
	case WorkOrderStatusReadyForPickup:
		o.CompletedAt = &now
		notify = true
	}
	return true, notify, nil
}

// ApplyPayment normalizes the payment pair against the given total:
// unpaid forces 0, paid resyncs to the current total, partial keeps the
// caller amount clamped to [0, total].
func (o *WorkOrder) ApplyPayment(status PaymentStatus, amount decimal.Decimal, total decimal.Decimal) error {
	if !status.Valid() {
		return ErrInvalidPaymentStatus
	}
	if amount.IsNegative() {
		return ErrNegativePaidAmount
	}

	o.PaymentStatus = status
	switch status {
	case PaymentStatusUnpaid:
		o.PaidAmount = decimal.Zero
	case PaymentStatusPaid:
		o.PaidAmount = total
	case PaymentStatusPartial:
		if amount.GreaterThan(total) {
			amount = total
		}
		o.PaidAmount = amount
	}
	return nil
}

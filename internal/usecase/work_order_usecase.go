package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/domain/pricing"
	"oficina_os/internal/infrastructure/logging"
	"oficina_os/internal/usecase/interfaces"
)

var (
	ErrWorkOrderNotFound   = errors.New("work order not found")
	ErrInvalidWorkOrderID  = errors.New("invalid work order id")
	ErrInvalidKind         = errors.New("invalid work order kind")
	ErrItemRequired        = errors.New("item is required")
	ErrClientRequired      = errors.New("client could not be resolved")
	ErrDeviceModelRequired = errors.New("every device needs a model label")
	ErrDeviceFaultRequired = errors.New("every device needs at least one fault")
	ErrCatalogPartNotFound = errors.New("catalog part not found")
	ErrFaultTypeNotFound   = errors.New("fault type not found")
)

const defaultPickupTemplate = "Hello {name}! Your {item} is ready for pickup. Total: {total}."

type CreateWorkOrderInput struct {
	Kind            entities.WorkOrderKind
	EstablishmentID string
	ClientID        int
	ClientName      string
	ClientPhone     string
	Item            string
	Description     string
	AssigneeID      *int
	Price           decimal.Decimal
	Unlocked        bool
	SerialNumber    string
}

type UpdateWorkOrderInput struct {
	Item         *string
	Description  *string
	AssigneeID   *int
	Price        *decimal.Decimal
	Unlocked     *bool
	SerialNumber *string
}

type UpdateDeviceInput struct {
	Model  *string
	Serial *string
	Notes  *string
}

// IWorkOrderUseCase exposes every work-order operation: creation, tree edits
// (devices, faults, part allocations), lifecycle/status changes, payment
// bookkeeping and deletion.
//
// Each mutating operation follows the same submit path: load the persisted
// tree, mutate it in memory, recompute the derived totals and save through
// the reconciling repository.
type IWorkOrderUseCase interface {
	Create(ctx context.Context, input CreateWorkOrderInput) (*entities.WorkOrder, error)
	Get(ctx context.Context, id int) (*entities.WorkOrder, error)
	GetByCode(ctx context.Context, establishmentID, code string) (*entities.WorkOrder, error)
	List(ctx context.Context, establishmentID string) ([]*entities.WorkOrder, error)
	UpdateDetails(ctx context.Context, id int, input UpdateWorkOrderInput) (*entities.WorkOrder, error)
	Delete(ctx context.Context, id int) error

	AddDevice(ctx context.Context, id int) (*entities.WorkOrder, error)
	RemoveDevice(ctx context.Context, id, deviceIndex int) (*entities.WorkOrder, error)
	UpdateDevice(ctx context.Context, id, deviceIndex int, input UpdateDeviceInput) (*entities.WorkOrder, error)

	ToggleFault(ctx context.Context, id, deviceIndex, faultTypeID int, price decimal.Decimal) (*entities.WorkOrder, error)
	SetFaultPrice(ctx context.Context, id, deviceIndex, faultTypeID int, price decimal.Decimal) (*entities.WorkOrder, error)
	AddFaultPart(ctx context.Context, id, deviceIndex, faultTypeID, catalogPartID, quantity int) (*entities.WorkOrder, error)
	RemoveFaultPart(ctx context.Context, id, deviceIndex, faultTypeID, catalogPartID int) (*entities.WorkOrder, error)

	AddOrderPart(ctx context.Context, id, catalogPartID, quantity int) (*entities.WorkOrder, error)
	RemoveOrderPart(ctx context.Context, id, catalogPartID int) (*entities.WorkOrder, error)

	UpdateStatus(ctx context.Context, id int, status entities.WorkOrderStatus) (*entities.WorkOrder, error)
	RecordPayment(ctx context.Context, id int, status entities.PaymentStatus, amount decimal.Decimal, method string) (*entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo       interfaces.IWorkOrderRepository
	parts      interfaces.IPartCatalog
	faultTypes interfaces.IFaultTypeCatalog
	clients    interfaces.IClientResolver
	notifier   interfaces.INotificationDispatcher
	payments   interfaces.IPaymentRecorder
	log        *logrus.Logger
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(
	repo interfaces.IWorkOrderRepository,
	parts interfaces.IPartCatalog,
	faultTypes interfaces.IFaultTypeCatalog,
	clients interfaces.IClientResolver,
	notifier interfaces.INotificationDispatcher,
	payments interfaces.IPaymentRecorder,
	log *logrus.Logger,
) *WorkOrderUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &WorkOrderUseCase{
		repo:       repo,
		parts:      parts,
		faultTypes: faultTypes,
		clients:    clients,
		notifier:   notifier,
		payments:   payments,
		log:        log,
	}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, input CreateWorkOrderInput) (*entities.WorkOrder, error) {
	input.Item = strings.TrimSpace(input.Item)
	if input.Item == "" {
		return nil, ErrItemRequired
	}
	if input.Kind != entities.WorkOrderKindSimple && input.Kind != entities.WorkOrderKindIntervention {
		return nil, ErrInvalidKind
	}
	if input.Price.IsNegative() {
		return nil, entities.ErrNegativePrice
	}

	client, err := u.clients.Resolve(ctx, input.EstablishmentID, input.ClientID, input.ClientName, input.ClientPhone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClientRequired, err)
	}
	if client.ID == 0 {
		return nil, ErrClientRequired
	}

	now := time.Now().UTC()
	o := &entities.WorkOrder{
		Code:            generateCode(),
		Kind:            input.Kind,
		EstablishmentID: input.EstablishmentID,
		ClientID:        client.ID,
		Item:            input.Item,
		Description:     input.Description,
		Status:          entities.WorkOrderStatusNew,
		AssigneeID:      input.AssigneeID,
		PaymentStatus:   entities.PaymentStatusUnpaid,
		PaidAmount:      decimal.Zero,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	switch input.Kind {
	case entities.WorkOrderKindSimple:
		o.Price = input.Price
		o.Unlocked = input.Unlocked
		o.SerialNumber = strings.TrimSpace(input.SerialNumber)
	case entities.WorkOrderKindIntervention:
		// Editing always happens against at least one device.
		o.Devices = []entities.Device{{OrderIndex: 0}}
	}

	return u.repo.Create(ctx, o)
}

func (u *WorkOrderUseCase) Get(ctx context.Context, id int) (*entities.WorkOrder, error) {
	return u.load(ctx, id)
}

func (u *WorkOrderUseCase) GetByCode(ctx context.Context, establishmentID, code string) (*entities.WorkOrder, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrWorkOrderNotFound
	}
	o, err := u.repo.GetByCode(ctx, establishmentID, code)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrWorkOrderNotFound
	}
	return o, nil
}

func (u *WorkOrderUseCase) List(ctx context.Context, establishmentID string) ([]*entities.WorkOrder, error) {
	return u.repo.List(ctx, establishmentID)
}

func (u *WorkOrderUseCase) UpdateDetails(ctx context.Context, id int, input UpdateWorkOrderInput) (*entities.WorkOrder, error) {
	return u.mutate(ctx, id, func(o *entities.WorkOrder) error {
		if input.Item != nil {
			item := strings.TrimSpace(*input.Item)
			if item == "" {
				return ErrItemRequired
			}
			o.Item = item
		}
		if input.Description != nil {
			o.Description = *input.Description
		}
		if input.AssigneeID != nil {
			o.AssigneeID = input.AssigneeID
		}
		if input.Price != nil {
			// Direct price edits only exist on simple orders; intervention
			// totals are always derived from the device tree.
			if o.Kind != entities.WorkOrderKindSimple {
				return entities.ErrNotSimpleOrder
			}
			if input.Price.IsNegative() {
				return entities.ErrNegativePrice
			}
			o.Price = *input.Price
		}
		if input.Unlocked != nil {
			if o.Kind != entities.WorkOrderKindSimple {
				return entities.ErrNotSimpleOrder
			}
			o.Unlocked = *input.Unlocked
		}
		if input.SerialNumber != nil {
			if o.Kind != entities.WorkOrderKindSimple {
				return entities.ErrNotSimpleOrder
			}
			o.SerialNumber = strings.TrimSpace(*input.SerialNumber)
		}
		return nil
	})
}

func (u *WorkOrderUseCase) Delete(ctx context.Context, id int) error {
	if _, err := u.load(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *WorkOrderUseCase) AddDevice(ctx context.Context, id int) (*entities.WorkOrder, error) {
	return u.mutate(ctx, id, func(o *entities.WorkOrder) error {
		_, err := o.AddDevice()
		return err
	})
}

func (u *WorkOrderUseCase) RemoveDevice(ctx context.Context, id, deviceIndex int) (*entities.WorkOrder, error) {
	return u.mutate(ctx, id, func(o *entities.WorkOrder) error {
		return o.RemoveDevice(deviceIndex)
	})
}

func (u *WorkOrderUseCase) UpdateDevice(ctx context.Context, id, deviceIndex int, input UpdateDeviceInput) (*entities.WorkOrder, error) {
	return u.mutate(ctx, id, func(o *entities.WorkOrder) error {
		device, err := o.DeviceAt(deviceIndex)
		if err != nil {
			return err
		}
		if input.Model != nil {
			device.Model = strings.TrimSpace(*input.Model)
		}
		if input.Serial != nil {
			device.Serial = strings.TrimSpace(*input.Serial)
		}
		if input.Notes != nil {
			device.Notes = *input.Notes
		}
		return nil
	})
}

func (u *WorkOrderUseCase) ToggleFault(ctx context.Context, id, deviceIndex, faultTypeID int, price decimal.Decimal) (*entities.WorkOrder, error) {
	faultType, err := u.faultTypes.GetByID(ctx, faultTypeID)
	if err != nil {
		return nil, err
	}
	if faultType.ID == 0 {
		return nil, ErrFaultTypeNotFound
	}
	return u.mutate(ctx, id, func(o *entities.WorkOrder) error {
		device, err := o.DeviceAt(deviceIndex)
		if err != nil {
			return err
		}
		_, err = device.ToggleFault(faultType, price)
		return err
	})
}

func (u *WorkOrderUseCase) SetFaultPrice(ctx context.Context, id, deviceIndex, faultTypeID int, price decimal.Decimal) (*entities.WorkOrder, error) {
	return u.mutate(ctx, id, func(o *entities.WorkOrder) error {
		fault, err := u.faultOn(o, deviceIndex, faultTypeID)
		if err != nil {
			return err
		}
		return fault.SetPrice(price)
	})
}

func (u *WorkOrderUseCase) AddFaultPart(ctx context.Context, id, deviceIndex, faultTypeID, catalogPartID, quantity int) (*entities.WorkOrder, error) {
	part, err := u.catalogPart(ctx, catalogPartID)
	if err != nil {
		return nil, err
	}
	return u.mutate(ctx, id, func(o *entities.WorkOrder) error {
		fault, err := u.faultOn(o, deviceIndex, faultTypeID)
		if err != nil {
			return err
		}
		return fault.AddPart(part, quantity)
	})
}

func (u *WorkOrderUseCase) RemoveFaultPart(ctx context.Context, id, deviceIndex, faultTypeID, catalogPartID int) (*entities.WorkOrder, error) {
	return u.mutate(ctx, id, func(o *entities.WorkOrder) error {
		fault, err := u.faultOn(o, deviceIndex, faultTypeID)
		if err != nil {
			return err
		}
		return fault.RemovePart(catalogPartID)
	})
}

func (u *WorkOrderUseCase) AddOrderPart(ctx context.Context, id, catalogPartID, quantity int) (*entities.WorkOrder, error) {
	part, err := u.catalogPart(ctx, catalogPartID)
	if err != nil {
		return nil, err
	}
	return u.mutate(ctx, id, func(o *entities.WorkOrder) error {
		return o.AddPart(part, quantity)
	})
}

func (u *WorkOrderUseCase) RemoveOrderPart(ctx context.Context, id, catalogPartID int) (*entities.WorkOrder, error) {
	return u.mutate(ctx, id, func(o *entities.WorkOrder) error {
		return o.RemovePart(catalogPartID)
	})
}

// UpdateStatus drives the lifecycle machine. Progressing beyond `new`
// requires a submittable tree (each device carries a model and at least one
// fault). Entering ready_for_pickup dispatches the pickup notification after
// the transition is persisted; delivery failures are logged and swallowed.
func (u *WorkOrderUseCase) UpdateStatus(ctx context.Context, id int, status entities.WorkOrderStatus) (*entities.WorkOrder, error) {
	o, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if status != entities.WorkOrderStatusCancelled && status != entities.WorkOrderStatusNew {
		if err := validateSubmittable(o); err != nil {
			return nil, err
		}
	}

	changed, notify, err := o.ApplyStatus(status, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !changed {
		return o, nil
	}

	saved, err := u.submit(ctx, o)
	if err != nil {
		return nil, err
	}

	if notify {
		u.notifyReadyForPickup(ctx, saved)
	}
	return saved, nil
}

// RecordPayment normalizes the payment pair against the current total and,
// for paid/partial, appends the newly received amount to the payment ledger.
func (u *WorkOrderUseCase) RecordPayment(ctx context.Context, id int, status entities.PaymentStatus, amount decimal.Decimal, method string) (*entities.WorkOrder, error) {
	o, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := o.PaidAmount
	if err := o.ApplyPayment(status, amount, pricing.TotalPrice(*o)); err != nil {
		return nil, err
	}

	saved, err := u.submit(ctx, o)
	if err != nil {
		return nil, err
	}

	if status != entities.PaymentStatusUnpaid {
		if received := saved.PaidAmount.Sub(previous); received.IsPositive() {
			if err := u.payments.Append(ctx, saved.ID, received, method); err != nil {
				return nil, err
			}
		}
	}
	return saved, nil
}

func (u *WorkOrderUseCase) load(ctx context.Context, id int) (*entities.WorkOrder, error) {
	if id <= 0 {
		return nil, ErrInvalidWorkOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrWorkOrderNotFound
	}
	return o, nil
}

// mutate is the shared submit path: load, apply the edit, recompute derived
// totals, save through the reconciler.
func (u *WorkOrderUseCase) mutate(ctx context.Context, id int, fn func(o *entities.WorkOrder) error) (*entities.WorkOrder, error) {
	o, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(o); err != nil {
		return nil, err
	}
	return u.submit(ctx, o)
}

// submit recomputes the denormalized totals, keeps paid_amount consistent
// with the (possibly changed) total, and persists the whole tree.
func (u *WorkOrderUseCase) submit(ctx context.Context, o *entities.WorkOrder) (*entities.WorkOrder, error) {
	if o.Kind == entities.WorkOrderKindIntervention {
		o.Price = pricing.TotalPrice(*o)
	}
	o.Cost = pricing.TotalCost(*o)

	// A paid order stays paid in full even when the total moved; a partial
	// amount never exceeds the new total.
	total := pricing.TotalPrice(*o)
	switch o.PaymentStatus {
	case entities.PaymentStatusPaid:
		o.PaidAmount = total
	case entities.PaymentStatusPartial:
		if o.PaidAmount.GreaterThan(total) {
			o.PaidAmount = total
		}
	}

	o.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, o)
}

func (u *WorkOrderUseCase) faultOn(o *entities.WorkOrder, deviceIndex, faultTypeID int) (*entities.Fault, error) {
	device, err := o.DeviceAt(deviceIndex)
	if err != nil {
		return nil, err
	}
	return device.FaultByType(faultTypeID)
}

func (u *WorkOrderUseCase) catalogPart(ctx context.Context, catalogPartID int) (entities.CatalogPart, error) {
	part, err := u.parts.GetByID(ctx, catalogPartID)
	if err != nil {
		return entities.CatalogPart{}, err
	}
	if part.ID == 0 {
		return entities.CatalogPart{}, ErrCatalogPartNotFound
	}
	return part, nil
}

func (u *WorkOrderUseCase) notifyReadyForPickup(ctx context.Context, o *entities.WorkOrder) {
	if u.notifier == nil {
		return
	}
	client, err := u.clients.GetByID(ctx, o.ClientID)
	if err != nil || client.Phone == "" {
		u.log.WithFields(logrus.Fields{
			"module":        "usecase",
			"funcName":      "notifyReadyForPickup",
			"work_order_id": o.ID,
		}).Warn("pickup notification skipped: client contact unavailable")
		return
	}

	template := os.Getenv("NOTIFY_TEMPLATE")
	if template == "" {
		template = defaultPickupTemplate
	}
	message := strings.NewReplacer(
		"{name}", client.Name,
		"{item}", o.Item,
		"{total}", pricing.TotalPrice(*o).StringFixed(2),
	).Replace(template)
	if err := u.notifier.Send(ctx, client.Phone, message); err != nil {
		// Best effort: the transition and its timestamp stand.
		logging.LogError(u.log, "usecase", "notifyReadyForPickup", "pickup notification dispatch", o.ID, err)
	}
}

// validateSubmittable enforces the tree requirements before an order leaves
// the draft state: every device needs a model label and at least one fault.
// Incomplete devices are rejected, not dropped.
func validateSubmittable(o *entities.WorkOrder) error {
	if o.Kind != entities.WorkOrderKindIntervention {
		return nil
	}
	for i := range o.Devices {
		if strings.TrimSpace(o.Devices[i].Model) == "" {
			return ErrDeviceModelRequired
		}
		if len(o.Devices[i].Faults) == 0 {
			return ErrDeviceFaultRequired
		}
	}
	return nil
}

func generateCode() string {
	return "OS-" + strings.ToUpper(uuid.NewString()[:8])
}

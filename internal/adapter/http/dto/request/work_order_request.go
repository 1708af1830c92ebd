package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"
)

var (
	ErrInvalidKind   = errors.New("kind must be simple or intervention")
	ErrInvalidStatus = errors.New("unknown status value")
)

type CreateWorkOrderRequest struct {
	Kind         string          `json:"kind" binding:"required"`
	ClientID     int             `json:"client_id"`
	ClientName   string          `json:"client_name"`
	ClientPhone  string          `json:"client_phone"`
	Item         string          `json:"item" binding:"required"`
	Description  string          `json:"description"`
	AssigneeID   *int            `json:"assignee_id"`
	Price        decimal.Decimal `json:"price"`
	Unlocked     bool            `json:"unlocked"`
	SerialNumber string          `json:"serial_number"`
}

// ToInput validates the kind and carries the payload into the use-case
// command, attaching the establishment resolved by middleware.
func (r CreateWorkOrderRequest) ToInput(establishmentID string) (usecase.CreateWorkOrderInput, error) {
	kind := entities.WorkOrderKind(strings.TrimSpace(strings.ToLower(r.Kind)))
	if kind != entities.WorkOrderKindSimple && kind != entities.WorkOrderKindIntervention {
		return usecase.CreateWorkOrderInput{}, ErrInvalidKind
	}
	return usecase.CreateWorkOrderInput{
		Kind:            kind,
		EstablishmentID: establishmentID,
		ClientID:        r.ClientID,
		ClientName:      strings.TrimSpace(r.ClientName),
		ClientPhone:     strings.TrimSpace(r.ClientPhone),
		Item:            strings.TrimSpace(r.Item),
		Description:     strings.TrimSpace(r.Description),
		AssigneeID:      r.AssigneeID,
		Price:           r.Price,
		Unlocked:        r.Unlocked,
		SerialNumber:    strings.TrimSpace(r.SerialNumber),
	}, nil
}

type UpdateWorkOrderRequest struct {
	Item         *string          `json:"item"`
	Description  *string          `json:"description"`
	AssigneeID   *int             `json:"assignee_id"`
	Price        *decimal.Decimal `json:"price"`
	Unlocked     *bool            `json:"unlocked"`
	SerialNumber *string          `json:"serial_number"`
}

func (r UpdateWorkOrderRequest) ToInput() usecase.UpdateWorkOrderInput {
	return usecase.UpdateWorkOrderInput{
		Item:         trimmed(r.Item),
		Description:  trimmed(r.Description),
		AssigneeID:   r.AssigneeID,
		Price:        r.Price,
		Unlocked:     r.Unlocked,
		SerialNumber: trimmed(r.SerialNumber),
	}
}

type UpdateDeviceRequest struct {
	Model  *string `json:"model"`
	Serial *string `json:"serial"`
	Notes  *string `json:"notes"`
}

func (r UpdateDeviceRequest) ToInput() usecase.UpdateDeviceInput {
	return usecase.UpdateDeviceInput{
		Model:  trimmed(r.Model),
		Serial: trimmed(r.Serial),
		Notes:  trimmed(r.Notes),
	}
}

type ToggleFaultRequest struct {
	FaultTypeID int             `json:"fault_type_id" binding:"required"`
	Price       decimal.Decimal `json:"price"`
}

type FaultPriceRequest struct {
	FaultTypeID int             `json:"fault_type_id" binding:"required"`
	Price       decimal.Decimal `json:"price"`
}

type AllocatePartRequest struct {
	FaultTypeID   int `json:"fault_type_id"`
	CatalogPartID int `json:"catalog_part_id" binding:"required"`
	Quantity      int `json:"quantity" binding:"required"`
}

type ReleasePartRequest struct {
	FaultTypeID   int `json:"fault_type_id"`
	CatalogPartID int `json:"catalog_part_id" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateStatusRequest) ResolveStatus() (entities.WorkOrderStatus, error) {
	status := entities.WorkOrderStatus(strings.TrimSpace(strings.ToLower(r.Status)))
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type RecordPaymentRequest struct {
	Status string          `json:"status" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
}

func (r RecordPaymentRequest) ResolveStatus() (entities.PaymentStatus, error) {
	status := entities.PaymentStatus(strings.TrimSpace(strings.ToLower(r.Status)))
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

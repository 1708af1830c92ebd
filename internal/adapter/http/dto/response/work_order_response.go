package response

import (
	"time"

	"github.com/shopspring/decimal"

	"oficina_os/internal/domain/entities"
)

type PartAllocationResponse struct {
	ID            int             `json:"id"`
	CatalogPartID int             `json:"catalog_part_id"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Contribution  decimal.Decimal `json:"contribution"`
}

type FaultResponse struct {
	ID          int                      `json:"id"`
	FaultTypeID int                      `json:"fault_type_id"`
	Name        string                   `json:"name"`
	Price       decimal.Decimal          `json:"price"`
	Status      string                   `json:"status"`
	Subtotal    decimal.Decimal          `json:"subtotal"`
	Parts       []PartAllocationResponse `json:"parts"`
}

type DeviceResponse struct {
	ID         int             `json:"id"`
	OrderIndex int             `json:"order_index"`
	Model      string          `json:"model"`
	Serial     string          `json:"serial"`
	Notes      string          `json:"notes"`
	Faults     []FaultResponse `json:"faults"`
}

type WorkOrderResponse struct {
	ID              int                      `json:"id"`
	Code            string                   `json:"code"`
	Kind            string                   `json:"kind"`
	EstablishmentID string                   `json:"establishment_id"`
	ClientID        int                      `json:"client_id"`
	Item            string                   `json:"item"`
	Description     string                   `json:"description"`
	Status          string                   `json:"status"`
	AssigneeID      *int                     `json:"assignee_id,omitempty"`
	Price           decimal.Decimal          `json:"price"`
	Cost            decimal.Decimal          `json:"cost"`
	PaymentStatus   string                   `json:"payment_status"`
	PaidAmount      decimal.Decimal          `json:"paid_amount"`
	Unlocked        bool                     `json:"unlocked"`
	SerialNumber    string                   `json:"serial_number,omitempty"`
	DiagnosticAt    *time.Time               `json:"diagnostic_at,omitempty"`
	StartedAt       *time.Time               `json:"started_at,omitempty"`
	CompletedAt     *time.Time               `json:"completed_at,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
	Devices         []DeviceResponse         `json:"devices,omitempty"`
	Parts           []PartAllocationResponse `json:"parts,omitempty"`
}

func FromWorkOrder(o *entities.WorkOrder) WorkOrderResponse {
	resp := WorkOrderResponse{
		ID:              o.ID,
		Code:            o.Code,
		Kind:            string(o.Kind),
		EstablishmentID: o.EstablishmentID,
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
	for _, d := range o.Devices {
		resp.Devices = append(resp.Devices, fromDevice(d))
	}
	for _, p := range o.Parts {
		resp.Parts = append(resp.Parts, fromAllocation(p))
	}
	return resp
}

func FromWorkOrders(orders []*entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromWorkOrder(o))
	}
	return out
}

func fromDevice(d entities.Device) DeviceResponse {
	resp := DeviceResponse{
		ID:         d.ID,
		OrderIndex: d.OrderIndex,
		Model:      d.Model,
		Serial:     d.Serial,
		Notes:      d.Notes,
	}
	for _, f := range d.Faults {
		resp.Faults = append(resp.Faults, fromFault(f))
	}
	return resp
}

func fromFault(f entities.Fault) FaultResponse {
	resp := FaultResponse{
		ID:          f.ID,
		FaultTypeID: f.FaultTypeID,
		Name:        f.Name,
		Price:       f.Price,
		Status:      string(f.Status),
		Subtotal:    f.Subtotal(),
	}
	for _, p := range f.Parts {
		resp.Parts = append(resp.Parts, fromAllocation(p))
	}
	return resp
}

func fromAllocation(a entities.PartAllocation) PartAllocationResponse {
	return PartAllocationResponse{
		ID:            a.ID,
		CatalogPartID: a.CatalogPartID,
		Name:          a.Name,
		Quantity:      a.Quantity,
		UnitCost:      a.UnitCost,
		UnitPrice:     a.UnitPrice,
		Contribution:  a.Contribution(),
	}
}

type CatalogPartResponse struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	AvailableQuantity int             `json:"available_quantity"`
}

func FromCatalogParts(parts []entities.CatalogPart) []CatalogPartResponse {
	out := make([]CatalogPartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, CatalogPartResponse{
			ID:                p.ID,
			Name:              p.Name,
			UnitCost:          p.UnitCost,
			UnitPrice:         p.UnitPrice,
			AvailableQuantity: p.AvailableQuantity,
		})
	}
	return out
}

type FaultTypeResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func FromFaultTypes(types []entities.FaultType) []FaultTypeResponse {
	out := make([]FaultTypeResponse, 0, len(types))
	for _, ft := range types {
		out = append(out, FaultTypeResponse{ID: ft.ID, Name: ft.Name})
	}
	return out
}

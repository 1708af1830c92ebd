package response

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"oficina_os/internal/domain/entities"
)

func TestFromWorkOrder(t *testing.T) {
	now := time.Now().UTC()

	// Build the fault through its mutations so Price embeds the part
	// contribution, the way real trees are grown.
	screen, err := entities.NewFault(entities.FaultType{ID: 3, Name: "Screen"}, decimal.NewFromInt(2000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	battery := entities.CatalogPart{
		ID:                11,
		Name:              "Battery",
		UnitCost:          decimal.NewFromInt(300),
		UnitPrice:         decimal.NewFromInt(1500),
		AvailableQuantity: 10,
	}
	if err := screen.AddPart(battery, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order := &entities.WorkOrder{
		ID:              1,
		Code:            "OS-1A2B3C4D",
		Kind:            entities.WorkOrderKindIntervention,
		EstablishmentID: "default",
		ClientID:        9,
		Item:            "Phones",
		Status:          entities.WorkOrderStatusDiagnosing,
		Price:           decimal.NewFromInt(5000),
		Cost:            decimal.NewFromInt(600),
		PaymentStatus:   entities.PaymentStatusUnpaid,
		PaidAmount:      decimal.Zero,
		CreatedAt:       now,
		UpdatedAt:       now,
		Devices: []entities.Device{{
			ID:         4,
			OrderIndex: 0,
			Model:      "iPhone 12",
			Faults:     []entities.Fault{screen},
		}},
	}

	res := FromWorkOrder(order)
	if res.ID != 1 || res.Code != "OS-1A2B3C4D" || res.Kind != "intervention" {
		t.Fatalf("unexpected header fields: %+v", res)
	}
	if !res.Price.Equal(decimal.NewFromInt(5000)) || !res.Cost.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("unexpected totals: price=%s cost=%s", res.Price, res.Cost)
	}
	if len(res.Devices) != 1 || len(res.Devices[0].Faults) != 1 {
		t.Fatalf("tree not mapped: %+v", res.Devices)
	}

	fault := res.Devices[0].Faults[0]
	if fault.Name != "Screen" || fault.Status != "pending" {
		t.Fatalf("unexpected fault fields: %+v", fault)
	}
	// Price is parts-inclusive, so the subtotal IS the price: 2000 labor
	// plus the folded-in 2x1500 contribution.
	if !fault.Price.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected parts-inclusive price 5000, got %s", fault.Price)
	}
	if !fault.Subtotal.Equal(fault.Price) {
		t.Fatalf("expected subtotal to equal price, got %s vs %s", fault.Subtotal, fault.Price)
	}

	part := fault.Parts[0]
	if part.Name != "Battery" || !part.Contribution.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("unexpected allocation mapping: %+v", part)
	}
}

func TestFromWorkOrder_SimpleOrderFlatParts(t *testing.T) {
	order := &entities.WorkOrder{
		ID:            2,
		Kind:          entities.WorkOrderKindSimple,
		Item:          "Charger swap",
		Status:        entities.WorkOrderStatusNew,
		Price:         decimal.NewFromInt(150),
		PaymentStatus: entities.PaymentStatusUnpaid,
		Parts: []entities.PartAllocation{{
			CatalogPartID: 5,
			Name:          "Cable",
			Quantity:      1,
			UnitPrice:     decimal.NewFromInt(50),
		}},
	}

	res := FromWorkOrder(order)
	if len(res.Devices) != 0 {
		t.Fatalf("simple order must not expose devices: %+v", res.Devices)
	}
	if len(res.Parts) != 1 || res.Parts[0].Name != "Cable" {
		t.Fatalf("flat parts not mapped: %+v", res.Parts)
	}
}

package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"oficina_os/internal/domain/entities"
)

func TestWorkOrderRowMapping(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	t.Run("intervention tree survives flatten and assemble", func(t *testing.T) {
		order := &entities.WorkOrder{
			ID:              7,
			Code:            "OS-1A2B3C4D",
			EstablishmentID: "default",
			Kind:            entities.WorkOrderKindIntervention,
			ClientID:        9,
			Item:            "Phones",
			Status:          entities.WorkOrderStatusDiagnosing,
			Price:           decimal.NewFromInt(5000),
			Cost:            decimal.NewFromInt(800),
			PaymentStatus:   entities.PaymentStatusUnpaid,
			PaidAmount:      decimal.Zero,
			DiagnosticAt:    &now,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		row := toWorkOrderRow(order)
		if row.Kind != "intervention" || row.Status != "diagnosing" {
			t.Fatalf("unexpected row enums: kind=%q status=%q", row.Kind, row.Status)
		}
		if !row.Price.Equal(decimal.NewFromInt(5000)) {
			t.Fatalf("expected price 5000, got %s", row.Price)
		}

		back := fromWorkOrderRow(row)
		if back.ID != order.ID || back.Code != order.Code || back.Kind != order.Kind {
			t.Fatalf("identity fields changed on round trip: %+v", back)
		}
		if back.DiagnosticAt == nil || !back.DiagnosticAt.Equal(now) {
			t.Fatalf("diagnostic stamp lost: %v", back.DiagnosticAt)
		}
		if back.StartedAt != nil || back.CompletedAt != nil {
			t.Fatal("unset stamps should stay nil")
		}
	})

	t.Run("device and fault rows carry tree position", func(t *testing.T) {
		device := entities.Device{
			OrderIndex: 2,
			Model:      "iPhone 12",
			Serial:     "SN-42",
			Faults: []entities.Fault{{
				FaultTypeID: 3,
				Price:       decimal.NewFromInt(2000),
				Status:      entities.FaultStatusPending,
			}},
		}

		dr := toDeviceRow(55, device)
		if dr.WorkOrderID != 55 || dr.OrderIndex != 2 {
			t.Fatalf("device row lost position: %+v", dr)
		}

		fr := toFaultRow(88, device.Faults[0])
		if fr.DeviceID != 88 || fr.FaultTypeID != 3 {
			t.Fatalf("fault row lost keys: %+v", fr)
		}
		if fr.Status != "pending" {
			t.Fatalf("expected pending status, got %q", fr.Status)
		}
	})

	t.Run("allocation row freezes unit values and picks one parent", func(t *testing.T) {
		alloc := entities.PartAllocation{
			CatalogPartID: 11,
			Quantity:      2,
			UnitCost:      decimal.NewFromInt(300),
			UnitPrice:     decimal.NewFromInt(1500),
		}

		faultID := 4
		ar := toAllocationRow(&faultID, nil, alloc)
		if ar.FaultID == nil || *ar.FaultID != 4 || ar.WorkOrderID != nil {
			t.Fatalf("expected fault-scoped row, got %+v", ar)
		}

		orderID := 9
		flat := toAllocationRow(nil, &orderID, alloc)
		if flat.WorkOrderID == nil || *flat.WorkOrderID != 9 || flat.FaultID != nil {
			t.Fatalf("expected order-scoped row, got %+v", flat)
		}
	})

	t.Run("assembled allocation keeps stored unit values over catalog", func(t *testing.T) {
		row := partAllocationRow{
			ID:            1,
			CatalogPartID: 11,
			Quantity:      2,
			UnitCost:      decimal.NewFromInt(300),
			UnitPrice:     decimal.NewFromInt(1500),
			CatalogPart: catalogPartRow{
				ID:        11,
				Name:      "Battery",
				UnitCost:  decimal.NewFromInt(999),
				UnitPrice: decimal.NewFromInt(9999),
			},
		}

		alloc := fromAllocationRow(row)
		if alloc.Name != "Battery" {
			t.Fatalf("expected catalog name, got %q", alloc.Name)
		}
		if !alloc.UnitCost.Equal(decimal.NewFromInt(300)) || !alloc.UnitPrice.Equal(decimal.NewFromInt(1500)) {
			t.Fatalf("allocation must keep its historical unit values: %+v", alloc)
		}
	})

	t.Run("fault name comes from joined fault type", func(t *testing.T) {
		row := faultRow{
			ID:          2,
			FaultTypeID: 3,
			Price:       decimal.NewFromInt(2000),
			Status:      "pending",
			FaultType:   faultTypeRow{ID: 3, Name: "Screen"},
		}

		fault := fromFaultRow(row)
		if fault.Name != "Screen" {
			t.Fatalf("expected joined name, got %q", fault.Name)
		}
		if !fault.Price.Equal(decimal.NewFromInt(2000)) {
			t.Fatalf("price changed: %s", fault.Price)
		}
	})
}

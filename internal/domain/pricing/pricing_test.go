package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"oficina_os/internal/domain/entities"
)

func TestDeviceSubtotal(t *testing.T) {
	d := entities.Device{Faults: []entities.Fault{
		{Price: decimal.NewFromInt(2000)},
		{Price: decimal.NewFromInt(3500)},
	}}
	if got := DeviceSubtotal(d); !got.Equal(decimal.NewFromInt(5500)) {
		t.Fatalf("expected 5500, got %s", got)
	}
}

func TestTotalPrice(t *testing.T) {
	t.Run("intervention sums device subtotals", func(t *testing.T) {
		d := entities.Device{Faults: []entities.Fault{
			{Price: decimal.NewFromInt(2000)},
			{Price: decimal.NewFromInt(3500)},
		}}
		o := entities.WorkOrder{
			Kind:    entities.WorkOrderKindIntervention,
			Devices: []entities.Device{d, d},
		}
		if got := TotalPrice(o); !got.Equal(decimal.NewFromInt(11000)) {
			t.Fatalf("expected 11000, got %s", got)
		}
	})

	t.Run("simple uses the flat price", func(t *testing.T) {
		o := entities.WorkOrder{Kind: entities.WorkOrderKindSimple, Price: decimal.NewFromInt(750)}
		if got := TotalPrice(o); !got.Equal(decimal.NewFromInt(750)) {
			t.Fatalf("expected 750, got %s", got)
		}
	})
}

func TestTotalCost(t *testing.T) {
	alloc := entities.PartAllocation{
		CatalogPartID: 7,
		Quantity:      2,
		UnitCost:      decimal.NewFromInt(800),
		UnitPrice:     decimal.NewFromInt(1500),
	}

	t.Run("cost is a pure sum over allocations", func(t *testing.T) {
		o := entities.WorkOrder{
			Kind: entities.WorkOrderKindIntervention,
			Devices: []entities.Device{{
				Faults: []entities.Fault{{
					Price: decimal.NewFromInt(3000),
					Parts: []entities.PartAllocation{alloc},
				}},
			}},
		}
		if got := TotalCost(o); !got.Equal(decimal.NewFromInt(1600)) {
			t.Fatalf("expected 1600, got %s", got)
		}
	})

	t.Run("independent of manual price edits", func(t *testing.T) {
		o := entities.WorkOrder{
			Kind:  entities.WorkOrderKindSimple,
			Price: decimal.NewFromInt(99999),
			Parts: []entities.PartAllocation{alloc},
		}
		if got := TotalCost(o); !got.Equal(decimal.NewFromInt(1600)) {
			t.Fatalf("expected 1600, got %s", got)
		}
		o.Price = decimal.Zero
		if got := TotalCost(o); !got.Equal(decimal.NewFromInt(1600)) {
			t.Fatalf("expected cost unchanged, got %s", got)
		}
	})

	t.Run("empty order costs zero", func(t *testing.T) {
		o := entities.WorkOrder{Kind: entities.WorkOrderKindIntervention, Devices: []entities.Device{{}}}
		if got := TotalCost(o); !got.IsZero() {
			t.Fatalf("expected 0, got %s", got)
		}
	})
}

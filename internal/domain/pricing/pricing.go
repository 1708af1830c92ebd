// Package pricing holds the pure derivation rules for work-order totals.
//
// All functions are stateless: they read the in-memory tree and return
// decimals, never mutating the order. Callers write the results back onto the
// order row at save time as a denormalized cache.
package pricing

import (
	"github.com/shopspring/decimal"

	"oficina_os/internal/domain/entities"
)

// FaultSubtotal is the fault's parts-inclusive manual price.
func FaultSubtotal(f entities.Fault) decimal.Decimal {
	return f.Subtotal()
}

// DeviceSubtotal sums the fault subtotals of one device.
func DeviceSubtotal(d entities.Device) decimal.Decimal {
	total := decimal.Zero
	for _, f := range d.Faults {
		total = total.Add(FaultSubtotal(f))
	}
	return total
}

// TotalPrice is the order's selling total: the flat price for a simple order,
// the sum of device subtotals for an intervention.
func TotalPrice(o entities.WorkOrder) decimal.Decimal {
	if o.Kind == entities.WorkOrderKindSimple {
		return o.Price
	}
	total := decimal.Zero
	for _, d := range o.Devices {
		total = total.Add(DeviceSubtotal(d))
	}
	return total
}

// TotalCost sums unitCost × quantity over every allocation reachable from the
// order. It is independent of Price and never subject to manual override.
func TotalCost(o entities.WorkOrder) decimal.Decimal {
	total := decimal.Zero
	if o.Kind == entities.WorkOrderKindSimple {
		for _, p := range o.Parts {
			total = total.Add(p.Cost())
		}
		return total
	}
	for _, d := range o.Devices {
		for _, f := range d.Faults {
			for _, p := range f.Parts {
				total = total.Add(p.Cost())
			}
		}
	}
	return total
}

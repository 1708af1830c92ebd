package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrStockExceeded   = errors.New("requested quantity exceeds available stock")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// PartAllocation binds a quantity of one catalog part to one Fault (or, for
// simple work orders, directly to the order's flat list).
//
// UnitCost and UnitPrice are copied from the catalog at allocation time and
// never refreshed afterwards: a loaded allocation reflects the prices that
// were in effect when the part was consumed.
type PartAllocation struct {
	ID            int             `json:"id"`
	CatalogPartID int             `json:"catalog_part_id"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
}

// NewPartAllocation allocates qty units of part, freezing its current unit
// cost/price. The quantity is bounded by the catalog's known available stock.
func NewPartAllocation(part CatalogPart, qty int) (PartAllocation, error) {
	if qty < 1 {
		return PartAllocation{}, ErrInvalidQuantity
	}
	if qty > part.AvailableQuantity {
		return PartAllocation{}, ErrStockExceeded
	}
	return PartAllocation{
		CatalogPartID: part.ID,
		Name:          part.Name,
		Quantity:      qty,
		UnitCost:      part.UnitCost,
		UnitPrice:     part.UnitPrice,
	}, nil
}

// ChangeQuantity re-quantifies the allocation and returns the delta in price
// contribution (Δquantity × unit price) so the owner can adjust its price.
// The frozen unit values are kept; only the stock bound is re-checked against
// the catalog's current availability.
func (a *PartAllocation) ChangeQuantity(available int, newQty int) (decimal.Decimal, error) {
	if newQty < 1 {
		return decimal.Zero, ErrInvalidQuantity
	}
	if newQty > available {
		return decimal.Zero, ErrStockExceeded
	}
	delta := a.UnitPrice.Mul(decimal.NewFromInt(int64(newQty - a.Quantity)))
	a.Quantity = newQty
	return delta, nil
}

// Contribution is the allocation's share of the owning price: qty × unit price.
func (a PartAllocation) Contribution() decimal.Decimal {
	return a.UnitPrice.Mul(decimal.NewFromInt(int64(a.Quantity)))
}

// Cost is qty × unit cost.
func (a PartAllocation) Cost() decimal.Decimal {
	return a.UnitCost.Mul(decimal.NewFromInt(int64(a.Quantity)))
}

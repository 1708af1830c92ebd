package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrPartNotAllocated = errors.New("part is not allocated")
	ErrNegativePrice    = errors.New("price must not be negative")
)

type FaultStatus string

const (
	FaultStatusPending FaultStatus = "pending"
)

// Fault is one defect/service line on a Device. Its Price is manually
// editable, and every part mutation adjusts it by the mutation's contribution
// delta, so the price is parts-inclusive by construction.
type Fault struct {
	ID          int              `json:"id"`
	FaultTypeID int              `json:"fault_type_id"`
	Name        string           `json:"name"`
	Price       decimal.Decimal  `json:"price"`
	Status      FaultStatus      `json:"status"`
	Parts       []PartAllocation `json:"parts"`
}

func NewFault(faultType FaultType, price decimal.Decimal) (Fault, error) {
	if price.IsNegative() {
		return Fault{}, ErrNegativePrice
	}
	return Fault{
		FaultTypeID: faultType.ID,
		Name:        faultType.Name,
		Price:       price,
		Status:      FaultStatusPending,
	}, nil
}

// SetPrice overwrites the manual price. Part contributions already embedded
// in the previous value are NOT re-applied: the caller-provided value becomes
// the new parts-inclusive price.
func (f *Fault) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	f.Price = price
	return nil
}

// AddPart allocates qty units of part under the fault. If the catalog part is
// already allocated the call re-quantifies the existing allocation instead of
// duplicating it. The resulting contribution delta is folded into Price,
// floored at zero.
func (f *Fault) AddPart(part CatalogPart, qty int) error {
	for i := range f.Parts {
		if f.Parts[i].CatalogPartID == part.ID {
			delta, err := f.Parts[i].ChangeQuantity(part.AvailableQuantity, qty)
			if err != nil {
				return err
			}
			f.Price = flooredAdd(f.Price, delta)
			return nil
		}
	}

	alloc, err := NewPartAllocation(part, qty)
	if err != nil {
		return err
	}
	f.Parts = append(f.Parts, alloc)
	f.Price = flooredAdd(f.Price, alloc.Contribution())
	return nil
}

// RemovePart releases the allocation for catalogPartID and subtracts its full
// contribution from Price, floored at zero.
func (f *Fault) RemovePart(catalogPartID int) error {
	for i := range f.Parts {
		if f.Parts[i].CatalogPartID == catalogPartID {
			contribution := f.Parts[i].Contribution()
			f.Parts = append(f.Parts[:i], f.Parts[i+1:]...)
			f.Price = flooredAdd(f.Price, contribution.Neg())
			return nil
		}
	}
	return ErrPartNotAllocated
}

// Subtotal is the fault's parts-inclusive price. It is NOT re-derived from
// allocations; part mutations keep Price in sync incrementally.
func (f Fault) Subtotal() decimal.Decimal {
	return f.Price
}

func flooredAdd(base, delta decimal.Decimal) decimal.Decimal {
	sum := base.Add(delta)
	if sum.IsNegative() {
		return decimal.Zero
	}
	return sum
}

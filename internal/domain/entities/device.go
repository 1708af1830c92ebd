package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrFaultNotFound = errors.New("fault not found on device")
)

// Device is one physical unit inside an intervention work order.
type Device struct {
	ID         int     `json:"id"`
	OrderIndex int     `json:"order_index"`
	Model      string  `json:"model"`
	Serial     string  `json:"serial"`
	Notes      string  `json:"notes"`
	Faults     []Fault `json:"faults"`
}

// ToggleFault attaches a fault of the given type, or detaches it when one is
// already present (UI toggle semantics). A fault type therefore appears at
// most once per device. Returns true when the fault was attached.
func (d *Device) ToggleFault(faultType FaultType, price decimal.Decimal) (bool, error) {
	for i := range d.Faults {
		if d.Faults[i].FaultTypeID == faultType.ID {
			d.Faults = append(d.Faults[:i], d.Faults[i+1:]...)
			return false, nil
		}
	}
	fault, err := NewFault(faultType, price)
	if err != nil {
		return false, err
	}
	d.Faults = append(d.Faults, fault)
	return true, nil
}

// FaultByType returns the fault keyed by its fault type id.
func (d *Device) FaultByType(faultTypeID int) (*Fault, error) {
	for i := range d.Faults {
		if d.Faults[i].FaultTypeID == faultTypeID {
			return &d.Faults[i], nil
		}
	}
	return nil, ErrFaultNotFound
}

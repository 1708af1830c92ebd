package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// IPaymentRecorder appends to the external payment ledger. Records are
// append-only: this engine never mutates or deletes them.
type IPaymentRecorder interface {
	Append(ctx context.Context, workOrderID int, amount decimal.Decimal, method string) error
}

package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"oficina_os/internal/usecase/interfaces"
)

// PaymentRecordGormRepository keeps the append-only history of amounts
// received per work order.
type PaymentRecordGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRecorder = (*PaymentRecordGormRepository)(nil)

func NewPaymentRecordGormRepository(db *gorm.DB) *PaymentRecordGormRepository {
	return &PaymentRecordGormRepository{db: db}
}

func (r *PaymentRecordGormRepository) Append(ctx context.Context, workOrderID int, amount decimal.Decimal, method string) error {
	row := paymentRecordRow{
		WorkOrderID: workOrderID,
		Amount:      amount,
		Method:      method,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

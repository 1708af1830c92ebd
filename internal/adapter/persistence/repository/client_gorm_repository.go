package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

type ClientGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IClientResolver = (*ClientGormRepository)(nil)

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// Resolve returns the client for clientID when given, otherwise matches the
// establishment's records by phone, otherwise creates a new client row.
func (r *ClientGormRepository) Resolve(ctx context.Context, establishmentID string, clientID int, name, phone string) (entities.Client, error) {
	if clientID > 0 {
		return r.GetByID(ctx, clientID)
	}

	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if phone != "" {
		var row clientRow
		err := r.db.WithContext(ctx).
			Where("establishment_id = ? AND phone = ?", establishmentID, phone).
			First(&row).Error
		if err == nil {
			return fromClientRow(row), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Client{}, err
		}
	}

	if name == "" {
		return entities.Client{}, nil
	}

	row := clientRow{
		EstablishmentID: establishmentID,
		Name:            name,
		Phone:           phone,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Client{}, err
	}
	return fromClientRow(row), nil
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id int) (entities.Client, error) {
	var row clientRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Client{}, nil
	}
	if err != nil {
		return entities.Client{}, err
	}
	return fromClientRow(row), nil
}

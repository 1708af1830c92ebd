package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

type FaultTypeCatalogGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IFaultTypeCatalog = (*FaultTypeCatalogGormRepository)(nil)

func NewFaultTypeCatalogGormRepository(db *gorm.DB) *FaultTypeCatalogGormRepository {
	return &FaultTypeCatalogGormRepository{db: db}
}

func (r *FaultTypeCatalogGormRepository) List(ctx context.Context, establishmentID string) ([]entities.FaultType, error) {
	var rows []faultTypeRow
	err := r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	types := make([]entities.FaultType, 0, len(rows))
	for _, row := range rows {
		types = append(types, entities.FaultType{ID: row.ID, Name: row.Name})
	}
	return types, nil
}

func (r *FaultTypeCatalogGormRepository) GetByID(ctx context.Context, id int) (entities.FaultType, error) {
	var row faultTypeRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.FaultType{}, nil
	}
	if err != nil {
		return entities.FaultType{}, err
	}
	return entities.FaultType{ID: row.ID, Name: row.Name}, nil
}

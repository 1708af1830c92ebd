package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

type PartCatalogGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPartCatalog = (*PartCatalogGormRepository)(nil)

func NewPartCatalogGormRepository(db *gorm.DB) *PartCatalogGormRepository {
	return &PartCatalogGormRepository{db: db}
}

func (r *PartCatalogGormRepository) ListAvailable(ctx context.Context, establishmentID string) ([]entities.CatalogPart, error) {
	var rows []catalogPartRow
	err := r.db.WithContext(ctx).
		Where("establishment_id = ? AND available_quantity > 0", establishmentID).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	parts := make([]entities.CatalogPart, 0, len(rows))
	for _, row := range rows {
		parts = append(parts, fromCatalogPartRow(row))
	}
	return parts, nil
}

func (r *PartCatalogGormRepository) GetByID(ctx context.Context, id int) (entities.CatalogPart, error) {
	var row catalogPartRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.CatalogPart{}, nil
	}
	if err != nil {
		return entities.CatalogPart{}, err
	}
	return fromCatalogPartRow(row), nil
}

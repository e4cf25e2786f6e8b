package repository

import (
	"context"
	"errors"

	"github.com/kanakraj/jewelpos-api/internal/domain/entity"
	"github.com/kanakraj/jewelpos-api/internal/domain/enum"
	domainRepo "github.com/kanakraj/jewelpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type ornamentRepository struct {
	db *gorm.DB
}

// NewOrnamentRepository creates a new ornament repository
func NewOrnamentRepository(db *gorm.DB) domainRepo.OrnamentRepository {
	return &ornamentRepository{db: db}
}

func (r *ornamentRepository) Create(ctx context.Context, ornament *entity.Ornament) error {
	return r.db.WithContext(ctx).Create(ornament).Error
}

func (r *ornamentRepository) GetAvailableByOrnamentID(ctx context.Context, ornamentID string) (*entity.Ornament, error) {
	var ornament entity.Ornament
	err := r.db.WithContext(ctx).
		First(&ornament, "ornament_id = ? AND is_sold = ?", ornamentID, false).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Missing and already-sold look identical to the caller.
		return nil, nil
	}
	return &ornament, err
}

func (r *ornamentRepository) ListAvailableByType(ctx context.Context, t enum.OrnamentType) ([]entity.Ornament, error) {
	var ornaments []entity.Ornament
	err := r.db.WithContext(ctx).
		Where("type = ? AND is_sold = ?", t, false).
		Order("ornament_id ASC").
		Find(&ornaments).Error
	return ornaments, err
}

func (r *ornamentRepository) ListByMerchantCode(ctx context.Context, merchantCode string) ([]entity.Ornament, error) {
	var ornaments []entity.Ornament
	err := r.db.WithContext(ctx).
		Where("merchant_code = ?", merchantCode).
		Order("created_at DESC").
		Find(&ornaments).Error
	return ornaments, err
}

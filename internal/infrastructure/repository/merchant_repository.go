package repository

import (
	"context"
	"errors"

	"github.com/kanakraj/jewelpos-api/internal/domain/entity"
	domainRepo "github.com/kanakraj/jewelpos-api/internal/domain/repository"
	"github.com/kanakraj/jewelpos-api/pkg/pagination"
	"gorm.io/gorm"
)

type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) domainRepo.MerchantRepository {
	return &merchantRepository{db: db}
}

func (r *merchantRepository) Create(ctx context.Context, merchant *entity.Merchant) error {
	return r.db.WithContext(ctx).Create(merchant).Error
}

func (r *merchantRepository) GetByCode(ctx context.Context, code string) (*entity.Merchant, error) {
	var merchant entity.Merchant
	err := r.db.WithContext(ctx).First(&merchant, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &merchant, err
}

func (r *merchantRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Merchant, int64, error) {
	var merchants []entity.Merchant
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Merchant{})

	if search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&merchants).Error

	return merchants, total, err
}

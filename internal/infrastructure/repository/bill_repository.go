package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kanakraj/jewelpos-api/internal/domain/entity"
	domainRepo "github.com/kanakraj/jewelpos-api/internal/domain/repository"
	"github.com/kanakraj/jewelpos-api/pkg/pagination"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Client").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items").
		Preload("Items.Ornament").
		Preload("Items.Ornament.Merchant").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

// applySalesFilters adds the date window and client substring filters shared
// by both pagination strategies. The date filter is [date, date+24h), lower
// bound inclusive. Search uses ILIKE, so matching is case-insensitive.
func applySalesFilters(query *gorm.DB, date *time.Time, search string) *gorm.DB {
	if date != nil {
		day := date.Truncate(24 * time.Hour)
		query = query.Where("bills.created_at >= ? AND bills.created_at < ?", day, day.Add(24*time.Hour))
	}

	if search != "" {
		query = query.
			Joins("JOIN clients ON clients.id = bills.client_id").
			Where("clients.name ILIKE ? OR clients.phone ILIKE ?",
				"%"+search+"%", "%"+search+"%")
	}

	return query
}

func (r *billRepository) List(ctx context.Context, params *domainRepo.SalesFilterParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bill{})
	query = applySalesFilters(query, params.Date, params.Search)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Client").
		Preload("Items").
		Preload("Items.Ornament").
		Preload("Items.Ornament.Merchant").
		Order("bills.created_at DESC").
		Find(&bills).Error

	return bills, total, err
}

// ListWithCursor returns bills using keyset pagination, newest first.
func (r *billRepository) ListWithCursor(ctx context.Context, params *domainRepo.SalesCursorFilterParams) ([]entity.Bill, error) {
	var bills []entity.Bill

	params.Cursor.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Bill{})
	query = applySalesFilters(query, params.Date, params.Search)

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Cursor.Direction == pagination.CursorDirectionNext {
			query = query.Where("(bills.created_at, bills.id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(bills.created_at, bills.id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Cursor.Limit + 1).
		Preload("Client").
		Preload("Items").
		Preload("Items.Ornament").
		Preload("Items.Ornament.Merchant").
		Order("bills.created_at DESC, bills.id DESC").
		Find(&bills).Error

	return bills, err
}

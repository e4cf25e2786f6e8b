package repository

import (
	"context"

	"github.com/kanakraj/jewelpos-api/internal/domain/entity"
	"github.com/kanakraj/jewelpos-api/pkg/pagination"
)

// MerchantRepository defines the interface for merchant data operations.
// Merchants live at the boundary of the sale flow: created independently,
// read for inventory views, never mutated by finalization.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entity.Merchant) error
	GetByCode(ctx context.Context, code string) (*entity.Merchant, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Merchant, int64, error)
}

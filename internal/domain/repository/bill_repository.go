package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kanakraj/jewelpos-api/internal/domain/entity"
	"github.com/kanakraj/jewelpos-api/pkg/pagination"
)

// BillRepository defines read access to committed bills.
type BillRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	// GetWithDetails loads a bill with its client, items, ornaments and the
	// ornaments' merchants.
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	// List returns bills newest-first with the SalesFilterParams applied.
	List(ctx context.Context, params *SalesFilterParams) ([]entity.Bill, int64, error)
	// ListWithCursor returns bills using keyset pagination.
	ListWithCursor(ctx context.Context, params *SalesCursorFilterParams) ([]entity.Bill, error)
}

// SalesFilterParams contains filtering parameters for sales queries.
// Date filters to createdAt within [Date, Date+24h), lower bound inclusive.
// Search is a case-insensitive substring match on client name or phone.
type SalesFilterParams struct {
	Pagination *pagination.PaginationParams
	Date       *time.Time
	Search     string
}

// SalesCursorFilterParams contains cursor-based filtering for sales queries.
type SalesCursorFilterParams struct {
	Cursor *pagination.CursorParams
	Date   *time.Time
	Search string
}

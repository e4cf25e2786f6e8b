package repository

import (
	"context"

	"github.com/kanakraj/jewelpos-api/internal/domain/entity"
	"github.com/kanakraj/jewelpos-api/internal/domain/enum"
)

// OrnamentRepository defines the interface for ornament data operations.
// The sale flow only reads through this interface; the sold transition is
// owned by SaleRepository so it cannot escape the finalization transaction.
type OrnamentRepository interface {
	Create(ctx context.Context, ornament *entity.Ornament) error
	// GetAvailableByOrnamentID returns the unsold ornament with the given
	// scan code, or nil. A sold ornament and a missing one are both nil by
	// design; callers must not distinguish them.
	GetAvailableByOrnamentID(ctx context.Context, ornamentID string) (*entity.Ornament, error)
	// ListAvailableByType returns all unsold ornaments of a category.
	ListAvailableByType(ctx context.Context, t enum.OrnamentType) ([]entity.Ornament, error)
	// ListByMerchantCode returns a merchant's full inventory, newest first.
	ListByMerchantCode(ctx context.Context, merchantCode string) ([]entity.Ornament, error)
}

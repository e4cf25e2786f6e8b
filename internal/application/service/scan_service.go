package service

import (
	"context"

	"github.com/kanakraj/jewelpos-api/internal/domain/entity"
	"github.com/kanakraj/jewelpos-api/internal/domain/enum"
	"github.com/kanakraj/jewelpos-api/internal/domain/repository"
	"github.com/kanakraj/jewelpos-api/pkg/apperror"
)

// ScanService resolves scan input to available inventory records annotated
// with their computed selling price. Results are advisory snapshots: nothing
// is reserved, and an item returned here can still lose the race at
// finalization time.
type ScanService struct {
	ornamentRepo repository.OrnamentRepository
}

// NewScanService creates a new scan service
func NewScanService(ornamentRepo repository.OrnamentRepository) *ScanService {
	return &ScanService{ornamentRepo: ornamentRepo}
}

// PricedOrnament is an available inventory record with its derived price.
type PricedOrnament struct {
	OrnamentID   string            `json:"ornament_id"`
	Type         enum.OrnamentType `json:"type"`
	Weight       float64           `json:"weight"`
	Purity       string            `json:"purity"`
	CostPrice    int64             `json:"cost_price"`
	MerchantCode string            `json:"merchant_code"`
	SellingPrice int64             `json:"selling_price"`
}

func toPricedOrnament(o *entity.Ornament) (*PricedOrnament, error) {
	price, err := SellingPrice(o.CostPrice)
	if err != nil {
		return nil, err
	}
	return &PricedOrnament{
		OrnamentID:   o.OrnamentID,
		Type:         o.Type,
		Weight:       o.Weight,
		Purity:       o.Purity,
		CostPrice:    o.CostPrice,
		MerchantCode: o.MerchantCode,
		SellingPrice: price,
	}, nil
}

// LookupByID resolves an exact scan code to the single available record.
// An unknown code and an already-sold item produce the same not-found answer;
// the distinction is deliberately hidden from callers.
func (s *ScanService) LookupByID(ctx context.Context, ornamentID string) (*PricedOrnament, error) {
	if ornamentID == "" {
		return nil, apperror.NewBadRequestError("Ornament ID is required")
	}

	ornament, err := s.ornamentRepo.GetAvailableByOrnamentID(ctx, ornamentID)
	if err != nil {
		return nil, err
	}
	if ornament == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	return toPricedOrnament(ornament)
}

// LookupByType returns every available ornament of a category with its
// computed selling price. An empty result is valid, not an error.
func (s *ScanService) LookupByType(ctx context.Context, rawType string) ([]PricedOrnament, error) {
	t, err := enum.ParseOrnamentType(rawType)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid ornament type")
	}

	ornaments, err := s.ornamentRepo.ListAvailableByType(ctx, t)
	if err != nil {
		return nil, err
	}

	items := make([]PricedOrnament, 0, len(ornaments))
	for i := range ornaments {
		priced, err := toPricedOrnament(&ornaments[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *priced)
	}
	return items, nil
}

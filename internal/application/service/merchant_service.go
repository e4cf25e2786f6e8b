package service

import (
	"context"

	"github.com/kanakraj/jewelpos-api/internal/domain/entity"
	"github.com/kanakraj/jewelpos-api/internal/domain/repository"
	"github.com/kanakraj/jewelpos-api/pkg/apperror"
	"github.com/kanakraj/jewelpos-api/pkg/pagination"
)

// MerchantService handles merchant registration and inventory views. The
// sale flow never writes through this service.
type MerchantService struct {
	merchantRepo repository.MerchantRepository
	ornamentRepo repository.OrnamentRepository
}

// NewMerchantService creates a new merchant service
func NewMerchantService(
	merchantRepo repository.MerchantRepository,
	ornamentRepo repository.OrnamentRepository,
) *MerchantService {
	return &MerchantService{
		merchantRepo: merchantRepo,
		ornamentRepo: ornamentRepo,
	}
}

// CreateMerchantInput represents the create merchant input
type CreateMerchantInput struct {
	Code  string
	Name  string
	Phone string
}

// MerchantWithStats is a merchant annotated with inventory aggregates.
type MerchantWithStats struct {
	entity.Merchant
	entity.MerchantStats
}

// OrnamentWithStatus is an ornament annotated with its display status.
type OrnamentWithStatus struct {
	entity.Ornament
	Status string `json:"status"`
}

// MerchantDetail is a merchant with stats and its full inventory.
type MerchantDetail struct {
	MerchantWithStats
	Ornaments []OrnamentWithStatus `json:"ornaments"`
}

func buildStats(ornaments []entity.Ornament) entity.MerchantStats {
	stats := entity.MerchantStats{TotalOrnaments: len(ornaments)}
	for i := range ornaments {
		if ornaments[i].IsSold {
			stats.Sold++
		} else {
			stats.InStock++
		}
		stats.TotalValue += ornaments[i].CostPrice
	}
	return stats
}

// CreateMerchant registers a new merchant with a unique code.
func (s *MerchantService) CreateMerchant(ctx context.Context, input *CreateMerchantInput) (*MerchantWithStats, error) {
	if input.Code == "" || input.Name == "" {
		return nil, apperror.NewBadRequestError("Merchant code and name are required")
	}

	existing, err := s.merchantRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Merchant code already exists")
	}

	merchant := &entity.Merchant{
		Code:  input.Code,
		Name:  input.Name,
		Phone: input.Phone,
	}
	if err := s.merchantRepo.Create(ctx, merchant); err != nil {
		return nil, err
	}

	return &MerchantWithStats{Merchant: *merchant}, nil
}

// ListMerchants returns merchants with inventory aggregates.
func (s *MerchantService) ListMerchants(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[MerchantWithStats], error) {
	merchants, total, err := s.merchantRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	result := make([]MerchantWithStats, 0, len(merchants))
	for i := range merchants {
		ornaments, err := s.ornamentRepo.ListByMerchantCode(ctx, merchants[i].Code)
		if err != nil {
			return nil, err
		}
		result = append(result, MerchantWithStats{
			Merchant:      merchants[i],
			MerchantStats: buildStats(ornaments),
		})
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(result, pag), nil
}

// GetMerchant returns one merchant with stats and inventory, newest first.
func (s *MerchantService) GetMerchant(ctx context.Context, code string) (*MerchantDetail, error) {
	merchant, err := s.merchantRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, apperror.NewNotFoundError("Merchant")
	}

	ornaments, err := s.ornamentRepo.ListByMerchantCode(ctx, code)
	if err != nil {
		return nil, err
	}

	annotated := make([]OrnamentWithStatus, 0, len(ornaments))
	for i := range ornaments {
		annotated = append(annotated, OrnamentWithStatus{
			Ornament: ornaments[i],
			Status:   ornaments[i].Status(),
		})
	}

	return &MerchantDetail{
		MerchantWithStats: MerchantWithStats{
			Merchant:      *merchant,
			MerchantStats: buildStats(ornaments),
		},
		Ornaments: annotated,
	}, nil
}

package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/kanakraj/jewelpos-api/internal/domain/entity"
	"github.com/kanakraj/jewelpos-api/internal/domain/enum"
	"github.com/kanakraj/jewelpos-api/pkg/apperror"
	"github.com/kanakraj/jewelpos-api/pkg/pagination"
)

type memoryMerchantStore struct {
	mu        sync.Mutex
	merchants []*entity.Merchant
}

func (s *memoryMerchantStore) Create(ctx context.Context, merchant *entity.Merchant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if merchant.ID == uuid.Nil {
		merchant.ID = uuid.New()
	}
	s.merchants = append(s.merchants, merchant)
	return nil
}

func (s *memoryMerchantStore) GetByCode(ctx context.Context, code string) (*entity.Merchant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.merchants {
		if m.Code == code {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memoryMerchantStore) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Merchant, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Merchant
	for _, m := range s.merchants {
		if search != "" && !strings.Contains(strings.ToLower(m.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, int64(len(out)), nil
}

func TestCreateMerchant(t *testing.T) {
	svc := NewMerchantService(&memoryMerchantStore{}, newMemoryStore())

	merchant, err := svc.CreateMerchant(context.Background(), &CreateMerchantInput{
		Code: "M-100",
		Name: "Sharma Jewellers",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if merchant.Code != "M-100" {
		t.Fatalf("expected code M-100, got %s", merchant.Code)
	}
}

func TestCreateMerchantRejectsDuplicateCode(t *testing.T) {
	svc := NewMerchantService(&memoryMerchantStore{}, newMemoryStore())

	if _, err := svc.CreateMerchant(context.Background(), &CreateMerchantInput{Code: "M-100", Name: "First"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err := svc.CreateMerchant(context.Background(), &CreateMerchantInput{Code: "M-100", Name: "Second"})
	if err == nil {
		t.Fatalf("expected duplicate code to be rejected")
	}
	if !apperror.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateMerchantRequiresCodeAndName(t *testing.T) {
	svc := NewMerchantService(&memoryMerchantStore{}, newMemoryStore())

	if _, err := svc.CreateMerchant(context.Background(), &CreateMerchantInput{Name: "No Code"}); err == nil {
		t.Fatalf("expected missing code to be rejected")
	}
	if _, err := svc.CreateMerchant(context.Background(), &CreateMerchantInput{Code: "M-100"}); err == nil {
		t.Fatalf("expected missing name to be rejected")
	}
}

func TestGetMerchantWithStats(t *testing.T) {
	merchants := &memoryMerchantStore{}
	store := newMemoryStore()
	store.addOrnament("R-001", enum.OrnamentTypeRing, 1000, "M-100")
	store.addOrnament("R-002", enum.OrnamentTypeRing, 2000, "M-100")
	store.ornaments["R-002"].IsSold = true
	svc := NewMerchantService(merchants, store)

	if _, err := svc.CreateMerchant(context.Background(), &CreateMerchantInput{Code: "M-100", Name: "Sharma Jewellers"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	detail, err := svc.GetMerchant(context.Background(), "M-100")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if detail.TotalOrnaments != 2 {
		t.Fatalf("expected 2 ornaments, got %d", detail.TotalOrnaments)
	}
	if detail.InStock != 1 || detail.Sold != 1 {
		t.Fatalf("expected 1 in stock and 1 sold, got %d/%d", detail.InStock, detail.Sold)
	}
	if detail.TotalValue != 3000 {
		t.Fatalf("expected total value 3000, got %d", detail.TotalValue)
	}
	if len(detail.Ornaments) != 2 {
		t.Fatalf("expected 2 inventory rows, got %d", len(detail.Ornaments))
	}

	statuses := map[string]string{}
	for _, o := range detail.Ornaments {
		statuses[o.OrnamentID] = o.Status
	}
	if statuses["R-001"] != "in_stock" || statuses["R-002"] != "sold" {
		t.Fatalf("unexpected statuses: %v", statuses)
	}
}

func TestGetMerchantUnknownCode(t *testing.T) {
	svc := NewMerchantService(&memoryMerchantStore{}, newMemoryStore())

	_, err := svc.GetMerchant(context.Background(), "M-999")
	if err == nil {
		t.Fatalf("expected not found error")
	}
	if apperror.GetAppError(err).Code != 404 {
		t.Fatalf("expected 404, got %d", apperror.GetAppError(err).Code)
	}
}

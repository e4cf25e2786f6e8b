package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kanakraj/jewelpos-api/internal/domain/entity"
	"github.com/kanakraj/jewelpos-api/internal/domain/enum"
	"github.com/kanakraj/jewelpos-api/internal/domain/repository"
)

// memoryStore is an in-memory stand-in for the Postgres repositories. It
// implements OrnamentRepository, SaleRepository and BillRepository with the
// same semantics the GORM implementations provide, including the atomic
// all-or-nothing sale commit.
type memoryStore struct {
	mu        sync.Mutex
	ornaments map[string]*entity.Ornament
	clients   []*entity.Client
	bills     []*entity.Bill
	clock     time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		ornaments: make(map[string]*entity.Ornament),
		clock:     time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (s *memoryStore) addOrnament(ornamentID string, t enum.OrnamentType, cost int64, merchantCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ornaments[ornamentID] = &entity.Ornament{
		ID:           uuid.New(),
		OrnamentID:   ornamentID,
		Type:         t,
		Weight:       5.0,
		Purity:       "22K",
		CostPrice:    cost,
		MerchantCode: merchantCode,
	}
}

func (s *memoryStore) isSold(ornamentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.ornaments[ornamentID]
	return ok && o.IsSold
}

// tick advances the fake clock so bills get distinct timestamps.
func (s *memoryStore) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

// --- OrnamentRepository ---

func (s *memoryStore) Create(ctx context.Context, ornament *entity.Ornament) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ornament.ID == uuid.Nil {
		ornament.ID = uuid.New()
	}
	s.ornaments[ornament.OrnamentID] = ornament
	return nil
}

func (s *memoryStore) GetAvailableByOrnamentID(ctx context.Context, ornamentID string) (*entity.Ornament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.ornaments[ornamentID]
	if !ok || o.IsSold {
		return nil, nil
	}
	copied := *o
	return &copied, nil
}

func (s *memoryStore) ListAvailableByType(ctx context.Context, t enum.OrnamentType) ([]entity.Ornament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Ornament
	for _, o := range s.ornaments {
		if o.Type == t && !o.IsSold {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrnamentID < out[j].OrnamentID })
	return out, nil
}

func (s *memoryStore) ListByMerchantCode(ctx context.Context, merchantCode string) ([]entity.Ornament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Ornament
	for _, o := range s.ornaments {
		if o.MerchantCode == merchantCode {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrnamentID < out[j].OrnamentID })
	return out, nil
}

// --- SaleRepository ---

func (s *memoryStore) FinalizeSale(ctx context.Context, data *repository.FinalizeSaleData) (*entity.Bill, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var conflicts []string
	for _, line := range data.Lines {
		o, ok := s.ornaments[line.OrnamentID]
		if !ok || o.IsSold {
			conflicts = append(conflicts, line.OrnamentID)
		}
	}
	if len(conflicts) > 0 {
		return nil, conflicts, nil
	}

	var client *entity.Client
	for _, c := range s.clients {
		if c.Name == data.ClientName && c.Phone == data.ClientPhone {
			client = c
			break
		}
	}
	if client == nil {
		client = &entity.Client{ID: uuid.New(), Name: data.ClientName, Phone: data.ClientPhone}
		s.clients = append(s.clients, client)
	}

	bill := &entity.Bill{
		ID:            uuid.New(),
		BillNo:        data.BillNo,
		ClientID:      client.ID,
		SubTotal:      data.SubTotal,
		Tax:           data.Tax,
		TotalAmount:   data.Total,
		PaymentMethod: data.PaymentMethod,
		CreatedAt:     s.tick(),
		Client:        *client,
	}
	for _, line := range data.Lines {
		o := s.ornaments[line.OrnamentID]
		o.IsSold = true
		bill.Items = append(bill.Items, entity.BillItem{
			ID:           uuid.New(),
			BillID:       bill.ID,
			OrnamentRef:  o.ID,
			SellingPrice: line.SellingPrice,
			Ornament:     *o,
		})
	}
	s.bills = append(s.bills, bill)
	return bill, nil, nil
}

// --- BillRepository ---

func (s *memoryStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	return s.GetWithDetails(ctx, id)
}

func (s *memoryStore) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bills {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) matchesFilters(b *entity.Bill, date *time.Time, search string) bool {
	if date != nil {
		day := date.Truncate(24 * time.Hour)
		if b.CreatedAt.Before(day) || !b.CreatedAt.Before(day.Add(24*time.Hour)) {
			return false
		}
	}
	if search != "" {
		needle := strings.ToLower(search)
		if !strings.Contains(strings.ToLower(b.Client.Name), needle) &&
			!strings.Contains(strings.ToLower(b.Client.Phone), needle) {
			return false
		}
	}
	return true
}

func (s *memoryStore) sortedBills(date *time.Time, search string) []*entity.Bill {
	var out []*entity.Bill
	for _, b := range s.bills {
		if s.matchesFilters(b, date, search) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *memoryStore) List(ctx context.Context, params *repository.SalesFilterParams) ([]entity.Bill, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := s.sortedBills(params.Date, params.Search)
	total := int64(len(matched))

	offset := params.Pagination.Offset()
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + params.Pagination.PerPage
	if end > len(matched) {
		end = len(matched)
	}

	out := make([]entity.Bill, 0, end-offset)
	for _, b := range matched[offset:end] {
		out = append(out, *b)
	}
	return out, total, nil
}

func (s *memoryStore) ListWithCursor(ctx context.Context, params *repository.SalesCursorFilterParams) ([]entity.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := s.sortedBills(params.Date, params.Search)

	start := 0
	if params.Cursor.Cursor != "" {
		cursor, err := params.Cursor.DecodeCursor()
		if err != nil {
			return nil, err
		}
		for i, b := range matched {
			if b.ID.String() == cursor.ID {
				start = i + 1
				break
			}
		}
	}

	end := start + params.Cursor.Limit + 1
	if end > len(matched) {
		end = len(matched)
	}
	if start > len(matched) {
		start = len(matched)
	}

	out := make([]entity.Bill, 0, end-start)
	for _, b := range matched[start:end] {
		out = append(out, *b)
	}
	return out, nil
}

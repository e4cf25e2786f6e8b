package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kanakraj/jewelpos-api/internal/domain/entity"
	"github.com/kanakraj/jewelpos-api/internal/domain/repository"
	"github.com/kanakraj/jewelpos-api/pkg/pagination"
)

// SalesService is the read-only reporting view over committed bills.
type SalesService struct {
	billRepo repository.BillRepository
}

// NewSalesService creates a new sales service
func NewSalesService(billRepo repository.BillRepository) *SalesService {
	return &SalesService{billRepo: billRepo}
}

// SalesItemDetail is one denormalized bill line for reporting.
type SalesItemDetail struct {
	OrnamentID   string `json:"ornament_id"`
	Type         string `json:"type"`
	MerchantName string `json:"merchant_name"`
	MerchantCode string `json:"merchant_code"`
	SellingPrice int64  `json:"selling_price"`
}

// SalesRecord is a bill flattened with its client and line details.
type SalesRecord struct {
	ID            uuid.UUID         `json:"id"`
	BillNo        string            `json:"bill_no"`
	ClientName    string            `json:"client_name"`
	ClientPhone   string            `json:"client_phone"`
	Date          time.Time         `json:"date"`
	Items         int               `json:"items"`
	SubTotal      int64             `json:"sub_total"`
	Tax           int64             `json:"tax"`
	Total         int64             `json:"total"`
	PaymentMethod string            `json:"payment_method"`
	ItemDetails   []SalesItemDetail `json:"item_details"`
}

func toSalesRecord(bill *entity.Bill) SalesRecord {
	details := make([]SalesItemDetail, 0, len(bill.Items))
	for _, item := range bill.Items {
		details = append(details, SalesItemDetail{
			OrnamentID:   item.Ornament.OrnamentID,
			Type:         item.Ornament.Type.String(),
			MerchantName: item.Ornament.Merchant.Name,
			MerchantCode: item.Ornament.MerchantCode,
			SellingPrice: item.SellingPrice,
		})
	}

	return SalesRecord{
		ID:            bill.ID,
		BillNo:        bill.BillNo,
		ClientName:    bill.Client.Name,
		ClientPhone:   bill.Client.Phone,
		Date:          bill.CreatedAt,
		Items:         len(bill.Items),
		SubTotal:      bill.SubTotal,
		Tax:           bill.Tax,
		Total:         bill.TotalAmount,
		PaymentMethod: bill.PaymentMethod,
		ItemDetails:   details,
	}
}

// ListSales returns committed bills newest-first with filters applied.
func (s *SalesService) ListSales(ctx context.Context, params *repository.SalesFilterParams) (*pagination.PaginatedResult[SalesRecord], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	records := make([]SalesRecord, 0, len(bills))
	for i := range bills {
		records = append(records, toSalesRecord(&bills[i]))
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(records, pag), nil
}

// ListSalesWithCursor returns committed bills with keyset pagination.
func (s *SalesService) ListSalesWithCursor(ctx context.Context, params *repository.SalesCursorFilterParams) (*pagination.CursorPaginatedResult[SalesRecord], error) {
	bills, err := s.billRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	records := make([]SalesRecord, 0, len(bills))
	for i := range bills {
		records = append(records, toSalesRecord(&bills[i]))
	}

	hasPrev := params.Cursor.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(records, params.Cursor.Limit,
		func(r SalesRecord) string { return r.ID.String() },
		func(r SalesRecord) time.Time { return r.Date },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

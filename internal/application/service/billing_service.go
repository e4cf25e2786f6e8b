package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/kanakraj/jewelpos-api/internal/domain/entity"
	"github.com/kanakraj/jewelpos-api/internal/domain/repository"
	"github.com/kanakraj/jewelpos-api/pkg/apperror"
	"github.com/kanakraj/jewelpos-api/pkg/receipt"
	"github.com/kanakraj/jewelpos-api/pkg/utils"
)

// BillingService is the sale finalization engine: it validates a cart and
// commits it as a single atomic state transition through SaleRepository.
// There is no retry loop here; a conflicting commit fails fast and the
// caller re-looks-up with a fresh cart.
type BillingService struct {
	saleRepo repository.SaleRepository
	billRepo repository.BillRepository
	receipts receipt.Generator
}

// NewBillingService creates a new billing service
func NewBillingService(
	saleRepo repository.SaleRepository,
	billRepo repository.BillRepository,
	receipts receipt.Generator,
) *BillingService {
	return &BillingService{
		saleRepo: saleRepo,
		billRepo: billRepo,
		receipts: receipts,
	}
}

// FinalizeSaleItemInput is one cart line submitted for finalization.
type FinalizeSaleItemInput struct {
	OrnamentID   string
	SellingPrice int64
}

// FinalizeSaleInput represents the finalize sale input. Subtotal, Tax and
// Total are optional caller-computed figures; when present they must agree
// with the server-side recomputation from the item prices.
type FinalizeSaleInput struct {
	ClientName    string
	ClientPhone   string
	Items         []FinalizeSaleItemInput
	SubTotal      int64
	Tax           int64
	Total         int64
	PaymentMethod string
}

// FinalizeSaleResult describes the committed bill.
type FinalizeSaleResult struct {
	BillID    uuid.UUID `json:"bill_id"`
	BillNo    string    `json:"bill_no"`
	SubTotal  int64     `json:"sub_total"`
	Tax       int64     `json:"tax"`
	Total     int64     `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// FinalizeSale validates the cart, then commits it in one unit of work:
// client resolution, the conditional sold transition per item, and the
// bill + line inserts all stand or fall together. On conflict the response
// names every losing identifier and the store is left untouched.
func (s *BillingService) FinalizeSale(ctx context.Context, input *FinalizeSaleInput) (*FinalizeSaleResult, error) {
	if input.ClientName == "" || input.ClientPhone == "" {
		return nil, apperror.NewBadRequestError("Client name and phone are required")
	}
	if len(input.Items) == 0 {
		return nil, apperror.ErrEmptyCart
	}

	// Reject duplicates and invalid prices before touching the store.
	seen := make(map[string]struct{}, len(input.Items))
	lines := make([]repository.SaleLine, 0, len(input.Items))
	var subtotal int64
	for _, item := range input.Items {
		if item.OrnamentID == "" {
			return nil, apperror.NewBadRequestError("Ornament ID is required on every item")
		}
		if item.SellingPrice <= 0 {
			return nil, apperror.NewBadRequestError(
				fmt.Sprintf("Invalid price for item %s", item.OrnamentID))
		}
		if _, dup := seen[item.OrnamentID]; dup {
			return nil, apperror.NewDuplicateItemError(item.OrnamentID)
		}
		seen[item.OrnamentID] = struct{}{}
		lines = append(lines, repository.SaleLine{
			OrnamentID:   item.OrnamentID,
			SellingPrice: item.SellingPrice,
		})
		subtotal += item.SellingPrice
	}

	// The caller's figures are advisory. The authoritative totals come from
	// the per-item prices being locked in; a disagreeing caller total is a
	// stale or tampered cart.
	tax := CartTax(subtotal)
	total := subtotal + tax
	if input.SubTotal != 0 && input.SubTotal != subtotal {
		return nil, apperror.NewBadRequestError("Subtotal does not match item prices")
	}
	if input.Total != 0 && input.Total != total {
		return nil, apperror.NewBadRequestError("Total does not match subtotal plus tax")
	}

	bill, conflicts, err := s.saleRepo.FinalizeSale(ctx, &repository.FinalizeSaleData{
		ClientName:    input.ClientName,
		ClientPhone:   input.ClientPhone,
		BillNo:        utils.GenerateBillNo(),
		Lines:         lines,
		SubTotal:      subtotal,
		Tax:           tax,
		Total:         total,
		PaymentMethod: input.PaymentMethod,
	})
	if err != nil {
		// Validation is already done; a transaction error here is the store
		// failing, and the caller may retry with the same idempotency key.
		log.Printf("finalize sale: transaction failed: %v", err)
		return nil, apperror.ErrStoreUnavailable
	}
	if len(conflicts) > 0 {
		return nil, apperror.NewSaleConflictError(conflicts)
	}

	// One-way downstream call; the sale is committed whatever happens here.
	go s.generateReceipt(bill.ID)

	return &FinalizeSaleResult{
		BillID:    bill.ID,
		BillNo:    bill.BillNo,
		SubTotal:  bill.SubTotal,
		Tax:       bill.Tax,
		Total:     bill.TotalAmount,
		CreatedAt: bill.CreatedAt,
	}, nil
}

func (s *BillingService) generateReceipt(billID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	bill, err := s.billRepo.GetWithDetails(ctx, billID)
	if err != nil || bill == nil {
		log.Printf("receipt: failed to load bill %s: %v", billID, err)
		return
	}

	if err := s.receipts.Generate(ctx, composeReceipt(bill)); err != nil {
		log.Printf("receipt: generation failed for bill %s: %v", bill.BillNo, err)
	}
}

func composeReceipt(bill *entity.Bill) *entity.Receipt {
	items := make([]entity.ReceiptItem, 0, len(bill.Items))
	for _, item := range bill.Items {
		items = append(items, entity.ReceiptItem{
			OrnamentID:   item.Ornament.OrnamentID,
			Type:         item.Ornament.Type.String(),
			Weight:       item.Ornament.Weight,
			Purity:       item.Ornament.Purity,
			SellingPrice: item.SellingPrice,
		})
	}

	return &entity.Receipt{
		BillNo:        bill.BillNo,
		Date:          bill.CreatedAt.Format("2006-01-02 15:04"),
		ClientName:    bill.Client.Name,
		ClientPhone:   bill.Client.Phone,
		PaymentMethod: bill.PaymentMethod,
		Items:         items,
		SubTotal:      bill.SubTotal,
		Tax:           bill.Tax,
		Total:         bill.TotalAmount,
	}
}

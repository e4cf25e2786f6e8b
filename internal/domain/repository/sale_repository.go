package repository

import (
	"context"

	"github.com/kanakraj/jewelpos-api/internal/domain/entity"
)

// SaleLine is one cart item handed to the finalization transaction, carrying
// the price locked in at lookup time.
type SaleLine struct {
	OrnamentID   string
	SellingPrice int64
}

// FinalizeSaleData is the validated input for one atomic sale commit.
type FinalizeSaleData struct {
	ClientName    string
	ClientPhone   string
	BillNo        string
	Lines         []SaleLine
	SubTotal      int64
	Tax           int64
	Total         int64
	PaymentMethod string
}

// SaleRepository performs the inventory-to-sale state transition as a single
// all-or-nothing unit of work:
//
//	resolve-or-create client -> conditional sold transition per ornament ->
//	bill + bill items insert
//
// all inside one store transaction. Any ornament whose conditional update
// does not apply (missing or already sold) aborts the whole transaction; its
// scan codes are returned as conflicts with a nil bill and nil error.
// Correctness against concurrent checkouts rests on the store's atomicity
// guarantee, never on in-process locking.
type SaleRepository interface {
	FinalizeSale(ctx context.Context, data *FinalizeSaleData) (*entity.Bill, []string, error)
}

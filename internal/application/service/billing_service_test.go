package service

import (
	"context"
	"sync"
	"testing"

	"github.com/kanakraj/jewelpos-api/internal/domain/enum"
	"github.com/kanakraj/jewelpos-api/pkg/apperror"
	"github.com/kanakraj/jewelpos-api/pkg/receipt"
)

func newTestBillingService(store *memoryStore) *BillingService {
	return NewBillingService(store, store, receipt.NewNullGenerator())
}

func TestFinalizeSaleCommitsCart(t *testing.T) {
	store := newMemoryStore()
	store.addOrnament("R-001", enum.OrnamentTypeRing, 1000, "M-100")
	svc := newTestBillingService(store)

	result, err := svc.FinalizeSale(context.Background(), &FinalizeSaleInput{
		ClientName:  "Asha Rao",
		ClientPhone: "9810000001",
		Items: []FinalizeSaleItemInput{
			{OrnamentID: "R-001", SellingPrice: 1030},
		},
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if result.SubTotal != 1030 {
		t.Fatalf("expected subtotal 1030, got %d", result.SubTotal)
	}
	if result.Tax != 31 {
		t.Fatalf("expected tax 31, got %d", result.Tax)
	}
	if result.Total != 1061 {
		t.Fatalf("expected total 1061, got %d", result.Total)
	}
	if result.BillNo == "" {
		t.Fatalf("expected a bill number")
	}
	if !store.isSold("R-001") {
		t.Fatalf("expected R-001 to be marked sold")
	}
}

func TestFinalizeSaleMultipleItems(t *testing.T) {
	store := newMemoryStore()
	store.addOrnament("R-001", enum.OrnamentTypeRing, 1000, "M-100")
	store.addOrnament("R-002", enum.OrnamentTypeRing, 2000, "M-100")
	svc := newTestBillingService(store)

	result, err := svc.FinalizeSale(context.Background(), &FinalizeSaleInput{
		ClientName:  "Asha Rao",
		ClientPhone: "9810000001",
		Items: []FinalizeSaleItemInput{
			{OrnamentID: "R-001", SellingPrice: 1030},
			{OrnamentID: "R-002", SellingPrice: 2060},
		},
		PaymentMethod: "upi",
	})
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if result.SubTotal != 3090 {
		t.Fatalf("expected subtotal 3090, got %d", result.SubTotal)
	}
	if result.Tax != 93 {
		t.Fatalf("expected tax 93, got %d", result.Tax)
	}
	if result.Total != 3183 {
		t.Fatalf("expected total 3183, got %d", result.Total)
	}
}

func TestFinalizeSaleRejectsEmptyCart(t *testing.T) {
	svc := newTestBillingService(newMemoryStore())

	_, err := svc.FinalizeSale(context.Background(), &FinalizeSaleInput{
		ClientName:  "Asha Rao",
		ClientPhone: "9810000001",
	})
	if err == nil {
		t.Fatalf("expected empty cart to be rejected")
	}
	if apperror.GetAppError(err).Code != 400 {
		t.Fatalf("expected 400, got %d", apperror.GetAppError(err).Code)
	}
}

func TestFinalizeSaleRequiresClient(t *testing.T) {
	store := newMemoryStore()
	store.addOrnament("R-001", enum.OrnamentTypeRing, 1000, "M-100")
	svc := newTestBillingService(store)

	_, err := svc.FinalizeSale(context.Background(), &FinalizeSaleInput{
		Items: []FinalizeSaleItemInput{{OrnamentID: "R-001", SellingPrice: 1030}},
	})
	if err == nil {
		t.Fatalf("expected missing client to be rejected")
	}
	if store.isSold("R-001") {
		t.Fatalf("rejected sale must not touch inventory")
	}
}

func TestFinalizeSaleRejectsDuplicateItem(t *testing.T) {
	store := newMemoryStore()
	store.addOrnament("R-001", enum.OrnamentTypeRing, 1000, "M-100")
	svc := newTestBillingService(store)

	_, err := svc.FinalizeSale(context.Background(), &FinalizeSaleInput{
		ClientName:  "Asha Rao",
		ClientPhone: "9810000001",
		Items: []FinalizeSaleItemInput{
			{OrnamentID: "R-001", SellingPrice: 1030},
			{OrnamentID: "R-001", SellingPrice: 1030},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate item to be rejected")
	}
	if store.isSold("R-001") {
		t.Fatalf("rejected sale must not touch inventory")
	}
}

func TestFinalizeSaleRejectsInvalidPrice(t *testing.T) {
	store := newMemoryStore()
	store.addOrnament("R-001", enum.OrnamentTypeRing, 1000, "M-100")
	svc := newTestBillingService(store)

	for _, price := range []int64{0, -10} {
		_, err := svc.FinalizeSale(context.Background(), &FinalizeSaleInput{
			ClientName:  "Asha Rao",
			ClientPhone: "9810000001",
			Items: []FinalizeSaleItemInput{
				{OrnamentID: "R-001", SellingPrice: price},
			},
		})
		if err == nil {
			t.Fatalf("expected price %d to be rejected", price)
		}
	}
}

func TestFinalizeSaleRejectsMismatchedTotals(t *testing.T) {
	store := newMemoryStore()
	store.addOrnament("R-001", enum.OrnamentTypeRing, 1000, "M-100")
	svc := newTestBillingService(store)

	_, err := svc.FinalizeSale(context.Background(), &FinalizeSaleInput{
		ClientName:  "Asha Rao",
		ClientPhone: "9810000001",
		Items: []FinalizeSaleItemInput{
			{OrnamentID: "R-001", SellingPrice: 1030},
		},
		SubTotal: 9999,
	})
	if err == nil {
		t.Fatalf("expected mismatched subtotal to be rejected")
	}
	if store.isSold("R-001") {
		t.Fatalf("rejected sale must not touch inventory")
	}
}

func TestFinalizeSaleConflictAbortsWholeCart(t *testing.T) {
	store := newMemoryStore()
	store.addOrnament("R-001", enum.OrnamentTypeRing, 1000, "M-100")
	store.addOrnament("R-002", enum.OrnamentTypeRing, 2000, "M-100")
	store.ornaments["R-002"].IsSold = true
	svc := newTestBillingService(store)

	_, err := svc.FinalizeSale(context.Background(), &FinalizeSaleInput{
		ClientName:  "Asha Rao",
		ClientPhone: "9810000001",
		Items: []FinalizeSaleItemInput{
			{OrnamentID: "R-001", SellingPrice: 1030},
			{OrnamentID: "R-002", SellingPrice: 2060},
		},
	})
	if err == nil {
		t.Fatalf("expected conflict error")
	}

	appErr := apperror.GetAppError(err)
	if appErr.Code != 409 {
		t.Fatalf("expected 409, got %d", appErr.Code)
	}
	if len(appErr.Errors) != 1 || appErr.Errors[0].Field != "R-002" {
		t.Fatalf("expected conflict naming R-002, got %+v", appErr.Errors)
	}

	// The available item in the same cart must be untouched
	if store.isSold("R-001") {
		t.Fatalf("conflicting sale must leave the rest of the cart unsold")
	}
}

func TestFinalizeSaleConcurrentExactlyOneWins(t *testing.T) {
	store := newMemoryStore()
	store.addOrnament("R-001", enum.OrnamentTypeRing, 1000, "M-100")
	svc := newTestBillingService(store)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.FinalizeSale(context.Background(), &FinalizeSaleInput{
				ClientName:  "Asha Rao",
				ClientPhone: "9810000001",
				Items: []FinalizeSaleItemInput{
					{OrnamentID: "R-001", SellingPrice: 1030},
				},
			})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		if !apperror.IsConflict(err) {
			t.Fatalf("loser got unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winning finalization, got %d", wins)
	}
}

func TestFinalizeSaleReusesExistingClient(t *testing.T) {
	store := newMemoryStore()
	store.addOrnament("R-001", enum.OrnamentTypeRing, 1000, "M-100")
	store.addOrnament("R-002", enum.OrnamentTypeRing, 2000, "M-100")
	svc := newTestBillingService(store)

	for _, id := range []string{"R-001", "R-002"} {
		_, err := svc.FinalizeSale(context.Background(), &FinalizeSaleInput{
			ClientName:  "Asha Rao",
			ClientPhone: "9810000001",
			Items: []FinalizeSaleItemInput{
				{OrnamentID: id, SellingPrice: 1030},
			},
		})
		if err != nil {
			t.Fatalf("finalize failed: %v", err)
		}
	}

	if len(store.clients) != 1 {
		t.Fatalf("expected a single client record, got %d", len(store.clients))
	}
}

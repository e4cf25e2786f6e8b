package service

import "testing"

func TestSellingPriceAddsMarkup(t *testing.T) {
	price, err := SellingPrice(1000)
	if err != nil {
		t.Fatalf("selling price failed: %v", err)
	}
	if price != 1030 {
		t.Fatalf("expected 1030, got %d", price)
	}
}

func TestSellingPriceRoundsHalfUp(t *testing.T) {
	// 50 * 1.03 = 51.5, the boundary case rounds up
	price, err := SellingPrice(50)
	if err != nil {
		t.Fatalf("selling price failed: %v", err)
	}
	if price != 52 {
		t.Fatalf("expected 52, got %d", price)
	}

	// 10 * 1.03 = 10.3 rounds down
	price, err = SellingPrice(10)
	if err != nil {
		t.Fatalf("selling price failed: %v", err)
	}
	if price != 10 {
		t.Fatalf("expected 10, got %d", price)
	}
}

func TestSellingPriceZeroCost(t *testing.T) {
	price, err := SellingPrice(0)
	if err != nil {
		t.Fatalf("selling price failed: %v", err)
	}
	if price != 0 {
		t.Fatalf("expected 0, got %d", price)
	}
}

func TestSellingPriceRejectsNegativeCost(t *testing.T) {
	if _, err := SellingPrice(-1); err == nil {
		t.Fatalf("expected error for negative cost")
	}
}

func TestCartTaxCompoundsOnMarkedUpSubtotal(t *testing.T) {
	// A single item costing 1000 quotes at 1030; the cart tax applies on top
	// of that already marked-up figure.
	if tax := CartTax(1030); tax != 31 {
		t.Fatalf("expected tax 31, got %d", tax)
	}
	if total := CartTotal(1030); total != 1061 {
		t.Fatalf("expected total 1061, got %d", total)
	}
}

func TestCartTaxEmptySubtotal(t *testing.T) {
	if tax := CartTax(0); tax != 0 {
		t.Fatalf("expected tax 0, got %d", tax)
	}
}

package service

import "github.com/kanakraj/jewelpos-api/pkg/apperror"

const (
	markupPercent = 3 // per-item markup over acquisition cost
	taxPercent    = 3 // cart-level tax on the subtotal
)

// SellingPrice derives the quoted price from an ornament's acquisition cost:
// cost × 1.03 rounded half-up, in whole currency units. Integer arithmetic
// keeps the .5 boundary exact.
func SellingPrice(costPrice int64) (int64, error) {
	if costPrice < 0 {
		return 0, apperror.NewBadRequestError("Cost price must not be negative")
	}
	return (costPrice*(100+markupPercent) + 50) / 100, nil
}

// CartTax computes the 3% tax on a cart subtotal, rounded half-up. The
// per-item selling price already carries its own 3% markup, so the adjustment
// compounds across item and cart level. That is the billing behavior in
// production; do not collapse it into a single adjustment without a pricing
// policy decision.
func CartTax(subtotal int64) int64 {
	return (subtotal*taxPercent + 50) / 100
}

// CartTotal is subtotal plus cart-level tax.
func CartTotal(subtotal int64) int64 {
	return subtotal + CartTax(subtotal)
}

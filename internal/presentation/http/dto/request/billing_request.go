package request

// FinalizeSaleItem is one cart line in a finalization request.
type FinalizeSaleItem struct {
	OrnamentID   string `json:"ornament_id" binding:"required"`
	SellingPrice int64  `json:"selling_price" binding:"required"`
}

// FinalizeSaleRequest is the request body for committing a cart as a sale.
// SubTotal, Tax and Total are the caller's displayed figures; the server
// recomputes them and rejects a mismatch.
type FinalizeSaleRequest struct {
	ClientName    string             `json:"client_name" binding:"required"`
	ClientPhone   string             `json:"client_phone" binding:"required"`
	Items         []FinalizeSaleItem `json:"items" binding:"required"`
	SubTotal      int64              `json:"sub_total"`
	Tax           int64              `json:"tax"`
	Total         int64              `json:"total"`
	PaymentMethod string             `json:"payment_method" binding:"omitempty,oneof=cash card upi bank"`
}

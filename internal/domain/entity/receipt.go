package entity

// ReceiptItem represents a single line item on a printable bill receipt.
type ReceiptItem struct {
	OrnamentID   string `json:"ornament_id"`
	Type         string `json:"type"`
	Weight       float64 `json:"weight"`
	Purity       string `json:"purity"`
	SellingPrice int64  `json:"selling_price"`
}

// Receipt is a value object handed to the downstream document service after
// a sale commits. It is NOT a database entity — it is composed from the
// finalized bill at generation time.
type Receipt struct {
	BillNo        string        `json:"bill_no"`
	Date          string        `json:"date"`
	ClientName    string        `json:"client_name"`
	ClientPhone   string        `json:"client_phone"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Items         []ReceiptItem `json:"items"`
	SubTotal      int64         `json:"sub_total"`
	Tax           int64         `json:"tax"`
	Total         int64         `json:"total"`
}

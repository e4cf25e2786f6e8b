package request

// CreateMerchantRequest is the request body for registering a merchant.
type CreateMerchantRequest struct {
	Code  string `json:"merchant_code" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

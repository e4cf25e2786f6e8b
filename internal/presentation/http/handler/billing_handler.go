package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kanakraj/jewelpos-api/internal/application/service"
	"github.com/kanakraj/jewelpos-api/internal/presentation/http/dto/request"
	"github.com/kanakraj/jewelpos-api/internal/presentation/http/dto/response"
)

// BillingHandler handles sale finalization HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Finalize commits a cart as an atomic sale. The route requires an
// Idempotency-Key header; retries replay the original response.
func (h *BillingHandler) Finalize(c *gin.Context) {
	var req request.FinalizeSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.FinalizeSaleItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.FinalizeSaleItemInput{
			OrnamentID:   item.OrnamentID,
			SellingPrice: item.SellingPrice,
		}
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	result, err := h.billingService.FinalizeSale(c.Request.Context(), &service.FinalizeSaleInput{
		ClientName:    req.ClientName,
		ClientPhone:   req.ClientPhone,
		Items:         items,
		SubTotal:      req.SubTotal,
		Tax:           req.Tax,
		Total:         req.Total,
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale finalized successfully", result)
}

package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kanakraj/jewelpos-api/internal/application/service"
	"github.com/kanakraj/jewelpos-api/internal/presentation/http/dto/request"
	"github.com/kanakraj/jewelpos-api/internal/presentation/http/dto/response"
	"github.com/kanakraj/jewelpos-api/pkg/pagination"
)

// MerchantHandler handles merchant HTTP requests
type MerchantHandler struct {
	merchantService *service.MerchantService
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantService *service.MerchantService) *MerchantHandler {
	return &MerchantHandler{merchantService: merchantService}
}

// List handles listing merchants with inventory stats
func (h *MerchantHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()

	result, err := h.merchantService.ListMerchants(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Merchants retrieved successfully", result)
}

// Create handles registering a merchant
func (h *MerchantHandler) Create(c *gin.Context) {
	var req request.CreateMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	merchant, err := h.merchantService.CreateMerchant(c.Request.Context(), &service.CreateMerchantInput{
		Code:  req.Code,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Merchant created successfully", merchant)
}

// Get handles getting a single merchant with its inventory
func (h *MerchantHandler) Get(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, "Merchant code is required")
		return
	}

	merchant, err := h.merchantService.GetMerchant(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Merchant retrieved successfully", merchant)
}

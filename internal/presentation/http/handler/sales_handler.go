package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kanakraj/jewelpos-api/internal/application/service"
	"github.com/kanakraj/jewelpos-api/internal/domain/repository"
	"github.com/kanakraj/jewelpos-api/internal/presentation/http/dto/response"
	"github.com/kanakraj/jewelpos-api/pkg/pagination"
)

// SalesHandler handles sales reporting HTTP requests
type SalesHandler struct {
	salesService *service.SalesService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService *service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// List handles listing sales (supports both page-based and cursor-based pagination)
func (h *SalesHandler) List(c *gin.Context) {
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.SalesFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}
	params.Pagination.Validate()

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		params.Date = &date
	}

	result, err := h.salesService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// listWithCursor handles listing sales with cursor-based pagination
func (h *SalesHandler) listWithCursor(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	params := &repository.SalesCursorFilterParams{
		Cursor: &pagination.CursorParams{
			Cursor:    c.Query("cursor"),
			Direction: pagination.CursorDirection(c.DefaultQuery("direction", "next")),
			Limit:     limit,
		},
		Search: c.Query("search"),
	}
	params.Cursor.Validate()

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		params.Date = &date
	}

	result, err := h.salesService.ListSalesWithCursor(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Sales retrieved successfully", result)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kanakraj/jewelpos-api/internal/application/service"
	"github.com/kanakraj/jewelpos-api/internal/presentation/http/dto/request"
	"github.com/kanakraj/jewelpos-api/internal/presentation/http/dto/response"
)

// ScanHandler handles inventory lookup HTTP requests
type ScanHandler struct {
	scanService *service.ScanService
}

// NewScanHandler creates a new scan handler
func NewScanHandler(scanService *service.ScanService) *ScanHandler {
	return &ScanHandler{scanService: scanService}
}

// ScanItem resolves scan input to priced, available inventory. An ornament id
// yields a single item; a type yields every available item of that category.
func (h *ScanHandler) ScanItem(c *gin.Context) {
	var req request.ScanItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.OrnamentID == "" && req.Type == "" {
		response.BadRequest(c, "Either ornament_id or type is required")
		return
	}
	if req.OrnamentID != "" && req.Type != "" {
		response.BadRequest(c, "Provide either ornament_id or type, not both")
		return
	}

	if req.OrnamentID != "" {
		item, err := h.scanService.LookupByID(c.Request.Context(), req.OrnamentID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Item retrieved successfully", item)
		return
	}

	items, err := h.scanService.LookupByType(c.Request.Context(), req.Type)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Items retrieved successfully", items)
}

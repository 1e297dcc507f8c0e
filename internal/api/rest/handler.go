package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chaintrace/custody-api/internal/api/dto"
	"github.com/chaintrace/custody-api/internal/custody"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// RegisterItem idempotently registers an item and returns its claim token
	// POST /items/register
	RegisterItem(c *gin.Context)

	// SubmitScan verifies a handler's signature and logs a custody transfer
	// POST /scans
	SubmitScan(c *gin.Context)

	// GetItemHistory returns the ordered audit trail for an item
	// GET /items/:id/history
	GetItemHistory(c *gin.Context)

	// AuthorizeHandler flips a handler's authorization flag on the ledger
	// POST /handlers/authorize
	AuthorizeHandler(c *gin.Context)

	// HealthCheck returns the liveness status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	service custody.Service
}

// NewHandler creates a new REST API handler on top of the custody service
func NewHandler(service custody.Service) Handler {
	return &handler{service: service}
}

// RegisterItem idempotently registers an item and returns its claim token
func (h *handler) RegisterItem(c *gin.Context) {
	var req dto.RegisterItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.service.Register(c.Request.Context(), *req.ItemID, req.Name, req.Location, req.Date, req.Time)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RegisterItemResponse{
		Status:    result.Status,
		TxHash:    result.TxHash,
		QRDataURL: result.QRDataURL,
	})
}

// SubmitScan verifies a handler's signature and logs a custody transfer
func (h *handler) SubmitScan(c *gin.Context) {
	var req dto.SubmitScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.service.SubmitTransfer(c.Request.Context(), *req.ItemID, req.Location, req.Handler, req.Signature)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SubmitScanResponse{
		Status: "logged",
		TxHash: result.TxHash,
	})
}

// GetItemHistory returns the ordered audit trail for an item
func (h *handler) GetItemHistory(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondValidationError(c, "id must be an unsigned integer")
		return
	}

	history, err := h.service.History(c.Request.Context(), itemID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ItemHistoryResponse{
		ItemID:  itemID,
		History: history,
	})
}

// AuthorizeHandler flips a handler's authorization flag on the ledger
func (h *handler) AuthorizeHandler(c *gin.Context) {
	var req dto.AuthorizeHandlerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	txHash, err := h.service.SetHandlerAuthorization(c.Request.Context(), req.Handler, *req.Authorized)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthorizeHandlerResponse{
		Status: "ok",
		TxHash: txHash,
	})
}

// HealthCheck returns the liveness status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

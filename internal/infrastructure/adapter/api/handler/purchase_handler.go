package handler

import (
	"fmt"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/gold-assistant/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-assistant/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles purchase-related HTTP requests
type PurchaseHandler struct {
	purchases usecase.PurchaseUseCase
	logger    coreport.Logger
}

// NewPurchaseHandler creates a new purchase handler instance
func NewPurchaseHandler(purchases usecase.PurchaseUseCase, logger coreport.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchases: purchases,
		logger:    logger,
	}
}

// PurchaseGold handles the POST /purchase-gold endpoint
func (h *PurchaseHandler) PurchaseGold(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "Invalid purchase request format", invalidRequest(err))
		return
	}

	result, err := h.purchases.PurchaseGold(c.Request.Context(), usecase.PurchaseRequest{
		UserID: *req.UserID,
		Amount: *req.Amount,
	})
	if err != nil {
		respondError(c, h.logger, "Gold purchase failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.PurchaseResponse{
		UserID: result.UserID,
		Amount: result.Amount,
		Status: string(result.Status),
	})
}

// ListPurchases handles the GET /purchases/:userId endpoint
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		respondError(c, h.logger, "Invalid user ID format", fmt.Errorf("%w: %q", domainerr.ErrInvalidUserID, c.Param("userId")))
		return
	}

	purchases, err := h.purchases.ListPurchases(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "Listing purchases failed", err)
		return
	}

	records := make([]dto.PurchaseRecord, 0, len(purchases))
	for _, p := range purchases {
		records = append(records, dto.PurchaseRecord{
			ID:        p.ID,
			UserID:    p.UserID,
			Amount:    p.Amount,
			Grams:     p.Grams.String(),
			Status:    string(p.Status),
			CreatedAt: p.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, dto.PurchaseListResponse{
		UserID:    userID,
		Purchases: records,
	})
}

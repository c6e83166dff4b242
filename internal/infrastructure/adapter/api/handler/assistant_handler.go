package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-assistant/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AssistantHandler handles the gold assistant endpoint
type AssistantHandler struct {
	assistant usecase.AssistantUseCase
	logger    coreport.Logger
}

// NewAssistantHandler creates a new assistant handler instance
func NewAssistantHandler(assistant usecase.AssistantUseCase, logger coreport.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
		logger:    logger,
	}
}

// Ask handles the POST /gold-assistant endpoint
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req dto.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "Invalid assistant request format", invalidRequest(err))
		return
	}

	// an empty question is forwarded as-is
	answer, err := h.assistant.Ask(c.Request.Context(), *req.Question)
	if err != nil {
		respondError(c, h.logger, "Gold assistant request failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.AskResponse{Answer: answer})
}

package handler

import (
	"errors"
	"fmt"
	"net/http"

	domainerr "github.com/amirhossein-jamali/gold-assistant/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/api/dto"
	applogger "github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

// invalidRequest marks a binding failure as a client error
func invalidRequest(err error) error {
	return fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error())
}

// respondError logs err once and writes the error envelope.
// Client errors keep their message, server errors get a generic one.
func respondError(c *gin.Context, logger coreport.Logger, msg string, err error) {
	fields := errorFields(c, err)
	code := domainerr.ErrorCode(err)

	if domainerr.IsClientError(err) {
		logger.Warn(msg, fields)

		status := http.StatusBadRequest
		if errors.Is(err, domainerr.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, dto.ErrorResponse{Code: code, Message: err.Error()})
		return
	}

	switch {
	case domainerr.IsCompletionError(err):
		fields["source"] = "llm"
	case domainerr.IsDatabaseError(err):
		fields["source"] = "database"
	}
	logger.Error(msg, fields)

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Code:    code,
		Message: internalErrorMessage,
	})
}

// errorFields prefers the error's own log fields and adds the request ID
func errorFields(c *gin.Context, err error) map[string]any {
	fields := map[string]any{"error": err.Error()}

	var logFields interface{ LogFields() map[string]any }
	if errors.As(err, &logFields) {
		fields = logFields.LogFields()
	}
	if requestID := applogger.RequestIDFromContext(c.Request.Context()); requestID != "" {
		fields["request_id"] = requestID
	}
	return fields
}

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	domainerr "github.com/amirhossein-jamali/gold-assistant/internal/domain/error"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/api/dto"
	coremocks "github.com/amirhossein-jamali/gold-assistant/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRespondError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		level      string
		wantStatus int
		wantCode   int
	}{
		{"Invalid request", invalidRequest(errors.New("bad body")), "warn", http.StatusBadRequest, domainerr.CodeInvalidRequest},
		{"Invalid user ID", fmt.Errorf("%w: %q", domainerr.ErrInvalidUserID, "abc"), "warn", http.StatusBadRequest, domainerr.CodeInvalidUserID},
		{"Not found", domainerr.ErrNotFound, "warn", http.StatusNotFound, domainerr.CodeNotFound},
		{"Completion failure", domainerr.NewCompletionError("canned", 3, domainerr.ErrEmptyCompletion), "error", http.StatusInternalServerError, domainerr.CodeCompletionFailed},
		{"Unknown failure", errors.New("boom"), "error", http.StatusInternalServerError, domainerr.CodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockLogger := coremocks.NewMockLogger(t)
			if tc.level == "warn" {
				mockLogger.EXPECT().Warn("failed", mock.Anything).Once()
			} else {
				mockLogger.EXPECT().Error("failed", mock.Anything).Once()
			}

			w := performRequest(http.MethodGet, "/", "/", "", func(c *gin.Context) {
				respondError(c, mockLogger, "failed", tc.err)
			})

			assert.Equal(t, tc.wantStatus, w.Code)
			resp := decode[dto.ErrorResponse](t, w)
			assert.Equal(t, tc.wantCode, resp.Code)
			if tc.wantStatus >= http.StatusInternalServerError {
				assert.Equal(t, internalErrorMessage, resp.Message)
			} else {
				assert.Equal(t, tc.err.Error(), resp.Message)
			}
		})
	}
}

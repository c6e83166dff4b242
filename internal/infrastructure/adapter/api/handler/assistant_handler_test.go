package handler

import (
	"errors"
	"net/http"
	"testing"

	domainerr "github.com/amirhossein-jamali/gold-assistant/internal/domain/error"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/api/dto"
	coremocks "github.com/amirhossein-jamali/gold-assistant/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/gold-assistant/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAssistantHandlerAsk(t *testing.T) {
	t.Run("Valid question returns the answer", func(t *testing.T) {
		mockAssistant := usecasemocks.NewMockAssistantUseCase(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockAssistant.EXPECT().Ask(mock.Anything, "Is gold safe?").Return("Gold is a hedge.", nil).Once()

		h := NewAssistantHandler(mockAssistant, mockLogger)
		w := performRequest(http.MethodPost, "/gold-assistant", "/gold-assistant", `{"question":"Is gold safe?"}`, h.Ask)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.AskResponse](t, w)
		assert.Equal(t, "Gold is a hedge.", resp.Answer)
	})

	t.Run("Empty question is forwarded", func(t *testing.T) {
		mockAssistant := usecasemocks.NewMockAssistantUseCase(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockAssistant.EXPECT().Ask(mock.Anything, "").Return("Ask me about gold.", nil).Once()

		h := NewAssistantHandler(mockAssistant, mockLogger)
		w := performRequest(http.MethodPost, "/gold-assistant", "/gold-assistant", `{"question":""}`, h.Ask)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"answer":"Ask me about gold."}`, w.Body.String())
	})

	t.Run("Missing or malformed body is a client error", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"question":null}`, `{"question":42}`, `not json`, ``} {
			mockAssistant := usecasemocks.NewMockAssistantUseCase(t)
			mockLogger := coremocks.NewMockLogger(t)
			mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

			h := NewAssistantHandler(mockAssistant, mockLogger)
			w := performRequest(http.MethodPost, "/gold-assistant", "/gold-assistant", body, h.Ask)

			assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
			resp := decode[dto.ErrorResponse](t, w)
			assert.Equal(t, domainerr.CodeInvalidRequest, resp.Code)
		}
	})

	t.Run("Provider failure is a generic 500", func(t *testing.T) {
		mockAssistant := usecasemocks.NewMockAssistantUseCase(t)
		mockLogger := coremocks.NewMockLogger(t)

		failure := domainerr.NewCompletionError("gemini", 5, errors.New("api key invalid: secret-detail"))
		mockAssistant.EXPECT().Ask(mock.Anything, "gold?").Return("", failure).Once()
		mockLogger.EXPECT().Error("Gold assistant request failed", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["provider"] == "gemini" && fields["source"] == "llm"
		})).Once()

		h := NewAssistantHandler(mockAssistant, mockLogger)
		w := performRequest(http.MethodPost, "/gold-assistant", "/gold-assistant", `{"question":"gold?"}`, h.Ask)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, domainerr.CodeCompletionFailed, resp.Code)
		assert.Equal(t, "Internal server error", resp.Message)
		assert.NotContains(t, w.Body.String(), "secret-detail")
	})
}

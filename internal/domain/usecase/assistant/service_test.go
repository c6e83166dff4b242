package assistant

import (
	"context"
	"errors"
	"testing"

	errs "github.com/amirhossein-jamali/gold-assistant/internal/domain/error"
	"github.com/amirhossein-jamali/gold-assistant/internal/domain/port/llm"
	coremocks "github.com/amirhossein-jamali/gold-assistant/mocks/port/core"
	llmmocks "github.com/amirhossein-jamali/gold-assistant/mocks/port/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the completion text unchanged", func(t *testing.T) {
		mockClient := llmmocks.NewMockCompletionClient(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockClient.EXPECT().Complete(mock.Anything, llm.CompletionRequest{
			Instruction: Instruction,
			Prompt:      "Is gold a good investment?",
		}).Return("  Gold can hedge inflation.\n", nil).Once()
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		service := NewAssistantService(mockClient, "gemini", mockLogger)

		answer, err := service.Ask(ctx, "Is gold a good investment?")

		require.NoError(t, err)
		assert.Equal(t, "  Gold can hedge inflation.\n", answer)
	})

	t.Run("Passes the request context through", func(t *testing.T) {
		mockClient := llmmocks.NewMockCompletionClient(t)
		mockLogger := coremocks.NewMockLogger(t)

		type ctxKey struct{}
		reqCtx := context.WithValue(ctx, ctxKey{}, "req-1")

		mockClient.EXPECT().Complete(reqCtx, mock.Anything).Return("ok", nil).Once()
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		service := NewAssistantService(mockClient, "gemini", mockLogger)

		_, err := service.Ask(reqCtx, "gold?")
		require.NoError(t, err)
	})

	t.Run("Provider failure is wrapped", func(t *testing.T) {
		mockClient := llmmocks.NewMockCompletionClient(t)
		mockLogger := coremocks.NewMockLogger(t)

		providerErr := errors.New("quota exceeded")
		mockClient.EXPECT().Complete(mock.Anything, mock.Anything).Return("", providerErr).Once()
		// no logger expectations: failures are logged once, by the handler

		service := NewAssistantService(mockClient, "gemini", mockLogger)

		answer, err := service.Ask(ctx, "gold?")

		assert.Empty(t, answer)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrCompletionFailed)
		assert.ErrorIs(t, err, providerErr)
		assert.Equal(t, errs.CodeCompletionFailed, errs.ErrorCode(err))

		var completionErr *errs.CompletionError
		require.ErrorAs(t, err, &completionErr)
		assert.Equal(t, "gemini", completionErr.Provider)
		assert.Equal(t, 5, completionErr.QuestionLength)
	})

	t.Run("Empty completion maps to completion failure", func(t *testing.T) {
		mockClient := llmmocks.NewMockCompletionClient(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockClient.EXPECT().Complete(mock.Anything, mock.Anything).Return("", errs.ErrEmptyCompletion).Once()

		service := NewAssistantService(mockClient, "canned", mockLogger)

		_, err := service.Ask(ctx, "gold?")

		assert.ErrorIs(t, err, errs.ErrEmptyCompletion)
		assert.True(t, errs.IsCompletionError(err))
	})
}

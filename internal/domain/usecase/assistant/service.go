package assistant

import (
	"context"

	errs "github.com/amirhossein-jamali/gold-assistant/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-assistant/internal/domain/port/llm"
	"github.com/amirhossein-jamali/gold-assistant/internal/domain/port/usecase"
)

// Instruction steers every completion towards gold investment advice
const Instruction = "You are a gold investment assistant. Answer questions about investing in gold. " +
	"If the user agrees to invest, encourage them to make a digital gold purchase."

// Service implements usecase.AssistantUseCase on top of a completion provider
type Service struct {
	client   llm.CompletionClient
	provider string
	logger   coreport.Logger
}

// NewAssistantService creates a new assistant use case
func NewAssistantService(client llm.CompletionClient, provider string, logger coreport.Logger) usecase.AssistantUseCase {
	return &Service{
		client:   client,
		provider: provider,
		logger:   logger,
	}
}

// Ask sends the question to the provider with the fixed instruction.
// The answer is returned as produced, without post-processing.
// Failures come back as *errs.CompletionError and are logged by the caller.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	answer, err := s.client.Complete(ctx, llm.CompletionRequest{
		Instruction: Instruction,
		Prompt:      question,
	})
	if err != nil {
		return "", errs.NewCompletionError(s.provider, len(question), err)
	}

	s.logger.Debug("Completion succeeded", map[string]any{
		"provider":        s.provider,
		"question_length": len(question),
		"answer_length":   len(answer),
	})

	return answer, nil
}

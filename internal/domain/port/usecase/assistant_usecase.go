package usecase

import "context"

// AssistantUseCase answers free-text gold investment questions
type AssistantUseCase interface {
	// Ask forwards the question to the completion provider and returns its raw text
	Ask(ctx context.Context, question string) (string, error)
}

package llm

import "context"

// CompletionRequest is a single prompt sent to a completion provider
type CompletionRequest struct {
	// Instruction is the system-level instruction steering the model
	Instruction string
	// Prompt is the user text, forwarded verbatim
	Prompt string
}

// CompletionClient generates text for a prompt using an external language model
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Close releases the underlying client resources
	Close() error
}

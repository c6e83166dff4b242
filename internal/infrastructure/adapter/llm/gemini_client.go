package llm

import (
	"context"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/gold-assistant/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/core"
	llmport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/llm"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// contentGenerator is the part of *genai.GenerativeModel the client uses
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiClient implements llmport.CompletionClient with the Gemini API
type GeminiClient struct {
	client   *genai.Client
	newModel func(instruction string) contentGenerator
	logger   coreport.Logger
}

// GeminiOptions configure the Gemini client
type GeminiOptions struct {
	APIKey      string
	Model       string
	Temperature float32
}

// NewGeminiClient creates a Gemini backed completion client
func NewGeminiClient(ctx context.Context, opts GeminiOptions, logger coreport.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		newModel: func(instruction string) contentGenerator {
			model := client.GenerativeModel(opts.Model)
			model.SetTemperature(opts.Temperature)
			if instruction != "" {
				model.SystemInstruction = &genai.Content{
					Parts: []genai.Part{genai.Text(instruction)},
				}
			}
			return model
		},
		logger: logger,
	}, nil
}

// Complete sends one prompt and returns the text of the first candidate
func (c *GeminiClient) Complete(ctx context.Context, req llmport.CompletionRequest) (string, error) {
	model := c.newModel(req.Instruction)

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("error generating content: %w", err)
	}

	if resp.UsageMetadata != nil {
		c.logger.Debug("Gemini usage", map[string]any{
			"prompt_tokens": resp.UsageMetadata.PromptTokenCount,
			"total_tokens":  resp.UsageMetadata.TotalTokenCount,
		})
	}

	return extractText(resp)
}

// Close releases the underlying gRPC connection
func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// extractText concatenates the text parts of the first candidate
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errs.ErrEmptyCompletion
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: finish reason %v", errs.ErrEmptyCompletion, candidate.FinishReason)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: finish reason %v", errs.ErrEmptyCompletion, candidate.FinishReason)
	}
	return sb.String(), nil
}

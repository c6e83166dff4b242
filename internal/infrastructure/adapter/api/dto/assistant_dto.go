package dto

// AskRequest represents the API request for the gold assistant.
// Only a missing or null question is rejected; an empty string is accepted.
type AskRequest struct {
	Question *string `json:"question" binding:"required"`
}

// AskResponse carries the completion text as produced by the provider
type AskResponse struct {
	Answer string `json:"answer"`
}

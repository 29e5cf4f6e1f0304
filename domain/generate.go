package domain

import "context"

// GenerateRequest is a single text-generation call. Image, when present,
// holds raw image bytes (already size-capped by the caller) with its MIME
// subtype in ImageFormat ("png", "jpeg", ...).
type GenerateRequest struct {
	System      string
	Prompt      string
	Image       []byte
	ImageFormat string
}

// GenerateUsage reports token accounting for a generation call
type GenerateUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// GenerateResult is the outcome of a generation call
type GenerateResult struct {
	Text  string        `json:"text"`
	Usage GenerateUsage `json:"usage"`
}

// Generator is the external text-generation primitive. Implementations
// wrap a concrete provider; the resolution pipeline treats it as
// replaceable and mockable.
type Generator interface {
	// Generate produces text for the given prompt. Implementations must
	// honor ctx cancellation and return an error rather than empty text.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)

	// Model returns the provider model identifier used for cache entries
	Model() string

	// Close releases provider resources
	Close() error
}

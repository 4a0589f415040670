package llm

import "context"

// Provider is the abstraction over LLM backends. The tutor only ever
// needs short plain-text completions, so the surface is a single call.
type Provider interface {
	// Generate sends a prompt and returns the model's text response.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the single-turn user message.
	Prompt string

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range 0.0 - 1.0; 0 when unset.
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	// Text is the generated output.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

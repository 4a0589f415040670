package advisor

import (
	"context"
	"fmt"
	"strings"

	"geotutor/internal/llm"
	"geotutor/internal/problemgen"
)

const tutorSystemPrompt = "You are a geometry tutor for school students practicing " +
	"area computation. Reply with exactly one short, encouraging sentence that " +
	"explains how to find the area of the given shape. Do not reveal the numeric answer."

// LLMAdvisor produces a one-sentence tutoring note for a problem using
// an LLM provider. Entirely optional; callers wrap it in a Boundary.
type LLMAdvisor struct {
	provider llm.Provider
	timeout  func(context.Context) (context.Context, context.CancelFunc)
}

// NewLLMAdvisor creates an advisor over the given provider with the
// configured request timeout.
func NewLLMAdvisor(provider llm.Provider, cfg llm.Config) *LLMAdvisor {
	return &LLMAdvisor{
		provider: provider,
		timeout: func(ctx context.Context) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, cfg.Timeout)
		},
	}
}

// Annotate asks the model for a tutoring note about the problem.
func (a *LLMAdvisor) Annotate(ctx context.Context, p *problemgen.Problem) (string, error) {
	ctx, cancel := a.timeout(ctx)
	defer cancel()

	prompt := fmt.Sprintf("Shape: %s. Given: %s.", p.Shape, p.Prompt())

	resp, err := a.provider.Generate(ctx, llm.Request{
		System:    tutorSystemPrompt,
		Prompt:    prompt,
		MaxTokens: 120,
	})
	if err != nil {
		return "", err
	}

	note := strings.TrimSpace(resp.Text)
	if note == "" {
		return "", fmt.Errorf("empty annotation from %s", a.provider.ModelID())
	}
	return note, nil
}

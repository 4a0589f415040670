package advisor

import (
	"context"
	"strings"
	"testing"

	"geotutor/internal/llm"
)

func TestLLMAdvisor_Annotate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Multiply base by height, then halve it!"})
	adv := NewLLMAdvisor(mock, llm.DefaultConfig())

	note, err := adv.Annotate(context.Background(), triangleProblem())
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if note != "Multiply base by height, then halve it!" {
		t.Errorf("Annotate = %q", note)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("CallCount = %d, want 1", len(mock.Calls))
	}
	if !strings.Contains(mock.Calls[0].Prompt, "Triangle") {
		t.Errorf("prompt %q should name the shape", mock.Calls[0].Prompt)
	}
	if !strings.Contains(mock.Calls[0].Prompt, "Base = 4") {
		t.Errorf("prompt %q should carry the dimensions", mock.Calls[0].Prompt)
	}
}

func TestLLMAdvisor_ProviderFailureSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	adv := NewLLMAdvisor(mock, llm.DefaultConfig())

	if _, err := adv.Annotate(context.Background(), triangleProblem()); err == nil {
		t.Error("expected error from failing provider")
	}
}

func TestLLMAdvisor_BlankNoteIsError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "   "})
	adv := NewLLMAdvisor(mock, llm.DefaultConfig())

	if _, err := adv.Annotate(context.Background(), triangleProblem()); err == nil {
		t.Error("expected error for blank annotation")
	}
}

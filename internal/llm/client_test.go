package llm

import (
	"strings"
	"testing"
)

func TestComposePrompt(t *testing.T) {
	t.Run("NilProfile", func(t *testing.T) {
		got := ComposePrompt(Request{Prompt: "Explain TCP."})
		if got != "Explain TCP." {
			t.Errorf("expected bare prompt, got %q", got)
		}
	})

	t.Run("EmptyProfile", func(t *testing.T) {
		got := ComposePrompt(Request{Prompt: "Explain TCP.", Profile: map[string]any{}})
		if got != "Explain TCP." {
			t.Errorf("empty profile should not add a context block, got %q", got)
		}
	})

	t.Run("PopulatedProfile", func(t *testing.T) {
		got := ComposePrompt(Request{
			Prompt: "Explain TCP.",
			Profile: map[string]any{
				"strengths":     map[string]any{"networking": 0.8},
				"learning_pace": 1.0,
			},
		})
		if !strings.Contains(got, "learning profile") {
			t.Errorf("expected profile context block, got %q", got)
		}
		if !strings.HasSuffix(got, "Explain TCP.") {
			t.Errorf("prompt should follow the context block, got %q", got)
		}
	})
}

package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Request carries one generation task. Profile, when present, is summarized
// into a context message ahead of the prompt so the model can personalize its
// output.
type Request struct {
	Prompt      string
	Profile     map[string]any
	System      string
	Temperature float32
	MaxTokens   int32
}

// Client produces raw model text for a request. Faults are folded into the
// returned string as a literal error message, never raised: callers that
// expect structured output treat that string as unparsable input and fall
// back.
type Client interface {
	Generate(ctx context.Context, req Request) string
}

// GenerateFunc adapts a function to the Client interface.
type GenerateFunc func(ctx context.Context, req Request) string

func (f GenerateFunc) Generate(ctx context.Context, req Request) string {
	return f(ctx, req)
}

// ComposePrompt prepends the profile context message to the task prompt. An
// absent or empty profile sends the prompt alone.
func ComposePrompt(req Request) string {
	if len(req.Profile) == 0 {
		return req.Prompt
	}
	return ProfileContext(req.Profile) + "\n\n" + req.Prompt
}

// ProfileContext renders the learning profile into the context message sent
// ahead of a personalized prompt.
func ProfileContext(profile map[string]any) string {
	strengths, _ := json.Marshal(profile["strengths"])
	weaknesses, _ := json.Marshal(profile["weaknesses"])
	formats, _ := json.Marshal(profile["preferred_formats"])

	return fmt.Sprintf(`Here is the user's learning profile:

Strengths: %s
Weaknesses: %s
Learning Pace: %v
Preferred Formats: %s
Difficulty Adjustment: %v

Please use this information to tailor your response appropriately.`,
		strengths, weaknesses,
		profile["learning_pace"], formats,
		profile["difficulty_adjustment"],
	)
}

package formula

import (
	"context"
	"testing"

	"github.com/adityahq/exammaster-lambda/internal/docstore"
	"github.com/adityahq/exammaster-lambda/internal/llm"
	"github.com/adityahq/exammaster-lambda/internal/profile"
)

const (
	testAppID  = "exam-master"
	testUserID = "user-1"
)

func newTestService() Service {
	store := docstore.NewMemoryStore()
	profiles := profile.NewService(store)
	client := llm.GenerateFunc(func(ctx context.Context, req llm.Request) string {
		return "## Formula\n\nE = mc^2\n\n## Explanation of terms\n\nEnergy equals mass times the speed of light squared."
	})
	return NewService(store, client, profiles)
}

func TestAddAndList(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	entry, ok := svc.Add(ctx, testAppID, testUserID, "Physics Basics", "mass-energy equivalence")
	if !ok {
		t.Fatal("Add failed")
	}
	if entry.TopicID != "physics_basics" {
		t.Errorf("unexpected topic id %q", entry.TopicID)
	}
	if entry.FormulaText == "" {
		t.Error("expected generated formula text")
	}
	if entry.ID == "" {
		t.Error("expected persisted entry id")
	}

	t.Run("ListedExactlyOnce", func(t *testing.T) {
		entries := svc.List(ctx, testAppID, testUserID, "")
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0]["topic_id"] != "physics_basics" {
			t.Errorf("unexpected listed entry: %v", entries[0])
		}
	})

	t.Run("PlaceholderExcluded", func(t *testing.T) {
		for _, doc := range svc.List(ctx, testAppID, testUserID, "") {
			if isPlaceholder, _ := doc["placeholder"].(bool); isPlaceholder {
				t.Error("placeholder seed document leaked into the listing")
			}
		}
	})

	t.Run("TopicFilter", func(t *testing.T) {
		if entries := svc.List(ctx, testAppID, testUserID, "physics_basics"); len(entries) != 1 {
			t.Errorf("expected 1 entry for topic filter, got %d", len(entries))
		}
		if entries := svc.List(ctx, testAppID, testUserID, "chemistry"); len(entries) != 0 {
			t.Errorf("expected no entries for unrelated topic, got %d", len(entries))
		}
	})
}

package lesson

import (
	"context"
	"strings"
	"testing"

	"github.com/adityahq/exammaster-lambda/internal/docstore"
	"github.com/adityahq/exammaster-lambda/internal/llm"
	"github.com/adityahq/exammaster-lambda/internal/profile"
)

const (
	testAppID  = "exam-master"
	testUserID = "user-1"
)

func newTestService(client llm.Client) (Service, *docstore.MemoryStore) {
	store := docstore.NewMemoryStore()
	profiles := profile.NewService(store)
	return NewService(store, client, profiles), store
}

func fixedClient(output string) llm.Client {
	return llm.GenerateFunc(func(ctx context.Context, req llm.Request) string {
		return output
	})
}

const wellFormedOutput = `# Data Structures

Arrays hold elements at contiguous indices. Linked lists trade random
access for cheap insertion.

## Summary
Arrays for lookup, lists for mutation.

` + "```json\n" + `[{"id": "q1", "text": "Array access is?", "options": ["O(1)", "O(n)"], "correctOptionIndex": 0}]` + "\n```"

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("WellFormedOutput", func(t *testing.T) {
		svc, _ := newTestService(fixedClient(wellFormedOutput))

		l, ok := svc.Generate(ctx, testAppID, testUserID, "Data Structures", "beginner")
		if !ok {
			t.Fatal("Generate failed")
		}

		if l.TopicID != "data_structures" {
			t.Errorf("unexpected topic id %q", l.TopicID)
		}
		if l.Type != TypeGenerated {
			t.Errorf("unexpected lesson type %q", l.Type)
		}
		if strings.Contains(l.ContentText, "```json") {
			t.Error("content should stop before the question block")
		}
		if !strings.HasPrefix(l.McqsJSON, "[{") {
			t.Errorf("expected extracted question array, got %q", l.McqsJSON)
		}
		if !strings.Contains(l.SummaryText, "Arrays for lookup") {
			t.Errorf("unexpected summary %q", l.SummaryText)
		}
		if l.ID == "" {
			t.Error("expected persisted lesson id")
		}
	})

	t.Run("MalformedOutputDegrades", func(t *testing.T) {
		svc, _ := newTestService(fixedClient("Plain prose with no structure at all."))

		l, ok := svc.Generate(ctx, testAppID, testUserID, "Algorithms", "advanced")
		if !ok {
			t.Fatal("Generate failed")
		}
		if l.McqsJSON != "[]" {
			t.Errorf("expected empty question array, got %q", l.McqsJSON)
		}
		if l.ContentText == "" {
			t.Error("raw text should be kept as content")
		}
	})

	t.Run("Persisted", func(t *testing.T) {
		svc, store := newTestService(fixedClient(wellFormedOutput))

		if _, ok := svc.Generate(ctx, testAppID, testUserID, "Data Structures", "beginner"); !ok {
			t.Fatal("Generate failed")
		}

		path := docstore.CollectionPath(testAppID, testUserID, Collection)
		docs := store.Query(ctx, path, "type", "==", TypeGenerated)
		if len(docs) != 1 {
			t.Fatalf("expected 1 stored lesson, got %d", len(docs))
		}
	})
}

func TestToday(t *testing.T) {
	ctx := context.Background()

	t.Run("NoDailyLesson", func(t *testing.T) {
		svc, _ := newTestService(fixedClient(wellFormedOutput))

		if doc := svc.Today(ctx, testAppID, testUserID); doc != nil {
			t.Errorf("expected nil, got %v", doc)
		}
	})

	t.Run("ReturnsTodaysDailyLesson", func(t *testing.T) {
		svc, _ := newTestService(fixedClient(wellFormedOutput))

		if _, ok := svc.GenerateDaily(ctx, testAppID, testUserID); !ok {
			t.Fatal("GenerateDaily failed")
		}

		doc := svc.Today(ctx, testAppID, testUserID)
		if doc == nil {
			t.Fatal("expected a daily lesson")
		}
		if doc["type"] != TypeDaily {
			t.Errorf("unexpected lesson type %v", doc["type"])
		}
	})

	t.Run("IgnoresGeneratedLessons", func(t *testing.T) {
		svc, _ := newTestService(fixedClient(wellFormedOutput))

		if _, ok := svc.Generate(ctx, testAppID, testUserID, "Algorithms", "beginner"); !ok {
			t.Fatal("Generate failed")
		}

		if doc := svc.Today(ctx, testAppID, testUserID); doc != nil {
			t.Errorf("expected nil, got %v", doc)
		}
	})
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Data Structures":   "data_structures",
		"Operating Systems": "operating_systems",
		"algorithms":        "algorithms",
	}
	for in, want := range cases {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}

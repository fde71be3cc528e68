package diagnostic

import (
	"context"
	"encoding/json"
	"fmt"
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

func validBatchClient() llm.Client {
	return llm.GenerateFunc(func(ctx context.Context, req llm.Request) string {
		return "```json\n" + `[{
			"text": "What does TCP stand for?",
			"options": ["Transmission Control Protocol", "A", "B", "C"],
			"correctOptionIndex": 0,
			"explanation": "TCP is the reliable transport protocol."
		}]` + "\n```"
	})
}

func garbageClient() llm.Client {
	return llm.GenerateFunc(func(ctx context.Context, req llm.Request) string {
		return "Error generating content: model unavailable"
	})
}

func listSettings(count int, topics ...string) Settings {
	selection, _ := json.Marshal(topics)
	return Settings{
		QuestionCount:  count,
		TopicSelection: selection,
	}
}

func TestGenerateQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("ExactCountFromValidBatches", func(t *testing.T) {
		svc, _ := newTestService(validBatchClient())

		questions, ok := svc.GenerateQuestions(ctx, testAppID, testUserID,
			listSettings(10, "networking", "operating_systems"))
		if !ok {
			t.Fatal("GenerateQuestions failed")
		}
		if len(questions) != 10 {
			t.Fatalf("expected 10 questions, got %d", len(questions))
		}

		ids := make(map[string]bool, len(questions))
		for _, q := range questions {
			if q.ID == "" {
				t.Error("question missing synthesized id")
			}
			if ids[q.ID] {
				t.Errorf("duplicate question id %q", q.ID)
			}
			ids[q.ID] = true
			if q.TopicID != "networking" && q.TopicID != "operating_systems" {
				t.Errorf("unexpected topic id %q", q.TopicID)
			}
		}
	})

	t.Run("FallbackOnUnparsableOutput", func(t *testing.T) {
		svc, _ := newTestService(garbageClient())

		questions, ok := svc.GenerateQuestions(ctx, testAppID, testUserID,
			listSettings(10, "networking", "operating_systems"))
		if !ok {
			t.Fatal("GenerateQuestions failed")
		}
		if len(questions) != 10 {
			t.Fatalf("expected 10 questions, got %d", len(questions))
		}
		for _, q := range questions {
			if len(q.Options) != 4 {
				t.Errorf("fallback question should carry 4 options, got %d", len(q.Options))
			}
			if q.Explanation == "" {
				t.Error("fallback question missing explanation")
			}
		}
	})

	t.Run("FailsWhenEveryQuestionDropped", func(t *testing.T) {
		// Batches parse as valid arrays but every question lacks required
		// fields, so nothing survives validation and there is nothing for
		// reconciliation to clone.
		incomplete := llm.GenerateFunc(func(ctx context.Context, req llm.Request) string {
			return "```json\n" + `[{"text": "orphan", "options": ["a", "b", "c", "d"]}]` + "\n```"
		})
		svc, store := newTestService(incomplete)

		questions, ok := svc.GenerateQuestions(ctx, testAppID, testUserID,
			listSettings(10, "networking", "operating_systems"))
		if ok {
			t.Fatalf("expected failure, got %d questions", len(questions))
		}
		if len(questions) != 0 {
			t.Errorf("expected no questions on failure, got %d", len(questions))
		}

		path := docstore.CollectionPath(testAppID, testUserID, questionsCollection)
		if len(store.List(ctx, path)) != 0 {
			t.Error("failed generation should not persist a set")
		}
	})

	t.Run("PersistsGeneratedSet", func(t *testing.T) {
		svc, store := newTestService(validBatchClient())

		if _, ok := svc.GenerateQuestions(ctx, testAppID, testUserID,
			listSettings(4, "networking")); !ok {
			t.Fatal("GenerateQuestions failed")
		}

		path := docstore.CollectionPath(testAppID, testUserID, questionsCollection)
		if len(store.List(ctx, path)) == 0 {
			t.Error("expected generated set to be persisted")
		}
	})
}

func TestDecodeQuestion(t *testing.T) {
	t.Run("MissingRequiredFieldDropped", func(t *testing.T) {
		item := map[string]any{
			"text":        "incomplete",
			"options":     []any{"a", "b"},
			"explanation": "no correct index",
		}
		if _, ok := decodeQuestion(item, "networking", "easy", 0); ok {
			t.Error("question without correctOptionIndex should be dropped")
		}
	})

	t.Run("OptionalFieldsSynthesized", func(t *testing.T) {
		item := map[string]any{
			"text":               "complete",
			"options":            []any{"a", "b", "c", "d"},
			"correctOptionIndex": 1,
			"explanation":        "because",
		}
		q, ok := decodeQuestion(item, "networking", "hard", 7)
		if !ok {
			t.Fatal("valid question was dropped")
		}
		if q.ID != "networking_hard_7" {
			t.Errorf("unexpected synthesized id %q", q.ID)
		}
		if q.TopicID != "networking" || q.Difficulty != "hard" {
			t.Errorf("unexpected synthesized fields: %+v", q)
		}
		if len(q.Tags) != 1 || q.Tags[0] != "networking" {
			t.Errorf("unexpected tags: %v", q.Tags)
		}
	})
}

func TestScoreSubmission(t *testing.T) {
	buildQuestions := func(topic string, n int) []Question {
		questions := make([]Question, 0, n)
		for i := 0; i < n; i++ {
			questions = append(questions, Question{
				ID:      fmt.Sprintf("%s_%d", topic, i),
				TopicID: topic,
			})
		}
		return questions
	}

	questions := append(buildQuestions("networking", 5), buildQuestions("operating_systems", 5)...)
	answers := []Answer{
		{QuestionID: "networking_0", IsCorrect: true},
		{QuestionID: "networking_1", IsCorrect: true},
		{QuestionID: "networking_2", IsCorrect: true},
		{QuestionID: "networking_3", IsCorrect: true},
		{QuestionID: "networking_4", IsCorrect: false},
		{QuestionID: "operating_systems_0", IsCorrect: true},
	}

	result := scoreSubmission(Submission{Questions: questions, Answers: answers})

	t.Run("TopicScores", func(t *testing.T) {
		if result.TopicScores["networking"] != 80 {
			t.Errorf("expected networking score 80, got %d", result.TopicScores["networking"])
		}
		if result.TopicScores["operating_systems"] != 20 {
			t.Errorf("expected operating_systems score 20, got %d", result.TopicScores["operating_systems"])
		}
	})

	t.Run("StrengthsAndWeaknesses", func(t *testing.T) {
		if len(result.Strengths) != 1 || result.Strengths[0] != "networking" {
			t.Errorf("unexpected strengths: %v", result.Strengths)
		}
		if len(result.Weaknesses) != 1 || result.Weaknesses[0] != "operating_systems" {
			t.Errorf("unexpected weaknesses: %v", result.Weaknesses)
		}
	})

	t.Run("OverallScore", func(t *testing.T) {
		if result.OverallScore != 50 {
			t.Errorf("expected overall score 50, got %d", result.OverallScore)
		}
	})

	t.Run("DeclaredTopicsUnioned", func(t *testing.T) {
		withDeclared := scoreSubmission(Submission{
			Questions:    questions,
			Answers:      answers,
			WeakTopics:   []string{"databases", "operating_systems"},
			StrongTopics: []string{"networking"},
		})

		if len(withDeclared.Weaknesses) != 2 {
			t.Errorf("expected declared weak topic merged without duplicates: %v", withDeclared.Weaknesses)
		}
		if len(withDeclared.Strengths) != 1 {
			t.Errorf("expected no duplicate strengths: %v", withDeclared.Strengths)
		}
	})

	t.Run("EmptySubmission", func(t *testing.T) {
		empty := scoreSubmission(Submission{})
		if empty.OverallScore != 0 {
			t.Errorf("expected overall score 0, got %d", empty.OverallScore)
		}
	})
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	sub := Submission{
		Questions: []Question{
			{ID: "q1", TopicID: "networking"},
			{ID: "q2", TopicID: "networking"},
		},
		Answers: []Answer{
			{QuestionID: "q1", IsCorrect: true},
			{QuestionID: "q2", IsCorrect: true},
		},
		LearningStyle: "visual",
	}

	t.Run("FallbackNarrativeOnUnparsableOutput", func(t *testing.T) {
		svc, _ := newTestService(garbageClient())

		result, ok := svc.Analyze(ctx, testAppID, testUserID, sub)
		if !ok {
			t.Fatal("Analyze failed")
		}
		if result.Analysis["estimated_preparation_time"] != "8-12 weeks" {
			t.Errorf("expected templated narrative, got %v", result.Analysis)
		}
		if result.OverallScore != 100 {
			t.Errorf("expected overall score 100, got %d", result.OverallScore)
		}
	})

	t.Run("MergesOutcomeIntoProfile", func(t *testing.T) {
		store := docstore.NewMemoryStore()
		profiles := profile.NewService(store)
		svc := NewService(store, garbageClient(), profiles)

		if _, ok := svc.Analyze(ctx, testAppID, testUserID, sub); !ok {
			t.Fatal("Analyze failed")
		}

		p := profiles.GetOrCreate(ctx, testAppID, testUserID)
		if p["diagnostic_completed"] != true {
			t.Error("expected diagnostic_completed to be set")
		}
		if p["learning_style"] != "visual" {
			t.Errorf("expected learning style merged, got %v", p["learning_style"])
		}
		strengths, _ := p["strengths"].(map[string]any)
		if strengths["networking"] != 0.7 {
			t.Errorf("expected initial strength score 0.7, got %v", strengths["networking"])
		}
	})

	t.Run("PersistsSubmission", func(t *testing.T) {
		svc, store := newTestService(garbageClient())

		if _, ok := svc.Analyze(ctx, testAppID, testUserID, sub); !ok {
			t.Fatal("Analyze failed")
		}

		path := docstore.CollectionPath(testAppID, testUserID, submissionsCollection)
		if len(store.List(ctx, path)) != 1 {
			t.Error("expected submission to be persisted")
		}
	})
}

package analytics

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

func newTestService(client llm.Client) (Service, profile.Service, *docstore.MemoryStore) {
	store := docstore.NewMemoryStore()
	profiles := profile.NewService(store)
	return NewService(store, client, profiles), profiles, store
}

func analysisClient() llm.Client {
	return llm.GenerateFunc(func(ctx context.Context, req llm.Request) string {
		return "```json\n" + `{
			"overall_assessment": "Strong performance on recursion.",
			"strengths_identified": ["Recursion"],
			"weaknesses_identified": ["Dynamic Programming"],
			"misconceptions": [],
			"recommended_next_steps": ["Practice tabulation problems"],
			"difficulty_adjustment_suggestion": 1.2,
			"personalized_message": "Nice work, keep it up."
		}` + "\n```"
	})
}

func garbageClient() llm.Client {
	return llm.GenerateFunc(func(ctx context.Context, req llm.Request) string {
		return "Error generating content: model unavailable"
	})
}

func TestSubmitQuiz(t *testing.T) {
	ctx := context.Background()

	sub := QuizSubmission{
		LessonID:              "lesson_1_algorithms",
		TopicID:               "algorithms",
		Score:                 75,
		CorrectAnswersCount:   3,
		IncorrectAnswersCount: 1,
		TimeTakenSeconds:      240,
	}

	t.Run("MergesAnalysisIntoProfile", func(t *testing.T) {
		svc, profiles, _ := newTestService(analysisClient())

		analysis, ok := svc.SubmitQuiz(ctx, testAppID, testUserID, sub)
		if !ok {
			t.Fatal("SubmitQuiz failed")
		}
		if analysis["overall_assessment"] != "Strong performance on recursion." {
			t.Errorf("unexpected analysis: %v", analysis)
		}

		p := profiles.GetOrCreate(ctx, testAppID, testUserID)

		strengths, _ := p["strengths"].(map[string]any)
		if strengths["recursion"] != 0.7 {
			t.Errorf("expected new strength at 0.7, got %v", strengths["recursion"])
		}
		weaknesses, _ := p["weaknesses"].(map[string]any)
		if weaknesses["dynamic_programming"] != 0.7 {
			t.Errorf("expected new weakness at 0.7, got %v", weaknesses["dynamic_programming"])
		}
		if p["difficulty_adjustment"] != 1.2 {
			t.Errorf("expected difficulty adjustment 1.2, got %v", p["difficulty_adjustment"])
		}

		total, _ := p["total_study_time"].(float64)
		if total != 240 {
			t.Errorf("expected study time 240, got %v", p["total_study_time"])
		}
	})

	t.Run("AlreadyTrackedTopicsKeepTheirScore", func(t *testing.T) {
		svc, profiles, _ := newTestService(analysisClient())

		profiles.Update(ctx, testAppID, testUserID, map[string]any{
			"strengths": map[string]any{"recursion": 0.95},
		})

		if _, ok := svc.SubmitQuiz(ctx, testAppID, testUserID, sub); !ok {
			t.Fatal("SubmitQuiz failed")
		}

		p := profiles.GetOrCreate(ctx, testAppID, testUserID)
		strengths, _ := p["strengths"].(map[string]any)
		if strengths["recursion"] != 0.95 {
			t.Errorf("tracked strength should keep its score, got %v", strengths["recursion"])
		}
	})

	t.Run("TemplatedAssessmentOnUnparsableOutput", func(t *testing.T) {
		svc, _, _ := newTestService(garbageClient())

		analysis, ok := svc.SubmitQuiz(ctx, testAppID, testUserID, sub)
		if !ok {
			t.Fatal("SubmitQuiz failed")
		}
		if analysis["personalized_message"] != "Keep practicing to improve your understanding." {
			t.Errorf("expected templated assessment, got %v", analysis)
		}
	})

	t.Run("PersistsSubmission", func(t *testing.T) {
		svc, _, store := newTestService(analysisClient())

		if _, ok := svc.SubmitQuiz(ctx, testAppID, testUserID, sub); !ok {
			t.Fatal("SubmitQuiz failed")
		}

		path := docstore.CollectionPath(testAppID, testUserID, quizzesCollection)
		found := false
		for _, doc := range store.List(ctx, path) {
			if doc["lesson_id"] == sub.LessonID {
				found = true
			}
		}
		if !found {
			t.Error("expected quiz submission to be persisted")
		}
	})
}

func TestTrackInteraction(t *testing.T) {
	ctx := context.Background()

	interaction := TopicInteraction{
		TopicID:         "algorithms",
		InteractionType: "clarity",
		TimeSpent:       90,
	}

	t.Run("LogsAndUpdatesProfile", func(t *testing.T) {
		svc, profiles, store := newTestService(analysisClient())

		if !svc.TrackInteraction(ctx, testAppID, testUserID, interaction) {
			t.Fatal("TrackInteraction failed")
		}

		path := docstore.CollectionPath(testAppID, testUserID, logsCollection)
		logged := false
		for _, doc := range store.List(ctx, path) {
			if doc["interaction_type"] == "clarity" {
				logged = true
			}
		}
		if !logged {
			t.Error("expected interaction log to be persisted")
		}

		p := profiles.GetOrCreate(ctx, testAppID, testUserID)
		formats, _ := p["preferred_formats"].(map[string]any)
		if formats["clarity"] != float64(1) {
			t.Errorf("expected clarity counter 1, got %v", formats["clarity"])
		}
		total, _ := p["total_study_time"].(float64)
		if total != 90 {
			t.Errorf("expected study time 90, got %v", p["total_study_time"])
		}
	})
}

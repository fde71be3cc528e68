package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adityahq/exammaster-lambda/internal/config"
	"github.com/adityahq/exammaster-lambda/internal/docstore"
	"github.com/adityahq/exammaster-lambda/internal/lesson"
	"github.com/adityahq/exammaster-lambda/internal/llm"
	"github.com/adityahq/exammaster-lambda/internal/profile"
)

const (
	quizzesCollection = "quizzes"
	logsCollection    = "revision_logs"
)

type Service interface {
	// SubmitQuiz persists the submission verbatim, runs the result
	// analysis and merges the outcome into the learning profile.
	SubmitQuiz(ctx context.Context, appID, userID string, sub QuizSubmission) (map[string]any, bool)
	// TrackInteraction logs the interaction and bumps the profile's usage
	// counters and study time.
	TrackInteraction(ctx context.Context, appID, userID string, interaction TopicInteraction) bool
}

type service struct {
	store    docstore.Store
	client   llm.Client
	profiles profile.Service
}

func NewService(store docstore.Store, client llm.Client, profiles profile.Service) Service {
	return &service{store: store, client: client, profiles: profiles}
}

func (s *service) SubmitQuiz(ctx context.Context, appID, userID string, sub QuizSubmission) (map[string]any, bool) {
	log := config.WithContext(ctx)

	quizData := docstore.ToMap(sub)
	quizData["submitted_at"] = docstore.Now()

	quizPath := docstore.CollectionPath(appID, userID, quizzesCollection)
	quizID := fmt.Sprintf("quiz_%d_%s", time.Now().Unix(), uuid.NewString()[:8])
	if !s.store.Create(ctx, quizPath, quizID, quizData) {
		log.Error("failed to store quiz submission")
		return nil, false
	}

	p := s.profiles.GetOrCreate(ctx, appID, userID)
	analysis := s.analyzeQuiz(ctx, sub, p)

	updates := map[string]any{
		"total_study_time": studyTime(p) + float64(sub.TimeTakenSeconds),
	}
	if strengths := newTopicScores(analysis["strengths_identified"], p["strengths"]); len(strengths) > 0 {
		updates["strengths"] = strengths
	}
	if weaknesses := newTopicScores(analysis["weaknesses_identified"], p["weaknesses"]); len(weaknesses) > 0 {
		updates["weaknesses"] = weaknesses
	}
	if suggestion, ok := analysis["difficulty_adjustment_suggestion"]; ok {
		updates["difficulty_adjustment"] = suggestion
	}

	if !s.profiles.Update(ctx, appID, userID, updates) {
		log.Error("failed to merge quiz analysis into learning profile")
		return analysis, false
	}
	return analysis, true
}

func (s *service) analyzeQuiz(ctx context.Context, sub QuizSubmission, p map[string]any) map[string]any {
	log := config.WithContext(ctx)

	raw := s.client.Generate(ctx, llm.Request{
		Prompt:      quizAnalysisPrompt(sub),
		Profile:     p,
		Temperature: 0.7,
		MaxTokens:   1000,
	})

	analysis, err := llm.DecodeObject(raw)
	if err != nil {
		log.WithError(err).Warn("unparsable quiz analysis, substituting templated assessment")
		total := sub.CorrectAnswersCount + sub.IncorrectAnswersCount
		return map[string]any{
			"overall_assessment": fmt.Sprintf("You scored %v with %d correct answers out of %d.",
				sub.Score, sub.CorrectAnswersCount, total),
			"strengths_identified":             []string{},
			"weaknesses_identified":            []string{},
			"misconceptions":                   []string{},
			"recommended_next_steps":           []string{"Review the topic material again"},
			"difficulty_adjustment_suggestion": 1.0,
			"personalized_message":             "Keep practicing to improve your understanding.",
		}
	}
	return analysis
}

func (s *service) TrackInteraction(ctx context.Context, appID, userID string, interaction TopicInteraction) bool {
	log := config.WithContext(ctx)

	logData := docstore.ToMap(interaction)
	logData["timestamp"] = docstore.Now()

	logPath := docstore.CollectionPath(appID, userID, logsCollection)
	logID := fmt.Sprintf("log_%d_%s", time.Now().Unix(), uuid.NewString()[:8])
	if !s.store.Create(ctx, logPath, logID, logData) {
		log.Error("failed to store interaction log")
		return false
	}

	return s.profiles.TrackInteraction(ctx, appID, userID, interaction.InteractionType, interaction.TimeSpent)
}

// newTopicScores converts analysis-identified topics into initial-score map
// entries, skipping topics the profile already tracks.
func newTopicScores(identified any, existing any) map[string]any {
	topics, ok := identified.([]any)
	if !ok {
		return nil
	}
	current, _ := existing.(map[string]any)

	scores := make(map[string]any)
	for _, t := range topics {
		name, ok := t.(string)
		if !ok || name == "" {
			continue
		}
		key := lesson.Slug(name)
		if _, tracked := current[key]; tracked {
			continue
		}
		scores[key] = 0.7
	}
	return scores
}

func studyTime(p map[string]any) float64 {
	switch v := p["total_study_time"].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

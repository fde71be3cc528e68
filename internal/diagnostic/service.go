package diagnostic

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/adityahq/exammaster-lambda/internal/config"
	"github.com/adityahq/exammaster-lambda/internal/docstore"
	"github.com/adityahq/exammaster-lambda/internal/llm"
	"github.com/adityahq/exammaster-lambda/internal/profile"
	"github.com/adityahq/exammaster-lambda/internal/syllabus"
)

const (
	questionsCollection   = "diagnostic_questions"
	submissionsCollection = "diagnostic_submissions"

	randomTopicSample = 5
)

type Service interface {
	// GenerateQuestions builds a diagnostic set of exactly
	// settings.QuestionCount questions, shuffled, and persists it.
	GenerateQuestions(ctx context.Context, appID, userID string, settings Settings) ([]Question, bool)
	// Analyze scores a submission per topic, derives strengths and
	// weaknesses, requests a narrative analysis, persists the submission
	// and merges the outcome into the learning profile.
	Analyze(ctx context.Context, appID, userID string, sub Submission) (*AnalysisResult, bool)
}

type service struct {
	store    docstore.Store
	client   llm.Client
	profiles profile.Service
	rng      *rand.Rand
}

func NewService(store docstore.Store, client llm.Client, profiles profile.Service) Service {
	return &service{
		store:    store,
		client:   client,
		profiles: profiles,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *service) GenerateQuestions(ctx context.Context, appID, userID string, settings Settings) ([]Question, bool) {
	log := config.WithContext(ctx)
	settings.ApplyDefaults()

	p := s.profiles.GetOrCreate(ctx, appID, userID)
	topics := s.selectTopics(settings)
	if len(topics) == 0 {
		log.Warn("no topics selected for diagnostic generation")
		return nil, false
	}

	var questions []Question
	for _, q := range allocateQuotas(topics, settings.DifficultyDistribution, settings.QuestionCount) {
		raw := s.client.Generate(ctx, llm.Request{
			Prompt:      questionsPrompt(q.topic, q.difficulty, q.count),
			Profile:     p,
			Temperature: 0.7,
			MaxTokens:   2000,
		})

		items, err := llm.DecodeArray(raw)
		if err != nil {
			log.WithError(err).WithFields(map[string]any{
				"topic":      q.topic,
				"difficulty": q.difficulty,
			}).Warn("unparsable question batch, substituting fallback question")
			questions = append(questions, fallbackQuestion(q.topic, q.difficulty, len(questions)))
			continue
		}

		for _, item := range items {
			question, ok := decodeQuestion(item, q.topic, q.difficulty, len(questions))
			if !ok {
				continue
			}
			questions = append(questions, question)
		}
	}

	if len(questions) == 0 {
		log.Error("every generated question was dropped, nothing to reconcile")
		return nil, false
	}

	questions = reconcile(questions, settings.QuestionCount, s.rng)
	s.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	setID := fmt.Sprintf("diagnostic_%d", time.Now().Unix())
	path := docstore.CollectionPath(appID, userID, questionsCollection)
	if !s.store.Create(ctx, path, setID, map[string]any{
		"questions":    questions,
		"settings":     docstore.ToMap(settings),
		"generated_at": docstore.Now(),
	}) {
		log.Warn("failed to store generated diagnostic set")
	}

	return questions, true
}

func (s *service) selectTopics(settings Settings) []string {
	available := syllabus.DiagnosticTopics()

	mode, list := settings.TopicMode()
	switch mode {
	case "all":
		return available
	case "list":
		return list
	default: // random
		s.rng.Shuffle(len(available), func(i, j int) {
			available[i], available[j] = available[j], available[i]
		})
		n := randomTopicSample
		if n > len(available) {
			n = len(available)
		}
		selected := available[:n]
		sort.Strings(selected)
		return selected
	}
}

// decodeQuestion validates a model-produced question map. Questions missing
// any required field are dropped; missing optional fields are synthesized
// from the generation position.
func decodeQuestion(item map[string]any, topic, difficulty string, position int) (Question, bool) {
	for _, required := range []string{"text", "options", "correctOptionIndex", "explanation"} {
		if _, ok := item[required]; !ok {
			return Question{}, false
		}
	}

	body, err := json.Marshal(item)
	if err != nil {
		return Question{}, false
	}
	var q Question
	if err := json.Unmarshal(body, &q); err != nil {
		return Question{}, false
	}

	if q.ID == "" {
		q.ID = fmt.Sprintf("%s_%s_%d", topic, difficulty, position)
	}
	if q.TopicID == "" {
		q.TopicID = topic
	}
	if q.Difficulty == "" {
		q.Difficulty = difficulty
	}
	if len(q.Tags) == 0 {
		q.Tags = []string{topic}
	}
	return q, true
}

func fallbackQuestion(topic, difficulty string, position int) Question {
	readable := strings.ReplaceAll(topic, "_", " ")
	return Question{
		ID:      fmt.Sprintf("%s_%s_%d", topic, difficulty, position),
		TopicID: topic,
		Text:    fmt.Sprintf("Sample %s question about %s", difficulty, readable),
		Options: []string{
			fmt.Sprintf("Correct answer for %s", topic),
			fmt.Sprintf("Wrong answer 1 for %s", topic),
			fmt.Sprintf("Wrong answer 2 for %s", topic),
			fmt.Sprintf("Wrong answer 3 for %s", topic),
		},
		CorrectOptionIndex: 0,
		Explanation:        fmt.Sprintf("This is the explanation for the correct answer about %s", readable),
		Difficulty:         difficulty,
		Tags:               []string{topic},
	}
}

// reconcile forces the produced set to exactly the requested count:
// truncation preserves generation order, shortfall clones uniformly-random
// existing questions under fresh ids. Duplicates under shortfall are
// expected, not an error.
func reconcile(questions []Question, count int, rng *rand.Rand) []Question {
	if len(questions) == 0 {
		return questions
	}
	if len(questions) > count {
		return questions[:count]
	}
	for len(questions) < count {
		clone := questions[rng.Intn(len(questions))]
		clone.ID = fmt.Sprintf("%s_%s_%d", clone.TopicID, clone.Difficulty, len(questions))
		questions = append(questions, clone)
	}
	return questions
}

func (s *service) Analyze(ctx context.Context, appID, userID string, sub Submission) (*AnalysisResult, bool) {
	log := config.WithContext(ctx)

	result := scoreSubmission(sub)

	narrative := s.client.Generate(ctx, llm.Request{
		Prompt: analysisPrompt(result.OverallScore, result.TopicScores,
			result.Strengths, result.Weaknesses, sub.LearningStyle, sub.SelfRating),
		Temperature: 0.7,
		MaxTokens:   1500,
	})
	analysis, err := llm.DecodeObject(narrative)
	if err != nil {
		log.WithError(err).Warn("unparsable diagnostic analysis, substituting templated narrative")
		analysis = fallbackNarrative(result, sub.LearningStyle)
	}
	result.Analysis = analysis

	subPath := docstore.CollectionPath(appID, userID, submissionsCollection)
	subID := fmt.Sprintf("submission_%d", time.Now().Unix())
	submissionData := docstore.ToMap(sub)
	submissionData["analysis_result"] = docstore.ToMap(result)
	submissionData["submitted_at"] = docstore.Now()
	if !s.store.Create(ctx, subPath, subID, submissionData) {
		log.Warn("failed to store diagnostic submission")
	}

	updates := map[string]any{
		"strengths":            initialScores(result.Strengths),
		"weaknesses":           initialScores(result.Weaknesses),
		"learning_style":       sub.LearningStyle,
		"self_rating":          sub.SelfRating,
		"diagnostic_completed": true,
		"diagnostic_results":   docstore.ToMap(result),
	}
	if !s.profiles.Update(ctx, appID, userID, updates) {
		log.Error("failed to merge diagnostic results into learning profile")
		return result, false
	}

	return result, true
}

// scoreSubmission computes the per-topic and overall aggregates: strengths at
// score >= 70, weaknesses at score <= 40, unioned with the caller-declared
// topic lists.
func scoreSubmission(sub Submission) *AnalysisResult {
	type tally struct{ correct, total int }
	tallies := make(map[string]*tally)

	answered := make(map[string]bool, len(sub.Answers))
	for _, a := range sub.Answers {
		if a.IsCorrect {
			answered[a.QuestionID] = true
		}
	}

	for _, q := range sub.Questions {
		topic := q.TopicID
		if topic == "" {
			topic = "unknown"
		}
		t := tallies[topic]
		if t == nil {
			t = &tally{}
			tallies[topic] = t
		}
		t.total++
		if answered[q.ID] {
			t.correct++
		}
	}

	topics := make([]string, 0, len(tallies))
	for topic := range tallies {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	scores := make(map[string]int, len(tallies))
	var strengths, weaknesses []string
	totalCorrect, totalQuestions := 0, 0
	for _, topic := range topics {
		t := tallies[topic]
		score := int(math.Round(100 * float64(t.correct) / float64(t.total)))
		scores[topic] = score
		totalCorrect += t.correct
		totalQuestions += t.total

		if score >= 70 {
			strengths = append(strengths, topic)
		} else if score <= 40 {
			weaknesses = append(weaknesses, topic)
		}
	}

	overall := 0
	if totalQuestions > 0 {
		overall = int(math.Round(100 * float64(totalCorrect) / float64(totalQuestions)))
	}

	return &AnalysisResult{
		TopicScores:  scores,
		Strengths:    union(strengths, sub.StrongTopics),
		Weaknesses:   union(weaknesses, sub.WeakTopics),
		OverallScore: overall,
	}
}

func union(derived, declared []string) []string {
	seen := make(map[string]bool, len(derived)+len(declared))
	out := make([]string, 0, len(derived)+len(declared))
	for _, t := range append(append([]string{}, derived...), declared...) {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func initialScores(topics []string) map[string]any {
	scores := make(map[string]any, len(topics))
	for _, t := range topics {
		scores[t] = 0.7
	}
	return scores
}

func fallbackNarrative(result *AnalysisResult, learningStyle string) map[string]any {
	strengths := "None identified yet"
	if len(result.Strengths) > 0 {
		strengths = strings.Join(result.Strengths, ", ")
	}
	weaknesses := "None identified yet"
	if len(result.Weaknesses) > 0 {
		weaknesses = strings.Join(result.Weaknesses, ", ")
	}

	return map[string]any{
		"overall_assessment":             fmt.Sprintf("You scored %d%% overall in the diagnostic assessment.", result.OverallScore),
		"strengths_analysis":             fmt.Sprintf("Your strengths include: %s.", strengths),
		"weaknesses_analysis":            fmt.Sprintf("Areas to focus on: %s.", weaknesses),
		"learning_style_recommendations": fmt.Sprintf("Based on your %s learning style, focus on appropriate learning materials.", learningStyle),
		"study_plan_suggestion":          "Start with the fundamentals of each topic before moving to advanced concepts.",
		"estimated_preparation_time":     "8-12 weeks",
		"confidence_score":               5,
	}
}

package lesson

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/adityahq/exammaster-lambda/internal/config"
	"github.com/adityahq/exammaster-lambda/internal/docstore"
	"github.com/adityahq/exammaster-lambda/internal/llm"
	"github.com/adityahq/exammaster-lambda/internal/profile"
	"github.com/adityahq/exammaster-lambda/internal/syllabus"
)

const Collection = "lessons"

type Service interface {
	Generate(ctx context.Context, appID, userID, topic, difficulty string) (*Lesson, bool)
	GenerateDaily(ctx context.Context, appID, userID string) (*Lesson, bool)
	// Today returns the most recent daily lesson generated today, or nil.
	Today(ctx context.Context, appID, userID string) map[string]any
}

type service struct {
	store    docstore.Store
	client   llm.Client
	profiles profile.Service
}

func NewService(store docstore.Store, client llm.Client, profiles profile.Service) Service {
	return &service{store: store, client: client, profiles: profiles}
}

func (s *service) Generate(ctx context.Context, appID, userID, topic, difficulty string) (*Lesson, bool) {
	p := s.profiles.GetOrCreate(ctx, appID, userID)
	l := s.build(ctx, topic, difficulty, p)
	l.Type = TypeGenerated
	return s.persist(ctx, appID, userID, l)
}

func (s *service) GenerateDaily(ctx context.Context, appID, userID string) (*Lesson, bool) {
	p := s.profiles.GetOrCreate(ctx, appID, userID)
	topic, difficulty := SelectDailyTopic(p, syllabus.LessonTopics())

	l := s.build(ctx, topic, difficulty, p)
	l.Type = TypeDaily
	return s.persist(ctx, appID, userID, l)
}

func (s *service) Today(ctx context.Context, appID, userID string) map[string]any {
	path := docstore.CollectionPath(appID, userID, Collection)
	today := time.Now().UTC().Format("2006-01-02")

	var lessons []map[string]any
	for _, doc := range s.store.Query(ctx, path, "type", "==", TypeDaily) {
		generatedAt, _ := doc["generated_at"].(string)
		if strings.HasPrefix(generatedAt, today) {
			lessons = append(lessons, doc)
		}
	}
	if len(lessons) == 0 {
		return nil
	}
	docstore.SortByField(lessons, "generated_at", true)
	return lessons[0]
}

// build runs one generation round and assembles the lesson object. A
// malformed model response still yields a lesson, with mcqs_json degraded to
// "[]" and the raw text kept as content.
func (s *service) build(ctx context.Context, topic, difficulty string, p map[string]any) *Lesson {
	raw := s.client.Generate(ctx, llm.Request{
		Prompt:      lessonPrompt(topic, difficulty),
		Profile:     p,
		Temperature: 0.7,
		MaxTokens:   3000,
	})

	content := raw
	if i := strings.Index(raw, "```json"); i >= 0 {
		content = strings.TrimSpace(raw[:i])
	}
	if content == "" {
		content = raw
	}

	return &Lesson{
		TopicID:              Slug(topic),
		Title:                topic,
		ContentText:          content,
		McqsJSON:             llm.ArrayBlock(raw),
		SummaryText:          extractSummary(content),
		GeneratedAt:          docstore.Now(),
		DifficultyLevel:      difficulty,
		EstimatedTimeMinutes: 15,
		ProfileUsed:          len(p) > 0,
	}
}

func (s *service) persist(ctx context.Context, appID, userID string, l *Lesson) (*Lesson, bool) {
	log := config.WithContext(ctx)

	id := fmt.Sprintf("lesson_%d_%s", time.Now().Unix(), l.TopicID)
	path := docstore.CollectionPath(appID, userID, Collection)
	if !s.store.Create(ctx, path, id, docstore.ToMap(l)) {
		log.WithField("topic", l.TopicID).Error("failed to store generated lesson")
		return nil, false
	}

	l.ID = id
	return l, true
}

func extractSummary(content string) string {
	_, after, found := strings.Cut(content, "Summary")
	if !found {
		return ""
	}
	summary := strings.TrimSpace(after)
	if end := strings.Index(summary, "#"); end > 0 {
		summary = strings.TrimSpace(summary[:end])
	}
	return summary
}

// Slug normalizes a topic name into the identifier form used across stored
// documents.
func Slug(topic string) string {
	return strings.ReplaceAll(strings.ToLower(topic), " ", "_")
}

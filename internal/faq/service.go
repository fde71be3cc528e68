package faq

import (
	"context"
	"fmt"
	"time"

	"github.com/adityahq/exammaster-lambda/internal/config"
	"github.com/adityahq/exammaster-lambda/internal/docstore"
	"github.com/adityahq/exammaster-lambda/internal/lesson"
	"github.com/adityahq/exammaster-lambda/internal/llm"
	"github.com/adityahq/exammaster-lambda/internal/profile"
)

const Collection = "faq_booklet"

const promptTmpl = `Task: Create a comprehensive answer to the following question related to the specified topic. The answer should be clear, accurate, and tailored to the user's learning profile. Include examples or analogies where appropriate to enhance understanding.

Topic: "%s"
Question: "%s"

Output Format: Markdown with clear explanations and examples.`

type Service interface {
	Add(ctx context.Context, appID, userID, topic, question string) (*FaqEntry, bool)
	List(ctx context.Context, appID, userID, topicID string) []map[string]any
}

type service struct {
	store    docstore.Store
	client   llm.Client
	profiles profile.Service
}

func NewService(store docstore.Store, client llm.Client, profiles profile.Service) Service {
	return &service{store: store, client: client, profiles: profiles}
}

func (s *service) Add(ctx context.Context, appID, userID, topic, question string) (*FaqEntry, bool) {
	log := config.WithContext(ctx)

	p := s.profiles.GetOrCreate(ctx, appID, userID)
	answer := s.client.Generate(ctx, llm.Request{
		Prompt:      fmt.Sprintf(promptTmpl, topic, question),
		Profile:     p,
		Temperature: 0.7,
		MaxTokens:   1000,
	})

	entry := &FaqEntry{
		TopicID:     lesson.Slug(topic),
		Question:    question,
		Answer:      answer,
		SourceQuery: "user_generated",
		AddedAt:     docstore.Now(),
	}

	id := fmt.Sprintf("faq_%d_%s", time.Now().Unix(), entry.TopicID)
	path := docstore.CollectionPath(appID, userID, Collection)
	if !s.store.Create(ctx, path, id, docstore.ToMap(entry)) {
		log.WithField("topic", topic).Error("failed to store FAQ entry")
		return nil, false
	}

	entry.ID = id
	return entry, true
}

func (s *service) List(ctx context.Context, appID, userID, topicID string) []map[string]any {
	path := docstore.CollectionPath(appID, userID, Collection)

	var docs []map[string]any
	if topicID != "" {
		docs = s.store.Query(ctx, path, "topic_id", "==", topicID)
	} else {
		docs = s.store.List(ctx, path)
	}

	entries := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		if isPlaceholder, _ := doc["placeholder"].(bool); isPlaceholder {
			continue
		}
		entries = append(entries, doc)
	}
	docstore.SortByField(entries, "added_at", true)
	return entries
}

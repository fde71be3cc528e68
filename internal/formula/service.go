package formula

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

const Collection = "formula_sheets"

const promptTmpl = `Task: Create a key formula sheet entry for the given concept within the specified topic. Include the formula, a brief explanation of terms, and its primary use case. Ensure the explanation explicitly links to concepts the user has previously struggled with (if identified in their learning profile).

Topic: "%s"
Concept: "%s"

Output Format: Markdown with the following sections:
1. Formula (using LaTeX notation where appropriate)
2. Explanation of terms
3. Use cases or applications
4. Common mistakes or pitfalls`

type Service interface {
	Add(ctx context.Context, appID, userID, topic, concept string) (*FormulaEntry, bool)
	// List returns entries newest first, optionally filtered by topic,
	// with placeholder seed documents excluded.
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

func (s *service) Add(ctx context.Context, appID, userID, topic, concept string) (*FormulaEntry, bool) {
	log := config.WithContext(ctx)

	p := s.profiles.GetOrCreate(ctx, appID, userID)
	content := s.client.Generate(ctx, llm.Request{
		Prompt:      fmt.Sprintf(promptTmpl, topic, concept),
		Profile:     p,
		Temperature: 0.7,
		MaxTokens:   1000,
	})

	entry := &FormulaEntry{
		TopicID:     lesson.Slug(topic),
		FormulaText: content,
		AddedAt:     docstore.Now(),
	}

	id := fmt.Sprintf("formula_%d_%s", time.Now().Unix(), entry.TopicID)
	path := docstore.CollectionPath(appID, userID, Collection)
	if !s.store.Create(ctx, path, id, docstore.ToMap(entry)) {
		log.WithField("topic", topic).Error("failed to store formula entry")
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

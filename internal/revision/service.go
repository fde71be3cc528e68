package revision

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

const logCollection = "revision_logs"

type Service interface {
	Generate(ctx context.Context, appID, userID string, req GenerateRequest) (*RevisionContent, bool)
}

type service struct {
	store    docstore.Store
	client   llm.Client
	profiles profile.Service
}

func NewService(store docstore.Store, client llm.Client, profiles profile.Service) Service {
	return &service{store: store, client: client, profiles: profiles}
}

func (s *service) Generate(ctx context.Context, appID, userID string, req GenerateRequest) (*RevisionContent, bool) {
	log := config.WithContext(ctx)

	difficulty := req.DifficultyLevel
	if difficulty == "" {
		difficulty = "intermediate"
	}

	p := s.profiles.GetOrCreate(ctx, appID, userID)
	content := s.client.Generate(ctx, llm.Request{
		Prompt:      revisionPrompt(req.TopicID, req.RevisionType, difficulty),
		Profile:     p,
		Temperature: 0.7,
		MaxTokens:   2000,
	})

	revision := &RevisionContent{
		TopicID:         lesson.Slug(req.TopicID),
		RevisionType:    req.RevisionType,
		ContentText:     content,
		DifficultyLevel: difficulty,
		GeneratedAt:     docstore.Now(),
	}

	logPath := docstore.CollectionPath(appID, userID, logCollection)
	logID := fmt.Sprintf("revision_%d_%s", time.Now().Unix(), uuid.NewString()[:8])
	logData := map[string]any{
		"topic_id":          req.TopicID,
		"revision_type":     req.RevisionType,
		"timestamp":         docstore.Now(),
		"content_generated": true,
	}
	if !s.store.Create(ctx, logPath, logID, logData) {
		log.WithField("topic", req.TopicID).Warn("failed to store revision log")
	}

	// Only the four counted formats feed the preference counters; the
	// revision_type namespace is wider than the format namespace.
	for _, format := range profile.CountedFormats {
		if req.RevisionType == format {
			s.profiles.TrackInteraction(ctx, appID, userID, req.RevisionType, 0)
			break
		}
	}

	return revision, true
}

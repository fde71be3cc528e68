package profile

import (
	"context"
	"sort"

	"github.com/adityahq/exammaster-lambda/internal/config"
	"github.com/adityahq/exammaster-lambda/internal/docstore"
)

type Service interface {
	// GetOrCreate reads the profile, lazily initializing it with defaults
	// and placeholder-seeded sibling collections. It returns an empty map,
	// never nil, as the terminal fallback.
	GetOrCreate(ctx context.Context, appID, userID string) map[string]any
	// Update applies a field-level merge: mapping values are merged one
	// level deep (new keys overwrite on conflict), everything else is
	// replaced outright. last_active_date is stamped on every update.
	Update(ctx context.Context, appID, userID string, updates map[string]any) bool
	// Replace overwrites the stored profile document wholesale, keeping
	// the existing created_at stamp when the payload carries none.
	Replace(ctx context.Context, appID, userID string, p map[string]any) bool
	Initialize(ctx context.Context, appID, userID string) bool
	// TrackInteraction bumps the preferred-format counter for counted
	// formats, accumulates study time and stamps last_active_date.
	TrackInteraction(ctx context.Context, appID, userID, interactionType string, timeSpent int) bool
	WeakAreas(ctx context.Context, appID, userID string, limit int) []string
	Strengths(ctx context.Context, appID, userID string, limit int) []string
}

type service struct {
	store docstore.Store
}

func NewService(store docstore.Store) Service {
	return &service{store: store}
}

func Path(appID, userID string) string {
	return docstore.CollectionPath(appID, userID, Collection)
}

func (s *service) Initialize(ctx context.Context, appID, userID string) bool {
	log := config.WithContext(ctx)

	if !s.store.Create(ctx, Path(appID, userID), DocID, Defaults()) {
		log.WithField("user_id", userID).Error("failed to create learning profile")
		return false
	}

	for _, collection := range SiblingCollections {
		placeholder := map[string]any{
			"placeholder": true,
			"created_at":  docstore.Now(),
		}
		path := docstore.CollectionPath(appID, userID, collection)
		if !s.store.Create(ctx, path, "placeholder", placeholder) {
			log.WithField("collection", collection).Warn("failed to seed placeholder document")
		}
	}
	return true
}

func (s *service) GetOrCreate(ctx context.Context, appID, userID string) map[string]any {
	path := Path(appID, userID)

	p, ok := s.store.Read(ctx, path, DocID)
	if !ok {
		s.Initialize(ctx, appID, userID)
		p, ok = s.store.Read(ctx, path, DocID)
	}
	if !ok || p == nil {
		return map[string]any{}
	}
	return p
}

func (s *service) Update(ctx context.Context, appID, userID string, updates map[string]any) bool {
	p := s.GetOrCreate(ctx, appID, userID)

	for key, value := range updates {
		newMap, newIsMap := value.(map[string]any)
		if current, ok := p[key].(map[string]any); ok && newIsMap {
			for k, v := range newMap {
				current[k] = v
			}
			continue
		}
		p[key] = value
	}
	p["last_active_date"] = docstore.Now()

	return s.store.Update(ctx, Path(appID, userID), DocID, p)
}

func (s *service) Replace(ctx context.Context, appID, userID string, p map[string]any) bool {
	path := Path(appID, userID)
	existing, ok := s.store.Read(ctx, path, DocID)
	if !ok {
		s.Initialize(ctx, appID, userID)
		existing, _ = s.store.Read(ctx, path, DocID)
	}
	// The creation stamp survives a wholesale replace.
	if _, has := p["created_at"]; !has {
		if created, ok := existing["created_at"]; ok {
			p["created_at"] = created
		}
	}
	return s.store.Update(ctx, path, DocID, p)
}

func (s *service) TrackInteraction(ctx context.Context, appID, userID, interactionType string, timeSpent int) bool {
	p := s.GetOrCreate(ctx, appID, userID)

	for _, format := range CountedFormats {
		if interactionType != format {
			continue
		}
		formats, ok := p["preferred_formats"].(map[string]any)
		if !ok {
			formats = map[string]any{}
			p["preferred_formats"] = formats
		}
		count, _ := toFloat(formats[interactionType])
		formats[interactionType] = count + 1
		break
	}

	total, _ := toFloat(p["total_study_time"])
	p["total_study_time"] = total + float64(timeSpent)
	p["last_active_date"] = docstore.Now()

	return s.store.Update(ctx, Path(appID, userID), DocID, p)
}

func (s *service) WeakAreas(ctx context.Context, appID, userID string, limit int) []string {
	p := s.GetOrCreate(ctx, appID, userID)
	weaknesses, _ := p["weaknesses"].(map[string]any)
	return topScored(weaknesses, limit)
}

func (s *service) Strengths(ctx context.Context, appID, userID string, limit int) []string {
	p := s.GetOrCreate(ctx, appID, userID)
	strengths, _ := p["strengths"].(map[string]any)
	return topScored(strengths, limit)
}

func topScored(scored map[string]any, limit int) []string {
	type entry struct {
		topic string
		score float64
	}
	entries := make([]entry, 0, len(scored))
	for topic, v := range scored {
		score, _ := toFloat(v)
		entries = append(entries, entry{topic: topic, score: score})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].topic < entries[j].topic
	})

	if limit > len(entries) {
		limit = len(entries)
	}
	out := make([]string, 0, limit)
	for _, e := range entries[:limit] {
		out = append(out, e.topic)
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

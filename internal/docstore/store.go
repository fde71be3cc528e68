package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// TimeLayout is the ISO-8601 UTC format used for every timestamp stored in a
// document.
const TimeLayout = "2006-01-02T15:04:05Z"

func Now() string {
	return time.Now().UTC().Format(TimeLayout)
}

// CollectionPath builds the hierarchical path a user collection lives under.
func CollectionPath(appID, userID, collection string) string {
	return fmt.Sprintf("artifacts/%s/users/%s/%s", appID, userID, collection)
}

// Store is a fail-soft document store: every operation logs its own fault and
// returns a zero value instead of an error, so callers must check the
// returned flag or length explicitly.
type Store interface {
	Create(ctx context.Context, path, id string, data map[string]any) bool
	Read(ctx context.Context, path, id string) (map[string]any, bool)
	// Update replaces the document body. It fails when the document does
	// not exist; callers must ensure existence first.
	Update(ctx context.Context, path, id string, data map[string]any) bool
	Delete(ctx context.Context, path, id string) bool
	// Query supports the operators ==, >, <, >=, <= and array_contains
	// against a top-level document field.
	Query(ctx context.Context, path, field, operator string, value any) []map[string]any
	List(ctx context.Context, path string) []map[string]any
}

// ToMap converts a struct into the schemaless form documents are stored in.
func ToMap(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{}
	}
	return m
}

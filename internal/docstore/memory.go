package docstore

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"sync"
)

// MemoryStore keeps documents in process memory. It backs local runs without
// a configured database and doubles as the test substitute for the Postgres
// store.
type MemoryStore struct {
	mu    sync.RWMutex
	paths map[string]map[string]map[string]any
	order map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		paths: make(map[string]map[string]map[string]any),
		order: make(map[string][]string),
	}
}

func (s *MemoryStore) Create(ctx context.Context, path, id string, data map[string]any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.paths[path]; !ok {
		s.paths[path] = make(map[string]map[string]any)
	}
	if _, exists := s.paths[path][id]; !exists {
		s.order[path] = append(s.order[path], id)
	}
	s.paths[path][id] = cloneDoc(data)
	return true
}

func (s *MemoryStore) Read(ctx context.Context, path, id string) (map[string]any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.paths[path][id]
	if !ok {
		return nil, false
	}
	return cloneDoc(doc), true
}

func (s *MemoryStore) Update(ctx context.Context, path, id string, data map[string]any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.paths[path][id]; !ok {
		return false
	}
	s.paths[path][id] = cloneDoc(data)
	return true
}

func (s *MemoryStore) Delete(ctx context.Context, path, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.paths[path][id]; !ok {
		return true
	}
	delete(s.paths[path], id)
	ids := s.order[path]
	for i, existing := range ids {
		if existing == id {
			s.order[path] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return true
}

func (s *MemoryStore) Query(ctx context.Context, path, field, operator string, value any) []map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []map[string]any
	for _, id := range s.order[path] {
		doc := s.paths[path][id]
		if matches(doc[field], operator, value) {
			out = append(out, cloneDoc(doc))
		}
	}
	return out
}

func (s *MemoryStore) List(ctx context.Context, path string) []map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]map[string]any, 0, len(s.paths[path]))
	for _, id := range s.order[path] {
		out = append(out, cloneDoc(s.paths[path][id]))
	}
	return out
}

func matches(field any, operator string, value any) bool {
	switch operator {
	case "==":
		return equal(field, value)
	case ">", "<", ">=", "<=":
		a, aok := toFloat(field)
		b, bok := toFloat(value)
		if !aok || !bok {
			return false
		}
		switch operator {
		case ">":
			return a > b
		case "<":
			return a < b
		case ">=":
			return a >= b
		default:
			return a <= b
		}
	case "array_contains":
		items, ok := field.([]any)
		if !ok {
			return false
		}
		for _, item := range items {
			if equal(item, value) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func equal(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
	}
	ab, _ := json.Marshal(a)
	bb, _ := json.Marshal(b)
	return string(ab) == string(bb)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func cloneDoc(data map[string]any) map[string]any {
	b, err := json.Marshal(data)
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]any{}
	}
	return out
}

// SortByField orders documents by a string field, most recent first when the
// field holds a timestamp. Exposed for the append-only collections that list
// entries by recency.
func SortByField(docs []map[string]any, field string, descending bool) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, _ := docs[i][field].(string)
		b, _ := docs[j][field].(string)
		if descending {
			return a > b
		}
		return a < b
	})
}

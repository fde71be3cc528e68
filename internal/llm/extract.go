package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Model output wraps JSON in prose, fences it inconsistently, or mangles it
// outright. All structured parsing of model text goes through this file so
// the sniffing rules live in exactly one place.

var (
	fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(.*?)```")
	fencedAnyRe  = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*?)```")
	arrayStartRe = regexp.MustCompile(`\[\s*\{\s*"id"\s*:`)
)

// Candidate returns the substring of raw most likely to hold the JSON
// payload: a json-labeled fenced block, then any fenced block, then (for
// arrays) a bare array of objects keyed by "id", then the whole text.
func Candidate(raw string, wantArray bool) string {
	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := fencedAnyRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	if wantArray {
		if loc := arrayStartRe.FindStringIndex(raw); loc != nil {
			if end := strings.LastIndex(raw, "]"); end > loc[0] {
				return strings.TrimSpace(raw[loc[0] : end+1])
			}
		}
	}
	return strings.TrimSpace(raw)
}

// DecodeObject extracts and parses a JSON object from free-form model text.
func DecodeObject(raw string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(Candidate(raw, false)), &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// DecodeArray extracts and parses a JSON array of objects from free-form
// model text.
func DecodeArray(raw string) ([]map[string]any, error) {
	var items []map[string]any
	if err := json.Unmarshal([]byte(Candidate(raw, true)), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ArrayBlock returns the extracted array candidate verbatim when it is valid
// JSON, and "[]" otherwise. Used where the array is stored string-encoded
// rather than parsed.
func ArrayBlock(raw string) string {
	candidate := Candidate(raw, true)
	if strings.HasPrefix(candidate, "[") && json.Valid([]byte(candidate)) {
		return candidate
	}
	return "[]"
}

package lesson

import "testing"

var testSyllabus = []string{"Data Structures", "Algorithms", "Operating Systems"}

func TestSelectDailyTopic(t *testing.T) {
	t.Run("WeakTopicFirst", func(t *testing.T) {
		p := map[string]any{
			"weaknesses": map[string]any{
				"operating_systems": 0.4,
				"algorithms":        0.6,
			},
		}

		topic, difficulty := SelectDailyTopic(p, testSyllabus)
		if topic != "algorithms" {
			t.Errorf("expected first weak topic in sorted order, got %q", topic)
		}
		if difficulty != "intermediate" {
			t.Errorf("expected intermediate difficulty, got %q", difficulty)
		}
	})

	t.Run("UntouchedTopicWhenNoWeaknesses", func(t *testing.T) {
		p := map[string]any{
			"weaknesses":   map[string]any{},
			"progress_map": map[string]any{"Data Structures": 0.8},
		}

		topic, difficulty := SelectDailyTopic(p, testSyllabus)
		if topic != "Algorithms" {
			t.Errorf("expected first untouched syllabus topic, got %q", topic)
		}
		if difficulty != "beginner" {
			t.Errorf("expected beginner difficulty, got %q", difficulty)
		}
	})

	t.Run("RevisionFallbackWhenAllTouched", func(t *testing.T) {
		p := map[string]any{
			"progress_map": map[string]any{
				"Data Structures":   1.0,
				"Algorithms":        1.0,
				"Operating Systems": 1.0,
			},
		}

		topic, difficulty := SelectDailyTopic(p, testSyllabus)
		if topic != "Data Structures" {
			t.Errorf("expected first syllabus topic as fallback, got %q", topic)
		}
		if difficulty != "advanced" {
			t.Errorf("expected advanced difficulty, got %q", difficulty)
		}
	})

	t.Run("EmptyProfile", func(t *testing.T) {
		topic, difficulty := SelectDailyTopic(map[string]any{}, testSyllabus)
		if topic != "Data Structures" || difficulty != "beginner" {
			t.Errorf("expected first topic at beginner, got %q/%q", topic, difficulty)
		}
	})
}

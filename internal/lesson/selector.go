package lesson

import "sort"

// SelectDailyTopic picks the next topic for an auto-generated daily lesson.
// Priority: weak topics at intermediate difficulty, then untouched syllabus
// topics at beginner, then the first syllabus topic at advanced as a revision
// fallback. Pure function of profile and syllabus.
func SelectDailyTopic(p map[string]any, syllabus []string) (topic, difficulty string) {
	weaknesses, _ := p["weaknesses"].(map[string]any)
	if len(weaknesses) > 0 {
		keys := make([]string, 0, len(weaknesses))
		for k := range weaknesses {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys[0], "intermediate"
	}

	progress, _ := p["progress_map"].(map[string]any)
	for _, t := range syllabus {
		if _, touched := progress[t]; !touched {
			return t, "beginner"
		}
	}

	return syllabus[0], "advanced"
}

package profile

import "github.com/adityahq/exammaster-lambda/internal/docstore"

const (
	// Collection holds the single profile document per user.
	Collection = "learning_profile"
	DocID      = "profile"
)

// SiblingCollections are seeded alongside a new profile so empty-collection
// reads have a defined result. Each gets a placeholder marker document.
var SiblingCollections = []string{
	"lessons",
	"quizzes",
	"revision_logs",
	"formula_sheets",
	"faq_booklet",
}

// CountedFormats are the interaction types that bump a preferred-format
// counter.
var CountedFormats = []string{"clarity", "infographic", "audio", "practice_questions"}

// Defaults returns a fresh learning profile document.
func Defaults() map[string]any {
	now := docstore.Now()
	return map[string]any{
		"strengths":  map[string]any{},
		"weaknesses": map[string]any{},
		"learning_pace": 1.0,
		"preferred_formats": map[string]any{
			"clarity":            0,
			"infographic":        0,
			"audio":              0,
			"practice_questions": 0,
		},
		"difficulty_adjustment": 1.0,
		"progress_map":          map[string]any{},
		"daily_streak":          0,
		"total_study_time":      0,
		"last_active_date":      now,
		"created_at":            now,
	}
}

// UpdateRequest mirrors the replace-profile payload accepted over HTTP.
type UpdateRequest struct {
	Strengths            map[string]float64 `json:"strengths"`
	Weaknesses           map[string]float64 `json:"weaknesses"`
	LearningPace         float64            `json:"learning_pace"`
	PreferredFormats     map[string]int     `json:"preferred_formats"`
	DifficultyAdjustment float64            `json:"difficulty_adjustment"`
	ProgressMap          map[string]any     `json:"progress_map"`
	DailyStreak          int                `json:"daily_streak"`
	TotalStudyTime       int                `json:"total_study_time"`
}

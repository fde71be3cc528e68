package lesson

const (
	TypeGenerated = "generated_lesson"
	TypeDaily     = "daily_lesson"
)

type Lesson struct {
	ID                   string `json:"id,omitempty"`
	TopicID              string `json:"topic_id"`
	Title                string `json:"title"`
	ContentText          string `json:"content_text"`
	McqsJSON             string `json:"mcqs_json"`
	SummaryText          string `json:"summary_text"`
	GeneratedAt          string `json:"generated_at"`
	Type                 string `json:"type"`
	DifficultyLevel      string `json:"difficulty_level"`
	EstimatedTimeMinutes int    `json:"estimated_time_minutes"`
	ProfileUsed          bool   `json:"profile_used"`
}

type GenerateRequest struct {
	TopicID         string `json:"topic_id"`
	DifficultyLevel string `json:"difficulty_level"`
}

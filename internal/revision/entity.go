package revision

type RevisionContent struct {
	TopicID         string `json:"topic_id"`
	RevisionType    string `json:"revision_type"`
	ContentText     string `json:"content_text"`
	DifficultyLevel string `json:"difficulty_level"`
	GeneratedAt     string `json:"generated_at"`
}

type GenerateRequest struct {
	TopicID         string `json:"topic_id"`
	RevisionType    string `json:"revision_type"`
	DifficultyLevel string `json:"difficulty_level"`
}

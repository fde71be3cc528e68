package formula

type FormulaEntry struct {
	ID          string `json:"id,omitempty"`
	TopicID     string `json:"topic_id"`
	FormulaText string `json:"formula_text"`
	Explanation string `json:"explanation"`
	IsDifficult bool   `json:"is_difficult"`
	AddedAt     string `json:"added_at"`
}

type AddRequest struct {
	Topic   string `json:"topic"`
	Concept string `json:"concept"`
}

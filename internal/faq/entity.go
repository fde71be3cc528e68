package faq

type FaqEntry struct {
	ID          string `json:"id,omitempty"`
	TopicID     string `json:"topic_id"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	SourceQuery string `json:"source_query"`
	AddedAt     string `json:"added_at"`
}

type AddRequest struct {
	Topic    string `json:"topic"`
	Question string `json:"question"`
}

package diagnostic

import "encoding/json"

type Question struct {
	ID                 string   `json:"id"`
	TopicID            string   `json:"topicId"`
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	Explanation        string   `json:"explanation"`
	Difficulty         string   `json:"difficulty"`
	Tags               []string `json:"tags"`
}

// Settings controls a diagnostic question set. TopicSelection is "all",
// "random", or an explicit topic list.
type Settings struct {
	QuestionCount          int             `json:"questionCount"`
	TopicSelection         json.RawMessage `json:"topicSelection,omitempty"`
	DifficultyDistribution map[string]int  `json:"difficultyDistribution"`
	TimeLimit              *int            `json:"timeLimit,omitempty"`
}

func (s *Settings) ApplyDefaults() {
	if s.QuestionCount <= 0 {
		s.QuestionCount = 10
	}
	if s.DifficultyDistribution == nil {
		s.DifficultyDistribution = map[string]int{"easy": 30, "medium": 50, "hard": 20}
	}
	if s.TimeLimit == nil {
		limit := 600
		s.TimeLimit = &limit
	}
}

// TopicMode decodes TopicSelection into either a mode keyword or an explicit
// list.
func (s *Settings) TopicMode() (mode string, topics []string) {
	if len(s.TopicSelection) == 0 {
		return "random", nil
	}
	var keyword string
	if err := json.Unmarshal(s.TopicSelection, &keyword); err == nil {
		return keyword, nil
	}
	var list []string
	if err := json.Unmarshal(s.TopicSelection, &list); err == nil {
		return "list", list
	}
	return "random", nil
}

type Answer struct {
	QuestionID          string `json:"questionId"`
	SelectedOptionIndex *int   `json:"selectedOptionIndex,omitempty"`
	IsCorrect           bool   `json:"isCorrect"`
}

// Submission is the immutable record of a completed diagnostic: what was
// presented, what was answered, and the self-reported context.
type Submission struct {
	Questions     []Question `json:"questions"`
	Answers       []Answer   `json:"answers"`
	LearningStyle string     `json:"learningStyle"`
	SelfRating    string     `json:"selfRating,omitempty"`
	WeakTopics    []string   `json:"weakTopics"`
	StrongTopics  []string   `json:"strongTopics"`
}

type AnalysisResult struct {
	TopicScores  map[string]int `json:"topic_scores"`
	Strengths    []string       `json:"strengths"`
	Weaknesses   []string       `json:"weaknesses"`
	OverallScore int            `json:"overall_score"`
	Analysis     map[string]any `json:"analysis"`
}

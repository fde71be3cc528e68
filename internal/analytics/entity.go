package analytics

type QuizSubmission struct {
	LessonID               string  `json:"lesson_id"`
	TopicID                string  `json:"topic_id"`
	QuestionsAttemptedJSON string  `json:"questions_attempted_json"`
	Score                  float64 `json:"score"`
	CorrectAnswersCount    int     `json:"correct_answers_count"`
	IncorrectAnswersCount  int     `json:"incorrect_answers_count"`
	TimeTakenSeconds       int     `json:"time_taken_seconds"`
	ConfidenceRatings      []int   `json:"confidence_ratings"`
}

type TopicInteraction struct {
	TopicID          string `json:"topic_id"`
	InteractionType  string `json:"interaction_type"`
	TimeSpent        int    `json:"time_spent"`
	DifficultyRating *int   `json:"difficulty_rating,omitempty"`
	ContentGenerated bool   `json:"content_generated"`
	UserFeedback     string `json:"user_feedback,omitempty"`
}

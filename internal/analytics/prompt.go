package analytics

import "fmt"

const quizAnalysisTmpl = `Task: Analyze the following quiz results and provide personalized feedback. Focus on identifying strengths, weaknesses, and specific areas for improvement. Suggest next steps for the user's learning journey based on these results and their overall learning profile.

Quiz Information:
- Topic: %s
- Score: %v
- Correct Answers: %d out of %d
- Incorrect Answers: %d out of %d

Output Format: Provide your analysis in the following JSON structure:

%[7]sjson
{
  "overall_assessment": "Brief overall assessment of performance",
  "strengths_identified": ["Strength 1", "Strength 2"],
  "weaknesses_identified": ["Weakness 1", "Weakness 2"],
  "misconceptions": ["Potential misconception 1", "Potential misconception 2"],
  "recommended_next_steps": ["Recommendation 1", "Recommendation 2"],
  "difficulty_adjustment_suggestion": 1.0,
  "personalized_message": "Encouraging message tailored to the user's performance"
}
%[7]s

The difficulty_adjustment_suggestion should be a number between 0.5 (easier) and 1.5 (harder) based on how challenging future content should be for this user.`

func quizAnalysisPrompt(sub QuizSubmission) string {
	total := sub.CorrectAnswersCount + sub.IncorrectAnswersCount
	return fmt.Sprintf(quizAnalysisTmpl,
		sub.TopicID, sub.Score,
		sub.CorrectAnswersCount, total,
		sub.IncorrectAnswersCount, total,
		"```",
	)
}

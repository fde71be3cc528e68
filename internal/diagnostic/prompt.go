package diagnostic

import (
	"encoding/json"
	"fmt"
)

const questionsPromptTmpl = `Task: Generate %[1]d multiple-choice diagnostic questions about %[2]s at %[3]s difficulty level for the DCIO/Tech exam.

Requirements:
1. Each question should test understanding of key concepts related to %[2]s.
2. Questions should be at %[3]s difficulty level.
3. Each question should have 4 options with exactly one correct answer.
4. Include a brief explanation for the correct answer.
5. Format the output as a JSON array of question objects.

Output Format:
%[4]sjson
[
  {
    "id": "unique_id_1",
    "topicId": "%[2]s",
    "text": "Question text goes here?",
    "options": [
      "Option A (correct answer)",
      "Option B",
      "Option C",
      "Option D"
    ],
    "correctOptionIndex": 0,
    "explanation": "Explanation for why Option A is correct",
    "difficulty": "%[3]s",
    "tags": ["%[2]s"]
  }
]
%[4]s

Note: Ensure the correctOptionIndex matches the index of the correct answer in the options array (0-based indexing).`

func questionsPrompt(topic, difficulty string, count int) string {
	return fmt.Sprintf(questionsPromptTmpl, count, topic, difficulty, "```")
}

const analysisPromptTmpl = `Task: Analyze the following diagnostic assessment results for a DCIO/Tech exam preparation platform user and provide personalized feedback.

Assessment Results:
- Overall Score: %d%%
- Topic Scores: %s
- Identified Strengths: %s
- Identified Weaknesses: %s
- User's Learning Style: %s
- User's Self-Rating: %s

Provide your analysis in the following JSON format:

%[7]sjson
{
  "overall_assessment": "Brief overall assessment of the user's current knowledge level",
  "strengths_analysis": "Analysis of the user's strengths and how to leverage them",
  "weaknesses_analysis": "Analysis of the user's weaknesses and how to address them",
  "learning_style_recommendations": "Recommendations based on the user's learning style",
  "study_plan_suggestion": "Brief suggestion for an initial study plan",
  "estimated_preparation_time": "Estimated time needed for adequate preparation (in weeks)",
  "confidence_score": "A score from 1-10 indicating how confident the user should be about their preparation"
}
%[7]s`

func analysisPrompt(overallScore int, topicScores map[string]int, strengths, weaknesses []string, learningStyle, selfRating string) string {
	scores, _ := json.Marshal(topicScores)
	strong, _ := json.Marshal(strengths)
	weak, _ := json.Marshal(weaknesses)
	if selfRating == "" {
		selfRating = "Not provided"
	}
	return fmt.Sprintf(analysisPromptTmpl, overallScore, scores, strong, weak, learningStyle, selfRating, "```")
}

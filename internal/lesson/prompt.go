package lesson

import "fmt"

const lessonPromptTmpl = `Task: Generate a comprehensive daily lesson.

Specific Topic Focus: "%[1]s"

Difficulty Level: %[2]s

Lesson Structure Requirements:
1. **Introduction:** Briefly introduce the topic and its importance. (Approx. 50 words)
2. **Main Content:** Explain the key concepts, principles, and applications. Include examples and illustrations where appropriate.
3. **Technical Details:** Provide detailed technical information relevant to the exam.
4. **Common Misconceptions:** Address any common misconceptions or areas where students typically struggle.
5. **Summary:** Summarize the key points of the lesson. (Approx. 50 words)
6. **Multiple Choice Questions (5 MCQs):**
   * Provide 5 multiple-choice questions that test understanding of the topic.
   * Ensure questions are at the appropriate difficulty level.
   * Provide 4 distinct options for each question.
   * The correct answer should be clearly indicated.
   * Include a brief explanation for each answer.

Output Format: Provide the lesson content in Markdown. For MCQs, provide them as a JSON array within a markdown code block, as shown below:

%[3]sjson
[
  {
    "id": "q1",
    "difficulty": "%[2]s",
    "question": "What is...",
    "options": [
      {"id": "a", "text": "Option A"},
      {"id": "b", "text": "Option B"},
      {"id": "c", "text": "Option C"},
      {"id": "d", "text": "Option D"}
    ],
    "correctAnswer": "a",
    "explanation": "Explanation for why A is correct...",
    "conceptTested": "Specific concept this question tests"
  }
]
%[3]s`

func lessonPrompt(topic, difficulty string) string {
	return fmt.Sprintf(lessonPromptTmpl, topic, difficulty, "```")
}

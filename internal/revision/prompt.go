package revision

import "fmt"

// Each revision type selects a fixed template. Unknown types fall through to
// a generic prompt so arbitrary caller-supplied styles still produce content.

const clarityTmpl = `Task: Re-explain the following topic in a clearer, more accessible manner. Focus on simplifying complex concepts, using analogies where helpful, and addressing common points of confusion. This explanation should be tailored based on the user's learning profile, especially focusing on any identified weaknesses or learning preferences.

Topic: "%s"

Output Format: Markdown with clear headings, bullet points, and examples.`

const infographicTmpl = `Task: Re-explain the following topic in a highly structured, concise manner, specifically designed for conversion into an infographic. Focus on key components, relationships, and a clear flow. Do NOT generate any visual elements or images directly; only textual descriptions of what should be depicted. This explanation should be tailored based on the user's preferred content style.

Topic: "%s"

Key Components to Highlight for Infographic:
- Main concepts and their definitions
- Relationships between concepts
- Process flows or sequences (if applicable)
- Key examples or applications
- Common pitfalls or misconceptions

Output Format: Markdown using clear headings, bullet points, and simple flow descriptions.`

const practiceQuestionsTmpl = `Task: Generate a set of practice questions for the specified topic. Include a mix of multiple-choice questions and short-answer questions that test understanding at various levels of difficulty. These questions should be tailored based on the user's learning profile, focusing on areas where they might need more practice.

Topic: "%s"
Difficulty Level: %s

Output Format: Provide 5 multiple-choice questions and 3 short-answer questions as a JSON object with "mcqs" and "shortAnswers" arrays inside a fenced json code block. Each MCQ needs "id", "difficulty", "question", "options" (four {"id", "text"} entries), "correctAnswer" and "explanation"; each short-answer question needs "id", "difficulty", "question", "modelAnswer" and "keyPoints".`

const audioSummaryTmpl = `Task: Create a concise audio-friendly summary of the following topic. This should be designed for text-to-speech conversion, so avoid complex notation or visual references. Focus on clear, conversational language that flows well when spoken aloud. The summary should be tailored based on the user's learning profile.

Topic: "%s"

Output Format: Plain text optimized for audio delivery. Keep sentences relatively short and use clear transitions. Aim for approximately 2-3 minutes of spoken content (about 300-450 words).`

const crashSheetTmpl = `Task: Create a comprehensive but concise crash sheet for the specified topic. This should serve as a quick reference guide that captures all essential information in a highly condensed format. Include formulas, definitions, key concepts, and critical points to remember. This crash sheet should be tailored based on the user's learning profile, especially focusing on areas they find challenging.

Topic: "%s"

Output Format: Markdown with clear sections, bullet points, tables where appropriate, and highlighted key points.`

const genericTmpl = `Task: Generate revision content for the topic "%s" in the style of %s.
Difficulty Level: %s

Output Format: Markdown with clear structure and organization.`

func revisionPrompt(topic, revisionType, difficulty string) string {
	switch revisionType {
	case "clarity":
		return fmt.Sprintf(clarityTmpl, topic)
	case "infographic":
		return fmt.Sprintf(infographicTmpl, topic)
	case "practice_questions":
		return fmt.Sprintf(practiceQuestionsTmpl, topic, difficulty)
	case "audio_summary":
		return fmt.Sprintf(audioSummaryTmpl, topic)
	case "crash_sheet":
		return fmt.Sprintf(crashSheetTmpl, topic)
	default:
		return fmt.Sprintf(genericTmpl, topic, revisionType, difficulty)
	}
}

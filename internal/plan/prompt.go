package plan

import (
	"fmt"
	"strings"
)

const planSystemPrompt = `You are a JSON API that only outputs valid JSON. Never include markdown, explanations, or any text outside the JSON object.`

func buildPlanUserMessage(answers AnswerSet, lessonCount int) string {
	var b strings.Builder

	b.WriteString("Create a personalized financial literacy learning plan in valid JSON format.\n\n")
	b.WriteString("Important: Only output the JSON and nothing else\n\n")

	b.WriteString("User Profile:\n")
	b.WriteString(fmt.Sprintf("- Country: %s\n", answers.Country))
	b.WriteString(fmt.Sprintf("- Language: %s\n", answers.Language))
	b.WriteString(fmt.Sprintf("- Age Group: %s\n", answers.AgeGroup))
	b.WriteString(fmt.Sprintf("- Income Range: %s\n", answers.IncomeRange))
	b.WriteString(fmt.Sprintf("- Cultural Value: %s\n", answers.CulturalValue))
	b.WriteString(fmt.Sprintf("- Financial Goals: %s\n", answers.FinancialGoals))

	b.WriteString(fmt.Sprintf("\nGenerate exactly %d lessons. Each lesson must have:\n", lessonCount))
	b.WriteString(fmt.Sprintf("- id: string (1-%d)\n", lessonCount))
	b.WriteString("- title: string\n")
	b.WriteString("- description: string (2-3 sentences)\n")

	var cats []string
	for _, c := range Categories() {
		cats = append(cats, string(c))
	}
	b.WriteString(fmt.Sprintf("- category: string (one of: %s)\n", strings.Join(cats, ", ")))

	b.WriteString("- difficulty: number (1-5)\n")
	b.WriteString("- estimatedMinutes: number (5-20)\n")
	b.WriteString(fmt.Sprintf("- content: string (100-150 words, culturally relevant to %s)\n", answers.Country))
	b.WriteString("- why: string (1-2 sentences)\n")
	b.WriteString("- quiz: array of 3 questions, each with:\n")
	b.WriteString("  - id: string\n")
	b.WriteString("  - question: string\n")
	b.WriteString("  - options: array of 4 strings\n")
	b.WriteString("  - correctAnswer: string (must exactly match one option)\n")
	b.WriteString("  - explanation: string\n")

	b.WriteString(`
CRITICAL RULES:
1. Return ONLY valid JSON, no markdown, no explanations
2. All strings must use double quotes, not single quotes
3. Escape all quotes inside strings with backslash
4. No trailing commas
5. Keep content concise to avoid token limits
6. Make sure correctAnswer exactly matches one of the options

The top-level object has keys "lessons", "personalizedMessage", and "estimatedCompletionWeeks".`)

	return b.String()
}

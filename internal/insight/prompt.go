package insight

import "fmt"

// insightPromptTemplate demands a bare JSON object so the response can be
// parsed without scraping prose. Models still sometimes wrap the object in
// Markdown fences; the generator strips those before parsing.
const insightPromptTemplate = `Analyze the current state of the %s industry and provide insights in ONLY the following JSON format without any additional notes or explanations:
{
  "salaryRanges": [
    { "role": "string", "min": number, "max": number, "median": number, "location": "string" }
  ],
  "growthRate": number,
  "demandLevel": "HIGH" | "MEDIUM" | "LOW",
  "topSkills": ["skill1", "skill2"],
  "marketOutlook": "POSITIVE" | "NEUTRAL" | "NEGATIVE",
  "keyTrends": ["trend1", "trend2"],
  "recommendedSkills": ["skill1", "skill2"]
}

IMPORTANT: Return ONLY the JSON. No additional text, notes, or markdown formatting.
Include at least 5 common roles for salary ranges.
Growth rate should be a percentage.
Include at least 5 skills and trends.`

// BuildPrompt returns the generation instruction for an industry. Pure; the
// industry string is passed through verbatim, sanitization is the caller's job.
func BuildPrompt(industry string) string {
	return fmt.Sprintf(insightPromptTemplate, industry)
}

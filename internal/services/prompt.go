package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildGeneralPrompt creates the prompt for a resume-only analysis. When
// guidelineContext is non-empty it is injected as reference material.
func (pb *PromptBuilder) BuildGeneralPrompt(resumeText, guidelineContext string) string {
	contextSection := ""
	if strings.TrimSpace(guidelineContext) != "" {
		contextSection = fmt.Sprintf("\nReference material (resume writing guidelines):\n%s\n", guidelineContext)
	}

	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) and a professional career coach.
Analyze the provided resume text thoroughly. Your response MUST be a single JSON object enclosed in a %sjson markdown block.
Do not output any text or explanation outside of the markdown block.

Example Response:
%sjson
{
  "ats_score": 88,
  "strengths": ["Strong project management skills", "Proficient in Python and SQL", "Excellent communication"],
  "feedback": ["Quantify achievements in the experience section", "Add a summary section at the top", "Tailor skills to match the job description"],
  "job_suggestions": ["Data Analyst", "Business Intelligence Analyst", "Project Coordinator"]
}
%s
%s
Resume Text:
%s`, "```", "```", "```", contextSection, resumeText)
}

// BuildComparisonPrompt creates the prompt used when a job description is
// provided for comparison.
func (pb *PromptBuilder) BuildComparisonPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) and a professional career coach.
Analyze the provided resume text against the given job description. Your response must be a single JSON object enclosed in a %sjson markdown block.
Do not output any text or explanation outside of the markdown block.

Example Response:
%sjson
{
  "match_score": 75,
  "summary": "The candidate is a good fit but lacks direct experience in cloud platforms mentioned in the job description.",
  "missing_keywords": ["AWS", "Tableau", "Agile Methodology"],
  "tailoring_suggestions": ["Highlight any experience with cloud services, even if academic.", "Add a section for 'Data Visualization' and mention relevant tools.", "Incorporate the term 'Agile' if you have experience with iterative development."]
}
%s

Resume Text:
%s

Job Description:
%s`, "```", "```", "```", resumeText, jobDescription)
}

// FormatGuidelineContext joins retrieved guideline snippets for prompt use.
func FormatGuidelineContext(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	var parts []string
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("--- Guideline %d (Score: %.2f) ---\n%s",
			i+1, result.Score, strings.TrimSpace(result.Text)))
	}

	return strings.Join(parts, "\n\n")
}

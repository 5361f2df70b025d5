package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"resumeinsight/resume-analyzer/internal/models"
)

// AnalysisError carries the HTTP status the analysis API should answer with.
type AnalysisError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

type AnalyzerService interface {
	// Analyze extracts the resume text, runs the model, and returns the
	// cleaned response body together with its parsed form when the body is
	// a recognizable analysis object (nil otherwise).
	Analyze(ctx context.Context, resumePath, jobDescription string) (string, *models.Analysis, error)
}

type analyzerService struct {
	geminiService GeminiService
	qdrantService QdrantService
	pdfParser     PDFParserService
	promptBuilder *PromptBuilder
	maxRetries    int
}

// NewAnalyzerService builds the analysis pipeline. qdrantService may be nil;
// guideline retrieval is skipped in that case.
func NewAnalyzerService(
	geminiService GeminiService,
	qdrantService QdrantService,
	pdfParser PDFParserService,
	maxRetries int,
) AnalyzerService {
	return &analyzerService{
		geminiService: geminiService,
		qdrantService: qdrantService,
		pdfParser:     pdfParser,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

func (a *analyzerService) Analyze(ctx context.Context, resumePath, jobDescription string) (string, *models.Analysis, error) {
	resumeText, err := a.pdfParser.ExtractText(resumePath)
	if err != nil {
		if errors.Is(err, ErrNoTextContent) {
			return "", nil, &AnalysisError{
				StatusCode: 400,
				Message:    "Could not extract text from the provided PDF",
				Err:        err,
			}
		}
		return "", nil, &AnalysisError{
			StatusCode: 500,
			Message:    fmt.Sprintf("Error parsing PDF: %v", err),
			Err:        err,
		}
	}

	jobDescription = strings.TrimSpace(jobDescription)

	var prompt string
	if jobDescription != "" {
		prompt = a.promptBuilder.BuildComparisonPrompt(resumeText, jobDescription)
	} else {
		prompt = a.promptBuilder.BuildGeneralPrompt(resumeText, a.retrieveGuidelines(ctx, resumeText))
	}

	response, err := a.geminiService.GenerateTextWithRetry(ctx, prompt, 0.3, a.maxRetries)
	if err != nil {
		var blockedErr *ContentBlockedError
		if errors.As(err, &blockedErr) {
			return "", nil, &AnalysisError{
				StatusCode: 400,
				Message:    fmt.Sprintf("Analysis failed: The content was blocked for safety reasons (%s).", blockedErr.Reason),
				Err:        err,
			}
		}
		return "", nil, &AnalysisError{
			StatusCode: 500,
			Message:    fmt.Sprintf("An unexpected server error occurred. Error: %v", err),
			Err:        err,
		}
	}

	if strings.TrimSpace(response) == "" {
		return "", nil, &AnalysisError{
			StatusCode: 400,
			Message:    "Analysis failed: The AI model returned an empty response.",
		}
	}

	cleaned := CleanModelResponse(response)

	// The body is returned verbatim even when it is not valid JSON; the
	// form flow explains unreadable replies to the user.
	var analysis models.Analysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		log.Printf("⚠️  Model response is not a valid analysis object: %v\n", err)
		return cleaned, nil, nil
	}

	return cleaned, &analysis, nil
}

// retrieveGuidelines pulls resume-writing guideline snippets from the vector
// store. Failures only cost the extra context.
func (a *analyzerService) retrieveGuidelines(ctx context.Context, resumeText string) string {
	if a.qdrantService == nil {
		return ""
	}

	embedding, err := a.geminiService.GenerateEmbedding(ctx, resumeText)
	if err != nil {
		log.Printf("⚠️  Failed to embed resume for guideline retrieval: %v\n", err)
		return ""
	}

	results, err := a.qdrantService.SearchSimilar(ctx, embedding, DocTypeGuideline, 3)
	if err != nil {
		log.Printf("⚠️  Failed to search guidelines: %v\n", err)
		return ""
	}

	return FormatGuidelineContext(results)
}

var fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")

// CleanModelResponse extracts the JSON object from a model reply that may be
// wrapped in a markdown fence. Replies without a valid fenced object come
// back trimmed but otherwise untouched.
func CleanModelResponse(raw string) string {
	if match := fencedJSONPattern.FindStringSubmatch(raw); match != nil {
		candidate := match[1]
		if json.Valid([]byte(candidate)) {
			return candidate
		}
	}
	return strings.TrimSpace(raw)
}

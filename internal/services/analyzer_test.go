package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeinsight/resume-analyzer/internal/models"
)

type stubGemini struct {
	response string
	err      error
	embedErr error
	prompts  []string
}

func (s *stubGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if s.embedErr != nil {
		return nil, s.embedErr
	}
	return []float32{0.1, 0.2}, nil
}

func (s *stubGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func (s *stubGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	return s.GenerateText(ctx, prompt, temperature)
}

type stubParser struct {
	text string
	err  error
}

func (s *stubParser) ExtractText(filePath string) (string, error) {
	return s.text, s.err
}

func TestAnalyze_GeneralShape(t *testing.T) {
	gemini := &stubGemini{
		response: "```json\n{\"ats_score\": 88, \"strengths\": [\"Clear\"], \"feedback\": [], \"job_suggestions\": [\"Data Analyst\"]}\n```",
	}
	analyzer := NewAnalyzerService(gemini, nil, &stubParser{text: "resume text"}, 3)

	body, analysis, err := analyzer.Analyze(context.Background(), "/tmp/resume.pdf", "")
	require.NoError(t, err)

	assert.JSONEq(t, `{"ats_score":88,"strengths":["Clear"],"feedback":[],"job_suggestions":["Data Analyst"]}`, body)
	require.NotNil(t, analysis)
	assert.Equal(t, models.KindGeneral, analysis.Kind())

	require.Len(t, gemini.prompts, 1)
	assert.Contains(t, gemini.prompts[0], "resume text")
	assert.NotContains(t, gemini.prompts[0], "Job Description:")
}

func TestAnalyze_ComparisonPromptWhenJobDescriptionGiven(t *testing.T) {
	gemini := &stubGemini{
		response: "```json\n{\"match_score\": 75, \"summary\": \"ok\", \"missing_keywords\": [], \"tailoring_suggestions\": []}\n```",
	}
	analyzer := NewAnalyzerService(gemini, nil, &stubParser{text: "resume text"}, 3)

	_, analysis, err := analyzer.Analyze(context.Background(), "/tmp/resume.pdf", "Backend engineer at Acme")
	require.NoError(t, err)

	require.NotNil(t, analysis)
	assert.Equal(t, models.KindMatch, analysis.Kind())

	require.Len(t, gemini.prompts, 1)
	assert.Contains(t, gemini.prompts[0], "Job Description:")
	assert.Contains(t, gemini.prompts[0], "Backend engineer at Acme")
}

func TestAnalyze_EmptyPDFText(t *testing.T) {
	analyzer := NewAnalyzerService(&stubGemini{}, nil, &stubParser{err: ErrNoTextContent}, 3)

	_, _, err := analyzer.Analyze(context.Background(), "/tmp/resume.pdf", "")

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, 400, analysisErr.StatusCode)
	assert.Equal(t, "Could not extract text from the provided PDF", analysisErr.Message)
}

func TestAnalyze_PDFParseFailure(t *testing.T) {
	analyzer := NewAnalyzerService(&stubGemini{}, nil, &stubParser{err: errors.New("broken xref table")}, 3)

	_, _, err := analyzer.Analyze(context.Background(), "/tmp/resume.pdf", "")

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, 500, analysisErr.StatusCode)
	assert.Contains(t, analysisErr.Message, "Error parsing PDF")
}

func TestAnalyze_ModelFailure(t *testing.T) {
	gemini := &stubGemini{err: errors.New("quota exceeded")}
	analyzer := NewAnalyzerService(gemini, nil, &stubParser{text: "resume text"}, 3)

	_, _, err := analyzer.Analyze(context.Background(), "/tmp/resume.pdf", "")

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, 500, analysisErr.StatusCode)
}

func TestAnalyze_BlockedContent(t *testing.T) {
	gemini := &stubGemini{err: &ContentBlockedError{Reason: "SAFETY"}}
	analyzer := NewAnalyzerService(gemini, nil, &stubParser{text: "resume text"}, 3)

	_, _, err := analyzer.Analyze(context.Background(), "/tmp/resume.pdf", "")

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, 400, analysisErr.StatusCode)
	assert.Equal(t, "Analysis failed: The content was blocked for safety reasons (SAFETY).", analysisErr.Message)
}

func TestAnalyze_EmptyModelResponse(t *testing.T) {
	gemini := &stubGemini{response: "   "}
	analyzer := NewAnalyzerService(gemini, nil, &stubParser{text: "resume text"}, 3)

	_, _, err := analyzer.Analyze(context.Background(), "/tmp/resume.pdf", "")

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, 400, analysisErr.StatusCode)
	assert.Equal(t, "Analysis failed: The AI model returned an empty response.", analysisErr.Message)
}

func TestAnalyze_UnparseableResponsePassesThrough(t *testing.T) {
	gemini := &stubGemini{response: "  the model rambled instead of answering  "}
	analyzer := NewAnalyzerService(gemini, nil, &stubParser{text: "resume text"}, 3)

	body, analysis, err := analyzer.Analyze(context.Background(), "/tmp/resume.pdf", "")
	require.NoError(t, err)

	assert.Equal(t, "the model rambled instead of answering", body)
	assert.Nil(t, analysis)
}

func TestCleanModelResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "fenced json block",
			raw:  "Here you go:\n```json\n{\"ats_score\": 90}\n```\nHope that helps!",
			want: `{"ats_score": 90}`,
		},
		{
			name: "bare json",
			raw:  `{"ats_score": 90}`,
			want: `{"ats_score": 90}`,
		},
		{
			name: "fenced block with invalid json falls back to raw",
			raw:  "```json\n{broken\n```",
			want: "```json\n{broken\n```",
		},
		{
			name: "plain text",
			raw:  "  no json here  ",
			want: "no json here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanModelResponse(tt.raw))
		})
	}
}

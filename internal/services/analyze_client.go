package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"resumeinsight/resume-analyzer/internal/models"
)

// RequestFailedError reports a non-2xx reply from the analysis endpoint. The
// message comes from the endpoint's JSON error field when it has one.
type RequestFailedError struct {
	Message string
}

func (e *RequestFailedError) Error() string {
	return e.Message
}

// ResponseParseError reports a 2xx reply whose body was not valid JSON.
type ResponseParseError struct {
	Err error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("failed to parse analysis response: %v", e.Err)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Err
}

// AnalyzeClient submits resumes to the analysis endpoint on behalf of the
// web form flow.
type AnalyzeClient interface {
	Submit(ctx context.Context, filename string, resume io.Reader, jobDescription string) (*models.Analysis, error)
}

type analyzeClient struct {
	endpoint   string
	httpClient *http.Client
}

func NewAnalyzeClient(endpoint string) AnalyzeClient {
	return &analyzeClient{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
}

// Submit performs a single best-effort multipart POST. No retries and no
// cancellation of an in-flight request.
func (c *analyzeClient) Submit(ctx context.Context, filename string, resume io.Reader, jobDescription string) (*models.Analysis, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("resume", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, resume); err != nil {
		return nil, fmt.Errorf("failed to copy resume into form: %w", err)
	}

	if jobDescription != "" {
		if err := writer.WriteField("job_description", jobDescription); err != nil {
			return nil, fmt.Errorf("failed to write job description field: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach analysis endpoint: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp models.ErrorResponse
		if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
			return nil, &RequestFailedError{Message: errResp.Error}
		}
		return nil, &RequestFailedError{
			Message: fmt.Sprintf("Server returned an error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}

	var analysis models.Analysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, &ResponseParseError{Err: err}
	}

	return &analysis, nil
}

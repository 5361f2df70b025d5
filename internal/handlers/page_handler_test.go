package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeinsight/resume-analyzer/internal/services"
	"resumeinsight/resume-analyzer/internal/views"
)

func newPageApp(endpoint string) *fiber.App {
	app := fiber.New()
	handler := NewPageHandler(services.NewAnalyzeClient(endpoint))
	app.Get("/", handler.HandleIndex)
	app.Post("/analyze", handler.HandleAnalyze)
	return app
}

func newFormRequest(t *testing.T, withFile bool, jobDescription string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if withFile {
		part, err := writer.CreateFormFile("resume", "resume.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 fake resume"))
		require.NoError(t, err)
	}
	if jobDescription != "" {
		require.NoError(t, writer.WriteField("job_description", jobDescription))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestPageHandler_Index(t *testing.T) {
	app := newPageApp("http://localhost:0")

	status, html := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, html, `action="/analyze"`)
	assert.Contains(t, html, views.FilenamePlaceholder)
}

func TestPageHandler_MatchAnalysisRendered(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"match_score":75,"summary":"Solid fit.","missing_keywords":["AWS"],"tailoring_suggestions":["Mention AWS"]}`))
	}))
	defer backend.Close()

	app := newPageApp(backend.URL)
	status, html := doRequest(t, app, newFormRequest(t, true, "some job"))

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, html, "75/100")
	assert.Contains(t, html, "Solid fit.")
	assert.Contains(t, html, "AWS")
	assert.Contains(t, html, "Analyze Another Resume")
}

func TestPageHandler_GeneralAnalysisRendered(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"strengths":["Clear layout"],"feedback":["Add numbers"],"job_suggestions":["Data Analyst"]}`))
	}))
	defer backend.Close()

	app := newPageApp(backend.URL)
	status, html := doRequest(t, app, newFormRequest(t, true, ""))

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, html, "N/A")
	assert.Contains(t, html, "Clear layout")
	assert.Contains(t, html, "keywords=Data+Analyst")
	assert.Contains(t, html, "Analyze Another Resume")
}

func TestPageHandler_ErrorFieldMessageShown(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Could not extract text from the provided PDF"}`))
	}))
	defer backend.Close()

	app := newPageApp(backend.URL)
	status, html := doRequest(t, app, newFormRequest(t, true, ""))

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, html, views.ErrorBoxTitle)
	assert.Contains(t, html, "Could not extract text from the provided PDF")
	assert.Contains(t, html, "Analyze Another Resume")
}

func TestPageHandler_StatusFallbackMessageShown(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>nope</html>"))
	}))
	defer backend.Close()

	app := newPageApp(backend.URL)
	_, html := doRequest(t, app, newFormRequest(t, true, ""))

	assert.Contains(t, html, "Server returned an error: 500 Internal Server Error")
}

func TestPageHandler_ParseFailureMessageShown(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("definitely not json"))
	}))
	defer backend.Close()

	app := newPageApp(backend.URL)
	_, html := doRequest(t, app, newFormRequest(t, true, ""))

	assert.Contains(t, html, views.ParseFailureMessage)
}

func TestPageHandler_MissingFile(t *testing.T) {
	app := newPageApp("http://localhost:0")

	_, html := doRequest(t, app, newFormRequest(t, false, "job only"))

	assert.Contains(t, html, views.ErrorBoxTitle)
	assert.Contains(t, html, "Please choose a resume file to analyze.")
}

package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"resumeinsight/resume-analyzer/internal/services"
	"resumeinsight/resume-analyzer/internal/views"
)

// PageHandler drives the server-rendered form flow: upload page, submission
// to the analysis endpoint, and result or error rendering.
type PageHandler struct {
	client services.AnalyzeClient
}

func NewPageHandler(client services.AnalyzeClient) *PageHandler {
	return &PageHandler{client: client}
}

// HandleIndex handles GET /
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	html, err := views.RenderIndex()
	if err != nil {
		return err
	}
	c.Type("html")
	return c.SendString(html)
}

// HandleAnalyze handles POST /analyze. One best-effort submission per
// request; every outcome renders the results page with the reset action.
func (h *PageHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return h.renderError(c, "Please choose a resume file to analyze.")
	}

	jobDescription := c.FormValue("job_description")

	src, err := file.Open()
	if err != nil {
		return h.renderError(c, fmt.Sprintf("Could not read the uploaded file: %v", err))
	}
	defer src.Close()

	analysis, err := h.client.Submit(c.UserContext(), file.Filename, src, jobDescription)
	if err != nil {
		return h.renderError(c, submissionErrorMessage(err))
	}

	html, err := views.RenderAnalysis(analysis)
	if err != nil {
		return err
	}
	c.Type("html")
	return c.SendString(html)
}

func (h *PageHandler) renderError(c *fiber.Ctx, message string) error {
	html, err := views.RenderError(message)
	if err != nil {
		return err
	}
	c.Type("html")
	return c.SendString(html)
}

// submissionErrorMessage maps a submission failure to the user-facing text.
func submissionErrorMessage(err error) string {
	var requestErr *services.RequestFailedError
	if errors.As(err, &requestErr) {
		return requestErr.Message
	}

	var parseErr *services.ResponseParseError
	if errors.As(err, &parseErr) {
		return views.ParseFailureMessage
	}

	log.Printf("❌ Resume submission failed: %v\n", err)
	return fmt.Sprintf("An unexpected error occurred: %v", err)
}

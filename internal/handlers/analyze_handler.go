package handlers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumeinsight/resume-analyzer/internal/models"
	"resumeinsight/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	storage     services.StorageService
	recorder    services.Recorder
	maxFileSize int64
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	storage services.StorageService,
	recorder services.Recorder,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		storage:     storage,
		recorder:    recorder,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file provided",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != ".pdf" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only PDF resumes are supported",
		})
	}

	jobDescription := c.FormValue("job_description")

	_, filePath, err := h.storage.SaveResume(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	body, analysis, err := h.analyzer.Analyze(c.UserContext(), filePath, jobDescription)
	if err != nil {
		var analysisErr *services.AnalysisError
		if errors.As(err, &analysisErr) {
			return c.Status(analysisErr.StatusCode).JSON(fiber.Map{
				"error": analysisErr.Message,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("An unexpected server error occurred. Error: %v", err),
		})
	}

	if analysis != nil && h.recorder != nil {
		h.recorder.Enqueue(buildRecord(file.Filename, jobDescription, body, analysis))
	}

	c.Type("json")
	return c.SendString(body)
}

func buildRecord(originalName, jobDescription, body string, analysis *models.Analysis) *models.AnalysisRecord {
	record := &models.AnalysisRecord{
		ID:                uuid.New(),
		Filename:          originalName,
		Kind:              analysis.Kind(),
		HasJobDescription: strings.TrimSpace(jobDescription) != "",
		RawResponse:       body,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	switch record.Kind {
	case models.KindMatch:
		record.Score = analysis.MatchScore
	case models.KindGeneral:
		record.Score = analysis.ATSScore
	}

	return record
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumeinsight/resume-analyzer/internal/repositories"
)

type RecordHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewRecordHandler(analysisRepo repositories.AnalysisRepository) *RecordHandler {
	return &RecordHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleGetRecord handles GET /api/v1/analyses/:id
func (h *RecordHandler) HandleGetRecord(c *fiber.Ctx) error {
	idParam := c.Params("id")
	recordID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis record ID format",
		})
	}

	record, err := h.analysisRepo.FindByID(recordID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis record not found",
		})
	}

	return c.JSON(record)
}

// HandleListRecords handles GET /api/v1/analyses
func (h *RecordHandler) HandleListRecords(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	records, err := h.analysisRepo.FindRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list analysis records",
		})
	}

	return c.JSON(fiber.Map{
		"analyses": records,
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"examshorts/api-gateway/internal/videogen"
	"examshorts/api-gateway/utils"
)

// ListExams returns all exams.
// GET /exams
func (h *ApplicationHandler) ListExams(c *fiber.Ctx) error {
	exams, err := h.Catalog.ListExams(c.Context())
	if err != nil {
		h.Logger.Errorf("Error listing exams: %v", err)
		return utils.RespondWithError(c, fiber.StatusBadGateway, "Could not retrieve exams")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, exams)
}

// ListCourses returns the courses for one exam.
// GET /courses?exam_id=
func (h *ApplicationHandler) ListCourses(c *fiber.Ctx) error {
	examIDParam := c.Query("exam_id")
	if examIDParam == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "exam_id query parameter is required")
	}

	examID, err := uuid.Parse(examIDParam)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid exam_id format")
	}

	courses, err := h.Catalog.ListCourses(c.Context(), examID)
	if err != nil {
		h.Logger.Errorf("Error listing courses for exam %s: %v", examID, err)
		return utils.RespondWithError(c, fiber.StatusBadGateway, "Could not retrieve courses")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, courses)
}

// ListTemplates returns the fixed visual template catalog.
// GET /templates
func (h *ApplicationHandler) ListTemplates(c *fiber.Ctx) error {
	return utils.RespondWithJSON(c, fiber.StatusOK, videogen.Templates())
}

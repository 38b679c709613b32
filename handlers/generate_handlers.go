package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"examshorts/api-gateway/internal/store"
	"examshorts/api-gateway/internal/videogen"
	"examshorts/api-gateway/utils"
)

// GenerateVideoPayload defines the expected JSON body for a generation request.
type GenerateVideoPayload struct {
	ExamID   string `json:"exam_id" validate:"required,uuid"`
	CourseID string `json:"course_id" validate:"required,uuid"`
	VoiceID  string `json:"voice_id,omitempty"`
}

var validate = validator.New()

// GenerateVideo runs the full fetch -> generate -> assemble flow and returns
// the video preview.
// POST /generate-video
func (h *ApplicationHandler) GenerateVideo(c *fiber.Ctx) error {
	payload := new(GenerateVideoPayload)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse JSON body")
	}

	if err := validate.Struct(payload); err != nil {
		errs := utils.FormatValidationErrors(err)
		return utils.RespondWithError(c, fiber.StatusBadRequest, strings.Join(errs, ", "))
	}

	// Validation already guarantees parseable UUIDs.
	examID := uuid.MustParse(payload.ExamID)
	courseID := uuid.MustParse(payload.CourseID)

	video, err := h.Generator.Generate(c.Context(), examID, courseID, payload.VoiceID)
	if err != nil {
		switch {
		case errors.Is(err, videogen.ErrBusy):
			return utils.RespondWithError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, store.ErrNotFound):
			return utils.RespondWithError(c, fiber.StatusNotFound, "Exam not found")
		case errors.Is(err, videogen.ErrNoQuestions):
			return utils.RespondWithError(c, fiber.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, videogen.ErrGenerationFailed):
			h.Logger.Errorf("Script generation failed for exam %s: %v", examID, err)
			return utils.RespondWithError(c, fiber.StatusBadGateway, "Script generation failed")
		default:
			h.Logger.Errorf("Video generation failed for exam %s: %v", examID, err)
			return utils.RespondWithError(c, fiber.StatusInternalServerError, "Video generation failed")
		}
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, video)
}

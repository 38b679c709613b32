package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"examshorts/api-gateway/models"
)

// CatalogStore defines the read operations handlers expect from the data
// layer. This allows for decoupling and easier testing.
type CatalogStore interface {
	ListExams(ctx context.Context) ([]models.Exam, error)
	ListCourses(ctx context.Context, examID uuid.UUID) ([]models.Course, error)
}

// VideoGenerator runs one full generation request.
type VideoGenerator interface {
	Generate(ctx context.Context, examID, courseID uuid.UUID, voiceID string) (*models.GeneratedVideo, error)
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Catalog   CatalogStore
	Generator VideoGenerator
	Logger    *logrus.Logger
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(catalog CatalogStore, generator VideoGenerator, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		Catalog:   catalog,
		Generator: generator,
		Logger:    logger,
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"examshorts/api-gateway/internal/store"
	"examshorts/api-gateway/internal/videogen"
	"examshorts/api-gateway/models"
)

type stubCatalog struct {
	exams      []models.Exam
	examsErr   error
	courses    []models.Course
	coursesErr error
}

func (s *stubCatalog) ListExams(_ context.Context) ([]models.Exam, error) {
	return s.exams, s.examsErr
}

func (s *stubCatalog) ListCourses(_ context.Context, _ uuid.UUID) ([]models.Course, error) {
	return s.courses, s.coursesErr
}

type stubGenerator struct {
	video *models.GeneratedVideo
	err   error
}

func (s *stubGenerator) Generate(_ context.Context, _, _ uuid.UUID, _ string) (*models.GeneratedVideo, error) {
	return s.video, s.err
}

func newTestApp(catalog CatalogStore, generator VideoGenerator) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	h := NewApplicationHandler(catalog, generator, logger)

	app := fiber.New()
	app.Get("/exams", h.ListExams)
	app.Get("/courses", h.ListCourses)
	app.Get("/templates", h.ListTemplates)
	app.Post("/generate-video", h.GenerateVideo)
	return app
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestListExams(t *testing.T) {
	catalog := &stubCatalog{exams: []models.Exam{{ID: uuid.New(), Name: "JEE Main"}}}
	app := newTestApp(catalog, &stubGenerator{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/exams", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "success", env.Status)

	var exams []models.Exam
	require.NoError(t, json.Unmarshal(env.Data, &exams))
	require.Len(t, exams, 1)
	assert.Equal(t, "JEE Main", exams[0].Name)
}

func TestListCoursesRequiresExamID(t *testing.T) {
	app := newTestApp(&stubCatalog{}, &stubGenerator{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/courses", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/courses?exam_id=not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListTemplates(t *testing.T) {
	app := newTestApp(&stubCatalog{}, &stubGenerator{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/templates", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var templates []models.VideoTemplate
	require.NoError(t, json.Unmarshal(env.Data, &templates))
	assert.Len(t, templates, 5)
}

func postGenerate(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/generate-video", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGenerateVideoValidation(t *testing.T) {
	app := newTestApp(&stubCatalog{}, &stubGenerator{})

	resp := postGenerate(t, app, `{"exam_id":"not-a-uuid","course_id":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, env.Message, "ExamID")
}

func TestGenerateVideoBusy(t *testing.T) {
	app := newTestApp(&stubCatalog{}, &stubGenerator{err: videogen.ErrBusy})

	resp := postGenerate(t, app, `{"exam_id":"`+uuid.NewString()+`","course_id":"`+uuid.NewString()+`"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestGenerateVideoExamNotFound(t *testing.T) {
	generator := &stubGenerator{err: fmt.Errorf("fetching exam: %w", store.ErrNotFound)}
	app := newTestApp(&stubCatalog{}, generator)

	resp := postGenerate(t, app, `{"exam_id":"`+uuid.NewString()+`","course_id":"`+uuid.NewString()+`"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "Exam not found", env.Message)
}

func TestGenerateVideoNoQuestions(t *testing.T) {
	app := newTestApp(&stubCatalog{}, &stubGenerator{err: videogen.ErrNoQuestions})

	resp := postGenerate(t, app, `{"exam_id":"`+uuid.NewString()+`","course_id":"`+uuid.NewString()+`"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGenerateVideoSuccess(t *testing.T) {
	video := videogen.Assemble(
		"Hello there. Question time! Follow us.",
		[]models.Question{{ID: uuid.New(), Answer: "A", Solution: "Because."}},
		"JEE Main",
		videogen.Templates()[0],
		"",
		time.Now(),
	)
	app := newTestApp(&stubCatalog{}, &stubGenerator{video: &video})

	resp := postGenerate(t, app, `{"exam_id":"`+uuid.NewString()+`","course_id":"`+uuid.NewString()+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var got models.GeneratedVideo
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, video.Script, got.Script)
	assert.Equal(t, video.TotalDuration, got.TotalDuration)
	assert.Len(t, got.Captions, len(video.Captions))
}

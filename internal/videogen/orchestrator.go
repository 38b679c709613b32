package videogen

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"examshorts/api-gateway/models"
)

// State tracks where the generation flow is: waiting for a selection,
// running a request, or holding a finished preview.
type State string

const (
	StateSelection  State = "selection"
	StateGenerating State = "generating"
	StatePreview    State = "preview"
)

var (
	// ErrBusy is returned when a generation request arrives while another
	// one is still in flight. In-flight requests are never cancelled.
	ErrBusy = errors.New("a video generation request is already in progress")

	// ErrNoQuestions is returned when the course traversal yields an empty
	// question set. An empty video is never produced.
	ErrNoQuestions = errors.New("no questions found for the selected course")

	// ErrGenerationFailed wraps failures of the text-generation call.
	ErrGenerationFailed = errors.New("script generation failed")
)

// QuestionSource is the read contract the orchestrator needs from the
// database layer.
type QuestionSource interface {
	GetExam(ctx context.Context, id uuid.UUID) (models.Exam, error)
	FetchQuestions(ctx context.Context, courseID uuid.UUID) ([]models.Question, error)
}

// ScriptGenerator is the contract for the external text-generation API.
type ScriptGenerator interface {
	GenerateScript(ctx context.Context, prompt string) (string, error)
}

// Orchestrator sequences one generation request at a time:
// exam fetch -> question fetch -> prompt -> script generation -> assembly.
// Any failure aborts the whole request and returns the flow to the selection
// state; no partial result is ever exposed.
type Orchestrator struct {
	source    QuestionSource
	generator ScriptGenerator
	logger    *logrus.Logger

	mu     sync.Mutex
	state  State
	result *models.GeneratedVideo
	rng    *rand.Rand
	now    func() time.Time
}

// NewOrchestrator builds an orchestrator in the selection state. rng seeds
// template selection and may be fixed in tests; now defaults to time.Now.
func NewOrchestrator(source QuestionSource, generator ScriptGenerator, logger *logrus.Logger, rng *rand.Rand) *Orchestrator {
	return &Orchestrator{
		source:    source,
		generator: generator,
		logger:    logger,
		state:     StateSelection,
		rng:       rng,
		now:       time.Now,
	}
}

// State returns the current flow state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Result returns the last successful generation, or nil outside the preview
// state.
func (o *Orchestrator) Result() *models.GeneratedVideo {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.result
}

// Reset discards any held result and returns the flow to selection.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = StateSelection
	o.result = nil
}

// Generate runs one full generation request. A request that arrives while
// another is in flight is rejected with ErrBusy; the pending one keeps
// running. On success the flow moves to preview and the result is returned;
// on any failure the flow returns to selection and the error is surfaced.
func (o *Orchestrator) Generate(ctx context.Context, examID, courseID uuid.UUID, voiceID string) (*models.GeneratedVideo, error) {
	o.mu.Lock()
	if o.state == StateGenerating {
		o.mu.Unlock()
		return nil, ErrBusy
	}
	o.state = StateGenerating
	o.result = nil
	template := PickTemplate(o.rng)
	o.mu.Unlock()

	log := o.logger.WithFields(logrus.Fields{
		"exam_id":   examID,
		"course_id": courseID,
	})

	exam, err := o.source.GetExam(ctx, examID)
	if err != nil {
		return nil, o.fail(log, fmt.Errorf("fetching exam: %w", err))
	}

	questions, err := o.source.FetchQuestions(ctx, courseID)
	if err != nil {
		return nil, o.fail(log, fmt.Errorf("fetching questions: %w", err))
	}
	if len(questions) == 0 {
		return nil, o.fail(log, ErrNoQuestions)
	}

	prompt := BuildPrompt(questions, exam.Name)
	script, err := o.generator.GenerateScript(ctx, prompt)
	if err != nil {
		return nil, o.fail(log, fmt.Errorf("%w: %v", ErrGenerationFailed, err))
	}

	video := Assemble(script, questions, exam.Name, template, voiceID, o.now())

	o.mu.Lock()
	o.state = StatePreview
	o.result = &video
	o.mu.Unlock()

	log.WithFields(logrus.Fields{
		"question_count": video.Metadata.QuestionCount,
		"template_id":    video.Metadata.TemplateID,
		"total_duration": video.TotalDuration,
	}).Info("Generated video preview")

	return &video, nil
}

func (o *Orchestrator) fail(log *logrus.Entry, err error) error {
	o.mu.Lock()
	o.state = StateSelection
	o.result = nil
	o.mu.Unlock()

	log.WithField("error", err.Error()).Warn("Video generation aborted")
	return err
}

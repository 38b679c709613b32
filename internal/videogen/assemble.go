package videogen

import (
	"time"

	"examshorts/api-gateway/internal/captions"
	"examshorts/api-gateway/models"
)

// DefaultVoiceID is used when a request does not name a voice.
const DefaultVoiceID = "en-US-standard-1"

// Assemble composes the full generated-video preview: the caption timeline
// for the script, a trailing solution-reveal segment, a placeholder
// voice-over descriptor and generation metadata. Inputs are assumed valid;
// the orchestrator rejects bad requests before this point.
func Assemble(script string, questions []models.Question, examName string, template models.VideoTemplate, voiceID string, now time.Time) models.GeneratedVideo {
	if voiceID == "" {
		voiceID = DefaultVoiceID
	}

	timeline := captions.BuildTimeline(script)

	revealStart := 0.0
	if n := len(timeline); n > 0 {
		revealStart = timeline[n-1].EndTime
	}
	reveal := captions.SolutionSegment(solutionRevealText(questions), revealStart, len(timeline))
	timeline = append(timeline, reveal)

	return models.GeneratedVideo{
		Script:   script,
		Captions: timeline,
		VoiceOver: models.VoiceOver{
			VoiceID:           voiceID,
			EstimatedDuration: captions.EstimateSpeechSeconds(script),
			Text:              script,
			Status:            models.VoiceOverStatusPlaceholder,
		},
		Template:      template,
		TotalDuration: reveal.EndTime,
		Questions:     questions,
		ExamName:      examName,
		Metadata: models.GenerationMetadata{
			QuestionCount: len(questions),
			GeneratedAt:   now,
			TemplateID:    template.ID,
		},
	}
}

package models

import "time"

// VoiceOverStatusPlaceholder marks a voice-over descriptor that has not been
// synthesized; this service never produces actual audio.
const VoiceOverStatusPlaceholder = "placeholder"

// VoiceOver describes an intended (not yet produced) narration audio asset.
type VoiceOver struct {
	VoiceID           string `json:"voice_id"`
	EstimatedDuration int    `json:"estimated_duration"`
	Text              string `json:"text"`
	Status            string `json:"status"`
}

// GenerationMetadata carries bookkeeping about one generation request.
type GenerationMetadata struct {
	QuestionCount int       `json:"question_count"`
	GeneratedAt   time.Time `json:"generated_at"`
	TemplateID    string    `json:"template_id"`
}

// GeneratedVideo is the full conceptual preview produced for one request:
// script text, caption timeline, voice-over descriptor, the selected template
// and the question set the script was generated from. It is never persisted.
type GeneratedVideo struct {
	Script        string             `json:"script"`
	Captions      []CaptionSegment   `json:"captions"`
	VoiceOver     VoiceOver          `json:"voice_over"`
	Template      VideoTemplate      `json:"template"`
	TotalDuration float64            `json:"total_duration"`
	Questions     []Question         `json:"questions"`
	ExamName      string             `json:"exam_name"`
	Metadata      GenerationMetadata `json:"metadata"`
}

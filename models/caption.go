package models

// HighlightCategory tags a caption segment with the visual emphasis a
// downstream rendering step should apply to it.
type HighlightCategory string

const (
	HighlightQuestion HighlightCategory = "question-highlight"
	HighlightOption   HighlightCategory = "option-highlight"
	HighlightCTA      HighlightCategory = "cta-highlight"
	HighlightDefault  HighlightCategory = "default-highlight"
	SolutionDisplay   HighlightCategory = "solution-display"
)

// CaptionSegment represents one timed caption in a generated video's timeline.
// Segments are contiguous: a segment's start time equals the previous
// segment's end time, beginning at 0.
type CaptionSegment struct {
	Index     int               `json:"index"`
	Text      string            `json:"text"`
	StartTime float64           `json:"start_time"`
	EndTime   float64           `json:"end_time"`
	Category  HighlightCategory `json:"category"`
}

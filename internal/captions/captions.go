// Package captions turns a generated script into a timed caption timeline.
//
// Two distinct speaking-rate constants live here on purpose: the voice-over
// estimator assumes 150 words per minute rounded up to whole seconds, while
// caption pacing uses 0.4 seconds per word with a 2-second floor per
// sentence. They are not interchangeable and must not be merged.
package captions

import (
	"math"
	"strings"

	"examshorts/api-gateway/models"
)

const (
	// narrationWordsPerMinute is the assumed voice-over speaking rate.
	narrationWordsPerMinute = 150.0

	// captionSecondsPerWord is the caption display pacing rate.
	captionSecondsPerWord = 0.4

	// minCaptionSeconds is the floor applied to every caption segment.
	minCaptionSeconds = 2.0

	// solutionRevealSeconds is the fixed length of the trailing
	// solution-reveal segment.
	solutionRevealSeconds = 5.0
)

// EstimateSpeechSeconds returns the estimated spoken duration of text at the
// narration rate, rounded up to the next whole second. Zero words yield 0.
func EstimateSpeechSeconds(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / narrationWordsPerMinute * 60))
}

// highlightRule pairs a predicate with the category it assigns. Rules are
// evaluated top to bottom and the first match wins, so rule order carries
// precedence.
type highlightRule struct {
	matches  func(lower string) bool
	category models.HighlightCategory
}

func containsAny(subs ...string) func(string) bool {
	return func(lower string) bool {
		for _, s := range subs {
			if strings.Contains(lower, s) {
				return true
			}
		}
		return false
	}
}

var highlightRules = []highlightRule{
	{containsAny("question"), models.HighlightQuestion},
	{containsAny("option"), models.HighlightOption},
	{containsAny("follow", "comment"), models.HighlightCTA},
}

func classify(text string) models.HighlightCategory {
	lower := strings.ToLower(text)
	for _, rule := range highlightRules {
		if rule.matches(lower) {
			return rule.category
		}
	}
	return models.HighlightDefault
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// splitSentences breaks a script into sentence units on terminal punctuation
// (. ! ?), keeping the terminator with its sentence. A run of terminators
// stays attached to its sentence, so "Wait... what?" is two units, not four.
// A unit only ends once it holds something besides terminators; a script
// without any terminator is one unit, and an empty script is one empty unit.
func splitSentences(script string) []string {
	var units []string
	var current strings.Builder
	hasContent := false
	runes := []rune(script)
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])
		if !isTerminator(runes[i]) {
			hasContent = true
			continue
		}
		if !hasContent {
			continue
		}
		for i+1 < len(runes) && isTerminator(runes[i+1]) {
			i++
			current.WriteRune(runes[i])
		}
		if unit := strings.TrimSpace(current.String()); unit != "" {
			units = append(units, unit)
		}
		current.Reset()
		hasContent = false
	}
	if unit := strings.TrimSpace(current.String()); unit != "" {
		units = append(units, unit)
	}
	if len(units) == 0 {
		units = []string{strings.TrimSpace(script)}
	}
	return units
}

// BuildTimeline segments a script into sentence-level captions with
// contiguous start/end times beginning at 0 and a highlight category per
// segment.
func BuildTimeline(script string) []models.CaptionSegment {
	units := splitSentences(script)

	segments := make([]models.CaptionSegment, 0, len(units))
	elapsed := 0.0
	for i, unit := range units {
		words := len(strings.Fields(unit))
		duration := math.Max(minCaptionSeconds, float64(words)*captionSecondsPerWord)
		segments = append(segments, models.CaptionSegment{
			Index:     i,
			Text:      unit,
			StartTime: elapsed,
			EndTime:   elapsed + duration,
			Category:  classify(unit),
		})
		elapsed += duration
	}
	return segments
}

// SolutionSegment builds the trailing solution-reveal segment, starting where
// the caption timeline ended.
func SolutionSegment(text string, after float64, index int) models.CaptionSegment {
	return models.CaptionSegment{
		Index:     index,
		Text:      text,
		StartTime: after,
		EndTime:   after + solutionRevealSeconds,
		Category:  models.SolutionDisplay,
	}
}

package videogen

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"examshorts/api-gateway/models"
)

func sampleQuestions() []models.Question {
	return []models.Question{
		{
			ID:        uuid.New(),
			Statement: "What is 2 + 2?",
			Options:   map[string]string{"A": "3", "B": "4", "C": "5"},
			Answer:    "B",
			Solution:  "Two plus two equals four.",
		},
		{
			ID:        uuid.New(),
			Statement: "What is the square root of 9?",
			Options:   map[string]string{"A": "3", "B": "9"},
			Answer:    "A",
			Solution:  "Three times three is nine.",
		},
	}
}

func TestAssembleAppendsSolutionSegment(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	template := Templates()[0]

	video := Assemble("Hello there. Question one: what is two plus two? Follow us!", sampleQuestions(), "JEE Main", template, "", now)

	require.Len(t, video.Captions, 4)
	reveal := video.Captions[3]

	assert.Equal(t, models.SolutionDisplay, reveal.Category)
	assert.InDelta(t, 6.8, reveal.StartTime, 1e-9)
	assert.InDelta(t, 11.8, reveal.EndTime, 1e-9)
	assert.InDelta(t, 5.0, reveal.EndTime-reveal.StartTime, 1e-9)
	assert.Equal(t, 3, reveal.Index)

	assert.Contains(t, reveal.Text, "1. Answer: B. Two plus two equals four.")
	assert.Contains(t, reveal.Text, "2. Answer: A. Three times three is nine.")
	assert.Len(t, strings.Split(reveal.Text, "\n"), 2)
}

func TestAssembleTotalDurationMatchesLastSegment(t *testing.T) {
	scripts := []string{
		"Hello there. Question one: what is two plus two? Follow us!",
		"One sentence only",
		"",
	}
	for _, script := range scripts {
		video := Assemble(script, sampleQuestions(), "NEET", Templates()[1], "narrator-2", time.Now())
		last := video.Captions[len(video.Captions)-1]
		assert.Equal(t, last.EndTime, video.TotalDuration)
	}
}

func TestAssembleEmptyQuestionSet(t *testing.T) {
	video := Assemble("Hello there.", nil, "NEET", Templates()[2], "", time.Now())

	require.Len(t, video.Captions, 2)
	reveal := video.Captions[1]
	assert.Equal(t, "", reveal.Text)
	assert.Equal(t, models.SolutionDisplay, reveal.Category)
	assert.InDelta(t, 5.0, reveal.EndTime-reveal.StartTime, 1e-9)
	assert.Equal(t, 0, video.Metadata.QuestionCount)
}

func TestAssembleEmptyScript(t *testing.T) {
	video := Assemble("", sampleQuestions(), "NEET", Templates()[0], "", time.Now())

	require.Len(t, video.Captions, 2)
	assert.InDelta(t, 2.0, video.Captions[0].EndTime, 1e-9)
	assert.InDelta(t, 2.0, video.Captions[1].StartTime, 1e-9)
	assert.InDelta(t, 7.0, video.Captions[1].EndTime, 1e-9)
	assert.InDelta(t, 7.0, video.TotalDuration, 1e-9)
}

func TestAssembleVoiceOverDescriptor(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	template := Templates()[4]
	script := "Hello there. Question one: what is two plus two? Follow us!"

	video := Assemble(script, sampleQuestions(), "JEE Main", template, "", now)

	assert.Equal(t, "JEE Main", video.ExamName)
	assert.Equal(t, DefaultVoiceID, video.VoiceOver.VoiceID)
	assert.Equal(t, models.VoiceOverStatusPlaceholder, video.VoiceOver.Status)
	assert.Equal(t, script, video.VoiceOver.Text)
	// 11 words at 150 wpm, rounded up.
	assert.Equal(t, 5, video.VoiceOver.EstimatedDuration)

	assert.Equal(t, template.ID, video.Metadata.TemplateID)
	assert.Equal(t, now, video.Metadata.GeneratedAt)
	assert.Equal(t, 2, video.Metadata.QuestionCount)

	custom := Assemble(script, nil, "JEE Main", template, "narrator-7", now)
	assert.Equal(t, "narrator-7", custom.VoiceOver.VoiceID)
}

func TestPickTemplateSeededDeterminism(t *testing.T) {
	first := PickTemplate(rand.New(rand.NewSource(42)))
	second := PickTemplate(rand.New(rand.NewSource(42)))
	assert.Equal(t, first, second)

	all := Templates()
	require.Len(t, all, 5)

	rng := rand.New(rand.NewSource(7))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[PickTemplate(rng).ID] = true
	}
	assert.Len(t, seen, len(all), "uniform draw should reach every template")
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleQuestions(), "Joint Entrance Examination")

	assert.Contains(t, prompt, "upcoming Joint Entrance Examination entrance exam")
	assert.Contains(t, prompt, "Question 1: So, the question says: What is 2 + 2?")
	assert.Contains(t, prompt, "Here are your options: A: 3, B: 4, C: 5.")
	assert.Contains(t, prompt, "Question 2: So, the question says: What is the square root of 9?")
	assert.Contains(t, prompt, "under 250 words")
	assert.Contains(t, prompt, "spoken words")
	assert.Contains(t, prompt, "x squared")
	assert.Contains(t, prompt, "Generate ONLY the final script text")

	// Intro, questions and call to action appear in that order.
	intro := strings.Index(prompt, "1. Introduction")
	qs := strings.Index(prompt, "2. Questions")
	cta := strings.Index(prompt, "3. Call to Action")
	assert.True(t, intro >= 0 && intro < qs && qs < cta)
}

func TestExamAcronym(t *testing.T) {
	testCases := []struct {
		name     string
		exam     string
		expected string
	}{
		{name: "short words skipped", exam: "Joint Entrance Examination", expected: "JEE"},
		{name: "two-letter words dropped", exam: "Master of Laws", expected: "ML"},
		{name: "already an acronym", exam: "NEET", expected: "N"},
		{name: "empty name", exam: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, examAcronym(tc.exam))
		})
	}
}

func TestBuildPromptAcronymHook(t *testing.T) {
	prompt := BuildPrompt(sampleQuestions(), "Joint Entrance Examination")
	assert.Contains(t, prompt, "follow and comment 'JEE'")
}

package videogen

import (
	"math/rand"

	"examshorts/api-gateway/models"
)

// templates is the fixed catalog of visual style presets. Hand-authored, not
// derived data.
var templates = []models.VideoTemplate{
	{
		ID:          "gradient-purple",
		Name:        "Gradient Purple",
		Description: "Deep purple gradient with bold white captions",
		Background:  "linear-gradient(135deg, #667eea, #764ba2)",
		AccentColor: "#f6ad55",
		TextColor:   "#ffffff",
	},
	{
		ID:          "minimal-dark",
		Name:        "Minimal Dark",
		Description: "Near-black background with a single neon accent",
		Background:  "#111827",
		AccentColor: "#34d399",
		TextColor:   "#f9fafb",
	},
	{
		ID:          "classroom-green",
		Name:        "Classroom Green",
		Description: "Chalkboard green with hand-drawn style highlights",
		Background:  "#14532d",
		AccentColor: "#fde047",
		TextColor:   "#f0fdf4",
	},
	{
		ID:          "bold-orange",
		Name:        "Bold Orange",
		Description: "High-energy orange with heavy contrast captions",
		Background:  "linear-gradient(180deg, #f97316, #c2410c)",
		AccentColor: "#1e293b",
		TextColor:   "#fff7ed",
	},
	{
		ID:          "ocean-blue",
		Name:        "Ocean Blue",
		Description: "Calm blue wash with soft white text",
		Background:  "linear-gradient(160deg, #0ea5e9, #1e40af)",
		AccentColor: "#facc15",
		TextColor:   "#f0f9ff",
	},
}

// Templates returns a copy of the template catalog.
func Templates() []models.VideoTemplate {
	out := make([]models.VideoTemplate, len(templates))
	copy(out, templates)
	return out
}

// PickTemplate draws one template uniformly at random. The source is
// caller-supplied so tests can seed it.
func PickTemplate(r *rand.Rand) models.VideoTemplate {
	return templates[r.Intn(len(templates))]
}

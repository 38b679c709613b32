package models

// VideoTemplate represents a fixed visual style preset for a generated video.
type VideoTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Background  string `json:"background"`
	AccentColor string `json:"accent_color"`
	TextColor   string `json:"text_color"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Question represents a practice question row in the database.
// Options is a JSONB column mapping option labels (e.g. "A") to option text.
type Question struct {
	ID           uuid.UUID         `json:"id"`
	TopicID      uuid.UUID         `json:"topic_id"`
	Statement    string            `json:"statement"`
	Options      map[string]string `json:"options"`
	Answer       string            `json:"answer"`
	Solution     string            `json:"solution"`
	QuestionType *string           `json:"question_type,omitempty"` // Nullable TEXT
	CreatedAt    time.Time         `json:"created_at"`
}

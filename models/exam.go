package models

import (
	"time"

	"github.com/google/uuid"
)

// Exam represents a top-level exam grouping in the database (e.g. an entrance test).
type Exam struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Course represents a subject-area grouping within an exam.
type Course struct {
	ID        uuid.UUID `json:"id"`
	ExamID    uuid.UUID `json:"exam_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Subject, Unit and Topic are the intermediate levels of the
// course -> subjects -> units -> topics -> questions traversal.
type Subject struct {
	ID       uuid.UUID `json:"id"`
	CourseID uuid.UUID `json:"course_id"`
	Name     string    `json:"name"`
}

type Unit struct {
	ID        uuid.UUID `json:"id"`
	SubjectID uuid.UUID `json:"subject_id"`
	Name      string    `json:"name"`
}

type Topic struct {
	ID     uuid.UUID `json:"id"`
	UnitID uuid.UUID `json:"unit_id"`
	Name   string    `json:"name"`
}

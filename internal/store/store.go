// Package store is the read-only data layer over the hosted Supabase
// database: exams, courses and the course -> subjects -> units -> topics ->
// questions traversal.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"examshorts/api-gateway/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// maxQuestions caps how many questions one generation request uses.
const maxQuestions = 5

// Store reads exam content from Supabase via PostgREST.
type Store struct {
	client *supa.Client
}

// New wraps an initialized Supabase client.
func New(client *supa.Client) *Store {
	return &Store{client: client}
}

// ListExams returns all exams ordered by name.
func (s *Store) ListExams(ctx context.Context) ([]models.Exam, error) {
	bodyBytes, _, err := s.client.From("exams").
		Select("*", "", false).
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("querying exams: %w", err)
	}

	var exams []models.Exam
	if err := json.Unmarshal(bodyBytes, &exams); err != nil {
		return nil, fmt.Errorf("decoding exams: %w", err)
	}
	if exams == nil {
		exams = []models.Exam{}
	}
	return exams, nil
}

// ListCourses returns the courses under one exam, ordered by name.
func (s *Store) ListCourses(ctx context.Context, examID uuid.UUID) ([]models.Course, error) {
	bodyBytes, _, err := s.client.From("courses").
		Select("*", "", false).
		Eq("exam_id", examID.String()).
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}

	var courses []models.Course
	if err := json.Unmarshal(bodyBytes, &courses); err != nil {
		return nil, fmt.Errorf("decoding courses: %w", err)
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// GetExam fetches one exam by id, or ErrNotFound.
func (s *Store) GetExam(ctx context.Context, id uuid.UUID) (models.Exam, error) {
	bodyBytes, _, err := s.client.From("exams").
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return models.Exam{}, fmt.Errorf("querying exam %s: %w", id, err)
	}

	var exams []models.Exam
	if err := json.Unmarshal(bodyBytes, &exams); err != nil {
		return models.Exam{}, fmt.Errorf("decoding exam %s: %w", id, err)
	}
	if len(exams) == 0 {
		return models.Exam{}, ErrNotFound
	}
	return exams[0], nil
}

// FetchQuestions walks course -> subjects -> units -> topics -> questions and
// returns up to maxQuestions questions in creation order. Any level with no
// members short-circuits to an empty set.
func (s *Store) FetchQuestions(ctx context.Context, courseID uuid.UUID) ([]models.Question, error) {
	var subjects []models.Subject
	bodyBytes, _, err := s.client.From("subjects").
		Select("*", "", false).
		Eq("course_id", courseID.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("querying subjects: %w", err)
	}
	if err := json.Unmarshal(bodyBytes, &subjects); err != nil {
		return nil, fmt.Errorf("decoding subjects: %w", err)
	}
	if len(subjects) == 0 {
		return []models.Question{}, nil
	}

	var units []models.Unit
	bodyBytes, _, err = s.client.From("units").
		Select("*", "", false).
		In("subject_id", lo.Map(subjects, func(s models.Subject, _ int) string { return s.ID.String() })).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("querying units: %w", err)
	}
	if err := json.Unmarshal(bodyBytes, &units); err != nil {
		return nil, fmt.Errorf("decoding units: %w", err)
	}
	if len(units) == 0 {
		return []models.Question{}, nil
	}

	var topics []models.Topic
	bodyBytes, _, err = s.client.From("topics").
		Select("*", "", false).
		In("unit_id", lo.Map(units, func(u models.Unit, _ int) string { return u.ID.String() })).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("querying topics: %w", err)
	}
	if err := json.Unmarshal(bodyBytes, &topics); err != nil {
		return nil, fmt.Errorf("decoding topics: %w", err)
	}
	if len(topics) == 0 {
		return []models.Question{}, nil
	}

	var questions []models.Question
	bodyBytes, _, err = s.client.From("questions").
		Select("*", "", false).
		In("topic_id", lo.Map(topics, func(t models.Topic, _ int) string { return t.ID.String() })).
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		Limit(maxQuestions, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("querying questions: %w", err)
	}
	if err := json.Unmarshal(bodyBytes, &questions); err != nil {
		return nil, fmt.Errorf("decoding questions: %w", err)
	}
	if questions == nil {
		questions = []models.Question{}
	}
	return questions, nil
}

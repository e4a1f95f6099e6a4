package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/edustack/attendance-api/internal/models"
)

// SubjectRepository lists subjects taught per course and semester.
type SubjectRepository struct {
	db *sqlx.DB
}

// NewSubjectRepository constructs a SubjectRepository.
func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// ListByCourseAndSemester returns subjects for a resolved course id and
// semester id.
func (r *SubjectRepository) ListByCourseAndSemester(ctx context.Context, courseID, semesterID string) ([]models.Subject, error) {
	const query = `SELECT id, course_id, semester_id, code, name
        FROM subjects
        WHERE course_id = $1 AND semester_id = $2
        ORDER BY code ASC`
	var subjects []models.Subject
	if err := r.db.SelectContext(ctx, &subjects, query, courseID, semesterID); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

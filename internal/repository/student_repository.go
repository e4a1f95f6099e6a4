package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/edustack/attendance-api/internal/models"
)

// StudentRepository reads student identity records. Students are owned by the
// registration module; this service only queries them.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListByCourseAndSemester returns students of a course and semester sorted by
// full name ascending.
func (r *StudentRepository) ListByCourseAndSemester(ctx context.Context, courseID, semesterID string) ([]models.Student, error) {
	const query = `SELECT id, full_name, roll_number, email, course_id, semester_id, password_hash
        FROM students
        WHERE course_id = $1 AND semester_id = $2
        ORDER BY full_name ASC`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, courseID, semesterID); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByID fetches a student by id. Returns sql.ErrNoRows when absent.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	const query = `SELECT id, full_name, roll_number, email, course_id, semester_id, password_hash
        FROM students
        WHERE id = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/edustack/attendance-api/internal/models"
)

// CourseRepository resolves courses. Courses are reference data for this
// service; it never writes them.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// FindByName resolves a course by its display name. Returns sql.ErrNoRows
// when no course matches.
func (r *CourseRepository) FindByName(ctx context.Context, name string) (*models.Course, error) {
	const query = `SELECT id, name FROM courses WHERE name = $1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, name); err != nil {
		return nil, err
	}
	return &course, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/edustack/attendance-api/internal/models"
)

// SummaryRepository reads the denormalized attendance summaries maintained by
// AttendanceRepository.SubmitBatch.
type SummaryRepository struct {
	db *sqlx.DB
}

// NewSummaryRepository constructs a SummaryRepository.
func NewSummaryRepository(db *sqlx.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// ListByStudent returns a student's summaries, optionally filtered by
// academic year, newest first.
func (r *SummaryRepository) ListByStudent(ctx context.Context, studentID, academicYear string) ([]models.AttendanceSummary, error) {
	query := `SELECT id, student_id, course_id, semester_id, subject_code, academic_year,
        total_classes, attended_classes, attendance_percentage, last_updated
        FROM attendance_summaries
        WHERE student_id = $1`
	args := []interface{}{studentID}
	if academicYear != "" {
		query += " AND academic_year = $2"
		args = append(args, academicYear)
	}
	query += " ORDER BY last_updated DESC"

	var summaries []models.AttendanceSummary
	if err := r.db.SelectContext(ctx, &summaries, query, args...); err != nil {
		return nil, fmt.Errorf("list attendance summaries: %w", err)
	}
	return summaries, nil
}

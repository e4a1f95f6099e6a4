package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/edustack/attendance-api/internal/models"
)

// AttendanceRepository persists the append-only attendance history and the
// denormalized per-subject summaries.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs an AttendanceRepository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// SubmitBatch applies one submission inside a single transaction: for every
// entry it appends a record row and folds the mark into the summary keyed by
// (student, course, semester, subject, academic year). Any failure rolls the
// whole batch back.
func (r *AttendanceRepository) SubmitBatch(ctx context.Context, batch models.AttendanceBatch) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin attendance batch: %w", err)
	}
	commit := false
	defer func() {
		if !commit {
			tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	for _, entry := range batch.Entries {
		if err := r.appendRecord(ctx, tx, batch, entry, now); err != nil {
			return err
		}
		if err := r.applySummary(ctx, tx, batch, entry, now); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit attendance batch: %w", err)
	}
	commit = true
	return nil
}

func (r *AttendanceRepository) appendRecord(ctx context.Context, tx *sqlx.Tx, batch models.AttendanceBatch, entry models.BatchEntry, now time.Time) error {
	const query = `INSERT INTO attendance_records (id, student_id, subject_code, date, present, recorded_at)
        VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.ExecContext(ctx, query, uuid.NewString(), entry.StudentID, batch.SubjectCode, batch.Date, entry.Present, now); err != nil {
		return fmt.Errorf("append attendance record for %s: %w", entry.StudentID, err)
	}
	return nil
}

func (r *AttendanceRepository) applySummary(ctx context.Context, tx *sqlx.Tx, batch models.AttendanceBatch, entry models.BatchEntry, now time.Time) error {
	const selectQuery = `SELECT id, student_id, course_id, semester_id, subject_code, academic_year,
        total_classes, attended_classes, attendance_percentage, last_updated
        FROM attendance_summaries
        WHERE student_id = $1 AND course_id = $2 AND semester_id = $3 AND subject_code = $4 AND academic_year = $5
        FOR UPDATE`

	var summary models.AttendanceSummary
	err := tx.GetContext(ctx, &summary, selectQuery, entry.StudentID, batch.CourseID, batch.SemesterID, batch.SubjectCode, batch.AcademicYear)
	if err == sql.ErrNoRows {
		attended := 0
		if entry.Present {
			attended = 1
		}
		const insertQuery = `INSERT INTO attendance_summaries
            (id, student_id, course_id, semester_id, subject_code, academic_year,
             total_classes, attended_classes, attendance_percentage, last_updated)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
		if _, err := tx.ExecContext(ctx, insertQuery,
			uuid.NewString(), entry.StudentID, batch.CourseID, batch.SemesterID, batch.SubjectCode, batch.AcademicYear,
			1, attended, models.Percentage(attended, 1), now,
		); err != nil {
			return fmt.Errorf("create attendance summary for %s: %w", entry.StudentID, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("load attendance summary for %s: %w", entry.StudentID, err)
	}

	summary.TotalClasses++
	if entry.Present {
		summary.AttendedClasses++
	}
	summary.AttendancePercentage = models.Percentage(summary.AttendedClasses, summary.TotalClasses)
	summary.LastUpdated = now

	const updateQuery = `UPDATE attendance_summaries
        SET total_classes = $2, attended_classes = $3, attendance_percentage = $4, last_updated = $5
        WHERE id = $1`
	if _, err := tx.ExecContext(ctx, updateQuery, summary.ID, summary.TotalClasses, summary.AttendedClasses, summary.AttendancePercentage, summary.LastUpdated); err != nil {
		return fmt.Errorf("update attendance summary for %s: %w", entry.StudentID, err)
	}
	return nil
}

// ListEntries returns a student's per-subject history in insertion order.
func (r *AttendanceRepository) ListEntries(ctx context.Context, studentID, subjectCode string) ([]models.AttendanceEntry, error) {
	const query = `SELECT date, present FROM attendance_records
        WHERE student_id = $1 AND subject_code = $2
        ORDER BY recorded_at ASC`
	var entries []models.AttendanceEntry
	if err := r.db.SelectContext(ctx, &entries, query, studentID, subjectCode); err != nil {
		return nil, fmt.Errorf("list attendance entries: %w", err)
	}
	return entries, nil
}

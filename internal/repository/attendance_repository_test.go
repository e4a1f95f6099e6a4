package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustack/attendance-api/internal/models"
)

func newAttendanceMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func testBatch(entries ...models.BatchEntry) models.AttendanceBatch {
	return models.AttendanceBatch{
		CourseID:     "course-1",
		SemesterID:   "3",
		SubjectCode:  "CS301",
		AcademicYear: "2024-25",
		Date:         time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Entries:      entries,
	}
}

func TestSubmitBatchCreatesSummaryOnFirstMark(t *testing.T) {
	db, mock, cleanup := newAttendanceMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO attendance_records").
		WithArgs(sqlmock.AnyArg(), "S1", "CS301", sqlmock.AnyArg(), true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT id, student_id, course_id").
		WithArgs("S1", "course-1", "3", "CS301", "2024-25").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO attendance_summaries").
		WithArgs(sqlmock.AnyArg(), "S1", "course-1", "3", "CS301", "2024-25", 1, 1, 100.0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.SubmitBatch(context.Background(), testBatch(models.BatchEntry{StudentID: "S1", Present: true}))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitBatchFoldsIntoExistingSummary(t *testing.T) {
	db, mock, cleanup := newAttendanceMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	columns := []string{"id", "student_id", "course_id", "semester_id", "subject_code", "academic_year", "total_classes", "attended_classes", "attendance_percentage", "last_updated"}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO attendance_records").
		WithArgs(sqlmock.AnyArg(), "S2", "CS301", sqlmock.AnyArg(), false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT id, student_id, course_id").
		WithArgs("S2", "course-1", "3", "CS301", "2024-25").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("sum-1", "S2", "course-1", "3", "CS301", "2024-25", 9, 5, 55.56, time.Now()))
	// 9 held, 5 attended, one absent mark: 5/10 = 50%.
	mock.ExpectExec("UPDATE attendance_summaries").
		WithArgs("sum-1", 10, 5, 50.0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.SubmitBatch(context.Background(), testBatch(models.BatchEntry{StudentID: "S2", Present: false}))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitBatchRollsBackWholeBatchOnFailure(t *testing.T) {
	db, mock, cleanup := newAttendanceMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO attendance_records").
		WithArgs(sqlmock.AnyArg(), "S1", "CS301", sqlmock.AnyArg(), true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT id, student_id, course_id").
		WithArgs("S1", "course-1", "3", "CS301", "2024-25").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO attendance_summaries").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO attendance_records").
		WithArgs(sqlmock.AnyArg(), "S2", "CS301", sqlmock.AnyArg(), false, sqlmock.AnyArg()).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.SubmitBatch(context.Background(), testBatch(
		models.BatchEntry{StudentID: "S1", Present: true},
		models.BatchEntry{StudentID: "S2", Present: false},
	))
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEntriesPreservesInsertionOrder(t *testing.T) {
	db, mock, cleanup := newAttendanceMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	first := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	second := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT date, present FROM attendance_records").
		WithArgs("S1", "CS301").
		WillReturnRows(sqlmock.NewRows([]string{"date", "present"}).
			AddRow(first, true).
			AddRow(second, false))

	entries, err := repo.ListEntries(context.Background(), "S1", "CS301")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0].Date)
	assert.True(t, entries[0].Present)
	assert.False(t, entries[1].Present)
	assert.NoError(t, mock.ExpectationsWereMet())
}

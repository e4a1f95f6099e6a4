package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var summaryColumns = []string{"id", "student_id", "course_id", "semester_id", "subject_code", "academic_year", "total_classes", "attended_classes", "attendance_percentage", "last_updated"}

func TestSummaryRepositoryListByStudent(t *testing.T) {
	db, mock, cleanup := newCatalogMock(t)
	defer cleanup()
	repo := NewSummaryRepository(db)

	mock.ExpectQuery("SELECT id, student_id, course_id, semester_id, subject_code").
		WithArgs("S1").
		WillReturnRows(sqlmock.NewRows(summaryColumns).
			AddRow("sum-1", "S1", "course-1", "3", "CS301", "2024-25", 10, 5, 50.0, time.Now()))

	summaries, err := repo.ListByStudent(context.Background(), "S1", "")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 10, summaries[0].TotalClasses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryRepositoryListByStudentFiltersYear(t *testing.T) {
	db, mock, cleanup := newCatalogMock(t)
	defer cleanup()
	repo := NewSummaryRepository(db)

	mock.ExpectQuery("SELECT id, student_id, course_id, semester_id, subject_code").
		WithArgs("S1", "2024-25").
		WillReturnRows(sqlmock.NewRows(summaryColumns))

	summaries, err := repo.ListByStudent(context.Background(), "S1", "2024-25")
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

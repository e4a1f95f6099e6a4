package repository

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestCourseRepositoryFindByName(t *testing.T) {
	db, mock, cleanup := newCatalogMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery("SELECT id, name FROM courses").
		WithArgs("B.Tech").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("course-1", "B.Tech"))

	course, err := repo.FindByName(context.Background(), "B.Tech")
	require.NoError(t, err)
	assert.Equal(t, "course-1", course.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryFindByNameMissing(t *testing.T) {
	db, mock, cleanup := newCatalogMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery("SELECT id, name FROM courses").
		WithArgs("Unknown").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByName(context.Background(), "Unknown")
	assert.Equal(t, sql.ErrNoRows, err)
}

func TestSubjectRepositoryList(t *testing.T) {
	db, mock, cleanup := newCatalogMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	mock.ExpectQuery("SELECT id, course_id, semester_id, code, name").
		WithArgs("course-1", "3").
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "semester_id", "code", "name"}).
			AddRow("sub-1", "course-1", "3", "CS301", "Operating Systems").
			AddRow("sub-2", "course-1", "3", "CS302", "Databases"))

	subjects, err := repo.ListByCourseAndSemester(context.Background(), "course-1", "3")
	require.NoError(t, err)
	assert.Len(t, subjects, 2)
	assert.Equal(t, "CS301", subjects[0].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

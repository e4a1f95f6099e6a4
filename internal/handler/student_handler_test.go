package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/edustack/attendance-api/internal/models"
	appErrors "github.com/edustack/attendance-api/pkg/errors"
)

type studentServiceMock struct {
	student *models.Student
	err     error
}

func (m *studentServiceMock) Get(ctx context.Context, id string) (*models.Student, error) {
	return m.student, m.err
}

func TestStudentGet(t *testing.T) {
	mock := &studentServiceMock{student: &models.Student{ID: "S1", FullName: "Alice", Email: "alice@example.com"}}
	h := NewStudentHandler(mock)

	c, recorder := newTestContext(t, http.MethodGet, "/students/S1", "")
	c.Params = gin.Params{{Key: "id", Value: "S1"}}
	h.Get(c)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Alice")
}

func TestStudentGetNotFound(t *testing.T) {
	mock := &studentServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "student not found")}
	h := NewStudentHandler(mock)

	c, recorder := newTestContext(t, http.MethodGet, "/students/missing", "")
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "student not found")
}

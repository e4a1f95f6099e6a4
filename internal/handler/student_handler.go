package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edustack/attendance-api/internal/models"
	"github.com/edustack/attendance-api/pkg/response"
)

type studentService interface {
	Get(ctx context.Context, id string) (*models.Student, error)
}

// StudentHandler exposes student profile reads.
type StudentHandler struct {
	students studentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// Get godoc
// @Summary Get a student profile
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

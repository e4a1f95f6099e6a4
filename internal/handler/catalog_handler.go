package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edustack/attendance-api/internal/models"
	"github.com/edustack/attendance-api/pkg/response"
)

type catalogService interface {
	ListSubjects(ctx context.Context, courseName, semesterID string) ([]models.Subject, error)
	ListStudents(ctx context.Context, className, semesterID string) ([]models.Student, error)
}

// CatalogHandler exposes course, subject and roster lookups.
type CatalogHandler struct {
	catalog catalogService
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(catalog catalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Subjects godoc
// @Summary List subjects for a course and semester
// @Tags Catalog
// @Produce json
// @Param course query string true "Course display name"
// @Param semester query string true "Semester ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /catalog/subjects [get]
func (h *CatalogHandler) Subjects(c *gin.Context) {
	course := strings.TrimSpace(c.Query("course"))
	semester := strings.TrimSpace(c.Query("semester"))

	subjects, err := h.catalog.ListSubjects(c.Request.Context(), course, semester)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subjects)
}

// Students godoc
// @Summary List students for a class and semester, sorted by name
// @Tags Catalog
// @Produce json
// @Param className query string true "Course display name"
// @Param semesterId query string true "Semester ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /catalog/students [get]
func (h *CatalogHandler) Students(c *gin.Context) {
	className := strings.TrimSpace(c.Query("className"))
	semesterID := strings.TrimSpace(c.Query("semesterId"))

	students, err := h.catalog.ListStudents(c.Request.Context(), className, semesterID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

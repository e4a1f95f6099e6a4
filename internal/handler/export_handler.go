package handler

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/edustack/attendance-api/internal/service"
	"github.com/edustack/attendance-api/pkg/response"
)

type exportService interface {
	Export(ctx context.Context, req service.ReportRequest, format string) (*service.ExportFile, error)
}

// ExportHandler serves attendance report downloads.
type ExportHandler struct {
	exports exportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports exportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Export godoc
// @Summary Download the course/subject attendance report as CSV or PDF
// @Tags Attendance
// @Produce octet-stream
// @Param course query string true "Course ID"
// @Param semester query string true "Semester ID"
// @Param subject query string true "Subject code"
// @Param academicYear query string false "Academic year"
// @Param format query string true "csv or pdf"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /attendance/report/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	req := service.ReportRequest{
		CourseID:     c.Query("course"),
		SemesterID:   c.Query("semester"),
		SubjectCode:  c.Query("subject"),
		AcademicYear: c.Query("academicYear"),
	}
	file, err := h.exports.Export(c.Request.Context(), req, c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(200, file.ContentType, file.Content)
}

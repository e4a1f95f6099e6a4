package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edustack/attendance-api/internal/models"
	"github.com/edustack/attendance-api/internal/service"
	appErrors "github.com/edustack/attendance-api/pkg/errors"
	"github.com/edustack/attendance-api/pkg/response"
)

type attendanceService interface {
	Submit(ctx context.Context, req service.SubmitAttendanceRequest) error
	Report(ctx context.Context, req service.ReportRequest) ([]models.StudentAttendanceRow, error)
	StudentDetail(ctx context.Context, studentID, subjectCode string) ([]models.AttendanceEntry, error)
	Summaries(ctx context.Context, studentID, academicYear string) ([]models.AttendanceSummary, error)
}

// AttendanceHandler exposes attendance submission and reporting endpoints.
type AttendanceHandler struct {
	attendance attendanceService
}

// NewAttendanceHandler constructs AttendanceHandler.
func NewAttendanceHandler(attendance attendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// Submit godoc
// @Summary Submit a batch of daily attendance marks
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body service.SubmitAttendanceRequest true "Attendance batch"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /attendance [post]
func (h *AttendanceHandler) Submit(c *gin.Context) {
	var req service.SubmitAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload"))
		return
	}
	if err := h.attendance.Submit(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"message": "Attendance submitted successfully"})
}

// Report godoc
// @Summary Per-student attendance recomputed for a course, semester and subject
// @Tags Attendance
// @Produce json
// @Param course query string true "Course ID"
// @Param semester query string true "Semester ID"
// @Param subject query string true "Subject code"
// @Param academicYear query string false "Academic year"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /attendance/report [get]
func (h *AttendanceHandler) Report(c *gin.Context) {
	req := service.ReportRequest{
		CourseID:     c.Query("course"),
		SemesterID:   c.Query("semester"),
		SubjectCode:  c.Query("subject"),
		AcademicYear: c.Query("academicYear"),
	}
	rows, err := h.attendance.Report(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// StudentDetail godoc
// @Summary A student's ordered attendance history for one subject
// @Tags Attendance
// @Produce json
// @Param studentId path string true "Student ID"
// @Param subject path string true "Subject code"
// @Param semester path string true "Semester ID"
// @Param academicYear path string true "Academic year"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /attendance/students/{studentId}/{subject}/{semester}/{academicYear} [get]
func (h *AttendanceHandler) StudentDetail(c *gin.Context) {
	studentID := c.Param("studentId")
	subject := c.Param("subject")

	entries, err := h.attendance.StudentDetail(c.Request.Context(), studentID, subject)
	if err != nil {
		// A miss echoes the query so callers can spot malformed parameters.
		appErr := appErrors.FromError(err)
		if appErr.Status == http.StatusNotFound {
			response.ErrorWithMeta(c, err, map[string]interface{}{
				"query": gin.H{"studentId": studentID, "subjectCode": subject},
			})
			return
		}
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

// Summaries godoc
// @Summary A student's stored attendance summaries
// @Tags Attendance
// @Produce json
// @Param studentId path string true "Student ID"
// @Param academicYear query string false "Academic year"
// @Success 200 {object} response.Envelope
// @Router /attendance/summaries/{studentId} [get]
func (h *AttendanceHandler) Summaries(c *gin.Context) {
	summaries, err := h.attendance.Summaries(c.Request.Context(), c.Param("studentId"), c.Query("academicYear"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summaries)
}

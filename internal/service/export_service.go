package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/edustack/attendance-api/internal/models"
	appErrors "github.com/edustack/attendance-api/pkg/errors"
	"github.com/edustack/attendance-api/pkg/export"
)

var reportHeaders = []string{"Roll Number", "Student Name", "Attended", "Total", "Percentage"}

// ExportFile is a rendered report ready for download.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

type reportRunner interface {
	Report(ctx context.Context, req ReportRequest) ([]models.StudentAttendanceRow, error)
}

// ExportService renders the course/subject attendance report as CSV or PDF.
type ExportService struct {
	attendance reportRunner
	csv        *export.CSVExporter
	pdf        *export.PDFExporter
	logger     *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(attendance reportRunner, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		attendance: attendance,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(),
		logger:     logger,
	}
}

// Export runs the report and renders it in the requested format
// ("csv" or "pdf").
func (s *ExportService) Export(ctx context.Context, req ReportRequest, format string) (*ExportFile, error) {
	rows, err := s.attendance.Report(ctx, req)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: reportHeaders}
	for _, row := range rows {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Roll Number":  row.RollNumber,
			"Student Name": row.StudentName,
			"Attended":     strconv.Itoa(row.ClassesAttended),
			"Total":        strconv.Itoa(row.TotalClasses),
			"Percentage":   fmt.Sprintf("%d%%", row.AttendancePercentage),
		})
	}

	base := fmt.Sprintf("attendance_%s_%s", req.SubjectCode, req.SemesterID)
	switch strings.ToLower(format) {
	case "csv":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportFile{Filename: base + ".csv", ContentType: "text/csv", Content: content}, nil
	case "pdf":
		title := fmt.Sprintf("Attendance Report %s", req.SubjectCode)
		content, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportFile{Filename: base + ".pdf", ContentType: "application/pdf", Content: content}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}

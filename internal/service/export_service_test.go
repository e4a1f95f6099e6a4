package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edustack/attendance-api/internal/models"
	appErrors "github.com/edustack/attendance-api/pkg/errors"
)

type reportRunnerMock struct {
	rows []models.StudentAttendanceRow
	err  error
}

func (m *reportRunnerMock) Report(ctx context.Context, req ReportRequest) ([]models.StudentAttendanceRow, error) {
	return m.rows, m.err
}

func exportRows() []models.StudentAttendanceRow {
	return []models.StudentAttendanceRow{
		{RollNumber: "21CS001", StudentName: "Alice", ClassesAttended: 8, TotalClasses: 10, AttendancePercentage: 80},
		{RollNumber: "21CS002", StudentName: "Bob", ClassesAttended: 5, TotalClasses: 10, AttendancePercentage: 50},
	}
}

func TestExportCSV(t *testing.T) {
	svc := NewExportService(&reportRunnerMock{rows: exportRows()}, zap.NewNop())

	file, err := svc.Export(context.Background(), ReportRequest{SubjectCode: "CS301", SemesterID: "3"}, "csv")
	require.NoError(t, err)
	assert.Equal(t, "attendance_CS301_3.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	lines := strings.Split(strings.TrimSpace(string(file.Content)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Roll Number,Student Name,Attended,Total,Percentage", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "Alice")
	assert.Contains(t, lines[1], "80%")
	assert.Contains(t, lines[2], "Bob")
}

func TestExportPDF(t *testing.T) {
	svc := NewExportService(&reportRunnerMock{rows: exportRows()}, zap.NewNop())

	file, err := svc.Export(context.Background(), ReportRequest{SubjectCode: "CS301", SemesterID: "3"}, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "attendance_CS301_3.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Content), "%PDF"))
}

func TestExportFormatIsCaseInsensitive(t *testing.T) {
	svc := NewExportService(&reportRunnerMock{rows: exportRows()}, zap.NewNop())

	file, err := svc.Export(context.Background(), ReportRequest{SubjectCode: "CS301", SemesterID: "3"}, "CSV")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
}

func TestExportUnknownFormat(t *testing.T) {
	svc := NewExportService(&reportRunnerMock{rows: exportRows()}, zap.NewNop())

	_, err := svc.Export(context.Background(), ReportRequest{SubjectCode: "CS301", SemesterID: "3"}, "xlsx")
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestExportPropagatesReportError(t *testing.T) {
	reportErr := appErrors.Clone(appErrors.ErrNotFound, "no students found for this course and semester")
	svc := NewExportService(&reportRunnerMock{err: reportErr}, zap.NewNop())

	_, err := svc.Export(context.Background(), ReportRequest{SubjectCode: "CS301", SemesterID: "3"}, "csv")
	require.ErrorIs(t, err, reportErr)
}

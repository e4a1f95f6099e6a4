package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustack/attendance-api/internal/service"
	appErrors "github.com/edustack/attendance-api/pkg/errors"
)

type notificationServiceMock struct {
	result *service.NotifyResult
	err    error
	got    *service.NotifyRequest
}

func (m *notificationServiceMock) Notify(ctx context.Context, req service.NotifyRequest) (*service.NotifyResult, error) {
	m.got = &req
	return m.result, m.err
}

func TestSendLowAttendanceCounts(t *testing.T) {
	mock := &notificationServiceMock{result: &service.NotifyResult{SentCount: 2, FailedCount: 1, TotalProcessed: 3}}
	h := NewNotificationHandler(mock)

	c, recorder := newTestContext(t, http.MethodPost, "/notifications/low-attendance", `{
		"threshold": 75,
		"attendanceSummary": [
			{"studentId": "S1", "subject": "Data Structures", "classesAttended": 10, "totalClasses": 100}
		]
	}`)
	h.SendLowAttendance(c)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"sentCount":2`)
	assert.Contains(t, recorder.Body.String(), `"failedCount":1`)
	require.NotNil(t, mock.got)
	assert.Equal(t, 75.0, mock.got.Threshold)
	require.Len(t, mock.got.Summaries, 1)
	assert.Equal(t, "S1", mock.got.Summaries[0].StudentID)
}

func TestSendLowAttendanceMalformedBody(t *testing.T) {
	h := NewNotificationHandler(&notificationServiceMock{})

	c, recorder := newTestContext(t, http.MethodPost, "/notifications/low-attendance", `{"threshold":`)
	h.SendLowAttendance(c)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "missing required data")
}

func TestSendLowAttendanceValidationError(t *testing.T) {
	mock := &notificationServiceMock{err: appErrors.Clone(appErrors.ErrValidation, "missing required data")}
	h := NewNotificationHandler(mock)

	c, recorder := newTestContext(t, http.MethodPost, "/notifications/low-attendance", `{"threshold": 120, "attendanceSummary": []}`)
	h.SendLowAttendance(c)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

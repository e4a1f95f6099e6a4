package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edustack/attendance-api/internal/models"
	appErrors "github.com/edustack/attendance-api/pkg/errors"
	"github.com/edustack/attendance-api/pkg/mailer"
)

// classesNeededCap bounds the catch-up simulation; a threshold of exactly
// 100% is unreachable once a single class was missed.
const classesNeededCap = 10000

type mailMetrics interface {
	IncMailSent()
	IncMailFailed()
}

// NotificationService emails students whose attendance fell below a
// threshold. Per-student failures are tallied, never fatal.
type NotificationService struct {
	students  studentRepository
	mail      mailer.Mailer
	metrics   mailMetrics
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNotificationService constructs the notification service. metrics may be
// nil.
func NewNotificationService(students studentRepository, mail mailer.Mailer, metrics mailMetrics, validate *validator.Validate, logger *zap.Logger) *NotificationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{students: students, mail: mail, metrics: metrics, validator: validate, logger: logger}
}

// SummaryRow is one attendance summary submitted for notification screening.
type SummaryRow struct {
	StudentID       string `json:"studentId" validate:"required"`
	StudentName     string `json:"studentName"`
	Subject         string `json:"subject"`
	ClassesAttended int    `json:"classesAttended" validate:"min=0"`
	TotalClasses    int    `json:"totalClasses" validate:"min=0"`
}

// NotifyRequest is the low-attendance notification payload.
type NotifyRequest struct {
	Summaries []SummaryRow `json:"attendanceSummary" validate:"required,min=1,dive"`
	Threshold float64      `json:"threshold" validate:"required,gt=0,lte=100"`
}

// NotifyResult reports per-batch delivery counts.
type NotifyResult struct {
	SentCount      int `json:"sentCount"`
	FailedCount    int `json:"failedCount"`
	TotalProcessed int `json:"totalProcessed"`
}

// Notify filters the submitted summaries against the threshold and sends one
// warning email per affected student. A student without a stored email, or a
// failed send, counts as failed and processing continues.
func (s *NotificationService) Notify(ctx context.Context, req NotifyRequest) (*NotifyResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing required data")
	}

	var below []SummaryRow
	for _, row := range req.Summaries {
		if row.TotalClasses <= 0 {
			continue
		}
		percentage := float64(row.ClassesAttended) / float64(row.TotalClasses) * 100
		if percentage < req.Threshold {
			below = append(below, row)
		}
	}
	if len(below) == 0 {
		return &NotifyResult{}, nil
	}

	// The whole batch concerns one subject; take its name from the first
	// submitted row.
	subjectName := req.Summaries[0].Subject

	result := &NotifyResult{TotalProcessed: len(below)}
	for _, row := range below {
		if err := s.sendWarning(ctx, row, subjectName, req.Threshold); err != nil {
			result.FailedCount++
			if s.metrics != nil {
				s.metrics.IncMailFailed()
			}
			s.logger.Warn("low attendance notification failed",
				zap.String("student_id", row.StudentID),
				zap.String("subject", subjectName),
				zap.Error(err),
			)
			continue
		}
		result.SentCount++
		if s.metrics != nil {
			s.metrics.IncMailSent()
		}
	}
	return result, nil
}

func (s *NotificationService) sendWarning(ctx context.Context, row SummaryRow, subjectName string, threshold float64) error {
	student, err := s.students.FindByID(ctx, row.StudentID)
	if err != nil {
		return fmt.Errorf("lookup student %s: %w", row.StudentID, err)
	}
	if student.Email == "" {
		return fmt.Errorf("student %s has no stored email", row.StudentID)
	}

	percentage := models.Percentage(row.ClassesAttended, row.TotalClasses)
	gap := threshold - percentage

	body, err := mailer.RenderLowAttendance(mailer.LowAttendanceData{
		StudentName:       student.FullName,
		RollNumber:        student.RollNumber,
		Subject:           subjectName,
		CurrentPercentage: fmt.Sprintf("%.2f", percentage),
		Threshold:         threshold,
		Gap:               fmt.Sprintf("%.2f", gap),
		AttendedClasses:   row.ClassesAttended,
		TotalClasses:      row.TotalClasses,
		ClassesNeeded:     classesNeeded(row.ClassesAttended, row.TotalClasses, threshold),
	})
	if err != nil {
		return err
	}

	return s.mail.Send(ctx, mailer.Message{
		ToName:   student.FullName,
		ToEmail:  student.Email,
		Subject:  mailer.LowAttendanceSubject(subjectName),
		HTMLBody: body,
	})
}

// classesNeeded is the smallest n such that attending the next n classes in a
// row lifts (attended+n)/(total+n) to the threshold.
func classesNeeded(attended, total int, threshold float64) int {
	if total > 0 && float64(attended)/float64(total)*100 >= threshold {
		return 0
	}
	needed := 0
	a, t := attended, total
	for needed < classesNeededCap {
		needed++
		a++
		t++
		if float64(a)/float64(t)*100 >= threshold {
			break
		}
	}
	return needed
}

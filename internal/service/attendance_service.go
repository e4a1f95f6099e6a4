package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edustack/attendance-api/internal/models"
	appErrors "github.com/edustack/attendance-api/pkg/errors"
)

type attendanceRepository interface {
	SubmitBatch(ctx context.Context, batch models.AttendanceBatch) error
	ListEntries(ctx context.Context, studentID, subjectCode string) ([]models.AttendanceEntry, error)
}

type summaryRepository interface {
	ListByStudent(ctx context.Context, studentID, academicYear string) ([]models.AttendanceSummary, error)
}

type rosterRepository interface {
	ListByCourseAndSemester(ctx context.Context, courseID, semesterID string) ([]models.Student, error)
}

type courseResolver interface {
	ResolveCourseID(ctx context.Context, courseName string) (string, error)
}

// AttendanceService owns attendance submission and reporting.
type AttendanceService struct {
	records   attendanceRepository
	summaries summaryRepository
	students  rosterRepository
	catalog   courseResolver
	cache     lookupCache
	reportTTL time.Duration
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewAttendanceService constructs the attendance service. cache may be nil.
func NewAttendanceService(records attendanceRepository, summaries summaryRepository, students rosterRepository, catalog courseResolver, cache lookupCache, reportTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{
		records:   records,
		summaries: summaries,
		students:  students,
		catalog:   catalog,
		cache:     cache,
		reportTTL: reportTTL,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// AttendanceMark is one student's mark within a submission.
type AttendanceMark struct {
	StudentID string `json:"studentId"`
	Present   bool   `json:"present"`
}

// SubmitAttendanceRequest is the submission payload.
type SubmitAttendanceRequest struct {
	CourseName  string           `json:"courseName" validate:"required"`
	SemesterID  string           `json:"semId" validate:"required"`
	SubjectCode string           `json:"subjectCode" validate:"required"`
	Date        string           `json:"date" validate:"required"`
	Attendance  []AttendanceMark `json:"attendance" validate:"required,min=1"`
}

// Submit records a batch of daily marks. All effects across the batch commit
// atomically; marks without a student id are skipped. The academic year is
// derived from the wall clock, not the submitted date.
func (s *AttendanceService) Submit(ctx context.Context, req SubmitAttendanceRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid date")
	}

	// An unknown course name does not fail the submission; the summary is
	// keyed with an empty course id, matching observed behavior.
	courseID, err := s.catalog.ResolveCourseID(ctx, req.CourseName)
	if err != nil {
		return err
	}

	batch := models.AttendanceBatch{
		CourseID:     courseID,
		SemesterID:   req.SemesterID,
		SubjectCode:  req.SubjectCode,
		AcademicYear: models.AcademicYear(s.now()),
		Date:         date,
	}
	for _, mark := range req.Attendance {
		if mark.StudentID == "" {
			continue
		}
		batch.Entries = append(batch.Entries, models.BatchEntry{StudentID: mark.StudentID, Present: mark.Present})
	}
	if len(batch.Entries) == 0 {
		return nil
	}

	if err := s.records.SubmitBatch(ctx, batch); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to submit attendance")
	}
	s.logger.Info("attendance submitted",
		zap.String("subject", req.SubjectCode),
		zap.String("semester", req.SemesterID),
		zap.Int("students", len(batch.Entries)),
	)
	return nil
}

// ReportRequest identifies a course/subject report.
type ReportRequest struct {
	CourseID     string
	SemesterID   string
	SubjectCode  string
	AcademicYear string
}

// Report recomputes per-student attendance for a course, semester and subject
// by scanning each student's record history. A student without records gets a
// zero row. Percentages round to whole numbers here, unlike the stored
// summaries.
func (s *AttendanceService) Report(ctx context.Context, req ReportRequest) ([]models.StudentAttendanceRow, error) {
	cacheKey := fmt.Sprintf("attendance:report:%s:%s:%s:%s", req.CourseID, req.SemesterID, req.SubjectCode, req.AcademicYear)
	if s.cache != nil {
		var cached []models.StudentAttendanceRow
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	students, err := s.students.ListByCourseAndSemester(ctx, req.CourseID, req.SemesterID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	if len(students) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no students found for this course and semester")
	}

	rows := make([]models.StudentAttendanceRow, 0, len(students))
	for _, student := range students {
		entries, err := s.records.ListEntries(ctx, student.ID, req.SubjectCode)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance records")
		}
		attended := 0
		for _, entry := range entries {
			if entry.Present {
				attended++
			}
		}
		rows = append(rows, models.StudentAttendanceRow{
			StudentID:            student.ID,
			StudentName:          student.FullName,
			RollNumber:           student.RollNumber,
			CourseID:             student.CourseID,
			SemesterID:           student.SemesterID,
			SubjectCode:          req.SubjectCode,
			AcademicYear:         req.AcademicYear,
			ClassesAttended:      attended,
			TotalClasses:         len(entries),
			AttendancePercentage: models.WholePercentage(attended, len(entries)),
		})
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, rows, s.reportTTL); err != nil {
			s.logger.Warn("report cache write failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return rows, nil
}

// StudentDetail returns a student's ordered per-subject history exactly as
// stored. An absent or empty history is a not-found condition.
func (s *AttendanceService) StudentDetail(ctx context.Context, studentID, subjectCode string) ([]models.AttendanceEntry, error) {
	entries, err := s.records.ListEntries(ctx, studentID, strings.TrimSpace(subjectCode))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance records")
	}
	if len(entries) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no attendance records found")
	}
	return entries, nil
}

// Summaries lists a student's stored summary rows, optionally scoped to an
// academic year.
func (s *AttendanceService) Summaries(ctx context.Context, studentID, academicYear string) ([]models.AttendanceSummary, error) {
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student ID is required")
	}
	summaries, err := s.summaries.ListByStudent(ctx, studentID, academicYear)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance summaries")
	}
	return summaries, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format %q", raw)
}

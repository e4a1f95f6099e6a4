package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/edustack/attendance-api/internal/models"
	appErrors "github.com/edustack/attendance-api/pkg/errors"
)

type courseRepository interface {
	FindByName(ctx context.Context, name string) (*models.Course, error)
}

type subjectRepository interface {
	ListByCourseAndSemester(ctx context.Context, courseID, semesterID string) ([]models.Subject, error)
}

type catalogStudentRepository interface {
	ListByCourseAndSemester(ctx context.Context, courseID, semesterID string) ([]models.Student, error)
}

type lookupCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CatalogService resolves course names and serves subject and roster lookups.
type CatalogService struct {
	courses  courseRepository
	subjects subjectRepository
	students catalogStudentRepository
	cache    lookupCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewCatalogService constructs the catalog service. cache may be nil.
func NewCatalogService(courses courseRepository, subjects subjectRepository, students catalogStudentRepository, cache lookupCache, cacheTTL time.Duration, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{courses: courses, subjects: subjects, students: students, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// ListSubjects returns the subjects of a course (by display name) and
// semester.
func (s *CatalogService) ListSubjects(ctx context.Context, courseName, semesterID string) ([]models.Subject, error) {
	if courseName == "" || semesterID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "course and semester are required")
	}
	course, err := s.resolveCourse(ctx, courseName)
	if err != nil {
		return nil, err
	}
	subjects, err := s.subjects.ListByCourseAndSemester(ctx, course.ID, semesterID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subjects")
	}
	return subjects, nil
}

// ListStudents returns the students of a course (by display name) and
// semester, sorted by full name.
func (s *CatalogService) ListStudents(ctx context.Context, className, semesterID string) ([]models.Student, error) {
	if className == "" || semesterID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "class name and semester ID are required")
	}
	course, err := s.resolveCourse(ctx, className)
	if err != nil {
		return nil, err
	}
	students, err := s.students.ListByCourseAndSemester(ctx, course.ID, semesterID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// ResolveCourseID resolves a course name to its id, or "" when the course
// does not exist. Attendance submission tolerates unknown course names.
func (s *CatalogService) ResolveCourseID(ctx context.Context, courseName string) (string, error) {
	course, err := s.resolveCourse(ctx, courseName)
	if err != nil {
		var appErr *appErrors.Error
		if errors.As(err, &appErr) && appErr.Status == http.StatusNotFound {
			return "", nil
		}
		return "", err
	}
	return course.ID, nil
}

func (s *CatalogService) resolveCourse(ctx context.Context, name string) (*models.Course, error) {
	key := fmt.Sprintf("catalog:course:%s", name)
	if s.cache != nil {
		var cached models.Course
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	course, err := s.courses.FindByName(ctx, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve course")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, course, s.cacheTTL); err != nil {
			s.logger.Warn("course cache write failed", zap.String("course", name), zap.Error(err))
		}
	}
	return course, nil
}

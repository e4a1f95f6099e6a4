package service

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/edustack/attendance-api/internal/models"
	appErrors "github.com/edustack/attendance-api/pkg/errors"
)

type studentRepository interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

// StudentService serves student profile reads.
type StudentService struct {
	repo   studentRepository
	logger *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, logger: logger}
}

// Get returns a student profile. The credential hash is cleared so it can
// never leak through serialization.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	student.PasswordHash = ""
	return student, nil
}

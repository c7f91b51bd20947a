package repository

import (
	"coachmarket/internal/domain" // Import our defined domain models
	"context"                     // Standard for request-scoped deadlines, cancellation signals, etc.

	"go.mongodb.org/mongo-driver/bson/primitive" // For using ObjectIDs
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// TxManager runs fn inside one store transaction. Repository calls made with
// the ctx handed to fn take part in that transaction; any error returned by fn
// aborts it.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error)
	UpdateProfileFields(ctx context.Context, id primitive.ObjectID, fullName, avatarURL *string) error
}

// ProfileRepository stores the role-specific profile rows.
type ProfileRepository interface {
	CreateCoach(ctx context.Context, profile *domain.CoachProfile) error
	CreateClient(ctx context.Context, profile *domain.ClientProfile) error
	GetCoach(ctx context.Context, userID primitive.ObjectID) (*domain.CoachProfile, error)
	GetClient(ctx context.Context, userID primitive.ObjectID) (*domain.ClientProfile, error)
	UpdateCoach(ctx context.Context, profile *domain.CoachProfile) error
	UpdateClient(ctx context.Context, profile *domain.ClientProfile) error
}

// ProgramRepository stores program rows (without routines).
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Program, error)
	List(ctx context.Context, filter domain.ProgramFilter) ([]domain.Program, error)
	Update(ctx context.Context, program *domain.Program) error
	Delete(ctx context.Context, id, coachID primitive.ObjectID) error
}

// RoutineRepository stores routines and their exercises.
type RoutineRepository interface {
	// CreateMany inserts routines, then their exercises.
	CreateMany(ctx context.Context, routines []domain.Routine) error
	// GetByProgramID returns routines ordered by orderInCycle, exercises loaded
	// and ordered by orderInRoutine.
	GetByProgramID(ctx context.Context, programID primitive.ObjectID) ([]domain.Routine, error)
	GetByProgramIDs(ctx context.Context, programIDs []primitive.ObjectID) (map[primitive.ObjectID][]domain.Routine, error)
	// DeleteByProgramID deletes the exercises of every routine under the
	// program, then the routines. Returns the number of routines and exercises removed.
	DeleteByProgramID(ctx context.Context, programID primitive.ObjectID) (routines, exercises int64, err error)
}

// EnrollmentRepository stores ClientProgram rows.
type EnrollmentRepository interface {
	Create(ctx context.Context, cp *domain.ClientProgram) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ClientProgram, error)
	GetForClient(ctx context.Context, id, clientID primitive.ObjectID) (*domain.ClientProgram, error)
	FindActive(ctx context.Context, clientID, programID primitive.ObjectID) (*domain.ClientProgram, error)
	ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]domain.ClientProgram, error)
	ListActiveByProgramIDs(ctx context.Context, programIDs []primitive.ObjectID) ([]domain.ClientProgram, error)
	ListByProgram(ctx context.Context, programID primitive.ObjectID) ([]domain.ClientProgram, error)
	SaveProgress(ctx context.Context, id primitive.ObjectID, progress domain.Progress) error
	SaveCustomizations(ctx context.Context, id primitive.ObjectID, cust *domain.Customizations, version int) error
	Deactivate(ctx context.Context, id, clientID primitive.ObjectID) error
	DeleteByProgramID(ctx context.Context, programID primitive.ObjectID) (int64, error)
}

// WorkoutLogRepository stores workout logs.
type WorkoutLogRepository interface {
	Create(ctx context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error)
	GetForClient(ctx context.Context, id, clientID primitive.ObjectID) (*domain.WorkoutLog, error)
	UpdateData(ctx context.Context, id, clientID primitive.ObjectID, data domain.WorkoutLogData) error
	Delete(ctx context.Context, id, clientID primitive.ObjectID) error
	// ListByEnrollment returns logs for (clientID, enrollmentID), newest first.
	ListByEnrollment(ctx context.Context, clientID, enrollmentID primitive.ObjectID) ([]domain.WorkoutLog, error)
	// ListByClient returns logs of the client across enrollments, newest first; limit <= 0 means all.
	ListByClient(ctx context.Context, clientID primitive.ObjectID, limit int) ([]domain.WorkoutLog, error)
	CountByEnrollments(ctx context.Context, enrollmentIDs []primitive.ObjectID) (map[primitive.ObjectID]int, error)
	DeleteByEnrollmentIDs(ctx context.Context, enrollmentIDs []primitive.ObjectID) (int64, error)
}

// MealLogRepository stores meal logs.
type MealLogRepository interface {
	Create(ctx context.Context, log *domain.MealLog) (primitive.ObjectID, error)
	GetForClient(ctx context.Context, id, clientID primitive.ObjectID) (*domain.MealLog, error)
	Update(ctx context.Context, log *domain.MealLog) error
	Delete(ctx context.Context, id, clientID primitive.ObjectID) error
	ListByEnrollment(ctx context.Context, clientID, enrollmentID primitive.ObjectID) ([]domain.MealLog, error)
	ListByClient(ctx context.Context, clientID primitive.ObjectID, limit int) ([]domain.MealLog, error)
	DeleteByEnrollmentIDs(ctx context.Context, enrollmentIDs []primitive.ObjectID) (int64, error)
}

// CheckInRepository stores check-in upload metadata.
type CheckInRepository interface {
	Create(ctx context.Context, checkIn *domain.CheckIn) (primitive.ObjectID, error)
	ListByEnrollment(ctx context.Context, enrollmentID primitive.ObjectID) ([]domain.CheckIn, error)
	// DeleteByProgramID removes metadata rows and returns their object keys.
	DeleteByProgramID(ctx context.Context, programID primitive.ObjectID) ([]string, error)
}

// BetaSignupRepository stores lead-capture records.
type BetaSignupRepository interface {
	Create(ctx context.Context, signup *domain.BetaSignup) (primitive.ObjectID, error)
}

package service

import (
	"errors"

	"coachmarket/internal/domain"
	"coachmarket/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = domain.ConflictErrorf("user with this email or username already exists")
	ErrAlreadyEnrolled      = domain.ConflictErrorf("already enrolled in this program")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
	ErrInvalidToken         = errors.New("invalid or expired token")
)

// translate maps a repository failure into the domain error taxonomy.
// Errors that already belong to the taxonomy pass through unchanged, so it is
// safe to apply to whatever a transaction callback returned.
func translate(op string, err error, what string) error {
	if err == nil {
		return nil
	}
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrPermission),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrStorage):
		return err
	case errors.Is(err, repository.ErrNotFound):
		return domain.NotFoundErrorf("%s not found", what)
	case errors.Is(err, repository.ErrDuplicate):
		return domain.ConflictErrorf("%s already exists", what)
	default:
		return domain.StorageError(op, err)
	}
}

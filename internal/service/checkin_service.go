package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"coachmarket/internal/domain"
	"coachmarket/internal/repository"
	"coachmarket/internal/storage"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrUploadURLError   = errors.New("failed to generate upload URL")
	ErrDownloadURLError = errors.New("failed to generate download URL")
)

// UploadURLResponse structure for returning URL and object key
type UploadURLResponse struct {
	UploadURL string    `json:"uploadUrl"`
	ObjectKey string    `json:"objectKey"` // The key client needs to report back on confirm
	ExpiresAt time.Time `json:"expiresAt"`
}

// ConfirmUploadInput is reported by the client after the PUT to the presigned URL succeeded.
type ConfirmUploadInput struct {
	ObjectKey string
	FileName  string
	Notes     string
}

// CheckInView is a check-in with a temporary URL to view the media.
type CheckInView struct {
	domain.CheckIn
	DownloadURL string `json:"downloadUrl,omitempty"`
}

type CheckInService interface {
	RequestUploadURL(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID, fileName, contentType string) (*UploadURLResponse, error)
	ConfirmUpload(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID, in ConfirmUploadInput) (*domain.CheckIn, error)
	// ListForClient returns the caller's own check-ins for an enrollment.
	ListForClient(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID) ([]CheckInView, error)
	// ListForCoach returns check-ins of an enrollment in one of the caller's programs.
	ListForCoach(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID) ([]CheckInView, error)
}

type checkInService struct {
	programs    repository.ProgramRepository
	enrollments repository.EnrollmentRepository
	checkIns    repository.CheckInRepository
	files       storage.FileStorage
	urlExpiry   time.Duration
}

func NewCheckInService(
	programs repository.ProgramRepository,
	enrollments repository.EnrollmentRepository,
	checkIns repository.CheckInRepository,
	files storage.FileStorage,
	urlExpiry time.Duration,
) CheckInService {
	if urlExpiry <= 0 {
		urlExpiry = storage.DefaultPresignedURLExpiry
	}
	return &checkInService{
		programs:    programs,
		enrollments: enrollments,
		checkIns:    checkIns,
		files:       files,
		urlExpiry:   urlExpiry,
	}
}

func isMediaContentType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	return strings.HasPrefix(ct, "image/") || strings.HasPrefix(ct, "video/")
}

// RequestUploadURL generates a pre-signed URL for a client to upload a check-in.
func (s *checkInService) RequestUploadURL(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID, fileName, contentType string) (*UploadURLResponse, error) {
	if err := principal.RequireRole(domain.RoleClient); err != nil {
		return nil, err
	}
	verr := &domain.ValidationError{}
	if strings.TrimSpace(fileName) == "" {
		verr.Add("fileName", "is required")
	}
	if !isMediaContentType(contentType) {
		verr.Add("contentType", "must be an image or video type")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if _, err := s.enrollments.GetForClient(ctx, enrollmentID, principal.UserID); err != nil {
		return nil, translate("request upload", err, "enrollment")
	}

	objectKey := storage.CheckInObjectKey(enrollmentID, fileName)
	uploadURL, err := s.files.GeneratePresignedUploadURL(ctx, objectKey, contentType, s.urlExpiry)
	if err != nil {
		log.WithError(err).WithField("enrollmentId", enrollmentID.Hex()).Error("presign check-in upload")
		return nil, domain.StorageError("request upload", ErrUploadURLError)
	}

	return &UploadURLResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
		ExpiresAt: time.Now().UTC().Add(s.urlExpiry),
	}, nil
}

// ConfirmUpload records the check-in metadata once the object exists in storage.
// Size and content type are taken from the store, not from the client.
func (s *checkInService) ConfirmUpload(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID, in ConfirmUploadInput) (*domain.CheckIn, error) {
	if err := principal.RequireRole(domain.RoleClient); err != nil {
		return nil, err
	}
	if in.ObjectKey == "" || !storage.KeyBelongsToEnrollment(in.ObjectKey, enrollmentID) {
		return nil, domain.NewValidationError("objectKey", "was not issued for this enrollment")
	}

	cp, err := s.enrollments.GetForClient(ctx, enrollmentID, principal.UserID)
	if err != nil {
		return nil, translate("confirm upload", err, "enrollment")
	}
	program, err := s.programs.GetByID(ctx, cp.ProgramID)
	if err != nil {
		return nil, translate("confirm upload", err, "program")
	}

	meta, err := s.files.HeadObject(ctx, in.ObjectKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, domain.NewValidationError("objectKey", "no uploaded object found")
		}
		return nil, domain.StorageError("confirm upload", err)
	}
	if !isMediaContentType(meta.ContentType) {
		return nil, domain.NewValidationError("contentType", "must be an image or video type")
	}

	fileName := strings.TrimSpace(in.FileName)
	if fileName == "" {
		fileName = in.ObjectKey[strings.LastIndex(in.ObjectKey, "/")+1:]
	}
	checkIn := &domain.CheckIn{
		ClientProgramID: cp.ID,
		ProgramID:       program.ID,
		ClientID:        principal.UserID,
		CoachID:         program.CoachID,
		S3ObjectKey:     in.ObjectKey,
		FileName:        fileName,
		ContentType:     meta.ContentType,
		Size:            meta.Size,
		Notes:           strings.TrimSpace(in.Notes),
	}
	if _, err := s.checkIns.Create(ctx, checkIn); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.ConflictErrorf("upload already confirmed")
		}
		return nil, translate("confirm upload", err, "check-in")
	}

	log.WithFields(log.Fields{"enrollmentId": cp.ID.Hex(), "checkInId": checkIn.ID.Hex()}).Info("check-in confirmed")
	return checkIn, nil
}

func (s *checkInService) ListForClient(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID) ([]CheckInView, error) {
	if err := principal.RequireRole(domain.RoleClient); err != nil {
		return nil, err
	}
	if _, err := s.enrollments.GetForClient(ctx, enrollmentID, principal.UserID); err != nil {
		return nil, translate("list check-ins", err, "enrollment")
	}
	return s.list(ctx, enrollmentID)
}

func (s *checkInService) ListForCoach(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID) ([]CheckInView, error) {
	if err := principal.RequireRole(domain.RoleCoach); err != nil {
		return nil, err
	}
	cp, err := s.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, translate("list check-ins", err, "enrollment")
	}
	program, err := s.programs.GetByID(ctx, cp.ProgramID)
	if err != nil {
		return nil, translate("list check-ins", err, "enrollment")
	}
	if program.CoachID != principal.UserID {
		return nil, domain.NotFoundErrorf("enrollment not found")
	}
	return s.list(ctx, enrollmentID)
}

func (s *checkInService) list(ctx context.Context, enrollmentID primitive.ObjectID) ([]CheckInView, error) {
	checkIns, err := s.checkIns.ListByEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, translate("list check-ins", err, "check-in")
	}
	views := make([]CheckInView, 0, len(checkIns))
	for _, c := range checkIns {
		url, err := s.files.GeneratePresignedDownloadURL(ctx, c.S3ObjectKey, s.urlExpiry)
		if err != nil {
			log.WithError(err).WithField("checkInId", c.ID.Hex()).Error("presign check-in download")
			return nil, domain.StorageError("list check-ins", ErrDownloadURLError)
		}
		views = append(views, CheckInView{CheckIn: c, DownloadURL: url})
	}
	return views, nil
}

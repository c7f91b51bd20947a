package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

var ErrObjectNotFound = errors.New("object not found in storage")

// ObjectMetadata is what the store reports about an uploaded object.
type ObjectMetadata struct {
	Size        int64
	ContentType string
}

// FileStorage defines the interface for object storage operations.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL that allows PUT requests
	// for uploading an object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for downloading/viewing an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// HeadObject returns ErrObjectNotFound when the key does not exist.
	HeadObject(ctx context.Context, objectKey string) (*ObjectMetadata, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

// CheckInObjectKey builds the object key for a new check-in upload:
// checkins/<enrollment>/<uuid><ext>.
func CheckInObjectKey(enrollmentID primitive.ObjectID, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("checkins/%s/%s%s", enrollmentID.Hex(), uuid.NewString(), ext)
}

// KeyBelongsToEnrollment reports whether objectKey was issued for enrollmentID.
func KeyBelongsToEnrollment(objectKey string, enrollmentID primitive.ObjectID) bool {
	return strings.HasPrefix(objectKey, "checkins/"+enrollmentID.Hex()+"/")
}

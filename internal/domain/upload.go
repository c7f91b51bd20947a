package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CheckIn stores metadata about a progress photo or video a client uploaded
// for one of their enrollments. The actual file resides in S3.
type CheckIn struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientProgramID primitive.ObjectID `bson:"clientProgramId" json:"clientProgramId"`
	ProgramID       primitive.ObjectID `bson:"programId" json:"programId"` // Denormalized for cascades
	ClientID        primitive.ObjectID `bson:"clientId" json:"clientId"`
	CoachID         primitive.ObjectID `bson:"coachId" json:"coachId"` // Denormalized for coach views
	S3ObjectKey     string             `bson:"s3ObjectKey" json:"-"`   // Internal use only
	FileName        string             `bson:"fileName" json:"fileName"`
	ContentType     string             `bson:"contentType" json:"contentType"`
	Size            int64              `bson:"size" json:"size"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	UploadedAt      time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}

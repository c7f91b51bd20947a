package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleCoach  Role = "coach"
	RoleClient Role = "client"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleCoach || r == RoleClient
}

// User represents an account (either a Coach or a Client).
// Role is fixed at registration and never changes afterwards.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ExternalID   string             `bson:"externalId" json:"externalId"` // Stable uuid exposed to other systems
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`    // Unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Role         Role               `bson:"role" json:"role"`
	FullName     string             `bson:"fullName,omitempty" json:"fullName,omitempty"`
	AvatarURL    string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsCoach() bool {
	return u.Role == RoleCoach
}

func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// CoachProfile is the coach-specific extension of a User (one-to-one via UserID).
type CoachProfile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Specialty string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Instagram string             `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Website   string             `bson:"website,omitempty" json:"website,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ClientProfile is the client-specific extension of a User (one-to-one via UserID).
type ClientProfile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	HeightCm  *float64           `bson:"heightCm,omitempty" json:"heightCm,omitempty"`
	WeightKg  *float64           `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	Goals     string             `bson:"goals,omitempty" json:"goals,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Principal is the authenticated caller of a request, resolved once by the
// auth middleware and passed explicitly into every service operation.
type Principal struct {
	UserID primitive.ObjectID
	Role   Role
}

// RequireRole returns ErrPermission unless the principal holds role.
func (p Principal) RequireRole(role Role) error {
	if p.UserID == primitive.NilObjectID {
		return ErrPermission
	}
	if p.Role != role {
		return PermissionErrorf("role %q required", role)
	}
	return nil
}

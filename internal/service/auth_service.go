package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coachmarket/internal/domain"
	"coachmarket/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
	FullName string
}

// Account is a user together with its role-specific profile.
type Account struct {
	User   *domain.User
	Coach  *domain.CoachProfile
	Client *domain.ClientProfile
}

// ProfileUpdate edits display and role-specific fields. Nil fields are kept;
// fields of the other role are ignored.
type ProfileUpdate struct {
	FullName  *string
	AvatarURL *string
	Bio       *string
	Specialty *string
	Instagram *string
	Website   *string
	HeightCm  *float64
	WeightKg  *float64
	Goals     *string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*Account, error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	// ParseToken resolves a signed token into the request principal.
	ParseToken(token string) (domain.Principal, error)
	Me(ctx context.Context, principal domain.Principal) (*Account, error)
	UpdateProfile(ctx context.Context, principal domain.Principal, in ProfileUpdate) (*Account, error)
	TokenTTL() time.Duration
}

// authService implements the AuthService interface.
type authService struct {
	tx            repository.TxManager
	userRepo      repository.UserRepository
	profileRepo   repository.ProfileRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(tx repository.TxManager, userRepo repository.UserRepository, profileRepo repository.ProfileRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty")
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	return &authService{
		tx:            tx,
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register creates the user and its coach or client profile atomically.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*Account, error) {
	verr := &domain.ValidationError{}
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if username == "" {
		verr.Add("username", "is required")
	}
	if !isEmail(email) {
		verr.Add("email", "must be a valid email address")
	}
	if len(in.Password) < minPasswordLength {
		verr.Add("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	if !in.Role.Valid() {
		verr.Add("role", "must be one of coach, client")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	account := &Account{User: &domain.User{
		ExternalID:   uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         in.Role,
		FullName:     strings.TrimSpace(in.FullName),
	}}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		userID, err := s.userRepo.Create(ctx, account.User)
		if err != nil {
			return err
		}
		switch in.Role {
		case domain.RoleCoach:
			account.Coach = &domain.CoachProfile{UserID: userID}
			return s.profileRepo.CreateCoach(ctx, account.Coach)
		default:
			account.Client = &domain.ClientProfile{UserID: userID}
			return s.profileRepo.CreateClient(ctx, account.Client)
		}
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, translate("register", err, "user")
	}

	log.WithFields(log.Fields{"userId": account.User.ID.Hex(), "role": in.Role}).Info("user registered")
	account.User.PasswordHash = ""
	return account, nil
}

// Login handles user authentication and JWT generation.
func (s *authService) Login(ctx context.Context, email, password string) (token string, user *domain.User, err error) {
	if email == "" || password == "" {
		err = ErrAuthenticationFailed
		return
	}

	user, err = s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = ErrAuthenticationFailed
			return
		}
		return "", nil, translate("login", err, "user")
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err = s.generateJWT(user)
	if err != nil {
		log.Errorf("login: sign token for %s: %s", user.ID.Hex(), err)
		return "", nil, ErrTokenGeneration
	}

	user.PasswordHash = ""
	return token, user, nil
}

func (s *authService) Me(ctx context.Context, principal domain.Principal) (*Account, error) {
	if principal.UserID == primitive.NilObjectID {
		return nil, domain.ErrPermission
	}
	user, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, translate("me", err, "user")
	}
	user.PasswordHash = ""
	account := &Account{User: user}

	switch user.Role {
	case domain.RoleCoach:
		account.Coach, err = s.profileRepo.GetCoach(ctx, user.ID)
	case domain.RoleClient:
		account.Client, err = s.profileRepo.GetClient(ctx, user.ID)
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, translate("me", err, "profile")
	}
	return account, nil
}

// UpdateProfile edits the caller's display fields and role profile in one transaction.
func (s *authService) UpdateProfile(ctx context.Context, principal domain.Principal, in ProfileUpdate) (*Account, error) {
	if principal.UserID == primitive.NilObjectID {
		return nil, domain.ErrPermission
	}
	verr := &domain.ValidationError{}
	if in.HeightCm != nil && *in.HeightCm <= 0 {
		verr.Add("heightCm", "must be > 0")
	}
	if in.WeightKg != nil && *in.WeightKg <= 0 {
		verr.Add("weightKg", "must be > 0")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if in.FullName != nil || in.AvatarURL != nil {
			if err := s.userRepo.UpdateProfileFields(ctx, principal.UserID, in.FullName, in.AvatarURL); err != nil {
				return err
			}
		}
		switch principal.Role {
		case domain.RoleCoach:
			profile, err := s.profileRepo.GetCoach(ctx, principal.UserID)
			if err != nil {
				return err
			}
			setString(&profile.Bio, in.Bio)
			setString(&profile.Specialty, in.Specialty)
			setString(&profile.Instagram, in.Instagram)
			setString(&profile.Website, in.Website)
			return s.profileRepo.UpdateCoach(ctx, profile)
		case domain.RoleClient:
			profile, err := s.profileRepo.GetClient(ctx, principal.UserID)
			if err != nil {
				return err
			}
			if in.HeightCm != nil {
				profile.HeightCm = in.HeightCm
			}
			if in.WeightKg != nil {
				profile.WeightKg = in.WeightKg
			}
			setString(&profile.Goals, in.Goals)
			return s.profileRepo.UpdateClient(ctx, profile)
		}
		return nil
	})
	if err != nil {
		return nil, translate("update profile", err, "profile")
	}
	return s.Me(ctx, principal)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID string      `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// generateJWT creates a new JWT token for the given user.
func (s *authService) generateJWT(user *domain.User) (string, error) {
	now := time.Now()
	claims := &jwtClaims{
		UserID: user.ID.Hex(),
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "coachmarket",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ParseToken(tokenString string) (domain.Principal, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return domain.Principal{}, ErrInvalidToken
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil || !claims.Role.Valid() {
		return domain.Principal{}, ErrInvalidToken
	}
	return domain.Principal{UserID: userID, Role: claims.Role}, nil
}

func (s *authService) TokenTTL() time.Duration {
	return s.jwtExpiration
}

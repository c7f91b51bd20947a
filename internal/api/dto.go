package api

import (
	"time"

	"coachmarket/internal/domain"
	"coachmarket/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Auth & profile DTOs ---

type RegisterRequest struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
	FullName string      `json:"fullName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse excludes sensitive info like password hash
type UserResponse struct {
	ID         string      `json:"id"`
	ExternalID string      `json:"externalId"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	Role       domain.Role `json:"role"`
	FullName   string      `json:"fullName,omitempty"`
	AvatarURL  string      `json:"avatarUrl,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type AccountResponse struct {
	User          UserResponse          `json:"user"`
	CoachProfile  *domain.CoachProfile  `json:"coachProfile,omitempty"`
	ClientProfile *domain.ClientProfile `json:"clientProfile,omitempty"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

type UpdateProfileRequest struct {
	FullName  *string  `json:"fullName"`
	AvatarURL *string  `json:"avatarUrl"`
	Bio       *string  `json:"bio"`
	Specialty *string  `json:"specialty"`
	Instagram *string  `json:"instagram"`
	Website   *string  `json:"website"`
	HeightCm  *float64 `json:"heightCm"`
	WeightKg  *float64 `json:"weightKg"`
	Goals     *string  `json:"goals"`
}

func (r UpdateProfileRequest) toService() service.ProfileUpdate {
	return service.ProfileUpdate{
		FullName:  r.FullName,
		AvatarURL: r.AvatarURL,
		Bio:       r.Bio,
		Specialty: r.Specialty,
		Instagram: r.Instagram,
		Website:   r.Website,
		HeightCm:  r.HeightCm,
		WeightKg:  r.WeightKg,
		Goals:     r.Goals,
	}
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:         user.ID.Hex(),
		ExternalID: user.ExternalID,
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		FullName:   user.FullName,
		AvatarURL:  user.AvatarURL,
		CreatedAt:  user.CreatedAt,
	}
}

func MapAccountToResponse(account *service.Account) AccountResponse {
	return AccountResponse{
		User:          MapUserToResponse(account.User),
		CoachProfile:  account.Coach,
		ClientProfile: account.Client,
	}
}

// --- Program DTOs ---

// CreateProgramRequest carries the type-specific payloads as raw JSON values;
// they are validated against Type by the program service.
type CreateProgramRequest struct {
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Type          domain.ProgramType   `json:"type"`
	Price         float64              `json:"price"`
	IsPublic      *bool                `json:"isPublic"`
	Status        domain.ProgramStatus `json:"status"`
	CycleLength   *int                 `json:"cycleLength"`
	WorkoutDays   any                  `json:"workoutDays"`
	MealPlans     any                  `json:"mealPlans"`
	PosingDetails any                  `json:"posingDetails"`
}

func (r CreateProgramRequest) toService() service.ProgramDraft {
	return service.ProgramDraft{
		Name:          r.Name,
		Description:   r.Description,
		Type:          r.Type,
		Price:         r.Price,
		IsPublic:      r.IsPublic,
		Status:        r.Status,
		CycleLength:   r.CycleLength,
		WorkoutDays:   r.WorkoutDays,
		MealPlans:     r.MealPlans,
		PosingDetails: r.PosingDetails,
	}
}

type UpdateProgramRequest struct {
	Name          *string               `json:"name"`
	Description   *string               `json:"description"`
	Type          *domain.ProgramType   `json:"type"`
	Price         *float64              `json:"price"`
	IsPublic      *bool                 `json:"isPublic"`
	Status        *domain.ProgramStatus `json:"status"`
	CycleLength   *int                  `json:"cycleLength"`
	WorkoutDays   any                   `json:"workoutDays"`
	MealPlans     any                   `json:"mealPlans"`
	PosingDetails any                   `json:"posingDetails"`
}

func (r UpdateProgramRequest) toService() service.ProgramPatch {
	return service.ProgramPatch{
		Name:          r.Name,
		Description:   r.Description,
		Type:          r.Type,
		Price:         r.Price,
		IsPublic:      r.IsPublic,
		Status:        r.Status,
		CycleLength:   r.CycleLength,
		WorkoutDays:   r.WorkoutDays,
		MealPlans:     r.MealPlans,
		PosingDetails: r.PosingDetails,
	}
}

// payloadFields is the JSON view of a domain.Payload: exactly one of the
// fields is set, matching the program type.
type payloadFields struct {
	Routines      []domain.Routine   `json:"routines,omitempty"`
	MealPlans     []domain.MealPlan  `json:"mealPlans,omitempty"`
	PosingDetails *domain.PosingPlan `json:"posingDetails,omitempty"`
}

func mapPayload(p domain.Payload) payloadFields {
	switch v := p.(type) {
	case domain.LiftingPayload:
		return payloadFields{Routines: v.Routines}
	case domain.DietPayload:
		return payloadFields{MealPlans: v.MealPlans}
	case domain.PosingPayload:
		plan := v.Plan
		return payloadFields{PosingDetails: &plan}
	default:
		return payloadFields{}
	}
}

type ProgramResponse struct {
	ID          string               `json:"id"`
	ExternalID  string               `json:"externalId"`
	CoachID     string               `json:"coachId"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Type        domain.ProgramType   `json:"type"`
	Price       float64              `json:"price"`
	IsPublic    bool                 `json:"isPublic"`
	Status      domain.ProgramStatus `json:"status"`
	CycleLength int                  `json:"cycleLength"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	payloadFields
}

func MapProgramToResponse(p *domain.Program) ProgramResponse {
	return ProgramResponse{
		ID:            p.ID.Hex(),
		ExternalID:    p.ExternalID,
		CoachID:       p.CoachID.Hex(),
		Name:          p.Name,
		Description:   p.Description,
		Type:          p.Type,
		Price:         p.Price,
		IsPublic:      p.IsPublic,
		Status:        p.Status,
		CycleLength:   p.CycleLength,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		payloadFields: mapPayload(p.Payload),
	}
}

func MapProgramsToResponse(programs []domain.Program) []ProgramResponse {
	out := make([]ProgramResponse, len(programs))
	for i := range programs {
		out[i] = MapProgramToResponse(&programs[i])
	}
	return out
}

// --- Enrollment DTOs ---

type EnrollRequest struct {
	ProgramID string `json:"programId" binding:"required"`
}

type CustomizationRequest struct {
	Name          *string `json:"name"`
	Notes         *string `json:"notes"`
	Routines      any     `json:"routines"`
	MealPlans     any     `json:"mealPlans"`
	PosingDetails any     `json:"posingDetails"`
	// Reset lists overrides to drop, e.g. ["routines", "name"].
	Reset []string `json:"reset"`
}

func (r CustomizationRequest) toService() service.CustomizationPatch {
	return service.CustomizationPatch{
		Name:          r.Name,
		Notes:         r.Notes,
		Routines:      r.Routines,
		MealPlans:     r.MealPlans,
		PosingDetails: r.PosingDetails,
		Reset:         r.Reset,
	}
}

// EnrollmentResponse is an enrollment with its customizations resolved.
type EnrollmentResponse struct {
	ID          string             `json:"id"`
	ClientID    string             `json:"clientId"`
	ProgramID   string             `json:"programId"`
	CoachID     string             `json:"coachId"`
	Active      bool               `json:"active"`
	StartDate   time.Time          `json:"startDate"`
	Version     int                `json:"version"`
	Name        string             `json:"name"`
	Notes       string             `json:"notes,omitempty"`
	Type        domain.ProgramType `json:"type"`
	CycleLength int                `json:"cycleLength"`
	Customized  bool               `json:"customized"`
	Progress    domain.Progress    `json:"progress"`
	payloadFields
}

func MapEnrollmentToResponse(r *domain.ResolvedEnrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:            r.Enrollment.ID.Hex(),
		ClientID:      r.Enrollment.ClientID.Hex(),
		ProgramID:     r.Enrollment.ProgramID.Hex(),
		CoachID:       r.Program.CoachID.Hex(),
		Active:        r.Enrollment.Active,
		StartDate:     r.Enrollment.StartDate,
		Version:       r.Enrollment.Version,
		Name:          r.Name,
		Notes:         r.Notes,
		Type:          r.Program.Type,
		CycleLength:   r.Program.CycleLength,
		Customized:    r.Enrollment.Data.Customizations != nil,
		Progress:      r.Enrollment.Data.Progress,
		payloadFields: mapPayload(r.Payload),
	}
}

func MapEnrollmentsToResponse(enrollments []domain.ResolvedEnrollment) []EnrollmentResponse {
	out := make([]EnrollmentResponse, len(enrollments))
	for i := range enrollments {
		out[i] = MapEnrollmentToResponse(&enrollments[i])
	}
	return out
}

// --- Log DTOs ---

type ExerciseLogRequest struct {
	ExerciseID string          `json:"exerciseId"`
	Sets       []domain.SetLog `json:"sets"`
}

type WorkoutLogRequest struct {
	RoutineID    string               `json:"routineId"`
	ExerciseLogs []ExerciseLogRequest `json:"exerciseLogs"`
	Notes        string               `json:"notes"`
	Date         *time.Time           `json:"date"`
}

func mapEntries(in []ExerciseLogRequest) []domain.ExerciseEntry {
	entries := make([]domain.ExerciseEntry, len(in))
	for i, e := range in {
		entries[i] = domain.ExerciseEntry{ExerciseID: e.ExerciseID, Sets: e.Sets}
	}
	return entries
}

type MealLogRequest struct {
	Calories *float64   `json:"calories"`
	Protein  *float64   `json:"protein"`
	Carbs    *float64   `json:"carbs"`
	Fats     *float64   `json:"fats"`
	Notes    string     `json:"notes"`
	Date     *time.Time `json:"date"`
}

func (r MealLogRequest) toService() service.MealInput {
	return service.MealInput{
		Macros: domain.Macros{Calories: r.Calories, Protein: r.Protein, Carbs: r.Carbs, Fats: r.Fats},
		Notes:  r.Notes,
		Date:   r.Date,
	}
}

// --- Check-in DTOs ---

type UploadURLRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type ConfirmUploadRequest struct {
	ObjectKey string `json:"objectKey" binding:"required"`
	FileName  string `json:"fileName"`
	Notes     string `json:"notes"`
}

// --- Beta signup DTOs ---

type BetaSignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type BetaSignupResponse struct {
	ID        primitive.ObjectID `json:"id"`
	Email     string             `json:"email"`
	CreatedAt time.Time          `json:"createdAt"`
}

package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgramType selects which payload shape a Program carries. It is fixed at creation.
type ProgramType string

const (
	ProgramTypeLifting ProgramType = "lifting"
	ProgramTypeDiet    ProgramType = "diet"
	ProgramTypePosing  ProgramType = "posing"
)

func (t ProgramType) Valid() bool {
	switch t {
	case ProgramTypeLifting, ProgramTypeDiet, ProgramTypePosing:
		return true
	}
	return false
}

// ProgramStatus is the lifecycle state of a program.
type ProgramStatus string

const (
	ProgramStatusDraft    ProgramStatus = "draft"
	ProgramStatusActive   ProgramStatus = "active"
	ProgramStatusArchived ProgramStatus = "archived"
)

func (s ProgramStatus) Valid() bool {
	switch s {
	case ProgramStatusDraft, ProgramStatusActive, ProgramStatusArchived:
		return true
	}
	return false
}

// ProgramDataVersion is the current schema tag written into programData.
const ProgramDataVersion = 1

// ProgramData is the persisted shape of the programData column. Older rows may
// hold siblings that belong to a different type; SelectPayload ignores them.
type ProgramData struct {
	Version    int         `bson:"v" json:"v"`
	MealPlans  []MealPlan  `bson:"mealPlans,omitempty" json:"mealPlans,omitempty"`
	PosingPlan *PosingPlan `bson:"posingPlan,omitempty" json:"posingPlan,omitempty"`
}

// Program is a coach-authored template listed on the marketplace.
type Program struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ExternalID  string             `bson:"externalId" json:"externalId"`
	CoachID     primitive.ObjectID `bson:"coachId" json:"coachId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Type        ProgramType        `bson:"type" json:"type"`
	Price       float64            `bson:"price" json:"price"`
	IsPublic    bool               `bson:"isPublic" json:"isPublic"`
	Status      ProgramStatus      `bson:"status" json:"status"`
	CycleLength int                `bson:"cycleLength" json:"cycleLength"` // Expected logs per full cycle
	Data        ProgramData        `bson:"programData" json:"-"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Payload is the active type-specific content, filled by SelectPayload on read.
	Payload Payload `bson:"-" json:"-"`
}

// Routine is one workout day of a lifting program.
type Routine struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProgramID    primitive.ObjectID `bson:"programId" json:"programId"`
	Name         string             `bson:"name" json:"name"`
	DayOfWeek    *int               `bson:"dayOfWeek,omitempty" json:"dayOfWeek,omitempty"` // 1 (Mon) - 7 (Sun)
	OrderInCycle int                `bson:"orderInCycle" json:"orderInCycle"`               // 1-based, unique within program
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Exercises    []Exercise         `bson:"exercises,omitempty" json:"exercises"` // Own collection for templates, embedded in customizations
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// Exercise belongs to exactly one Routine.
type Exercise struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RoutineID      primitive.ObjectID `bson:"routineId" json:"routineId"`
	ProgramID      primitive.ObjectID `bson:"programId" json:"programId"` // Denormalized for cascades
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Sets           int                `bson:"sets" json:"sets"`
	Reps           string             `bson:"reps" json:"reps"` // Free-form: "10", "8-12", "12,10,8"
	RestTime       string             `bson:"restTime,omitempty" json:"restTime,omitempty"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	OrderInRoutine int                `bson:"orderInRoutine" json:"orderInRoutine"` // 1-based, unique within routine
}

// FindExercise returns the exercise with the given hex id, if present.
func (r *Routine) FindExercise(id string) (*Exercise, bool) {
	for i := range r.Exercises {
		if r.Exercises[i].ID.Hex() == id {
			return &r.Exercises[i], true
		}
	}
	return nil, false
}

// MealPlan is one entry of a diet program.
type MealPlan struct {
	MealName        string   `bson:"mealName" json:"mealName"`
	TargetCalories  float64  `bson:"targetCalories" json:"targetCalories"`
	TargetProtein   float64  `bson:"targetProtein" json:"targetProtein"`
	TargetCarbs     float64  `bson:"targetCarbs" json:"targetCarbs"`
	TargetFats      float64  `bson:"targetFats" json:"targetFats"`
	Notes           string   `bson:"notes" json:"notes"`
	FoodSuggestions []string `bson:"foodSuggestions" json:"foodSuggestions"`
}

type CommunicationPreference string

const (
	CommunicationEmail CommunicationPreference = "email"
	CommunicationChat  CommunicationPreference = "chat"
	CommunicationVideo CommunicationPreference = "video"
)

// PosingPlan is the single payload of a posing program.
type PosingPlan struct {
	Bio                     string                  `bson:"bio" json:"bio"`
	Details                 string                  `bson:"details" json:"details"`
	CommunicationPreference CommunicationPreference `bson:"communicationPreference" json:"communicationPreference"`
}

// Payload is the sealed set of type-specific program contents.
// Implemented only by LiftingPayload, DietPayload and PosingPayload.
type Payload interface {
	ProgramType() ProgramType
	isPayload()
}

type LiftingPayload struct {
	Routines []Routine
}

type DietPayload struct {
	MealPlans []MealPlan
}

type PosingPayload struct {
	Plan PosingPlan
}

func (LiftingPayload) ProgramType() ProgramType { return ProgramTypeLifting }
func (DietPayload) ProgramType() ProgramType    { return ProgramTypeDiet }
func (PosingPayload) ProgramType() ProgramType  { return ProgramTypePosing }

func (LiftingPayload) isPayload() {}
func (DietPayload) isPayload()    {}
func (PosingPayload) isPayload()  {}

// SelectPayload returns the one active payload for a program of type t.
// Fields of data that belong to another type are ignored. Routines are only
// consulted for lifting programs.
func SelectPayload(t ProgramType, data ProgramData, routines []Routine) (Payload, error) {
	switch t {
	case ProgramTypeLifting:
		return LiftingPayload{Routines: routines}, nil
	case ProgramTypeDiet:
		return DietPayload{MealPlans: data.MealPlans}, nil
	case ProgramTypePosing:
		var plan PosingPlan
		if data.PosingPlan != nil {
			plan = *data.PosingPlan
		}
		return PosingPayload{Plan: plan}, nil
	default:
		return nil, fmt.Errorf("unknown program type %q", t)
	}
}

// DataForPayload builds the persisted programData for p. Lifting routines live
// in their own collection, so a lifting program stores only the version tag.
func DataForPayload(p Payload) ProgramData {
	data := ProgramData{Version: ProgramDataVersion}
	switch v := p.(type) {
	case LiftingPayload:
	case DietPayload:
		data.MealPlans = v.MealPlans
	case PosingPayload:
		plan := v.Plan
		data.PosingPlan = &plan
	}
	return data
}

// ProgramFilter narrows listPrograms.
type ProgramFilter struct {
	Type       ProgramType
	CoachID    *primitive.ObjectID
	PublicOnly bool
	Status     ProgramStatus
}

// internal/domain/enrollment.go
package domain

import (
	"fmt"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientProgramDataVersion is the current schema tag of clientProgramData.
const ClientProgramDataVersion = 1

// ClientProgram is one enrollment of a Client in a Program. It references the
// template program; routines and exercises are not copied per enrollment.
type ClientProgram struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID  primitive.ObjectID `bson:"clientId" json:"clientId"`
	ProgramID primitive.ObjectID `bson:"programId" json:"programId"`
	Active    bool               `bson:"active" json:"active"`
	StartDate time.Time          `bson:"startDate" json:"startDate"`
	Version   int                `bson:"version" json:"version"` // Bumped on structural customization
	Data      ClientProgramData  `bson:"clientProgramData" json:"clientProgramData"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ClientProgramData struct {
	Version        int             `bson:"v" json:"v"`
	Customizations *Customizations `bson:"customizations,omitempty" json:"customizations,omitempty"`
	Progress       Progress        `bson:"progress" json:"progress"`
}

// Customizations override the template program for one enrollment. A nil
// field falls back to the template; a non-nil field replaces it entirely.
type Customizations struct {
	Name          *string     `bson:"name,omitempty" json:"name,omitempty"`
	Notes         *string     `bson:"notes,omitempty" json:"notes,omitempty"`
	Routines      []Routine   `bson:"routines" json:"routines,omitempty"`
	MealPlans     []MealPlan  `bson:"mealPlans" json:"mealPlans,omitempty"`
	PosingDetails *PosingPlan `bson:"posingDetails,omitempty" json:"posingDetails,omitempty"`
}

// Structural reports whether the customization replaces program content
// rather than display fields only.
func (c *Customizations) Structural() bool {
	return c != nil && (c.Routines != nil || c.MealPlans != nil || c.PosingDetails != nil)
}

// Progress is the enrollment-scoped completion record.
type Progress struct {
	Completed   []string       `bson:"completed" json:"completed"` // Routine ids, no duplicates
	Notes       []ProgressNote `bson:"notes" json:"notes"`
	LastWorkout *time.Time     `bson:"lastWorkout,omitempty" json:"lastWorkout,omitempty"`
	Streak      int            `bson:"streak" json:"streak"`
}

type ProgressNote struct {
	Date      time.Time `bson:"date" json:"date"`
	RoutineID string    `bson:"routineId" json:"routineId"`
	Note      string    `bson:"note" json:"note"`
}

// NewProgress returns the empty progress record of a fresh enrollment.
func NewProgress() Progress {
	return Progress{Completed: []string{}, Notes: []ProgressNote{}}
}

// FoldWorkout returns p with a completed workout for routineID applied.
// The routine id is added at most once; a non-empty note is appended.
func (p Progress) FoldWorkout(routineID, note string, now time.Time) Progress {
	out := Progress{
		Completed:   slices.Clone(p.Completed),
		Notes:       slices.Clone(p.Notes),
		LastWorkout: p.LastWorkout,
		Streak:      p.Streak,
	}
	if out.Completed == nil {
		out.Completed = []string{}
	}
	if out.Notes == nil {
		out.Notes = []ProgressNote{}
	}
	if !slices.Contains(out.Completed, routineID) {
		out.Completed = append(out.Completed, routineID)
	}
	if note != "" {
		out.Notes = append(out.Notes, ProgressNote{Date: now, RoutineID: routineID, Note: note})
	}

	today := now.UTC().Truncate(24 * time.Hour)
	switch {
	case out.LastWorkout == nil:
		out.Streak = 1
	default:
		last := out.LastWorkout.UTC().Truncate(24 * time.Hour)
		switch gap := today.Sub(last); {
		case gap <= 0:
			if out.Streak == 0 {
				out.Streak = 1
			}
		case gap == 24*time.Hour:
			out.Streak++
		default:
			out.Streak = 1
		}
	}
	last := now
	out.LastWorkout = &last
	return out
}

// ResolvedEnrollment is an enrollment as seen by its client: template fields
// with the enrollment's customizations applied field by field.
type ResolvedEnrollment struct {
	Enrollment ClientProgram
	Program    Program
	Name       string
	Notes      string
	Payload    Payload
}

// ResolveEnrollment applies cp's customizations over program. program.Payload
// must already be selected for program.Type.
func ResolveEnrollment(cp ClientProgram, program Program) (ResolvedEnrollment, error) {
	res := ResolvedEnrollment{
		Enrollment: cp,
		Program:    program,
		Name:       program.Name,
		Notes:      program.Description,
		Payload:    program.Payload,
	}
	cust := cp.Data.Customizations
	if cust == nil {
		if res.Payload == nil {
			return res, fmt.Errorf("program %s has no payload selected", program.ID.Hex())
		}
		return res, nil
	}
	if cust.Name != nil {
		res.Name = *cust.Name
	}
	if cust.Notes != nil {
		res.Notes = *cust.Notes
	}

	switch p := program.Payload.(type) {
	case LiftingPayload:
		if cust.Routines != nil {
			p.Routines = cust.Routines
		}
		res.Payload = p
	case DietPayload:
		if cust.MealPlans != nil {
			p.MealPlans = cust.MealPlans
		}
		res.Payload = p
	case PosingPayload:
		if cust.PosingDetails != nil {
			p.Plan = *cust.PosingDetails
		}
		res.Payload = p
	default:
		return res, fmt.Errorf("program %s has no payload selected", program.ID.Hex())
	}
	return res, nil
}

// Routines returns the effective routines of a lifting enrollment, nil otherwise.
func (r ResolvedEnrollment) Routines() []Routine {
	if p, ok := r.Payload.(LiftingPayload); ok {
		return p.Routines
	}
	return nil
}

// FindRoutine looks up an effective routine by hex id.
func (r ResolvedEnrollment) FindRoutine(id string) (*Routine, bool) {
	routines := r.Routines()
	for i := range routines {
		if routines[i].ID.Hex() == id {
			return &routines[i], true
		}
	}
	return nil, false
}

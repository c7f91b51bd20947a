package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnknownExerciseName is recorded for logged exercise ids that no longer exist
// in the enrollment's routine (for instance after a program restructure).
const UnknownExerciseName = "Unknown Exercise"

// LogDataVersion is the current schema tag of log payloads.
const LogDataVersion = 1

// WorkoutLog records one completed routine session. Display names are copied
// in at write time so history stays readable after the program changes.
type WorkoutLog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID        primitive.ObjectID `bson:"clientId" json:"clientId"`
	ClientProgramID primitive.ObjectID `bson:"clientProgramId" json:"clientProgramId"`
	RoutineID       primitive.ObjectID `bson:"routineId" json:"routineId"`
	Date            time.Time          `bson:"date" json:"date"`
	Data            WorkoutLogData     `bson:"data" json:"data"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type WorkoutLogData struct {
	Version      int           `bson:"v" json:"v"`
	ExerciseLogs []ExerciseLog `bson:"exerciseLogs" json:"exerciseLogs"`
	RoutineName  string        `bson:"routineName" json:"routineName"`
	Notes        string        `bson:"notes,omitempty" json:"notes,omitempty"`
}

type ExerciseLog struct {
	ExerciseID   string   `bson:"exerciseId" json:"exerciseId"`
	ExerciseName string   `bson:"exerciseName" json:"exerciseName"`
	Sets         []SetLog `bson:"sets" json:"sets"`
}

type SetLog struct {
	Weight *float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Reps   int      `bson:"reps" json:"reps"`
}

// ExerciseEntry is one exercise as submitted by the client, before names are resolved.
type ExerciseEntry struct {
	ExerciseID string
	Sets       []SetLog
}

// DenormalizeEntries resolves display names for entries against routine.
// Names already known from a previous version of the log win over the routine,
// then the routine, then UnknownExerciseName.
func DenormalizeEntries(routine *Routine, entries []ExerciseEntry, previous []ExerciseLog) []ExerciseLog {
	known := make(map[string]string, len(previous))
	for _, p := range previous {
		known[p.ExerciseID] = p.ExerciseName
	}
	out := make([]ExerciseLog, len(entries))
	for i, e := range entries {
		name, ok := known[e.ExerciseID]
		if !ok && routine != nil {
			if ex, found := routine.FindExercise(e.ExerciseID); found {
				name, ok = ex.Name, true
			}
		}
		if !ok {
			name = UnknownExerciseName
		}
		sets := e.Sets
		if sets == nil {
			sets = []SetLog{}
		}
		out[i] = ExerciseLog{ExerciseID: e.ExerciseID, ExerciseName: name, Sets: sets}
	}
	return out
}

// MealLog records one meal. Macros are top-level fields for aggregation.
type MealLog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID        primitive.ObjectID `bson:"clientId" json:"clientId"`
	ClientProgramID primitive.ObjectID `bson:"clientProgramId" json:"clientProgramId"`
	Date            time.Time          `bson:"date" json:"date"`
	Calories        float64            `bson:"calories" json:"calories"`
	Protein         float64            `bson:"protein" json:"protein"`
	Carbs           float64            `bson:"carbs" json:"carbs"`
	Fats            float64            `bson:"fats" json:"fats"`
	Data            MealLogData        `bson:"data" json:"data"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type MealLogData struct {
	Version int    `bson:"v" json:"v"`
	Notes   string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Macros is a meal submission; absent values count as 0.
type Macros struct {
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fats     *float64
}

// Apply copies the macros onto log, defaulting absent values to 0.
func (m Macros) Apply(log *MealLog) {
	log.Calories = valueOrZero(m.Calories)
	log.Protein = valueOrZero(m.Protein)
	log.Carbs = valueOrZero(m.Carbs)
	log.Fats = valueOrZero(m.Fats)
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// BetaSignup is a standalone lead-capture record.
type BetaSignup struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

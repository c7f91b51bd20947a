package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutDay is the authoring form of a Routine: what a coach submits as
// workoutDays when creating or restructuring a lifting program.
type WorkoutDay struct {
	Name      string
	DayOfWeek *int
	Notes     string
	Exercises []ExerciseDraft
}

type ExerciseDraft struct {
	Name        string
	Description string
	Sets        int
	Reps        string
	RestTime    string
	Notes       string
}

// BuildRoutines turns workout days into routines for programID, assigning fresh
// ids and 1-based positions from array order.
func BuildRoutines(programID primitive.ObjectID, days []WorkoutDay) []Routine {
	routines := make([]Routine, len(days))
	for i, day := range days {
		routineID := primitive.NewObjectID()
		exercises := make([]Exercise, len(day.Exercises))
		for j, ex := range day.Exercises {
			exercises[j] = Exercise{
				ID:             primitive.NewObjectID(),
				RoutineID:      routineID,
				ProgramID:      programID,
				Name:           ex.Name,
				Description:    ex.Description,
				Sets:           ex.Sets,
				Reps:           ex.Reps,
				RestTime:       ex.RestTime,
				Notes:          ex.Notes,
				OrderInRoutine: j + 1,
			}
		}
		routines[i] = Routine{
			ID:           routineID,
			ProgramID:    programID,
			Name:         day.Name,
			DayOfWeek:    day.DayOfWeek,
			OrderInCycle: i + 1,
			Notes:        day.Notes,
			Exercises:    exercises,
		}
	}
	return routines
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coachmarket/internal/domain"
	"coachmarket/internal/repository"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutInput is a completed routine session as submitted by a client.
type WorkoutInput struct {
	RoutineID string
	Entries   []domain.ExerciseEntry
	Notes     string
	Date      *time.Time // Defaults to now
}

// WorkoutUpdate replaces the mutable payload of a workout log.
type WorkoutUpdate struct {
	Entries []domain.ExerciseEntry
	Notes   string
}

// MealInput is a meal as submitted by a client. Absent macros count as 0.
type MealInput struct {
	Macros domain.Macros
	Notes  string
	Date   *time.Time
}

// LogService records workouts and meals against enrollments.
type LogService interface {
	LogWorkout(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID, in WorkoutInput) (*domain.WorkoutLog, error)
	LogMeal(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID, in MealInput) (*domain.MealLog, error)
	UpdateWorkoutLog(ctx context.Context, principal domain.Principal, logID primitive.ObjectID, in WorkoutUpdate) (*domain.WorkoutLog, error)
	UpdateMealLog(ctx context.Context, principal domain.Principal, logID primitive.ObjectID, in MealInput) (*domain.MealLog, error)
	DeleteWorkoutLog(ctx context.Context, principal domain.Principal, logID primitive.ObjectID) error
	DeleteMealLog(ctx context.Context, principal domain.Principal, logID primitive.ObjectID) error
	ListWorkoutHistory(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID) ([]domain.WorkoutLog, error)
	ListMealHistory(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID) ([]domain.MealLog, error)
}

type logService struct {
	tx          repository.TxManager
	programs    repository.ProgramRepository
	routines    repository.RoutineRepository
	enrollments repository.EnrollmentRepository
	workoutLogs repository.WorkoutLogRepository
	mealLogs    repository.MealLogRepository
	now         func() time.Time
}

func NewLogService(
	tx repository.TxManager,
	programs repository.ProgramRepository,
	routines repository.RoutineRepository,
	enrollments repository.EnrollmentRepository,
	workoutLogs repository.WorkoutLogRepository,
	mealLogs repository.MealLogRepository,
) LogService {
	return &logService{
		tx:          tx,
		programs:    programs,
		routines:    routines,
		enrollments: enrollments,
		workoutLogs: workoutLogs,
		mealLogs:    mealLogs,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// LogWorkout validates ownership and the routine, stores the log with names
// copied in, and folds the session into the enrollment's progress. The insert
// and the progress update share one transaction.
func (s *logService) LogWorkout(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID, in WorkoutInput) (*domain.WorkoutLog, error) {
	if err := principal.RequireRole(domain.RoleClient); err != nil {
		return nil, err
	}
	if err := validateEntries(in.Entries); err != nil {
		return nil, err
	}
	routineID, err := primitive.ObjectIDFromHex(in.RoutineID)
	if err != nil {
		return nil, domain.NotFoundErrorf("routine not found")
	}

	now := s.now()
	date := now
	if in.Date != nil {
		date = in.Date.UTC()
	}

	var workout *domain.WorkoutLog
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		cp, err := s.enrollments.GetForClient(ctx, enrollmentID, principal.UserID)
		if err != nil {
			return err
		}
		resolved, err := resolveEnrollment(ctx, s.programs, s.routines, cp)
		if err != nil {
			return err
		}
		routine, ok := resolved.FindRoutine(in.RoutineID)
		if !ok {
			return domain.NotFoundErrorf("routine not found")
		}

		workout = &domain.WorkoutLog{
			ClientID:        principal.UserID,
			ClientProgramID: cp.ID,
			RoutineID:       routineID,
			Date:            date,
			Data: domain.WorkoutLogData{
				Version:      domain.LogDataVersion,
				ExerciseLogs: domain.DenormalizeEntries(routine, in.Entries, nil),
				RoutineName:  routine.Name,
				Notes:        in.Notes,
			},
		}
		if _, err = s.workoutLogs.Create(ctx, workout); err != nil {
			return err
		}

		progress := cp.Data.Progress.FoldWorkout(in.RoutineID, strings.TrimSpace(in.Notes), now)
		return s.enrollments.SaveProgress(ctx, cp.ID, progress)
	})
	if err != nil {
		return nil, translate("log workout", err, "enrollment")
	}

	log.WithFields(log.Fields{
		"logId":        workout.ID.Hex(),
		"enrollmentId": enrollmentID.Hex(),
		"routineId":    in.RoutineID,
	}).Debug("workout logged")
	return workout, nil
}

// LogMeal stores a meal against an enrollment of the calling client.
func (s *logService) LogMeal(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID, in MealInput) (*domain.MealLog, error) {
	if err := principal.RequireRole(domain.RoleClient); err != nil {
		return nil, err
	}
	if err := validateMacros(in.Macros); err != nil {
		return nil, err
	}

	cp, err := s.enrollments.GetForClient(ctx, enrollmentID, principal.UserID)
	if err != nil {
		return nil, translate("log meal", err, "enrollment")
	}

	meal := &domain.MealLog{
		ClientID:        principal.UserID,
		ClientProgramID: cp.ID,
		Data:            domain.MealLogData{Version: domain.LogDataVersion, Notes: in.Notes},
	}
	if in.Date != nil {
		meal.Date = in.Date.UTC()
	}
	in.Macros.Apply(meal)

	if _, err = s.mealLogs.Create(ctx, meal); err != nil {
		return nil, translate("log meal", err, "meal log")
	}
	return meal, nil
}

// UpdateWorkoutLog replaces the exercise entries and notes of an owned log.
// Names already recorded on the log are kept; new exercise ids are looked up
// in the enrollment's current routine.
func (s *logService) UpdateWorkoutLog(ctx context.Context, principal domain.Principal, logID primitive.ObjectID, in WorkoutUpdate) (*domain.WorkoutLog, error) {
	if err := principal.RequireRole(domain.RoleClient); err != nil {
		return nil, err
	}
	if err := validateEntries(in.Entries); err != nil {
		return nil, err
	}

	var workout *domain.WorkoutLog
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		workout, err = s.workoutLogs.GetForClient(ctx, logID, principal.UserID)
		if err != nil {
			return err
		}

		var routine *domain.Routine
		cp, err := s.enrollments.GetForClient(ctx, workout.ClientProgramID, principal.UserID)
		switch {
		case err == nil:
			resolved, rerr := resolveEnrollment(ctx, s.programs, s.routines, cp)
			if rerr != nil && !errors.Is(rerr, repository.ErrNotFound) {
				return rerr
			}
			if resolved != nil {
				routine, _ = resolved.FindRoutine(workout.RoutineID.Hex())
			}
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}

		workout.Data = domain.WorkoutLogData{
			Version:      domain.LogDataVersion,
			ExerciseLogs: domain.DenormalizeEntries(routine, in.Entries, workout.Data.ExerciseLogs),
			RoutineName:  workout.Data.RoutineName,
			Notes:        in.Notes,
		}
		workout.UpdatedAt = s.now()
		return s.workoutLogs.UpdateData(ctx, workout.ID, principal.UserID, workout.Data)
	})
	if err != nil {
		return nil, translate("update workout log", err, "workout log")
	}
	return workout, nil
}

// UpdateMealLog replaces macros and notes of an owned meal log.
func (s *logService) UpdateMealLog(ctx context.Context, principal domain.Principal, logID primitive.ObjectID, in MealInput) (*domain.MealLog, error) {
	if err := principal.RequireRole(domain.RoleClient); err != nil {
		return nil, err
	}
	if err := validateMacros(in.Macros); err != nil {
		return nil, err
	}

	meal, err := s.mealLogs.GetForClient(ctx, logID, principal.UserID)
	if err != nil {
		return nil, translate("update meal log", err, "meal log")
	}
	in.Macros.Apply(meal)
	meal.Data = domain.MealLogData{Version: domain.LogDataVersion, Notes: in.Notes}
	if in.Date != nil {
		meal.Date = in.Date.UTC()
	}
	if err = s.mealLogs.Update(ctx, meal); err != nil {
		return nil, translate("update meal log", err, "meal log")
	}
	return meal, nil
}

// DeleteWorkoutLog hard-deletes an owned log. Progress credited by the log is
// kept: a completed routine stays completed.
func (s *logService) DeleteWorkoutLog(ctx context.Context, principal domain.Principal, logID primitive.ObjectID) error {
	if err := principal.RequireRole(domain.RoleClient); err != nil {
		return err
	}
	if err := s.workoutLogs.Delete(ctx, logID, principal.UserID); err != nil {
		return translate("delete workout log", err, "workout log")
	}
	return nil
}

func (s *logService) DeleteMealLog(ctx context.Context, principal domain.Principal, logID primitive.ObjectID) error {
	if err := principal.RequireRole(domain.RoleClient); err != nil {
		return err
	}
	if err := s.mealLogs.Delete(ctx, logID, principal.UserID); err != nil {
		return translate("delete meal log", err, "meal log")
	}
	return nil
}

// ListWorkoutHistory returns the logs of an enrollment owned by the caller, newest first.
func (s *logService) ListWorkoutHistory(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID) ([]domain.WorkoutLog, error) {
	if err := s.requireOwnedEnrollment(ctx, principal, enrollmentID); err != nil {
		return nil, err
	}
	logs, err := s.workoutLogs.ListByEnrollment(ctx, principal.UserID, enrollmentID)
	if err != nil {
		return nil, translate("list workout history", err, "enrollment")
	}
	return logs, nil
}

// ListMealHistory returns the meal logs of an enrollment owned by the caller, newest first.
func (s *logService) ListMealHistory(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID) ([]domain.MealLog, error) {
	if err := s.requireOwnedEnrollment(ctx, principal, enrollmentID); err != nil {
		return nil, err
	}
	logs, err := s.mealLogs.ListByEnrollment(ctx, principal.UserID, enrollmentID)
	if err != nil {
		return nil, translate("list meal history", err, "enrollment")
	}
	return logs, nil
}

func (s *logService) requireOwnedEnrollment(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID) error {
	if err := principal.RequireRole(domain.RoleClient); err != nil {
		return err
	}
	if _, err := s.enrollments.GetForClient(ctx, enrollmentID, principal.UserID); err != nil {
		return translate("get enrollment", err, "enrollment")
	}
	return nil
}

func validateEntries(entries []domain.ExerciseEntry) error {
	verr := &domain.ValidationError{}
	for i, e := range entries {
		if e.ExerciseID == "" {
			verr.Add(fmt.Sprintf("exerciseLogs[%d].exerciseId", i), "is required")
		}
		for j, set := range e.Sets {
			if set.Reps < 0 {
				verr.Add(fmt.Sprintf("exerciseLogs[%d].sets[%d].reps", i, j), "must be >= 0")
			}
			if set.Weight != nil && *set.Weight < 0 {
				verr.Add(fmt.Sprintf("exerciseLogs[%d].sets[%d].weight", i, j), "must be >= 0")
			}
		}
	}
	return verr.OrNil()
}

func validateMacros(m domain.Macros) error {
	verr := &domain.ValidationError{}
	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"calories", m.Calories},
		{"protein", m.Protein},
		{"carbs", m.Carbs},
		{"fats", m.Fats},
	} {
		if f.value != nil && *f.value < 0 {
			verr.Add(f.name, "must be >= 0")
		}
	}
	return verr.OrNil()
}

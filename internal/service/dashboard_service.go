package service

import (
	"context"
	"time"

	"coachmarket/internal/domain"
	"coachmarket/internal/reporting"
	"coachmarket/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// recentLimit caps the recent-activity lists on the client dashboard.
const recentLimit = 5

type ClientDashboard struct {
	TotalWorkouts     int                 `json:"totalWorkouts"`
	TotalMeals        int                 `json:"totalMeals"`
	AverageCalories   int                 `json:"averageCalories"`
	ProgressVs30Days  int                 `json:"progressVs30Days"`
	ActiveEnrollments int                 `json:"activeEnrollments"`
	RecentWorkouts    []domain.WorkoutLog `json:"recentWorkouts"`
	RecentMeals       []domain.MealLog    `json:"recentMeals"`
}

type EnrollmentProgress struct {
	EnrollmentID      primitive.ObjectID `json:"enrollmentId"`
	ProgramID         primitive.ObjectID `json:"programId"`
	ProgramName       string             `json:"programName"`
	ProgramType       domain.ProgramType `json:"programType"`
	Active            bool               `json:"active"`
	WorkoutCount      int                `json:"workoutCount"`
	CompletedRoutines int                `json:"completedRoutines"`
	Streak            int                `json:"streak"`
	LastWorkout       *time.Time         `json:"lastWorkout,omitempty"`
}

type ClientProgress struct {
	TotalWorkouts    int                     `json:"totalWorkouts"`
	TotalMeals       int                     `json:"totalMeals"`
	AverageCalories  int                     `json:"averageCalories"`
	AverageMacros    reporting.MacroAverages `json:"averageMacros"`
	ProgressVs30Days int                     `json:"progressVs30Days"`
	Enrollments      []EnrollmentProgress    `json:"enrollments"`
}

// CoachClientStat is one active enrollment as seen on the coach dashboard.
type CoachClientStat struct {
	ClientID          primitive.ObjectID `json:"clientId"`
	DisplayName       string             `json:"displayName"`
	Email             string             `json:"email"`
	EnrollmentID      primitive.ObjectID `json:"enrollmentId"`
	ProgramID         primitive.ObjectID `json:"programId"`
	ProgramName       string             `json:"programName"`
	ProgramType       domain.ProgramType `json:"programType"`
	StartDate         time.Time          `json:"startDate"`
	WorkoutCount      int                `json:"workoutCount"`
	ProgramCompletion int                `json:"programCompletion"` // Percent of cycleLength, not of 30 days
	WorkoutFrequency  float64            `json:"workoutFrequency"`
	LastWorkout       *time.Time         `json:"lastWorkout,omitempty"`
}

type CoachDashboard struct {
	TotalPrograms     int                        `json:"totalPrograms"`
	TotalClients      int                        `json:"totalClients"`
	ActiveEnrollments int                        `json:"activeEnrollments"`
	ProgramTypes      map[domain.ProgramType]int `json:"programTypes"`
	Clients           []CoachClientStat          `json:"clients"`
}

// DashboardService computes read-time statistics for both roles.
type DashboardService interface {
	ClientDashboard(ctx context.Context, principal domain.Principal) (*ClientDashboard, error)
	ClientProgress(ctx context.Context, principal domain.Principal) (*ClientProgress, error)
	CoachDashboard(ctx context.Context, principal domain.Principal) (*CoachDashboard, error)
}

type dashboardService struct {
	users       repository.UserRepository
	programs    repository.ProgramRepository
	enrollments repository.EnrollmentRepository
	workoutLogs repository.WorkoutLogRepository
	mealLogs    repository.MealLogRepository
}

func NewDashboardService(
	users repository.UserRepository,
	programs repository.ProgramRepository,
	enrollments repository.EnrollmentRepository,
	workoutLogs repository.WorkoutLogRepository,
	mealLogs repository.MealLogRepository,
) DashboardService {
	return &dashboardService{
		users:       users,
		programs:    programs,
		enrollments: enrollments,
		workoutLogs: workoutLogs,
		mealLogs:    mealLogs,
	}
}

// clientActivity holds everything a client view needs, fetched concurrently.
type clientActivity struct {
	workouts    []domain.WorkoutLog
	meals       []domain.MealLog
	enrollments []domain.ClientProgram
}

func (s *dashboardService) loadClientActivity(ctx context.Context, clientID primitive.ObjectID) (*clientActivity, error) {
	var a clientActivity
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		a.workouts, err = s.workoutLogs.ListByClient(gctx, clientID, 0)
		return err
	})
	g.Go(func() (err error) {
		a.meals, err = s.mealLogs.ListByClient(gctx, clientID, 0)
		return err
	})
	g.Go(func() (err error) {
		a.enrollments, err = s.enrollments.ListByClient(gctx, clientID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *dashboardService) ClientDashboard(ctx context.Context, principal domain.Principal) (*ClientDashboard, error) {
	if err := principal.RequireRole(domain.RoleClient); err != nil {
		return nil, err
	}
	a, err := s.loadClientActivity(ctx, principal.UserID)
	if err != nil {
		return nil, translate("client dashboard", err, "client")
	}

	active := 0
	for _, e := range a.enrollments {
		if e.Active {
			active++
		}
	}
	return &ClientDashboard{
		TotalWorkouts:     len(a.workouts),
		TotalMeals:        len(a.meals),
		AverageCalories:   reporting.AverageCalories(a.meals),
		ProgressVs30Days:  reporting.ProgressVs30Days(len(a.workouts)),
		ActiveEnrollments: active,
		RecentWorkouts:    a.workouts[:min(recentLimit, len(a.workouts))],
		RecentMeals:       a.meals[:min(recentLimit, len(a.meals))],
	}, nil
}

func (s *dashboardService) ClientProgress(ctx context.Context, principal domain.Principal) (*ClientProgress, error) {
	if err := principal.RequireRole(domain.RoleClient); err != nil {
		return nil, err
	}
	a, err := s.loadClientActivity(ctx, principal.UserID)
	if err != nil {
		return nil, translate("client progress", err, "client")
	}

	programIDs := make([]primitive.ObjectID, 0, len(a.enrollments))
	for _, e := range a.enrollments {
		programIDs = append(programIDs, e.ProgramID)
	}
	programs, err := s.programs.GetByIDs(ctx, programIDs)
	if err != nil {
		return nil, translate("client progress", err, "program")
	}
	byID := make(map[primitive.ObjectID]domain.Program, len(programs))
	for _, p := range programs {
		byID[p.ID] = p
	}

	perEnrollment := make(map[primitive.ObjectID]int, len(a.enrollments))
	for _, w := range a.workouts {
		perEnrollment[w.ClientProgramID]++
	}

	out := &ClientProgress{
		TotalWorkouts:    len(a.workouts),
		TotalMeals:       len(a.meals),
		AverageCalories:  reporting.AverageCalories(a.meals),
		AverageMacros:    reporting.AverageMacros(a.meals),
		ProgressVs30Days: reporting.ProgressVs30Days(len(a.workouts)),
		Enrollments:      make([]EnrollmentProgress, 0, len(a.enrollments)),
	}
	for _, e := range a.enrollments {
		p := byID[e.ProgramID]
		name := p.Name
		if c := e.Data.Customizations; c != nil && c.Name != nil {
			name = *c.Name
		}
		out.Enrollments = append(out.Enrollments, EnrollmentProgress{
			EnrollmentID:      e.ID,
			ProgramID:         e.ProgramID,
			ProgramName:       name,
			ProgramType:       p.Type,
			Active:            e.Active,
			WorkoutCount:      perEnrollment[e.ID],
			CompletedRoutines: len(e.Data.Progress.Completed),
			Streak:            e.Data.Progress.Streak,
			LastWorkout:       e.Data.Progress.LastWorkout,
		})
	}
	return out, nil
}

// CoachDashboard reports on every active enrollment in the coach's programs.
// Completion is measured against each program's cycle length.
func (s *dashboardService) CoachDashboard(ctx context.Context, principal domain.Principal) (*CoachDashboard, error) {
	if err := principal.RequireRole(domain.RoleCoach); err != nil {
		return nil, err
	}

	coachID := principal.UserID
	programs, err := s.programs.List(ctx, domain.ProgramFilter{CoachID: &coachID})
	if err != nil {
		return nil, translate("coach dashboard", err, "program")
	}
	byID := make(map[primitive.ObjectID]domain.Program, len(programs))
	programIDs := make([]primitive.ObjectID, len(programs))
	for i, p := range programs {
		byID[p.ID] = p
		programIDs[i] = p.ID
	}

	enrollments, err := s.enrollments.ListActiveByProgramIDs(ctx, programIDs)
	if err != nil {
		return nil, translate("coach dashboard", err, "enrollment")
	}

	seen := map[primitive.ObjectID]bool{}
	var clientIDs []primitive.ObjectID
	enrollmentIDs := make([]primitive.ObjectID, len(enrollments))
	for i, e := range enrollments {
		enrollmentIDs[i] = e.ID
		if !seen[e.ClientID] {
			seen[e.ClientID] = true
			clientIDs = append(clientIDs, e.ClientID)
		}
	}

	var users []domain.User
	var counts map[primitive.ObjectID]int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = s.users.GetByIDs(gctx, clientIDs)
		return err
	})
	g.Go(func() (err error) {
		counts, err = s.workoutLogs.CountByEnrollments(gctx, enrollmentIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, translate("coach dashboard", err, "client")
	}
	usersByID := make(map[primitive.ObjectID]domain.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	out := &CoachDashboard{
		TotalPrograms:     len(programs),
		TotalClients:      len(clientIDs),
		ActiveEnrollments: len(enrollments),
		ProgramTypes:      reporting.ProgramTypeHistogram(programs),
		Clients:           make([]CoachClientStat, 0, len(enrollments)),
	}
	for _, e := range enrollments {
		p := byID[e.ProgramID]
		u := usersByID[e.ClientID]
		n := counts[e.ID]
		out.Clients = append(out.Clients, CoachClientStat{
			ClientID:          e.ClientID,
			DisplayName:       reporting.ClientDisplayName(u.FullName, u.Username),
			Email:             u.Email,
			EnrollmentID:      e.ID,
			ProgramID:         p.ID,
			ProgramName:       p.Name,
			ProgramType:       p.Type,
			StartDate:         e.StartDate,
			WorkoutCount:      n,
			ProgramCompletion: reporting.ProgramCompletion(n, p.CycleLength),
			WorkoutFrequency:  reporting.WorkoutFrequency(n, p.CycleLength),
			LastWorkout:       e.Data.Progress.LastWorkout,
		})
	}
	return out, nil
}

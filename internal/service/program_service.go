package service

import (
	"context"
	"errors"
	"strings"

	"coachmarket/internal/domain"
	"coachmarket/internal/repository"
	"coachmarket/internal/storage"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgramDraft is a coach's create request. The type-specific payloads are
// untrusted JSON values and are validated against Type.
type ProgramDraft struct {
	Name          string
	Description   string
	Type          domain.ProgramType
	Price         float64
	IsPublic      *bool
	Status        domain.ProgramStatus
	CycleLength   *int
	WorkoutDays   any
	MealPlans     any
	PosingDetails any
}

// ProgramPatch is a partial update. Nil fields are left unchanged.
type ProgramPatch struct {
	Name          *string
	Description   *string
	Type          *domain.ProgramType // Must match the stored type when present
	Price         *float64
	IsPublic      *bool
	Status        *domain.ProgramStatus
	CycleLength   *int
	WorkoutDays   any // Replaces every routine of a lifting program
	MealPlans     any
	PosingDetails any
}

// ProgramService owns the coach-authored template side of the data model.
type ProgramService interface {
	Create(ctx context.Context, principal domain.Principal, draft ProgramDraft) (*domain.Program, error)
	Update(ctx context.Context, principal domain.Principal, programID primitive.ObjectID, patch ProgramPatch) (*domain.Program, error)
	Delete(ctx context.Context, principal domain.Principal, programID primitive.ObjectID) error
	// List returns the public, active marketplace, optionally narrowed by type.
	List(ctx context.Context, principal domain.Principal, programType domain.ProgramType) ([]domain.Program, error)
	// ListMine returns every program of the calling coach, any status.
	ListMine(ctx context.Context, principal domain.Principal) ([]domain.Program, error)
	Get(ctx context.Context, principal domain.Principal, programID primitive.ObjectID) (*domain.Program, error)
}

type programService struct {
	tx          repository.TxManager
	programs    repository.ProgramRepository
	routines    repository.RoutineRepository
	enrollments repository.EnrollmentRepository
	workoutLogs repository.WorkoutLogRepository
	mealLogs    repository.MealLogRepository
	checkIns    repository.CheckInRepository
	files       storage.FileStorage // Optional; nil skips object cleanup
}

// NewProgramService creates a new instance of programService.
func NewProgramService(
	tx repository.TxManager,
	programs repository.ProgramRepository,
	routines repository.RoutineRepository,
	enrollments repository.EnrollmentRepository,
	workoutLogs repository.WorkoutLogRepository,
	mealLogs repository.MealLogRepository,
	checkIns repository.CheckInRepository,
	files storage.FileStorage,
) ProgramService {
	return &programService{
		tx:          tx,
		programs:    programs,
		routines:    routines,
		enrollments: enrollments,
		workoutLogs: workoutLogs,
		mealLogs:    mealLogs,
		checkIns:    checkIns,
		files:       files,
	}
}

// Create validates the draft and stores the program together with its
// routines and exercises in one transaction.
func (s *programService) Create(ctx context.Context, principal domain.Principal, draft ProgramDraft) (*domain.Program, error) {
	if err := principal.RequireRole(domain.RoleCoach); err != nil {
		return nil, err
	}

	verr := &domain.ValidationError{}
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		verr.Add("name", "is required")
	}
	if !draft.Type.Valid() {
		verr.Add("type", "must be one of lifting, diet, posing")
	}
	if draft.Price < 0 {
		verr.Add("price", "must be >= 0")
	}
	status := draft.Status
	if status == "" {
		status = domain.ProgramStatusActive
	} else if !status.Valid() {
		verr.Add("status", "must be one of draft, active, archived")
	}
	cycleLength := 1
	if draft.CycleLength != nil {
		cycleLength = *draft.CycleLength
		if cycleLength < 1 {
			verr.Add("cycleLength", "must be >= 1")
		}
	}
	isPublic := true
	if draft.IsPublic != nil {
		isPublic = *draft.IsPublic
	}

	var payload domain.Payload
	var days []domain.WorkoutDay
	if draft.Type.Valid() {
		payload, days = parsePayload(verr, draft.Type, draft.WorkoutDays, draft.MealPlans, draft.PosingDetails, true)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	program := &domain.Program{
		ID:          primitive.NewObjectID(),
		ExternalID:  uuid.NewString(),
		CoachID:     principal.UserID,
		Name:        name,
		Description: draft.Description,
		Type:        draft.Type,
		Price:       draft.Price,
		IsPublic:    isPublic,
		Status:      status,
		CycleLength: cycleLength,
	}
	if draft.Type == domain.ProgramTypeLifting {
		payload = domain.LiftingPayload{Routines: domain.BuildRoutines(program.ID, days)}
	}
	program.Data = domain.DataForPayload(payload)

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.programs.Create(ctx, program); err != nil {
			return err
		}
		if lifting, ok := payload.(domain.LiftingPayload); ok {
			return s.routines.CreateMany(ctx, lifting.Routines)
		}
		return nil
	})
	if err != nil {
		return nil, translate("create program", err, "program")
	}

	program.Payload = payload
	log.WithFields(log.Fields{"programId": program.ID.Hex(), "coachId": principal.UserID.Hex(), "type": program.Type}).
		Info("program created")
	return program, nil
}

// Update applies patch to a program owned by the caller. A workoutDays value
// replaces every routine of the program; routine and exercise ids are not
// preserved across such an edit.
func (s *programService) Update(ctx context.Context, principal domain.Principal, programID primitive.ObjectID, patch ProgramPatch) (*domain.Program, error) {
	if err := principal.RequireRole(domain.RoleCoach); err != nil {
		return nil, err
	}

	var program *domain.Program
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		program, err = s.programs.GetByID(ctx, programID)
		if err != nil {
			return err
		}
		if program.CoachID != principal.UserID {
			return domain.NotFoundErrorf("program not found")
		}

		days, payload, err := applyPatch(program, patch)
		if err != nil {
			return err
		}
		if payload != nil {
			program.Data = domain.DataForPayload(payload)
		}
		if err = s.programs.Update(ctx, program); err != nil {
			return err
		}

		if days != nil {
			if _, _, err = s.routines.DeleteByProgramID(ctx, program.ID); err != nil {
				return err
			}
			if err = s.routines.CreateMany(ctx, domain.BuildRoutines(program.ID, days)); err != nil {
				return err
			}
		}
		return s.hydrate(ctx, []*domain.Program{program})
	})
	if err != nil {
		return nil, translate("update program", err, "program")
	}
	return program, nil
}

// applyPatch validates patch against program and copies the scalar fields
// over. It returns the new workout days (lifting, nil when untouched) and the
// new non-lifting payload (nil when untouched).
func applyPatch(program *domain.Program, patch ProgramPatch) ([]domain.WorkoutDay, domain.Payload, error) {
	verr := &domain.ValidationError{}
	if patch.Type != nil && *patch.Type != program.Type {
		verr.Add("type", "cannot be changed after creation")
	}
	if patch.Name != nil {
		if name := strings.TrimSpace(*patch.Name); name == "" {
			verr.Add("name", "must not be empty")
		} else {
			program.Name = name
		}
	}
	if patch.Description != nil {
		program.Description = *patch.Description
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			verr.Add("price", "must be >= 0")
		} else {
			program.Price = *patch.Price
		}
	}
	if patch.IsPublic != nil {
		program.IsPublic = *patch.IsPublic
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			verr.Add("status", "must be one of draft, active, archived")
		} else {
			program.Status = *patch.Status
		}
	}
	if patch.CycleLength != nil {
		if *patch.CycleLength < 1 {
			verr.Add("cycleLength", "must be >= 1")
		} else {
			program.CycleLength = *patch.CycleLength
		}
	}

	payload, days := parsePayload(verr, program.Type, patch.WorkoutDays, patch.MealPlans, patch.PosingDetails, false)
	if err := verr.OrNil(); err != nil {
		return nil, nil, err
	}
	if program.Type == domain.ProgramTypeLifting {
		if patch.WorkoutDays != nil && days == nil {
			days = []domain.WorkoutDay{}
		}
		return days, nil, nil
	}
	return nil, payload, nil
}

// parsePayload validates the raw type-specific fields for programType. Fields
// that belong to another type are rejected. With required set, the payload of
// a diet or posing program must be present.
func parsePayload(verr *domain.ValidationError, programType domain.ProgramType, workoutDays, mealPlans, posing any, required bool) (domain.Payload, []domain.WorkoutDay) {
	reject := func(field string, v any) {
		if v != nil {
			verr.Add(field, "not allowed for a "+string(programType)+" program")
		}
	}

	switch programType {
	case domain.ProgramTypeLifting:
		reject("mealPlans", mealPlans)
		reject("posingDetails", posing)
		if workoutDays == nil {
			return nil, nil
		}
		days, err := domain.ValidateWorkoutDays(workoutDays)
		mergeValidation(verr, "workoutDays", err)
		return nil, days
	case domain.ProgramTypeDiet:
		reject("workoutDays", workoutDays)
		reject("posingDetails", posing)
		if mealPlans == nil {
			if required {
				verr.Add("mealPlans", "is required for a diet program")
			}
			return nil, nil
		}
		plans, err := domain.ValidateMealPlans(mealPlans)
		if mergeValidation(verr, "mealPlans", err) {
			return nil, nil
		}
		return domain.DietPayload{MealPlans: plans}, nil
	case domain.ProgramTypePosing:
		reject("workoutDays", workoutDays)
		reject("mealPlans", mealPlans)
		if posing == nil {
			if required {
				verr.Add("posingDetails", "is required for a posing program")
			}
			return nil, nil
		}
		plan, err := domain.ValidatePosingPlan(posing)
		if mergeValidation(verr, "posingDetails", err) {
			return nil, nil
		}
		return domain.PosingPayload{Plan: plan}, nil
	}
	return nil, nil
}

// mergeValidation folds err into verr under prefix and reports whether it failed.
func mergeValidation(verr *domain.ValidationError, prefix string, err error) bool {
	if err == nil {
		return false
	}
	var fieldErrs *domain.ValidationError
	if errors.As(err, &fieldErrs) {
		verr.Merge(prefix, fieldErrs)
	} else {
		verr.Add(prefix, err.Error())
	}
	return true
}

// Delete removes a program owned by the caller and everything hanging off it:
// exercises, routines, enrollments with their logs and check-ins. Stored
// check-in objects are removed after the transaction commits.
func (s *programService) Delete(ctx context.Context, principal domain.Principal, programID primitive.ObjectID) error {
	if err := principal.RequireRole(domain.RoleCoach); err != nil {
		return err
	}

	var objectKeys []string
	fields := log.Fields{"programId": programID.Hex(), "coachId": principal.UserID.Hex()}
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		program, err := s.programs.GetByID(ctx, programID)
		if err != nil {
			return err
		}
		if program.CoachID != principal.UserID {
			return domain.NotFoundErrorf("program not found")
		}

		routines, exercises, err := s.routines.DeleteByProgramID(ctx, programID)
		if err != nil {
			return err
		}

		enrollments, err := s.enrollments.ListByProgram(ctx, programID)
		if err != nil {
			return err
		}
		enrollmentIDs := make([]primitive.ObjectID, len(enrollments))
		for i, e := range enrollments {
			enrollmentIDs[i] = e.ID
		}
		workouts, err := s.workoutLogs.DeleteByEnrollmentIDs(ctx, enrollmentIDs)
		if err != nil {
			return err
		}
		meals, err := s.mealLogs.DeleteByEnrollmentIDs(ctx, enrollmentIDs)
		if err != nil {
			return err
		}
		if objectKeys, err = s.checkIns.DeleteByProgramID(ctx, programID); err != nil {
			return err
		}
		if _, err = s.enrollments.DeleteByProgramID(ctx, programID); err != nil {
			return err
		}
		if err = s.programs.Delete(ctx, programID, principal.UserID); err != nil {
			return err
		}

		fields["routines"] = routines
		fields["exercises"] = exercises
		fields["enrollments"] = len(enrollments)
		fields["workoutLogs"] = workouts
		fields["mealLogs"] = meals
		return nil
	})
	if err != nil {
		return translate("delete program", err, "program")
	}
	log.WithFields(fields).Info("program deleted")

	if s.files != nil {
		for _, key := range objectKeys {
			if err := s.files.DeleteObject(ctx, key); err != nil {
				log.Warnf("delete program %s: leaving orphaned check-in object %s: %s", programID.Hex(), key, err)
			}
		}
	}
	return nil
}

func (s *programService) List(ctx context.Context, principal domain.Principal, programType domain.ProgramType) ([]domain.Program, error) {
	if principal.UserID == primitive.NilObjectID {
		return nil, domain.ErrPermission
	}
	if programType != "" && !programType.Valid() {
		return nil, domain.NewValidationError("type", "must be one of lifting, diet, posing")
	}
	return s.list(ctx, domain.ProgramFilter{
		Type:       programType,
		PublicOnly: true,
		Status:     domain.ProgramStatusActive,
	})
}

func (s *programService) ListMine(ctx context.Context, principal domain.Principal) ([]domain.Program, error) {
	if err := principal.RequireRole(domain.RoleCoach); err != nil {
		return nil, err
	}
	coachID := principal.UserID
	return s.list(ctx, domain.ProgramFilter{CoachID: &coachID})
}

func (s *programService) list(ctx context.Context, filter domain.ProgramFilter) ([]domain.Program, error) {
	programs, err := s.programs.List(ctx, filter)
	if err != nil {
		return nil, translate("list programs", err, "program")
	}
	ptrs := make([]*domain.Program, len(programs))
	for i := range programs {
		ptrs[i] = &programs[i]
	}
	if err := s.hydrate(ctx, ptrs); err != nil {
		return nil, translate("list programs", err, "program")
	}
	return programs, nil
}

// Get returns a program visible to the caller: public active programs for
// anyone, every own program for its coach.
func (s *programService) Get(ctx context.Context, principal domain.Principal, programID primitive.ObjectID) (*domain.Program, error) {
	if principal.UserID == primitive.NilObjectID {
		return nil, domain.ErrPermission
	}
	program, err := s.programs.GetByID(ctx, programID)
	if err != nil {
		return nil, translate("get program", err, "program")
	}
	visible := program.CoachID == principal.UserID ||
		(program.IsPublic && program.Status == domain.ProgramStatusActive)
	if !visible {
		return nil, domain.NotFoundErrorf("program not found")
	}
	if err := s.hydrate(ctx, []*domain.Program{program}); err != nil {
		return nil, translate("get program", err, "program")
	}
	return program, nil
}

// hydrate selects the active payload of each program, loading routines for
// lifting programs in one batch.
func (s *programService) hydrate(ctx context.Context, programs []*domain.Program) error {
	return hydratePrograms(ctx, s.routines, programs)
}

func hydratePrograms(ctx context.Context, routines repository.RoutineRepository, programs []*domain.Program) error {
	var liftingIDs []primitive.ObjectID
	for _, p := range programs {
		if p.Type == domain.ProgramTypeLifting {
			liftingIDs = append(liftingIDs, p.ID)
		}
	}
	byProgram := map[primitive.ObjectID][]domain.Routine{}
	if len(liftingIDs) > 0 {
		var err error
		if byProgram, err = routines.GetByProgramIDs(ctx, liftingIDs); err != nil {
			return err
		}
	}
	for _, p := range programs {
		rts := byProgram[p.ID]
		if rts == nil && p.Type == domain.ProgramTypeLifting {
			rts = []domain.Routine{}
		}
		payload, err := domain.SelectPayload(p.Type, p.Data, rts)
		if err != nil {
			return err
		}
		p.Payload = payload
	}
	return nil
}

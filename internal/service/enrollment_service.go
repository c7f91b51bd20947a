package service

import (
	"context"
	"errors"
	"strconv"

	"coachmarket/internal/domain"
	"coachmarket/internal/repository"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomizationPatch is a coach's per-enrollment override. Nil fields keep the
// current override; the payload fields are untrusted JSON values validated
// against the program type. Reset names overrides to drop so the enrollment
// falls back to the program template for them.
type CustomizationPatch struct {
	Name          *string
	Notes         *string
	Routines      any
	MealPlans     any
	PosingDetails any
	Reset         []string
}

// Override names accepted in CustomizationPatch.Reset.
const (
	OverrideName          = "name"
	OverrideNotes         = "notes"
	OverrideRoutines      = "routines"
	OverrideMealPlans     = "mealPlans"
	OverridePosingDetails = "posingDetails"
)

// EnrollmentService manages ClientProgram rows.
type EnrollmentService interface {
	Enroll(ctx context.Context, principal domain.Principal, programID primitive.ObjectID) (*domain.ResolvedEnrollment, error)
	Get(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID) (*domain.ResolvedEnrollment, error)
	List(ctx context.Context, principal domain.Principal) ([]domain.ResolvedEnrollment, error)
	Deactivate(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID) error
	Customize(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID, patch CustomizationPatch) (*domain.ResolvedEnrollment, error)
	ListForCoach(ctx context.Context, principal domain.Principal, programID primitive.ObjectID) ([]domain.ClientProgram, error)
}

type enrollmentService struct {
	tx          repository.TxManager
	programs    repository.ProgramRepository
	routines    repository.RoutineRepository
	enrollments repository.EnrollmentRepository
}

func NewEnrollmentService(
	tx repository.TxManager,
	programs repository.ProgramRepository,
	routines repository.RoutineRepository,
	enrollments repository.EnrollmentRepository,
) EnrollmentService {
	return &enrollmentService{
		tx:          tx,
		programs:    programs,
		routines:    routines,
		enrollments: enrollments,
	}
}

// Enroll creates an active enrollment of the calling client in a public,
// active program. The enrollment references the template; nothing is copied.
func (s *enrollmentService) Enroll(ctx context.Context, principal domain.Principal, programID primitive.ObjectID) (*domain.ResolvedEnrollment, error) {
	if err := principal.RequireRole(domain.RoleClient); err != nil {
		return nil, err
	}

	var resolved domain.ResolvedEnrollment
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		program, err := s.programs.GetByID(ctx, programID)
		if err != nil {
			return err
		}
		if !program.IsPublic || program.Status != domain.ProgramStatusActive {
			return domain.NotFoundErrorf("program not found")
		}

		_, err = s.enrollments.FindActive(ctx, principal.UserID, programID)
		if err == nil {
			return ErrAlreadyEnrolled
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		cp := &domain.ClientProgram{
			ClientID:  principal.UserID,
			ProgramID: programID,
			Active:    true,
			Version:   1,
			Data: domain.ClientProgramData{
				Version:  domain.ClientProgramDataVersion,
				Progress: domain.NewProgress(),
			},
		}
		// The partial unique index settles concurrent enrolls that both passed the check above.
		if _, err = s.enrollments.Create(ctx, cp); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrAlreadyEnrolled
			}
			return err
		}

		resolved, err = s.resolve(ctx, *cp, program)
		return err
	})
	if err != nil {
		return nil, translate("enroll", err, "program")
	}

	log.WithFields(log.Fields{
		"enrollmentId": resolved.Enrollment.ID.Hex(),
		"clientId":     principal.UserID.Hex(),
		"programId":    programID.Hex(),
	}).Info("client enrolled")
	return &resolved, nil
}

// Get returns an enrollment of the calling client with overrides applied.
func (s *enrollmentService) Get(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID) (*domain.ResolvedEnrollment, error) {
	if err := principal.RequireRole(domain.RoleClient); err != nil {
		return nil, err
	}
	cp, err := s.enrollments.GetForClient(ctx, enrollmentID, principal.UserID)
	if err != nil {
		return nil, translate("get enrollment", err, "enrollment")
	}
	resolved, err := resolveEnrollment(ctx, s.programs, s.routines, cp)
	if err != nil {
		return nil, translate("get enrollment", err, "enrollment")
	}
	return resolved, nil
}

// List returns every enrollment of the calling client, newest first.
func (s *enrollmentService) List(ctx context.Context, principal domain.Principal) ([]domain.ResolvedEnrollment, error) {
	if err := principal.RequireRole(domain.RoleClient); err != nil {
		return nil, err
	}
	enrollments, err := s.enrollments.ListByClient(ctx, principal.UserID)
	if err != nil {
		return nil, translate("list enrollments", err, "enrollment")
	}
	resolved, err := resolveMany(ctx, s.programs, s.routines, enrollments)
	if err != nil {
		return nil, translate("list enrollments", err, "enrollment")
	}
	return resolved, nil
}

// Deactivate ends an active enrollment of the calling client. Logs and progress
// are kept; the client may enroll in the same program again.
func (s *enrollmentService) Deactivate(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID) error {
	if err := principal.RequireRole(domain.RoleClient); err != nil {
		return err
	}
	if err := s.enrollments.Deactivate(ctx, enrollmentID, principal.UserID); err != nil {
		return translate("deactivate enrollment", err, "active enrollment")
	}
	return nil
}

// Customize lets the coach owning the enrolled program override its name,
// notes or content for this one client. Changing a content override bumps the
// enrollment version.
func (s *enrollmentService) Customize(ctx context.Context, principal domain.Principal, enrollmentID primitive.ObjectID, patch CustomizationPatch) (*domain.ResolvedEnrollment, error) {
	if err := principal.RequireRole(domain.RoleCoach); err != nil {
		return nil, err
	}

	var resolved domain.ResolvedEnrollment
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		cp, err := s.enrollments.GetByID(ctx, enrollmentID)
		if err != nil {
			return err
		}
		program, err := s.programs.GetByID(ctx, cp.ProgramID)
		if err != nil {
			return err
		}
		if program.CoachID != principal.UserID {
			return domain.NotFoundErrorf("enrollment not found")
		}

		cust, structural, err := mergeCustomizations(cp.Data.Customizations, program.Type, patch)
		if err != nil {
			return err
		}
		version := cp.Version
		if structural {
			version++
		}
		if err = s.enrollments.SaveCustomizations(ctx, cp.ID, cust, version); err != nil {
			return err
		}
		cp.Data.Customizations = cust
		cp.Version = version

		resolved, err = s.resolve(ctx, *cp, program)
		return err
	})
	if err != nil {
		return nil, translate("customize enrollment", err, "enrollment")
	}
	return &resolved, nil
}

// mergeCustomizations validates patch for programType and lays it over current.
// structural reports whether a content override was set or cleared. A result
// with no overrides left is nil.
func mergeCustomizations(current *domain.Customizations, programType domain.ProgramType, patch CustomizationPatch) (*domain.Customizations, bool, error) {
	out := &domain.Customizations{}
	if current != nil {
		*out = *current
	}

	verr := &domain.ValidationError{}
	structural := false
	for _, name := range patch.Reset {
		switch name {
		case OverrideName:
			out.Name = nil
		case OverrideNotes:
			out.Notes = nil
		case OverrideRoutines:
			structural = structural || out.Routines != nil
			out.Routines = nil
		case OverrideMealPlans:
			structural = structural || out.MealPlans != nil
			out.MealPlans = nil
		case OverridePosingDetails:
			structural = structural || out.PosingDetails != nil
			out.PosingDetails = nil
		default:
			verr.Add("reset", "unknown override "+strconv.Quote(name))
		}
	}

	if patch.Name != nil {
		out.Name = patch.Name
	}
	if patch.Notes != nil {
		out.Notes = patch.Notes
	}

	reject := func(field string, v any) {
		if v != nil {
			verr.Add(field, "not allowed for a "+string(programType)+" program")
		}
	}
	switch programType {
	case domain.ProgramTypeLifting:
		reject("mealPlans", patch.MealPlans)
		reject("posingDetails", patch.PosingDetails)
		if patch.Routines != nil {
			routines, err := domain.ValidateRoutines(patch.Routines)
			if !mergeValidation(verr, "routines", err) {
				out.Routines = routines
				structural = true
			}
		}
	case domain.ProgramTypeDiet:
		reject("routines", patch.Routines)
		reject("posingDetails", patch.PosingDetails)
		if patch.MealPlans != nil {
			plans, err := domain.ValidateMealPlans(patch.MealPlans)
			if !mergeValidation(verr, "mealPlans", err) {
				out.MealPlans = plans
				structural = true
			}
		}
	case domain.ProgramTypePosing:
		reject("routines", patch.Routines)
		reject("mealPlans", patch.MealPlans)
		if patch.PosingDetails != nil {
			plan, err := domain.ValidatePosingPlan(patch.PosingDetails)
			if !mergeValidation(verr, "posingDetails", err) {
				out.PosingDetails = &plan
				structural = true
			}
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, false, err
	}
	if out.Name == nil && out.Notes == nil && !out.Structural() {
		return nil, structural, nil
	}
	return out, structural, nil
}

// ListForCoach returns every enrollment of a program owned by the calling coach.
func (s *enrollmentService) ListForCoach(ctx context.Context, principal domain.Principal, programID primitive.ObjectID) ([]domain.ClientProgram, error) {
	if err := principal.RequireRole(domain.RoleCoach); err != nil {
		return nil, err
	}
	program, err := s.programs.GetByID(ctx, programID)
	if err != nil {
		return nil, translate("list program enrollments", err, "program")
	}
	if program.CoachID != principal.UserID {
		return nil, domain.NotFoundErrorf("program not found")
	}
	enrollments, err := s.enrollments.ListByProgram(ctx, programID)
	if err != nil {
		return nil, translate("list program enrollments", err, "enrollment")
	}
	return enrollments, nil
}

func (s *enrollmentService) resolve(ctx context.Context, cp domain.ClientProgram, program *domain.Program) (domain.ResolvedEnrollment, error) {
	if err := hydratePrograms(ctx, s.routines, []*domain.Program{program}); err != nil {
		return domain.ResolvedEnrollment{}, err
	}
	return domain.ResolveEnrollment(cp, *program)
}

// resolveEnrollment loads the template of cp and applies its overrides.
func resolveEnrollment(ctx context.Context, programs repository.ProgramRepository, routines repository.RoutineRepository, cp *domain.ClientProgram) (*domain.ResolvedEnrollment, error) {
	program, err := programs.GetByID(ctx, cp.ProgramID)
	if err != nil {
		return nil, err
	}
	if err = hydratePrograms(ctx, routines, []*domain.Program{program}); err != nil {
		return nil, err
	}
	resolved, err := domain.ResolveEnrollment(*cp, *program)
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}

// resolveMany resolves a batch of enrollments with one program and one
// routine query. Enrollments whose program vanished are skipped.
func resolveMany(ctx context.Context, programs repository.ProgramRepository, routines repository.RoutineRepository, enrollments []domain.ClientProgram) ([]domain.ResolvedEnrollment, error) {
	out := make([]domain.ResolvedEnrollment, 0, len(enrollments))
	if len(enrollments) == 0 {
		return out, nil
	}

	seen := map[primitive.ObjectID]bool{}
	var ids []primitive.ObjectID
	for _, e := range enrollments {
		if !seen[e.ProgramID] {
			seen[e.ProgramID] = true
			ids = append(ids, e.ProgramID)
		}
	}
	found, err := programs.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]*domain.Program, len(found))
	ptrs := make([]*domain.Program, len(found))
	for i := range found {
		ptrs[i] = &found[i]
		byID[found[i].ID] = &found[i]
	}
	if err = hydratePrograms(ctx, routines, ptrs); err != nil {
		return nil, err
	}

	for _, e := range enrollments {
		program, ok := byID[e.ProgramID]
		if !ok {
			log.Warnf("enrollment %s references missing program %s", e.ID.Hex(), e.ProgramID.Hex())
			continue
		}
		resolved, err := domain.ResolveEnrollment(e, *program)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}

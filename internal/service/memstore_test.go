package service

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"coachmarket/internal/domain"
	"coachmarket/internal/repository"
	"coachmarket/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errInjected = errors.New("injected store failure")

// memStore is an in-memory stand-in for the Mongo repositories. Each
// repository view below shares it, and memTx restores a snapshot of every
// table when the transaction callback fails.
type memStore struct {
	mu sync.Mutex

	users          map[primitive.ObjectID]domain.User
	coachProfiles  map[primitive.ObjectID]domain.CoachProfile
	clientProfiles map[primitive.ObjectID]domain.ClientProfile
	programs       map[primitive.ObjectID]domain.Program
	routines       map[primitive.ObjectID]domain.Routine
	enrollments    map[primitive.ObjectID]domain.ClientProgram
	workouts       map[primitive.ObjectID]domain.WorkoutLog
	meals          map[primitive.ObjectID]domain.MealLog
	checkIns       map[primitive.ObjectID]domain.CheckIn
	signups        map[primitive.ObjectID]domain.BetaSignup

	// failOn names a repository operation (e.g. "meals.Create") that returns errInjected.
	failOn string
	// skipActiveCheck makes enrollments.FindActive miss, exercising the unique index path.
	skipActiveCheck bool
	clock           time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users:          map[primitive.ObjectID]domain.User{},
		coachProfiles:  map[primitive.ObjectID]domain.CoachProfile{},
		clientProfiles: map[primitive.ObjectID]domain.ClientProfile{},
		programs:       map[primitive.ObjectID]domain.Program{},
		routines:       map[primitive.ObjectID]domain.Routine{},
		enrollments:    map[primitive.ObjectID]domain.ClientProgram{},
		workouts:       map[primitive.ObjectID]domain.WorkoutLog{},
		meals:          map[primitive.ObjectID]domain.MealLog{},
		checkIns:       map[primitive.ObjectID]domain.CheckIn{},
		signups:        map[primitive.ObjectID]domain.BetaSignup{},
		clock:          time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

// tick returns a strictly increasing timestamp so newest-first ordering is stable.
func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memStore) fail(op string) error {
	if m.failOn == op {
		return errInjected
	}
	return nil
}

type memSnapshot struct {
	users          map[primitive.ObjectID]domain.User
	coachProfiles  map[primitive.ObjectID]domain.CoachProfile
	clientProfiles map[primitive.ObjectID]domain.ClientProfile
	programs       map[primitive.ObjectID]domain.Program
	routines       map[primitive.ObjectID]domain.Routine
	enrollments    map[primitive.ObjectID]domain.ClientProgram
	workouts       map[primitive.ObjectID]domain.WorkoutLog
	meals          map[primitive.ObjectID]domain.MealLog
	checkIns       map[primitive.ObjectID]domain.CheckIn
	signups        map[primitive.ObjectID]domain.BetaSignup
}

func (m *memStore) snapshot() memSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return memSnapshot{
		users:          maps.Clone(m.users),
		coachProfiles:  maps.Clone(m.coachProfiles),
		clientProfiles: maps.Clone(m.clientProfiles),
		programs:       maps.Clone(m.programs),
		routines:       maps.Clone(m.routines),
		enrollments:    maps.Clone(m.enrollments),
		workouts:       maps.Clone(m.workouts),
		meals:          maps.Clone(m.meals),
		checkIns:       maps.Clone(m.checkIns),
		signups:        maps.Clone(m.signups),
	}
}

func (m *memStore) restore(s memSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = s.users
	m.coachProfiles = s.coachProfiles
	m.clientProfiles = s.clientProfiles
	m.programs = s.programs
	m.routines = s.routines
	m.enrollments = s.enrollments
	m.workouts = s.workouts
	m.meals = s.meals
	m.checkIns = s.checkIns
	m.signups = s.signups
}

type txKey struct{}

type memTx struct{ *memStore }

func (t memTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	snap := t.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		t.restore(snap)
		return err
	}
	return nil
}

// --- users ---

type memUsers struct{ *memStore }

func (r memUsers) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("users.Create"); err != nil {
		return primitive.NilObjectID, err
	}
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = r.tick()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return user.ID, nil
}

func (r memUsers) find(match func(domain.User) bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Email == email })
}

func (r memUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Username == username })
}

func (r memUsers) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.ID == id })
}

func (r memUsers) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r memUsers) UpdateProfileFields(_ context.Context, id primitive.ObjectID, fullName, avatarURL *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	if fullName != nil {
		u.FullName = *fullName
	}
	if avatarURL != nil {
		u.AvatarURL = *avatarURL
	}
	r.users[id] = u
	return nil
}

// --- profiles ---

type memProfiles struct{ *memStore }

func (r memProfiles) CreateCoach(_ context.Context, p *domain.CoachProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("profiles.Create"); err != nil {
		return err
	}
	if _, ok := r.coachProfiles[p.UserID]; ok {
		return repository.ErrDuplicate
	}
	p.ID = primitive.NewObjectID()
	r.coachProfiles[p.UserID] = *p
	return nil
}

func (r memProfiles) CreateClient(_ context.Context, p *domain.ClientProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("profiles.Create"); err != nil {
		return err
	}
	if _, ok := r.clientProfiles[p.UserID]; ok {
		return repository.ErrDuplicate
	}
	p.ID = primitive.NewObjectID()
	r.clientProfiles[p.UserID] = *p
	return nil
}

func (r memProfiles) GetCoach(_ context.Context, userID primitive.ObjectID) (*domain.CoachProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.coachProfiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r memProfiles) GetClient(_ context.Context, userID primitive.ObjectID) (*domain.ClientProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.clientProfiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r memProfiles) UpdateCoach(_ context.Context, p *domain.CoachProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.coachProfiles[p.UserID]; !ok {
		return repository.ErrNotFound
	}
	r.coachProfiles[p.UserID] = *p
	return nil
}

func (r memProfiles) UpdateClient(_ context.Context, p *domain.ClientProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clientProfiles[p.UserID]; !ok {
		return repository.ErrNotFound
	}
	r.clientProfiles[p.UserID] = *p
	return nil
}

// --- programs ---

type memPrograms struct{ *memStore }

func (r memPrograms) Create(_ context.Context, p *domain.Program) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("programs.Create"); err != nil {
		return primitive.NilObjectID, err
	}
	if p.ID == primitive.NilObjectID {
		p.ID = primitive.NewObjectID()
	}
	p.CreatedAt = r.tick()
	p.UpdatedAt = p.CreatedAt
	stored := *p
	stored.Payload = nil
	r.programs[p.ID] = stored
	return p.ID, nil
}

func (r memPrograms) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Program, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.programs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r memPrograms) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Program, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Program
	for _, id := range ids {
		if p, ok := r.programs[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memPrograms) List(_ context.Context, f domain.ProgramFilter) ([]domain.Program, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Program
	for _, p := range r.programs {
		switch {
		case f.Type != "" && p.Type != f.Type,
			f.CoachID != nil && p.CoachID != *f.CoachID,
			f.PublicOnly && !p.IsPublic,
			f.Status != "" && p.Status != f.Status:
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memPrograms) Update(_ context.Context, p *domain.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.programs[p.ID]
	if !ok || cur.CoachID != p.CoachID {
		return repository.ErrNotFound
	}
	p.UpdatedAt = r.tick()
	stored := *p
	stored.Payload = nil
	r.programs[p.ID] = stored
	return nil
}

func (r memPrograms) Delete(_ context.Context, id, coachID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("programs.Delete"); err != nil {
		return err
	}
	p, ok := r.programs[id]
	if !ok || p.CoachID != coachID {
		return repository.ErrNotFound
	}
	delete(r.programs, id)
	return nil
}

// --- routines ---

type memRoutines struct{ *memStore }

func (r memRoutines) CreateMany(_ context.Context, routines []domain.Routine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("routines.CreateMany"); err != nil {
		return err
	}
	// Same precondition as the Mongo repository.
	for _, rt := range routines {
		if rt.ProgramID == primitive.NilObjectID || rt.Name == "" {
			return errors.New("routine requires programId and name")
		}
	}
	for _, rt := range routines {
		rt.CreatedAt = r.tick()
		r.routines[rt.ID] = rt
	}
	return nil
}

func (r memRoutines) GetByProgramID(ctx context.Context, programID primitive.ObjectID) ([]domain.Routine, error) {
	byProgram, err := r.GetByProgramIDs(ctx, []primitive.ObjectID{programID})
	if err != nil {
		return nil, err
	}
	return byProgram[programID], nil
}

func (r memRoutines) GetByProgramIDs(_ context.Context, programIDs []primitive.ObjectID) (map[primitive.ObjectID][]domain.Routine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[primitive.ObjectID][]domain.Routine{}
	for _, rt := range r.routines {
		if slices.Contains(programIDs, rt.ProgramID) {
			rt.Exercises = slices.Clone(rt.Exercises)
			out[rt.ProgramID] = append(out[rt.ProgramID], rt)
		}
	}
	for _, rts := range out {
		sort.Slice(rts, func(i, j int) bool { return rts[i].OrderInCycle < rts[j].OrderInCycle })
	}
	return out, nil
}

func (r memRoutines) DeleteByProgramID(_ context.Context, programID primitive.ObjectID) (int64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var routines, exercises int64
	for id, rt := range r.routines {
		if rt.ProgramID == programID {
			routines++
			exercises += int64(len(rt.Exercises))
			delete(r.routines, id)
		}
	}
	return routines, exercises, nil
}

// --- enrollments ---

type memEnrollments struct{ *memStore }

func (r memEnrollments) Create(_ context.Context, cp *domain.ClientProgram) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.enrollments {
		if e.Active && cp.Active && e.ClientID == cp.ClientID && e.ProgramID == cp.ProgramID {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	cp.ID = primitive.NewObjectID()
	now := r.tick()
	if cp.StartDate.IsZero() {
		cp.StartDate = now
	}
	cp.UpdatedAt = now
	r.enrollments[cp.ID] = *cp
	return cp.ID, nil
}

func (r memEnrollments) findOne(match func(domain.ClientProgram) bool) (*domain.ClientProgram, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.enrollments {
		if match(e) {
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memEnrollments) find(match func(domain.ClientProgram) bool) []domain.ClientProgram {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.ClientProgram{}
	for _, e := range r.enrollments {
		if match(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out
}

func (r memEnrollments) GetByID(_ context.Context, id primitive.ObjectID) (*domain.ClientProgram, error) {
	return r.findOne(func(e domain.ClientProgram) bool { return e.ID == id })
}

func (r memEnrollments) GetForClient(_ context.Context, id, clientID primitive.ObjectID) (*domain.ClientProgram, error) {
	return r.findOne(func(e domain.ClientProgram) bool { return e.ID == id && e.ClientID == clientID })
}

func (r memEnrollments) FindActive(_ context.Context, clientID, programID primitive.ObjectID) (*domain.ClientProgram, error) {
	if r.skipActiveCheck {
		return nil, repository.ErrNotFound
	}
	return r.findOne(func(e domain.ClientProgram) bool {
		return e.Active && e.ClientID == clientID && e.ProgramID == programID
	})
}

func (r memEnrollments) ListByClient(_ context.Context, clientID primitive.ObjectID) ([]domain.ClientProgram, error) {
	return r.find(func(e domain.ClientProgram) bool { return e.ClientID == clientID }), nil
}

func (r memEnrollments) ListActiveByProgramIDs(_ context.Context, programIDs []primitive.ObjectID) ([]domain.ClientProgram, error) {
	return r.find(func(e domain.ClientProgram) bool { return e.Active && slices.Contains(programIDs, e.ProgramID) }), nil
}

func (r memEnrollments) ListByProgram(_ context.Context, programID primitive.ObjectID) ([]domain.ClientProgram, error) {
	return r.find(func(e domain.ClientProgram) bool { return e.ProgramID == programID }), nil
}

func (r memEnrollments) update(id primitive.ObjectID, fn func(*domain.ClientProgram) bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.enrollments[id]
	if !ok || !fn(&e) {
		return repository.ErrNotFound
	}
	r.enrollments[id] = e
	return nil
}

func (r memEnrollments) SaveProgress(_ context.Context, id primitive.ObjectID, progress domain.Progress) error {
	if err := r.fail("enrollments.SaveProgress"); err != nil {
		return err
	}
	return r.update(id, func(e *domain.ClientProgram) bool {
		e.Data.Progress = progress
		return true
	})
}

func (r memEnrollments) SaveCustomizations(_ context.Context, id primitive.ObjectID, cust *domain.Customizations, version int) error {
	return r.update(id, func(e *domain.ClientProgram) bool {
		e.Data.Customizations = cust
		e.Version = version
		return true
	})
}

func (r memEnrollments) Deactivate(_ context.Context, id, clientID primitive.ObjectID) error {
	return r.update(id, func(e *domain.ClientProgram) bool {
		if e.ClientID != clientID || !e.Active {
			return false
		}
		e.Active = false
		return true
	})
}

func (r memEnrollments) DeleteByProgramID(_ context.Context, programID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, e := range r.enrollments {
		if e.ProgramID == programID {
			delete(r.enrollments, id)
			n++
		}
	}
	return n, nil
}

// --- workout logs ---

type memWorkouts struct{ *memStore }

func (r memWorkouts) Create(_ context.Context, l *domain.WorkoutLog) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("workouts.Create"); err != nil {
		return primitive.NilObjectID, err
	}
	l.ID = primitive.NewObjectID()
	now := r.tick()
	if l.Date.IsZero() {
		l.Date = now
	}
	l.CreatedAt, l.UpdatedAt = now, now
	r.workouts[l.ID] = *l
	return l.ID, nil
}

func (r memWorkouts) GetForClient(_ context.Context, id, clientID primitive.ObjectID) (*domain.WorkoutLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.workouts[id]
	if !ok || l.ClientID != clientID {
		return nil, repository.ErrNotFound
	}
	return &l, nil
}

func (r memWorkouts) UpdateData(_ context.Context, id, clientID primitive.ObjectID, data domain.WorkoutLogData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.workouts[id]
	if !ok || l.ClientID != clientID {
		return repository.ErrNotFound
	}
	l.Data = data
	r.workouts[id] = l
	return nil
}

func (r memWorkouts) Delete(_ context.Context, id, clientID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.workouts[id]
	if !ok || l.ClientID != clientID {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

func (r memWorkouts) list(match func(domain.WorkoutLog) bool, limit int) []domain.WorkoutLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.WorkoutLog{}
	for _, l := range r.workouts {
		if match(l) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (r memWorkouts) ListByEnrollment(_ context.Context, clientID, enrollmentID primitive.ObjectID) ([]domain.WorkoutLog, error) {
	return r.list(func(l domain.WorkoutLog) bool { return l.ClientID == clientID && l.ClientProgramID == enrollmentID }, 0), nil
}

func (r memWorkouts) ListByClient(_ context.Context, clientID primitive.ObjectID, limit int) ([]domain.WorkoutLog, error) {
	return r.list(func(l domain.WorkoutLog) bool { return l.ClientID == clientID }, limit), nil
}

func (r memWorkouts) CountByEnrollments(_ context.Context, enrollmentIDs []primitive.ObjectID) (map[primitive.ObjectID]int, error) {
	counts := map[primitive.ObjectID]int{}
	for _, l := range r.list(func(l domain.WorkoutLog) bool { return slices.Contains(enrollmentIDs, l.ClientProgramID) }, 0) {
		counts[l.ClientProgramID]++
	}
	return counts, nil
}

func (r memWorkouts) DeleteByEnrollmentIDs(_ context.Context, enrollmentIDs []primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, l := range r.workouts {
		if slices.Contains(enrollmentIDs, l.ClientProgramID) {
			delete(r.workouts, id)
			n++
		}
	}
	return n, nil
}

// --- meal logs ---

type memMeals struct{ *memStore }

func (r memMeals) Create(_ context.Context, l *domain.MealLog) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("meals.Create"); err != nil {
		return primitive.NilObjectID, err
	}
	l.ID = primitive.NewObjectID()
	now := r.tick()
	if l.Date.IsZero() {
		l.Date = now
	}
	l.CreatedAt, l.UpdatedAt = now, now
	r.meals[l.ID] = *l
	return l.ID, nil
}

func (r memMeals) GetForClient(_ context.Context, id, clientID primitive.ObjectID) (*domain.MealLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.meals[id]
	if !ok || l.ClientID != clientID {
		return nil, repository.ErrNotFound
	}
	return &l, nil
}

func (r memMeals) Update(_ context.Context, l *domain.MealLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.meals[l.ID]
	if !ok || cur.ClientID != l.ClientID {
		return repository.ErrNotFound
	}
	r.meals[l.ID] = *l
	return nil
}

func (r memMeals) Delete(_ context.Context, id, clientID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.meals[id]
	if !ok || l.ClientID != clientID {
		return repository.ErrNotFound
	}
	delete(r.meals, id)
	return nil
}

func (r memMeals) list(match func(domain.MealLog) bool, limit int) []domain.MealLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.MealLog{}
	for _, l := range r.meals {
		if match(l) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (r memMeals) ListByEnrollment(_ context.Context, clientID, enrollmentID primitive.ObjectID) ([]domain.MealLog, error) {
	return r.list(func(l domain.MealLog) bool { return l.ClientID == clientID && l.ClientProgramID == enrollmentID }, 0), nil
}

func (r memMeals) ListByClient(_ context.Context, clientID primitive.ObjectID, limit int) ([]domain.MealLog, error) {
	return r.list(func(l domain.MealLog) bool { return l.ClientID == clientID }, limit), nil
}

func (r memMeals) DeleteByEnrollmentIDs(_ context.Context, enrollmentIDs []primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, l := range r.meals {
		if slices.Contains(enrollmentIDs, l.ClientProgramID) {
			delete(r.meals, id)
			n++
		}
	}
	return n, nil
}

// --- check-ins ---

type memCheckIns struct{ *memStore }

func (r memCheckIns) Create(_ context.Context, c *domain.CheckIn) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.checkIns {
		if existing.S3ObjectKey == c.S3ObjectKey {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	c.ID = primitive.NewObjectID()
	c.UploadedAt = r.tick()
	r.checkIns[c.ID] = *c
	return c.ID, nil
}

func (r memCheckIns) ListByEnrollment(_ context.Context, enrollmentID primitive.ObjectID) ([]domain.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.CheckIn{}
	for _, c := range r.checkIns {
		if c.ClientProgramID == enrollmentID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	return out, nil
}

func (r memCheckIns) DeleteByProgramID(_ context.Context, programID primitive.ObjectID) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var keys []string
	for id, c := range r.checkIns {
		if c.ProgramID == programID {
			keys = append(keys, c.S3ObjectKey)
			delete(r.checkIns, id)
		}
	}
	return keys, nil
}

// --- beta signups ---

type memSignups struct{ *memStore }

func (r memSignups) Create(_ context.Context, s *domain.BetaSignup) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.signups {
		if existing.Email == s.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	s.ID = primitive.NewObjectID()
	s.CreatedAt = r.tick()
	r.signups[s.ID] = *s
	return s.ID, nil
}

// memFiles is a FileStorage double that records what the services asked for.
type memFiles struct {
	mu      sync.Mutex
	objects map[string]storage.ObjectMetadata
	deleted []string
	failAll bool
}

func newMemFiles() *memFiles {
	return &memFiles{objects: map[string]storage.ObjectMetadata{}}
}

func (f *memFiles) put(key, contentType string, size int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = storage.ObjectMetadata{Size: size, ContentType: contentType}
}

func (f *memFiles) GeneratePresignedUploadURL(_ context.Context, key, _ string, _ time.Duration) (string, error) {
	if f.failAll {
		return "", errInjected
	}
	return "https://s3.test/upload/" + key, nil
}

func (f *memFiles) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	if f.failAll {
		return "", errInjected
	}
	return "https://s3.test/download/" + key, nil
}

func (f *memFiles) HeadObject(_ context.Context, key string) (*storage.ObjectMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	meta, ok := f.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return &meta, nil
}

func (f *memFiles) DeleteObject(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errInjected
	}
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

// fixture wires every service against one memStore.
type fixture struct {
	store       *memStore
	files       *memFiles
	programs    ProgramService
	enrollments EnrollmentService
	logs        LogService
	dashboards  DashboardService
	auth        AuthService
	checkIns    CheckInService
	signups     BetaSignupService
}

func newFixture() *fixture {
	store := newMemStore()
	files := newMemFiles()
	tx := memTx{store}
	users, profiles := memUsers{store}, memProfiles{store}
	programs, routines := memPrograms{store}, memRoutines{store}
	enrollments := memEnrollments{store}
	workouts, meals := memWorkouts{store}, memMeals{store}
	checkIns := memCheckIns{store}

	logSvc := NewLogService(tx, programs, routines, enrollments, workouts, meals)
	logSvc.(*logService).now = store.tick

	return &fixture{
		store:       store,
		files:       files,
		programs:    NewProgramService(tx, programs, routines, enrollments, workouts, meals, checkIns, files),
		enrollments: NewEnrollmentService(tx, programs, routines, enrollments),
		logs:        logSvc,
		dashboards:  NewDashboardService(users, programs, enrollments, workouts, meals),
		auth:        NewAuthService(tx, users, profiles, "test-secret", time.Hour),
		checkIns:    NewCheckInService(programs, enrollments, checkIns, files, time.Minute),
		signups:     NewBetaSignupService(memSignups{store}),
	}
}

// addUser inserts a user directly and returns its principal.
func (f *fixture) addUser(role domain.Role, fullName, username string) domain.Principal {
	u := &domain.User{
		Username:     username,
		Email:        strings.ToLower(username) + "@example.com",
		PasswordHash: "x",
		Role:         role,
		FullName:     fullName,
	}
	id, err := memUsers{f.store}.Create(context.Background(), u)
	if err != nil {
		panic(err)
	}
	return domain.Principal{UserID: id, Role: role}
}

func workoutDaysJSON() []any {
	return []any{
		map[string]any{
			"name": "Push",
			"exercises": []any{
				map[string]any{"name": "Bench Press", "sets": float64(4), "reps": "8"},
				map[string]any{"name": "Overhead Press", "sets": float64(3), "reps": "10"},
			},
		},
		map[string]any{
			"name": "Pull",
			"exercises": []any{
				map[string]any{"name": "Deadlift", "sets": float64(3), "reps": "5"},
			},
		},
	}
}

func mealPlansJSON() []any {
	return []any{
		map[string]any{
			"mealName":        "Breakfast",
			"targetCalories":  float64(600),
			"targetProtein":   float64(40),
			"targetCarbs":     float64(60),
			"targetFats":      float64(20),
			"notes":           "",
			"foodSuggestions": []any{"oats"},
		},
	}
}

func posingJSON() map[string]any {
	return map[string]any{
		"bio":                     "Stage coach",
		"details":                 "Mandatory poses",
		"communicationPreference": "chat",
	}
}

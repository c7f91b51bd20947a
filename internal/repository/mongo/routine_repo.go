// internal/repository/mongo/routine_repo.go
package mongo

import (
	"coachmarket/internal/domain"
	"coachmarket/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const routineCollectionName = "routines"

// routineDoc is the stored shape of a routine; exercises live in their own collection.
type routineDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	ProgramID    primitive.ObjectID `bson:"programId"`
	Name         string             `bson:"name"`
	DayOfWeek    *int               `bson:"dayOfWeek,omitempty"`
	OrderInCycle int                `bson:"orderInCycle"`
	Notes        string             `bson:"notes,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func (d routineDoc) toDomain(exercises []domain.Exercise) domain.Routine {
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return domain.Routine{
		ID:           d.ID,
		ProgramID:    d.ProgramID,
		Name:         d.Name,
		DayOfWeek:    d.DayOfWeek,
		OrderInCycle: d.OrderInCycle,
		Notes:        d.Notes,
		Exercises:    exercises,
		CreatedAt:    d.CreatedAt,
	}
}

// mongoRoutineRepository implements repository.RoutineRepository
type mongoRoutineRepository struct {
	collection *mongo.Collection
	exercises  exerciseStore
}

// NewMongoRoutineRepository creates a new Routine repository.
func NewMongoRoutineRepository(db *mongo.Database) repository.RoutineRepository {
	return &mongoRoutineRepository{
		collection: db.Collection(routineCollectionName),
		exercises:  newExerciseStore(db),
	}
}

// CreateMany inserts routines, then their exercises. Run it inside a
// transaction so a failure leaves no partial program behind.
func (r *mongoRoutineRepository) CreateMany(ctx context.Context, routines []domain.Routine) error {
	if len(routines) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, len(routines))
	var exercises []domain.Exercise
	for i := range routines {
		rt := &routines[i]
		if rt.ProgramID == primitive.NilObjectID || rt.Name == "" {
			return errors.New("routine requires programId and name")
		}
		if rt.ID == primitive.NilObjectID {
			rt.ID = primitive.NewObjectID()
		}
		rt.CreatedAt = now
		docs[i] = routineDoc{
			ID:           rt.ID,
			ProgramID:    rt.ProgramID,
			Name:         rt.Name,
			DayOfWeek:    rt.DayOfWeek,
			OrderInCycle: rt.OrderInCycle,
			Notes:        rt.Notes,
			CreatedAt:    now,
		}
		for j := range rt.Exercises {
			rt.Exercises[j].RoutineID = rt.ID
			rt.Exercises[j].ProgramID = rt.ProgramID
		}
		exercises = append(exercises, rt.Exercises...)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	if err := r.exercises.insertMany(ctx, exercises); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByProgramID retrieves the routines of a program with exercises loaded.
func (r *mongoRoutineRepository) GetByProgramID(ctx context.Context, programID primitive.ObjectID) ([]domain.Routine, error) {
	grouped, err := r.GetByProgramIDs(ctx, []primitive.ObjectID{programID})
	if err != nil {
		return nil, err
	}
	routines := grouped[programID]
	if routines == nil {
		routines = []domain.Routine{}
	}
	return routines, nil
}

// GetByProgramIDs loads routines for several programs in two queries.
func (r *mongoRoutineRepository) GetByProgramIDs(ctx context.Context, programIDs []primitive.ObjectID) (map[primitive.ObjectID][]domain.Routine, error) {
	out := make(map[primitive.ObjectID][]domain.Routine, len(programIDs))
	if len(programIDs) == 0 {
		return out, nil
	}

	filter := bson.M{"programId": bson.M{"$in": programIDs}}
	findOptions := options.Find().SetSort(bson.D{{Key: "programId", Value: 1}, {Key: "orderInCycle", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []routineDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	routineIDs := make([]primitive.ObjectID, len(docs))
	for i, d := range docs {
		routineIDs[i] = d.ID
	}
	exercises, err := r.exercises.byRoutineIDs(ctx, routineIDs)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		out[d.ProgramID] = append(out[d.ProgramID], d.toDomain(exercises[d.ID]))
	}
	return out, nil
}

// DeleteByProgramID deletes exercises first, then routines.
func (r *mongoRoutineRepository) DeleteByProgramID(ctx context.Context, programID primitive.ObjectID) (int64, int64, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"programId": programID}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return 0, 0, err
	}
	var ids []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err = cursor.All(ctx, &ids); err != nil {
		return 0, 0, err
	}
	routineIDs := make([]primitive.ObjectID, len(ids))
	for i, d := range ids {
		routineIDs[i] = d.ID
	}

	exercisesDeleted, err := r.exercises.deleteByRoutineIDs(ctx, routineIDs)
	if err != nil {
		return 0, 0, err
	}
	result, err := r.collection.DeleteMany(ctx, bson.M{"programId": programID})
	if err != nil {
		return 0, exercisesDeleted, err
	}
	return result.DeletedCount, exercisesDeleted, nil
}

// EnsureRoutineIndexes creates indexes for routines and their exercises.
func EnsureRoutineIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			// orderInCycle is unique within a program
			Keys:    bson.D{{Key: "programId", Value: 1}, {Key: "orderInCycle", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(routineCollectionName).Indexes().CreateMany(ctx, indexes); err != nil {
		return err
	}
	return ensureExerciseIndexes(ctx, db)
}

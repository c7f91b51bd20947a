package mongo

import (
	"coachmarket/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// exerciseStore owns the exercises collection. Exercises are only reached
// through their routine, so it is not exported as a repository of its own.
type exerciseStore struct {
	collection *mongo.Collection
}

func newExerciseStore(db *mongo.Database) exerciseStore {
	return exerciseStore{collection: db.Collection(exerciseCollectionName)}
}

// insertMany stores exercises as given; ids and positions are assigned by the caller.
func (s exerciseStore) insertMany(ctx context.Context, exercises []domain.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}
	docs := make([]interface{}, len(exercises))
	for i := range exercises {
		if exercises[i].ID == primitive.NilObjectID {
			exercises[i].ID = primitive.NewObjectID()
		}
		docs[i] = exercises[i]
	}
	_, err := s.collection.InsertMany(ctx, docs)
	return err
}

// byRoutineIDs returns exercises grouped by routine, each group ordered by orderInRoutine.
func (s exerciseStore) byRoutineIDs(ctx context.Context, routineIDs []primitive.ObjectID) (map[primitive.ObjectID][]domain.Exercise, error) {
	grouped := make(map[primitive.ObjectID][]domain.Exercise, len(routineIDs))
	if len(routineIDs) == 0 {
		return grouped, nil
	}

	filter := bson.M{"routineId": bson.M{"$in": routineIDs}}
	findOptions := options.Find().SetSort(bson.D{{Key: "routineId", Value: 1}, {Key: "orderInRoutine", Value: 1}})

	cursor, err := s.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exercises []domain.Exercise
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	for _, ex := range exercises {
		grouped[ex.RoutineID] = append(grouped[ex.RoutineID], ex)
	}
	return grouped, nil
}

func (s exerciseStore) deleteByRoutineIDs(ctx context.Context, routineIDs []primitive.ObjectID) (int64, error) {
	if len(routineIDs) == 0 {
		return 0, nil
	}
	result, err := s.collection.DeleteMany(ctx, bson.M{"routineId": bson.M{"$in": routineIDs}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func ensureExerciseIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			// Position is unique within a routine
			Keys:    bson.D{{Key: "routineId", Value: 1}, {Key: "orderInRoutine", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "programId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := db.Collection(exerciseCollectionName).Indexes().CreateMany(ctx, indexes)
	return err
}

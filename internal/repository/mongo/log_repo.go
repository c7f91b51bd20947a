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

const (
	workoutLogCollectionName = "workout_logs"
	mealLogCollectionName    = "meal_logs"
)

// mongoWorkoutLogRepository implements repository.WorkoutLogRepository
type mongoWorkoutLogRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutLogRepository creates a new workout log repository.
func NewMongoWorkoutLogRepository(db *mongo.Database) repository.WorkoutLogRepository {
	return &mongoWorkoutLogRepository{
		collection: db.Collection(workoutLogCollectionName),
	}
}

// Create inserts a new workout log.
func (r *mongoWorkoutLogRepository) Create(ctx context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error) {
	if log.ClientID == primitive.NilObjectID || log.ClientProgramID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("workout log requires clientId and clientProgramId")
	}
	log.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	if log.Date.IsZero() {
		log.Date = now
	}
	log.CreatedAt = now
	log.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout log ID")
	}
	return insertedID, nil
}

// GetForClient retrieves a workout log owned by clientID.
func (r *mongoWorkoutLogRepository) GetForClient(ctx context.Context, id, clientID primitive.ObjectID) (*domain.WorkoutLog, error) {
	var log domain.WorkoutLog
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "clientId": clientID}).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// UpdateData replaces the payload of a workout log owned by clientID.
func (r *mongoWorkoutLogRepository) UpdateData(ctx context.Context, id, clientID primitive.ObjectID, data domain.WorkoutLogData) error {
	update := bson.M{"$set": bson.M{"data": data, "updatedAt": time.Now().UTC()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "clientId": clientID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a workout log owned by clientID.
func (r *mongoWorkoutLogRepository) Delete(ctx context.Context, id, clientID primitive.ObjectID) error {
	return deleteOwned(ctx, r.collection, id, clientID)
}

// ListByEnrollment returns the logs of one enrollment, newest first.
func (r *mongoWorkoutLogRepository) ListByEnrollment(ctx context.Context, clientID, enrollmentID primitive.ObjectID) ([]domain.WorkoutLog, error) {
	logs := []domain.WorkoutLog{}
	err := findNewestFirst(ctx, r.collection, bson.M{"clientId": clientID, "clientProgramId": enrollmentID}, 0, &logs)
	return logs, err
}

// ListByClient returns the logs of a client across enrollments, newest first.
func (r *mongoWorkoutLogRepository) ListByClient(ctx context.Context, clientID primitive.ObjectID, limit int) ([]domain.WorkoutLog, error) {
	logs := []domain.WorkoutLog{}
	err := findNewestFirst(ctx, r.collection, bson.M{"clientId": clientID}, limit, &logs)
	return logs, err
}

// CountByEnrollments counts workout logs per enrollment in one aggregation.
// Enrollments without logs are absent from the result.
func (r *mongoWorkoutLogRepository) CountByEnrollments(ctx context.Context, enrollmentIDs []primitive.ObjectID) (map[primitive.ObjectID]int, error) {
	counts := make(map[primitive.ObjectID]int, len(enrollmentIDs))
	if len(enrollmentIDs) == 0 {
		return counts, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"clientProgramId": bson.M{"$in": enrollmentIDs}}}},
		{{Key: "$group", Value: bson.M{"_id": "$clientProgramId", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    primitive.ObjectID `bson:"_id"`
		Count int                `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ID] = row.Count
	}
	return counts, nil
}

// DeleteByEnrollmentIDs removes every workout log of the given enrollments.
func (r *mongoWorkoutLogRepository) DeleteByEnrollmentIDs(ctx context.Context, enrollmentIDs []primitive.ObjectID) (int64, error) {
	return deleteByEnrollments(ctx, r.collection, enrollmentIDs)
}

// mongoMealLogRepository implements repository.MealLogRepository
type mongoMealLogRepository struct {
	collection *mongo.Collection
}

// NewMongoMealLogRepository creates a new meal log repository.
func NewMongoMealLogRepository(db *mongo.Database) repository.MealLogRepository {
	return &mongoMealLogRepository{
		collection: db.Collection(mealLogCollectionName),
	}
}

// Create inserts a new meal log.
func (r *mongoMealLogRepository) Create(ctx context.Context, log *domain.MealLog) (primitive.ObjectID, error) {
	if log.ClientID == primitive.NilObjectID || log.ClientProgramID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("meal log requires clientId and clientProgramId")
	}
	log.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	if log.Date.IsZero() {
		log.Date = now
	}
	log.CreatedAt = now
	log.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted meal log ID")
	}
	return insertedID, nil
}

// GetForClient retrieves a meal log owned by clientID.
func (r *mongoMealLogRepository) GetForClient(ctx context.Context, id, clientID primitive.ObjectID) (*domain.MealLog, error) {
	var log domain.MealLog
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "clientId": clientID}).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// Update writes the macros and notes of a meal log owned by log.ClientID.
func (r *mongoMealLogRepository) Update(ctx context.Context, log *domain.MealLog) error {
	log.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"calories":  log.Calories,
		"protein":   log.Protein,
		"carbs":     log.Carbs,
		"fats":      log.Fats,
		"data":      log.Data,
		"updatedAt": log.UpdatedAt,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": log.ID, "clientId": log.ClientID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a meal log owned by clientID.
func (r *mongoMealLogRepository) Delete(ctx context.Context, id, clientID primitive.ObjectID) error {
	return deleteOwned(ctx, r.collection, id, clientID)
}

// ListByEnrollment returns the meal logs of one enrollment, newest first.
func (r *mongoMealLogRepository) ListByEnrollment(ctx context.Context, clientID, enrollmentID primitive.ObjectID) ([]domain.MealLog, error) {
	logs := []domain.MealLog{}
	err := findNewestFirst(ctx, r.collection, bson.M{"clientId": clientID, "clientProgramId": enrollmentID}, 0, &logs)
	return logs, err
}

// ListByClient returns the meal logs of a client across enrollments, newest first.
func (r *mongoMealLogRepository) ListByClient(ctx context.Context, clientID primitive.ObjectID, limit int) ([]domain.MealLog, error) {
	logs := []domain.MealLog{}
	err := findNewestFirst(ctx, r.collection, bson.M{"clientId": clientID}, limit, &logs)
	return logs, err
}

// DeleteByEnrollmentIDs removes every meal log of the given enrollments.
func (r *mongoMealLogRepository) DeleteByEnrollmentIDs(ctx context.Context, enrollmentIDs []primitive.ObjectID) (int64, error) {
	return deleteByEnrollments(ctx, r.collection, enrollmentIDs)
}

func findNewestFirst(ctx context.Context, collection *mongo.Collection, filter bson.M, limit int, out interface{}) error {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, out); err != nil {
		return err
	}
	return cursor.Err()
}

func deleteOwned(ctx context.Context, collection *mongo.Collection, id, clientID primitive.ObjectID) error {
	result, err := collection.DeleteOne(ctx, bson.M{"_id": id, "clientId": clientID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func deleteByEnrollments(ctx context.Context, collection *mongo.Collection, enrollmentIDs []primitive.ObjectID) (int64, error) {
	if len(enrollmentIDs) == 0 {
		return 0, nil
	}
	result, err := collection.DeleteMany(ctx, bson.M{"clientProgramId": bson.M{"$in": enrollmentIDs}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// EnsureLogIndexes creates indexes for both log collections.
func EnsureLogIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "clientProgramId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "clientProgramId", Value: 1}},
			Options: options.Index(),
		},
	}
	for _, name := range []string{workoutLogCollectionName, mealLogCollectionName} {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return err
		}
	}
	return nil
}

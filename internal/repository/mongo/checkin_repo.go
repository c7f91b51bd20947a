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

const checkInCollectionName = "checkins"

// mongoCheckInRepository implements repository.CheckInRepository
type mongoCheckInRepository struct {
	collection *mongo.Collection
}

// NewMongoCheckInRepository creates a new check-in metadata repository.
func NewMongoCheckInRepository(db *mongo.Database) repository.CheckInRepository {
	return &mongoCheckInRepository{
		collection: db.Collection(checkInCollectionName),
	}
}

// Create inserts new check-in metadata after the file landed in S3.
func (r *mongoCheckInRepository) Create(ctx context.Context, checkIn *domain.CheckIn) (primitive.ObjectID, error) {
	if checkIn.ClientProgramID == primitive.NilObjectID || checkIn.S3ObjectKey == "" {
		return primitive.NilObjectID, errors.New("check-in requires clientProgramId and s3ObjectKey")
	}

	checkIn.ID = primitive.NewObjectID()
	checkIn.UploadedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, checkIn)
	if err != nil {
		// s3ObjectKey is unique; confirming the same upload twice is a duplicate
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted check-in ID")
	}
	return insertedID, nil
}

// ListByEnrollment retrieves check-ins of an enrollment, newest first.
func (r *mongoCheckInRepository) ListByEnrollment(ctx context.Context, enrollmentID primitive.ObjectID) ([]domain.CheckIn, error) {
	checkIns := []domain.CheckIn{}
	findOptions := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"clientProgramId": enrollmentID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &checkIns); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return checkIns, nil
}

// DeleteByProgramID removes the metadata of every check-in under a program and
// returns the S3 keys so the caller can remove the objects after commit.
func (r *mongoCheckInRepository) DeleteByProgramID(ctx context.Context, programID primitive.ObjectID) ([]string, error) {
	filter := bson.M{"programId": programID}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetProjection(bson.M{"s3ObjectKey": 1}))
	if err != nil {
		return nil, err
	}
	var rows []struct {
		Key string `bson:"s3ObjectKey"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	if _, err = r.collection.DeleteMany(ctx, filter); err != nil {
		return nil, err
	}
	keys := make([]string, len(rows))
	for i, row := range rows {
		keys[i] = row.Key
	}
	return keys, nil
}

// EnsureCheckInIndexes creates necessary indexes for the checkins collection.
func EnsureCheckInIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "clientProgramId", Value: 1}, {Key: "uploadedAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "programId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "s3ObjectKey", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := db.Collection(checkInCollectionName).Indexes().CreateMany(ctx, indexes)
	return err
}

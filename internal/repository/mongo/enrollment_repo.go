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

const enrollmentCollectionName = "client_programs"

// mongoEnrollmentRepository implements repository.EnrollmentRepository
type mongoEnrollmentRepository struct {
	collection *mongo.Collection
}

// NewMongoEnrollmentRepository creates a new enrollment repository backed by MongoDB.
func NewMongoEnrollmentRepository(db *mongo.Database) repository.EnrollmentRepository {
	return &mongoEnrollmentRepository{
		collection: db.Collection(enrollmentCollectionName),
	}
}

// Create inserts a new enrollment. A second active enrollment for the same
// (client, program) pair is rejected by the partial unique index.
func (r *mongoEnrollmentRepository) Create(ctx context.Context, cp *domain.ClientProgram) (primitive.ObjectID, error) {
	if cp.ClientID == primitive.NilObjectID || cp.ProgramID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("enrollment requires clientId and programId")
	}

	cp.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	if cp.StartDate.IsZero() {
		cp.StartDate = now
	}
	cp.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, cp)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted enrollment ID")
	}
	return insertedID, nil
}

// GetByID retrieves an enrollment by its ID.
func (r *mongoEnrollmentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ClientProgram, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetForClient retrieves an enrollment only if it belongs to clientID.
func (r *mongoEnrollmentRepository) GetForClient(ctx context.Context, id, clientID primitive.ObjectID) (*domain.ClientProgram, error) {
	return r.findOne(ctx, bson.M{"_id": id, "clientId": clientID})
}

// FindActive returns the active enrollment of clientID in programID.
func (r *mongoEnrollmentRepository) FindActive(ctx context.Context, clientID, programID primitive.ObjectID) (*domain.ClientProgram, error) {
	return r.findOne(ctx, bson.M{"clientId": clientID, "programId": programID, "active": true})
}

func (r *mongoEnrollmentRepository) findOne(ctx context.Context, filter bson.M) (*domain.ClientProgram, error) {
	var cp domain.ClientProgram
	err := r.collection.FindOne(ctx, filter).Decode(&cp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &cp, nil
}

// ListByClient retrieves every enrollment of a client, newest first.
func (r *mongoEnrollmentRepository) ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]domain.ClientProgram, error) {
	return r.find(ctx, bson.M{"clientId": clientID})
}

// ListActiveByProgramIDs retrieves active enrollments across several programs.
func (r *mongoEnrollmentRepository) ListActiveByProgramIDs(ctx context.Context, programIDs []primitive.ObjectID) ([]domain.ClientProgram, error) {
	if len(programIDs) == 0 {
		return []domain.ClientProgram{}, nil
	}
	return r.find(ctx, bson.M{"programId": bson.M{"$in": programIDs}, "active": true})
}

// ListByProgram retrieves every enrollment of a program, active or not.
func (r *mongoEnrollmentRepository) ListByProgram(ctx context.Context, programID primitive.ObjectID) ([]domain.ClientProgram, error) {
	return r.find(ctx, bson.M{"programId": programID})
}

func (r *mongoEnrollmentRepository) find(ctx context.Context, filter bson.M) ([]domain.ClientProgram, error) {
	var enrollments []domain.ClientProgram
	findOptions := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	if enrollments == nil {
		enrollments = []domain.ClientProgram{}
	}
	return enrollments, nil
}

// SaveProgress replaces the progress record of an enrollment.
func (r *mongoEnrollmentRepository) SaveProgress(ctx context.Context, id primitive.ObjectID, progress domain.Progress) error {
	return r.updateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"clientProgramData.progress": progress,
			"clientProgramData.v":        domain.ClientProgramDataVersion,
			"updatedAt":                  time.Now().UTC(),
		},
	})
}

// SaveCustomizations replaces the customizations of an enrollment and sets its version.
func (r *mongoEnrollmentRepository) SaveCustomizations(ctx context.Context, id primitive.ObjectID, cust *domain.Customizations, version int) error {
	return r.updateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"clientProgramData.customizations": cust,
			"clientProgramData.v":              domain.ClientProgramDataVersion,
			"version":                          version,
			"updatedAt":                        time.Now().UTC(),
		},
	})
}

// Deactivate marks a client's active enrollment as ended.
func (r *mongoEnrollmentRepository) Deactivate(ctx context.Context, id, clientID primitive.ObjectID) error {
	return r.updateOne(ctx, bson.M{"_id": id, "clientId": clientID, "active": true}, bson.M{
		"$set": bson.M{"active": false, "updatedAt": time.Now().UTC()},
	})
}

func (r *mongoEnrollmentRepository) updateOne(ctx context.Context, filter, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByProgramID removes every enrollment of a program.
func (r *mongoEnrollmentRepository) DeleteByProgramID(ctx context.Context, programID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"programId": programID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// EnsureEnrollmentIndexes creates necessary indexes for the client_programs collection.
func EnsureEnrollmentIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			// At most one active enrollment per (client, program)
			Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "programId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"active": true}).
				SetName("uniq_active_enrollment"),
		},
		{
			Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "startDate", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "programId", Value: 1}, {Key: "active", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := db.Collection(enrollmentCollectionName).Indexes().CreateMany(ctx, indexes)
	return err
}

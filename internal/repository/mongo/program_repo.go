// internal/repository/mongo/program_repo.go
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

const programCollectionName = "programs"

// mongoProgramRepository implements repository.ProgramRepository
type mongoProgramRepository struct {
	collection *mongo.Collection
}

// NewMongoProgramRepository creates a new Program repository.
func NewMongoProgramRepository(db *mongo.Database) repository.ProgramRepository {
	return &mongoProgramRepository{
		collection: db.Collection(programCollectionName),
	}
}

// Create inserts a new program. A preset ID is kept so routines can be
// built against it before the insert.
func (r *mongoProgramRepository) Create(ctx context.Context, program *domain.Program) (primitive.ObjectID, error) {
	if program.CoachID == primitive.NilObjectID || program.Name == "" || program.Type == "" {
		return primitive.NilObjectID, errors.New("program requires coachId, name, and type")
	}
	if program.ID == primitive.NilObjectID {
		program.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	program.CreatedAt = now
	program.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, program)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted program ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single program by its ID.
func (r *mongoProgramRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error) {
	var program domain.Program
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&program)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &program, nil
}

// GetByIDs retrieves the programs whose IDs are in ids.
func (r *mongoProgramRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Program, error) {
	if len(ids) == 0 {
		return []domain.Program{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// List returns programs matching filter, newest first.
func (r *mongoProgramRepository) List(ctx context.Context, f domain.ProgramFilter) ([]domain.Program, error) {
	filter := bson.M{}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.CoachID != nil {
		filter["coachId"] = *f.CoachID
	}
	if f.PublicOnly {
		filter["isPublic"] = true
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return r.find(ctx, filter)
}

func (r *mongoProgramRepository) find(ctx context.Context, filter bson.M) ([]domain.Program, error) {
	var programs []domain.Program
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &programs); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	if programs == nil {
		programs = []domain.Program{}
	}
	return programs, nil
}

// Update writes the mutable fields of program. Type, coach and creation time
// never change after insert.
func (r *mongoProgramRepository) Update(ctx context.Context, program *domain.Program) error {
	if program.ID == primitive.NilObjectID {
		return errors.New("program ID is required for update")
	}

	program.UpdatedAt = time.Now().UTC()
	filter := bson.M{"_id": program.ID, "coachId": program.CoachID}
	updateDoc := bson.M{
		"$set": bson.M{
			"name":        program.Name,
			"description": program.Description,
			"price":       program.Price,
			"isPublic":    program.IsPublic,
			"status":      program.Status,
			"cycleLength": program.CycleLength,
			"programData": program.Data,
			"updatedAt":   program.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the program row if it belongs to coachID. Dependent rows are
// the caller's responsibility.
func (r *mongoProgramRepository) Delete(ctx context.Context, programID, coachID primitive.ObjectID) error {
	if programID == primitive.NilObjectID || coachID == primitive.NilObjectID {
		return errors.New("program ID and coach ID are required for deletion")
	}

	filter := bson.M{
		"_id":     programID,
		"coachId": coachID,
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureProgramIndexes creates necessary indexes. Call during startup.
func EnsureProgramIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			// Coach dashboard and "my programs" listing
			Keys:    bson.D{{Key: "coachId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			// Marketplace listing
			Keys:    bson.D{{Key: "isPublic", Value: 1}, {Key: "type", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "externalId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := db.Collection(programCollectionName).Indexes().CreateMany(ctx, indexes)
	return err
}

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
	coachProfileCollectionName  = "coach_profiles"
	clientProfileCollectionName = "client_profiles"
)

// mongoProfileRepository implements repository.ProfileRepository.
type mongoProfileRepository struct {
	coaches *mongo.Collection
	clients *mongo.Collection
}

func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		coaches: db.Collection(coachProfileCollectionName),
		clients: db.Collection(clientProfileCollectionName),
	}
}

func (r *mongoProfileRepository) CreateCoach(ctx context.Context, profile *domain.CoachProfile) error {
	profile.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	return insertProfile(ctx, r.coaches, profile)
}

func (r *mongoProfileRepository) CreateClient(ctx context.Context, profile *domain.ClientProfile) error {
	profile.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	return insertProfile(ctx, r.clients, profile)
}

func insertProfile(ctx context.Context, collection *mongo.Collection, doc any) error {
	_, err := collection.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *mongoProfileRepository) GetCoach(ctx context.Context, userID primitive.ObjectID) (*domain.CoachProfile, error) {
	var profile domain.CoachProfile
	if err := findProfile(ctx, r.coaches, userID, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *mongoProfileRepository) GetClient(ctx context.Context, userID primitive.ObjectID) (*domain.ClientProfile, error) {
	var profile domain.ClientProfile
	if err := findProfile(ctx, r.clients, userID, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func findProfile(ctx context.Context, collection *mongo.Collection, userID primitive.ObjectID, out any) error {
	err := collection.FindOne(ctx, bson.M{"userId": userID}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}

func (r *mongoProfileRepository) UpdateCoach(ctx context.Context, profile *domain.CoachProfile) error {
	return updateProfile(ctx, r.coaches, profile.UserID, bson.M{
		"bio":       profile.Bio,
		"specialty": profile.Specialty,
		"instagram": profile.Instagram,
		"website":   profile.Website,
	})
}

func (r *mongoProfileRepository) UpdateClient(ctx context.Context, profile *domain.ClientProfile) error {
	return updateProfile(ctx, r.clients, profile.UserID, bson.M{
		"heightCm": profile.HeightCm,
		"weightKg": profile.WeightKg,
		"goals":    profile.Goals,
	})
}

func updateProfile(ctx context.Context, collection *mongo.Collection, userID primitive.ObjectID, set bson.M) error {
	set["updatedAt"] = time.Now().UTC()
	result, err := collection.UpdateOne(ctx, bson.M{"userId": userID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureProfileIndexes makes userId unique on both profile collections.
func EnsureProfileIndexes(ctx context.Context, db *mongo.Database) error {
	byUser := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, name := range []string{coachProfileCollectionName, clientProfileCollectionName} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, byUser); err != nil {
			return err
		}
	}
	return nil
}

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

const betaSignupCollectionName = "beta_signups"

type mongoBetaSignupRepository struct {
	collection *mongo.Collection
}

func NewMongoBetaSignupRepository(db *mongo.Database) repository.BetaSignupRepository {
	return &mongoBetaSignupRepository{
		collection: db.Collection(betaSignupCollectionName),
	}
}

func (r *mongoBetaSignupRepository) Create(ctx context.Context, signup *domain.BetaSignup) (primitive.ObjectID, error) {
	signup.ID = primitive.NewObjectID()
	signup.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, signup)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted signup ID")
	}
	return insertedID, nil
}

func EnsureBetaSignupIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(betaSignupCollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

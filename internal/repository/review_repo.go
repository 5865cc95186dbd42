package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lifetrack/internal/model"
)

// WeeklyReviewRepo handles MongoDB operations for weekly reviews
type WeeklyReviewRepo interface {
	GetLatest(ctx context.Context) (*model.WeeklyReview, error)
}

type weeklyReviewRepo struct {
	collection *mongo.Collection
}

// NewWeeklyReviewRepo creates a new weekly review repository
func NewWeeklyReviewRepo(db *mongo.Database) WeeklyReviewRepo {
	return &weeklyReviewRepo{collection: db.Collection("weekly_reviews")}
}

func (r *weeklyReviewRepo) GetLatest(ctx context.Context) (*model.WeeklyReview, error) {
	opts := options.FindOne().SetSort(bson.M{"createdAt": -1})

	var review model.WeeklyReview
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

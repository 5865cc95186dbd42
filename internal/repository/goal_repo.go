package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lifetrack/internal/model"
)

// GoalRepo handles MongoDB operations for goals
type GoalRepo interface {
	GetAll(ctx context.Context) ([]model.Goal, error)
}

type goalRepo struct {
	collection *mongo.Collection
}

// NewGoalRepo creates a new goal repository
func NewGoalRepo(db *mongo.Database) GoalRepo {
	return &goalRepo{collection: db.Collection("goals")}
}

func (r *goalRepo) GetAll(ctx context.Context) ([]model.Goal, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var goals []model.Goal
	if err = cursor.All(ctx, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lifetrack/internal/model"
)

// HabitRepo handles MongoDB operations for habits
type HabitRepo interface {
	GetAll(ctx context.Context) ([]model.Habit, error)
}

type habitRepo struct {
	collection *mongo.Collection
}

// NewHabitRepo creates a new habit repository
func NewHabitRepo(db *mongo.Database) HabitRepo {
	return &habitRepo{collection: db.Collection("habits")}
}

func (r *habitRepo) GetAll(ctx context.Context) ([]model.Habit, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var habits []model.Habit
	if err = cursor.All(ctx, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

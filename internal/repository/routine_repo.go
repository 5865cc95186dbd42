package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lifetrack/internal/model"
)

// RoutineRepo handles MongoDB operations for routines
type RoutineRepo interface {
	GetAll(ctx context.Context) ([]model.Routine, error)
}

type routineRepo struct {
	collection *mongo.Collection
}

// NewRoutineRepo creates a new routine repository
func NewRoutineRepo(db *mongo.Database) RoutineRepo {
	return &routineRepo{collection: db.Collection("routines")}
}

func (r *routineRepo) GetAll(ctx context.Context) ([]model.Routine, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var routines []model.Routine
	if err = cursor.All(ctx, &routines); err != nil {
		return nil, err
	}
	return routines, nil
}

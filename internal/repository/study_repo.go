package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lifetrack/internal/model"
)

// StudyItemRepo handles MongoDB operations for study items
type StudyItemRepo interface {
	GetAll(ctx context.Context) ([]model.StudyItem, error)
}

type studyItemRepo struct {
	collection *mongo.Collection
}

// NewStudyItemRepo creates a new study item repository
func NewStudyItemRepo(db *mongo.Database) StudyItemRepo {
	return &studyItemRepo{collection: db.Collection("study_items")}
}

func (r *studyItemRepo) GetAll(ctx context.Context) ([]model.StudyItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []model.StudyItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

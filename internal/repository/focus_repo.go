package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lifetrack/internal/model"
)

// FocusSessionRepo handles MongoDB operations for focus sessions
type FocusSessionRepo interface {
	GetSince(ctx context.Context, since time.Time) ([]model.FocusSession, error)
}

type focusSessionRepo struct {
	collection *mongo.Collection
}

// NewFocusSessionRepo creates a new focus session repository
func NewFocusSessionRepo(db *mongo.Database) FocusSessionRepo {
	return &focusSessionRepo{collection: db.Collection("focus_sessions")}
}

func (r *focusSessionRepo) GetSince(ctx context.Context, since time.Time) ([]model.FocusSession, error) {
	opts := options.Find().SetSort(bson.M{"completedAt": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"completedAt": bson.M{"$gte": since}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []model.FocusSession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

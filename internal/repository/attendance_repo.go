package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lifetrack/internal/model"
)

// AttendanceRepo handles MongoDB operations for attendance marks
type AttendanceRepo interface {
	GetSince(ctx context.Context, since time.Time) ([]model.Attendance, error)
}

type attendanceRepo struct {
	collection *mongo.Collection
}

// NewAttendanceRepo creates a new attendance repository
func NewAttendanceRepo(db *mongo.Database) AttendanceRepo {
	return &attendanceRepo{collection: db.Collection("attendance")}
}

func (r *attendanceRepo) GetSince(ctx context.Context, since time.Time) ([]model.Attendance, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"date": bson.M{"$gte": since}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []model.Attendance
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

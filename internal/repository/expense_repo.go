package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lifetrack/internal/model"
)

// ExpenseRepo handles MongoDB operations for expense transactions
type ExpenseRepo interface {
	GetSince(ctx context.Context, since time.Time) ([]model.Expense, error)
}

type expenseRepo struct {
	collection *mongo.Collection
}

// NewExpenseRepo creates a new expense repository
func NewExpenseRepo(db *mongo.Database) ExpenseRepo {
	return &expenseRepo{collection: db.Collection("expenses")}
}

func (r *expenseRepo) GetSince(ctx context.Context, since time.Time) ([]model.Expense, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"date": bson.M{"$gte": since}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var expenses []model.Expense
	if err = cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

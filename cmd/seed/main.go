// Seeds a coherent sample week of records across all tracked collections,
// for local development against an empty database.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lifetrack/internal/model"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "lifetrack"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := func(d int) time.Time { return today.AddDate(0, 0, -d) }

	// Focus sessions over the past week, tapering toward today
	sessions := []interface{}{
		model.FocusSession{Duration: 50, SessionType: "deep", CompletedAt: yesterday(6).Add(9 * time.Hour)},
		model.FocusSession{Duration: 25, SessionType: "pomodoro", CompletedAt: yesterday(5).Add(10 * time.Hour)},
		model.FocusSession{Duration: 45, SessionType: "deep", CompletedAt: yesterday(4).Add(14 * time.Hour)},
		model.FocusSession{Duration: 30, SessionType: "pomodoro", CompletedAt: yesterday(2).Add(16 * time.Hour)},
		model.FocusSession{Duration: 60, SessionType: "deep", CompletedAt: yesterday(1).Add(9 * time.Hour)},
		model.FocusSession{Duration: 40, SessionType: "deep", CompletedAt: today.Add(8 * time.Hour)},
	}
	insert(ctx, db, "focus_sessions", sessions)

	streak3 := yesterday(1)
	habits := []interface{}{
		model.Habit{Name: "Morning run", CurrentStreak: 12, LongestStreak: 21, LastCompletedDate: &streak3},
		model.Habit{Name: "Read 20 pages", CurrentStreak: 4, LongestStreak: 15, LastCompletedDate: &streak3},
		model.Habit{Name: "No sugar", CurrentStreak: 0, LongestStreak: 9},
	}
	insert(ctx, db, "habits", habits)

	routines := []interface{}{
		model.Routine{Name: "Morning routine", Date: today, Tasks: []model.RoutineTask{
			{Title: "Stretch", Completed: true},
			{Title: "Plan the day", Completed: true},
			{Title: "Inbox zero", Completed: false},
		}},
		model.Routine{Name: "Evening routine", Date: today, Tasks: []model.RoutineTask{
			{Title: "Journal", Completed: false},
			{Title: "Prep tomorrow", Completed: true},
		}},
	}
	insert(ctx, db, "routines", routines)

	expenses := []interface{}{
		model.Expense{Amount: 2400, Type: model.TransactionIncome, Date: yesterday(20)},
		model.Expense{Amount: 320, Type: model.TransactionExpense, Date: yesterday(12)},
		model.Expense{Amount: 85.50, Type: model.TransactionExpense, Date: yesterday(6)},
		model.Expense{Amount: 140, Type: model.TransactionExpense, Date: yesterday(2)},
	}
	insert(ctx, db, "expenses", expenses)

	var attendance []interface{}
	for d := 1; d <= 20; d++ {
		status := model.StatusPresent
		if d%7 == 0 {
			status = model.StatusAbsent
		}
		attendance = append(attendance, model.Attendance{Status: status, Date: yesterday(d)})
	}
	insert(ctx, db, "attendance", attendance)

	studyItems := []interface{}{
		model.StudyItem{Name: "Linear Algebra", Type: model.StudySubject, Progress: 65},
		model.StudyItem{Name: "Operating Systems", Type: model.StudySubject, Progress: 40},
		model.StudyItem{Name: "Scheduling", Type: model.StudyChapter, Progress: 80},
		model.StudyItem{Name: "Eigenvalues", Type: model.StudyTopic, Progress: 30},
	}
	insert(ctx, db, "study_items", studyItems)

	goals := []interface{}{
		model.Goal{Title: "Run a half marathon", Progress: 100},
		model.Goal{Title: "Finish OS course", Progress: 55},
		model.Goal{Title: "Emergency fund", Progress: 70},
	}
	insert(ctx, db, "goals", goals)

	reviews := []interface{}{
		model.WeeklyReview{
			Summary:   "Solid week for focus, slipped on evening routines. Spending was under control.",
			CreatedAt: yesterday(3),
		},
	}
	insert(ctx, db, "weekly_reviews", reviews)

	log.Println("Seed complete")
}

func insert(ctx context.Context, db *mongo.Database, collection string, docs []interface{}) {
	if _, err := db.Collection(collection).InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to seed %s: %v", collection, err)
	}
	log.Printf("Seeded %s (%d docs)", collection, len(docs))
}

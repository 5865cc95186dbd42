package model

import "time"

// FocusSession is a completed focus timer session
type FocusSession struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Duration    int       `json:"duration" bson:"duration"` // minutes
	SessionType string    `json:"sessionType" bson:"sessionType"`
	CompletedAt time.Time `json:"completedAt" bson:"completedAt"`
}

// Habit is a tracked habit with streak state
type Habit struct {
	ID                string     `json:"id" bson:"_id,omitempty"`
	Name              string     `json:"name" bson:"name"`
	CurrentStreak     int        `json:"currentStreak" bson:"currentStreak"`
	LongestStreak     int        `json:"longestStreak" bson:"longestStreak"`
	LastCompletedDate *time.Time `json:"lastCompletedDate,omitempty" bson:"lastCompletedDate,omitempty"`
}

// RoutineTask is a checkable sub-item of a routine
type RoutineTask struct {
	Title     string `json:"title" bson:"title"`
	Completed bool   `json:"completed" bson:"completed"`
}

// Routine is a daily routine with its task checklist
type Routine struct {
	ID    string        `json:"id" bson:"_id,omitempty"`
	Name  string        `json:"name" bson:"name"`
	Tasks []RoutineTask `json:"tasks" bson:"tasks"`
	Date  time.Time     `json:"date" bson:"date"`
}

// Expense transaction types
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Expense is a logged transaction (income or expense)
type Expense struct {
	ID     string    `json:"id" bson:"_id,omitempty"`
	Amount float64   `json:"amount" bson:"amount"`
	Type   string    `json:"type" bson:"type"` // income, expense
	Date   time.Time `json:"date" bson:"date"`
}

// Attendance statuses
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// Attendance is a single day's attendance mark
type Attendance struct {
	ID     string    `json:"id" bson:"_id,omitempty"`
	Status string    `json:"status" bson:"status"` // present, absent
	Date   time.Time `json:"date" bson:"date"`
}

// StudyItem types
const (
	StudySubject = "subject"
	StudyChapter = "chapter"
	StudyTopic   = "topic"
)

// StudyItem is a subject, chapter, or topic with tracked progress
type StudyItem struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	Type     string `json:"type" bson:"type"` // subject, chapter, topic
	Progress int    `json:"progress" bson:"progress"` // 0-100
}

// Goal is a long-running goal with tracked progress
type Goal struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Title    string `json:"title" bson:"title"`
	Progress int    `json:"progress" bson:"progress"` // 0-100
}

// WeeklyReview is a saved end-of-week reflection
type WeeklyReview struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Summary   string    `json:"summary" bson:"summary"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// RecordSnapshot is the joined read set the intelligence engine derives from.
// Reads are independent; the snapshot carries no cross-collection consistency
// guarantee.
type RecordSnapshot struct {
	Sessions   []FocusSession
	Habits     []Habit
	Routines   []Routine
	Expenses   []Expense
	Attendance []Attendance
	StudyItems []StudyItem
	Goals      []Goal
	Review     *WeeklyReview // most recent, may be nil
}

// Package plan builds day-partitioned review schedules from scored
// wrong-answer records and tracks their completion.
package plan

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/wrongbook-app/wrongbook/internal/review"
)

const (
	defaultHoursPerDay   = 1
	defaultDaysAvailable = 30

	// targetCompletionRate is the fixed per-week completion policy.
	targetCompletionRate = 85

	// daysPerGoalWindow counts consecutive DailyTask entries, not calendar
	// days: days without work are never emitted, so goal windows drift past
	// calendar weeks on a sparse backlog.
	daysPerGoalWindow = 7

	// defaultSuccessRate is assumed when the records carry no history.
	defaultSuccessRate = 50

	// RevisionStrategy identifies how plans generated here space their work.
	RevisionStrategy = "spaced-repetition"
)

// Preferences hold the learner's time budget. Zero values fall back to one
// hour per day over thirty days.
type Preferences struct {
	HoursPerDay   float64  `json:"hoursPerDay" yaml:"hours_per_day"`
	DaysAvailable int      `json:"daysAvailable" yaml:"days_available"`
	FocusAreas    []string `json:"focusAreas" yaml:"focus_areas"`
}

func (p Preferences) withDefaults() Preferences {
	if p.HoursPerDay <= 0 {
		p.HoursPerDay = defaultHoursPerDay
	}
	if p.DaysAvailable <= 0 {
		p.DaysAvailable = defaultDaysAvailable
	}
	return p
}

// Task is one question slot inside a DailyTask.
type Task struct {
	RecordID      string `json:"recordId"`
	QuestionTitle string `json:"questionTitle"`
	Priority      int    `json:"priority"`
	EstimatedTime int    `json:"estimatedTime"` // minutes
}

// DailyTask is the work assigned to one calendar day. DayNumber is the
// 1-based offset from generation; the sequence skips days with no work.
type DailyTask struct {
	Date              time.Time `json:"date"`
	DayNumber         int       `json:"dayNumber"`
	Tasks             []Task    `json:"tasks"`
	EstimatedDuration int       `json:"estimatedDuration"` // minutes
	Completed         bool      `json:"completed"`
	CompletedCount    int       `json:"completedCount"`
}

// WeeklyGoal is the target for one window of seven DailyTask entries.
type WeeklyGoal struct {
	WeekNumber           int       `json:"weekNumber"`
	StartDate            time.Time `json:"startDate"`
	EndDate              time.Time `json:"endDate"`
	TargetQuestions      int       `json:"targetQuestions"`
	TargetCompletionRate int       `json:"targetCompletionRate"`
}

// ReviewPlan is a generated schedule covering a snapshot of records. It is
// immutable once generated; completion marks go through MarkTasksCompleted,
// which returns a fresh value. Staleness after the backlog changes is the
// caller's responsibility.
type ReviewPlan struct {
	PlanID                  string       `json:"planId"`
	GeneratedAt             time.Time    `json:"generatedAt"`
	TotalDays               int          `json:"totalDays"`
	HoursPerDay             float64      `json:"hoursPerDay"`
	EstimatedCompletionDate time.Time    `json:"estimatedCompletionDate"`
	DailyTasks              []DailyTask  `json:"dailyTasks"`
	WeeklyGoals             []WeeklyGoal `json:"weeklyGoals"`
	TotalQuestionsToReview  int          `json:"totalQuestionsToReview"`
	QuestionsPerDay         int          `json:"questionsPerDay"`
	EstimatedSuccessRate    int          `json:"estimatedSuccessRate"`
	FocusAreas              []string     `json:"focusAreas"`
	RevisionStrategy        string       `json:"revisionStrategy"`
}

// Generate builds a ReviewPlan from a snapshot of records. Records are packed
// highest priority first into at most DaysAvailable daily tasks starting
// tomorrow; packing stops once the queue drains.
func Generate(records []review.WrongAnswerRecord, prefs Preferences, now time.Time) ReviewPlan {
	prefs = prefs.withDefaults()
	questionsPerDay := int(math.Ceil(prefs.HoursPerDay * 60 / review.AvgMinutesPerQuestion))

	sorted := review.SortByPriority(records, now)
	var dailyTasks []DailyTask
	index := 0
	for day := 1; day <= prefs.DaysAvailable && index < len(sorted); day++ {
		tasks := make([]Task, 0, questionsPerDay)
		for len(tasks) < questionsPerDay && index < len(sorted) {
			record := sorted[index]
			tasks = append(tasks, Task{
				RecordID:      record.ID,
				QuestionTitle: record.QuestionTitle,
				Priority:      review.Priority(record, now),
				EstimatedTime: review.AvgMinutesPerQuestion,
			})
			index++
		}
		dailyTasks = append(dailyTasks, DailyTask{
			Date:              now.AddDate(0, 0, day),
			DayNumber:         day,
			Tasks:             tasks,
			EstimatedDuration: len(tasks) * review.AvgMinutesPerQuestion,
		})
	}

	return ReviewPlan{
		PlanID:                  uuid.NewString(),
		GeneratedAt:             now,
		TotalDays:               prefs.DaysAvailable,
		HoursPerDay:             prefs.HoursPerDay,
		EstimatedCompletionDate: now.AddDate(0, 0, prefs.DaysAvailable),
		DailyTasks:              dailyTasks,
		WeeklyGoals:             calculateWeeklyGoals(dailyTasks),
		TotalQuestionsToReview:  len(records),
		QuestionsPerDay:         questionsPerDay,
		EstimatedSuccessRate:    estimatedSuccessRate(records),
		FocusAreas:              prefs.FocusAreas,
		RevisionStrategy:        RevisionStrategy,
	}
}

// estimatedSuccessRate is the aggregate historical accuracy across the input
// set, or defaultSuccessRate when there is no history.
func estimatedSuccessRate(records []review.WrongAnswerRecord) int {
	var correct, total int
	for _, record := range records {
		correct += record.CorrectCount
		total += record.CorrectCount + record.WrongCount
	}
	if total == 0 {
		return defaultSuccessRate
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// calculateWeeklyGoals partitions the daily tasks into consecutive windows of
// seven entries, bounded by the window's first and last dates.
func calculateWeeklyGoals(dailyTasks []DailyTask) []WeeklyGoal {
	var goals []WeeklyGoal
	for start := 0; start < len(dailyTasks); start += daysPerGoalWindow {
		end := min(start+daysPerGoalWindow, len(dailyTasks))
		window := dailyTasks[start:end]

		target := 0
		for _, day := range window {
			target += len(day.Tasks)
		}

		goals = append(goals, WeeklyGoal{
			WeekNumber:           start/daysPerGoalWindow + 1,
			StartDate:            window[0].Date,
			EndDate:              window[len(window)-1].Date,
			TargetQuestions:      target,
			TargetCompletionRate: targetCompletionRate,
		})
	}
	return goals
}

// TodayTasks returns the task list scheduled for now's calendar day, or nil
// when the plan has no work today.
func (p ReviewPlan) TodayTasks(now time.Time) []Task {
	for _, day := range p.DailyTasks {
		if sameDay(day.Date, now) {
			return day.Tasks
		}
	}
	return nil
}

// UpcomingTasks returns the daily tasks scheduled after today and within the
// next given number of days.
func (p ReviewPlan) UpcomingTasks(now time.Time, days int) []DailyTask {
	today := startOfDay(now)
	end := today.AddDate(0, 0, days)

	var upcoming []DailyTask
	for _, day := range p.DailyTasks {
		date := startOfDay(day.Date.In(now.Location()))
		if date.After(today) && date.Before(end) {
			upcoming = append(upcoming, day)
		}
	}
	return upcoming
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package plan

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrongbook-app/wrongbook/internal/review"
)

func makeRecords(count int, now time.Time) []review.WrongAnswerRecord {
	records := make([]review.WrongAnswerRecord, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, review.WrongAnswerRecord{
			ID:             fmt.Sprintf("r%d", i+1),
			QuestionTitle:  fmt.Sprintf("Question %d", i+1),
			Difficulty:     review.DifficultyMedium,
			WrongCount:     i + 1,
			NextReviewTime: now,
		})
	}
	return records
}

func TestGenerate(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("everything fits in one day", func(t *testing.T) {
		records := makeRecords(5, now)
		result := Generate(records, Preferences{HoursPerDay: 1, DaysAvailable: 30}, now)

		assert.NotEmpty(t, result.PlanID)
		assert.Equal(t, now, result.GeneratedAt)
		assert.Equal(t, 30, result.TotalDays)
		assert.Equal(t, float64(1), result.HoursPerDay)
		assert.Equal(t, now.AddDate(0, 0, 30), result.EstimatedCompletionDate)
		assert.Equal(t, 30, result.QuestionsPerDay)
		assert.Equal(t, 5, result.TotalQuestionsToReview)
		assert.Equal(t, RevisionStrategy, result.RevisionStrategy)

		require.Len(t, result.DailyTasks, 1)
		day := result.DailyTasks[0]
		assert.Equal(t, 1, day.DayNumber)
		assert.Equal(t, now.AddDate(0, 0, 1), day.Date)
		assert.Len(t, day.Tasks, 5)
		assert.Equal(t, 5*review.AvgMinutesPerQuestion, day.EstimatedDuration)
		assert.False(t, day.Completed)

		require.Len(t, result.WeeklyGoals, 1)
		goal := result.WeeklyGoals[0]
		assert.Equal(t, 1, goal.WeekNumber)
		assert.Equal(t, day.Date, goal.StartDate)
		assert.Equal(t, day.Date, goal.EndDate)
		assert.Equal(t, 5, goal.TargetQuestions)
		assert.Equal(t, 85, goal.TargetCompletionRate)
	})

	t.Run("records spill over multiple days", func(t *testing.T) {
		records := makeRecords(7, now)
		result := Generate(records, Preferences{HoursPerDay: 0.1, DaysAvailable: 30}, now)

		assert.Equal(t, 3, result.QuestionsPerDay)
		require.Len(t, result.DailyTasks, 3)
		for i, wantLen := range []int{3, 3, 1} {
			day := result.DailyTasks[i]
			assert.Equal(t, i+1, day.DayNumber)
			assert.Equal(t, now.AddDate(0, 0, i+1), day.Date)
			assert.Len(t, day.Tasks, wantLen)
			assert.Equal(t, wantLen*review.AvgMinutesPerQuestion, day.EstimatedDuration)
		}
	})

	t.Run("highest priority records come first", func(t *testing.T) {
		records := makeRecords(7, now)
		result := Generate(records, Preferences{HoursPerDay: 0.1, DaysAvailable: 30}, now)

		var previous *Task
		for _, day := range result.DailyTasks {
			for _, task := range day.Tasks {
				if previous != nil {
					assert.GreaterOrEqual(t, previous.Priority, task.Priority)
				}
				task := task
				previous = &task
			}
		}
		// makeRecords gives r7 the most wrong answers.
		assert.Equal(t, "r7", result.DailyTasks[0].Tasks[0].RecordID)
	})

	t.Run("available days cap the schedule", func(t *testing.T) {
		records := makeRecords(10, now)
		result := Generate(records, Preferences{HoursPerDay: 0.1, DaysAvailable: 2}, now)

		require.Len(t, result.DailyTasks, 2)
		scheduled := 0
		for _, day := range result.DailyTasks {
			scheduled += len(day.Tasks)
		}
		assert.Equal(t, 6, scheduled)
		assert.Equal(t, 10, result.TotalQuestionsToReview)
	})

	t.Run("zero preferences fall back to defaults", func(t *testing.T) {
		result := Generate(makeRecords(1, now), Preferences{}, now)

		assert.Equal(t, 30, result.TotalDays)
		assert.Equal(t, float64(1), result.HoursPerDay)
		assert.Equal(t, 30, result.QuestionsPerDay)
	})

	t.Run("no records yields an empty schedule", func(t *testing.T) {
		result := Generate(nil, Preferences{}, now)

		assert.Empty(t, result.DailyTasks)
		assert.Empty(t, result.WeeklyGoals)
		assert.Equal(t, 0, result.TotalQuestionsToReview)
	})

	t.Run("focus areas carry through", func(t *testing.T) {
		result := Generate(makeRecords(1, now), Preferences{FocusAreas: []string{"algebra", "geometry"}}, now)

		assert.Equal(t, []string{"algebra", "geometry"}, result.FocusAreas)
	})
}

func TestEstimatedSuccessRate(t *testing.T) {
	tests := []struct {
		name     string
		records  []review.WrongAnswerRecord
		expected int
	}{
		{
			name:     "no history assumes the default",
			records:  []review.WrongAnswerRecord{{ID: "fresh"}},
			expected: 50,
		},
		{
			name: "aggregate accuracy across records",
			records: []review.WrongAnswerRecord{
				{CorrectCount: 2, WrongCount: 1},
				{CorrectCount: 1, WrongCount: 0},
			},
			expected: 75,
		},
		{
			name: "all wrong",
			records: []review.WrongAnswerRecord{
				{CorrectCount: 0, WrongCount: 4},
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, estimatedSuccessRate(tt.records))
		})
	}
}

func TestCalculateWeeklyGoals(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	records := makeRecords(16, now)
	result := Generate(records, Preferences{HoursPerDay: 0.03, DaysAvailable: 30}, now)

	require.Equal(t, 1, result.QuestionsPerDay)
	require.Len(t, result.DailyTasks, 16)
	require.Len(t, result.WeeklyGoals, 3)

	tests := []struct {
		weekNumber      int
		startDay        int
		endDay          int
		targetQuestions int
	}{
		{weekNumber: 1, startDay: 1, endDay: 7, targetQuestions: 7},
		{weekNumber: 2, startDay: 8, endDay: 14, targetQuestions: 7},
		{weekNumber: 3, startDay: 15, endDay: 16, targetQuestions: 2},
	}

	for i, tt := range tests {
		goal := result.WeeklyGoals[i]
		assert.Equal(t, tt.weekNumber, goal.WeekNumber)
		assert.Equal(t, now.AddDate(0, 0, tt.startDay), goal.StartDate)
		assert.Equal(t, now.AddDate(0, 0, tt.endDay), goal.EndDate)
		assert.Equal(t, tt.targetQuestions, goal.TargetQuestions)
		assert.Equal(t, 85, goal.TargetCompletionRate)
	}
}

func TestTodayTasks(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	p := ReviewPlan{
		DailyTasks: []DailyTask{
			{DayNumber: 1, Date: now.AddDate(0, 0, -1), Tasks: []Task{{RecordID: "old"}}},
			{DayNumber: 2, Date: now.Add(8 * time.Hour), Tasks: []Task{{RecordID: "today"}}},
			{DayNumber: 3, Date: now.AddDate(0, 0, 1), Tasks: []Task{{RecordID: "future"}}},
		},
	}

	tasks := p.TodayTasks(now)
	require.Len(t, tasks, 1)
	assert.Equal(t, "today", tasks[0].RecordID)

	assert.Nil(t, ReviewPlan{}.TodayTasks(now))
}

func TestUpcomingTasks(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	p := ReviewPlan{
		DailyTasks: []DailyTask{
			{DayNumber: 1, Date: now},
			{DayNumber: 2, Date: now.AddDate(0, 0, 1)},
			{DayNumber: 3, Date: now.AddDate(0, 0, 6)},
			{DayNumber: 4, Date: now.AddDate(0, 0, 7)},
		},
	}

	upcoming := p.UpcomingTasks(now, 7)
	require.Len(t, upcoming, 2)
	assert.Equal(t, 2, upcoming[0].DayNumber)
	assert.Equal(t, 3, upcoming[1].DayNumber)
}

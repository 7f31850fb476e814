package plan

import (
	"fmt"
	"time"
)

// SessionStatusActive marks a session the learner is currently driving.
const SessionStatusActive = "active"

// ReviewSession snapshots one day's tasks for an interactive review loop.
// The loop itself is owned by the consumer.
type ReviewSession struct {
	SessionID         string    `json:"sessionId"`
	DayNumber         int       `json:"dayNumber"`
	Date              time.Time `json:"date"`
	TotalQuestions    int       `json:"totalQuestions"`
	Questions         []Task    `json:"questions"`
	EstimatedDuration int       `json:"estimatedDuration"`
	StartTime         time.Time `json:"startTime"`
	Status            string    `json:"status"`
	CompletedCount    int       `json:"completedCount"`
	Score             int       `json:"score"`
}

// NewSession snapshots the given day into an active session starting at now,
// or nil when the plan has no such day.
func (p ReviewPlan) NewSession(dayNumber int, now time.Time) *ReviewSession {
	for _, day := range p.DailyTasks {
		if day.DayNumber != dayNumber {
			continue
		}
		questions := make([]Task, len(day.Tasks))
		copy(questions, day.Tasks)
		return &ReviewSession{
			SessionID:         fmt.Sprintf("session-%d-%d", dayNumber, now.UnixMilli()),
			DayNumber:         dayNumber,
			Date:              day.Date,
			TotalQuestions:    len(day.Tasks),
			Questions:         questions,
			EstimatedDuration: day.EstimatedDuration,
			StartTime:         now,
			Status:            SessionStatusActive,
		}
	}
	return nil
}

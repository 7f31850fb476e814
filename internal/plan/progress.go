package plan

import "math"

// Progress summarizes how much of a plan has been completed.
type Progress struct {
	CompletedTasks            int `json:"completedTasks"`
	TotalTasks                int `json:"totalTasks"`
	CompletedPercentage       int `json:"completedPercentage"`
	CompletedDays             int `json:"completedDays"`
	TotalDays                 int `json:"totalDays"`
	DaysPercentage            int `json:"daysPercentage"`
	EstimatedDaysToCompletion int `json:"estimatedDaysToCompletion"`
}

// MarkTasksCompleted returns a copy of the plan with the given day's
// completion updated; the receiver is left untouched. The completed count
// trusts the caller's task IDs and does not cross-check them against the
// day's task list.
func (p ReviewPlan) MarkTasksCompleted(dayNumber int, taskIDs []string) ReviewPlan {
	updated := p
	updated.DailyTasks = make([]DailyTask, len(p.DailyTasks))
	copy(updated.DailyTasks, p.DailyTasks)

	for i, day := range updated.DailyTasks {
		if day.DayNumber != dayNumber {
			continue
		}
		day.CompletedCount = len(taskIDs)
		day.Completed = day.CompletedCount == len(day.Tasks)
		updated.DailyTasks[i] = day
		break
	}
	return updated
}

// Progress aggregates task and day completion over the plan.
func (p ReviewPlan) Progress() Progress {
	progress := Progress{TotalDays: len(p.DailyTasks)}
	for _, day := range p.DailyTasks {
		progress.TotalTasks += len(day.Tasks)
		progress.CompletedTasks += day.CompletedCount
		if day.Completed {
			progress.CompletedDays++
		}
	}

	if progress.TotalTasks > 0 {
		progress.CompletedPercentage = int(math.Round(float64(progress.CompletedTasks) / float64(progress.TotalTasks) * 100))
	}
	if progress.TotalDays > 0 {
		progress.DaysPercentage = int(math.Round(float64(progress.CompletedDays) / float64(progress.TotalDays) * 100))
	}
	if p.QuestionsPerDay > 0 {
		remaining := progress.TotalTasks - progress.CompletedTasks
		progress.EstimatedDaysToCompletion = int(math.Ceil(float64(remaining) / float64(p.QuestionsPerDay)))
	}
	return progress
}

// Suggestion is one pacing adjustment for the learner.
type Suggestion struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// SuggestAdjustments compares completion pace against elapsed schedule and
// returns pacing suggestions. An on-pace plan yields none.
func SuggestAdjustments(progress Progress) []Suggestion {
	var suggestions []Suggestion
	if progress.CompletedPercentage < 50 && progress.DaysPercentage < 50 {
		suggestions = append(suggestions, Suggestion{
			Type:    "pace-slow",
			Message: "Your review pace is slower than planned. Consider extending your study time.",
			Action:  "increase-hours",
		})
	}
	if progress.CompletedPercentage > 80 && progress.DaysPercentage < 30 {
		suggestions = append(suggestions, Suggestion{
			Type:    "pace-fast",
			Message: "You are ahead of schedule! Consider taking a break or adding more questions.",
			Action:  "add-questions",
		})
	}
	return suggestions
}

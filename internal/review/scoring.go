package review

import (
	"math"
	"sort"
	"time"
)

const (
	initialInterval = 1

	// AvgMinutesPerQuestion is the planning estimate for reviewing one
	// question.
	AvgMinutesPerQuestion = 2

	priorityCritical = 200
	priorityHigh     = 100
	priorityMedium   = 50
)

// PriorityLevel labels a priority score.
type PriorityLevel string

const (
	PriorityLevelCritical PriorityLevel = "CRITICAL"
	PriorityLevelHigh     PriorityLevel = "HIGH"
	PriorityLevelMedium   PriorityLevel = "MEDIUM"
	PriorityLevelLow      PriorityLevel = "LOW"
)

// NextInterval returns the next spacing interval in days after a review with
// the given rating. The result is never below one day.
func NextInterval(currentInterval int, rating Rating) int {
	if currentInterval < initialInterval {
		currentInterval = initialInterval
	}
	next := int(math.Ceil(float64(currentInterval) * rating.multiplier()))
	if next < 1 {
		return 1
	}
	return next
}

// NextReviewDate returns when the record should come up again after a review
// at now with the given rating. The caller persists the result.
func NextReviewDate(record WrongAnswerRecord, rating Rating, now time.Time) time.Time {
	return now.AddDate(0, 0, NextInterval(record.IntervalDays, rating))
}

// Reviewed returns a copy of the record with IntervalDays and NextReviewTime
// advanced for a review at now. The correct/wrong counters are owned by the
// submission flow and left untouched.
func Reviewed(record WrongAnswerRecord, rating Rating, now time.Time) WrongAnswerRecord {
	updated := record
	updated.IntervalDays = NextInterval(record.IntervalDays, rating)
	updated.NextReviewTime = now.AddDate(0, 0, updated.IntervalDays)
	return updated
}

// Priority scores how urgently the record needs review at now. Overdue days
// dominate, then error frequency, then intrinsic difficulty; accumulated
// correct answers reduce urgency. Never negative.
func Priority(record WrongAnswerRecord, now time.Time) int {
	score := overdueDays(record, now)*100 +
		record.WrongCount*50 +
		record.Difficulty.weight()*30 -
		record.CorrectCount*10
	if score < 0 {
		return 0
	}
	return score
}

// overdueDays returns whole days elapsed past the scheduled review, never
// negative. An unscheduled record counts as due now, not years overdue.
func overdueDays(record WrongAnswerRecord, now time.Time) int {
	if record.NextReviewTime.IsZero() {
		return 0
	}
	diff := now.Sub(record.NextReviewTime)
	if diff <= 0 {
		return 0
	}
	return int(diff.Hours() / 24)
}

// PriorityLevelOf labels a priority score with its categorical level.
func PriorityLevelOf(score int) PriorityLevel {
	switch {
	case score >= priorityCritical:
		return PriorityLevelCritical
	case score >= priorityHigh:
		return PriorityLevelHigh
	case score >= priorityMedium:
		return PriorityLevelMedium
	default:
		return PriorityLevelLow
	}
}

// NeedsReviewToday reports whether the record's scheduled day is today or
// earlier. The comparison is at calendar-day granularity in now's location,
// so a record due at 23:59 today is just as due as one due at 00:01.
func NeedsReviewToday(record WrongAnswerRecord, now time.Time) bool {
	if record.NextReviewTime.IsZero() {
		return true
	}
	next := startOfDay(record.NextReviewTime.In(now.Location()))
	return !next.After(startOfDay(now))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MasteryScore returns the record's accuracy percentage in [0, 100].
// A record with no attempts scores zero.
func MasteryScore(record WrongAnswerRecord) int {
	total := record.CorrectCount + record.WrongCount
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(record.CorrectCount) / float64(total) * 100))
}

// MasteryStatusOf buckets a mastery score into its status.
func MasteryStatusOf(score int) MasteryStatus {
	switch {
	case score >= 85:
		return MasteryMastered
	case score >= 60:
		return MasteryReviewing
	default:
		return MasteryUnreviewed
	}
}

// DueForReview returns the records scheduled at or before the given instant.
func DueForReview(records []WrongAnswerRecord, before time.Time) []WrongAnswerRecord {
	var due []WrongAnswerRecord
	for _, record := range records {
		if record.NextReviewTime.IsZero() || !record.NextReviewTime.After(before) {
			due = append(due, record)
		}
	}
	return due
}

// SortByPriority returns a copy of records sorted by descending priority at
// now. Records with equal priority keep their original order.
func SortByPriority(records []WrongAnswerRecord, now time.Time) []WrongAnswerRecord {
	type scored struct {
		record   WrongAnswerRecord
		priority int
	}
	entries := make([]scored, len(records))
	for i, record := range records {
		entries[i] = scored{record: record, priority: Priority(record, now)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	sorted := make([]WrongAnswerRecord, len(entries))
	for i, entry := range entries {
		sorted[i] = entry.record
	}
	return sorted
}

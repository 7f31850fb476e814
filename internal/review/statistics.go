package review

import (
	"math"
	"time"
)

// Statistics aggregates mastery and scheduling state over a set of records.
// The JSON field names keep the shapes dashboard consumers already read,
// including the historical "unreveiwed" spelling.
type Statistics struct {
	Total                int `json:"total"`
	Mastered             int `json:"mastered"`
	Reviewing            int `json:"reviewing"`
	Unreviewed           int `json:"unreveiwed"`
	MasteredPercentage   int `json:"masteredPercentage"`
	ReviewingPercentage  int `json:"reviewingPercentage"`
	UnreviewedPercentage int `json:"unreveiwedPercentage"`
	AveragePriority      int `json:"averagePriority"`
	AverageMastery       int `json:"averageMastery"`
	DueTodayCount        int `json:"nextReviewCount"`
	OverdueCount         int `json:"overdueCount"`
}

// GenerateStatistics aggregates the records' mastery and scheduling state at
// now. Empty input returns a zero-valued struct.
func GenerateStatistics(records []WrongAnswerRecord, now time.Time) Statistics {
	stats := Statistics{Total: len(records)}
	if len(records) == 0 {
		return stats
	}

	var totalPriority, totalMastery int
	for _, record := range records {
		mastery := MasteryScore(record)
		priority := Priority(record, now)
		totalMastery += mastery
		totalPriority += priority

		switch MasteryStatusOf(mastery) {
		case MasteryMastered:
			stats.Mastered++
		case MasteryReviewing:
			stats.Reviewing++
		default:
			stats.Unreviewed++
		}

		if NeedsReviewToday(record, now) {
			stats.DueTodayCount++
		}
		if priority >= priorityCritical {
			stats.OverdueCount++
		}
	}

	stats.MasteredPercentage = roundPercentage(stats.Mastered, stats.Total)
	stats.ReviewingPercentage = roundPercentage(stats.Reviewing, stats.Total)
	stats.UnreviewedPercentage = roundPercentage(stats.Unreviewed, stats.Total)
	stats.AveragePriority = roundRatio(totalPriority, stats.Total)
	stats.AverageMastery = roundRatio(totalMastery, stats.Total)
	return stats
}

func roundPercentage(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

func roundRatio(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}

// RecommendedDailyCount suggests how many questions to review per day for the
// given time budget. The base count is scaled up when a large share of the
// backlog is overdue.
func RecommendedDailyCount(stats Statistics, hoursPerDay float64) int {
	if hoursPerDay < 0 {
		hoursPerDay = 0
	}
	baseCount := int(hoursPerDay * 60 / AvgMinutesPerQuestion)
	if stats.Total == 0 {
		return baseCount
	}

	overdueRatio := float64(stats.OverdueCount) / float64(stats.Total)
	switch {
	case overdueRatio > 0.2:
		return int(math.Ceil(float64(baseCount) * 1.5))
	case overdueRatio > 0.1:
		return int(math.Ceil(float64(baseCount) * 1.2))
	}
	return baseCount
}

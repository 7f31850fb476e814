// Package review implements the spaced-repetition scoring engine for
// wrong-answer records: interval growth, priority ranking, mastery
// classification and aggregate statistics. All functions are pure; the ones
// that depend on the current time take it as an explicit parameter.
package review

import "time"

// Difficulty classifies how hard a question is for the learner.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// weight returns the intrinsic difficulty weight used by Priority.
// Unknown difficulties count as medium.
func (d Difficulty) weight() int {
	switch d {
	case DifficultyEasy:
		return 2
	case DifficultyHard:
		return 10
	default:
		return 5
	}
}

// Rating grades the outcome of a single review.
type Rating string

const (
	RatingEasy      Rating = "easy"
	RatingNormal    Rating = "normal"
	RatingHard      Rating = "hard"
	RatingForgotten Rating = "forgotten"
)

// multiplier returns the interval growth factor for the rating.
// Unknown ratings fall back to normal.
func (r Rating) multiplier() float64 {
	switch r {
	case RatingEasy:
		return 2.6
	case RatingHard:
		return 1.0
	case RatingForgotten:
		return 0.5
	default:
		return 1.3
	}
}

// MasteryStatus buckets a mastery score.
type MasteryStatus string

const (
	MasteryMastered  MasteryStatus = "mastered"
	MasteryReviewing MasteryStatus = "reviewing"
	// MasteryUnreviewed keeps the historical "unreveiwed" spelling. Stored
	// plans and dashboard consumers match on the exact string, so renaming it
	// needs a coordinated migration.
	MasteryUnreviewed MasteryStatus = "unreveiwed"
)

// WrongAnswerRecord is a learner's history with one question. The counters
// are owned by the review-submission flow; the scoring engine only reads them
// and writes back IntervalDays and NextReviewTime through Reviewed.
// A zero NextReviewTime means the record has never been scheduled and is
// treated as due now.
type WrongAnswerRecord struct {
	ID             string     `json:"id" db:"id" yaml:"id"`
	QuestionTitle  string     `json:"questionTitle" db:"question_title" yaml:"question_title"`
	Difficulty     Difficulty `json:"difficulty" db:"difficulty" yaml:"difficulty"`
	CorrectCount   int        `json:"correctCount" db:"correct_count" yaml:"correct_count"`
	WrongCount     int        `json:"wrongCount" db:"wrong_count" yaml:"wrong_count"`
	IntervalDays   int        `json:"intervalDays" db:"interval_days" yaml:"interval_days"`
	NextReviewTime time.Time  `json:"nextReviewTime" db:"next_review_time" yaml:"next_review_time"`
}

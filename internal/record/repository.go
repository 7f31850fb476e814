// Package record persists wrong-answer records and generated review plans.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/wrongbook-app/wrongbook/internal/review"
)

//go:generate mockgen -source=repository.go -destination=../mocks/record/mock_repository.go -package=mock_record

// Repository defines operations for managing wrong-answer records. The
// correct/wrong counters are written by the review-submission flow; the
// scheduling engine only updates the interval and next review time.
type Repository interface {
	FindAll(ctx context.Context) ([]review.WrongAnswerRecord, error)
	FindDue(ctx context.Context, before time.Time) ([]review.WrongAnswerRecord, error)
	Create(ctx context.Context, record *review.WrongAnswerRecord) error
	UpdateSchedule(ctx context.Context, id string, intervalDays int, nextReviewTime time.Time) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns all wrong-answer records.
func (r *DBRepository) FindAll(ctx context.Context) ([]review.WrongAnswerRecord, error) {
	var records []review.WrongAnswerRecord
	if err := r.db.SelectContext(ctx, &records,
		"SELECT id, question_title, difficulty, correct_count, wrong_count, interval_days, next_review_time FROM wrong_answers ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(wrong_answers) > %w", err)
	}
	return records, nil
}

// FindDue returns the records scheduled at or before the given instant.
func (r *DBRepository) FindDue(ctx context.Context, before time.Time) ([]review.WrongAnswerRecord, error) {
	var records []review.WrongAnswerRecord
	if err := r.db.SelectContext(ctx, &records,
		"SELECT id, question_title, difficulty, correct_count, wrong_count, interval_days, next_review_time FROM wrong_answers WHERE next_review_time <= ? ORDER BY next_review_time",
		before); err != nil {
		return nil, fmt.Errorf("db.SelectContext(due wrong_answers) > %w", err)
	}
	return records, nil
}

// Create inserts a new wrong-answer record. An interval below one day is
// stored as the initial one-day interval.
func (r *DBRepository) Create(ctx context.Context, record *review.WrongAnswerRecord) error {
	if record.IntervalDays < 1 {
		record.IntervalDays = 1
	}
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO wrong_answers (id, question_title, difficulty, correct_count, wrong_count, interval_days, next_review_time)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.QuestionTitle, record.Difficulty, record.CorrectCount,
		record.WrongCount, record.IntervalDays, record.NextReviewTime); err != nil {
		return fmt.Errorf("db.ExecContext(insert wrong_answer) > %w", err)
	}
	return nil
}

// UpdateSchedule persists a new interval and next review time after a review
// event.
func (r *DBRepository) UpdateSchedule(ctx context.Context, id string, intervalDays int, nextReviewTime time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE wrong_answers SET interval_days = ?, next_review_time = ? WHERE id = ?",
		intervalDays, nextReviewTime, id)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update wrong_answer schedule) > %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("wrong answer %s not found", id)
	}
	return nil
}

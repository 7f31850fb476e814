package record

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/wrongbook-app/wrongbook/internal/review"
)

// YamlRepository implements Repository on a single YAML file, for local use
// without a database. A missing file reads as an empty set.
type YamlRepository struct {
	mu   sync.Mutex
	path string
}

// NewYamlRepository creates a repository backed by the given file path.
func NewYamlRepository(path string) *YamlRepository {
	return &YamlRepository{path: path}
}

// FindAll returns all wrong-answer records from the file.
func (r *YamlRepository) FindAll(_ context.Context) ([]review.WrongAnswerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// FindDue returns the records scheduled at or before the given instant.
func (r *YamlRepository) FindDue(_ context.Context, before time.Time) ([]review.WrongAnswerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	return review.DueForReview(records, before), nil
}

// Create appends a new wrong-answer record to the file. An interval below
// one day is stored as the initial one-day interval.
func (r *YamlRepository) Create(_ context.Context, record *review.WrongAnswerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	for _, existing := range records {
		if existing.ID == record.ID {
			return fmt.Errorf("wrong answer %s already exists", record.ID)
		}
	}
	if record.IntervalDays < 1 {
		record.IntervalDays = 1
	}
	return writeYamlFile(r.path, append(records, *record))
}

// UpdateSchedule persists a new interval and next review time after a review
// event.
func (r *YamlRepository) UpdateSchedule(_ context.Context, id string, intervalDays int, nextReviewTime time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	for i, record := range records {
		if record.ID != id {
			continue
		}
		records[i].IntervalDays = intervalDays
		records[i].NextReviewTime = nextReviewTime
		return writeYamlFile(r.path, records)
	}
	return fmt.Errorf("wrong answer %s not found", id)
}

func (r *YamlRepository) load() ([]review.WrongAnswerRecord, error) {
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return nil, nil
	}
	return readYamlFile[[]review.WrongAnswerRecord](r.path)
}

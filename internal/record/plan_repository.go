package record

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/wrongbook-app/wrongbook/internal/plan"
)

//go:generate mockgen -source=plan_repository.go -destination=../mocks/record/mock_plan_repository.go -package=mock_record

// PlanRepository defines operations for persisting review plans. The most
// recently generated plan is the current one.
type PlanRepository interface {
	Save(ctx context.Context, p plan.ReviewPlan) error
	FindCurrent(ctx context.Context) (*plan.ReviewPlan, error)
}

// DBPlanRepository implements PlanRepository using MySQL, storing each plan
// as the JSON document the consumers exchange.
type DBPlanRepository struct {
	db *sqlx.DB
}

// NewDBPlanRepository creates a new DBPlanRepository.
func NewDBPlanRepository(db *sqlx.DB) *DBPlanRepository {
	return &DBPlanRepository{db: db}
}

type planRow struct {
	ID          string    `db:"id"`
	GeneratedAt time.Time `db:"generated_at"`
	Payload     []byte    `db:"payload"`
}

// Save inserts the plan verbatim as JSON.
func (r *DBPlanRepository) Save(ctx context.Context, p plan.ReviewPlan) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("json.Marshal(review plan) > %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO review_plans (id, generated_at, payload) VALUES (?, ?, ?)",
		p.PlanID, p.GeneratedAt, payload); err != nil {
		return fmt.Errorf("db.ExecContext(insert review_plan) > %w", err)
	}
	return nil
}

// FindCurrent returns the most recently generated plan, or nil if none has
// been saved.
func (r *DBPlanRepository) FindCurrent(ctx context.Context) (*plan.ReviewPlan, error) {
	var row planRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, generated_at, payload FROM review_plans ORDER BY generated_at DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(current review_plan) > %w", err)
	}

	var p plan.ReviewPlan
	if err := json.Unmarshal(row.Payload, &p); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(review plan %s) > %w", row.ID, err)
	}
	return &p, nil
}

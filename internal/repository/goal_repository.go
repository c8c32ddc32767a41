package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/model"
)

var ErrGoalNotFound = errors.New("goal not found")

// goalHistoryLimit caps the goal history listing.
const goalHistoryLimit = 50

type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *model.Goal) error {
	query := `
		INSERT INTO goals (
			id, user_id, target_corpus, horizon_years, risk_profile,
			equity_fraction, debt_fraction, alternatives_fraction,
			monthly_sip, expected_return_annual,
			portfolio_table, notes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING created_at`

	goal.ID = uuid.New()
	return r.db.QueryRowxContext(ctx, query,
		goal.ID, goal.UserID, goal.TargetCorpus, goal.HorizonYears, goal.RiskProfile,
		goal.EquityFraction, goal.DebtFraction, goal.AlternativesFraction,
		goal.MonthlySIP, goal.ExpectedReturnAnnual,
		goal.PortfolioTable, goal.Notes,
	).Scan(&goal.CreatedAt)
}

func (r *GoalRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Goal, error) {
	var goal model.Goal
	query := `SELECT * FROM goals WHERE id = $1`
	err := r.db.GetContext(ctx, &goal, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	return &goal, err
}

// List returns a user's most recent goals, newest first, capped at 50.
func (r *GoalRepository) List(ctx context.Context, userID uuid.UUID) ([]model.Goal, error) {
	var goals []model.Goal
	query := `
		SELECT * FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	err := r.db.SelectContext(ctx, &goals, query, userID, goalHistoryLimit)
	return goals, err
}

func (r *GoalRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrGoalNotFound
	}
	return nil
}

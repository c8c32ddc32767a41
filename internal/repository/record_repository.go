package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/model"
)

var ErrRecordNotFound = errors.New("monthly record not found")
var ErrDuplicateRecord = errors.New("record already exists for this month")

// uniqueViolation is the Postgres error code raised by the
// (user_id, year, month) unique constraint.
const uniqueViolation = "23505"

type RecordRepository struct {
	db *sqlx.DB
}

func NewRecordRepository(db *sqlx.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) Create(ctx context.Context, rec *model.MonthlyRecord) error {
	query := `
		INSERT INTO monthly_records (
			id, user_id, year, month,
			salary, bonus, other_income,
			rent, groceries, utilities, transportation,
			entertainment, healthcare, education, other_expenses,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING created_at, updated_at`

	rec.ID = uuid.New()
	err := r.db.QueryRowxContext(ctx, query,
		rec.ID, rec.UserID, rec.Year, rec.Month,
		rec.Salary, rec.Bonus, rec.OtherIncome,
		rec.Rent, rec.Groceries, rec.Utilities, rec.Transportation,
		rec.Entertainment, rec.Healthcare, rec.Education, rec.OtherExpenses,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateRecord
	}
	return err
}

func (r *RecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.MonthlyRecord, error) {
	var rec model.MonthlyRecord
	query := `SELECT * FROM monthly_records WHERE id = $1`
	err := r.db.GetContext(ctx, &rec, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	return &rec, err
}

// List returns a user's records, newest first. A nil year returns all years.
func (r *RecordRepository) List(ctx context.Context, userID uuid.UUID, year *int) ([]model.MonthlyRecord, error) {
	var records []model.MonthlyRecord
	query := `
		SELECT * FROM monthly_records
		WHERE user_id = $1
		AND ($2::int IS NULL OR year = $2)
		ORDER BY year DESC, month DESC`

	err := r.db.SelectContext(ctx, &records, query, userID, year)
	return records, err
}

// ListByYear returns all of a user's records for one year. Month order is
// not significant to callers.
func (r *RecordRepository) ListByYear(ctx context.Context, userID uuid.UUID, year int) ([]model.MonthlyRecord, error) {
	var records []model.MonthlyRecord
	query := `
		SELECT * FROM monthly_records
		WHERE user_id = $1 AND year = $2
		ORDER BY month ASC`

	err := r.db.SelectContext(ctx, &records, query, userID, year)
	return records, err
}

func (r *RecordRepository) Update(ctx context.Context, rec *model.MonthlyRecord) error {
	query := `
		UPDATE monthly_records
		SET salary = $3, bonus = $4, other_income = $5,
		    rent = $6, groceries = $7, utilities = $8, transportation = $9,
		    entertainment = $10, healthcare = $11, education = $12, other_expenses = $13,
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		rec.ID, rec.UserID,
		rec.Salary, rec.Bonus, rec.OtherIncome,
		rec.Rent, rec.Groceries, rec.Utilities, rec.Transportation,
		rec.Entertainment, rec.Healthcare, rec.Education, rec.OtherExpenses,
	).Scan(&rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRecordNotFound
	}
	return err
}

func (r *RecordRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM monthly_records WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRecordNotFound
	}
	return nil
}

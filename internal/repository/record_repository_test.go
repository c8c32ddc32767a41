package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/model"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("creating sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func sampleRecord(userID uuid.UUID) *model.MonthlyRecord {
	return &model.MonthlyRecord{
		UserID:         userID,
		Year:           2024,
		Month:          1,
		Salary:         decimal.NewFromInt(60000),
		Bonus:          decimal.NewFromInt(5000),
		OtherIncome:    decimal.NewFromInt(1000),
		Rent:           decimal.NewFromInt(15000),
		Groceries:      decimal.NewFromInt(8000),
		Utilities:      decimal.NewFromInt(2000),
		Transportation: decimal.NewFromInt(3000),
		Entertainment:  decimal.NewFromInt(2000),
		Healthcare:     decimal.NewFromInt(1000),
		Education:      decimal.NewFromInt(500),
		OtherExpenses:  decimal.NewFromInt(1500),
	}
}

func TestNewRecordRepository(t *testing.T) {
	t.Parallel()

	db, _ := newMockDB(t)
	repo := NewRecordRepository(db)
	assert.NotNil(t, repo)
}

func TestRecordRepository_Create(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecordRepository(db)
		rec := sampleRecord(uuid.New())

		now := time.Now()
		rows := sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now)
		mock.ExpectQuery(`INSERT INTO monthly_records`).
			WithArgs(sqlmock.AnyArg(), rec.UserID, rec.Year, rec.Month,
				rec.Salary, rec.Bonus, rec.OtherIncome,
				rec.Rent, rec.Groceries, rec.Utilities, rec.Transportation,
				rec.Entertainment, rec.Healthcare, rec.Education, rec.OtherExpenses).
			WillReturnRows(rows)

		err := repo.Create(context.Background(), rec)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, rec.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate month maps to ErrDuplicateRecord", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecordRepository(db)
		rec := sampleRecord(uuid.New())

		mock.ExpectQuery(`INSERT INTO monthly_records`).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(context.Background(), rec)

		assert.ErrorIs(t, err, ErrDuplicateRecord)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecordRepository_GetByID(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecordRepository(db)
		id := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM monthly_records WHERE id = \$1`).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), id)

		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestRecordRepository_ListByYear(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewRecordRepository(db)
	userID := uuid.New()

	cols := []string{"id", "user_id", "year", "month", "salary", "bonus", "other_income",
		"rent", "groceries", "utilities", "transportation", "entertainment",
		"healthcare", "education", "other_expenses", "created_at", "updated_at"}
	now := time.Now()
	rows := sqlmock.NewRows(cols).
		AddRow(uuid.New(), userID, 2024, 1,
			decimal.NewFromInt(50000), decimal.Zero, decimal.Zero,
			decimal.NewFromInt(20000), decimal.NewFromInt(5000), decimal.Zero, decimal.Zero,
			decimal.Zero, decimal.Zero, decimal.Zero, decimal.NewFromInt(5000), now, now).
		AddRow(uuid.New(), userID, 2024, 2,
			decimal.NewFromInt(50000), decimal.Zero, decimal.Zero,
			decimal.NewFromInt(20000), decimal.NewFromInt(5000), decimal.Zero, decimal.Zero,
			decimal.Zero, decimal.Zero, decimal.Zero, decimal.NewFromInt(10000), now, now)

	mock.ExpectQuery(`SELECT \* FROM monthly_records`).
		WithArgs(userID, 2024).
		WillReturnRows(rows)

	records, err := repo.ListByYear(context.Background(), userID, 2024)

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 1, records[0].Month)
	assert.Equal(t, 2, records[1].Month)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_Update(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecordRepository(db)
		rec := sampleRecord(uuid.New())
		rec.ID = uuid.New()

		mock.ExpectQuery(`UPDATE monthly_records`).
			WillReturnError(sql.ErrNoRows)

		err := repo.Update(context.Background(), rec)

		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestRecordRepository_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		rowsAffected int64
		wantErr      error
	}{
		{"success", 1, nil},
		{"not found", 0, ErrRecordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewRecordRepository(db)
			id, userID := uuid.New(), uuid.New()

			mock.ExpectExec(`DELETE FROM monthly_records`).
				WithArgs(id, userID).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err := repo.Delete(context.Background(), id, userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

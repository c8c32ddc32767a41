package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shravani12148/Goal--Based-Diversification-System/internal/apperror"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/model"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/repository"
)

// Recordable year bounds.
const (
	MinRecordYear = 2000
	MaxRecordYear = 2100
)

// RecordService handles business logic for monthly financial records.
type RecordService struct {
	recordRepo repository.RecordRepositoryInterface
}

// NewRecordService creates a new RecordService with the given repository.
func NewRecordService(recordRepo repository.RecordRepositoryInterface) *RecordService {
	return &RecordService{recordRepo: recordRepo}
}

// RecordInput carries the writable fields of a monthly record.
type RecordInput struct {
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	Salary         decimal.Decimal `json:"salary"`
	Bonus          decimal.Decimal `json:"bonus"`
	OtherIncome    decimal.Decimal `json:"otherIncome"`
	Rent           decimal.Decimal `json:"rent"`
	Groceries      decimal.Decimal `json:"groceries"`
	Utilities      decimal.Decimal `json:"utilities"`
	Transportation decimal.Decimal `json:"transportation"`
	Entertainment  decimal.Decimal `json:"entertainment"`
	Healthcare     decimal.Decimal `json:"healthcare"`
	Education      decimal.Decimal `json:"education"`
	OtherExpenses  decimal.Decimal `json:"otherExpenses"`
}

func (in RecordInput) validate() error {
	if in.Year < MinRecordYear || in.Year > MaxRecordYear {
		return apperror.InvalidInput("year", fmt.Sprintf("year must be between %d and %d", MinRecordYear, MaxRecordYear))
	}
	if in.Month < 1 || in.Month > 12 {
		return apperror.InvalidInput("month", "month must be between 1 and 12")
	}

	amounts := map[string]decimal.Decimal{
		"salary":         in.Salary,
		"bonus":          in.Bonus,
		"otherIncome":    in.OtherIncome,
		"rent":           in.Rent,
		"groceries":      in.Groceries,
		"utilities":      in.Utilities,
		"transportation": in.Transportation,
		"entertainment":  in.Entertainment,
		"healthcare":     in.Healthcare,
		"education":      in.Education,
		"otherExpenses":  in.OtherExpenses,
	}
	for field, amount := range amounts {
		if amount.IsNegative() {
			return apperror.InvalidInput(field, field+" cannot be negative")
		}
	}
	return nil
}

func (in RecordInput) toRecord(userID uuid.UUID) *model.MonthlyRecord {
	return &model.MonthlyRecord{
		UserID:         userID,
		Year:           in.Year,
		Month:          in.Month,
		Salary:         in.Salary,
		Bonus:          in.Bonus,
		OtherIncome:    in.OtherIncome,
		Rent:           in.Rent,
		Groceries:      in.Groceries,
		Utilities:      in.Utilities,
		Transportation: in.Transportation,
		Entertainment:  in.Entertainment,
		Healthcare:     in.Healthcare,
		Education:      in.Education,
		OtherExpenses:  in.OtherExpenses,
	}
}

func withTotals(rec model.MonthlyRecord) model.MonthlyRecordWithTotals {
	return model.MonthlyRecordWithTotals{
		MonthlyRecord:  rec,
		TotalIncome:    rec.TotalIncome(),
		TotalExpenses:  rec.TotalExpenses(),
		MonthlySavings: rec.MonthlySavings(),
	}
}

// Create stores a new monthly record. One record per (year, month); a second
// record for the same month surfaces the repository's duplicate error.
func (s *RecordService) Create(ctx context.Context, userID uuid.UUID, input RecordInput) (*model.MonthlyRecordWithTotals, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	rec := input.toRecord(userID)
	if err := s.recordRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	result := withTotals(*rec)
	return &result, nil
}

// Get fetches a single record, refusing records owned by another user.
func (s *RecordService) Get(ctx context.Context, id, userID uuid.UUID) (*model.MonthlyRecordWithTotals, error) {
	rec, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.UserID != userID {
		return nil, repository.ErrRecordNotFound
	}

	result := withTotals(*rec)
	return &result, nil
}

// List returns a user's records with derived totals, optionally filtered by year.
func (s *RecordService) List(ctx context.Context, userID uuid.UUID, year *int) ([]model.MonthlyRecordWithTotals, error) {
	records, err := s.recordRepo.List(ctx, userID, year)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}

	results := make([]model.MonthlyRecordWithTotals, len(records))
	for i, rec := range records {
		results[i] = withTotals(rec)
	}
	return results, nil
}

// Update replaces the writable fields of an existing record.
func (s *RecordService) Update(ctx context.Context, id, userID uuid.UUID, input RecordInput) (*model.MonthlyRecordWithTotals, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	existing, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, repository.ErrRecordNotFound
	}

	rec := input.toRecord(userID)
	rec.ID = id
	rec.CreatedAt = existing.CreatedAt
	if err := s.recordRepo.Update(ctx, rec); err != nil {
		return nil, err
	}

	result := withTotals(*rec)
	return &result, nil
}

// Delete removes a user's record.
func (s *RecordService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.recordRepo.Delete(ctx, id, userID)
}

package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/apperror"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/model"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/repository"
)

// ReportService handles yearly aggregation and year-over-year comparison.
type ReportService struct {
	recordRepo repository.RecordRepositoryInterface
}

// NewReportService creates a new ReportService with the given repository.
func NewReportService(recordRepo repository.RecordRepositoryInterface) *ReportService {
	return &ReportService{recordRepo: recordRepo}
}

// Summarize aggregates monthly records into a yearly summary. The caller
// guarantees all records belong to the given year; a mismatched year or a
// duplicated month is contradictory input and is rejected rather than
// corrected. An empty input yields a zero summary with MonthsRecorded 0,
// which callers must treat as "no data", not a zero-savings year.
func Summarize(records []model.MonthlyRecord, year int) (model.YearlySummary, error) {
	summary := model.YearlySummary{Year: year}
	seen := make(map[int]bool, len(records))

	for _, rec := range records {
		if rec.Year != year {
			return model.YearlySummary{}, apperror.InvalidInput("year",
				fmt.Sprintf("record for year %d in summary of %d", rec.Year, year))
		}
		if seen[rec.Month] {
			return model.YearlySummary{}, apperror.InvalidInput("month",
				fmt.Sprintf("duplicate record for month %d", rec.Month))
		}
		seen[rec.Month] = true

		summary.TotalIncome = summary.TotalIncome.Add(rec.TotalIncome())
		summary.TotalExpenses = summary.TotalExpenses.Add(rec.TotalExpenses())
		summary.MonthsRecorded++
	}

	summary.TotalSavings = summary.TotalIncome.Sub(summary.TotalExpenses)
	if summary.MonthsRecorded > 0 {
		months := decimal.NewFromInt(int64(summary.MonthsRecorded))
		summary.AverageMonthlySavings = summary.TotalSavings.DivRound(months, 2)
	}
	return summary, nil
}

// Compare builds the year-over-year savings comparison. When either year has
// no recorded months the result carries TrendNoData and no change figures.
// The change percentage is omitted when the previous year's savings are zero,
// since the ratio is undefined.
func Compare(current, previous model.YearlySummary) model.TrendComparison {
	cmp := model.TrendComparison{
		CurrentYear:  current.Year,
		PreviousYear: previous.Year,
	}

	if !current.HasData() || !previous.HasData() {
		cmp.Trend = model.TrendNoData
		return cmp
	}

	cmp.CurrentYearSavings = current.TotalSavings
	prevSavings := previous.TotalSavings
	cmp.PreviousYearSavings = &prevSavings

	change := current.TotalSavings.Sub(previous.TotalSavings)
	cmp.ChangeAmount = &change

	if !previous.TotalSavings.IsZero() {
		pct := change.Div(previous.TotalSavings.Abs()).Mul(decimal.NewFromInt(100)).InexactFloat64()
		pct = math.Round(pct*100) / 100
		cmp.ChangePercentage = &pct
	}

	if change.IsNegative() {
		cmp.Trend = model.TrendDecreasing
	} else {
		cmp.Trend = model.TrendIncreasing
	}
	return cmp
}

// GetYearlySummary aggregates a user's records for the given year.
func (s *ReportService) GetYearlySummary(ctx context.Context, userID uuid.UUID, year int) (*model.YearlySummary, error) {
	records, err := s.recordRepo.ListByYear(ctx, userID, year)
	if err != nil {
		return nil, fmt.Errorf("listing records for year %d: %w", year, err)
	}

	summary, err := Summarize(records, year)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetYearlyComparison compares the given year's savings against the year before it.
func (s *ReportService) GetYearlyComparison(ctx context.Context, userID uuid.UUID, year int) (*model.TrendComparison, error) {
	current, err := s.GetYearlySummary(ctx, userID, year)
	if err != nil {
		return nil, err
	}
	previous, err := s.GetYearlySummary(ctx, userID, year-1)
	if err != nil {
		return nil, err
	}

	cmp := Compare(*current, *previous)
	return &cmp, nil
}

// GetMonthlyBreakdown returns a year's records with derived totals per month,
// ordered by month ascending.
func (s *ReportService) GetMonthlyBreakdown(ctx context.Context, userID uuid.UUID, year int) ([]model.MonthlyRecordWithTotals, error) {
	records, err := s.recordRepo.ListByYear(ctx, userID, year)
	if err != nil {
		return nil, fmt.Errorf("listing records for year %d: %w", year, err)
	}

	breakdown := make([]model.MonthlyRecordWithTotals, len(records))
	for i, rec := range records {
		breakdown[i] = model.MonthlyRecordWithTotals{
			MonthlyRecord:  rec,
			TotalIncome:    rec.TotalIncome(),
			TotalExpenses:  rec.TotalExpenses(),
			MonthlySavings: rec.MonthlySavings(),
		}
	}
	return breakdown, nil
}

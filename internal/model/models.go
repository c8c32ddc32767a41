package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// MonthlyRecord is one user's income and expense breakdown for a single
// (year, month). At most one record exists per (user, year, month); the
// store enforces uniqueness.
type MonthlyRecord struct {
	ID     uuid.UUID `db:"id" json:"id"`
	UserID uuid.UUID `db:"user_id" json:"userId"`
	Year   int       `db:"year" json:"year"`
	Month  int       `db:"month" json:"month"` // 1..12

	// Income
	Salary      decimal.Decimal `db:"salary" json:"salary"`
	Bonus       decimal.Decimal `db:"bonus" json:"bonus"`
	OtherIncome decimal.Decimal `db:"other_income" json:"otherIncome"`

	// Expenses
	Rent           decimal.Decimal `db:"rent" json:"rent"`
	Groceries      decimal.Decimal `db:"groceries" json:"groceries"`
	Utilities      decimal.Decimal `db:"utilities" json:"utilities"`
	Transportation decimal.Decimal `db:"transportation" json:"transportation"`
	Entertainment  decimal.Decimal `db:"entertainment" json:"entertainment"`
	Healthcare     decimal.Decimal `db:"healthcare" json:"healthcare"`
	Education      decimal.Decimal `db:"education" json:"education"`
	OtherExpenses  decimal.Decimal `db:"other_expenses" json:"otherExpenses"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// TotalIncome returns salary + bonus + other income.
func (r *MonthlyRecord) TotalIncome() decimal.Decimal {
	return r.Salary.Add(r.Bonus).Add(r.OtherIncome)
}

// TotalExpenses returns the sum of all expense fields.
func (r *MonthlyRecord) TotalExpenses() decimal.Decimal {
	return r.Rent.
		Add(r.Groceries).
		Add(r.Utilities).
		Add(r.Transportation).
		Add(r.Entertainment).
		Add(r.Healthcare).
		Add(r.Education).
		Add(r.OtherExpenses)
}

// MonthlySavings returns total income minus total expenses. May be negative.
func (r *MonthlyRecord) MonthlySavings() decimal.Decimal {
	return r.TotalIncome().Sub(r.TotalExpenses())
}

// MonthlyRecordWithTotals is the API view of a record with derived totals.
// Totals are computed on read, never stored.
type MonthlyRecordWithTotals struct {
	MonthlyRecord
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	MonthlySavings decimal.Decimal `json:"monthlySavings"`
}

// YearlySummary is the derived rollup of one year's monthly records.
// MonthsRecorded = 0 means "no data" and must not be read as a zero-savings
// year; all totals are zero in that case.
type YearlySummary struct {
	Year                  int             `json:"year"`
	TotalIncome           decimal.Decimal `json:"totalIncome"`
	TotalExpenses         decimal.Decimal `json:"totalExpenses"`
	TotalSavings          decimal.Decimal `json:"totalSavings"`
	AverageMonthlySavings decimal.Decimal `json:"averageMonthlySavings"`
	MonthsRecorded        int             `json:"monthsRecorded"`
}

// HasData reports whether the summary covers at least one recorded month.
func (s YearlySummary) HasData() bool {
	return s.MonthsRecorded > 0
}

// Trend classifies the year-over-year savings change by sign.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendNoData     Trend = "no_data"
)

// TrendComparison is the year-over-year savings comparison. The pointer
// fields are nil when trend is no_data; ChangePercentage is also nil when
// the previous year's savings is exactly zero, where a percentage change is
// undefined (never coerced to 0 or infinity).
type TrendComparison struct {
	CurrentYear         int              `json:"currentYear"`
	PreviousYear        int              `json:"previousYear"`
	CurrentYearSavings  decimal.Decimal  `json:"currentYearSavings"`
	PreviousYearSavings *decimal.Decimal `json:"previousYearSavings,omitempty"`
	ChangeAmount        *decimal.Decimal `json:"changeAmount,omitempty"`
	ChangePercentage    *float64         `json:"changePercentage,omitempty"`
	Trend               Trend            `json:"trend"`
}

// AssetClass is a top-level portfolio bucket.
type AssetClass string

const (
	AssetClassEquity       AssetClass = "Equity"
	AssetClassDebt         AssetClass = "Debt"
	AssetClassAlternatives AssetClass = "Alternatives"
)

// AssetClassOrder is the canonical display order for grouped portfolios.
var AssetClassOrder = []AssetClass{AssetClassEquity, AssetClassDebt, AssetClassAlternatives}

// IsValid reports whether c is one of the three canonical asset classes.
func (c AssetClass) IsValid() bool {
	switch c {
	case AssetClassEquity, AssetClassDebt, AssetClassAlternatives:
		return true
	}
	return false
}

// AllocationRow is one line of a solver-produced portfolio table.
// Allocation is a percentage (0-100); MonthlySIP is a monetary amount.
type AllocationRow struct {
	AssetClass  AssetClass      `json:"assetClass"`
	SubCategory string          `json:"subCategory"`
	Allocation  decimal.Decimal `json:"allocation"`
	MonthlySIP  decimal.Decimal `json:"monthlySIP"`
}

// AllocationRows is a portfolio table stored as a JSONB column.
type AllocationRows []AllocationRow

// Value implements driver.Valuer for JSONB storage.
func (rows AllocationRows) Value() (driver.Value, error) {
	return json.Marshal(rows)
}

// Scan implements sql.Scanner for JSONB storage.
func (rows *AllocationRows) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*rows = nil
		return nil
	case []byte:
		return json.Unmarshal(v, rows)
	case string:
		return json.Unmarshal([]byte(v), rows)
	}
	return fmt.Errorf("unsupported type %T for AllocationRows", src)
}

// AllocationGroup is one asset class's slice of a grouped portfolio.
// Rows keep their original relative order.
type AllocationGroup struct {
	AssetClass         AssetClass      `json:"assetClass"`
	Rows               []AllocationRow `json:"rows"`
	SubtotalAllocation decimal.Decimal `json:"subtotalAllocation"`
	SubtotalSIP        decimal.Decimal `json:"subtotalSIP"`
}

// GroupedAllocation is a portfolio table grouped by asset class in canonical
// order. Classes absent from the input are omitted, never synthesized.
type GroupedAllocation struct {
	Groups               []AllocationGroup `json:"groups"`
	GrandTotalAllocation decimal.Decimal   `json:"grandTotalAllocation"`
	GrandTotalSIP        decimal.Decimal   `json:"grandTotalSIP"`
}

// RiskProfile steers the external solver's equity/debt/alternatives mix.
type RiskProfile string

const (
	RiskConservative RiskProfile = "Conservative"
	RiskModerate     RiskProfile = "Moderate"
	RiskAggressive   RiskProfile = "Aggressive"
)

// IsValid reports whether p is a known risk profile.
func (p RiskProfile) IsValid() bool {
	switch p {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}

// Goal is a user's investment goal together with the solver's output,
// persisted as submitted/received. The solver result is opaque to this
// service; it is stored and re-grouped for display, never re-derived.
type Goal struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	UserID       uuid.UUID       `db:"user_id" json:"userId"`
	TargetCorpus decimal.Decimal `db:"target_corpus" json:"targetCorpus"`
	HorizonYears int             `db:"horizon_years" json:"horizonYears"` // 1..30
	RiskProfile  RiskProfile     `db:"risk_profile" json:"riskProfile"`

	EquityFraction       decimal.Decimal `db:"equity_fraction" json:"equityFraction"`
	DebtFraction         decimal.Decimal `db:"debt_fraction" json:"debtFraction"`
	AlternativesFraction decimal.Decimal `db:"alternatives_fraction" json:"alternativesFraction"`

	MonthlySIP           decimal.Decimal `db:"monthly_sip" json:"monthlySIP"`
	ExpectedReturnAnnual decimal.Decimal `db:"expected_return_annual" json:"expectedReturnAnnual"`

	PortfolioTable AllocationRows `db:"portfolio_table" json:"portfolioTable"`
	Notes          NotesMap       `db:"notes" json:"notes,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NotesMap holds the solver's free-text notes (methodology, optional
// narrative summary) as a JSONB column. Content is pass-through.
type NotesMap map[string]string

// Value implements driver.Valuer for JSONB storage.
func (n NotesMap) Value() (driver.Value, error) {
	if n == nil {
		return nil, nil
	}
	return json.Marshal(n)
}

// Scan implements sql.Scanner for JSONB storage.
func (n *NotesMap) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*n = nil
		return nil
	case []byte:
		return json.Unmarshal(v, n)
	case string:
		return json.Unmarshal([]byte(v), n)
	}
	return fmt.Errorf("unsupported type %T for NotesMap", src)
}

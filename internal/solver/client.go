// Package solver is an HTTP client for the external allocation solver.
// The solver owns the allocation and SIP math; this package only speaks
// its wire format.
package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shravani12148/Goal--Based-Diversification-System/internal/model"
)

// Client calls the allocation solver service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a solver client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// solveRequest is the solver's input wire format.
type solveRequest struct {
	TargetCorpus decimal.Decimal `json:"target_corpus"`
	Horizon      int             `json:"horizon"`
	RiskProfile  string          `json:"risk_profile"`
}

// solveResponse mirrors the solver's result document.
type solveResponse struct {
	Allocation struct {
		Equity decimal.Decimal `json:"equity"`
		Debt   decimal.Decimal `json:"debt"`
		Alts   decimal.Decimal `json:"alts"`
	} `json:"allocation"`
	SIP struct {
		ExpectedReturnAnnual decimal.Decimal `json:"expected_return_annual"`
		MonthlySIP           decimal.Decimal `json:"monthly_sip"`
	} `json:"sip"`
	Notes          map[string]string `json:"notes"`
	PortfolioTable []struct {
		AssetClass  string          `json:"asset_class"`
		SubCategory string          `json:"sub_category"`
		Allocation  decimal.Decimal `json:"allocation"`
		MonthlySIP  decimal.Decimal `json:"monthly_sip"`
	} `json:"portfolio_table"`
}

// Result is a solved allocation in domain terms.
type Result struct {
	EquityFraction       decimal.Decimal
	DebtFraction         decimal.Decimal
	AlternativesFraction decimal.Decimal
	MonthlySIP           decimal.Decimal
	ExpectedReturnAnnual decimal.Decimal
	PortfolioTable       model.AllocationRows
	Notes                model.NotesMap
}

// Solve submits a goal to the solver and maps its response into domain types.
func (c *Client) Solve(ctx context.Context, targetCorpus decimal.Decimal, horizonYears int, risk model.RiskProfile) (*Result, error) {
	body, err := json.Marshal(solveRequest{
		TargetCorpus: targetCorpus,
		Horizon:      horizonYears,
		RiskProfile:  string(risk),
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling solver request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/inputs", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("creating solver request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling solver: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("solver returned status %d: %s", resp.StatusCode, payload)
	}

	var wire solveResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decoding solver response: %w", err)
	}

	result := &Result{
		EquityFraction:       wire.Allocation.Equity,
		DebtFraction:         wire.Allocation.Debt,
		AlternativesFraction: wire.Allocation.Alts,
		MonthlySIP:           wire.SIP.MonthlySIP,
		ExpectedReturnAnnual: wire.SIP.ExpectedReturnAnnual,
		Notes:                model.NotesMap(wire.Notes),
	}
	result.PortfolioTable = make(model.AllocationRows, len(wire.PortfolioTable))
	for i, row := range wire.PortfolioTable {
		result.PortfolioTable[i] = model.AllocationRow{
			AssetClass:  model.AssetClass(row.AssetClass),
			SubCategory: row.SubCategory,
			Allocation:  row.Allocation,
			MonthlySIP:  row.MonthlySIP,
		}
	}
	return result, nil
}

// Ping checks the solver's health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("creating health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling solver health endpoint: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("solver health returned status %d", resp.StatusCode)
	}
	return nil
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/model"
)

func reportRouter(h *ReportHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/reports/summary/{year}", h.YearlySummary)
	r.Get("/reports/comparison/{year}", h.YearlyComparison)
	r.Get("/reports/breakdown/{year}", h.MonthlyBreakdown)
	return r
}

func TestReportHandler_YearlySummary(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		svc := new(mockReportService)
		router := reportRouter(NewReportHandler(svc))
		userID := uuid.New()

		svc.On("GetYearlySummary", mock.Anything, userID, 2023).Return(&model.YearlySummary{
			Year:           2023,
			TotalIncome:    decimal.NewFromInt(100000),
			TotalExpenses:  decimal.NewFromInt(65000),
			TotalSavings:   decimal.NewFromInt(35000),
			MonthsRecorded: 2,
		}, nil)

		req := authedRequest(t, http.MethodGet, "/reports/summary/2023", nil, userID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.EqualValues(t, 2023, body["year"])
		assert.EqualValues(t, 2, body["monthsRecorded"])
	})

	t.Run("empty year is 404", func(t *testing.T) {
		svc := new(mockReportService)
		router := reportRouter(NewReportHandler(svc))
		userID := uuid.New()

		svc.On("GetYearlySummary", mock.Anything, userID, 2019).Return(&model.YearlySummary{
			Year: 2019,
		}, nil)

		req := authedRequest(t, http.MethodGet, "/reports/summary/2019", nil, userID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid year is 400", func(t *testing.T) {
		svc := new(mockReportService)
		router := reportRouter(NewReportHandler(svc))

		req := authedRequest(t, http.MethodGet, "/reports/summary/notayear", nil, uuid.New())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated is 401", func(t *testing.T) {
		svc := new(mockReportService)
		router := reportRouter(NewReportHandler(svc))

		req := httptest.NewRequest(http.MethodGet, "/reports/summary/2023", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestReportHandler_YearlyComparison(t *testing.T) {
	t.Parallel()

	t.Run("no_data year still responds 200", func(t *testing.T) {
		svc := new(mockReportService)
		router := reportRouter(NewReportHandler(svc))
		userID := uuid.New()

		svc.On("GetYearlyComparison", mock.Anything, userID, 2024).Return(&model.TrendComparison{
			CurrentYear:  2024,
			PreviousYear: 2023,
			Trend:        model.TrendNoData,
		}, nil)

		req := authedRequest(t, http.MethodGet, "/reports/comparison/2024", nil, userID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "no_data", body["trend"])
		_, hasChange := body["changeAmount"]
		assert.False(t, hasChange, "no_data comparison must omit change figures")
	})

	t.Run("decreasing trend carries figures", func(t *testing.T) {
		svc := new(mockReportService)
		router := reportRouter(NewReportHandler(svc))
		userID := uuid.New()

		prev := decimal.NewFromInt(35000)
		change := decimal.NewFromInt(-5000)
		pct := -14.29
		svc.On("GetYearlyComparison", mock.Anything, userID, 2024).Return(&model.TrendComparison{
			CurrentYear:         2024,
			PreviousYear:        2023,
			CurrentYearSavings:  decimal.NewFromInt(30000),
			PreviousYearSavings: &prev,
			ChangeAmount:        &change,
			ChangePercentage:    &pct,
			Trend:               model.TrendDecreasing,
		}, nil)

		req := authedRequest(t, http.MethodGet, "/reports/comparison/2024", nil, userID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "decreasing", body["trend"])
		assert.Equal(t, "-5000", body["changeAmount"])
		assert.InDelta(t, -14.29, body["changePercentage"], 0.001)
	})
}

func TestReportHandler_MonthlyBreakdown(t *testing.T) {
	t.Parallel()

	svc := new(mockReportService)
	router := reportRouter(NewReportHandler(svc))
	userID := uuid.New()

	svc.On("GetMonthlyBreakdown", mock.Anything, userID, 2023).Return([]model.MonthlyRecordWithTotals{
		{
			MonthlyRecord: model.MonthlyRecord{Year: 2023, Month: 1},
			TotalIncome:   decimal.NewFromInt(50000),
			TotalExpenses: decimal.NewFromInt(30000),
			MonthlySavings: decimal.NewFromInt(20000),
		},
	}, nil)

	req := authedRequest(t, http.MethodGet, "/reports/breakdown/2023", nil, userID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "20000", body[0]["savings"])
}

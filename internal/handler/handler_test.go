package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/model"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/service"
)

// Shared testify mocks for the handler-facing service interfaces.

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, input service.RegisterInput) (*service.AuthResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResponse), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, input service.LoginInput) (*service.AuthResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResponse), args.Error(1)
}

func (m *mockAuthService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type mockRecordService struct {
	mock.Mock
}

func (m *mockRecordService) Create(ctx context.Context, userID uuid.UUID, input service.RecordInput) (*model.MonthlyRecordWithTotals, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MonthlyRecordWithTotals), args.Error(1)
}

func (m *mockRecordService) Get(ctx context.Context, id, userID uuid.UUID) (*model.MonthlyRecordWithTotals, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MonthlyRecordWithTotals), args.Error(1)
}

func (m *mockRecordService) List(ctx context.Context, userID uuid.UUID, year *int) ([]model.MonthlyRecordWithTotals, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MonthlyRecordWithTotals), args.Error(1)
}

func (m *mockRecordService) Update(ctx context.Context, id, userID uuid.UUID, input service.RecordInput) (*model.MonthlyRecordWithTotals, error) {
	args := m.Called(ctx, id, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MonthlyRecordWithTotals), args.Error(1)
}

func (m *mockRecordService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) GetYearlySummary(ctx context.Context, userID uuid.UUID, year int) (*model.YearlySummary, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.YearlySummary), args.Error(1)
}

func (m *mockReportService) GetYearlyComparison(ctx context.Context, userID uuid.UUID, year int) (*model.TrendComparison, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrendComparison), args.Error(1)
}

func (m *mockReportService) GetMonthlyBreakdown(ctx context.Context, userID uuid.UUID, year int) ([]model.MonthlyRecordWithTotals, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MonthlyRecordWithTotals), args.Error(1)
}

type mockGoalService struct {
	mock.Mock
}

func (m *mockGoalService) Create(ctx context.Context, userID uuid.UUID, input service.GoalInput) (*service.GoalResult, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GoalResult), args.Error(1)
}

func (m *mockGoalService) Get(ctx context.Context, id, userID uuid.UUID) (*service.GoalResult, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GoalResult), args.Error(1)
}

func (m *mockGoalService) List(ctx context.Context, userID uuid.UUID) ([]model.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Goal), args.Error(1)
}

func (m *mockGoalService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type mockExportService struct {
	mock.Mock
}

func (m *mockExportService) PortfolioCSV(rows []model.AllocationRow) ([]byte, error) {
	args := m.Called(rows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockExportService) PortfolioPDF(goal *model.Goal) ([]byte, error) {
	args := m.Called(goal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// authedRequest builds a request whose context carries the given user ID.
func authedRequest(t *testing.T, method, target string, body io.Reader, userID uuid.UUID) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(WithUserID(req.Context(), userID))
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

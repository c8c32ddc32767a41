package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/shravani12148/Goal--Based-Diversification-System/internal/model"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/service"
)

// Service interfaces consumed by the handlers, for handler testing.

type AuthServiceInterface interface {
	Register(ctx context.Context, input service.RegisterInput) (*service.AuthResponse, error)
	Login(ctx context.Context, input service.LoginInput) (*service.AuthResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type RecordServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, input service.RecordInput) (*model.MonthlyRecordWithTotals, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*model.MonthlyRecordWithTotals, error)
	List(ctx context.Context, userID uuid.UUID, year *int) ([]model.MonthlyRecordWithTotals, error)
	Update(ctx context.Context, id, userID uuid.UUID, input service.RecordInput) (*model.MonthlyRecordWithTotals, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type ReportServiceInterface interface {
	GetYearlySummary(ctx context.Context, userID uuid.UUID, year int) (*model.YearlySummary, error)
	GetYearlyComparison(ctx context.Context, userID uuid.UUID, year int) (*model.TrendComparison, error)
	GetMonthlyBreakdown(ctx context.Context, userID uuid.UUID, year int) ([]model.MonthlyRecordWithTotals, error)
}

type GoalServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, input service.GoalInput) (*service.GoalResult, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*service.GoalResult, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Goal, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type ExportServiceInterface interface {
	PortfolioCSV(rows []model.AllocationRow) ([]byte, error)
	PortfolioPDF(goal *model.Goal) ([]byte, error)
}

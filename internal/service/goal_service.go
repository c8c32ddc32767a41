package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shravani12148/Goal--Based-Diversification-System/internal/apperror"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/model"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/repository"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/solver"
)

// Horizon bounds accepted by the solver.
const (
	MinHorizonYears = 1
	MaxHorizonYears = 30
)

// SolverClientInterface defines the contract for the external allocation solver.
type SolverClientInterface interface {
	Solve(ctx context.Context, targetCorpus decimal.Decimal, horizonYears int, risk model.RiskProfile) (*solver.Result, error)
	Ping(ctx context.Context) error
}

// GoalService handles goal creation via the allocation solver and goal history.
type GoalService struct {
	goalRepo repository.GoalRepositoryInterface
	solver   SolverClientInterface
}

// NewGoalService creates a new GoalService.
func NewGoalService(goalRepo repository.GoalRepositoryInterface, solverClient SolverClientInterface) *GoalService {
	return &GoalService{goalRepo: goalRepo, solver: solverClient}
}

// GoalInput carries a goal request.
type GoalInput struct {
	TargetCorpus decimal.Decimal   `json:"targetCorpus"`
	HorizonYears int               `json:"horizonYears"`
	RiskProfile  model.RiskProfile `json:"riskProfile"`
}

// GoalResult is a stored goal with its portfolio table grouped by asset class.
type GoalResult struct {
	Goal             model.Goal               `json:"goal"`
	GroupedPortfolio *model.GroupedAllocation `json:"groupedPortfolio"`
}

func (in GoalInput) validate() error {
	if !in.TargetCorpus.IsPositive() {
		return apperror.InvalidInput("targetCorpus", "target corpus must be positive")
	}
	if in.HorizonYears < MinHorizonYears || in.HorizonYears > MaxHorizonYears {
		return apperror.InvalidInput("horizonYears",
			fmt.Sprintf("horizon must be between %d and %d years", MinHorizonYears, MaxHorizonYears))
	}
	if !in.RiskProfile.IsValid() {
		return apperror.InvalidInput("riskProfile", "risk profile must be Conservative, Moderate or Aggressive")
	}
	return nil
}

// Create validates the input, asks the solver for an allocation, persists the
// goal and returns it with the portfolio table grouped. Solver failures are
// surfaced as upstream errors, nothing is persisted in that case.
func (s *GoalService) Create(ctx context.Context, userID uuid.UUID, input GoalInput) (*GoalResult, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	solved, err := s.solver.Solve(ctx, input.TargetCorpus, input.HorizonYears, input.RiskProfile)
	if err != nil {
		return nil, apperror.Upstream(err)
	}

	grouped, err := Group(solved.PortfolioTable)
	if err != nil {
		return nil, fmt.Errorf("grouping solver portfolio: %w", err)
	}

	goal := &model.Goal{
		UserID:               userID,
		TargetCorpus:         input.TargetCorpus,
		HorizonYears:         input.HorizonYears,
		RiskProfile:          input.RiskProfile,
		EquityFraction:       solved.EquityFraction,
		DebtFraction:         solved.DebtFraction,
		AlternativesFraction: solved.AlternativesFraction,
		MonthlySIP:           solved.MonthlySIP,
		ExpectedReturnAnnual: solved.ExpectedReturnAnnual,
		PortfolioTable:       solved.PortfolioTable,
		Notes:                solved.Notes,
	}
	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("persisting goal: %w", err)
	}

	return &GoalResult{Goal: *goal, GroupedPortfolio: grouped}, nil
}

// Get fetches a stored goal with its grouped portfolio, refusing goals owned
// by another user.
func (s *GoalService) Get(ctx context.Context, id, userID uuid.UUID) (*GoalResult, error) {
	goal, err := s.goalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, repository.ErrGoalNotFound
	}

	grouped, err := Group(goal.PortfolioTable)
	if err != nil {
		return nil, fmt.Errorf("grouping stored portfolio: %w", err)
	}
	return &GoalResult{Goal: *goal, GroupedPortfolio: grouped}, nil
}

// List returns a user's goal history, newest first.
func (s *GoalService) List(ctx context.Context, userID uuid.UUID) ([]model.Goal, error) {
	goals, err := s.goalRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	return goals, nil
}

// Delete removes a user's goal.
func (s *GoalService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.goalRepo.Delete(ctx, id, userID)
}

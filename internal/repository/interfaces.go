package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/model"
)

//go:generate mockery --name=UserRepositoryInterface --output=../mocks --outpkg=mocks
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

//go:generate mockery --name=RecordRepositoryInterface --output=../mocks --outpkg=mocks
type RecordRepositoryInterface interface {
	Create(ctx context.Context, rec *model.MonthlyRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.MonthlyRecord, error)
	List(ctx context.Context, userID uuid.UUID, year *int) ([]model.MonthlyRecord, error)
	ListByYear(ctx context.Context, userID uuid.UUID, year int) ([]model.MonthlyRecord, error)
	Update(ctx context.Context, rec *model.MonthlyRecord) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

//go:generate mockery --name=GoalRepositoryInterface --output=../mocks --outpkg=mocks
type GoalRepositoryInterface interface {
	Create(ctx context.Context, goal *model.Goal) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Goal, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Goal, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

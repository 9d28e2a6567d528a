package services

import (
	"context"
	"fmt"

	"github.com/Abinash-k/Freelance-Portal/internal/api/validate"
	"github.com/Abinash-k/Freelance-Portal/internal/model"
	"github.com/Abinash-k/Freelance-Portal/internal/store"
)

type ExpenseService struct {
	store store.Store
}

func NewExpenseService(s store.Store) *ExpenseService {
	return &ExpenseService{store: s}
}

func (s *ExpenseService) validate(e *model.Expense) error {
	if err := validate.NonEmpty("description", e.Description); err != nil {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	if err := validate.NonEmpty("category", e.Category); err != nil {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: date is required", model.ErrValidation)
	}
	if e.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", model.ErrValidation)
	}
	return nil
}

func (s *ExpenseService) CreateExpense(ctx context.Context, e *model.Expense) (*model.Expense, error) {
	if err := s.validate(e); err != nil {
		return nil, err
	}
	return s.store.Expenses().Create(ctx, e)
}

func (s *ExpenseService) GetExpense(ctx context.Context, userID, expenseID string) (*model.Expense, error) {
	return s.store.Expenses().Get(ctx, userID, expenseID)
}

func (s *ExpenseService) ListExpenses(ctx context.Context, userID string) ([]*model.Expense, error) {
	return s.store.Expenses().List(ctx, userID)
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, e *model.Expense) (*model.Expense, error) {
	if err := s.validate(e); err != nil {
		return nil, err
	}
	return s.store.Expenses().Update(ctx, e)
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	return s.store.Expenses().Delete(ctx, userID, expenseID)
}

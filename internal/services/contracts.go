package services

import (
	"context"
	"fmt"

	"github.com/Abinash-k/Freelance-Portal/internal/api/validate"
	"github.com/Abinash-k/Freelance-Portal/internal/model"
	"github.com/Abinash-k/Freelance-Portal/internal/store"
)

type ContractService struct {
	store store.Store
}

func NewContractService(s store.Store) *ContractService {
	return &ContractService{store: s}
}

func (s *ContractService) validate(c *model.Contract) error {
	if err := validate.NonEmpty("client_name", c.ClientName); err != nil {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	if err := validate.NonEmpty("project_name", c.ProjectName); err != nil {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		return fmt.Errorf("%w: end_date precedes start_date", model.ErrValidation)
	}
	return nil
}

func (s *ContractService) CreateContract(ctx context.Context, c *model.Contract) (*model.Contract, error) {
	if err := s.validate(c); err != nil {
		return nil, err
	}
	return s.store.Contracts().Create(ctx, c)
}

func (s *ContractService) GetContract(ctx context.Context, userID, contractID string) (*model.Contract, error) {
	return s.store.Contracts().Get(ctx, userID, contractID)
}

func (s *ContractService) ListContracts(ctx context.Context, userID string) ([]*model.Contract, error) {
	return s.store.Contracts().List(ctx, userID)
}

func (s *ContractService) UpdateContract(ctx context.Context, c *model.Contract) (*model.Contract, error) {
	if err := s.validate(c); err != nil {
		return nil, err
	}
	return s.store.Contracts().Update(ctx, c)
}

func (s *ContractService) DeleteContract(ctx context.Context, userID, contractID string) error {
	return s.store.Contracts().Delete(ctx, userID, contractID)
}

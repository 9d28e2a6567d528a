package services

import (
	"context"
	"fmt"

	"github.com/Abinash-k/Freelance-Portal/internal/api/validate"
	"github.com/Abinash-k/Freelance-Portal/internal/model"
	"github.com/Abinash-k/Freelance-Portal/internal/store"
)

type LeadService struct {
	store store.Store
}

func NewLeadService(s store.Store) *LeadService {
	return &LeadService{store: s}
}

func (s *LeadService) CreateLead(ctx context.Context, l *model.Lead) (*model.Lead, error) {
	if err := validate.NonEmpty("name", l.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	if l.Email != nil && *l.Email != "" {
		if err := validate.Email(*l.Email); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
		}
	}
	return s.store.Leads().Create(ctx, l)
}

func (s *LeadService) GetLead(ctx context.Context, userID, leadID string) (*model.Lead, error) {
	return s.store.Leads().Get(ctx, userID, leadID)
}

func (s *LeadService) ListLeads(ctx context.Context, userID string) ([]*model.Lead, error) {
	return s.store.Leads().List(ctx, userID)
}

func (s *LeadService) UpdateLead(ctx context.Context, l *model.Lead) (*model.Lead, error) {
	if err := validate.NonEmpty("name", l.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	return s.store.Leads().Update(ctx, l)
}

func (s *LeadService) DeleteLead(ctx context.Context, userID, leadID string) error {
	return s.store.Leads().Delete(ctx, userID, leadID)
}

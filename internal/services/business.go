package services

import (
	"context"
	"fmt"

	"github.com/Abinash-k/Freelance-Portal/internal/api/validate"
	"github.com/Abinash-k/Freelance-Portal/internal/model"
	"github.com/Abinash-k/Freelance-Portal/internal/store"
)

type BusinessService struct {
	store store.Store
}

func NewBusinessService(s store.Store) *BusinessService {
	return &BusinessService{store: s}
}

// SaveDetails creates or replaces the user's business profile.
func (s *BusinessService) SaveDetails(ctx context.Context, b *model.BusinessDetails) (*model.BusinessDetails, error) {
	if err := validate.NonEmpty("business_name", b.BusinessName); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	if b.Email != nil && *b.Email != "" {
		if err := validate.Email(*b.Email); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
		}
	}
	return s.store.BusinessDetails().Upsert(ctx, b)
}

func (s *BusinessService) GetDetails(ctx context.Context, userID string) (*model.BusinessDetails, error) {
	return s.store.BusinessDetails().Get(ctx, userID)
}

package services

import (
	"context"
	"fmt"

	"github.com/Abinash-k/Freelance-Portal/internal/api/validate"
	"github.com/Abinash-k/Freelance-Portal/internal/model"
	"github.com/Abinash-k/Freelance-Portal/internal/store"
)

type ProjectService struct {
	store store.Store
}

func NewProjectService(s store.Store) *ProjectService {
	return &ProjectService{store: s}
}

func (s *ProjectService) CreateProject(ctx context.Context, p *model.Project) (*model.Project, error) {
	if err := validate.NonEmpty("name", p.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	return s.store.Projects().Create(ctx, p)
}

func (s *ProjectService) ListProjects(ctx context.Context, userID string) ([]*model.Project, error) {
	return s.store.Projects().List(ctx, userID)
}

func (s *ProjectService) UpdateProject(ctx context.Context, p *model.Project) (*model.Project, error) {
	if err := validate.NonEmpty("name", p.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	return s.store.Projects().Update(ctx, p)
}

func (s *ProjectService) DeleteProject(ctx context.Context, userID, projectID string) error {
	return s.store.Projects().Delete(ctx, userID, projectID)
}

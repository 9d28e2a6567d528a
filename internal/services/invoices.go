package services

import (
	"context"
	"fmt"

	"github.com/Abinash-k/Freelance-Portal/internal/api/validate"
	"github.com/Abinash-k/Freelance-Portal/internal/model"
	"github.com/Abinash-k/Freelance-Portal/internal/store"
)

type InvoiceService struct {
	store store.Store
}

func NewInvoiceService(s store.Store) *InvoiceService {
	return &InvoiceService{store: s}
}

func (s *InvoiceService) validate(inv *model.Invoice) error {
	if err := validate.NonEmpty("title", inv.Title); err != nil {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	if err := validate.NonEmpty("client_name", inv.ClientName); err != nil {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	if inv.DueDate.IsZero() {
		return fmt.Errorf("%w: due_date is required", model.ErrValidation)
	}
	if inv.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", model.ErrValidation)
	}
	return nil
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	if err := s.validate(inv); err != nil {
		return nil, err
	}
	return s.store.Invoices().Create(ctx, inv)
}

func (s *InvoiceService) GetInvoice(ctx context.Context, userID, invoiceID string) (*model.Invoice, error) {
	return s.store.Invoices().Get(ctx, userID, invoiceID)
}

func (s *InvoiceService) ListInvoices(ctx context.Context, userID string) ([]*model.Invoice, error) {
	return s.store.Invoices().List(ctx, userID)
}

func (s *InvoiceService) UpdateInvoice(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	if err := s.validate(inv); err != nil {
		return nil, err
	}
	return s.store.Invoices().Update(ctx, inv)
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, userID, invoiceID string) error {
	return s.store.Invoices().Delete(ctx, userID, invoiceID)
}

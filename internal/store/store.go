package store

import (
	"context"

	"github.com/Abinash-k/Freelance-Portal/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (e.g., postgres).
type Store interface {
	Meetings() Meetings
	Leads() Leads
	Invoices() Invoices
	Contracts() Contracts
	Expenses() Expenses
	Projects() Projects
	BusinessDetails() BusinessDetails
}

type Meetings interface {
	// Create inserts exactly one new row; the store assigns the id and
	// timestamps. It never updates an existing meeting.
	Create(ctx context.Context, m *model.Meeting) (*model.Meeting, error)
	Get(ctx context.Context, userID, meetingID string) (*model.Meeting, error)
	List(ctx context.Context, userID string) ([]*model.Meeting, error)
	UpdateStatus(ctx context.Context, userID, meetingID, status string) (*model.Meeting, error)
	Delete(ctx context.Context, userID, meetingID string) error
}

type Leads interface {
	Create(ctx context.Context, l *model.Lead) (*model.Lead, error)
	Get(ctx context.Context, userID, leadID string) (*model.Lead, error)
	List(ctx context.Context, userID string) ([]*model.Lead, error)
	Update(ctx context.Context, l *model.Lead) (*model.Lead, error)
	Delete(ctx context.Context, userID, leadID string) error
}

type Invoices interface {
	Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)
	Get(ctx context.Context, userID, invoiceID string) (*model.Invoice, error)
	List(ctx context.Context, userID string) ([]*model.Invoice, error)
	Update(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)
	Delete(ctx context.Context, userID, invoiceID string) error
}

type Contracts interface {
	Create(ctx context.Context, c *model.Contract) (*model.Contract, error)
	Get(ctx context.Context, userID, contractID string) (*model.Contract, error)
	List(ctx context.Context, userID string) ([]*model.Contract, error)
	Update(ctx context.Context, c *model.Contract) (*model.Contract, error)
	Delete(ctx context.Context, userID, contractID string) error
}

type Expenses interface {
	Create(ctx context.Context, e *model.Expense) (*model.Expense, error)
	Get(ctx context.Context, userID, expenseID string) (*model.Expense, error)
	List(ctx context.Context, userID string) ([]*model.Expense, error)
	Update(ctx context.Context, e *model.Expense) (*model.Expense, error)
	Delete(ctx context.Context, userID, expenseID string) error
}

type Projects interface {
	Create(ctx context.Context, p *model.Project) (*model.Project, error)
	List(ctx context.Context, userID string) ([]*model.Project, error)
	Update(ctx context.Context, p *model.Project) (*model.Project, error)
	Delete(ctx context.Context, userID, projectID string) error
}

type BusinessDetails interface {
	// Upsert creates or replaces the single business profile row for a user.
	Upsert(ctx context.Context, b *model.BusinessDetails) (*model.BusinessDetails, error)
	Get(ctx context.Context, userID string) (*model.BusinessDetails, error)
}

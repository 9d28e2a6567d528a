package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Abinash-k/Freelance-Portal/internal/model"
)

type invoices struct{ db *sql.DB }

func (v *invoices) Create(ctx context.Context, in *model.Invoice) (*model.Invoice, error) {
	id := uuid.New().String()
	status := in.Status
	if status == "" {
		status = "draft"
	}
	var created, updated time.Time
	row := v.db.QueryRowContext(ctx, `
        INSERT INTO invoices (id, user_id, title, client_name, amount, content, status, due_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING created_at, updated_at
    `, id, in.UserID, in.Title, in.ClientName, in.Amount, in.Content, status, in.DueDate)
	if err := row.Scan(&created, &updated); err != nil {
		return nil, err
	}
	out := *in
	out.ID = id
	out.Status = status
	out.CreatedAt = created
	out.UpdatedAt = updated
	return &out, nil
}

func (v *invoices) Get(ctx context.Context, userID, invoiceID string) (*model.Invoice, error) {
	row := v.db.QueryRowContext(ctx, `
        SELECT id, user_id, title, client_name, amount, content, status, due_date, created_at, updated_at
        FROM invoices WHERE user_id=$1 AND id=$2
    `, userID, invoiceID)
	return scanInvoice(row)
}

func (v *invoices) List(ctx context.Context, userID string) ([]*model.Invoice, error) {
	rows, err := v.db.QueryContext(ctx, `
        SELECT id, user_id, title, client_name, amount, content, status, due_date, created_at, updated_at
        FROM invoices WHERE user_id=$1 ORDER BY created_at DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (v *invoices) Update(ctx context.Context, in *model.Invoice) (*model.Invoice, error) {
	res, err := v.db.ExecContext(ctx, `
        UPDATE invoices SET title=$3, client_name=$4, amount=$5, content=$6, status=$7, due_date=$8, updated_at=now()
        WHERE user_id=$1 AND id=$2
    `, in.UserID, in.ID, in.Title, in.ClientName, in.Amount, in.Content, in.Status, in.DueDate)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	return v.Get(ctx, in.UserID, in.ID)
}

func (v *invoices) Delete(ctx context.Context, userID, invoiceID string) error {
	res, err := v.db.ExecContext(ctx, `DELETE FROM invoices WHERE user_id=$1 AND id=$2`, userID, invoiceID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanInvoice(row rowScanner) (*model.Invoice, error) {
	var out model.Invoice
	err := row.Scan(&out.ID, &out.UserID, &out.Title, &out.ClientName, &out.Amount, &out.Content,
		&out.Status, &out.DueDate, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

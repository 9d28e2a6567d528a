package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Abinash-k/Freelance-Portal/internal/model"
)

type expenses struct{ db *sql.DB }

func (e *expenses) Create(ctx context.Context, in *model.Expense) (*model.Expense, error) {
	id := uuid.New().String()
	var created, updated time.Time
	row := e.db.QueryRowContext(ctx, `
        INSERT INTO expenses (id, user_id, description, category, amount, date, receipt_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at, updated_at
    `, id, in.UserID, in.Description, in.Category, in.Amount, in.Date, in.ReceiptURL)
	if err := row.Scan(&created, &updated); err != nil {
		return nil, err
	}
	out := *in
	out.ID = id
	out.CreatedAt = created
	out.UpdatedAt = updated
	return &out, nil
}

func (e *expenses) Get(ctx context.Context, userID, expenseID string) (*model.Expense, error) {
	row := e.db.QueryRowContext(ctx, `
        SELECT id, user_id, description, category, amount, date, receipt_url, created_at, updated_at
        FROM expenses WHERE user_id=$1 AND id=$2
    `, userID, expenseID)
	return scanExpense(row)
}

func (e *expenses) List(ctx context.Context, userID string) ([]*model.Expense, error) {
	rows, err := e.db.QueryContext(ctx, `
        SELECT id, user_id, description, category, amount, date, receipt_url, created_at, updated_at
        FROM expenses WHERE user_id=$1 ORDER BY date DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Expense
	for rows.Next() {
		ex, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ex)
	}
	return out, rows.Err()
}

func (e *expenses) Update(ctx context.Context, in *model.Expense) (*model.Expense, error) {
	res, err := e.db.ExecContext(ctx, `
        UPDATE expenses SET description=$3, category=$4, amount=$5, date=$6, receipt_url=$7, updated_at=now()
        WHERE user_id=$1 AND id=$2
    `, in.UserID, in.ID, in.Description, in.Category, in.Amount, in.Date, in.ReceiptURL)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	return e.Get(ctx, in.UserID, in.ID)
}

func (e *expenses) Delete(ctx context.Context, userID, expenseID string) error {
	res, err := e.db.ExecContext(ctx, `DELETE FROM expenses WHERE user_id=$1 AND id=$2`, userID, expenseID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanExpense(row rowScanner) (*model.Expense, error) {
	var out model.Expense
	err := row.Scan(&out.ID, &out.UserID, &out.Description, &out.Category, &out.Amount,
		&out.Date, &out.ReceiptURL, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

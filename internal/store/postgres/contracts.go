package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Abinash-k/Freelance-Portal/internal/model"
)

type contracts struct{ db *sql.DB }

func (c *contracts) Create(ctx context.Context, in *model.Contract) (*model.Contract, error) {
	id := uuid.New().String()
	status := in.Status
	if status == "" {
		status = "draft"
	}
	var created, updated time.Time
	row := c.db.QueryRowContext(ctx, `
        INSERT INTO contracts (id, user_id, client_name, project_name, value, status, start_date, end_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING created_at, updated_at
    `, id, in.UserID, in.ClientName, in.ProjectName, in.Value, status, in.StartDate, in.EndDate)
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

func (c *contracts) Get(ctx context.Context, userID, contractID string) (*model.Contract, error) {
	row := c.db.QueryRowContext(ctx, `
        SELECT id, user_id, client_name, project_name, value, status, start_date, end_date, created_at, updated_at
        FROM contracts WHERE user_id=$1 AND id=$2
    `, userID, contractID)
	return scanContract(row)
}

func (c *contracts) List(ctx context.Context, userID string) ([]*model.Contract, error) {
	rows, err := c.db.QueryContext(ctx, `
        SELECT id, user_id, client_name, project_name, value, status, start_date, end_date, created_at, updated_at
        FROM contracts WHERE user_id=$1 ORDER BY created_at DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Contract
	for rows.Next() {
		ct, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	return out, rows.Err()
}

func (c *contracts) Update(ctx context.Context, in *model.Contract) (*model.Contract, error) {
	res, err := c.db.ExecContext(ctx, `
        UPDATE contracts SET client_name=$3, project_name=$4, value=$5, status=$6, start_date=$7, end_date=$8, updated_at=now()
        WHERE user_id=$1 AND id=$2
    `, in.UserID, in.ID, in.ClientName, in.ProjectName, in.Value, in.Status, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	return c.Get(ctx, in.UserID, in.ID)
}

func (c *contracts) Delete(ctx context.Context, userID, contractID string) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM contracts WHERE user_id=$1 AND id=$2`, userID, contractID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanContract(row rowScanner) (*model.Contract, error) {
	var out model.Contract
	err := row.Scan(&out.ID, &out.UserID, &out.ClientName, &out.ProjectName, &out.Value,
		&out.Status, &out.StartDate, &out.EndDate, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

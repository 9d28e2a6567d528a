package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Abinash-k/Freelance-Portal/internal/model"
)

type projects struct{ db *sql.DB }

func (p *projects) Create(ctx context.Context, in *model.Project) (*model.Project, error) {
	id := uuid.New().String()
	status := in.Status
	if status == "" {
		status = "active"
	}
	var created, updated time.Time
	row := p.db.QueryRowContext(ctx, `
        INSERT INTO projects (id, user_id, name, status, value)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING created_at, updated_at
    `, id, in.UserID, in.Name, status, in.Value)
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

func (p *projects) List(ctx context.Context, userID string) ([]*model.Project, error) {
	rows, err := p.db.QueryContext(ctx, `
        SELECT id, user_id, name, status, value, created_at, updated_at
        FROM projects WHERE user_id=$1 ORDER BY created_at DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Project
	for rows.Next() {
		var pr model.Project
		if err := rows.Scan(&pr.ID, &pr.UserID, &pr.Name, &pr.Status, &pr.Value, &pr.CreatedAt, &pr.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &pr)
	}
	return out, rows.Err()
}

func (p *projects) Update(ctx context.Context, in *model.Project) (*model.Project, error) {
	var out model.Project
	row := p.db.QueryRowContext(ctx, `
        UPDATE projects SET name=$3, status=$4, value=$5, updated_at=now()
        WHERE user_id=$1 AND id=$2
        RETURNING id, user_id, name, status, value, created_at, updated_at
    `, in.UserID, in.ID, in.Name, in.Status, in.Value)
	err := row.Scan(&out.ID, &out.UserID, &out.Name, &out.Status, &out.Value, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *projects) Delete(ctx context.Context, userID, projectID string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM projects WHERE user_id=$1 AND id=$2`, userID, projectID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

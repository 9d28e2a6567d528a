package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Abinash-k/Freelance-Portal/internal/model"
)

type leads struct{ db *sql.DB }

func (l *leads) Create(ctx context.Context, in *model.Lead) (*model.Lead, error) {
	id := uuid.New().String()
	status := in.Status
	if status == "" {
		status = "new"
	}
	var created, updated time.Time
	row := l.db.QueryRowContext(ctx, `
        INSERT INTO leads (id, user_id, name, company, email, phone, status, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING created_at, updated_at
    `, id, in.UserID, in.Name, in.Company, in.Email, in.Phone, status, in.Notes)
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

func (l *leads) Get(ctx context.Context, userID, leadID string) (*model.Lead, error) {
	row := l.db.QueryRowContext(ctx, `
        SELECT id, user_id, name, company, email, phone, status, notes, created_at, updated_at
        FROM leads WHERE user_id=$1 AND id=$2
    `, userID, leadID)
	return scanLead(row)
}

func (l *leads) List(ctx context.Context, userID string) ([]*model.Lead, error) {
	rows, err := l.db.QueryContext(ctx, `
        SELECT id, user_id, name, company, email, phone, status, notes, created_at, updated_at
        FROM leads WHERE user_id=$1 ORDER BY created_at DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Lead
	for rows.Next() {
		ld, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ld)
	}
	return out, rows.Err()
}

func (l *leads) Update(ctx context.Context, in *model.Lead) (*model.Lead, error) {
	res, err := l.db.ExecContext(ctx, `
        UPDATE leads SET name=$3, company=$4, email=$5, phone=$6, status=$7, notes=$8, updated_at=now()
        WHERE user_id=$1 AND id=$2
    `, in.UserID, in.ID, in.Name, in.Company, in.Email, in.Phone, in.Status, in.Notes)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	return l.Get(ctx, in.UserID, in.ID)
}

func (l *leads) Delete(ctx context.Context, userID, leadID string) error {
	res, err := l.db.ExecContext(ctx, `DELETE FROM leads WHERE user_id=$1 AND id=$2`, userID, leadID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanLead(row rowScanner) (*model.Lead, error) {
	var out model.Lead
	err := row.Scan(&out.ID, &out.UserID, &out.Name, &out.Company, &out.Email, &out.Phone,
		&out.Status, &out.Notes, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Abinash-k/Freelance-Portal/internal/model"
)

type businessDetails struct{ db *sql.DB }

func (b *businessDetails) Upsert(ctx context.Context, in *model.BusinessDetails) (*model.BusinessDetails, error) {
	var id string
	var created, updated time.Time
	row := b.db.QueryRowContext(ctx, `
        INSERT INTO business_details (id, user_id, business_name, email, phone, address, country, currency_code, website)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        ON CONFLICT (user_id) DO UPDATE SET
            business_name=EXCLUDED.business_name, email=EXCLUDED.email, phone=EXCLUDED.phone,
            address=EXCLUDED.address, country=EXCLUDED.country, currency_code=EXCLUDED.currency_code,
            website=EXCLUDED.website, updated_at=now()
        RETURNING id, created_at, updated_at
    `, uuid.New().String(), in.UserID, in.BusinessName, in.Email, in.Phone, in.Address, in.Country, in.CurrencyCode, in.Website)
	if err := row.Scan(&id, &created, &updated); err != nil {
		return nil, err
	}
	out := *in
	out.ID = id
	out.CreatedAt = created
	out.UpdatedAt = updated
	return &out, nil
}

func (b *businessDetails) Get(ctx context.Context, userID string) (*model.BusinessDetails, error) {
	var out model.BusinessDetails
	row := b.db.QueryRowContext(ctx, `
        SELECT id, user_id, business_name, email, phone, address, country, currency_code, website, created_at, updated_at
        FROM business_details WHERE user_id=$1
    `, userID)
	err := row.Scan(&out.ID, &out.UserID, &out.BusinessName, &out.Email, &out.Phone, &out.Address,
		&out.Country, &out.CurrencyCode, &out.Website, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

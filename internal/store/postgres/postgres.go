// Package postgres implements the store interfaces on PostgreSQL via the
// pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Abinash-k/Freelance-Portal/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Meetings() store.Meetings               { return &meetings{db: s.db} }
func (s *pgStore) Leads() store.Leads                     { return &leads{db: s.db} }
func (s *pgStore) Invoices() store.Invoices               { return &invoices{db: s.db} }
func (s *pgStore) Contracts() store.Contracts             { return &contracts{db: s.db} }
func (s *pgStore) Expenses() store.Expenses               { return &expenses{db: s.db} }
func (s *pgStore) Projects() store.Projects               { return &projects{db: s.db} }
func (s *pgStore) BusinessDetails() store.BusinessDetails { return &businessDetails{db: s.db} }

// HealthPing reports database connectivity for the health endpoint.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

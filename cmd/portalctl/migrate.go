package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Abinash-k/Freelance-Portal/internal/store"
	"github.com/Abinash-k/Freelance-Portal/internal/store/postgres"
)

func init() {
	var dsn string
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the portal schema to a Postgres database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				dsn = os.Getenv("FREELANCE_POSTGRES_DSN")
			}
			if dsn == "" {
				return fmt.Errorf("--dsn or FREELANCE_POSTGRES_DSN required")
			}
			db, err := postgres.Open(dsn)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			ctx := context.Background()
			for _, stmt := range store.DDLStatements() {
				if _, err := db.ExecContext(ctx, stmt); err != nil {
					return fmt.Errorf("apply statement: %w", err)
				}
			}
			_, _ = fmt.Fprintln(os.Stdout, "schema applied")
			return nil
		},
	}
	migrateCmd.Flags().StringVar(&dsn, "dsn", "", "Postgres DSN (defaults to FREELANCE_POSTGRES_DSN)")
	rootCmd.AddCommand(migrateCmd)
}

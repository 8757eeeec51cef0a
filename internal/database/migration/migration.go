package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_accounts",
		SQL: `CREATE TABLE IF NOT EXISTS accounts (
  id             UUID        PRIMARY KEY,
  reference_id   TEXT        NOT NULL,
  tsm            TEXT        NOT NULL DEFAULT '',
  manager        TEXT        NOT NULL DEFAULT '',
  company_name   TEXT        NOT NULL,
  contact_person TEXT        NOT NULL DEFAULT '',
  contact_number TEXT        NOT NULL DEFAULT '',
  email_address  TEXT        NOT NULL DEFAULT '',
  address        TEXT        NOT NULL DEFAULT '',
  area           TEXT        NOT NULL DEFAULT '',
  type_client    TEXT        NOT NULL DEFAULT '',
  status         TEXT        NOT NULL DEFAULT 'Active',
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_accounts_reference_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_accounts_reference_id ON accounts (reference_id);`,
	},
	{
		Name: "create_index_accounts_tsm",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_accounts_tsm ON accounts (tsm);`,
	},
	{
		Name: "create_index_accounts_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_accounts_status ON accounts (status);`,
	},
	{
		Name: "create_table_activities",
		SQL: `CREATE TABLE IF NOT EXISTS activities (
  id                 UUID          PRIMARY KEY,
  activity_number    TEXT          NOT NULL UNIQUE,
  account_id         TEXT          NOT NULL DEFAULT '',
  reference_id       TEXT          NOT NULL,
  tsm                TEXT          NOT NULL DEFAULT '',
  manager            TEXT          NOT NULL DEFAULT '',
  company_name       TEXT          NOT NULL,
  type_activity      TEXT          NOT NULL,
  status             TEXT          NOT NULL,
  remarks            TEXT          NOT NULL DEFAULT '',
  quotation_amount   NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (quotation_amount >= 0),
  sales_order_amount NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (sales_order_amount >= 0),
  created_at         TIMESTAMPTZ   NOT NULL DEFAULT now(),
  updated_at         TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_activities_reference_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_activities_reference_id ON activities (reference_id);`,
	},
	{
		Name: "create_index_activities_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_activities_created_at ON activities (created_at);`,
	},
	{
		Name: "create_table_progress",
		SQL: `CREATE TABLE IF NOT EXISTS progress (
  id               UUID          PRIMARY KEY,
  activity_id      UUID          NOT NULL REFERENCES activities (id) ON DELETE CASCADE,
  reference_id     TEXT          NOT NULL DEFAULT '',
  type_activity    TEXT          NOT NULL,
  status           TEXT          NOT NULL,
  quotation_number TEXT          NOT NULL DEFAULT '',
  so_number        TEXT          NOT NULL DEFAULT '',
  amount           NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (amount >= 0),
  remarks          TEXT          NOT NULL DEFAULT '',
  created_at       TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_progress_activity_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_progress_activity_id ON progress (activity_id, created_at);`,
	},
}

// EnsureMigrated checks if the 'accounts' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *slog.Logger, dbHost string) error {
	start := time.Now()
	log := logger.With("component", "database", "db_host", dbHost)

	log.Info("db_migration_check", "status", "starting")

	var exists bool
	query := "SELECT to_regclass('public.accounts') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			"status", "success",
			"detail", "schema already exists, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Info("db_migration_start", "status", "in_progress")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.Info("db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}

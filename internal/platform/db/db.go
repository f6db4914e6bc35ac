package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrx/internal/platform/config"
)

// Connect opens a pool against the hosted store. The service role key is
// injected as the connection password so the URL itself never carries the
// credential.
func Connect(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.SupabaseDBURL)
	if err != nil {
		return nil, fmt.Errorf("parse SUPABASE_DB_URL: %w", err)
	}
	poolCfg.ConnConfig.Password = cfg.SupabaseRoleKey

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		role TEXT NOT NULL,
		department TEXT NOT NULL,
		job_title TEXT,
		manager_id TEXT,
		start_date DATE,
		salary NUMERIC,
		avatar TEXT,
		status TEXT NOT NULL,
		skills TEXT[],
		bio TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		client TEXT,
		description TEXT,
		status TEXT NOT NULL,
		progress INT NOT NULL DEFAULT 0,
		start_date DATE,
		end_date DATE,
		budget NUMERIC
	)`,
	`CREATE TABLE IF NOT EXISTS project_members (
		project_id TEXT NOT NULL,
		employee_id TEXT NOT NULL,
		PRIMARY KEY (project_id, employee_id)
	)`,
	`CREATE TABLE IF NOT EXISTS leave_requests (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		type TEXT NOT NULL,
		start_date DATE,
		end_date DATE,
		days INT NOT NULL,
		reason TEXT,
		status TEXT NOT NULL,
		approver_id TEXT,
		applied_date DATE
	)`,
	`CREATE TABLE IF NOT EXISTS leave_balances (
		employee_id TEXT PRIMARY KEY,
		annual INT NOT NULL,
		sick INT NOT NULL,
		maternity INT NOT NULL,
		paternity INT NOT NULL,
		unpaid INT NOT NULL,
		compassionate INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payroll_records (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		month TEXT NOT NULL,
		year INT NOT NULL,
		basic_salary NUMERIC NOT NULL,
		allowances NUMERIC NOT NULL,
		deductions NUMERIC NOT NULL,
		tax NUMERIC NOT NULL,
		net_pay NUMERIC NOT NULL,
		status TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS performance_records (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		reviewer_id TEXT,
		period TEXT NOT NULL,
		kpi_score INT NOT NULL,
		rating TEXT NOT NULL,
		feedback TEXT,
		review_date DATE
	)`,
	`CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		performance_record_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		progress INT NOT NULL DEFAULT 0,
		due_date DATE,
		status TEXT NOT NULL
	)`,
}

// EnsureSchema creates every table the seeder writes to.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Record tables, created if absent at startup. Foreign keys are declared
// without ON DELETE actions: deleting a referenced row is rejected by the
// database, never cascaded.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		id BIGSERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		date_of_birth DATE NOT NULL,
		gender TEXT NOT NULL,
		contact_number TEXT NOT NULL,
		email TEXT,
		address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS staff (
		id BIGSERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		role TEXT NOT NULL,
		department TEXT,
		contact_number TEXT NOT NULL,
		email TEXT,
		hire_date DATE
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id BIGSERIAL PRIMARY KEY,
		patient_id BIGINT NOT NULL REFERENCES patients(id),
		staff_id BIGINT NOT NULL REFERENCES staff(id),
		appointment_date TIMESTAMP NOT NULL,
		purpose TEXT,
		status TEXT NOT NULL DEFAULT 'Scheduled'
	)`,
	`CREATE TABLE IF NOT EXISTS medical_records (
		id BIGSERIAL PRIMARY KEY,
		patient_id BIGINT NOT NULL REFERENCES patients(id),
		staff_id BIGINT NOT NULL REFERENCES staff(id),
		diagnosis TEXT NOT NULL,
		treatment TEXT,
		admission_date DATE,
		discharge_date DATE,
		duration_of_stay INTEGER,
		medications TEXT,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bills (
		id BIGSERIAL PRIMARY KEY,
		patient_id BIGINT NOT NULL REFERENCES patients(id),
		amount DOUBLE PRECISION NOT NULL,
		date_issued DATE NOT NULL DEFAULT CURRENT_DATE,
		due_date DATE,
		status TEXT NOT NULL DEFAULT 'Unpaid',
		description TEXT
	)`,
}

// EnsureSchema creates the record tables if they do not exist. It never
// alters existing tables; there is no versioned migration story here.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

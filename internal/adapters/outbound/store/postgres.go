// Package store provides the Postgres-backed record store, selected when a
// DSN is configured. Deployments without a database use the file store in
// the history package instead.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/agds-alt/inspekta/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS inspection_records (
	id              UUID PRIMARY KEY,
	location_id     TEXT NOT NULL,
	submitted_at    TIMESTAMPTZ NOT NULL,
	template_commit TEXT NOT NULL DEFAULT '',
	result          JSONB NOT NULL
)`

// PostgresStore implements domain.RecordStore backed by Postgres.
type PostgresStore struct {
	db *sql.DB
}

// Open connects to Postgres and ensures the records table exists.
func Open(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure records table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error { return s.db.Close() }

func (s *PostgresStore) Save(ctx context.Context, record domain.ScoredRecord) error {
	result, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO inspection_records (id, location_id, submitted_at, template_commit, result)
		 VALUES ($1, $2, $3, $4, $5)`,
		record.ID, record.LocationID, record.SubmittedAt, record.TemplateCommit, result,
	)
	if err != nil {
		return fmt.Errorf("save record %s: %w", record.ID, err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]domain.ScoredRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, location_id, submitted_at, template_commit, result
		 FROM inspection_records
		 ORDER BY submitted_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []domain.ScoredRecord
	for rows.Next() {
		var r domain.ScoredRecord
		var result []byte
		if err := rows.Scan(&r.ID, &r.LocationID, &r.SubmittedAt, &r.TemplateCommit, &result); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if err := json.Unmarshal(result, &r.Result); err != nil {
			return nil, fmt.Errorf("unmarshal record %s: %w", r.ID, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return records, nil
}

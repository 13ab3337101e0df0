package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresRecorder appends completed rounds to a rounds table.
type PostgresRecorder struct {
	db *sql.DB
}

func NewPostgres(dsn string) (*PostgresRecorder, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	r := &PostgresRecorder{db: db}
	if err := r.migrate(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PostgresRecorder) migrate(ctx context.Context) error {
	// Advisory lock prevents concurrent migrations from multiple replicas.
	const lockID = 874110235

	var acquired bool
	if err := r.db.QueryRowContext(ctx, `SELECT pg_try_advisory_lock($1)`, lockID).Scan(&acquired); err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}
	if !acquired {
		// Another replica is migrating; wait briefly and skip.
		time.Sleep(2 * time.Second)
		return nil
	}
	defer func() {
		_, _ = r.db.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, lockID)
	}()

	_, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS rounds (
		id UUID PRIMARY KEY,
		query TEXT NOT NULL,
		result_count INT NOT NULL,
		total_matches INT NOT NULL,
		summary_chars INT NOT NULL,
		search_error TEXT NOT NULL DEFAULT '',
		summary_error TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`)
	if err != nil {
		return fmt.Errorf("failed to create rounds table: %w", err)
	}
	return nil
}

func (r *PostgresRecorder) Record(ctx context.Context, round Round) error {
	if round.CreatedAt.IsZero() {
		round.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rounds (id, query, result_count, total_matches, summary_chars, search_error, summary_error, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO NOTHING`,
		round.ID, round.Query, round.ResultCount, round.TotalMatches,
		round.SummaryChars, round.SearchError, round.SummaryError, round.CreatedAt,
	)
	return err
}

func (r *PostgresRecorder) Close() error {
	return r.db.Close()
}

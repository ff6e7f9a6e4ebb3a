// Package jobs provides PostgreSQL access to the user's saved job postings.
// The pipeline only needs lookups; Save and Delete keep the tracked-jobs
// table maintainable from the same service.
package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no saved job exists for the given id.
var ErrNotFound = errors.New("saved job not found")

// SavedJob is one tracked posting. ID is the external index's job id.
type SavedJob struct {
	ID          string
	Headline    string
	Description string
}

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Get fetches a saved job by its external id. Returns ErrNotFound when the
// id is not tracked.
func (s *Store) Get(ctx context.Context, id string) (*SavedJob, error) {
	job := SavedJob{ID: id}
	err := s.pool.QueryRow(ctx,
		`SELECT headline, description FROM saved_jobs WHERE job_id = $1`,
		id,
	).Scan(&job.Headline, &job.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get saved job %s: %w", id, err)
	}
	return &job, nil
}

// Save inserts or updates a tracked posting.
func (s *Store) Save(ctx context.Context, job *SavedJob) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO saved_jobs (job_id, headline, description)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (job_id) DO UPDATE SET headline = $2, description = $3`,
		job.ID, job.Headline, job.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to save job %s: %w", job.ID, err)
	}
	return nil
}

// Delete removes a tracked posting. Deleting an unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM saved_jobs WHERE job_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job %s: %w", id, err)
	}
	return nil
}

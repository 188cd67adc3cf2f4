package initiative

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ziadkadry99/secondopinion/internal/db"
)

// Store records submissions and their relay outcome.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Save inserts a record. If rec.ID is empty a UUID is generated; the
// stored id is returned.
func (s *Store) Save(ctx context.Context, rec Record) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO initiative_submissions (
			id, name, email, organization, role, message,
			status, upstream_status, upstream_body
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Submission.Name,
		rec.Submission.Email,
		rec.Submission.Organization,
		rec.Submission.Role,
		rec.Submission.Message,
		string(rec.Status),
		rec.UpstreamStatus,
		rec.UpstreamBody,
	)
	if err != nil {
		return "", fmt.Errorf("inserting submission: %w", err)
	}
	return rec.ID, nil
}

// List returns the most recent records first. A non-positive limit returns
// every record.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := `SELECT id, name, email, organization, role, message,
			status, upstream_status, upstream_body, created_at
		FROM initiative_submissions ORDER BY created_at DESC, rowid DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying submissions: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec    Record
			status string
			ts     string
		)
		if err := rows.Scan(
			&rec.ID, &rec.Submission.Name, &rec.Submission.Email,
			&rec.Submission.Organization, &rec.Submission.Role, &rec.Submission.Message,
			&status, &rec.UpstreamStatus, &rec.UpstreamBody, &ts,
		); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		rec.Status = Status(status)
		if t, parseErr := time.Parse(time.DateTime, ts); parseErr == nil {
			rec.CreatedAt = t
		} else if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
			rec.CreatedAt = t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// CountByStatus returns how many records have the given status.
func (s *Store) CountByStatus(ctx context.Context, status Status) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM initiative_submissions WHERE status = ?", string(status),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting submissions: %w", err)
	}
	return n, nil
}

// Summary is an operator's view of recent submissions.
type Summary struct {
	Counts map[Status]int
	Recent []Record
}

// Summarize counts records per status and returns the most recent ones.
func (s *Store) Summarize(ctx context.Context, limit int) (*Summary, error) {
	sum := &Summary{Counts: make(map[Status]int, 3)}
	for _, status := range []Status{StatusRelayed, StatusRejected, StatusFailed} {
		n, err := s.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		sum.Counts[status] = n
	}

	recent, err := s.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	sum.Recent = recent
	return sum, nil
}

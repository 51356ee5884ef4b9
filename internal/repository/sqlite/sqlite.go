// Package sqlite is a Directory stored in a single SQLite file, for small
// centers that run the back office on one machine.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/learnhub-center/backoffice/internal/domain/leave"
	"github.com/learnhub-center/backoffice/internal/domain/staff"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

const timestampLayout = time.RFC3339Nano

// Store holds the staff, leave_requests and leave_balances tables.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at path and applies the schema.
// Use ":memory:" for a throwaway database.
func New(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer at a time; also keeps a :memory: database on one connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Staff() staff.StaffRepository {
	return staffRepository{s.db}
}

func (s *Store) LeaveRequests() leave.LeaveRequestRepository {
	return leaveRequestRepository{s.db}
}

func (s *Store) LeaveBalances() leave.LeaveBalanceRepository {
	return leaveBalanceRepository{s.db}
}

// Seed upserts staff records in one transaction.
func (s *Store) Seed(ctx context.Context, records []staff.Staff) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(timestampLayout)
	for _, r := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO staff (id, name, position, role, leave_quota, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET
				name = excluded.name,
				position = excluded.position,
				role = excluded.role,
				leave_quota = excluded.leave_quota,
				updated_at = excluded.updated_at
		`, r.ID, r.Name, r.Position, r.Role, r.LeaveQuota, now, now)
		if err != nil {
			return fmt.Errorf("failed to seed staff %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}

func formatNullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func parseNullTime(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := parseTime(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pagelift/pagelift"
)

// Compile-time interface verification.
var _ pagelift.RecordService = (*RecordService)(nil)

// RecordService implements pagelift.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord creates a new record, assigning its ID and timestamp.
func (s *RecordService) CreateRecord(ctx context.Context, record *pagelift.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, source_url, output_path, result_json, content_hash, succeeded, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.SourceURL, record.OutputPath, record.ResultJSON, record.ContentHash,
		boolToInt(record.Succeeded), record.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*pagelift.Record, error) {
	var record pagelift.Record
	var succeeded int
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, output_path, result_json, content_hash, succeeded, created_at
		FROM records
		WHERE id = ?
	`, id).Scan(&record.ID, &record.SourceURL, &record.OutputPath, &record.ResultJSON,
		&record.ContentHash, &succeeded, &createdAt)

	if err == sql.ErrNoRows {
		return nil, pagelift.Errorf(pagelift.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}

	record.Succeeded = succeeded != 0
	record.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &record, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter pagelift.RecordFilter) ([]*pagelift.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, output_path, result_json, content_hash, succeeded, created_at FROM records WHERE 1=1")

	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Succeeded != nil {
		query.WriteString(" AND succeeded = ?")
		args = append(args, boolToInt(*filter.Succeeded))
	}

	query.WriteString(" ORDER BY created_at DESC, id")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*pagelift.Record
	for rows.Next() {
		var record pagelift.Record
		var succeeded int
		var createdAt string

		if err := rows.Scan(&record.ID, &record.SourceURL, &record.OutputPath, &record.ResultJSON,
			&record.ContentHash, &succeeded, &createdAt); err != nil {
			return nil, err
		}

		record.Succeeded = succeeded != 0
		record.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

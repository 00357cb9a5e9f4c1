package pagelift

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Record is one row in the run catalog: the durable trace of a single
// engine invocation over a single source.
type Record struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	OutputPath  string    `json:"outputPath"`
	ResultJSON  string    `json:"resultJson"`
	ContentHash string    `json:"contentHash"`
	Succeeded   bool      `json:"succeeded"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	return nil
}

// HashContent computes the xxHash of content and returns it as a 16-char
// hex string. Catalog records store it to detect pages whose enhanced
// output changed between runs.
func HashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// RecordService represents a service for managing catalog records.
type RecordService interface {
	// CreateRecord creates a new record.
	CreateRecord(ctx context.Context, record *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	SourceURL *string `json:"sourceUrl"`
	Succeeded *bool   `json:"succeeded"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

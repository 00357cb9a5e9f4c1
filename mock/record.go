package mock

import (
	"context"

	"github.com/pagelift/pagelift"
)

var _ pagelift.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of pagelift.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, record *pagelift.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*pagelift.Record, error)
	FindRecordsFn    func(ctx context.Context, filter pagelift.RecordFilter) ([]*pagelift.Record, error)
}

func (s *RecordService) CreateRecord(ctx context.Context, record *pagelift.Record) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*pagelift.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter pagelift.RecordFilter) ([]*pagelift.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

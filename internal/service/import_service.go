package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bekzodov/jadval-bot/internal/ingest"
	"github.com/bekzodov/jadval-bot/internal/model"
)

// ImportService runs the spreadsheet ingestion pipeline and, on
// success, replaces the schedule store wholesale. Any failure leaves
// the store untouched.
type ImportService struct {
	schedule *ScheduleService
	log      *zap.Logger
}

func NewImportService(schedule *ScheduleService, log *zap.Logger) *ImportService {
	return &ImportService{schedule: schedule, log: log}
}

// FromBytes ingests a raw xlsx payload.
func (s *ImportService) FromBytes(data []byte) (ingest.Report, error) {
	week, report, err := ingest.Parse(data)
	if err != nil {
		s.log.Warn("spreadsheet parse failed",
			zap.String("import_id", report.ID),
			zap.Error(err))
		return report, err
	}
	return report, s.apply(week, report)
}

// FromURL resolves a shareable spreadsheet link, downloads the export
// and ingests it.
func (s *ImportService) FromURL(ctx context.Context, raw string) (ingest.Report, error) {
	url, err := ingest.ExportURL(raw)
	if err != nil {
		return ingest.Report{}, err
	}
	data, err := ingest.Fetch(ctx, url)
	if err != nil {
		s.log.Warn("spreadsheet fetch failed", zap.String("url", url), zap.Error(err))
		return ingest.Report{}, fmt.Errorf("fetch spreadsheet: %w", err)
	}
	return s.FromBytes(data)
}

func (s *ImportService) apply(week model.Week, report ingest.Report) error {
	if err := s.schedule.ReplaceAll(week); err != nil {
		return err
	}
	s.log.Info("schedule imported",
		zap.String("import_id", report.ID),
		zap.Int("rows", report.Rows),
		zap.Int("skipped", report.Skipped))
	return nil
}

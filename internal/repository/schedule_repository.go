package repository

import (
	"path/filepath"

	"github.com/bekzodov/jadval-bot/internal/model"
)

// ScheduleRepository persists the weekly schedule as one JSON document.
type ScheduleRepository struct {
	document
}

// NewScheduleRepository stores the schedule under dataDir/schedule.json
// with backups in dataDir/backups.
func NewScheduleRepository(dataDir string) *ScheduleRepository {
	return &ScheduleRepository{
		document: newDocument(
			filepath.Join(dataDir, "schedule.json"),
			filepath.Join(dataDir, "backups"),
		),
	}
}

// Load returns the persisted week, or ErrNotFound before the first save.
func (r *ScheduleRepository) Load() (model.Week, error) {
	var w model.Week
	if err := r.document.Load(&w); err != nil {
		return nil, err
	}
	return w, nil
}

// Save rewrites the schedule document wholesale.
func (r *ScheduleRepository) Save(w model.Week) error {
	return r.document.Save(w)
}

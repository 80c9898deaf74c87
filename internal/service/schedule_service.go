package service

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/bekzodov/jadval-bot/internal/model"
	"github.com/bekzodov/jadval-bot/internal/repository"
)

// ErrIndexOutOfRange marks a removal index outside the day's list.
var ErrIndexOutOfRange = errors.New("entry index out of range")

// ScheduleService owns the canonical weekly schedule. All mutation
// funnels through it; every mutating operation backs up the persisted
// document, applies the in-memory change, then persists wholesale.
// Backup or persist failures are logged and the in-memory change is
// kept, last write to disk wins.
type ScheduleService struct {
	mu   sync.RWMutex
	week model.Week
	repo *repository.ScheduleRepository
	log  *zap.Logger
}

// NewScheduleService loads the persisted schedule, defaulting to five
// empty weekday lists when nothing is stored yet.
func NewScheduleService(repo *repository.ScheduleRepository, log *zap.Logger) (*ScheduleService, error) {
	week, err := repo.Load()
	switch {
	case errors.Is(err, repository.ErrNotFound):
		week = model.NewWeek()
		if err := repo.Save(week); err != nil {
			log.Error("failed to persist initial schedule", zap.Error(err))
		}
	case err != nil:
		return nil, fmt.Errorf("load schedule: %w", err)
	default:
		if verr := week.Validate(); verr != nil {
			return nil, fmt.Errorf("persisted schedule invalid: %w", verr)
		}
	}

	return &ScheduleService{week: week, repo: repo, log: log}, nil
}

// Get returns a copy of the day's ordered list. The second result
// reports whether the key exists: false only for weekend days with no
// data supplied.
func (s *ScheduleService) Get(day string) ([]model.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, ok := s.week[day]
	if !ok {
		return nil, false
	}
	cp := make([]model.Entry, len(entries))
	copy(cp, entries)
	return cp, true
}

// Week returns a deep copy of the whole schedule.
func (s *ScheduleService) Week() model.Week {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.week.Clone()
}

// ReplaceAll swaps in a new schedule wholesale. An invalid week is
// rejected and the store is left unchanged.
func (s *ScheduleService) ReplaceAll(week model.Week) error {
	if err := week.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.backup()
	s.week = week.Clone()
	s.persist()

	s.log.Info("schedule replaced")
	return nil
}

// AddEntry appends an entry to the day's list.
func (s *ScheduleService) AddEntry(day string, e model.Entry) error {
	if !model.IsDay(day) {
		return fmt.Errorf("%w: %q", model.ErrUnknownDay, day)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.backup()
	s.week[day] = append(s.week[day], e)
	s.persist()

	s.log.Info("entry added",
		zap.String("day", day),
		zap.String("subject", e.Subject))
	return nil
}

// RemoveEntry deletes the entry at index from the day's list, keeping
// the order of the remaining entries, and returns the removed entry.
func (s *ScheduleService) RemoveEntry(day string, index int) (model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.week[day]
	if index < 0 || index >= len(entries) {
		return model.Entry{}, fmt.Errorf("%w: %s[%d]", ErrIndexOutOfRange, day, index)
	}

	s.backup()
	removed := entries[index]
	s.week[day] = append(entries[:index], entries[index+1:]...)
	// An emptied weekend day goes back to "no data supplied".
	if model.IsWeekend(day) && len(s.week[day]) == 0 {
		delete(s.week, day)
	}
	s.persist()

	s.log.Info("entry removed",
		zap.String("day", day),
		zap.Int("index", index),
		zap.String("subject", removed.Subject))
	return removed, nil
}

// backup and persist are called with the write lock held.

func (s *ScheduleService) backup() {
	if _, err := s.repo.Backup(); err != nil {
		s.log.Error("schedule backup failed", zap.Error(err))
	}
}

func (s *ScheduleService) persist() {
	if err := s.repo.Save(s.week); err != nil {
		s.log.Error("schedule persist failed, in-memory state kept", zap.Error(err))
	}
}

package service

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/bekzodov/jadval-bot/internal/model"
	"github.com/bekzodov/jadval-bot/internal/repository"
)

// UserService owns the user registry: per-user preferences plus the
// administrator allow-list. The registry document is rewritten
// wholesale after every mutation; a failed write is logged and the
// in-memory registry is kept.
type UserService struct {
	mu            sync.RWMutex
	users         map[int64]model.User
	repo          *repository.UserRepository
	admins        map[int64]struct{}
	defaultNotify string
	log           *zap.Logger
}

func NewUserService(repo *repository.UserRepository, adminIDs []int64, defaultNotify string, log *zap.Logger) (*UserService, error) {
	users, err := repo.Load()
	switch {
	case errors.Is(err, repository.ErrNotFound):
		users = make(map[int64]model.User)
	case err != nil:
		return nil, fmt.Errorf("load users: %w", err)
	}

	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	return &UserService{
		users:         users,
		repo:          repo,
		admins:        admins,
		defaultNotify: defaultNotify,
		log:           log,
	}, nil
}

// IsAdmin reports membership in the configured administrator set.
func (s *UserService) IsAdmin(chatID int64) bool {
	_, ok := s.admins[chatID]
	return ok
}

// AdminIDs returns the configured administrator ids.
func (s *UserService) AdminIDs() []int64 {
	ids := make([]int64, 0, len(s.admins))
	for id := range s.admins {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Ensure registers a previously unseen chat with the default notify
// time. It returns the record and whether it was just created.
func (s *UserService) Ensure(chatID int64) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[chatID]; ok {
		return u, false
	}
	u := model.User{ChatID: chatID, NotifyTime: s.defaultNotify}
	s.users[chatID] = u
	s.persist()

	s.log.Info("user registered", zap.Int64("chat_id", chatID))
	return u, true
}

// Get returns the record for chatID.
func (s *UserService) Get(chatID int64) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[chatID]
	return u, ok
}

// SetNotifyTime stores a new reminder time for chatID.
func (s *UserService) SetNotifyTime(chatID int64, clock string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.users[chatID]
	u.ChatID = chatID
	u.NotifyTime = clock
	s.users[chatID] = u
	s.persist()
}

// Remove deletes chatID from the registry. Used when delivery reports
// the recipient permanently unreachable.
func (s *UserService) Remove(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[chatID]; !ok {
		return
	}
	delete(s.users, chatID)
	s.persist()

	s.log.Info("user removed from registry", zap.Int64("chat_id", chatID))
}

// All returns every registered user.
func (s *UserService) All() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChatID < out[j].ChatID })
	return out
}

// Recipients returns the registered non-admin chat ids in stable order.
func (s *UserService) Recipients() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]int64, 0, len(s.users))
	for id := range s.users {
		if _, admin := s.admins[id]; admin {
			continue
		}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Count returns the number of registered users.
func (s *UserService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// persist is called with the write lock held.
func (s *UserService) persist() {
	if err := s.repo.Save(s.users); err != nil {
		s.log.Error("user registry persist failed, in-memory state kept", zap.Error(err))
	}
}

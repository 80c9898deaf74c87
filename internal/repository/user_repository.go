package repository

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/bekzodov/jadval-bot/internal/model"
)

// UserRepository persists the user registry as one JSON document
// keyed by chat id. JSON object keys are strings, so ids are written
// in decimal and parsed back on load.
type UserRepository struct {
	document
}

// NewUserRepository stores the registry under dataDir/users.json.
func NewUserRepository(dataDir string) *UserRepository {
	return &UserRepository{
		document: newDocument(
			filepath.Join(dataDir, "users.json"),
			filepath.Join(dataDir, "backups"),
		),
	}
}

// Load returns the persisted registry, or ErrNotFound before the first save.
func (r *UserRepository) Load() (map[int64]model.User, error) {
	var raw map[string]model.User
	if err := r.document.Load(&raw); err != nil {
		return nil, err
	}
	users := make(map[int64]model.User, len(raw))
	for key, u := range raw {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad user key %q: %w", key, err)
		}
		u.ChatID = id
		users[id] = u
	}
	return users, nil
}

// Save rewrites the registry document wholesale.
func (r *UserRepository) Save(users map[int64]model.User) error {
	raw := make(map[string]model.User, len(users))
	for id, u := range users {
		raw[strconv.FormatInt(id, 10)] = u
	}
	return r.document.Save(raw)
}

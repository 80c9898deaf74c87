package state

import "sync"

// Manager holds the current flow per user. Flows are in-memory only:
// a half-finished dialog does not survive a restart.
type Manager struct {
	mu    sync.RWMutex
	flows map[int64]Flow
}

func NewManager() *Manager {
	return &Manager{flows: make(map[int64]Flow)}
}

// Get returns the user's current flow, Idle by default.
func (m *Manager) Get(chatID int64) Flow {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if f, ok := m.flows[chatID]; ok {
		return f
	}
	return Idle{}
}

// Set replaces the user's flow. Setting Idle removes the record.
func (m *Manager) Set(chatID int64, f Flow) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, idle := f.(Idle); idle {
		delete(m.flows, chatID)
		return
	}
	m.flows[chatID] = f
}

// Clear discards any flow-local data and returns the user to Idle.
func (m *Manager) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.flows, chatID)
}

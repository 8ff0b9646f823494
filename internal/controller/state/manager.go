package state

import (
	"sync"
)

// Manager хранит состояния диалогов всех чатов.
// Инвариант: не более одного диалога на чат; отсутствие записи означает
// "нет активного диалога", и следующее сообщение трактуется как команда меню.
type Manager struct {
	mu      sync.RWMutex
	dialogs map[int64]*Dialog // chatID -> Dialog
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		dialogs: make(map[int64]*Dialog),
	}
}

// Get возвращает копию диалога чата, если он есть
func (m *Manager) Get(chatID int64) (Dialog, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if dialog, exists := m.dialogs[chatID]; exists {
		return *dialog, true
	}
	return Dialog{}, false
}

// Set устанавливает диалог чата, заменяя существующий
func (m *Manager) Set(chatID int64, dialog Dialog) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dialogs[chatID] = &dialog
}

// Clear удаляет диалог чата
func (m *Manager) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.dialogs, chatID)
}

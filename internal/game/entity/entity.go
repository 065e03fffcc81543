package entity

// Type represents the type of entity.
type Type uint8

const (
	TypePlayer Type = iota
	TypeEnemy
	TypePickup
)

// String returns the type name used in logs.
func (t Type) String() string {
	switch t {
	case TypePlayer:
		return "player"
	case TypeEnemy:
		return "enemy"
	case TypePickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Manager manages all characters in the game.
// Iteration order is insertion order so updates are deterministic.
type Manager struct {
	order  []*Character
	byID   map[uint32]*Character
	player *Character
	nextID uint32
}

// NewManager creates a new entity manager.
func NewManager() *Manager {
	return &Manager{
		byID:   make(map[uint32]*Character),
		nextID: 1,
	}
}

// NextID reserves a fresh entity ID.
func (m *Manager) NextID() uint32 {
	id := m.nextID
	m.nextID++
	return id
}

// Add adds a character. Re-adding an existing ID replaces it in place.
func (m *Manager) Add(c *Character) {
	if c.ID >= m.nextID {
		m.nextID = c.ID + 1
	}
	if _, ok := m.byID[c.ID]; ok {
		for i, e := range m.order {
			if e.ID == c.ID {
				m.order[i] = c
				break
			}
		}
	} else {
		m.order = append(m.order, c)
	}
	m.byID[c.ID] = c
}

// Remove removes a character.
func (m *Manager) Remove(id uint32) {
	if _, ok := m.byID[id]; !ok {
		return
	}
	delete(m.byID, id)
	for i, e := range m.order {
		if e.ID == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if m.player != nil && m.player.ID == id {
		m.player = nil
	}
}

// Get returns a character by ID.
func (m *Manager) Get(id uint32) *Character {
	return m.byID[id]
}

// SetPlayer sets the controlled character.
func (m *Manager) SetPlayer(c *Character) {
	m.player = c
	m.Add(c)
}

// Player returns the controlled character.
func (m *Manager) Player() *Character {
	return m.player
}

// All returns all characters in insertion order.
func (m *Manager) All() []*Character {
	result := make([]*Character, len(m.order))
	copy(result, m.order)
	return result
}

// Enemies returns every non-player character in insertion order.
func (m *Manager) Enemies() []*Character {
	result := make([]*Character, 0, len(m.order))
	for _, c := range m.order {
		if c != m.player {
			result = append(result, c)
		}
	}
	return result
}

// GetByType returns all characters of a specific type.
func (m *Manager) GetByType(t Type) []*Character {
	result := make([]*Character, 0)
	for _, c := range m.order {
		if c.Type == t {
			result = append(result, c)
		}
	}
	return result
}

// Count returns the total number of characters.
func (m *Manager) Count() int {
	return len(m.order)
}

// Clear removes all characters except the player.
func (m *Manager) Clear() {
	m.order = m.order[:0]
	m.byID = make(map[uint32]*Character)
	if m.player != nil {
		m.Add(m.player)
	}
}

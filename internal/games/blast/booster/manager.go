package booster

import "github.com/AKGMI/BlastGame/internal/games/blast/core"

// Manager arms at most one booster at a time and charges the inventory
// when an armed booster completes.
type Manager struct {
	inventory  *Inventory
	strategies map[Kind]Strategy
	active     Strategy
}

// NewManager creates a manager with the bomb and swap strategies.
func NewManager(inv *Inventory) *Manager {
	if inv == nil {
		inv = DefaultInventory()
	}
	return &Manager{
		inventory: inv,
		strategies: map[Kind]Strategy{
			KindBomb: NewBomb(),
			KindSwap: NewSwap(),
		},
	}
}

// Activate arms the booster of the given kind. It requires stock and resets
// any booster that was armed before. Returns false if nothing was armed.
func (m *Manager) Activate(kind Kind) bool {
	strategy, ok := m.strategies[kind]
	if !ok || !m.inventory.Has(kind) {
		return false
	}
	if m.active != nil {
		m.active.Reset()
	}
	m.active = strategy
	return true
}

// HandleClick forwards a click to the armed booster. A completed activation
// consumes one unit and disarms the booster.
func (m *Manager) HandleClick(b *core.Board, pos core.Position) Result {
	if m.active == nil {
		return Result{}
	}

	res := m.active.Activate(b, pos)
	if res.Success && !res.NeedsSecondClick {
		m.inventory.Consume(m.active.Kind())
		m.active.Reset()
		m.active = nil
	}
	return res
}

// Deactivate disarms the current booster without consuming stock.
func (m *Manager) Deactivate() {
	if m.active == nil {
		return
	}
	m.active.Reset()
	m.active = nil
}

// Active returns the kind of the armed booster, if any.
func (m *Manager) Active() (Kind, bool) {
	if m.active == nil {
		return 0, false
	}
	return m.active.Kind(), true
}

// Hint returns the prompt of the armed booster, or "" when none is armed.
func (m *Manager) Hint() string {
	if m.active == nil {
		return ""
	}
	return m.active.Hint()
}

// PendingSwap returns the first cell picked by an armed swap booster.
func (m *Manager) PendingSwap() (core.Position, bool) {
	s, ok := m.active.(*Swap)
	if !ok {
		return core.Position{}, false
	}
	return s.Pending()
}

// Inventory returns the inventory backing this manager.
func (m *Manager) Inventory() *Inventory {
	return m.inventory
}

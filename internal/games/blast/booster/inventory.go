package booster

// Default stock of each booster at the start of a game.
const (
	DefaultBombs = 3
	DefaultSwaps = 3
)

// Inventory tracks how many uses of each booster remain.
type Inventory struct {
	counts map[Kind]int
}

// NewInventory creates an inventory with the given stock.
// Negative counts are treated as zero.
func NewInventory(bombs, swaps int) *Inventory {
	inv := &Inventory{counts: make(map[Kind]int, 2)}
	inv.Add(KindBomb, bombs)
	inv.Add(KindSwap, swaps)
	return inv
}

// DefaultInventory creates an inventory with the default stock.
func DefaultInventory() *Inventory {
	return NewInventory(DefaultBombs, DefaultSwaps)
}

// Has returns true if at least one use of kind remains.
func (inv *Inventory) Has(kind Kind) bool {
	return inv.counts[kind] > 0
}

// Count returns the remaining uses of kind.
func (inv *Inventory) Count(kind Kind) int {
	return inv.counts[kind]
}

// Add increases the stock of kind. Non-positive amounts are ignored.
func (inv *Inventory) Add(kind Kind, n int) {
	if n <= 0 {
		return
	}
	inv.counts[kind] += n
}

// Consume uses one unit of kind. Returns false if none were left.
func (inv *Inventory) Consume(kind Kind) bool {
	if inv.counts[kind] <= 0 {
		return false
	}
	inv.counts[kind]--
	return true
}

// Counts returns a copy of all stock levels, including exhausted kinds.
func (inv *Inventory) Counts() map[Kind]int {
	out := make(map[Kind]int, len(AllKinds()))
	for _, k := range AllKinds() {
		out[k] = inv.counts[k]
	}
	return out
}

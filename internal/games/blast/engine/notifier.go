package engine

// EventKind names the action an Event reports.
type EventKind string

const (
	EventMove    EventKind = "move"
	EventBooster EventKind = "booster"
	EventShuffle EventKind = "shuffle"
	EventReset   EventKind = "reset"
)

// Event is sent once per completed action. Exactly one of Move, Booster
// or Shuffle is set, matching Kind; reset events carry none.
type Event struct {
	Kind      EventKind
	State     GameState
	Score     int
	MovesLeft int
	Move      *MoveResult
	Booster   *BoosterResult
	Shuffle   *ShuffleResult
}

// Notifier receives engine events.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Event)

// Notify calls f(e).
func (f NotifierFunc) Notify(e Event) {
	f(e)
}

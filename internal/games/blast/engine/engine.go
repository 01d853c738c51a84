package engine

import (
	"fmt"
	"math/rand"

	"github.com/AKGMI/BlastGame/internal/games/blast/booster"
	"github.com/AKGMI/BlastGame/internal/games/blast/core"
)

// Engine runs one game of Blast. It is not safe for concurrent use;
// hosts must serialize calls.
type Engine struct {
	cfg      Config
	rng      core.Rand
	ownRand  bool
	notifier Notifier

	board         *core.Board
	score         Score
	moves         Moves
	shuffles      ShuffleBudget
	boosters      *booster.Manager
	state         GameState
	shuffleNeeded bool
	boostersUsed  int
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRand injects the random source used for generation, refills and shuffles.
// Without it each Reset seeds a new math/rand source from Config.Seed.
func WithRand(r core.Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithNotifier registers the receiver of per-action events.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// New creates an engine and starts its first game.
func New(cfg Config, opts ...Option) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	e.ownRand = e.rng == nil

	if err := e.reset(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset discards the current game and starts a new one from cfg.
func (e *Engine) Reset(cfg Config) error {
	if err := e.reset(cfg); err != nil {
		return err
	}
	e.notify(Event{Kind: EventReset})
	return nil
}

func (e *Engine) reset(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if e.ownRand {
		e.rng = rand.New(rand.NewSource(cfg.Seed))
	}

	board, err := e.buildBoard(cfg)
	if err != nil {
		return fmt.Errorf("engine: cannot build board: %w", err)
	}

	e.cfg = cfg
	e.board = board
	e.score = NewScore(cfg.TargetScore)
	e.moves = NewMoves(cfg.TotalMoves)
	e.shuffles = NewShuffleBudget(cfg.MaxShuffles)
	e.boosters = booster.NewManager(booster.NewInventory(cfg.Bombs, cfg.Swaps))
	e.state = StatePlaying
	e.shuffleNeeded = false
	e.boostersUsed = 0
	return nil
}

// buildBoard generates a board, or loads the fixed layout and makes it playable.
func (e *Engine) buildBoard(cfg Config) (*core.Board, error) {
	if len(cfg.Layout) == 0 {
		return core.NewBoard(cfg.Rows, cfg.Cols, cfg.MinGroupSize, e.rng)
	}

	b, err := core.NewBoardFromLayout(cfg.Layout, cfg.MinGroupSize, e.rng)
	if err != nil {
		return nil, err
	}
	b.FillEmptyCells()
	if !b.EnsurePlayable() {
		return nil, fmt.Errorf("%w: layout %dx%d cannot hold a group of %d",
			ErrInvalidConfig, b.Rows(), b.Cols(), cfg.MinGroupSize)
	}
	return b, nil
}

// Tile returns a copy of the tile at (row, col).
func (e *Engine) Tile(row, col int) (core.Tile, bool) {
	return e.board.Tile(core.P(row, col))
}

// Rows returns the board height.
func (e *Engine) Rows() int { return e.board.Rows() }

// Cols returns the board width.
func (e *Engine) Cols() int { return e.board.Cols() }

// State returns the current game state.
func (e *Engine) State() GameState { return e.state }

// Score returns the current score.
func (e *Engine) Score() int { return e.score.Value() }

// TargetScore returns the score needed to win.
func (e *Engine) TargetScore() int { return e.score.Target() }

// MovesLeft returns the remaining moves.
func (e *Engine) MovesLeft() int { return e.moves.Left() }

// TotalMoves returns the move budget of the game.
func (e *Engine) TotalMoves() int { return e.moves.Total() }

// ShufflesLeft returns the remaining shuffle budget.
func (e *Engine) ShufflesLeft() int { return e.shuffles.Left() }

// BoosterCounts returns the remaining stock of every booster.
func (e *Engine) BoosterCounts() map[booster.Kind]int {
	return e.boosters.Inventory().Counts()
}

// ActiveBooster returns the armed booster, if any.
func (e *Engine) ActiveBooster() (booster.Kind, bool) {
	return e.boosters.Active()
}

// BoosterHint returns the prompt for the armed booster.
func (e *Engine) BoosterHint() string {
	return e.boosters.Hint()
}

// PendingSwap returns the first tile chosen for an armed swap.
func (e *Engine) PendingSwap() (core.Position, bool) {
	return e.boosters.PendingSwap()
}

// ShuffleNeeded reports whether the board has no moves and awaits ResolveShuffle.
func (e *Engine) ShuffleNeeded() bool { return e.shuffleNeeded }

// Board returns a copy of the board for read-only inspection.
func (e *Engine) Board() *core.Board { return e.board.Clone() }

// Config returns the config of the current game.
func (e *Engine) Config() Config { return e.cfg }

// HandleTileClick plays the tile at (row, col).
func (e *Engine) HandleTileClick(row, col int) MoveResult {
	pos := core.P(row, col)
	res := MoveResult{MovesLeft: e.moves.Left(), State: e.state}

	if e.state != StatePlaying {
		return res
	}
	tile, ok := e.board.Tile(pos)
	if !ok {
		return res
	}
	res.ClickedGroup = e.board.Targets(pos)

	act, ok := e.board.Activate(pos)
	if !ok {
		return res
	}

	removed := act.Removed
	points := act.Points
	centers := []core.Position{pos}

	switch {
	case !tile.Variant.IsSuper():
		if len(act.Removed) >= core.SuperLineMinSize {
			if v, created := e.board.CreateSuperTile(pos, act.Removed); created {
				res.CreatedSuperTile = &SuperTileCreation{Position: pos, Variant: v}
				removed = without(act.Removed, pos)
			}
		}
	case len(act.Affected) > 0:
		chain := e.board.PropagateChain(act, pos)
		removed = chain.Removed
		points = chain.Points
		centers = chain.ExplosionCenters
		res.ChainLength = chain.ChainLength
	}

	e.board.RemoveGroup(removed)
	e.score.Add(points)
	res.MovedTiles = e.board.ApplyGravity()
	res.NewTiles = e.board.FillEmptyCells()
	e.moves.Use()
	e.updateState()

	res.Applied = true
	res.Removed = removed
	res.Points = points
	res.ExplosionCenters = centers
	res.MovesLeft = e.moves.Left()
	res.State = e.state
	res.ShuffleNeeded = e.checkShuffleNeeded()

	e.notify(Event{Kind: EventMove, Move: &res})
	return res
}

// ActivateBooster arms a booster. Returns false when the game is over or
// the booster is out of stock.
func (e *Engine) ActivateBooster(kind booster.Kind) bool {
	if e.state != StatePlaying {
		return false
	}
	return e.boosters.Activate(kind)
}

// DeactivateBooster disarms the current booster without spending it.
func (e *Engine) DeactivateBooster() {
	e.boosters.Deactivate()
}

// HandleBoosterClick applies the armed booster at (row, col).
// Boosters never spend moves.
func (e *Engine) HandleBoosterClick(row, col int) BoosterResult {
	res := BoosterResult{MoveResult: MoveResult{MovesLeft: e.moves.Left(), State: e.state}}

	kind, armed := e.boosters.Active()
	if e.state != StatePlaying || !armed {
		return res
	}
	res.Booster = kind

	pos := core.P(row, col)
	out := e.boosters.HandleClick(e.board, pos)
	res.NeedsSecondClick = out.NeedsSecondClick
	if !out.Success {
		return res
	}
	e.boostersUsed++

	points := out.Points
	switch {
	case out.Swapped != nil:
		res.Swapped = out.Swapped

	case len(out.Removed) > 0:
		removed := out.Removed
		center := pos
		if out.ExplosionCenter != nil {
			center = *out.ExplosionCenter
		}
		centers := []core.Position{center}

		if supers := e.superTilesIn(removed); len(supers) > 0 {
			chain := e.board.PropagateChain(core.Activation{
				Origin:   center,
				Removed:  removed,
				Affected: supers,
			}, center)
			removed = chain.Removed
			points += chain.Points
			centers = chain.ExplosionCenters
			res.ChainLength = chain.ChainLength
		}

		e.board.RemoveGroup(removed)
		res.Removed = removed
		res.ExplosionCenters = centers
		res.MovedTiles = e.board.ApplyGravity()
		res.NewTiles = e.board.FillEmptyCells()
	}

	e.score.Add(points)
	e.updateState()

	res.Applied = true
	res.Points = points
	res.MovesLeft = e.moves.Left()
	res.State = e.state
	res.ShuffleNeeded = e.checkShuffleNeeded()

	e.notify(Event{Kind: EventBooster, Booster: &res})
	return res
}

// RequestShuffle spends one shuffle on player request.
// It does nothing when the budget is empty or the game is over.
func (e *Engine) RequestShuffle() ShuffleResult {
	return e.shuffle(ShuffleManual)
}

// ResolveShuffle handles a pending shuffle-needed signal. With budget left
// the board is shuffled; without it the game is lost since no move remains.
func (e *Engine) ResolveShuffle() ShuffleResult {
	res := ShuffleResult{Reason: ShuffleAuto, ShufflesLeft: e.shuffles.Left(), State: e.state}
	if !e.shuffleNeeded || e.state != StatePlaying {
		return res
	}
	e.shuffleNeeded = false

	if e.shuffles.Left() == 0 {
		e.state = StateLost
		res.State = e.state
		e.notify(Event{Kind: EventShuffle, Shuffle: &res})
		return res
	}
	return e.shuffle(ShuffleAuto)
}

func (e *Engine) shuffle(reason ShuffleReason) ShuffleResult {
	res := ShuffleResult{Reason: reason, ShufflesLeft: e.shuffles.Left(), State: e.state}
	if e.state != StatePlaying || !e.shuffles.Consume() {
		return res
	}

	e.boosters.Deactivate()
	res.Playable = e.board.Shuffle()
	res.Shuffled = true
	res.ShufflesLeft = e.shuffles.Left()

	e.shuffleNeeded = false
	e.checkShuffleNeeded()

	e.notify(Event{Kind: EventShuffle, Shuffle: &res})
	return res
}

// Hint returns the cells of a playable move, or nil when the game is over
// or the board has none.
func (e *Engine) Hint() []core.Position {
	if e.state != StatePlaying {
		return nil
	}
	hint, _ := e.board.FindHint()
	return hint
}

// RoundStats summarizes resource usage of the current game.
type RoundStats struct {
	MovesUsed    int
	ShufflesUsed int
	BoostersUsed int
}

// Stats returns resource usage of the current game.
func (e *Engine) Stats() RoundStats {
	return RoundStats{
		MovesUsed:    e.moves.Used(),
		ShufflesUsed: e.shuffles.Used(),
		BoostersUsed: e.boostersUsed,
	}
}

// updateState derives the terminal state. A win takes priority over a loss.
func (e *Engine) updateState() {
	if e.state != StatePlaying {
		return
	}
	switch {
	case e.score.Reached():
		e.state = StateWon
	case e.moves.Exhausted():
		e.state = StateLost
	}
	if e.state != StatePlaying {
		e.boosters.Deactivate()
	}
}

// checkShuffleNeeded raises the shuffle signal when the board ran out of moves.
// Returns true only on the call that raised it; the signal clears itself if
// the board becomes playable again.
func (e *Engine) checkShuffleNeeded() bool {
	if e.state != StatePlaying {
		e.shuffleNeeded = false
		return false
	}
	if e.board.HasMatchableGroups() {
		e.shuffleNeeded = false
		return false
	}
	if e.shuffleNeeded {
		return false
	}
	e.shuffleNeeded = true
	return true
}

func (e *Engine) superTilesIn(positions []core.Position) []core.Position {
	var out []core.Position
	for _, p := range positions {
		if t, ok := e.board.Tile(p); ok && t.Variant.IsSuper() {
			out = append(out, p)
		}
	}
	return out
}

func (e *Engine) notify(ev Event) {
	if e.notifier == nil {
		return
	}
	ev.State = e.state
	ev.Score = e.score.Value()
	ev.MovesLeft = e.moves.Left()
	e.notifier.Notify(ev)
}

func without(ps []core.Position, drop core.Position) []core.Position {
	out := make([]core.Position, 0, len(ps))
	for _, p := range ps {
		if p != drop {
			out = append(out, p)
		}
	}
	return out
}

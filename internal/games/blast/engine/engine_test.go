package engine_test

import (
	"errors"
	"testing"

	"github.com/AKGMI/BlastGame/internal/games/blast/booster"
	"github.com/AKGMI/BlastGame/internal/games/blast/core"
	"github.com/AKGMI/BlastGame/internal/games/blast/engine"
)

// zeroRand always returns 0, so every refilled tile is red.
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

// seqRand replays vals and then returns 0.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	if r.i >= len(r.vals) {
		return 0
	}
	v := r.vals[r.i] % n
	r.i++
	return v
}

// A row of five reds over a checkerboard: exactly one group on the board.
var redRow = []string{
	"RRRRR",
	"GBGBG",
	"BGBGB",
	"GBGBG",
	"BGBGB",
}

func layoutConfig(layout []string) engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Layout = layout
	cfg.TargetScore = 10000
	cfg.TotalMoves = 10
	return cfg
}

func newEngine(t *testing.T, cfg engine.Config, opts ...engine.Option) *engine.Engine {
	t.Helper()
	if len(opts) == 0 {
		opts = []engine.Option{engine.WithRand(zeroRand{})}
	}
	e, err := engine.New(cfg, opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e
}

func assertFull(t *testing.T, e *engine.Engine) {
	t.Helper()
	for r := 0; r < e.Rows(); r++ {
		for c := 0; c < e.Cols(); c++ {
			if _, ok := e.Tile(r, c); !ok {
				t.Errorf("cell (%d,%d) is empty", r, c)
			}
		}
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*engine.Config)
	}{
		{"zero rows", func(c *engine.Config) { c.Rows = 0 }},
		{"zero target", func(c *engine.Config) { c.TargetScore = 0 }},
		{"zero moves", func(c *engine.Config) { c.TotalMoves = 0 }},
		{"zero min group", func(c *engine.Config) { c.MinGroupSize = 0 }},
		{"negative shuffles", func(c *engine.Config) { c.MaxShuffles = -1 }},
		{"negative bombs", func(c *engine.Config) { c.Bombs = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := engine.DefaultConfig()
			tc.modify(&cfg)
			if _, err := engine.New(cfg); !errors.Is(err, engine.ErrInvalidConfig) {
				t.Errorf("New() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestNewRejectsBadBoard(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.MinGroupSize = 2, 2, 5
	if _, err := engine.New(cfg); !errors.Is(err, core.ErrInvalidBoard) {
		t.Errorf("New() error = %v, expected ErrInvalidBoard", err)
	}

	cfg = layoutConfig([]string{"RRX"})
	if _, err := engine.New(cfg); !errors.Is(err, core.ErrUnknownVariant) {
		t.Errorf("New() error = %v, expected ErrUnknownVariant", err)
	}
}

func TestUnplayableLayoutIsMadePlayable(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
	}{
		{"two colors in a row", []string{"RB"}},
		{"checkerboard", []string{"RG", "GR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := layoutConfig(tt.layout)
			cfg.MaxShuffles = 0
			e := newEngine(t, cfg)

			if !e.Board().HasMatchableGroups() {
				t.Errorf("board %v has no group at the start", e.Snapshot().Board)
			}
			if len(e.Hint()) == 0 {
				t.Error("Hint() is empty on a new board")
			}
			if e.ShuffleNeeded() || e.State() != engine.StatePlaying {
				t.Errorf("ShuffleNeeded() = %v, State() = %s, expected false and playing", e.ShuffleNeeded(), e.State())
			}

			hint := e.Hint()
			if res := e.HandleTileClick(hint[0].Row, hint[0].Col); !res.Applied {
				t.Errorf("HandleTileClick(%s) was rejected", hint[0])
			}
		})
	}
}

func TestLayoutTooSmallForGroup(t *testing.T) {
	cfg := layoutConfig([]string{"RB"})
	cfg.MinGroupSize = 3
	if _, err := engine.New(cfg, engine.WithRand(zeroRand{})); !errors.Is(err, core.ErrInvalidBoard) {
		t.Errorf("New() error = %v, expected ErrInvalidBoard", err)
	}
}

func TestNewDefaultGame(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Seed = 42
	e := newEngine(t, cfg, engine.WithNotifier(nil))

	if e.Rows() != 8 || e.Cols() != 8 {
		t.Errorf("size = %dx%d, expected 8x8", e.Rows(), e.Cols())
	}
	if e.State() != engine.StatePlaying {
		t.Errorf("State() = %v, expected playing", e.State())
	}
	if e.MovesLeft() != 30 || e.TotalMoves() != 30 {
		t.Errorf("moves = %d/%d, expected 30/30", e.MovesLeft(), e.TotalMoves())
	}
	if e.ShufflesLeft() != 3 {
		t.Errorf("ShufflesLeft() = %d, expected 3", e.ShufflesLeft())
	}
	counts := e.BoosterCounts()
	if counts[booster.KindBomb] != 3 || counts[booster.KindSwap] != 3 {
		t.Errorf("BoosterCounts() = %v, expected 3/3", counts)
	}
	if e.TargetScore() != 10000 || e.Score() != 0 {
		t.Errorf("score = %d/%d, expected 0/10000", e.Score(), e.TargetScore())
	}
	assertFull(t, e)
	if len(e.Hint()) == 0 {
		t.Error("new board should have a hint")
	}
}

func TestClickCreatesSuperTile(t *testing.T) {
	e := newEngine(t, layoutConfig(redRow))

	res := e.HandleTileClick(0, 2)
	if !res.Applied {
		t.Fatal("click was rejected")
	}
	if res.CreatedSuperTile == nil {
		t.Fatal("CreatedSuperTile = nil, expected a super row")
	}
	if res.CreatedSuperTile.Variant != core.SuperRow || res.CreatedSuperTile.Position != core.P(0, 2) {
		t.Errorf("CreatedSuperTile = %+v, expected super row at (0,2)", res.CreatedSuperTile)
	}
	if len(res.Removed) != 4 {
		t.Errorf("len(Removed) = %d, expected 4", len(res.Removed))
	}
	if res.Points != 60 || e.Score() != 60 {
		t.Errorf("points = %d, score = %d, expected 60", res.Points, e.Score())
	}
	if res.MovesLeft != 9 || e.MovesLeft() != 9 {
		t.Errorf("MovesLeft = %d, expected 9", res.MovesLeft)
	}
	if len(res.NewTiles) != 4 {
		t.Errorf("len(NewTiles) = %d, expected 4", len(res.NewTiles))
	}
	if len(res.MovedTiles) != 0 {
		t.Errorf("MovedTiles = %v, expected none", res.MovedTiles)
	}
	tile, _ := e.Tile(0, 2)
	if tile.Variant != core.SuperRow {
		t.Errorf("Tile(0,2) = %v, expected super row", tile.Variant)
	}
	assertFull(t, e)
}

func TestClickRejected(t *testing.T) {
	e := newEngine(t, layoutConfig(redRow))
	before := e.Snapshot()

	res := e.HandleTileClick(2, 2)
	if res.Applied {
		t.Error("single tile click was applied")
	}
	if len(res.ClickedGroup) != 1 || res.ClickedGroup[0] != core.P(2, 2) {
		t.Errorf("ClickedGroup = %v, expected [(2,2)]", res.ClickedGroup)
	}
	if res.MovesLeft != 10 {
		t.Errorf("MovesLeft = %d, expected 10", res.MovesLeft)
	}

	off := e.HandleTileClick(9, 9)
	if off.Applied || off.ClickedGroup != nil {
		t.Errorf("off board click = %+v, expected zero result", off)
	}

	after := e.Snapshot()
	for i := range before.Board {
		if before.Board[i] != after.Board[i] {
			t.Errorf("row %d changed after rejected click", i)
		}
	}
}

func TestClickSuperTile(t *testing.T) {
	e := newEngine(t, layoutConfig([]string{
		"RGBYP",
		"GBYPR",
		"BY-RG",
		"YPRGB",
		"PRGBY",
	}))

	res := e.HandleTileClick(2, 2)
	if len(res.ClickedGroup) != 5 {
		t.Errorf("ClickedGroup = %v, expected the whole row", res.ClickedGroup)
	}
	if len(res.Removed) != 5 || res.Points != 100 {
		t.Errorf("removed %d for %d points, expected 5 for 100", len(res.Removed), res.Points)
	}
	if res.ChainLength != 0 {
		t.Errorf("ChainLength = %d, expected 0", res.ChainLength)
	}
	if len(res.ExplosionCenters) != 1 || res.ExplosionCenters[0] != core.P(2, 2) {
		t.Errorf("ExplosionCenters = %v, expected [(2,2)]", res.ExplosionCenters)
	}
	if res.MovesLeft != 9 {
		t.Errorf("MovesLeft = %d, expected 9", res.MovesLeft)
	}
	// Row 2 cleared: rows 0-1 fall by one in every column.
	if len(res.MovedTiles) != 10 {
		t.Errorf("len(MovedTiles) = %d, expected 10", len(res.MovedTiles))
	}
	assertFull(t, e)
}

func TestClickChainReaction(t *testing.T) {
	e := newEngine(t, layoutConfig([]string{
		"R-R|R",
		"GBGBG",
		"BGBGB",
		"GBGBG",
		"BGBGB",
	}))

	res := e.HandleTileClick(0, 1)
	if res.ChainLength != 1 {
		t.Errorf("ChainLength = %d, expected 1", res.ChainLength)
	}
	if res.Points != 200 {
		t.Errorf("Points = %d, expected 200", res.Points)
	}
	if len(res.Removed) != 9 {
		t.Errorf("len(Removed) = %d, expected 9", len(res.Removed))
	}
	expected := []core.Position{core.P(0, 1), core.P(0, 3)}
	if len(res.ExplosionCenters) != 2 || res.ExplosionCenters[0] != expected[0] || res.ExplosionCenters[1] != expected[1] {
		t.Errorf("ExplosionCenters = %v, expected %v", res.ExplosionCenters, expected)
	}
	assertFull(t, e)
}

func TestWinCheckedBeforeLoss(t *testing.T) {
	cfg := layoutConfig(redRow)
	cfg.TargetScore = 60
	cfg.TotalMoves = 1
	e := newEngine(t, cfg)

	res := e.HandleTileClick(0, 0)
	if res.State != engine.StateWon || e.State() != engine.StateWon {
		t.Errorf("State = %v, expected won", res.State)
	}
	if res.MovesLeft != 0 {
		t.Errorf("MovesLeft = %d, expected 0", res.MovesLeft)
	}
}

func TestLossWhenMovesRunOut(t *testing.T) {
	cfg := layoutConfig(redRow)
	cfg.TotalMoves = 1
	e := newEngine(t, cfg)

	res := e.HandleTileClick(0, 0)
	if res.State != engine.StateLost {
		t.Errorf("State = %v, expected lost", res.State)
	}

	// Terminal states ignore further input.
	score := e.Score()
	if next := e.HandleTileClick(0, 2); next.Applied {
		t.Error("click after game over was applied")
	}
	if e.ActivateBooster(booster.KindBomb) {
		t.Error("ActivateBooster() after game over = true")
	}
	if e.Score() != score || e.State() != engine.StateLost {
		t.Error("terminal state changed")
	}
	if e.Hint() != nil {
		t.Error("Hint() after game over should be nil")
	}
}

func TestBombBooster(t *testing.T) {
	e := newEngine(t, layoutConfig(redRow))

	if !e.ActivateBooster(booster.KindBomb) {
		t.Fatal("ActivateBooster(bomb) = false")
	}
	res := e.HandleBoosterClick(2, 2)
	if !res.Applied {
		t.Fatal("bomb was not applied")
	}
	if len(res.Removed) != 9 || res.Points != 9 {
		t.Errorf("removed %d for %d points, expected 9 for 9", len(res.Removed), res.Points)
	}
	if e.MovesLeft() != 10 {
		t.Errorf("MovesLeft() = %d, boosters must not spend moves", e.MovesLeft())
	}
	if e.BoosterCounts()[booster.KindBomb] != 2 {
		t.Errorf("bomb count = %d, expected 2", e.BoosterCounts()[booster.KindBomb])
	}
	if _, ok := e.ActiveBooster(); ok {
		t.Error("bomb should be disarmed after use")
	}
	assertFull(t, e)
}

func TestBombTriggersSuperTiles(t *testing.T) {
	e := newEngine(t, layoutConfig([]string{
		"RGBYP",
		"GBYPR",
		"BYP-G",
		"YPRGB",
		"PRGBY",
	}))

	e.ActivateBooster(booster.KindBomb)
	res := e.HandleBoosterClick(2, 2)

	if res.Points != 109 {
		t.Errorf("Points = %d, expected 109", res.Points)
	}
	if len(res.Removed) != 11 {
		t.Errorf("len(Removed) = %d, expected 11", len(res.Removed))
	}
	if res.ChainLength != 1 {
		t.Errorf("ChainLength = %d, expected 1", res.ChainLength)
	}
	if len(res.ExplosionCenters) != 2 || res.ExplosionCenters[1] != core.P(2, 3) {
		t.Errorf("ExplosionCenters = %v, expected [(2,2) (2,3)]", res.ExplosionCenters)
	}
	if e.Score() != 109 {
		t.Errorf("Score() = %d, expected 109", e.Score())
	}
}

func TestSwapBooster(t *testing.T) {
	e := newEngine(t, layoutConfig(redRow))

	e.ActivateBooster(booster.KindSwap)
	first := e.HandleBoosterClick(0, 0)
	if first.Applied || !first.NeedsSecondClick {
		t.Fatalf("first click = %+v, expected pending", first)
	}
	if pending, ok := e.PendingSwap(); !ok || pending != core.P(0, 0) {
		t.Errorf("PendingSwap() = %v, %v", pending, ok)
	}

	second := e.HandleBoosterClick(1, 0)
	if !second.Applied || second.Swapped == nil {
		t.Fatalf("second click = %+v, expected swap", second)
	}
	if second.Points != 5 || e.Score() != 5 {
		t.Errorf("points = %d, score = %d, expected 5", second.Points, e.Score())
	}
	top, _ := e.Tile(0, 0)
	below, _ := e.Tile(1, 0)
	if top.Variant != core.Regular(core.ColorGreen) || below.Variant != core.Regular(core.ColorRed) {
		t.Errorf("tiles = %v/%v, expected green/red", top.Variant, below.Variant)
	}
	if e.MovesLeft() != 10 {
		t.Errorf("MovesLeft() = %d, expected 10", e.MovesLeft())
	}
	if e.BoosterCounts()[booster.KindSwap] != 2 {
		t.Errorf("swap count = %d, expected 2", e.BoosterCounts()[booster.KindSwap])
	}
}

func TestBoosterClickWithoutArming(t *testing.T) {
	e := newEngine(t, layoutConfig(redRow))
	if res := e.HandleBoosterClick(0, 0); res.Applied || res.NeedsSecondClick {
		t.Errorf("HandleBoosterClick() = %+v, expected zero result", res)
	}

	e.ActivateBooster(booster.KindBomb)
	e.DeactivateBooster()
	if res := e.HandleBoosterClick(0, 0); res.Applied {
		t.Error("deactivated booster was applied")
	}
	if e.BoosterCounts()[booster.KindBomb] != 3 {
		t.Error("deactivating spent a bomb")
	}
}

func TestRequestShuffle(t *testing.T) {
	cfg := layoutConfig(redRow)
	cfg.MaxShuffles = 1
	e := newEngine(t, cfg)

	res := e.RequestShuffle()
	if !res.Shuffled || res.Reason != engine.ShuffleManual {
		t.Errorf("RequestShuffle() = %+v, expected manual shuffle", res)
	}
	if e.ShufflesLeft() != 0 {
		t.Errorf("ShufflesLeft() = %d, expected 0", e.ShufflesLeft())
	}

	before := e.Snapshot().Board
	if again := e.RequestShuffle(); again.Shuffled {
		t.Error("shuffle with empty budget was applied")
	}
	after := e.Snapshot().Board
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("row %d changed with empty budget", i)
		}
	}
}

func TestShuffleNeededAndResolve(t *testing.T) {
	cfg := layoutConfig([]string{"RRB"})
	cfg.MaxShuffles = 1
	// Refill (0,0) green and (0,1) yellow, leaving no pairs.
	rng := &seqRand{vals: []int{int(core.ColorGreen), int(core.ColorYellow)}}
	e := newEngine(t, cfg, engine.WithRand(rng))

	res := e.HandleTileClick(0, 0)
	if !res.Applied {
		t.Fatal("click was rejected")
	}
	if !res.ShuffleNeeded || !e.ShuffleNeeded() {
		t.Fatal("expected shuffle-needed signal")
	}

	shuffle := e.ResolveShuffle()
	if !shuffle.Shuffled || shuffle.Reason != engine.ShuffleAuto {
		t.Errorf("ResolveShuffle() = %+v, expected auto shuffle", shuffle)
	}
	// Three distinct colors can never pair, so the signal comes back.
	if shuffle.Playable || !e.ShuffleNeeded() {
		t.Error("board should still need a shuffle")
	}

	final := e.ResolveShuffle()
	if final.Shuffled {
		t.Error("shuffle applied without budget")
	}
	if e.State() != engine.StateLost {
		t.Errorf("State() = %v, expected lost", e.State())
	}
}

func TestResolveShuffleWithoutSignal(t *testing.T) {
	e := newEngine(t, layoutConfig(redRow))
	if res := e.ResolveShuffle(); res.Shuffled {
		t.Error("ResolveShuffle() shuffled without a pending signal")
	}
	if e.ShufflesLeft() != 3 {
		t.Errorf("ShufflesLeft() = %d, expected 3", e.ShufflesLeft())
	}
}

func TestNotifierOncePerAction(t *testing.T) {
	var events []engine.Event
	n := engine.NotifierFunc(func(ev engine.Event) {
		events = append(events, ev)
	})
	e := newEngine(t, layoutConfig(redRow), engine.WithRand(zeroRand{}), engine.WithNotifier(n))

	e.HandleTileClick(2, 2) // rejected
	if len(events) != 0 {
		t.Fatalf("rejected click sent %d events", len(events))
	}

	e.HandleTileClick(0, 0)
	e.ActivateBooster(booster.KindBomb)
	e.HandleBoosterClick(3, 3)
	e.RequestShuffle()
	if err := e.Reset(layoutConfig(redRow)); err != nil {
		t.Fatal(err)
	}

	expected := []engine.EventKind{engine.EventMove, engine.EventBooster, engine.EventShuffle, engine.EventReset}
	if len(events) != len(expected) {
		t.Fatalf("got %d events, expected %d", len(events), len(expected))
	}
	for i, kind := range expected {
		if events[i].Kind != kind {
			t.Errorf("events[%d].Kind = %v, expected %v", i, events[i].Kind, kind)
		}
	}
	if events[0].Move == nil || events[0].Score != events[0].Move.Points {
		t.Errorf("move event = %+v", events[0])
	}
}

func TestResetRestoresBudgets(t *testing.T) {
	e := newEngine(t, layoutConfig(redRow))
	e.HandleTileClick(0, 0)
	e.ActivateBooster(booster.KindBomb)
	e.HandleBoosterClick(2, 2)
	e.RequestShuffle()

	if err := e.Reset(layoutConfig(redRow)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	snap := e.Snapshot()
	if snap.Score != 0 || snap.MovesLeft != 10 || snap.ShufflesLeft != 3 {
		t.Errorf("Snapshot() = %+v, expected fresh counters", snap)
	}
	if snap.Boosters[booster.KindBomb] != 3 {
		t.Errorf("bombs = %d, expected 3", snap.Boosters[booster.KindBomb])
	}
	if snap.Board[0] != "RRRRR" {
		t.Errorf("Board[0] = %q, expected layout restored", snap.Board[0])
	}
	stats := e.Stats()
	if stats.MovesUsed != 0 || stats.BoostersUsed != 0 || stats.ShufflesUsed != 0 {
		t.Errorf("Stats() = %+v, expected zero", stats)
	}

	bad := layoutConfig(redRow)
	bad.TotalMoves = 0
	if err := e.Reset(bad); !errors.Is(err, engine.ErrInvalidConfig) {
		t.Errorf("Reset(bad) error = %v, expected ErrInvalidConfig", err)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	play := func() engine.Snapshot {
		cfg := engine.DefaultConfig()
		cfg.Seed = 1234
		e, err := engine.New(cfg)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 10; i++ {
			hint := e.Hint()
			if len(hint) == 0 {
				e.ResolveShuffle()
				continue
			}
			e.HandleTileClick(hint[0].Row, hint[0].Col)
		}
		return e.Snapshot()
	}

	a, b := play(), play()
	if a.Score != b.Score || a.MovesLeft != b.MovesLeft {
		t.Errorf("runs diverged: %d/%d vs %d/%d", a.Score, a.MovesLeft, b.Score, b.MovesLeft)
	}
	for i := range a.Board {
		if a.Board[i] != b.Board[i] {
			t.Errorf("row %d diverged: %q vs %q", i, a.Board[i], b.Board[i])
		}
	}
}

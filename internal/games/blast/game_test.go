package blast

import (
	"os"
	"path/filepath"
	"testing"

	platformcore "github.com/AKGMI/BlastGame/internal/core"
	"github.com/AKGMI/BlastGame/internal/config"
	"github.com/AKGMI/BlastGame/internal/games/blast/booster"
	"github.com/AKGMI/BlastGame/internal/games/blast/engine"
	"github.com/AKGMI/BlastGame/internal/registry"
)

func runtimeConfig(seed int64) platformcore.RuntimeConfig {
	cfg := platformcore.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func newSmall(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.PresetSmall)
	g.Reset(runtimeConfig(seed))
	return g
}

func TestRegisteredModes(t *testing.T) {
	for _, id := range []string{"blast", "blast_small", "blast_big", "blast_campaign"} {
		t.Run(id, func(t *testing.T) {
			g, err := registry.Create(id)
			if err != nil {
				t.Fatalf("Create(%s) failed: %v", id, err)
			}
			if g.ID() != id {
				t.Errorf("ID() = %q, expected %q", g.ID(), id)
			}
		})
	}
}

func TestResetUsesPreset(t *testing.T) {
	g := newSmall(t, 1)

	e := g.Engine()
	if e.Rows() != 6 || e.Cols() != 6 {
		t.Errorf("board = %dx%d, expected 6x6", e.Rows(), e.Cols())
	}
	if e.TargetScore() != 300 || e.MovesLeft() != 15 || e.ShufflesLeft() != 1 {
		t.Errorf("rules = %d/%d/%d, expected 300/15/1", e.TargetScore(), e.MovesLeft(), e.ShufflesLeft())
	}
	if g.cursor.Row != 3 || g.cursor.Col != 3 {
		t.Errorf("cursor = %v, expected (3,3)", g.cursor)
	}
	if st := g.State(); st.GameOver || st.Paused || st.Score != 0 {
		t.Errorf("State() = %+v, expected fresh game", st)
	}
}

func TestResetDefaultReadsEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BLAST_ROWS", "5")
	t.Setenv("BLAST_COLS", "7")

	g := New(config.PresetDefault)
	g.Reset(runtimeConfig(3))
	if g.Engine().Rows() != 5 || g.Engine().Cols() != 7 {
		t.Errorf("board = %dx%d, expected 5x7", g.Engine().Rows(), g.Engine().Cols())
	}
}

func TestDifficultyPreset(t *testing.T) {
	SetDifficultyPreset(config.DifficultyFixed)
	t.Cleanup(func() { SetDifficultyPreset(config.DifficultyNormal) })

	g := newSmall(t, 1)
	counts := g.Engine().BoosterCounts()
	if counts[booster.KindBomb] != 0 || counts[booster.KindSwap] != 0 {
		t.Errorf("BoosterCounts() = %v, expected none", counts)
	}
}

func TestCursorClamped(t *testing.T) {
	g := newSmall(t, 1)
	for i := 0; i < 10; i++ {
		g.Step(frame(platformcore.ActionLeft, platformcore.ActionUp))
	}
	if g.cursor.Row != 0 || g.cursor.Col != 0 {
		t.Errorf("cursor = %v, expected (0,0)", g.cursor)
	}
	for i := 0; i < 10; i++ {
		g.Step(frame(platformcore.ActionRight, platformcore.ActionDown))
	}
	if g.cursor.Row != 5 || g.cursor.Col != 5 {
		t.Errorf("cursor = %v, expected (5,5)", g.cursor)
	}
}

func TestConfirmPlaysTile(t *testing.T) {
	g := newSmall(t, 11)
	hint := g.Engine().Hint()
	if len(hint) == 0 {
		t.Fatal("new board has no hint")
	}
	g.cursor = hint[0]

	g.Step(frame(platformcore.ActionConfirm))

	if g.Engine().MovesLeft() != 14 {
		t.Errorf("MovesLeft() = %d, expected 14", g.Engine().MovesLeft())
	}
	if g.State().Score == 0 {
		t.Error("score did not increase")
	}
	if len(g.flash) == 0 || g.flashLeft != flashTicks {
		t.Error("removed cells should flash")
	}
}

func TestMouseClickPlaysTile(t *testing.T) {
	g := newSmall(t, 11)
	hint := g.Engine().Hint()
	rect := g.boardGrid().CellRect(hint[0].Row, hint[0].Col)

	in := platformcore.NewInputFrame()
	in.SetClick(rect.X+1, rect.Y)
	g.Step(in)

	if g.cursor != hint[0] {
		t.Errorf("cursor = %v, expected %v", g.cursor, hint[0])
	}
	if g.Engine().MovesLeft() != 14 {
		t.Errorf("MovesLeft() = %d, expected 14", g.Engine().MovesLeft())
	}
}

func TestBoosterToggle(t *testing.T) {
	g := newSmall(t, 1)

	g.Step(frame(platformcore.ActionBomb))
	if kind, ok := g.Engine().ActiveBooster(); !ok || kind != booster.KindBomb {
		t.Fatalf("ActiveBooster() = %v, %v, expected bomb", kind, ok)
	}
	if g.toast == "" {
		t.Error("arming a booster should show its prompt")
	}

	g.Step(frame(platformcore.ActionBomb))
	if _, ok := g.Engine().ActiveBooster(); ok {
		t.Error("second press should disarm the bomb")
	}

	g.Step(frame(platformcore.ActionSwap))
	g.Step(frame(platformcore.ActionCancel))
	if _, ok := g.Engine().ActiveBooster(); ok {
		t.Error("cancel should disarm the swap")
	}

	g.Step(frame(platformcore.ActionBomb))
	g.Step(frame(platformcore.ActionConfirm))
	if g.Engine().BoosterCounts()[booster.KindBomb] != 2 {
		t.Error("bomb was not used")
	}
	if g.Engine().MovesLeft() != 15 {
		t.Errorf("MovesLeft() = %d, boosters must not spend moves", g.Engine().MovesLeft())
	}
}

func TestIdleHint(t *testing.T) {
	g := newSmall(t, 1)
	for i := 0; i < hintAfterTicks-1; i++ {
		g.Step(frame())
	}
	if g.hint != nil {
		t.Fatal("hint shown too early")
	}
	g.Step(frame())
	if len(g.hint) == 0 {
		t.Fatal("hint not shown after idle period")
	}

	g.Step(frame(platformcore.ActionLeft))
	if g.hint != nil {
		t.Error("input should clear the hint")
	}
}

func TestAutoShuffleDelay(t *testing.T) {
	g := newSmall(t, 1)
	g.afterAction(engine.MoveResult{State: engine.StatePlaying, ShuffleNeeded: true})

	if g.Snapshot().State != StateShuffling {
		t.Fatalf("Snapshot().State = %s, expected shuffling", g.Snapshot().State)
	}
	// Input is ignored while the shuffle is pending.
	g.Step(frame(platformcore.ActionBomb))
	if _, ok := g.Engine().ActiveBooster(); ok {
		t.Error("booster armed during pending shuffle")
	}
	for i := 1; i < autoShuffleTicks; i++ {
		g.Step(frame())
	}
	if g.shuffleIn != 0 || g.Snapshot().State != StatePlaying {
		t.Errorf("shuffleIn = %d, expected the timer to expire", g.shuffleIn)
	}
}

func TestPauseFreezesInput(t *testing.T) {
	g := newSmall(t, 1)
	g.Step(frame(platformcore.ActionPause))
	if !g.State().Paused {
		t.Fatal("State().Paused = false after pause")
	}

	cursor := g.cursor
	g.Step(frame(platformcore.ActionLeft))
	if g.cursor != cursor {
		t.Error("cursor moved while paused")
	}

	g.Step(frame(platformcore.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestTooSmallWindow(t *testing.T) {
	g := New(config.PresetSmall)
	cfg := runtimeConfig(1)
	cfg.ScreenW, cfg.ScreenH = 20, 8
	g.Reset(cfg)

	if g.Snapshot().State != StatePausedSmall || !g.State().Paused {
		t.Errorf("Snapshot().State = %s, expected paused_small_window", g.Snapshot().State)
	}

	screen := platformcore.NewScreen(20, 8)
	g.Render(screen)
	if screen.Row(4) == screen.Row(0) {
		t.Error("too-small message not rendered")
	}

	score := g.Engine().Score()
	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("after Resize() State = %s, expected playing", g.Snapshot().State)
	}
	if g.Engine().Score() != score || g.Engine().MovesLeft() != 15 {
		t.Error("Resize() restarted the round")
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	play := func() Snapshot {
		g := newSmall(t, 99)
		for i := 0; i < 5; i++ {
			if hint := g.Engine().Hint(); len(hint) > 0 {
				g.cursor = hint[0]
			}
			g.Step(frame(platformcore.ActionConfirm))
		}
		return g.Snapshot()
	}

	a, b := play(), play()
	if a.Engine.Score != b.Engine.Score {
		t.Errorf("scores diverged: %d vs %d", a.Engine.Score, b.Engine.Score)
	}
	for i := range a.Engine.Board {
		if a.Engine.Board[i] != b.Engine.Board[i] {
			t.Errorf("row %d diverged", i)
		}
	}
}

func TestRenderDrawsBoard(t *testing.T) {
	g := newSmall(t, 1)
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	grid := g.boardGrid()
	rect := grid.CellRect(g.cursor.Row, g.cursor.Col)
	if screen.Get(rect.X, rect.Y) != '[' || screen.Get(rect.Right()-1, rect.Y) != ']' {
		t.Errorf("cursor brackets missing, row = %q", screen.Row(rect.Y))
	}

	tile, _ := g.Engine().Tile(0, 0)
	glyph, color := tileGlyph(tile.Variant)
	first := grid.CellRect(0, 0)
	cell := screen.GetCell(first.X+cellW/2, first.Y)
	if cell.Rune != glyph || cell.Color != color {
		t.Errorf("cell (0,0) = %+v, expected %q in %v", cell, glyph, color)
	}
}

func writeLevel(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestCampaignAdvancesLevels(t *testing.T) {
	dir := t.TempDir()
	level := "name: Tiny\nrules: {target_score: 20, total_moves: 5}\nlayout: [\"RR\", \"GB\"]\n"
	writeLevel(t, dir, "a.yaml", "id: a\n"+level)
	writeLevel(t, dir, "b.yaml", "id: b\n"+level)
	SetLevelsDir(dir)
	t.Cleanup(func() { SetLevelsDir("") })

	g := NewCampaign()
	g.Reset(runtimeConfig(5))
	if g.level.ID != "a" {
		t.Fatalf("level = %q, expected a", g.level.ID)
	}

	click := func() {
		rect := g.boardGrid().CellRect(0, 0)
		in := platformcore.NewInputFrame()
		in.SetClick(rect.X+1, rect.Y)
		g.Step(in)
	}

	click()
	if !g.levelCleared {
		t.Fatal("first level should be cleared")
	}
	if st := g.State(); st.GameOver || !st.Paused {
		t.Errorf("State() = %+v, expected paused between levels", st)
	}

	cleared := g.DrainRounds()
	if len(cleared) != 1 || cleared[0].Level != "a" || !cleared[0].Won || cleared[0].Score != 20 {
		t.Errorf("DrainRounds() = %+v, expected one won round for a", cleared)
	}
	if again := g.DrainRounds(); len(again) != 0 {
		t.Errorf("second DrainRounds() = %+v, expected empty", again)
	}

	for i := 0; i < levelClearTicks; i++ {
		g.Step(frame())
	}
	if g.level.ID != "b" {
		t.Fatalf("level = %q, expected b", g.level.ID)
	}
	if g.State().Score != 20 {
		t.Errorf("Score = %d, expected 20 carried over", g.State().Score)
	}

	click()
	st := g.State()
	if !st.GameOver || !st.Won || st.Score != 40 {
		t.Errorf("State() = %+v, expected won with 40", st)
	}

	round := g.Round()
	if round.Level != "b" || !round.Won || round.Score != 20 || round.MovesUsed != 1 {
		t.Errorf("Round() = %+v", round)
	}
	if pending := g.DrainRounds(); len(pending) != 0 {
		t.Errorf("DrainRounds() = %+v, the last level is reported by Round()", pending)
	}
}

func TestCampaignStartLevel(t *testing.T) {
	SetStartLevel("03")
	t.Cleanup(func() { SetStartLevel("") })

	g := NewCampaign()
	g.Reset(runtimeConfig(1))
	if g.level.ID != "03" || g.levelIdx != 2 {
		t.Errorf("level = %q (index %d), expected 03 at 2", g.level.ID, g.levelIdx)
	}
	if g.Snapshot().Mode != string(ModeCampaign) {
		t.Errorf("Mode = %s, expected campaign", g.Snapshot().Mode)
	}
}

func TestSelectLevelOverridesStartLevel(t *testing.T) {
	SetStartLevel("03")
	t.Cleanup(func() { SetStartLevel("") })

	g := NewCampaign()
	g.SelectLevel("05")
	g.Reset(runtimeConfig(1))
	if g.level.ID != "05" || g.levelIdx != 4 {
		t.Errorf("level = %q (index %d), expected 05 at 4", g.level.ID, g.levelIdx)
	}

	g.SelectLevel("missing")
	g.Reset(runtimeConfig(1))
	if g.levelIdx != 0 {
		t.Errorf("levelIdx = %d for unknown level, expected 0", g.levelIdx)
	}
}

func TestStartLevelFallsBackToDefaults(t *testing.T) {
	g := newSmall(t, 2)
	g.level.Layout = []string{"RX"}
	g.startLevel()

	if g.Engine() == nil {
		t.Fatal("Engine() = nil after a failed level start")
	}
	def := config.DefaultBlastConfig()
	if g.Engine().Rows() != def.Board.Rows || g.Engine().Cols() != def.Board.Cols {
		t.Errorf("board = %dx%d, expected default %dx%d",
			g.Engine().Rows(), g.Engine().Cols(), def.Board.Rows, def.Board.Cols)
	}
	if len(g.level.Layout) != 0 {
		t.Errorf("level layout = %v, expected the default level", g.level.Layout)
	}
	if st := g.State(); st.GameOver {
		t.Errorf("State() = %+v, expected a playable round", st)
	}
}

// Package blast provides the Blast tile-matching puzzle for the arcade.
// It drives the rules engine from platform input: a cursor or the mouse
// picks tiles, number keys arm boosters, and timers show idle hints and
// resolve shuffles when the board runs out of moves.
package blast

import (
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	platformcore "github.com/AKGMI/BlastGame/internal/core"
	"github.com/AKGMI/BlastGame/internal/config"
	"github.com/AKGMI/BlastGame/internal/games/blast/booster"
	"github.com/AKGMI/BlastGame/internal/games/blast/core"
	"github.com/AKGMI/BlastGame/internal/games/blast/engine"
	"github.com/AKGMI/BlastGame/internal/games/blast/levels"
	"github.com/AKGMI/BlastGame/internal/registry"
)

// Mode selects where a game takes its rules from.
type Mode string

const (
	ModeClassic  Mode = "classic"  // config file, environment and presets
	ModeCampaign Mode = "campaign" // level catalog, played in order
)

// Timings in ticks at the default 60 ticks per second.
const (
	hintAfterTicks   = 600 // idle time before a hint appears
	autoShuffleTicks = 60  // delay between "no moves" and the automatic shuffle
	flashTicks       = 8   // how long removed cells stay highlighted
	toastTicks       = 120
	levelClearTicks  = 120
)

// Game implements registry.Game for Blast.
type Game struct {
	id     string
	title  string
	mode   Mode
	preset config.Preset

	eng      *engine.Engine
	level    levels.Level
	levels   []levels.Level
	levelIdx int
	levelID  string // per-instance start level, overrides startLevel
	seed     int64

	screenW int
	screenH int

	tick       uint64
	cursor     core.Position
	idleTicks  int
	hint       []core.Position
	flash      []core.Position
	flashLeft  int
	toast      string
	toastLeft  int
	shuffleIn  int // ticks until ResolveShuffle, 0 when none is pending
	clearTicks int

	campaignScore int // points banked from cleared campaign levels
	levelCleared  bool
	finished      []registry.Round // cleared levels not yet drained by the host
	paused        bool
	tooSmall      bool
}

// Package-level settings, applied on the next Reset.
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
	startLevel       string
	levelsDir        string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom rules file for classic games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty applied to every mode.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetStartLevel sets the campaign level to start from. Empty starts at the first level.
func SetStartLevel(id string) {
	startLevel = id
}

// SetLevelsDir loads the campaign from a directory instead of the built-in levels.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetLogger sets the logger that receives engine events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Logger returns the logger installed with SetLogger.
func Logger() *log.Logger {
	return logger
}

func init() {
	registry.Register("blast", func() registry.Game {
		return New(config.PresetDefault)
	})
	registry.Register("blast_small", func() registry.Game {
		return New(config.PresetSmall)
	})
	registry.Register("blast_big", func() registry.Game {
		return New(config.PresetBig)
	})
	registry.Register("blast_campaign", func() registry.Game {
		return NewCampaign()
	})
}

// New creates a classic game. The default preset reads the rules file.
func New(preset config.Preset) *Game {
	g := &Game{id: "blast", title: "Blast", mode: ModeClassic, preset: preset}
	switch preset {
	case config.PresetSmall:
		g.id, g.title = "blast_small", "Blast (Small)"
	case config.PresetBig:
		g.id, g.title = "blast_big", "Blast (Big)"
	}
	return g
}

// NewCampaign creates a game that plays the level catalog in order.
func NewCampaign() *Game {
	return &Game{id: "blast_campaign", title: "Blast Campaign", mode: ModeCampaign}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// SelectLevel sets the campaign level this instance starts from on the next
// Reset. Unknown IDs start from the first level.
func (g *Game) SelectLevel(id string) {
	g.levelID = id
}

// Reset starts a new game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.seed = cfg.Seed
	g.tick = 0
	g.paused = false
	g.campaignScore = 0
	g.finished = nil
	g.levelIdx = 0

	if g.mode == ModeCampaign {
		g.levels = loadCampaign()
		first := g.levelID
		if first == "" {
			first = startLevel
		}
		for i, lvl := range g.levels {
			if first != "" && lvl.ID == first {
				g.levelIdx = i
			}
		}
		g.level = g.levels[g.levelIdx]
	} else {
		g.level = g.classicLevel()
	}

	g.startLevel()
}

// classicLevel resolves the rules for classic modes. Broken config files are
// logged and replaced by the defaults so the game still starts.
func (g *Game) classicLevel() levels.Level {
	var (
		cfg config.BlastConfig
		err error
	)
	if g.preset == config.PresetDefault {
		cfg, err = config.LoadBlast(configPath)
	} else {
		cfg, err = config.PresetConfig(g.preset)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		logger.Error("invalid config, using defaults", "err", err)
		cfg = config.DefaultBlastConfig()
	}

	config.ApplyBlastPreset(&cfg, difficultyPreset)
	return levels.FromConfig(g.id, g.title, cfg)
}

// CampaignLevels returns the levels the campaign mode will play, in order,
// with the current difficulty preset applied.
func CampaignLevels() []levels.Level {
	return loadCampaign()
}

// loadCampaign loads the level catalog, falling back to a single default level.
func loadCampaign() []levels.Level {
	loader := levels.NewCampaignLoader()
	if levelsDir != "" {
		loader = levels.NewLoader(levelsDir)
	}

	all, err := loader.LoadAll()
	if err != nil || len(all) == 0 {
		logger.Error("no campaign levels, using defaults", "dir", levelsDir, "err", err)
		return []levels.Level{levels.FromConfig("default", "Default", config.DefaultBlastConfig())}
	}

	for i := range all {
		all[i] = withDifficulty(all[i], difficultyPreset)
	}
	return all
}

func withDifficulty(lvl levels.Level, preset config.DifficultyPreset) levels.Level {
	cfg := config.BlastConfig{Rules: lvl.Rules, Boosters: lvl.Boosters}
	config.ApplyBlastPreset(&cfg, preset)
	lvl.Rules = cfg.Rules
	lvl.Boosters = cfg.Boosters
	return lvl
}

// startLevel builds a fresh engine for g.level and clears transient UI state.
func (g *Game) startLevel() {
	opts := []engine.Option{engine.WithNotifier(engine.NotifierFunc(g.logEvent))}

	eng, err := engine.New(g.level.EngineConfig(g.seed+int64(g.levelIdx)), opts...)
	if err != nil {
		logger.Error("cannot start level, using defaults", "level", g.level.ID, "err", err)
		fallback := levels.FromConfig(g.level.ID, g.level.Name, config.DefaultBlastConfig())
		eng, err = engine.New(fallback.EngineConfig(g.seed), opts...)
		if err != nil {
			// Keep the running engine; only the very first start can leave none.
			logger.Error("cannot start default level", "level", g.level.ID, "err", err)
			if g.eng != nil {
				return
			}
			if eng, err = engine.New(engine.DefaultConfig(), opts...); err != nil {
				panic("blast: default engine config rejected: " + err.Error())
			}
		}
		g.level = fallback
	}
	g.eng = eng

	g.cursor = core.P(eng.Rows()/2, eng.Cols()/2)
	g.idleTicks = 0
	g.hint = nil
	g.flash = nil
	g.flashLeft = 0
	g.toast = ""
	g.toastLeft = 0
	g.shuffleIn = 0
	g.clearTicks = 0
	g.levelCleared = false
	g.checkScreenSize()

	logger.Info("level started", "game", g.id, "level", g.level.ID,
		"size", g.level.Rows*g.level.Cols, "target", eng.TargetScore(), "moves", eng.TotalMoves())
}

// Resize adapts the layout to a new terminal size without restarting the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.eng != nil {
		g.checkScreenSize()
	}
}

// checkScreenSize flags terminals too small for the board and HUD.
func (g *Game) checkScreenSize() {
	minW := g.eng.Cols()*cellW + 2
	if minW < 40 {
		minW = 40
	}
	minH := g.eng.Rows()*cellH + hudHeight + footerHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.tickTimers()

	if g.levelCleared {
		g.clearTicks++
		if g.clearTicks >= levelClearTicks {
			g.advanceLevel()
		}
		return platformcore.StepResult{State: g.State()}
	}

	if g.eng.State().IsTerminal() {
		return platformcore.StepResult{State: g.State()}
	}

	if g.shuffleIn > 0 {
		g.shuffleIn--
		if g.shuffleIn == 0 {
			g.resolveShuffle()
		}
		return platformcore.StepResult{State: g.State()}
	}

	if g.handleInput(in) {
		g.idleTicks = 0
		g.hint = nil
	} else {
		g.idleTicks++
		if g.idleTicks >= hintAfterTicks && g.hint == nil {
			g.hint = g.eng.Hint()
		}
	}

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) tickTimers() {
	if g.flashLeft > 0 {
		g.flashLeft--
		if g.flashLeft == 0 {
			g.flash = nil
		}
	}
	if g.toastLeft > 0 {
		g.toastLeft--
		if g.toastLeft == 0 {
			g.toast = ""
		}
	}
}

// handleInput applies one frame of input. Returns true if the player did anything.
func (g *Game) handleInput(in platformcore.InputFrame) bool {
	acted := false

	if in.Click != nil {
		if row, col, ok := g.boardGrid().At(in.Click.X, in.Click.Y); ok {
			g.cursor = core.P(row, col)
			g.confirm()
			return true
		}
	}

	moves := []struct {
		action platformcore.Action
		dr, dc int
	}{
		{platformcore.ActionUp, -1, 0},
		{platformcore.ActionDown, 1, 0},
		{platformcore.ActionLeft, 0, -1},
		{platformcore.ActionRight, 0, 1},
	}
	for _, m := range moves {
		if in.Has(m.action) {
			g.moveCursor(m.dr, m.dc)
			acted = true
		}
	}

	switch {
	case in.Has(platformcore.ActionBomb):
		g.toggleBooster(booster.KindBomb)
		acted = true
	case in.Has(platformcore.ActionSwap):
		g.toggleBooster(booster.KindSwap)
		acted = true
	case in.Has(platformcore.ActionCancel):
		g.eng.DeactivateBooster()
		acted = true
	case in.Has(platformcore.ActionShuffle):
		g.manualShuffle()
		acted = true
	case in.Has(platformcore.ActionHint):
		g.hint = g.eng.Hint()
		if g.hint == nil {
			g.showToast("No moves available")
		}
		return false
	case in.Has(platformcore.ActionConfirm):
		g.confirm()
		acted = true
	}

	return acted
}

func (g *Game) moveCursor(dr, dc int) {
	g.cursor.Row = platformcore.Clamp(g.cursor.Row+dr, 0, g.eng.Rows()-1)
	g.cursor.Col = platformcore.Clamp(g.cursor.Col+dc, 0, g.eng.Cols()-1)
}

func (g *Game) toggleBooster(kind booster.Kind) {
	if active, ok := g.eng.ActiveBooster(); ok && active == kind {
		g.eng.DeactivateBooster()
		g.showToast(kind.String() + " cancelled")
		return
	}
	if !g.eng.ActivateBooster(kind) {
		g.showToast("No " + kind.String() + " left")
		return
	}
	g.showToast(g.eng.BoosterHint())
}

func (g *Game) manualShuffle() {
	res := g.eng.RequestShuffle()
	if !res.Shuffled {
		g.showToast("No shuffles left")
		return
	}
	g.showToast("Shuffled")
	g.afterShuffle()
}

// confirm plays the tile under the cursor, through the armed booster if any.
func (g *Game) confirm() {
	row, col := g.cursor.Row, g.cursor.Col

	if _, armed := g.eng.ActiveBooster(); armed {
		res := g.eng.HandleBoosterClick(row, col)
		switch {
		case res.NeedsSecondClick:
			g.showToast(g.eng.BoosterHint())
		case res.Applied:
			g.flashCells(res.Removed)
			if res.Swapped != nil {
				g.flashCells([]core.Position{res.Swapped.First, res.Swapped.Second})
			}
			g.afterAction(res.MoveResult)
		}
		return
	}

	res := g.eng.HandleTileClick(row, col)
	if !res.Applied {
		return
	}
	g.flashCells(res.Removed)
	if res.CreatedSuperTile != nil {
		g.showToast(superName(res.CreatedSuperTile.Variant) + " created!")
	} else if res.ChainLength > 0 {
		g.showToast("Chain x" + strconv.Itoa(res.ChainLength+1) + "!")
	}
	g.afterAction(res)
}

// afterAction reacts to the state an action left behind.
func (g *Game) afterAction(res engine.MoveResult) {
	switch res.State {
	case engine.StateWon:
		if g.mode == ModeCampaign && g.levelIdx < len(g.levels)-1 {
			g.levelCleared = true
			g.clearTicks = 0
			g.finished = append(g.finished, g.Round())
		}
		return
	case engine.StateLost:
		return
	}
	if res.ShuffleNeeded {
		g.scheduleShuffle()
	}
}

func (g *Game) scheduleShuffle() {
	g.shuffleIn = autoShuffleTicks
	g.showToast("No moves! Shuffling...")
}

func (g *Game) resolveShuffle() {
	res := g.eng.ResolveShuffle()
	if !res.Shuffled {
		if g.eng.State() == engine.StateLost {
			g.showToast("No moves and no shuffles left")
		}
		return
	}
	g.afterShuffle()
}

// afterShuffle retries when the shuffle did not produce a playable board.
func (g *Game) afterShuffle() {
	g.hint = nil
	if g.eng.ShuffleNeeded() {
		g.scheduleShuffle()
	}
}

func (g *Game) advanceLevel() {
	g.campaignScore += g.eng.Score()
	g.levelIdx++
	g.level = g.levels[g.levelIdx]
	g.startLevel()
	g.showToast("Level " + g.level.Name)
}

func (g *Game) flashCells(ps []core.Position) {
	if len(ps) == 0 {
		return
	}
	g.flash = append(g.flash, ps...)
	g.flashLeft = flashTicks
}

func (g *Game) showToast(msg string) {
	g.toast = msg
	g.toastLeft = toastTicks
}

// logEvent forwards engine events to the package logger.
func (g *Game) logEvent(ev engine.Event) {
	l := logger.With("game", g.id, "level", g.level.ID)

	switch ev.Kind {
	case engine.EventMove:
		l.Debug("move", "removed", len(ev.Move.Removed), "points", ev.Move.Points,
			"chain", ev.Move.ChainLength, "score", ev.Score, "moves_left", ev.MovesLeft)
	case engine.EventBooster:
		l.Debug("booster", "kind", ev.Booster.Booster, "points", ev.Booster.Points, "score", ev.Score)
	case engine.EventShuffle:
		l.Debug("shuffle", "reason", ev.Shuffle.Reason, "playable", ev.Shuffle.Playable,
			"shuffles_left", ev.Shuffle.ShufflesLeft)
	case engine.EventReset:
		l.Debug("reset")
	}

	if ev.State.IsTerminal() {
		l.Info("game over", "state", ev.State, "score", ev.Score, "moves_left", ev.MovesLeft)
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := g.eng.State()
	won := st == engine.StateWon && !g.levelCleared
	return platformcore.GameState{
		Score:    g.campaignScore + g.eng.Score(),
		GameOver: st == engine.StateLost || won,
		Won:      won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// Round reports the current level for the round history.
func (g *Game) Round() registry.Round {
	stats := g.eng.Stats()
	return registry.Round{
		Level:        g.level.ID,
		Won:          g.eng.State() == engine.StateWon,
		Score:        g.eng.Score(),
		Target:       g.eng.TargetScore(),
		MovesUsed:    stats.MovesUsed,
		ShufflesUsed: stats.ShufflesUsed,
		BoostersUsed: stats.BoostersUsed,
	}
}

// DrainRounds returns the campaign levels cleared since the last call.
func (g *Game) DrainRounds() []registry.Round {
	out := g.finished
	g.finished = nil
	return out
}

// Engine exposes the rules engine, mainly for tests and tools.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

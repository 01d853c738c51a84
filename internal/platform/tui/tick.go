// Package tui hosts Blast modes in a terminal: the Bubble Tea game loop,
// key and mouse mapping, the mode and level pickers, the scoreboard and
// the SSH server that serves all of them to remote players.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the runtime config carries no usable FPS.
const defaultTickRate = 30

// TickMsg drives one Step of the running game.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at the given rate.
// Blast is turn based, so the tick only advances timers and
// flushes the input collected since the previous frame.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

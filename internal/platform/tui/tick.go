// Package tui hosts the game in a terminal with Bubble Tea: it schedules
// frames, maps keys and mouse taps to actions, draws snapshots and serves
// the game over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per display frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends the next frame message.
// It is the only scheduler of the game: every FrameMsg handler returns
// exactly one new frameCmd.
func frameCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/ledtris/game"
	"github.com/plus3/ledtris/loop"
)

// Held movement keys repeat after repeatDelay updates, then every
// repeatInterval updates.
const (
	repeatDelay    = 15
	repeatInterval = 3
)

// Keys reports keyboard state for the current update.
type Keys interface {
	JustPressed(key ebiten.Key) bool
	// Duration is how many updates key has been held, 0 when released.
	Duration(key ebiten.Key) int
}

type keyboard struct{}

func (keyboard) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }
func (keyboard) Duration(key ebiten.Key) int     { return inpututil.KeyPressDuration(key) }

// Controls is the engine surface the keyboard drives.
type Controls interface {
	Status() game.Status
	Start()
	Reset()
	TogglePause()
	Move(dx, dy int) bool
	Rotate() bool
}

// InputSystem turns key presses into engine commands at the start of every
// frame.
type InputSystem struct {
	Keys     Keys
	Engine   Controls
	Captured func() bool // true while another layer owns the keyboard

	ToggleDebug func()
	quit        bool
}

func repeating(duration int) bool {
	if duration == 1 {
		return true
	}
	return duration >= repeatDelay && (duration-repeatDelay)%repeatInterval == 0
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	if s.Keys.JustPressed(ebiten.KeyEscape) {
		s.quit = true
		return
	}
	if s.Keys.JustPressed(ebiten.KeyF1) && s.ToggleDebug != nil {
		s.ToggleDebug()
	}
	if s.Captured != nil && s.Captured() {
		return
	}

	switch s.Engine.Status() {
	case game.StatusIdle, game.StatusGameOver:
		if s.Keys.JustPressed(ebiten.KeyEnter) {
			s.Engine.Start()
		}
	case game.StatusRunning, game.StatusPaused:
		if s.Keys.JustPressed(ebiten.KeySpace) || s.Keys.JustPressed(ebiten.KeyP) {
			s.Engine.TogglePause()
		}
	}
	if s.Keys.JustPressed(ebiten.KeyR) {
		s.Engine.Reset()
		return
	}

	if s.Engine.Status() != game.StatusRunning {
		return
	}
	if s.Keys.JustPressed(ebiten.KeyUp) {
		s.Engine.Rotate()
	}
	if repeating(s.Keys.Duration(ebiten.KeyLeft)) {
		s.Engine.Move(-1, 0)
	}
	if repeating(s.Keys.Duration(ebiten.KeyRight)) {
		s.Engine.Move(1, 0)
	}
	if repeating(s.Keys.Duration(ebiten.KeyDown)) {
		s.Engine.Move(0, 1)
	}
}

// Quit reports whether Escape was pressed.
func (s *InputSystem) Quit() bool {
	return s.quit
}

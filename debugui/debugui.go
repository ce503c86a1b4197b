// Package debugui draws Dear ImGui inspector windows over the running game:
// engine state, spawn statistics and per-system frame timing.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/ledtris/game"
	"github.com/plus3/ledtris/loop"
)

// Engine is the part of game.Engine the inspector reads and drives.
type Engine interface {
	Snapshot() game.Snapshot
	Stats() *game.SpawnStats
	Start()
	TogglePause()
	Reset()
	Tick() bool
}

// Overlay owns every inspector window.
type Overlay struct {
	Visible bool

	engine      Engine
	timer       *loop.DropTimer
	scheduler   *loop.Scheduler
	performance *PerformanceStats
}

// NewOverlay creates a hidden overlay. timer and scheduler may be nil.
func NewOverlay(engine Engine, timer *loop.DropTimer, scheduler *loop.Scheduler) *Overlay {
	return &Overlay{
		engine:      engine,
		timer:       timer,
		scheduler:   scheduler,
		performance: NewPerformanceStats(120),
	}
}

func (o *Overlay) Toggle() {
	o.Visible = !o.Visible
}

// Render draws all windows. It must run between the backend's BeginFrame
// and EndFrame.
func (o *Overlay) Render(frame *loop.Frame) {
	o.performance.Record(frame.DeltaTime)
	if !o.Visible {
		return
	}

	renderEngineWindow(o.engine, o.timer)
	renderSpawnWindow(o.engine.Stats())
	o.performance.Render(o.scheduler)
}

// WantsKeyboard reports whether ImGui is consuming keyboard input.
func (o *Overlay) WantsKeyboard() bool {
	return o.Visible && imgui.CurrentIO().WantCaptureKeyboard()
}

// ImguiSystem queues the overlay's render for the end of the frame, after
// game systems have updated state.
type ImguiSystem struct {
	Overlay *Overlay
}

func (s *ImguiSystem) Execute(frame *loop.Frame) {
	frame.Defer(func() {
		s.Overlay.Render(frame)
	})
}

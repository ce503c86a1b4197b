package loop

import "time"

// DropTimer is a frame-driven interval timer. While started it accumulates
// each frame's delta time and calls its tick function every time the
// interval elapses. Start cancels any countdown in progress, so the time
// already waited is discarded whenever the interval changes.
//
// DropTimer satisfies game.Timer and System.
type DropTimer struct {
	tick     func()
	interval time.Duration
	elapsed  time.Duration
	running  bool

	restarts int
	fired    int64
}

// NewDropTimer creates a stopped timer that calls tick on every expiry.
func NewDropTimer(tick func()) *DropTimer {
	return &DropTimer{tick: tick}
}

// SetTick replaces the function called on expiry.
func (t *DropTimer) SetTick(tick func()) {
	t.tick = tick
}

// Start begins a new countdown at interval.
func (t *DropTimer) Start(interval time.Duration) {
	if interval <= 0 {
		panic("loop: DropTimer interval must be positive")
	}
	t.interval = interval
	t.elapsed = 0
	t.running = true
	t.restarts++
}

// Stop cancels the countdown.
func (t *DropTimer) Stop() {
	t.running = false
	t.elapsed = 0
}

// Advance adds dt to the countdown and fires once per elapsed interval. The
// tick function may call Start or Stop; the remaining time is then dropped.
func (t *DropTimer) Advance(dt time.Duration) {
	if !t.running {
		return
	}
	t.elapsed += dt

	for t.running && t.elapsed >= t.interval {
		t.elapsed -= t.interval
		restarts := t.restarts
		t.fired++
		if t.tick != nil {
			t.tick()
		}
		if t.restarts != restarts {
			// restarted from inside tick: the new countdown starts now
			t.elapsed = 0
			return
		}
	}
}

// Execute advances the timer by the frame's delta time.
func (t *DropTimer) Execute(frame *Frame) {
	t.Advance(frame.DeltaTime)
}

func (t *DropTimer) Running() bool           { return t.running }
func (t *DropTimer) Interval() time.Duration { return t.interval }
func (t *DropTimer) Elapsed() time.Duration  { return t.elapsed }

// Restarts counts calls to Start.
func (t *DropTimer) Restarts() int { return t.restarts }

// Fired counts expiries.
func (t *DropTimer) Fired() int64 { return t.fired }

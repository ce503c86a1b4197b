package game

import (
	"math/rand/v2"
	"time"
)

const (
	InitialDropInterval = 1000 * time.Millisecond
	MinDropInterval     = 100 * time.Millisecond
	DropIntervalStep    = 100 * time.Millisecond
	LinesPerLevel       = 10
)

// Status is the engine's position in its state machine.
type Status uint8

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game over"
	}
	return "unknown"
}

// Engine owns the board, the current and next pieces and the scoring state.
// It is not safe for concurrent use: commands and ticks must come from a
// single goroutine.
type Engine struct {
	board    *Board
	factory  *Factory
	rng      *rand.Rand
	timer    Timer
	store    HighScoreStore
	listener Listener

	current *Piece
	next    *Piece

	status   Status
	score    int
	level    int
	lines    int
	interval time.Duration

	highScore  int
	newRecord  bool
	persistErr error

	stats   *SpawnStats
	pending Event
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used to draw pieces.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithTimer sets the drop timer the engine starts and stops.
func WithTimer(t Timer) Option {
	if t == nil {
		panic("game: nil Timer")
	}
	return func(e *Engine) {
		e.timer = t
	}
}

// WithHighScoreStore sets where the high score is read from and written to.
func WithHighScoreStore(s HighScoreStore) Option {
	if s == nil {
		panic("game: nil HighScoreStore")
	}
	return func(e *Engine) {
		e.store = s
	}
}

// WithListener registers a change listener.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.listener = l
	}
}

// WithBoardSize overrides the default 10x20 board.
func WithBoardSize(width, height int) Option {
	return func(e *Engine) {
		e.board = NewBoard(width, height)
	}
}

// NewEngine creates an idle engine with a next piece ready. The high score is
// read from the store once; a failed read counts as no high score.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		timer:    nopTimer{},
		store:    nopStore{},
		level:    1,
		interval: InitialDropInterval,
		stats:    newSpawnStats(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.board == nil {
		e.board = NewBoard(DefaultWidth, DefaultHeight)
	}
	e.factory = NewFactory(e.rng, e.board.Width())

	if hs, err := e.store.Load(); err == nil && hs > 0 {
		e.highScore = hs
	}

	e.next = e.factory.CreatePiece()
	return e
}

// DropIntervalForLevel returns the gravity interval used at the given level.
func DropIntervalForLevel(level int) time.Duration {
	return max(MinDropInterval, InitialDropInterval-time.Duration(level-1)*DropIntervalStep)
}

func (e *Engine) emit(ev Event) {
	e.pending |= ev
}

func (e *Engine) notify() {
	ev := e.pending
	e.pending = 0
	if ev != 0 && e.listener != nil {
		e.listener(ev)
	}
}

func (e *Engine) resetCounters() {
	e.score = 0
	e.level = 1
	e.lines = 0
	e.interval = InitialDropInterval
	e.newRecord = false
	e.stats.reset()
	e.board.Clear()
}

// promote makes the next piece current and draws a new next piece.
func (e *Engine) promote() {
	if e.next == nil {
		e.next = e.factory.CreatePiece()
	}
	e.current = e.next
	e.stats.record(e.current.Variant)
	e.next = e.factory.CreatePiece()
	e.emit(EventBoardChanged | EventNextChanged)
}

// Start begins a new game from any state.
func (e *Engine) Start() {
	e.resetCounters()
	e.status = StatusRunning
	e.promote()
	e.timer.Start(e.interval)

	e.emit(EventBoardChanged | EventScoreChanged | EventStatusChanged)
	e.notify()
}

// Reset abandons the current game and returns to Idle with a fresh next
// piece.
func (e *Engine) Reset() {
	e.timer.Stop()
	e.resetCounters()
	e.status = StatusIdle
	e.current = nil
	e.next = e.factory.CreatePiece()

	e.emit(EventBoardChanged | EventNextChanged | EventScoreChanged | EventStatusChanged)
	e.notify()
}

// Pause stops the drop timer. It does nothing unless a game is running.
func (e *Engine) Pause() {
	if e.status != StatusRunning {
		return
	}
	e.timer.Stop()
	e.status = StatusPaused
	e.emit(EventStatusChanged)
	e.notify()
}

// Resume restarts the drop timer at the current interval. It does nothing
// unless the game is paused.
func (e *Engine) Resume() {
	if e.status != StatusPaused {
		return
	}
	e.status = StatusRunning
	e.timer.Start(e.interval)
	e.emit(EventStatusChanged)
	e.notify()
}

// TogglePause pauses a running game or resumes a paused one.
func (e *Engine) TogglePause() {
	switch e.status {
	case StatusRunning:
		e.Pause()
	case StatusPaused:
		e.Resume()
	}
}

// Move shifts the current piece by (dx, dy) if the target is free. It
// reports whether the piece moved.
func (e *Engine) Move(dx, dy int) bool {
	if e.status != StatusRunning || e.current == nil {
		return false
	}
	if !e.board.IsFree(e.current.Shape, e.current.Col+dx, e.current.Row+dy) {
		return false
	}

	e.current.Col += dx
	e.current.Row += dy
	e.emit(EventBoardChanged)
	e.notify()
	return true
}

// Rotate turns the current piece clockwise in place if the rotated shape
// fits at the same origin. There is no wall kick.
func (e *Engine) Rotate() bool {
	if e.status != StatusRunning || e.current == nil {
		return false
	}
	rotated := RotateShape(e.current.Shape)
	if !e.board.IsFree(rotated, e.current.Col, e.current.Row) {
		return false
	}

	e.current.Shape = rotated
	e.emit(EventBoardChanged)
	e.notify()
	return true
}

// Tick advances gravity by one row. When the piece cannot fall it is locked,
// full lines are cleared and the next piece is spawned. Tick reports whether
// the current piece moved down.
func (e *Engine) Tick() bool {
	defer e.notify()

	if e.status != StatusRunning || e.current == nil {
		return false
	}

	if e.board.IsFree(e.current.Shape, e.current.Col, e.current.Row+1) {
		e.current.Row++
		e.emit(EventBoardChanged)
		return true
	}

	e.board.Lock(e.current)
	e.applyClear(e.board.ClearFullLines())
	e.promote()

	if !e.board.IsFree(e.current.Shape, e.current.Col, e.current.Row) {
		e.gameOver()
	}
	return false
}

func (e *Engine) applyClear(n int) {
	if n <= 0 {
		return
	}

	e.score += n
	e.lines += n
	e.emit(EventScoreChanged)

	prev := e.level
	e.level = e.lines/LinesPerLevel + 1
	if e.level > prev {
		e.interval = DropIntervalForLevel(e.level)
		e.timer.Start(e.interval)
	}
}

func (e *Engine) gameOver() {
	e.status = StatusGameOver
	e.timer.Stop()

	e.newRecord = false
	if e.score > e.highScore {
		e.highScore = e.score
		e.newRecord = true
		e.persistErr = e.store.Save(e.highScore)
	}

	e.emit(EventStatusChanged | EventGameOver | EventScoreChanged)
}

func (e *Engine) Status() Status              { return e.status }
func (e *Engine) Running() bool               { return e.status == StatusRunning || e.status == StatusPaused }
func (e *Engine) Paused() bool                { return e.status == StatusPaused }
func (e *Engine) GameOver() bool              { return e.status == StatusGameOver }
func (e *Engine) Score() int                  { return e.score }
func (e *Engine) Level() int                  { return e.level }
func (e *Engine) Lines() int                  { return e.lines }
func (e *Engine) DropInterval() time.Duration { return e.interval }
func (e *Engine) HighScore() int              { return e.highScore }
func (e *Engine) NewRecord() bool             { return e.newRecord }
func (e *Engine) Stats() *SpawnStats          { return e.stats }

// SpawnCount returns how many pieces of variant id entered play this game.
func (e *Engine) SpawnCount(id VariantID) int { return e.stats.Count(id) }

// PersistErr returns the error from the last high score write, if any.
func (e *Engine) PersistErr() error { return e.persistErr }

// Board returns the engine's board. Callers must treat it as read-only.
func (e *Engine) Board() *Board { return e.board }

// Current returns a copy of the falling piece, or nil when none is in play.
func (e *Engine) Current() *Piece { return e.current.Clone() }

// Next returns a copy of the preview piece.
func (e *Engine) Next() *Piece { return e.next.Clone() }

// Snapshot is a point-in-time copy of everything a renderer needs.
type Snapshot struct {
	Status       Status
	Rows         [][]Cell
	Current      *Piece
	Next         *Piece
	Score        int
	Level        int
	Lines        int
	DropInterval time.Duration
	HighScore    int
	NewRecord    bool
}

// Snapshot copies the engine's observable state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Status:       e.status,
		Rows:         e.board.Rows(),
		Current:      e.Current(),
		Next:         e.Next(),
		Score:        e.score,
		Level:        e.level,
		Lines:        e.lines,
		DropInterval: e.interval,
		HighScore:    e.highScore,
		NewRecord:    e.newRecord,
	}
}

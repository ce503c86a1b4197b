package game

import "time"

// Timer drives Engine.Tick at a fixed interval. Start always cancels any
// running countdown and begins a new one; time already waited is lost.
type Timer interface {
	Start(interval time.Duration)
	Stop()
}

// HighScoreStore persists a single high score value.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Event tells a presentation layer which parts of the engine state changed.
type Event uint8

const (
	EventBoardChanged Event = 1 << iota
	EventNextChanged
	EventScoreChanged
	EventStatusChanged
	EventGameOver
)

var eventNames = []string{"board", "next", "score", "status", "gameover"}

// Has reports whether every bit in other is set in e.
func (e Event) Has(other Event) bool {
	return e&other == other
}

func (e Event) String() string {
	if e == 0 {
		return "none"
	}
	s := ""
	for i, name := range eventNames {
		if e&(1<<i) == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += name
	}
	return s
}

// Listener is called once after each command or tick with the set of
// changes it produced. It is not called when nothing changed.
type Listener func(Event)

type nopTimer struct{}

func (nopTimer) Start(time.Duration) {}
func (nopTimer) Stop()               {}

type nopStore struct{}

func (nopStore) Load() (int, error) { return 0, nil }
func (nopStore) Save(int) error     { return nil }

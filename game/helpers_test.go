package game

import (
	"errors"
	"math/rand/v2"
	"time"
)

type fakeTimer struct {
	running  bool
	interval time.Duration
	starts   []time.Duration
	stops    int
}

func (t *fakeTimer) Start(interval time.Duration) {
	t.running = true
	t.interval = interval
	t.starts = append(t.starts, interval)
}

func (t *fakeTimer) Stop() {
	t.running = false
	t.stops++
}

type fakeStore struct {
	value   int
	loadErr error
	saveErr error
	saves   []int
}

func (s *fakeStore) Load() (int, error) {
	if s.loadErr != nil {
		return 0, s.loadErr
	}
	return s.value, nil
}

func (s *fakeStore) Save(score int) error {
	s.saves = append(s.saves, score)
	if s.saveErr != nil {
		return s.saveErr
	}
	s.value = score
	return nil
}

var errUnavailable = errors.New("store unavailable")

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func filled(id VariantID) Cell {
	v := catalog[id]
	return Cell{Filled: true, Primary: v.Primary, Glow: v.Glow, Variant: id}
}

// fillRow occupies every column of row except the listed ones.
func fillRow(b *Board, row int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	for c := 0; c < b.Width(); c++ {
		if skip[c] {
			continue
		}
		b.Set(c, row, filled(Panel))
	}
}

func rowEmpty(b *Board, row int) bool {
	for c := 0; c < b.Width(); c++ {
		if b.At(c, row).Filled {
			return false
		}
	}
	return true
}

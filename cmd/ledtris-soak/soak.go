package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/plus3/ledtris/game"
	"github.com/plus3/ledtris/highscore"
	"github.com/plus3/ledtris/loop"
)

type action int

const (
	actionDrop action = iota
	actionLeft
	actionRight
	actionRotate
)

// Autopilot picks inputs the way an attract mode would: half the time it lets
// the piece fall, otherwise it presses a random key.
type Autopilot struct {
	rng *rand.Rand
}

func (a *Autopilot) next() action {
	if a.rng.Float32() < 0.5 {
		return actionDrop
	}
	return action(1 + a.rng.IntN(3))
}

// Play applies one input to engine.
func (a *Autopilot) Play(engine *game.Engine) {
	switch a.next() {
	case actionLeft:
		engine.Move(-1, 0)
	case actionRight:
		engine.Move(1, 0)
	case actionRotate:
		engine.Rotate()
	}
}

// Soak plays games back to back with a shared high score store.
type Soak struct {
	seed  uint64
	pilot *Autopilot
	store *highscore.MemoryStore
}

func NewSoak(seed uint64) *Soak {
	return &Soak{
		seed:  seed,
		pilot: &Autopilot{rng: rand.New(rand.NewPCG(seed, 1))},
		store: &highscore.MemoryStore{},
	}
}

// Run plays until ctx is done or limit games have ended (limit 0 means no
// limit). Each scheduler frame applies one input and one tick.
func (s *Soak) Run(ctx context.Context, limit int, report *Report) {
	engine := game.NewEngine(
		game.WithRand(rand.New(rand.NewPCG(s.seed, 2))),
		game.WithHighScoreStore(s.store),
	)

	scheduler := loop.NewScheduler()
	scheduler.RegisterNamed("Autopilot", loop.SystemFunc(func(*loop.Frame) {
		s.pilot.Play(engine)
	}))
	scheduler.RegisterNamed("Tick", loop.SystemFunc(func(*loop.Frame) {
		start := time.Now()
		engine.Tick()
		report.TickTime.Record(time.Since(start))
		report.Ticks++
	}))

	start := time.Now()
	engine.Start()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		scheduler.Once(0)
		if engine.GameOver() {
			report.record(engine, true)
			if limit > 0 && report.Games >= limit {
				break Loop
			}
			engine.Start()
		}
	}

	if engine.Running() {
		report.record(engine, false)
	}
	report.TotalTime = time.Since(start)
	report.Frames = scheduler.Stats().Frames
	report.Systems = scheduler.Stats().Systems
}

package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/ledtris/loop"
)

type countingSystem struct {
	ExecuteCount int
	TotalTime    time.Duration
	order        *[]string
	name         string
}

func (s *countingSystem) Execute(frame *loop.Frame) {
	s.ExecuteCount++
	s.TotalTime += frame.DeltaTime
	if s.order != nil {
		*s.order = append(*s.order, s.name)
	}
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		var order []string
		scheduler := loop.NewScheduler()

		input := &countingSystem{order: &order, name: "input"}
		gravity := &countingSystem{order: &order, name: "gravity"}
		scheduler.Register(input)
		scheduler.Register(gravity)

		scheduler.Once(time.Second)
		scheduler.Once(time.Second)

		if input.ExecuteCount != 2 || gravity.ExecuteCount != 2 {
			t.Errorf("expected both systems to execute twice, got %d and %d", input.ExecuteCount, gravity.ExecuteCount)
		}

		want := []string{"input", "gravity", "input", "gravity"}
		if len(order) != len(want) {
			t.Fatalf("expected order %v, got %v", want, order)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Errorf("expected order %v, got %v", want, order)
				break
			}
		}
	})

	t.Run("delta time", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		sys := &countingSystem{}
		scheduler.Register(sys)

		scheduler.Once(250 * time.Millisecond)
		scheduler.Once(500 * time.Millisecond)

		if sys.TotalTime != 750*time.Millisecond {
			t.Errorf("expected 750ms of frame time, got %s", sys.TotalTime)
		}
	})

	t.Run("deferred work runs after all systems", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		var log []string

		scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
			frame.Defer(func() { log = append(log, "deferred") })
			log = append(log, "first")
		}))
		scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
			log = append(log, "second")
		}))

		scheduler.Once(time.Millisecond)
		scheduler.Once(time.Millisecond)

		want := []string{"first", "second", "deferred", "first", "second", "deferred"}
		if len(log) != len(want) {
			t.Fatalf("expected %v, got %v", want, log)
		}
		for i := range want {
			if log[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, log)
			}
		}
	})

	t.Run("deferred work may defer more work", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		var log []string

		scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
			frame.Defer(func() {
				log = append(log, "outer")
				frame.Defer(func() { log = append(log, "inner") })
			})
		}))

		scheduler.Once(time.Millisecond)
		want := []string{"outer", "inner"}
		if len(log) != len(want) || log[0] != want[0] || log[1] != want[1] {
			t.Fatalf("expected %v, got %v", want, log)
		}

		scheduler.Once(time.Millisecond)
		if len(log) != 4 {
			t.Fatalf("expected nested work to run once per frame, got %v", log)
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		sys := &countingSystem{}
		scheduler.Register(sys)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if sys.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})

	t.Run("stats", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		scheduler.Register(&countingSystem{})
		scheduler.RegisterNamed("render", loop.SystemFunc(func(*loop.Frame) {}))
		scheduler.RegisterNamed("idle", loop.SystemFunc(func(*loop.Frame) {}))

		stats := scheduler.Stats()
		if stats.Systems[2].MinDuration != 0 {
			t.Errorf("expected zero min duration before any frame, got %s", stats.Systems[2].MinDuration)
		}

		scheduler.Once(time.Millisecond)
		scheduler.Once(time.Millisecond)

		stats = scheduler.Stats()
		if stats.SystemCount != 3 {
			t.Errorf("expected 3 systems, got %d", stats.SystemCount)
		}
		if stats.Frames != 2 {
			t.Errorf("expected 2 frames, got %d", stats.Frames)
		}
		if stats.TotalExecutions != 6 {
			t.Errorf("expected 6 executions, got %d", stats.TotalExecutions)
		}
		if stats.Systems[0].Name != "countingSystem" {
			t.Errorf("expected type name, got %q", stats.Systems[0].Name)
		}
		if stats.Systems[1].Name != "render" {
			t.Errorf("expected registered name, got %q", stats.Systems[1].Name)
		}
		for _, s := range stats.Systems {
			if s.MinDuration > s.MaxDuration {
				t.Errorf("%s: min %s above max %s", s.Name, s.MinDuration, s.MaxDuration)
			}
		}
	})
}

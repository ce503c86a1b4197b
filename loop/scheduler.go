// Package loop runs per-frame systems in order and turns frame time into
// game ticks.
package loop

import (
	"context"
	"reflect"
	"time"
)

// System is one step of a frame.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a function to System.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) { f(frame) }

// Frame carries the elapsed time of one update and collects work to run
// after every system has executed.
type Frame struct {
	DeltaTime time.Duration
	deferred  []func()
}

// Defer queues fn to run once all systems of this frame have executed. A
// deferred func may defer more work; it runs in the same flush.
func (f *Frame) Defer(fn func()) {
	f.deferred = append(f.deferred, fn)
}

func (f *Frame) flush() {
	for i := 0; i < len(f.deferred); i++ {
		f.deferred[i]()
	}
	clear(f.deferred)
	f.deferred = f.deferred[:0]
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemEntry struct {
	system         System
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler executes registered systems in registration order.
type Scheduler struct {
	systems []*systemEntry
	frames  int64
	frame   Frame
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Register appends a system. Its stats are reported under the system's type
// name.
func (s *Scheduler) Register(system System) {
	s.RegisterNamed(systemName(system), system)
}

// RegisterNamed appends a system reported under name.
func (s *Scheduler) RegisterNamed(name string, system System) {
	s.systems = append(s.systems, &systemEntry{
		system:      system,
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

// Once executes every system with the given frame time, then runs deferred
// work.
func (s *Scheduler) Once(dt time.Duration) {
	s.frame.DeltaTime = dt
	s.frames++

	for _, entry := range s.systems {
		start := time.Now()
		entry.system.Execute(&s.frame)
		duration := time.Since(start)

		entry.executionCount++
		entry.lastDuration = duration
		entry.totalDuration += duration
		if duration < entry.minDuration {
			entry.minDuration = duration
		}
		if duration > entry.maxDuration {
			entry.maxDuration = duration
		}
	}

	s.frame.flush()
}

// Run executes all systems at the given interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			s.Once(dt)
		}
	}
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systems)),
	}

	for i, entry := range s.systems {
		var avg time.Duration
		minDuration := entry.minDuration
		if entry.executionCount > 0 {
			avg = entry.totalDuration / time.Duration(entry.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           entry.name,
			ExecutionCount: entry.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    entry.maxDuration,
			AvgDuration:    avg,
			LastDuration:   entry.lastDuration,
			TotalDuration:  entry.totalDuration,
		}
		stats.TotalExecutions += entry.executionCount
	}

	return stats
}

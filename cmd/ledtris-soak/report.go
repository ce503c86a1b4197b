package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/ledtris/game"
	"github.com/plus3/ledtris/loop"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Seed       uint64
	GamesLimit int

	// Results
	Games        int
	Unfinished   int
	Frames       int64
	Ticks        int64
	Pieces       int
	Lines        int
	BestScore    int
	HighestLevel int
	Spawns       map[game.VariantID]int
	TotalTime    time.Duration
	TickTime     Stats
	Systems      []loop.SystemStats

	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// Stats accumulates durations without keeping the samples, so a long soak
// does not grow its own heap.
type Stats struct {
	Count int64
	Min   time.Duration
	Max   time.Duration
	Total time.Duration
}

func (s *Stats) Record(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Total += d
	s.Count++
}

// Avg is the mean duration, 0 before the first sample.
func (s Stats) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// record folds the engine's current game into the totals.
func (r *Report) record(engine *game.Engine, finished bool) {
	if finished {
		r.Games++
	} else {
		r.Unfinished++
	}
	r.Lines += engine.Lines()
	r.BestScore = max(r.BestScore, engine.Score())
	r.HighestLevel = max(r.HighestLevel, engine.Level())

	stats := engine.Stats()
	r.Pieces += stats.Total()
	if r.Spawns == nil {
		r.Spawns = make(map[game.VariantID]int, game.NumVariants())
	}
	for _, v := range game.Variants() {
		r.Spawns[v.ID] += stats.Count(v.ID)
	}
}

type spawnRow struct {
	Name  string
	Count int
	Share float64
}

// SpawnRows lists per-variant spawn counts in catalog order.
func (r *Report) SpawnRows() []spawnRow {
	variants := game.Variants()
	rows := make([]spawnRow, 0, len(variants))
	for _, v := range variants {
		count := r.Spawns[v.ID]
		row := spawnRow{Name: v.ID.String(), Count: count}
		if r.Pieces > 0 {
			row.Share = float64(count) / float64(r.Pieces) * 100
		}
		rows = append(rows, row)
	}
	return rows
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# LEDtris Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Game Limit:** {{if .GamesLimit}}{{.GamesLimit}}{{else}}none{{end}}

## Gameplay
- **Games Finished:** {{.Games}}{{if .Unfinished}} (+{{.Unfinished}} unfinished){{end}}
- **Pieces Spawned:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}}
- **Best Score:** {{.BestScore}}
- **Highest Level:** {{.HighestLevel}}

| Variant | Count | Share |
|---------|-------|-------|
{{- range .SpawnRows}}
| {{.Name}} | {{.Count}} | {{printf "%.1f" .Share}}% |
{{- end}}

## Performance Results
- **Frames:** {{.Frames}}
- **Ticks:** {{.Ticks}}
- **Total Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

| System | Executions | Avg | Max |
|--------|------------|-----|-----|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}

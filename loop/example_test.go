package loop_test

import (
	"fmt"
	"time"

	"github.com/plus3/ledtris/loop"
)

type gravity struct {
	row int
}

func (g *gravity) Execute(frame *loop.Frame) {
	frame.Defer(func() {
		fmt.Println("frame done, row", g.row)
	})
}

// ExampleScheduler shows a frame loop where a DropTimer advances a piece once
// per interval while other systems run every frame. Deferred work runs after
// all systems.
func ExampleScheduler() {
	g := &gravity{}
	timer := loop.NewDropTimer(func() { g.row++ })
	timer.Start(time.Second)

	scheduler := loop.NewScheduler()
	scheduler.Register(timer)
	scheduler.Register(g)

	for range 3 {
		scheduler.Once(600 * time.Millisecond)
	}

	stats := scheduler.Stats()
	fmt.Println("frames:", stats.Frames)
	for _, sys := range stats.Systems {
		fmt.Println(sys.Name, sys.ExecutionCount)
	}

	// Output:
	// frame done, row 0
	// frame done, row 1
	// frame done, row 1
	// frames: 3
	// DropTimer 3
	// gravity 3
}

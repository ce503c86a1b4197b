// Command ledtris-soak plays headless games with scripted random input and
// prints a timing report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	seed := flag.Uint64("seed", 0, "Random seed for pieces and input (0 picks one).")
	games := flag.Int("games", 0, "Stop after this many games (0 runs until the duration elapses).")
	flag.Parse()

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	log.Printf("Starting soak: seed %d, duration %s", *seed, *duration)

	report := &Report{
		Duration:   *duration,
		Seed:       *seed,
		GamesLimit: *games,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	NewSoak(*seed).Run(ctx, *games, report)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifegrid/internal/life"
	"lifegrid/internal/stats"
)

type soupResult struct {
	seed       int64
	settledAt  int
	status     stats.Status
	period     int
	population int
	peak       int
}

func (r soupResult) String() string {
	settled := "never"
	if r.settledAt >= 0 {
		settled = fmt.Sprintf("gen %d", r.settledAt)
	}
	return fmt.Sprintf("seed=%d settled=%s status=%s period=%d pop=%d peak=%d",
		r.seed, settled, r.status, r.period, r.population, r.peak)
}

func main() {
	soups := flag.Int("soups", 64, "number of random soups to run")
	steps := flag.Int("steps", 2000, "maximum generations per soup")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent soups")
	width := flag.Int("w", 100, "grid columns")
	height := flag.Int("h", 100, "grid rows")
	density := flag.Float64("density", 0.25, "initial live fraction")
	rule := flag.String("rule", "B3/S23", "birth/survival rule")
	seed := flag.Int64("seed", 1, "seed of the first soup; later soups use seed+i")
	flag.Parse()
	if *soups < 0 {
		log.Fatalf("-soups must not be negative, got %d", *soups)
	}

	r, err := life.ParseRule(*rule)
	if err != nil {
		log.Fatal(err)
	}
	cfg := life.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Rule = r

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Running %d soups on %dx%d %s (%d workers, %d steps)\n", *soups, cfg.Width, cfg.Height, r, *workers, *steps)

	start := time.Now()
	results, err := sweep(ctx, cfg, *seed, *soups, *steps, *density, *workers)
	if err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(i, j int) bool { return lifespan(results[i], *steps) > lifespan(results[j], *steps) })

	counts := map[stats.Status]int{}
	for _, res := range results {
		counts[res.status]++
	}
	fmt.Printf("\nFinished in %s: %d empty, %d still, %d oscillating, %d still active\n",
		time.Since(start).Round(time.Millisecond), counts[stats.Empty], counts[stats.Still], counts[stats.Oscillating], counts[stats.Active])

	fmt.Println("\nLongest-lived soups:")
	for i := 0; i < len(results) && i < 5; i++ {
		fmt.Printf("%2d) %s\n", i+1, results[i])
	}
}

// sweep runs soups concurrently; each goroutine owns its own board.
func sweep(ctx context.Context, cfg life.Config, seed int64, soups, steps int, density float64, workers int) ([]soupResult, error) {
	if soups < 0 {
		return nil, errors.Errorf("negative soup count %d", soups)
	}
	if workers <= 0 {
		workers = 1
	}
	results := make([]soupResult, soups)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < soups; i++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = runSoup(cfg, seed+int64(i), steps, density)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runSoup steps a random board until it dies out, freezes or starts to
// oscillate with a short period, or until steps generations have passed.
func runSoup(cfg life.Config, seed int64, steps int, density float64) soupResult {
	board := life.NewWithConfig(cfg)
	board.Randomize(seed, density)

	tracker := stats.NewTracker()
	res := soupResult{seed: seed, settledAt: -1, population: board.Population()}
	res.peak = res.population
	now := time.Now()
	for gen := 1; gen <= steps; gen++ {
		board.Step()
		pop := board.Population()
		tracker.Observe(board.Generation(), pop, board.Fingerprint(), now)
		if pop > res.peak {
			res.peak = pop
		}
		if tracker.Status() != stats.Active {
			res.settledAt = gen
			break
		}
	}
	res.status = tracker.Status()
	res.period = tracker.Period()
	res.population = board.Population()
	return res
}

func lifespan(r soupResult, steps int) int {
	if r.settledAt < 0 {
		return steps + 1
	}
	return r.settledAt
}

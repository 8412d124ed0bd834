package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"lrucache/internal/cache"
	"lrucache/internal/scenario"
)

func main() {
	name := flag.String("scenario", "all", "scenario to replay (reference, update-refresh, miss-purity, single-slot, all)")
	verbose := flag.Bool("v", false, "log every step")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Signal-aware context is the root of ownership for the replay goroutines.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scenarios, err := selectScenarios(*name)
	if err != nil {
		log.Fatal(err)
	}

	if err := replayAll(ctx, scenarios, *verbose); err != nil {
		log.Printf("FAIL: %v", err)
		os.Exit(1)
	}
	fmt.Println("PASS")
}

func selectScenarios(name string) ([]scenario.Scenario, error) {
	if name == "all" {
		return scenario.Builtin(), nil
	}
	s, ok := scenario.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q", name)
	}
	return []scenario.Scenario{s}, nil
}

// replayAll runs each scenario on its own goroutine. Every scenario builds
// its own cache, so no cache is shared across goroutines.
func replayAll(ctx context.Context, scenarios []scenario.Scenario, verbose bool) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, s := range scenarios {
		s := s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var observe scenario.Observer
			if verbose {
				observe = func(i int, step scenario.Step, got int, c *cache.Cache) {
					if step.Op == scenario.OpGet {
						log.Printf("[%s] #%d %s -> %d, keys (MRU->LRU): %v", s.Name, i, step, got, c.Keys())
						return
					}
					log.Printf("[%s] #%d %s, keys (MRU->LRU): %v", s.Name, i, step, c.Keys())
				}
			}

			res, err := scenario.RunObserved(s, observe)
			if err != nil {
				return err
			}
			log.Printf("[%s] ok: capacity=%d steps=%d hits=%d misses=%d final keys=%v",
				s.Name, s.Capacity, res.Steps, res.Hits, res.Misses, res.Keys)
			return nil
		})
	}

	return g.Wait()
}

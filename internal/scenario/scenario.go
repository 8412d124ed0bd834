// Package scenario replays scripted get/put sequences against a cache and
// checks every get against its expected result.
package scenario

import (
	"fmt"

	"lrucache/internal/cache"
)

// Op is a cache operation.
type Op int

const (
	OpGet Op = iota
	OpPut
)

func (o Op) String() string {
	switch o {
	case OpGet:
		return "get"
	case OpPut:
		return "put"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Step is one scripted operation. Want is only checked for OpGet and uses
// the sentinel form: cache.NotFound means "expect a miss".
type Step struct {
	Op    Op
	Key   int
	Value int
	Want  int
}

func (s Step) String() string {
	if s.Op == OpPut {
		return fmt.Sprintf("put(%d, %d)", s.Key, s.Value)
	}
	return fmt.Sprintf("get(%d) want %d", s.Key, s.Want)
}

// Scenario is a named script run against a fresh cache.
type Scenario struct {
	Name     string
	Capacity int
	Steps    []Step
}

// Result summarizes a successful replay.
type Result struct {
	Name   string
	Steps  int
	Hits   int
	Misses int
	// Keys is the final MRU -> LRU order.
	Keys []int
}

// MismatchError reports the first get whose result differed from the script.
type MismatchError struct {
	Scenario string
	Index    int
	Step     Step
	Got      int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("scenario %q step %d: get(%d) = %d, want %d",
		e.Scenario, e.Index, e.Step.Key, e.Got, e.Step.Want)
}

// Observer, when set, is called after every step with the cache state.
type Observer func(i int, s Step, got int, c *cache.Cache)

// Run replays s against a new cache.
func Run(s Scenario) (Result, error) {
	return RunObserved(s, nil)
}

// RunObserved is Run with a per-step callback.
func RunObserved(s Scenario, observe Observer) (Result, error) {
	c, err := cache.New(cache.Config{Capacity: s.Capacity})
	if err != nil {
		return Result{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	res := Result{Name: s.Name}
	for i, step := range s.Steps {
		got := 0
		switch step.Op {
		case OpPut:
			c.Put(step.Key, step.Value)
		case OpGet:
			got = c.Lookup(step.Key)
			if got == cache.NotFound {
				res.Misses++
			} else {
				res.Hits++
			}
		default:
			return res, fmt.Errorf("scenario %q step %d: unknown op %v", s.Name, i, step.Op)
		}
		res.Steps++

		if observe != nil {
			observe(i, step, got, c)
		}
		if step.Op == OpGet && got != step.Want {
			return res, &MismatchError{Scenario: s.Name, Index: i, Step: step, Got: got}
		}
	}

	res.Keys = c.Keys()
	return res, nil
}

func get(key, want int) Step { return Step{Op: OpGet, Key: key, Want: want} }
func put(key, value int) Step { return Step{Op: OpPut, Key: key, Value: value} }

// valueFor derives the stored value from a key in the built-in scripts.
func valueFor(key int) int { return key * 100 }

// Reference is the capacity-3 script: fill keys 1..4 one at a time and,
// after each insert, probe keys -1 through 4.
func Reference() Scenario {
	const capacity = 3
	probes := []int{-1, 1, 2, 3, 4}

	steps := []Step{get(1, cache.NotFound)}
	resident := map[int]bool{}
	for key := 1; key <= 4; key++ {
		steps = append(steps, put(key, valueFor(key)))
		resident[key] = true
		if len(resident) > capacity {
			// Probes touch keys in ascending order, so the smallest is LRU.
			delete(resident, key-capacity)
		}
		for _, p := range probes {
			want := cache.NotFound
			if resident[p] {
				want = valueFor(p)
			}
			steps = append(steps, get(p, want))
		}
	}

	return Scenario{Name: "reference", Capacity: capacity, Steps: steps}
}

// UpdateRefresh checks that overwriting a key moves it to the front.
func UpdateRefresh() Scenario {
	return Scenario{
		Name:     "update-refresh",
		Capacity: 2,
		Steps: []Step{
			put(1, 100),
			put(2, 200),
			put(1, 111), // 1 is now MRU; 2 is LRU
			put(3, 300), // evicts 2
			get(2, cache.NotFound),
			get(1, 111),
			get(3, 300),
		},
	}
}

// MissPurity checks that a miss does not change the eviction candidate.
func MissPurity() Scenario {
	return Scenario{
		Name:     "miss-purity",
		Capacity: 2,
		Steps: []Step{
			put(1, 100),
			put(2, 200),
			get(7, cache.NotFound),
			get(8, cache.NotFound),
			put(3, 300), // still evicts 1
			get(1, cache.NotFound),
			get(2, 200),
			get(3, 300),
		},
	}
}

// SingleSlot runs a capacity-1 cache where every new key evicts the last.
func SingleSlot() Scenario {
	steps := []Step{}
	for key := 1; key <= 3; key++ {
		steps = append(steps,
			put(key, valueFor(key)),
			get(key, valueFor(key)),
			get(key-1, cache.NotFound),
		)
	}
	return Scenario{Name: "single-slot", Capacity: 1, Steps: steps}
}

// Builtin lists every bundled scenario.
func Builtin() []Scenario {
	return []Scenario{Reference(), UpdateRefresh(), MissPurity(), SingleSlot()}
}

// Lookup finds a bundled scenario by name.
func Lookup(name string) (Scenario, bool) {
	for _, s := range Builtin() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

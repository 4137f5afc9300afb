package driver

import (
	"slices"

	"github.com/sheikhrachel/go-life/model"
)

// historySize is how many recent generations the stagnation check remembers
const historySize = 5

// Policy decides, after a generation has been displayed, whether to advance again
type Policy interface {
	Continue(generation int, g *model.Grid) bool
}

// PolicyFunc adapts a function to the Policy interface
type PolicyFunc func(generation int, g *model.Grid) bool

func (f PolicyFunc) Continue(generation int, g *model.Grid) bool { return f(generation, g) }

// Forever never stops the simulation
func Forever() Policy {
	return PolicyFunc(func(int, *model.Grid) bool { return true })
}

// MaxGenerations stops once n generations have been advanced. n <= 0 runs forever.
func MaxGenerations(n int) Policy {
	if n <= 0 {
		return Forever()
	}
	return PolicyFunc(func(generation int, _ *model.Grid) bool { return generation < n })
}

// UntilExtinct stops once no cell is alive
func UntilExtinct() Policy {
	return PolicyFunc(func(_ int, g *model.Grid) bool { return g.CountLiving() > 0 })
}

// UntilStagnant stops once the board has repeated a recent generation
// threshold times in a row, which catches still lifes and short oscillators
func UntilStagnant(threshold int) Policy {
	return &stagnation{threshold: max(1, threshold)}
}

type stagnation struct {
	threshold int
	repeats   int
	history   []string
}

func (s *stagnation) Continue(_ int, g *model.Grid) bool {
	hash := g.Hash()
	if slices.Contains(s.history, hash) {
		s.repeats++
	} else {
		s.repeats = 0
	}

	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
	return s.repeats < s.threshold
}

// All continues only while every policy does. Each policy sees every generation.
func All(policies ...Policy) Policy {
	return PolicyFunc(func(generation int, g *model.Grid) bool {
		ok := true
		for _, p := range policies {
			if !p.Continue(generation, g) {
				ok = false
			}
		}
		return ok
	})
}

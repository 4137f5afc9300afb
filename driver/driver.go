// Package driver runs the simulation loop: display the board, advance it one
// generation, wait, and repeat until the stop policy or the context ends it.
package driver

import (
	"context"
	"io"
	"log"
	"time"

	channerics "github.com/niceyeti/channerics/channels"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// Driver owns one grid and advances it one generation per iteration.
// Run must not be called concurrently on drivers sharing a grid.
type Driver struct {
	Grid     *model.Grid
	Display  Display
	Interval time.Duration
	Policy   Policy
	Stats    *utils.Stats
	Logger   *log.Logger

	generation int
}

// New returns a driver for g that displays on d and runs until the context ends
func New(g *model.Grid, d Display, interval time.Duration) *Driver {
	return &Driver{
		Grid:     g,
		Display:  d,
		Interval: interval,
		Policy:   Forever(),
		Stats:    utils.NewStats(),
	}
}

// Generation returns how many generations have been advanced so far
func (d *Driver) Generation() int {
	return d.generation
}

// Run displays and advances the grid until the policy stops it or ctx is done.
// Cancellation is a normal way to stop and returns nil.
func (d *Driver) Run(ctx context.Context) error {
	var (
		policy = d.Policy
		stats  = d.Stats
		logger = d.Logger
	)
	if policy == nil {
		policy = Forever()
	}
	if stats == nil {
		stats = utils.NewStats()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	wait := func() bool { return ctx.Err() == nil }
	if d.Interval > 0 {
		ticker := channerics.NewTicker(ctx.Done(), d.Interval)
		wait = func() bool {
			select {
			case <-ctx.Done():
				return false
			case <-ticker:
				return ctx.Err() == nil
			}
		}
	}

	// The rate covers the whole generation period, waiting included
	last := time.Now()
	for {
		if ctx.Err() != nil {
			logger.Printf("cancelled after %d generations", d.generation)
			return nil
		}

		if d.Display != nil {
			if err := d.Display.Display(d.Grid); err != nil {
				return errors.Wrapf(err, "[Run] failed to display generation %d", d.generation)
			}
		}

		if !policy.Continue(d.generation, d.Grid) {
			logger.Printf("stopped after %d generations, %d cells alive", d.generation, d.Grid.CountLiving())
			return nil
		}

		t := rules.Advance(d.Grid)
		d.generation++
		now := time.Now()
		stats.Update(d.generation, d.Grid.CountLiving(), len(t.Births), len(t.Deaths), now.Sub(last))
		last = now

		if !wait() {
			logger.Printf("cancelled after %d generations", d.generation)
			return nil
		}
	}
}

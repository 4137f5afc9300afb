package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/sheikhrachel/go-life/builder"
	"github.com/sheikhrachel/go-life/driver"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// loadConfig reads the config file if one was given and lets the flags override it
func loadConfig(o options) (utils.Config, error) {
	config := utils.DefaultConfig()
	if o.configPath != "" {
		var err error
		if config, err = utils.LoadConfig(o.configPath); err != nil {
			return config, err
		}
	}

	config = applyFlags(config, o)
	return config, config.Validate()
}

// applyFlags overrides the configuration with every flag that was set
func applyFlags(config utils.Config, o options) utils.Config {
	if o.createBoard {
		config.CreateBoard = true
	}
	if o.boardJSON != "" {
		config.BoardSource = o.boardJSON
	}
	if o.interval != 0 {
		config.Interval = o.interval
	}
	if o.generations != 0 {
		config.MaxGenerations = o.generations
	}
	if o.stopWhenStable {
		config.StopWhenStable = true
	}
	if o.color {
		config.Color = true
	}
	if o.tui {
		config.TUI = true
	}
	if o.serve != "" {
		config.ServeAddr = o.serve
	}
	return config
}

// obtainGrid builds the board interactively or loads it from the configured source
func obtainGrid(config utils.Config, in io.Reader, out io.Writer) (*model.Grid, error) {
	if !config.CreateBoard {
		return model.LoadGrid(config.BoardSource)
	}

	b := builder.New(in, out, newRenderer(config))
	grid, err := b.Build()
	if err != nil {
		return nil, err
	}

	// The board is still usable when it cannot be saved
	if _, err = b.PromptSave(grid); err != nil {
		fmt.Fprintln(out, "Board not saved:", err)
	}
	return grid, nil
}

func newRenderer(config utils.Config) *model.TerminalRenderer {
	r := model.NewTerminalRenderer(config.Color)
	r.Alive = config.AliveGlyph
	r.Dead = config.DeadGlyph
	return r
}

// stopPolicy turns the configured limits into the driver's stop policy
func stopPolicy(config utils.Config) driver.Policy {
	policies := []driver.Policy{driver.MaxGenerations(config.MaxGenerations)}
	if config.StopWhenStable {
		policies = append(policies, driver.UntilExtinct(), driver.UntilStagnant(config.StableAfter))
	}
	return driver.All(policies...)
}

// displayGameInfo shows the initial game information
func displayGameInfo(logger *log.Logger, config utils.Config, grid *model.Grid) {
	limit := "until interrupted"
	if config.MaxGenerations > 0 {
		limit = fmt.Sprintf("for %d generations", config.MaxGenerations)
	}
	logger.Printf("Grid: %dx%d | Initial living cells: %d | Interval: %v | Running %s",
		grid.Side(), grid.Side(), grid.CountLiving(), config.Interval, limit)
}

// displayFinalStats shows the summary once the simulation has stopped
func displayFinalStats(d *driver.Driver, stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		d.Generation(), stats.Runtime().Round(time.Millisecond).Seconds())
	fmt.Printf("Living: %d | Births: %d | Deaths: %d | Avg Pop: %.1f\n",
		d.Grid.CountLiving(), stats.Births, stats.Deaths, stats.AveragePopulation)
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/boards"
	"github.com/sheikhrachel/go-life/driver"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/server"
	"github.com/sheikhrachel/go-life/utils"
	"github.com/sheikhrachel/go-life/view"
)

// options are the command line flags. Zero values leave the configuration untouched.
type options struct {
	configPath     string
	createBoard    bool
	boardJSON      string
	interval       time.Duration
	generations    int
	stopWhenStable bool
	color          bool
	tui            bool
	serve          string
}

func parseFlags() options {
	var o options

	flaggy.SetName("go-life")
	flaggy.SetDescription("Conway's Game of Life on a square board with hard edges")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.Bool(&o.createBoard, "c", "create_board", "Create the board interactively")
	flaggy.String(&o.boardJSON, "b", "board_json", boardHelp())
	flaggy.String(&o.configPath, "", "config", "Configuration file (yaml, json or toml)")
	flaggy.Duration(&o.interval, "i", "interval",
		"Time between generations, for example 150ms. 0 keeps the configured interval (default 100ms)")
	flaggy.Int(&o.generations, "g", "generations",
		"Stop after this many generations. 0 keeps the configured limit (default: run until interrupted)")
	flaggy.Bool(&o.stopWhenStable, "s", "stop_when_stable", "Stop once the board dies out or repeats itself")
	flaggy.Bool(&o.color, "", "color", "Colour live cells")
	flaggy.Bool(&o.tui, "t", "tui", "Show the board in a full screen terminal UI")
	flaggy.String(&o.serve, "", "serve", "Also publish generations over HTTP on this address, for example :8080")

	flaggy.Parse()
	return o
}

// boardHelp names the bundled boards that load without a file on disk
func boardHelp() string {
	return "Board file or bundled board [" + strings.Join(boards.Names(), "|") + "] to load (default " + boards.DefaultBoard + ")"
}

func main() {
	opts := parseFlags()

	config, err := loadConfig(opts)
	if err != nil {
		fatal(err)
	}

	grid, err := obtainGrid(config, os.Stdin, os.Stdout)
	if err != nil {
		fatal(err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, config, grid); err != nil {
		fatal(err)
	}
}

// run drives the simulation on every configured display until it stops or ctx is done
func run(ctx context.Context, config utils.Config, grid *model.Grid) error {
	var (
		renderer = newRenderer(config)
		stats    = utils.NewStats()
		displays driver.MultiDisplay
		logger   *log.Logger
		tui      *view.TUI
	)

	group, groupCtx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(groupCtx)
	defer cancel()

	if config.TUI {
		var err error
		if tui, err = view.NewTUI(renderer, stats); err != nil {
			return err
		}
		displays = append(displays, tui)
		group.Go(func() error { return tui.Run(runCtx, cancel) })
	} else {
		logger = log.New(os.Stderr, "go-life: ", log.LstdFlags)
		displays = append(displays, renderer, view.NewStatus(stats))
		displayGameInfo(logger, config, grid)
	}

	if config.ServeAddr != "" {
		hub := server.NewHub()
		displays = append(displays, hub)
		group.Go(func() error { return hub.Serve(runCtx, config.ServeAddr) })
	}

	d := driver.New(grid, displays, config.Interval)
	d.Stats = stats
	d.Policy = stopPolicy(config)
	d.Logger = logger
	group.Go(func() error {
		err := d.Run(runCtx)
		if tui != nil && err == nil && runCtx.Err() == nil {
			// The last board stays up until the user quits
			tui.Finished()
			return nil
		}
		cancel()
		return err
	})

	err := group.Wait()
	if tui != nil {
		tui.Close()
	}
	displayFinalStats(d, stats)
	return err
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "go-life:", err)
	os.Exit(1)
}

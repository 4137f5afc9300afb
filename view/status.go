package view

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// StatusLine summarises the generation being shown
func StatusLine(g *model.Grid, stats *utils.Stats) string {
	var (
		living  = g.CountLiving()
		density float64
	)
	if area := g.Side() * g.Side(); area > 0 {
		density = float64(living) / float64(area) * 100
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | %.1f gen/sec | Runtime: %.1fs",
		stats.TotalGenerations, living, density, stats.GenerationsPerSecond, stats.Runtime().Seconds())
}

// Status prints a status line under each frame
type Status struct {
	Out   io.Writer
	Stats *utils.Stats
}

// NewStatus returns a status display writing to stdout
func NewStatus(stats *utils.Stats) *Status {
	return &Status{Out: os.Stdout, Stats: stats}
}

func (s *Status) Display(g *model.Grid) error {
	if _, err := fmt.Fprintln(s.Out, StatusLine(g, s.Stats)); err != nil {
		return errors.Wrap(err, "[Status] failed to write status line")
	}
	return nil
}

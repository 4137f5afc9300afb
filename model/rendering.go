package model

import (
	"io"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const (
	gridPosAlive = "▣"
	gridPosDead  = "."

	// clearScreen moves the cursor home and erases the display
	clearScreen = "\x1b[H\x1b[2J"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out   io.Writer
	Alive string
	Dead  string
	Color bool
}

// NewTerminalRenderer returns a renderer writing to stdout with the default glyphs
func NewTerminalRenderer(color bool) *TerminalRenderer {
	return &TerminalRenderer{
		Out:   os.Stdout,
		Alive: gridPosAlive,
		Dead:  gridPosDead,
		Color: color,
	}
}

// Render returns one line per row with space separated glyphs
func (r *TerminalRenderer) Render(g *Grid) string {
	var (
		au    = aurora.NewAurora(r.Color)
		alive = au.Green(r.glyph(r.Alive, gridPosAlive)).String()
		dead  = r.glyph(r.Dead, gridPosDead)
		b     strings.Builder
		line  = make([]string, g.Side())
	)

	for row := 0; row < g.Side(); row++ {
		for col := 0; col < g.Side(); col++ {
			if g.Get(row, col) {
				line[col] = alive
			} else {
				line[col] = dead
			}
		}
		b.WriteString(strings.Join(line, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Display clears the screen and renders the grid
func (r *TerminalRenderer) Display(g *Grid) error {
	if err := r.Clear(); err != nil {
		return err
	}
	if _, err := io.WriteString(r.out(), r.Render(g)); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.out(), clearScreen); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear screen")
	}
	return nil
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *TerminalRenderer) glyph(set, fallback string) string {
	if set == "" {
		return fallback
	}
	return set
}

// Package builder creates a board by prompting for live cell addresses.
package builder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	endOfInput = "-1"

	// maxSide bounds the board size a user can ask for
	maxSide = 1000
)

// ErrNoInput is returned when input ends before a board size was given
var ErrNoInput = errors.New("no board size given")

// Builder reads a board from a line oriented prompt session
type Builder struct {
	out      io.Writer
	lines    *bufio.Scanner
	renderer *model.TerminalRenderer
}

// New returns a builder reading answers from in and writing prompts to out
func New(in io.Reader, out io.Writer, renderer *model.TerminalRenderer) *Builder {
	if renderer == nil {
		renderer = &model.TerminalRenderer{}
	}
	return &Builder{
		out:      out,
		lines:    bufio.NewScanner(in),
		renderer: renderer,
	}
}

// Build asks for a board size, then for live cells until a blank line, -1 or end of input
func (b *Builder) Build() (*model.Grid, error) {
	side, err := b.promptSide()
	if err != nil {
		return nil, err
	}

	g := model.NewGrid(side)
	fmt.Fprintf(b.out,
		"Add \"live\" cell addresses in the form \"a, b\" in the range %dx%d (non-inclusive)\n(Enter %s or a blank to continue)\n",
		side, side, endOfInput)

	for {
		line, ok := b.readLine()
		if !ok || line == "" || line == endOfInput {
			break
		}

		row, col, err := parseAddress(line)
		if err != nil {
			fmt.Fprintf(b.out, "%v, try again\n", err)
			continue
		}
		if !g.InBounds(row, col) {
			fmt.Fprintf(b.out, "Addresses must be in the range [0, %d - 1]!\n", side)
			continue
		}
		if g.Get(row, col) {
			fmt.Fprintf(b.out, "(%d, %d) is already alive!\n", row, col)
			continue
		}

		g.Set(row, col, true)
		fmt.Fprint(b.out, b.renderer.Render(g))
	}

	if err := b.lines.Err(); err != nil {
		return nil, errors.Wrap(err, "[Build] failed to read cell addresses")
	}
	return g, nil
}

// PromptSave asks where to store the board and writes it there.
// A blank answer skips the write and returns an empty path.
func (b *Builder) PromptSave(g *model.Grid) (string, error) {
	fmt.Fprint(b.out, "Where should this board be saved? (blank for no save): ")
	path, _ := b.readLine()
	if path == "" {
		return "", nil
	}
	if err := model.SaveGrid(path, g); err != nil {
		return "", err
	}
	return path, nil
}

func (b *Builder) promptSide() (int, error) {
	for {
		fmt.Fprint(b.out, "How many lines on each side is this board: ")
		line, ok := b.readLine()
		if !ok {
			if err := b.lines.Err(); err != nil {
				return 0, errors.Wrap(err, "[promptSide] failed to read board size")
			}
			return 0, ErrNoInput
		}

		side, err := strconv.Atoi(line)
		if err != nil || side < 0 || side > maxSide {
			fmt.Fprintf(b.out, "%q is not a board size, enter a whole number from 0 to %d\n", line, maxSide)
			continue
		}
		return side, nil
	}
}

func (b *Builder) readLine() (string, bool) {
	if !b.lines.Scan() {
		return "", false
	}
	return strings.TrimSpace(b.lines.Text()), true
}

func parseAddress(line string) (row, col int, err error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("%q is not of the form \"a, b\"", line)
	}
	if row, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, errors.Errorf("%q is not a row number", strings.TrimSpace(parts[0]))
	}
	if col, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, errors.Errorf("%q is not a column number", strings.TrimSpace(parts[1]))
	}
	return row, col, nil
}

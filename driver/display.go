package driver

import "github.com/sheikhrachel/go-life/model"

// Display shows one generation. Implementations must not modify the grid.
type Display interface {
	Display(g *model.Grid) error
}

// DisplayFunc adapts a function to the Display interface
type DisplayFunc func(g *model.Grid) error

func (f DisplayFunc) Display(g *model.Grid) error { return f(g) }

// MultiDisplay shows every generation on each of its displays in order
type MultiDisplay []Display

func (m MultiDisplay) Display(g *model.Grid) error {
	for _, d := range m {
		if err := d.Display(g); err != nil {
			return err
		}
	}
	return nil
}

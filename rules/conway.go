package rules

import "github.com/sheikhrachel/go-life/model"

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Transition holds the cells that change between two generations.
// Births and Deaths never share a cell.
type Transition struct {
	Births []model.Cell
	Deaths []model.Cell
}

// Changed reports whether applying the transition alters the grid
func (t Transition) Changed() bool {
	return len(t.Births) > 0 || len(t.Deaths) > 0
}

// Survey computes the next generation's births and deaths without touching the grid
func Survey(g *model.Grid) Transition {
	var t Transition
	for row := 0; row < g.Side(); row++ {
		for col := 0; col < g.Side(); col++ {
			var (
				alive = g.Get(row, col)
				next  = ApplyConwayRules(g.CountLiveNeighbors(row, col), alive)
			)
			switch {
			case !alive && next:
				t.Births = append(t.Births, model.Cell{Row: row, Col: col})
			case alive && !next:
				t.Deaths = append(t.Deaths, model.Cell{Row: row, Col: col})
			}
		}
	}
	return t
}

// Commit applies a surveyed transition to the grid in place
func Commit(g *model.Grid, t Transition) {
	for _, c := range t.Deaths {
		g.Set(c.Row, c.Col, false)
	}
	for _, c := range t.Births {
		g.Set(c.Row, c.Col, true)
	}
}

// Advance moves the grid forward exactly one generation.
// Every cell is judged against the same prior generation.
func Advance(g *model.Grid) Transition {
	t := Survey(g)
	Commit(g, t)
	return t
}

package grid

import "fmt"

// ApplyLayout replaces the grid content with rows in the String format.
// Path runes are read as free cells. On error the grid is left unchanged.
func (g *Grid) ApplyLayout(rows []string) error {
	scratch, err := New(g.rows, g.cols)
	if err != nil {
		return err
	}
	if err := scratch.applyLayout(rows); err != nil {
		return err
	}

	g.cells = scratch.cells
	g.start = scratch.start
	g.end = scratch.end
	return nil
}

// CheckLayout reports whether rows would load into a rows x cols grid.
func CheckLayout(rows, cols int, layout []string) error {
	scratch, err := New(rows, cols)
	if err != nil {
		return err
	}
	return scratch.applyLayout(layout)
}

func (g *Grid) applyLayout(rows []string) error {
	if len(rows) != g.rows {
		return fmt.Errorf("%w: got %d rows, grid has %d", ErrInvalidLayout, len(rows), g.rows)
	}

	var starts, ends []Position
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != g.cols {
			return fmt.Errorf("%w: row %d has %d cells, grid has %d", ErrInvalidLayout, row, len(runes), g.cols)
		}

		for col, r := range runes {
			p := Position{Row: row, Col: col}
			switch r {
			case RuneFree, RunePath:
			case RuneObstacle:
				g.cells[row*g.cols+col].Walkable = false
			case RuneStart:
				starts = append(starts, p)
			case RuneEnd:
				ends = append(ends, p)
			default:
				return fmt.Errorf("%w: unknown cell %q at %s", ErrInvalidLayout, r, p)
			}
		}
	}

	if len(starts) > 1 || len(ends) > 1 {
		return fmt.Errorf("%w: at most one start and one end allowed", ErrInvalidLayout)
	}
	if len(starts) == 1 {
		if err := g.SetStart(starts[0]); err != nil {
			return err
		}
	}
	if len(ends) == 1 {
		if err := g.SetEnd(ends[0]); err != nil {
			return err
		}
	}

	return nil
}

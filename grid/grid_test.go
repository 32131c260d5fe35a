package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		wantErr bool
	}{
		{name: "single cell", rows: 1, cols: 1},
		{name: "demo size", rows: 15, cols: 15},
		{name: "max size", rows: MaxDimension, cols: MaxDimension},
		{name: "zero rows", rows: 0, cols: 5, wantErr: true},
		{name: "negative cols", rows: 5, cols: -1, wantErr: true},
		{name: "too large", rows: MaxDimension + 1, cols: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.rows, tt.cols)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDimensions)
				assert.Nil(t, g)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.rows, g.Rows())
			assert.Equal(t, tt.cols, g.Cols())
			assert.Equal(t, tt.rows*tt.cols, g.Size())

			_, ok := g.Start()
			assert.False(t, ok)
			_, ok = g.End()
			assert.False(t, ok)

			for i := 0; i < g.Size(); i++ {
				c := g.At(i)
				assert.True(t, c.Walkable)
				assert.Equal(t, Infinity, c.G)
				assert.Equal(t, NoParent, c.Parent)
			}
		})
	}
}

func TestIndexAndPosition(t *testing.T) {
	g, err := New(3, 4)
	require.NoError(t, err)

	idx, err := g.Index(Position{Row: 2, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, 9, idx)
	assert.Equal(t, Position{Row: 2, Col: 1}, g.Position(idx))

	_, err = g.Index(Position{Row: 3, Col: 0})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
	_, err = g.Cell(Position{Row: 0, Col: -1})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestNeighbors(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	t.Run("center has four in fixed order", func(t *testing.T) {
		n, err := g.Neighbors(Position{Row: 1, Col: 1})
		require.NoError(t, err)
		assert.Equal(t, []Position{
			{Row: 0, Col: 1},
			{Row: 2, Col: 1},
			{Row: 1, Col: 0},
			{Row: 1, Col: 2},
		}, n)
	})

	t.Run("corner has two", func(t *testing.T) {
		n, err := g.Neighbors(Position{Row: 0, Col: 0})
		require.NoError(t, err)
		assert.Equal(t, []Position{{Row: 1, Col: 0}, {Row: 0, Col: 1}}, n)
	})

	t.Run("obstacles are still neighbors", func(t *testing.T) {
		require.NoError(t, g.SetWalkable(Position{Row: 0, Col: 1}, false))
		n, err := g.Neighbors(Position{Row: 0, Col: 0})
		require.NoError(t, err)
		assert.Len(t, n, 2)
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := g.Neighbors(Position{Row: 3, Col: 3})
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	})

	t.Run("indexes match positions", func(t *testing.T) {
		for idx := 0; idx < g.Size(); idx++ {
			positions, err := g.Neighbors(g.Position(idx))
			require.NoError(t, err)

			indexes := g.NeighborIndexes(nil, idx)
			require.Len(t, indexes, len(positions))
			for i, p := range positions {
				assert.Equal(t, p, g.Position(indexes[i]))
			}
		}
	})
}

func TestSetWalkable(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	start := Position{Row: 0, Col: 0}
	end := Position{Row: 2, Col: 2}
	require.NoError(t, g.SetStart(start))
	require.NoError(t, g.SetEnd(end))

	t.Run("toggle twice restores", func(t *testing.T) {
		p := Position{Row: 1, Col: 1}
		require.NoError(t, g.ToggleObstacle(p))
		c, _ := g.Cell(p)
		assert.False(t, c.Walkable)

		require.NoError(t, g.ToggleObstacle(p))
		assert.True(t, c.Walkable)
	})

	t.Run("endpoints are guarded", func(t *testing.T) {
		assert.ErrorIs(t, g.SetWalkable(start, false), ErrEndpointCell)
		assert.ErrorIs(t, g.ToggleObstacle(end), ErrEndpointCell)

		c, _ := g.Cell(start)
		assert.True(t, c.Walkable)
	})

	t.Run("out of bounds", func(t *testing.T) {
		assert.ErrorIs(t, g.ToggleObstacle(Position{Row: -1, Col: 0}), ErrInvalidCoordinate)
	})
}

func TestSetEndpoints(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	blocked := Position{Row: 1, Col: 0}
	require.NoError(t, g.SetWalkable(blocked, false))

	assert.ErrorIs(t, g.SetStart(blocked), ErrCellBlocked)
	assert.ErrorIs(t, g.SetEnd(blocked), ErrCellBlocked)
	assert.ErrorIs(t, g.SetStart(Position{Row: 2, Col: 0}), ErrInvalidCoordinate)

	require.NoError(t, g.SetStart(Position{Row: 0, Col: 0}))
	require.NoError(t, g.SetStart(Position{Row: 0, Col: 1}))
	start, ok := g.Start()
	assert.True(t, ok)
	assert.Equal(t, Position{Row: 0, Col: 1}, start)

	// the previous start is an ordinary cell again
	assert.NoError(t, g.ToggleObstacle(Position{Row: 0, Col: 0}))

	require.NoError(t, g.SetEnd(Position{Row: 0, Col: 1}))
	end, ok := g.End()
	assert.True(t, ok)
	assert.Equal(t, start, end)
}

func TestResetSearchState(t *testing.T) {
	g, err := New(2, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetWalkable(Position{Row: 1, Col: 1}, false))

	for i := 0; i < g.Size(); i++ {
		c := g.At(i)
		c.G, c.H, c.F = i, 2*i, 3*i
		c.Parent = 0
		c.OnPath = true
	}

	g.ResetSearchState()
	once := g.String()
	snapshot := append([]Cell(nil), g.cells...)

	g.ResetSearchState()
	assert.Equal(t, snapshot, g.cells)
	assert.Equal(t, once, g.String())

	for i, c := range g.cells {
		assert.Equal(t, Infinity, c.G)
		assert.Zero(t, c.H)
		assert.Zero(t, c.F)
		assert.Equal(t, NoParent, c.Parent)
		assert.False(t, c.OnPath)
		assert.False(t, c.Reached())
		assert.Equal(t, i != 4, c.Walkable)
	}
}

func TestReinitialize(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(Position{Row: 0, Col: 0}))
	require.NoError(t, g.SetEnd(Position{Row: 1, Col: 1}))
	require.NoError(t, g.SetWalkable(Position{Row: 0, Col: 1}, false))

	g.Reinitialize()

	_, ok := g.Start()
	assert.False(t, ok)
	_, ok = g.End()
	assert.False(t, ok)
	assert.Equal(t, "..\n..\n", g.String())
}

func TestViews(t *testing.T) {
	g, err := New(1, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(Position{Row: 0, Col: 0}))
	require.NoError(t, g.SetEnd(Position{Row: 0, Col: 2}))
	g.At(1).OnPath = true

	views := g.Views()
	require.Len(t, views, 1)
	assert.Equal(t, []CellView{
		{Walkable: true, IsStart: true},
		{Walkable: true, IsOnPath: true},
		{Walkable: true, IsEnd: true},
	}, views[0])

	v, err := g.View(Position{Row: 0, Col: 1})
	require.NoError(t, err)
	assert.True(t, v.IsOnPath)

	_, err = g.View(Position{Row: 1, Col: 1})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestApplyLayout(t *testing.T) {
	layout := []string{
		"S.#",
		".*#",
		"..E",
	}

	t.Run("round trip", func(t *testing.T) {
		g, err := New(3, 3)
		require.NoError(t, err)
		require.NoError(t, g.ApplyLayout(layout))

		assert.Equal(t, "S.#\n..#\n..E\n", g.String())
		start, _ := g.Start()
		end, _ := g.End()
		assert.Equal(t, Position{Row: 0, Col: 0}, start)
		assert.Equal(t, Position{Row: 2, Col: 2}, end)
	})

	tests := []struct {
		name   string
		layout []string
	}{
		{name: "too few rows", layout: []string{"...", "..."}},
		{name: "short row", layout: []string{"...", "..", "..."}},
		{name: "unknown rune", layout: []string{"...", ".x.", "..."}},
		{name: "two starts", layout: []string{"S..", "...", "..S"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(3, 3)
			require.NoError(t, err)
			require.NoError(t, g.SetWalkable(Position{Row: 1, Col: 1}, false))
			require.NoError(t, g.SetStart(Position{Row: 0, Col: 0}))
			require.NoError(t, g.SetEnd(Position{Row: 2, Col: 2}))

			err = g.ApplyLayout(tt.layout)
			assert.ErrorIs(t, err, ErrInvalidLayout)
			assert.Equal(t, "S..\n.#.\n..E\n", g.String())
			start, ok := g.Start()
			assert.True(t, ok)
			assert.Equal(t, Position{Row: 0, Col: 0}, start)
		})
	}

	t.Run("replaces previous content", func(t *testing.T) {
		g, err := New(3, 3)
		require.NoError(t, err)
		require.NoError(t, g.SetWalkable(Position{Row: 1, Col: 0}, false))
		require.NoError(t, g.SetEnd(Position{Row: 0, Col: 1}))

		require.NoError(t, g.ApplyLayout([]string{"S..", "...", "..."}))
		assert.Equal(t, "S..\n...\n...\n", g.String())
		_, ok := g.End()
		assert.False(t, ok)
	})
}

func TestCheckLayout(t *testing.T) {
	assert.NoError(t, CheckLayout(3, 3, []string{"S.#", "...", "..E"}))
	assert.ErrorIs(t, CheckLayout(5, 5, []string{"S.E"}), ErrInvalidLayout)
	assert.ErrorIs(t, CheckLayout(0, 3, []string{"..."}), ErrInvalidDimensions)
}

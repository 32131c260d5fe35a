package domain

import (
	"testing"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "start", want: ModeStart},
		{in: "END", want: ModeEnd},
		{in: " barrier ", want: ModeBarrier},
		{in: "wall", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewBoard(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	b := NewBoard(g)
	assert.Nil(t, b.Start)
	assert.Nil(t, b.End)
	assert.Equal(t, "..\n..\n", b.Text)

	require.NoError(t, g.ApplyLayout([]string{"S#", ".E"}))
	b = NewBoard(g)
	require.NotNil(t, b.Start)
	require.NotNil(t, b.End)
	assert.Equal(t, grid.Position{Row: 0, Col: 0}, *b.Start)
	assert.Equal(t, grid.Position{Row: 1, Col: 1}, *b.End)
	assert.Equal(t, 2, b.Rows)
	assert.Equal(t, 2, b.Cols)
	assert.False(t, b.Cells[0][1].Walkable)
	assert.Equal(t, "S#\n.E\n", b.Text)
}

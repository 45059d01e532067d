package environment

import (
	"errors"
	"math"
	"testing"

	"aerospace-tamp-sim/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObstacle(t *testing.T) {
	tests := []struct {
		name     string
		vertices []common.Point
		wantErr  bool
	}{
		{name: "nil", vertices: nil, wantErr: true},
		{name: "two vertices", vertices: []common.Point{common.Pt(0, 0), common.Pt(1, 1)}, wantErr: true},
		{name: "collinear triangle", vertices: []common.Point{common.Pt(0, 0), common.Pt(1, 1), common.Pt(2, 2)}},
		{name: "square", vertices: []common.Point{common.Pt(0, 0), common.Pt(2, 0), common.Pt(2, 2), common.Pt(0, 2)}},
		{name: "nan vertex", vertices: []common.Point{common.Pt(0, 0), common.Pt(math.NaN(), 1), common.Pt(2, 2)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := NewObstacle(tt.vertices)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.vertices), o.NumVertices())
		})
	}
}

func TestObstacleIsImmutable(t *testing.T) {
	vertices := []common.Point{common.Pt(0, 0), common.Pt(2, 0), common.Pt(0, 2)}
	o, err := NewObstacle(vertices)
	require.NoError(t, err)

	vertices[0] = common.Pt(100, 100)
	got := o.Vertices()
	assert.Equal(t, common.Pt(0, 0), got[0])

	got[1] = common.Pt(50, 50)
	assert.Equal(t, common.Pt(2, 0), o.Vertices()[1])
}

func TestObstacleBoundary(t *testing.T) {
	o, err := NewObstacle([]common.Point{common.Pt(0, 0), common.Pt(2, 0), common.Pt(0, 2)})
	require.NoError(t, err)

	boundary := o.Boundary()
	require.Len(t, boundary, 4)
	assert.Equal(t, boundary[0], boundary[3])

	ring := o.Ring()
	require.Len(t, ring, 4)
	assert.True(t, ring.Closed())
}

func TestObstacleGeometry(t *testing.T) {
	square, err := NewObstacle([]common.Point{common.Pt(1, 1), common.Pt(5, 1), common.Pt(5, 4), common.Pt(1, 4)})
	require.NoError(t, err)

	assert.InDelta(t, 12.0, square.Area(), 1e-9)
	assert.True(t, square.Contains(common.Pt(3, 2)))
	assert.False(t, square.Contains(common.Pt(6, 2)))
	assert.False(t, square.Contains(common.Pt(3, 0)))

	lo, hi := square.Bound()
	assert.Equal(t, common.Pt(1, 1), lo)
	assert.Equal(t, common.Pt(5, 4), hi)

	line, err := NewObstacle([]common.Point{common.Pt(0, 0), common.Pt(1, 1), common.Pt(2, 2)})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, line.Area(), 1e-12)
}

package planning

import (
	"errors"
	"math"
	"testing"

	"aerospace-tamp-sim/internal/common"
	"aerospace-tamp-sim/internal/environment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanPathStraightLine(t *testing.T) {
	path, err := PlanPath(common.Pt(0, 0), common.Pt(10, 0), 10)
	require.NoError(t, err)
	require.Len(t, path, 10)

	assert.Equal(t, common.Pt(0, 0), path.Start())
	assert.Equal(t, common.Pt(10, 0), path.End())
	for i := 1; i < len(path); i++ {
		assert.InDelta(t, 10.0/9.0, path[i].X-path[i-1].X, 1e-9)
		assert.Equal(t, 0.0, path[i].Y)
	}
	assert.InDelta(t, 10.0, path.Length(), 1e-9)
}

func TestPlanPathDiagonal(t *testing.T) {
	start, goal := common.Pt(5, 5), common.Pt(28, 17)
	path, err := PlanPath(start, goal, 4)
	require.NoError(t, err)
	require.Len(t, path, 4)

	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[3])
	assert.True(t, path[1].Equal(common.Pt(5+23.0/3, 5+12.0/3), 1e-9))
	assert.True(t, path[2].Equal(common.Pt(5+46.0/3, 5+24.0/3), 1e-9))
}

func TestPlanPathSamePoint(t *testing.T) {
	path, err := PlanPath(common.Pt(3, 3), common.Pt(3, 3), 5)
	require.NoError(t, err)
	for _, p := range path {
		assert.Equal(t, common.Pt(3, 3), p)
	}
	assert.Zero(t, path.Length())
}

func TestPlanPathValidation(t *testing.T) {
	tests := []struct {
		name        string
		start, goal common.Point
		steps       int
	}{
		{name: "one step", start: common.Pt(0, 0), goal: common.Pt(1, 1), steps: 1},
		{name: "zero steps", start: common.Pt(0, 0), goal: common.Pt(1, 1), steps: 0},
		{name: "negative steps", start: common.Pt(0, 0), goal: common.Pt(1, 1), steps: -4},
		{name: "nan start", start: common.Pt(math.NaN(), 0), goal: common.Pt(1, 1), steps: 10},
		{name: "inf goal", start: common.Pt(0, 0), goal: common.Pt(1, math.Inf(1)), steps: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := PlanPath(tt.start, tt.goal, tt.steps)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrInvalidArgument))
			assert.Nil(t, path)
		})
	}
}

func TestLinearPlannerIgnoresObstacles(t *testing.T) {
	wall, err := environment.NewObstacle([]common.Point{
		common.Pt(4, -5), common.Pt(6, -5), common.Pt(6, 5), common.Pt(4, 5),
	})
	require.NoError(t, err)

	var planner Planner = NewLinearPlanner()
	with, err := planner.Plan(common.Pt(0, 0), common.Pt(10, 0), []*environment.Obstacle{wall})
	require.NoError(t, err)
	without, err := PlanPath(common.Pt(0, 0), common.Pt(10, 0), DefaultSteps)
	require.NoError(t, err)

	assert.Equal(t, without, with)
	assert.NotEmpty(t, Conflicts(with, []*environment.Obstacle{wall}))
}

func TestLinearPlannerSteps(t *testing.T) {
	path, err := (&LinearPlanner{}).Plan(common.Pt(0, 0), common.Pt(1, 1), nil)
	require.NoError(t, err)
	assert.Len(t, path, DefaultSteps)

	path, err = (&LinearPlanner{Steps: 3}).Plan(common.Pt(0, 0), common.Pt(1, 1), nil)
	require.NoError(t, err)
	assert.Len(t, path, 3)

	_, err = (&LinearPlanner{Steps: 1}).Plan(common.Pt(0, 0), common.Pt(1, 1), nil)
	assert.True(t, errors.Is(err, common.ErrInvalidArgument))
}

func TestConflicts(t *testing.T) {
	box, err := environment.NewObstacle([]common.Point{
		common.Pt(4, -1), common.Pt(6, -1), common.Pt(6, 1), common.Pt(4, 1),
	})
	require.NoError(t, err)

	path := Path{common.Pt(0, 0), common.Pt(5, 0), common.Pt(10, 0)}
	conflicts := Conflicts(path, []*environment.Obstacle{nil, box})
	require.Len(t, conflicts, 1)
	assert.Equal(t, Conflict{Index: 1, Point: common.Pt(5, 0), Obstacle: 1}, conflicts[0])

	assert.Empty(t, Conflicts(path, nil))
}

func TestPathAccessorsOnEmpty(t *testing.T) {
	var p Path
	assert.Equal(t, common.Point{}, p.Start())
	assert.Equal(t, common.Point{}, p.End())
	assert.Zero(t, p.Length())
}

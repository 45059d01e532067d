// Package planning generates paths between two points in the workspace.
//
// The Planner interface is the seam for obstacle-aware strategies. The only
// strategy shipped is LinearPlanner, which interpolates a straight line and
// does not look at obstacles at all.
package planning

import (
	"fmt"
	"strings"

	"aerospace-tamp-sim/internal/common"
	"aerospace-tamp-sim/internal/environment"

	"gonum.org/v1/gonum/floats"
)

// DefaultSteps is the number of points a drone path contains.
const DefaultSteps = 10

// Path is an ordered sequence of points from start to goal.
type Path []common.Point

// Planner produces a path from start to goal given the current obstacle set.
type Planner interface {
	Plan(start, goal common.Point, obstacles []*environment.Obstacle) (Path, error)
}

// PlanPath returns steps points evenly spaced on the segment start-goal.
// The first point is start and the last is goal. steps must be at least 2.
func PlanPath(start, goal common.Point, steps int) (Path, error) {
	const op = "PlanPath"
	if err := start.Validate(op, "start"); err != nil {
		return nil, err
	}
	if err := goal.Validate(op, "goal"); err != nil {
		return nil, err
	}
	if steps < 2 {
		return nil, common.InvalidArgument(op, "steps must be >= 2, got %d", steps)
	}

	xs := floats.Span(make([]float64, steps), start.X, goal.X)
	ys := floats.Span(make([]float64, steps), start.Y, goal.Y)

	path := make(Path, steps)
	for i := range path {
		path[i] = common.Pt(xs[i], ys[i])
	}
	// pin the endpoints exactly
	path[0] = start
	path[steps-1] = goal
	return path, nil
}

// LinearPlanner interpolates a straight line and ignores obstacles.
type LinearPlanner struct {
	// Steps is the number of path points; zero means DefaultSteps.
	Steps int
}

// NewLinearPlanner creates a LinearPlanner with DefaultSteps.
func NewLinearPlanner() *LinearPlanner {
	return &LinearPlanner{Steps: DefaultSteps}
}

// Plan implements Planner. The obstacle set is not consulted.
func (p *LinearPlanner) Plan(start, goal common.Point, _ []*environment.Obstacle) (Path, error) {
	steps := p.Steps
	if steps == 0 {
		steps = DefaultSteps
	}
	return PlanPath(start, goal, steps)
}

// Start returns the first point, or the zero point for an empty path.
func (p Path) Start() common.Point {
	if len(p) == 0 {
		return common.Point{}
	}
	return p[0]
}

// End returns the last point, or the zero point for an empty path.
func (p Path) End() common.Point {
	if len(p) == 0 {
		return common.Point{}
	}
	return p[len(p)-1]
}

// Length returns the polyline length of the path.
func (p Path) Length() float64 {
	if len(p) < 2 {
		return 0
	}
	segments := make([]float64, len(p)-1)
	for i := 1; i < len(p); i++ {
		segments[i-1] = p[i-1].Distance(p[i])
	}
	return floats.Sum(segments)
}

// String representation for logging
func (p Path) String() string {
	strs := make([]string, len(p))
	for i, pt := range p {
		strs[i] = pt.String()
	}
	return fmt.Sprintf("Path(%s)", strings.Join(strs, " -> "))
}

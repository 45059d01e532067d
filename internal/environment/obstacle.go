package environment

import (
	"fmt"
	"math"

	"aerospace-tamp-sim/internal/common"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// MinObstacleVertices is the smallest vertex count that forms a polygon.
const MinObstacleVertices = 3

// Obstacle is an immutable polygon in the workspace.
// Self-intersection is not checked; degenerate (collinear) polygons are accepted.
type Obstacle struct {
	vertices []common.Point
	ring     orb.Ring // closed: ring[len-1] == ring[0]
}

// NewObstacle builds an obstacle from an ordered vertex list.
// The vertices are copied, so later changes to the slice do not affect the obstacle.
func NewObstacle(vertices []common.Point) (*Obstacle, error) {
	const op = "NewObstacle"
	if len(vertices) < MinObstacleVertices {
		return nil, common.InvalidArgument(op, "obstacle needs at least %d vertices, got %d", MinObstacleVertices, len(vertices))
	}
	ring := make(orb.Ring, 0, len(vertices)+1)
	for i, v := range vertices {
		if err := v.Validate(op, fmt.Sprintf("vertex %d", i)); err != nil {
			return nil, err
		}
		ring = append(ring, orb.Point{v.X, v.Y})
	}
	ring = append(ring, ring[0])

	return &Obstacle{
		vertices: common.ClonePoints(vertices),
		ring:     ring,
	}, nil
}

// valid is false for the zero value, which was not built through NewObstacle.
func (o *Obstacle) valid() bool {
	return o != nil && len(o.vertices) >= MinObstacleVertices
}

// Vertices returns a copy of the vertex list.
func (o *Obstacle) Vertices() []common.Point {
	return common.ClonePoints(o.vertices)
}

// NumVertices returns the number of polygon vertices.
func (o *Obstacle) NumVertices() int {
	return len(o.vertices)
}

// Boundary returns the closed boundary: the vertices followed by vertex 0.
func (o *Obstacle) Boundary() []common.Point {
	boundary := make([]common.Point, 0, len(o.vertices)+1)
	boundary = append(boundary, o.vertices...)
	return append(boundary, o.vertices[0])
}

// Ring returns the boundary as a closed orb ring.
func (o *Obstacle) Ring() orb.Ring {
	return o.ring.Clone()
}

// Contains reports whether p lies inside the polygon or on its boundary.
func (o *Obstacle) Contains(p common.Point) bool {
	return planar.RingContains(o.ring, orb.Point{p.X, p.Y})
}

// Bound returns the axis-aligned bounding box as (min, max).
func (o *Obstacle) Bound() (common.Point, common.Point) {
	b := o.ring.Bound()
	return common.Pt(b.Min[0], b.Min[1]), common.Pt(b.Max[0], b.Max[1])
}

// Area returns the unsigned polygon area. Degenerate polygons have zero area.
func (o *Obstacle) Area() float64 {
	return math.Abs(planar.Area(o.ring))
}

// String representation for logging
func (o *Obstacle) String() string {
	return fmt.Sprintf("Obstacle[%d vertices] %v", len(o.vertices), o.vertices)
}

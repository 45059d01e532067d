// Package environment holds the bounded workspace: its extent, the named
// waypoints and the polygonal obstacles. Everything here is append-only.
package environment

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"aerospace-tamp-sim/internal/common"
)

// Default vertex bounds used by GenerateRandomObstacles callers.
const (
	DefaultMinVertices = 3
	DefaultMaxVertices = 6
)

// Option configures a World.
type Option func(*World)

// WithRand sets the random source used when GenerateRandomObstacles gets a nil rng.
func WithRand(rng *rand.Rand) Option {
	return func(w *World) {
		if rng != nil {
			w.rng = rng
		}
	}
}

// World is the bounded 2D workspace [0,width] x [0,height].
type World struct {
	width     float64
	height    float64
	waypoints map[string]common.Point
	order     []string // waypoint insertion order
	obstacles []*Obstacle
	rng       *rand.Rand
}

// NewWorld creates a workspace. Both dimensions must be finite and positive.
func NewWorld(width, height float64, opts ...Option) (*World, error) {
	const op = "NewWorld"
	if !positive(width) {
		return nil, common.InvalidArgument(op, "width must be a finite number > 0, got %v", width)
	}
	if !positive(height) {
		return nil, common.InvalidArgument(op, "height must be a finite number > 0, got %v", height)
	}

	w := &World{
		width:     width,
		height:    height,
		waypoints: make(map[string]common.Point),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// Width returns the extent along the x axis.
func (w *World) Width() float64 {
	return w.width
}

// Height returns the extent along the y axis.
func (w *World) Height() float64 {
	return w.height
}

// Contains reports whether p lies inside the world extent, edges included.
func (w *World) Contains(p common.Point) bool {
	return p.Valid() && p.X >= 0 && p.X <= w.width && p.Y >= 0 && p.Y <= w.height
}

// AddWaypoint registers a named location. Names are unique; a failed call
// leaves the waypoint set unchanged.
func (w *World) AddWaypoint(name string, location common.Point) error {
	const op = "World.AddWaypoint"
	if name == "" {
		return common.InvalidArgument(op, "waypoint name must not be empty")
	}
	if _, exists := w.waypoints[name]; exists {
		return common.DuplicateKey(op, "waypoint with name %q already exists", name)
	}
	if err := location.Validate(op, "location"); err != nil {
		return err
	}
	w.waypoints[name] = location
	w.order = append(w.order, name)
	return nil
}

// Waypoint returns the location registered under name.
func (w *World) Waypoint(name string) (common.Point, error) {
	p, ok := w.waypoints[name]
	if !ok {
		return common.Point{}, common.NotFound("World.Waypoint", "no waypoint named %q", name)
	}
	return p, nil
}

// WaypointNames returns waypoint names in insertion order.
func (w *World) WaypointNames() []string {
	names := make([]string, len(w.order))
	copy(names, w.order)
	return names
}

// Waypoints returns a copy of the name to location mapping.
func (w *World) Waypoints() map[string]common.Point {
	out := make(map[string]common.Point, len(w.waypoints))
	for name, p := range w.waypoints {
		out[name] = p
	}
	return out
}

// AddObstacle appends an obstacle. Nil or unconstructed obstacles are rejected.
func (w *World) AddObstacle(obstacle *Obstacle) error {
	if !obstacle.valid() {
		return common.TypeMismatch("World.AddObstacle", "obstacle must be created with NewObstacle")
	}
	w.obstacles = append(w.obstacles, obstacle)
	return nil
}

// Obstacles returns the obstacles in insertion order. The slice is a copy;
// the obstacles themselves are immutable.
func (w *World) Obstacles() []*Obstacle {
	out := make([]*Obstacle, len(w.obstacles))
	copy(out, w.obstacles)
	return out
}

// ObstaclesAt returns every obstacle containing p.
func (w *World) ObstaclesAt(p common.Point) []*Obstacle {
	var hits []*Obstacle
	for _, o := range w.obstacles {
		if o.Contains(p) {
			hits = append(hits, o)
		}
	}
	return hits
}

// GenerateRandomObstacles appends count random polygons. Vertex counts are
// uniform in [minVertices, maxVertices] and vertices uniform inside the extent.
// A nil rng falls back to the world's own source.
func (w *World) GenerateRandomObstacles(rng *rand.Rand, count, minVertices, maxVertices int) error {
	const op = "World.GenerateRandomObstacles"
	if count < 0 {
		return common.InvalidArgument(op, "number of obstacles must be non-negative, got %d", count)
	}
	if minVertices <= 0 || maxVertices <= 0 {
		return common.InvalidArgument(op, "vertex bounds must be positive, got [%d, %d]", minVertices, maxVertices)
	}
	if minVertices < MinObstacleVertices {
		return common.InvalidArgument(op, "obstacles need at least %d vertices, min vertices is %d", MinObstacleVertices, minVertices)
	}
	if minVertices > maxVertices {
		return common.InvalidArgument(op, "min vertices %d exceeds max vertices %d", minVertices, maxVertices)
	}
	if rng == nil {
		rng = w.rng
	}

	for i := 0; i < count; i++ {
		n := minVertices + rng.Intn(maxVertices-minVertices+1)
		vertices := make([]common.Point, n)
		for j := range vertices {
			vertices[j] = common.NewRandomPoint(rng, w.width, w.height)
		}
		obstacle, err := NewObstacle(vertices)
		if err != nil {
			return fmt.Errorf("failed to generate obstacle %d: %w", i, err)
		}
		if err := w.AddObstacle(obstacle); err != nil {
			return err
		}
	}
	return nil
}

// String representation for logging
func (w *World) String() string {
	return fmt.Sprintf("World[%.2f x %.2f] waypoints: %d obstacles: %d", w.width, w.height, len(w.waypoints), len(w.obstacles))
}

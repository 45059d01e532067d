package agent

import (
	"fmt"
	"math"

	"aerospace-tamp-sim/internal/common"
	"aerospace-tamp-sim/internal/environment"
	"aerospace-tamp-sim/internal/planning"

	"github.com/google/uuid"
)

// DroneOption configures a Drone.
type DroneOption func(*Drone)

// WithPlanner replaces the default LinearPlanner.
func WithPlanner(p planning.Planner) DroneOption {
	return func(d *Drone) {
		if p != nil {
			d.planner = p
		}
	}
}

// WithObstacles sets where the drone reads obstacles from before planning.
func WithObstacles(src ObstacleSource) DroneOption {
	return func(d *Drone) {
		d.obstacles = src
	}
}

// WithDroneID overrides the generated identifier.
func WithDroneID(id string) DroneOption {
	return func(d *Drone) {
		if id != "" {
			d.id = id
		}
	}
}

// Drone is a planner-driven agent.
type Drone struct {
	id         string
	position   common.Point
	maxSpeed   float64
	trajectory []common.Point
	planner    planning.Planner
	obstacles  ObstacleSource
}

// NewDrone creates a drone at initial. maxSpeed must be a finite number; it
// is carried as an attribute and does not limit movement.
func NewDrone(initial common.Point, maxSpeed float64, opts ...DroneOption) (*Drone, error) {
	const op = "NewDrone"
	if err := initial.Validate(op, "initial position"); err != nil {
		return nil, err
	}
	if math.IsNaN(maxSpeed) || math.IsInf(maxSpeed, 0) {
		return nil, common.InvalidArgument(op, "maximum speed must be a finite number, got %v", maxSpeed)
	}

	d := &Drone{
		id:       fmt.Sprintf("drone-%s", uuid.NewString()[:8]),
		position: initial,
		maxSpeed: maxSpeed,
		planner:  planning.NewLinearPlanner(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// ID returns the unique identifier of the drone.
func (d *Drone) ID() string {
	return d.id
}

// Label returns the identifier; drones have no separate name.
func (d *Drone) Label() string {
	return d.id
}

// Kind returns KindDrone.
func (d *Drone) Kind() Kind {
	return KindDrone
}

// Position returns the current position of the drone.
func (d *Drone) Position() common.Point {
	return d.position
}

// MaxSpeed returns the configured maximum speed.
func (d *Drone) MaxSpeed() float64 {
	return d.maxSpeed
}

// Trajectory returns a copy of the recorded positions.
func (d *Drone) Trajectory() []common.Point {
	return common.ClonePoints(d.trajectory)
}

// NavigateTo plans from the current position to target and walks the path,
// recording every point, start included. On error nothing is recorded.
func (d *Drone) NavigateTo(target common.Point) error {
	const op = "Drone.NavigateTo"
	if err := target.Validate(op, "target position"); err != nil {
		return err
	}

	var obstacles []*environment.Obstacle
	if d.obstacles != nil {
		obstacles = d.obstacles.Obstacles()
	}
	path, err := d.planner.Plan(d.position, target, obstacles)
	if err != nil {
		return fmt.Errorf("drone %s failed to plan path: %w", d.id, err)
	}

	for _, p := range path {
		d.position = p
		d.trajectory = append(d.trajectory, p)
	}
	return nil
}

// String representation for logging
func (d *Drone) String() string {
	return fmt.Sprintf("Drone[%s] Pos: %s MaxSpeed: %.2f Trajectory: %d", d.id, d.position, d.maxSpeed, len(d.trajectory))
}

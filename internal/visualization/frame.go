// Package visualization turns world and agent state into read-only frames
// for presentation: on screen, or as GeoJSON.
package visualization

import (
	"aerospace-tamp-sim/internal/agent"
	"aerospace-tamp-sim/internal/common"
	"aerospace-tamp-sim/internal/environment"
)

// Waypoint is a named location in a frame.
type Waypoint struct {
	Name     string
	Location common.Point
}

// AgentState is a copy of one agent's observable state.
type AgentState struct {
	ID         string
	Label      string
	Kind       agent.Kind
	Position   common.Point
	Trajectory []common.Point
}

// Frame is a deep copy of everything a presenter draws. Changing a frame
// never touches the world or the agents it was captured from.
type Frame struct {
	Width     float64
	Height    float64
	Waypoints []Waypoint       // insertion order
	Obstacles [][]common.Point // closed boundaries
	Agents    []AgentState
}

// Capture copies the current state of world and agents.
func Capture(world *environment.World, agents []agent.Agent) Frame {
	f := Frame{
		Width:  world.Width(),
		Height: world.Height(),
	}
	for _, name := range world.WaypointNames() {
		loc, err := world.Waypoint(name)
		if err != nil {
			continue
		}
		f.Waypoints = append(f.Waypoints, Waypoint{Name: name, Location: loc})
	}
	for _, o := range world.Obstacles() {
		f.Obstacles = append(f.Obstacles, o.Boundary())
	}
	for _, a := range agents {
		f.Agents = append(f.Agents, AgentState{
			ID:         a.ID(),
			Label:      a.Label(),
			Kind:       a.Kind(),
			Position:   a.Position(),
			Trajectory: a.Trajectory(),
		})
	}
	return f
}

// Upto returns the frame at tick out of ticks, with each trajectory revealed
// proportionally and each agent placed at its last revealed point. The last
// tick (and anything past it) shows the full frame.
func (f Frame) Upto(tick, ticks int) Frame {
	out := f
	out.Agents = make([]AgentState, len(f.Agents))
	for i, a := range f.Agents {
		a.Trajectory = common.ClonePoints(a.Trajectory)
		if ticks > 1 && tick < ticks-1 && len(a.Trajectory) > 0 {
			if tick < 0 {
				tick = 0
			}
			n := len(a.Trajectory) * (tick + 1) / ticks
			if n < 1 {
				n = 1
			}
			a.Trajectory = a.Trajectory[:n]
			a.Position = a.Trajectory[n-1]
		}
		out.Agents[i] = a
	}
	return out
}

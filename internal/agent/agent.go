// Package agent contains the movable entities of the simulation.
//
// A Drone follows the path produced by its planner and records every point
// of it. A Payload jumps straight to its target and records only the target.
package agent

import (
	"aerospace-tamp-sim/internal/common"
	"aerospace-tamp-sim/internal/environment"
)

// Kind identifies the concrete agent type.
type Kind string

const (
	KindDrone   Kind = "drone"
	KindPayload Kind = "payload"
)

// Agent is the read side shared by all movable entities.
type Agent interface {
	// ID returns the unique identifier of the agent.
	ID() string
	// Label returns a human-readable name for presentation.
	Label() string
	// Kind returns the agent type.
	Kind() Kind
	// Position returns the current position.
	Position() common.Point
	// Trajectory returns a copy of every position recorded so far.
	Trajectory() []common.Point
}

// ObstacleSource supplies the obstacles handed to a planner.
// *environment.World satisfies it.
type ObstacleSource interface {
	Obstacles() []*environment.Obstacle
}

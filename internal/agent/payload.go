package agent

import (
	"fmt"

	"aerospace-tamp-sim/internal/common"

	"github.com/google/uuid"
)

// Dynamics holds payload dynamics parameters. Nothing reads them yet.
type Dynamics map[string]float64

// Payload is an agent that moves directly to its target.
type Payload struct {
	id         string
	name       string
	position   common.Point
	dynamics   Dynamics
	trajectory []common.Point
}

// NewPayload creates a payload at initial.
func NewPayload(name string, initial common.Point, dynamics Dynamics) (*Payload, error) {
	if err := initial.Validate("NewPayload", "position"); err != nil {
		return nil, err
	}
	dyn := make(Dynamics, len(dynamics))
	for k, v := range dynamics {
		dyn[k] = v
	}
	return &Payload{
		id:       fmt.Sprintf("payload-%s", uuid.NewString()[:8]),
		name:     name,
		position: initial,
		dynamics: dyn,
	}, nil
}

// ID returns the unique identifier of the payload.
func (p *Payload) ID() string {
	return p.id
}

// Name returns the payload name.
func (p *Payload) Name() string {
	return p.name
}

// Label returns the name, or the id when the name is empty.
func (p *Payload) Label() string {
	if p.name == "" {
		return p.id
	}
	return p.name
}

// Kind returns KindPayload.
func (p *Payload) Kind() Kind {
	return KindPayload
}

// Position returns the current position of the payload.
func (p *Payload) Position() common.Point {
	return p.position
}

// Trajectory returns a copy of the recorded positions.
func (p *Payload) Trajectory() []common.Point {
	return common.ClonePoints(p.trajectory)
}

// Dynamics returns a copy of the dynamics parameters.
func (p *Payload) Dynamics() Dynamics {
	out := make(Dynamics, len(p.dynamics))
	for k, v := range p.dynamics {
		out[k] = v
	}
	return out
}

// MoveTo places the payload at target and records only the target.
// No path is interpolated.
func (p *Payload) MoveTo(target common.Point) error {
	if err := target.Validate("Payload.MoveTo", "target position"); err != nil {
		return err
	}
	p.position = target
	p.trajectory = append(p.trajectory, target)
	return nil
}

// UpdateDynamics is a placeholder; payloads are static between moves.
func (p *Payload) UpdateDynamics() {
}

// String representation for logging
func (p *Payload) String() string {
	return fmt.Sprintf("Payload[%s %q] Pos: %s Trajectory: %d", p.id, p.name, p.position, len(p.trajectory))
}

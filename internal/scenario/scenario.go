package scenario

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"aerospace-tamp-sim/internal/agent"
	"aerospace-tamp-sim/internal/catalog"
	"aerospace-tamp-sim/internal/common"
	"aerospace-tamp-sim/internal/environment"
	"aerospace-tamp-sim/internal/planning"
)

// Scenario is a fully wired world with its agents and pending missions.
type Scenario struct {
	World    *environment.World
	Catalog  *catalog.Catalog
	Drones   []*agent.Drone
	Payloads []*agent.Payload

	seed     int64
	agents   map[string]agent.Agent // by drone id or payload name
	missions []MissionConfig
	logger   *slog.Logger
}

// Build creates the world, declares the catalog and places the agents.
// A nil logger uses slog.Default().
func Build(cfg *Config, logger *slog.Logger) (*Scenario, error) {
	if cfg == nil {
		return nil, common.InvalidArgument("scenario.Build", "config must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	world, err := environment.NewWorld(cfg.World.Width, cfg.World.Height, environment.WithRand(rng))
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}
	for _, wp := range cfg.Waypoints {
		if err := world.AddWaypoint(wp.Name, common.Pt(wp.X, wp.Y)); err != nil {
			return nil, fmt.Errorf("failed to add waypoint: %w", err)
		}
	}
	for i, poly := range cfg.Obstacles.Polygons {
		vertices := make([]common.Point, len(poly))
		for j, v := range poly {
			vertices[j] = common.Pt(v[0], v[1])
		}
		obstacle, err := environment.NewObstacle(vertices)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		if err := world.AddObstacle(obstacle); err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
	}
	if r := cfg.Obstacles.Random; r != nil {
		minV, maxV := r.vertexBounds()
		if err := world.GenerateRandomObstacles(rng, r.Count, minV, maxV); err != nil {
			return nil, fmt.Errorf("failed to generate random obstacles: %w", err)
		}
	}

	cat := catalog.New()
	for _, p := range cfg.Predicates {
		if err := cat.DeclarePredicate(p.Name, p.Params); err != nil {
			return nil, fmt.Errorf("failed to declare predicate: %w", err)
		}
	}
	for _, s := range cfg.Streams {
		if err := cat.DeclareStream(s.Name, s.Domain, s.Outputs); err != nil {
			return nil, fmt.Errorf("failed to declare stream: %w", err)
		}
	}

	s := &Scenario{
		World:    world,
		Catalog:  cat,
		seed:     seed,
		agents:   make(map[string]agent.Agent, len(cfg.Drones)+len(cfg.Payloads)),
		missions: append([]MissionConfig(nil), cfg.Missions...),
		logger:   logger,
	}

	for _, dc := range cfg.Drones {
		d, err := agent.NewDrone(common.Pt(dc.X, dc.Y), dc.MaxSpeed,
			agent.WithDroneID(dc.ID),
			agent.WithPlanner(&planning.LinearPlanner{Steps: dc.steps()}),
			agent.WithObstacles(world),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create drone %q: %w", dc.ID, err)
		}
		s.Drones = append(s.Drones, d)
		s.agents[dc.ID] = d
	}
	for _, pc := range cfg.Payloads {
		p, err := agent.NewPayload(pc.Name, common.Pt(pc.X, pc.Y), agent.Dynamics(pc.Dynamics))
		if err != nil {
			return nil, fmt.Errorf("failed to create payload %q: %w", pc.Name, err)
		}
		s.Payloads = append(s.Payloads, p)
		s.agents[pc.Name] = p
	}

	logger.Info("scenario built",
		"world", world.String(),
		"seed", seed,
		"predicates", len(cat.Predicates()),
		"streams", len(cat.Streams()),
		"drones", len(s.Drones),
		"payloads", len(s.Payloads))
	return s, nil
}

// Seed returns the seed used for random generation.
func (s *Scenario) Seed() int64 {
	return s.seed
}

// Agents returns drones followed by payloads.
func (s *Scenario) Agents() []agent.Agent {
	out := make([]agent.Agent, 0, len(s.Drones)+len(s.Payloads))
	for _, d := range s.Drones {
		out = append(out, d)
	}
	for _, p := range s.Payloads {
		out = append(out, p)
	}
	return out
}

// Agent looks up an agent by drone id or payload name.
func (s *Scenario) Agent(ref string) (agent.Agent, error) {
	a, ok := s.agents[ref]
	if !ok {
		return nil, common.NotFound("Scenario.Agent", "no agent named %q", ref)
	}
	return a, nil
}

// Run executes the missions in order. The first failure stops the run; moves
// already made are kept.
func (s *Scenario) Run() error {
	s.logger.Info("starting missions", "count", len(s.missions))
	for i, m := range s.missions {
		if err := s.RunMission(m); err != nil {
			return fmt.Errorf("mission %d (%s -> %s): %w", i+1, m.Agent, m.Waypoint, err)
		}
	}
	s.LogState()
	return nil
}

// RunMission moves one agent to a waypoint. Drones navigate along their
// planned path; payloads move directly.
func (s *Scenario) RunMission(m MissionConfig) error {
	target, err := s.World.Waypoint(m.Waypoint)
	if err != nil {
		return err
	}
	a, err := s.Agent(m.Agent)
	if err != nil {
		return err
	}

	switch v := a.(type) {
	case *agent.Drone:
		before := len(v.Trajectory())
		if err := v.NavigateTo(target); err != nil {
			return err
		}
		leg := planning.Path(v.Trajectory()[before:])
		s.logger.Info("drone navigated",
			"drone", v.ID(),
			"waypoint", m.Waypoint,
			"points", len(leg),
			"length", leg.Length())
		if conflicts := planning.Conflicts(leg, s.World.Obstacles()); len(conflicts) > 0 {
			s.logger.Warn("path crosses obstacles",
				"drone", v.ID(),
				"points_inside", len(conflicts),
				"first_index", conflicts[0].Index)
		}
	case *agent.Payload:
		if err := v.MoveTo(target); err != nil {
			return err
		}
		v.UpdateDynamics()
		s.logger.Info("payload moved", "payload", v.Label(), "waypoint", m.Waypoint, "position", v.Position().String())
	default:
		return common.TypeMismatch("Scenario.RunMission", "unsupported agent type %T", a)
	}
	return nil
}

// LogState logs the current positions of all agents at debug level.
func (s *Scenario) LogState() {
	s.logger.Debug("current state", "world", s.World.String())
	for _, a := range s.Agents() {
		s.logger.Debug("agent",
			"id", a.ID(),
			"kind", string(a.Kind()),
			"position", a.Position().String(),
			"trajectory", len(a.Trajectory()))
	}
}

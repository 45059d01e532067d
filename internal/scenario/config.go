// Package scenario loads a scenario description and wires the world, the
// predicate catalog and the agents together, then runs the missions.
package scenario

import (
	"fmt"
	"os"

	"aerospace-tamp-sim/internal/common"
	"aerospace-tamp-sim/internal/environment"
	"aerospace-tamp-sim/internal/planning"

	"gopkg.in/yaml.v3"
)

// Config represents a scenario.yaml file.
type Config struct {
	World WorldConfig `yaml:"world"`

	// Seed for random obstacle generation. 0 means time-seeded.
	Seed int64 `yaml:"seed,omitempty"`

	Waypoints []WaypointConfig `yaml:"waypoints,omitempty"`
	Obstacles ObstaclesConfig  `yaml:"obstacles,omitempty"`

	// Symbolic planning metadata
	Predicates []PredicateConfig `yaml:"predicates,omitempty"`
	Streams    []StreamConfig    `yaml:"streams,omitempty"`

	Drones   []DroneConfig   `yaml:"drones,omitempty"`
	Payloads []PayloadConfig `yaml:"payloads,omitempty"`
	Missions []MissionConfig `yaml:"missions,omitempty"`
}

// WorldConfig is the workspace extent.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WaypointConfig is a named location.
type WaypointConfig struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// ObstaclesConfig lists explicit polygons and an optional random batch.
type ObstaclesConfig struct {
	Random   *RandomObstaclesConfig `yaml:"random,omitempty"`
	Polygons [][][]float64          `yaml:"polygons,omitempty"` // each vertex is [x, y]
}

// RandomObstaclesConfig controls GenerateRandomObstacles.
type RandomObstaclesConfig struct {
	Count       int `yaml:"count"`
	MinVertices int `yaml:"min_vertices,omitempty"` // Default: 3
	MaxVertices int `yaml:"max_vertices,omitempty"` // Default: 6
}

// PredicateConfig declares a predicate. Params is required; use [] for none.
type PredicateConfig struct {
	Name   string   `yaml:"name"`
	Params []string `yaml:"params"`
}

// StreamConfig declares a stream. Outputs may be omitted for test streams.
type StreamConfig struct {
	Name    string   `yaml:"name"`
	Domain  []string `yaml:"domain"`
	Outputs []string `yaml:"outputs,omitempty"`
}

// DroneConfig places a drone.
type DroneConfig struct {
	ID       string  `yaml:"id"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	MaxSpeed float64 `yaml:"max_speed"`
	Steps    int     `yaml:"steps,omitempty"` // Default: 10
}

// PayloadConfig places a payload.
type PayloadConfig struct {
	Name     string             `yaml:"name"`
	X        float64            `yaml:"x"`
	Y        float64            `yaml:"y"`
	Dynamics map[string]float64 `yaml:"dynamics,omitempty"`
}

// MissionConfig sends an agent (drone id or payload name) to a waypoint.
type MissionConfig struct {
	Agent    string `yaml:"agent"`
	Waypoint string `yaml:"waypoint"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, common.InvalidArgument("scenario.Parse", "invalid YAML: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross references and shapes that the constructors cannot
// see on their own: unique agent names, mission targets and vertex arity.
func (c *Config) Validate() error {
	const op = "Config.Validate"

	for i, poly := range c.Obstacles.Polygons {
		for j, v := range poly {
			if len(v) != 2 {
				return common.InvalidArgument(op, "obstacle %d vertex %d must have 2 coordinates, got %d", i, j, len(v))
			}
		}
	}

	waypoints := make(map[string]bool, len(c.Waypoints))
	for _, wp := range c.Waypoints {
		waypoints[wp.Name] = true
	}

	agents := make(map[string]bool, len(c.Drones)+len(c.Payloads))
	for i, d := range c.Drones {
		if d.ID == "" {
			return common.InvalidArgument(op, "drone %d has no id", i)
		}
		if agents[d.ID] {
			return common.DuplicateKey(op, "agent %q declared twice", d.ID)
		}
		if d.Steps != 0 && d.Steps < 2 {
			return common.InvalidArgument(op, "drone %q steps must be >= 2, got %d", d.ID, d.Steps)
		}
		agents[d.ID] = true
	}
	for i, p := range c.Payloads {
		if p.Name == "" {
			return common.InvalidArgument(op, "payload %d has no name", i)
		}
		if agents[p.Name] {
			return common.DuplicateKey(op, "agent %q declared twice", p.Name)
		}
		agents[p.Name] = true
	}

	for i, m := range c.Missions {
		if !agents[m.Agent] {
			return common.InvalidArgument(op, "mission %d references unknown agent %q", i, m.Agent)
		}
		if !waypoints[m.Waypoint] {
			return common.InvalidArgument(op, "mission %d references unknown waypoint %q", i, m.Waypoint)
		}
	}
	return nil
}

// vertexBounds returns the configured bounds with defaults applied.
func (r *RandomObstaclesConfig) vertexBounds() (int, int) {
	minV, maxV := r.MinVertices, r.MaxVertices
	if minV == 0 {
		minV = environment.DefaultMinVertices
	}
	if maxV == 0 {
		maxV = environment.DefaultMaxVertices
	}
	return minV, maxV
}

func (d DroneConfig) steps() int {
	if d.Steps == 0 {
		return planning.DefaultSteps
	}
	return d.Steps
}

// Default returns the demo scenario: a 30x20 world, two waypoints, five
// random obstacles, two drones flying to WP2 and two payloads moved to WP1.
func Default() *Config {
	return &Config{
		World: WorldConfig{Width: 30, Height: 20},
		Waypoints: []WaypointConfig{
			{Name: "WP1", X: 2, Y: 2},
			{Name: "WP2", X: 28, Y: 17},
		},
		Obstacles: ObstaclesConfig{
			Random: &RandomObstaclesConfig{Count: 5},
		},
		Predicates: []PredicateConfig{
			{Name: "At", Params: []string{"obj", "pose"}},
			{Name: "NavPose", Params: []string{"loc", "pose"}},
		},
		Streams: []StreamConfig{
			{Name: "s_navpose", Domain: []string{"loc"}, Outputs: []string{"pose"}},
			{Name: "s_motion", Domain: []string{"pose", "pose"}, Outputs: []string{"path"}},
			{Name: "s_place", Domain: []string{"loc", "obj"}, Outputs: []string{"pose"}},
			{Name: "t_collision_free", Domain: []string{"obj", "pose", "obj", "pose"}},
		},
		Drones: []DroneConfig{
			{ID: "drone-1", X: 5, Y: 5, MaxSpeed: 1.0},
			{ID: "drone-2", X: 28, Y: 17, MaxSpeed: 1.5},
		},
		Payloads: []PayloadConfig{
			{Name: "Payload1", X: 5, Y: 5},
			{Name: "Payload2", X: 7, Y: 7},
		},
		Missions: []MissionConfig{
			{Agent: "drone-1", Waypoint: "WP2"},
			{Agent: "drone-2", Waypoint: "WP2"},
			{Agent: "Payload1", Waypoint: "WP1"},
			{Agent: "Payload2", Waypoint: "WP1"},
		},
	}
}

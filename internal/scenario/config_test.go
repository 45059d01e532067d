package scenario

import (
	"errors"
	"path/filepath"
	"testing"

	"aerospace-tamp-sim/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "corridor.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.World.Width)
	assert.Equal(t, int64(7), cfg.Seed)
	require.Len(t, cfg.Waypoints, 2)
	require.NotNil(t, cfg.Obstacles.Random)
	assert.Equal(t, 3, cfg.Obstacles.Random.Count)
	require.Len(t, cfg.Obstacles.Polygons, 1)
	assert.Len(t, cfg.Obstacles.Polygons[0], 4)
	require.Len(t, cfg.Predicates, 2)
	assert.NotNil(t, cfg.Predicates[1].Params)
	assert.Nil(t, cfg.Streams[1].Outputs)
	assert.Equal(t, 5, cfg.Drones[0].Steps)
	assert.Equal(t, 1.5, cfg.Payloads[0].Dynamics["mass"])
	assert.Len(t, cfg.Missions, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("world: [unclosed"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidArgument))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		sentinel error
	}{
		{
			name:     "unknown mission agent",
			mutate:   func(c *Config) { c.Missions = append(c.Missions, MissionConfig{Agent: "ghost", Waypoint: "WP1"}) },
			sentinel: common.ErrInvalidArgument,
		},
		{
			name:     "unknown mission waypoint",
			mutate:   func(c *Config) { c.Missions = append(c.Missions, MissionConfig{Agent: "drone-1", Waypoint: "WP9"}) },
			sentinel: common.ErrInvalidArgument,
		},
		{
			name:     "duplicate agent",
			mutate:   func(c *Config) { c.Payloads = append(c.Payloads, PayloadConfig{Name: "drone-1"}) },
			sentinel: common.ErrDuplicateKey,
		},
		{
			name:     "drone without id",
			mutate:   func(c *Config) { c.Drones = append(c.Drones, DroneConfig{X: 1, Y: 1}) },
			sentinel: common.ErrInvalidArgument,
		},
		{
			name:     "payload without name",
			mutate:   func(c *Config) { c.Payloads = append(c.Payloads, PayloadConfig{X: 1, Y: 1}) },
			sentinel: common.ErrInvalidArgument,
		},
		{
			name:     "drone with one step",
			mutate:   func(c *Config) { c.Drones[0].Steps = 1 },
			sentinel: common.ErrInvalidArgument,
		},
		{
			name:     "vertex with three coordinates",
			mutate:   func(c *Config) { c.Obstacles.Polygons = [][][]float64{{{0, 0, 0}, {1, 0}, {0, 1}}} },
			sentinel: common.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 30.0, cfg.World.Width)
	assert.Equal(t, 20.0, cfg.World.Height)
	assert.Equal(t, 5, cfg.Obstacles.Random.Count)
}

func TestRandomObstaclesDefaults(t *testing.T) {
	minV, maxV := (&RandomObstaclesConfig{Count: 2}).vertexBounds()
	assert.Equal(t, 3, minV)
	assert.Equal(t, 6, maxV)

	minV, maxV = (&RandomObstaclesConfig{Count: 2, MinVertices: 4, MaxVertices: 8}).vertexBounds()
	assert.Equal(t, 4, minV)
	assert.Equal(t, 8, maxV)
}

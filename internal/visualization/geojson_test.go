package visualization

import (
	"testing"

	"aerospace-tamp-sim/internal/agent"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeGeoJSON(t *testing.T) {
	world, d, p := buildFixture(t)
	f := Capture(world, []agent.Agent{d, p})

	data, err := EncodeGeoJSON(f)
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)

	counts := map[string]int{}
	for _, feat := range fc.Features {
		counts[feat.Properties.MustString("kind")]++
	}
	assert.Equal(t, 1, counts[FeatureWorld])
	assert.Equal(t, 2, counts[FeatureWaypoint])
	assert.Equal(t, 1, counts[FeatureObstacle])
	// the payload has a single point, so only the drone gets a line
	assert.Equal(t, 1, counts[FeatureTrajectory])
	assert.Equal(t, 2, counts[FeatureAgent])
}

func TestFeatureCollectionGeometry(t *testing.T) {
	world, d, p := buildFixture(t)
	fc := FeatureCollection(Capture(world, []agent.Agent{d, p}))

	for _, feat := range fc.Features {
		switch feat.Properties["kind"] {
		case FeatureObstacle:
			poly, ok := feat.Geometry.(orb.Polygon)
			require.True(t, ok)
			assert.True(t, poly[0].Closed())
		case FeatureTrajectory:
			line, ok := feat.Geometry.(orb.LineString)
			require.True(t, ok)
			assert.Len(t, line, 10)
			assert.Equal(t, "d1", feat.Properties["agent"])
		case FeatureWaypoint:
			_, ok := feat.Geometry.(orb.Point)
			assert.True(t, ok)
		}
	}
}

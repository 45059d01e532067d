package visualization

import (
	"aerospace-tamp-sim/internal/common"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature kinds written to the "kind" property.
const (
	FeatureWorld      = "world"
	FeatureWaypoint   = "waypoint"
	FeatureObstacle   = "obstacle"
	FeatureTrajectory = "trajectory"
	FeatureAgent      = "agent"
)

// FeatureCollection converts a frame into GeoJSON features in world
// coordinates. Trajectories shorter than two points have no line feature.
func FeatureCollection(f Frame) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	extent := geojson.NewFeature(orb.Polygon{orb.Ring{
		{0, 0}, {f.Width, 0}, {f.Width, f.Height}, {0, f.Height}, {0, 0},
	}})
	extent.Properties["kind"] = FeatureWorld
	fc.Append(extent)

	for _, wp := range f.Waypoints {
		feat := geojson.NewFeature(toOrb(wp.Location))
		feat.Properties["kind"] = FeatureWaypoint
		feat.Properties["name"] = wp.Name
		fc.Append(feat)
	}

	for i, boundary := range f.Obstacles {
		ring := make(orb.Ring, len(boundary))
		for j, p := range boundary {
			ring[j] = toOrb(p)
		}
		feat := geojson.NewFeature(orb.Polygon{ring})
		feat.Properties["kind"] = FeatureObstacle
		feat.Properties["index"] = i
		fc.Append(feat)
	}

	for _, a := range f.Agents {
		if len(a.Trajectory) >= 2 {
			line := make(orb.LineString, len(a.Trajectory))
			for j, p := range a.Trajectory {
				line[j] = toOrb(p)
			}
			feat := geojson.NewFeature(line)
			feat.Properties["kind"] = FeatureTrajectory
			feat.Properties["agent"] = a.ID
			fc.Append(feat)
		}

		feat := geojson.NewFeature(toOrb(a.Position))
		feat.Properties["kind"] = FeatureAgent
		feat.Properties["agent"] = a.ID
		feat.Properties["label"] = a.Label
		feat.Properties["agent_kind"] = string(a.Kind)
		fc.Append(feat)
	}
	return fc
}

// EncodeGeoJSON renders a frame as a GeoJSON FeatureCollection document.
func EncodeGeoJSON(f Frame) ([]byte, error) {
	return FeatureCollection(f).MarshalJSON()
}

func toOrb(p common.Point) orb.Point {
	return orb.Point{p.X, p.Y}
}

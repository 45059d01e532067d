package planning

import (
	"aerospace-tamp-sim/internal/common"
	"aerospace-tamp-sim/internal/environment"
)

// Conflict marks a path point that lies inside an obstacle.
type Conflict struct {
	Index    int // index into the path
	Point    common.Point
	Obstacle int // index into the obstacle slice
}

// Conflicts lists every (path point, obstacle) pair where the point is inside
// the obstacle. It only inspects the path; planners are free to ignore it.
func Conflicts(path Path, obstacles []*environment.Obstacle) []Conflict {
	var out []Conflict
	for i, p := range path {
		for j, o := range obstacles {
			if o == nil {
				continue
			}
			if o.Contains(p) {
				out = append(out, Conflict{Index: i, Point: p, Obstacle: j})
			}
		}
	}
	return out
}

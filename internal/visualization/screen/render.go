// Package screen draws simulation frames in an ebiten window.
package screen

import (
	"fmt"
	"image/color"
	"strings"

	"aerospace-tamp-sim/internal/agent"
	"aerospace-tamp-sim/internal/common"
	"aerospace-tamp-sim/internal/visualization"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// DefaultTicks is the number of animation steps used to reveal trajectories.
	DefaultTicks = 20

	updatesPerTick    = 15 // ebiten runs at 60 TPS
	objectRadius      = 5.0
	waypointHalfSize  = 6.0
	trajectoryWidth   = 2.0
	obstacleLineWidth = 1.5
	worldBorderWidth  = 1.0
)

var (
	backgroundColor = color.RGBA{230, 230, 230, 255}
	borderColor     = color.RGBA{120, 120, 120, 255}
	obstacleColor   = color.RGBA{0, 0, 0, 255}
	waypointColor   = color.RGBA{0, 0, 255, 255}
	droneColor      = color.RGBA{220, 0, 0, 255}
	payloadColor    = color.RGBA{0, 160, 0, 255}
)

// Renderer implements ebiten.Game for a captured frame. It only reads the
// frame; the simulation is not touched while the window is open.
type Renderer struct {
	frame visualization.Frame
	ticks int

	updates int
	tick    int

	screenWidth  int
	screenHeight int
	transform    visualization.Transform
}

// NewRenderer creates a renderer that animates frame over ticks steps.
func NewRenderer(frame visualization.Frame, ticks int) *Renderer {
	if ticks <= 0 {
		ticks = DefaultTicks
	}
	return &Renderer{frame: frame, ticks: ticks}
}

// Update advances the animation tick and loops back after the last one.
func (r *Renderer) Update() error {
	r.updates++
	if r.updates%updatesPerTick == 0 {
		r.tick = (r.tick + 1) % r.ticks
	}
	return nil
}

// Draw is called every frame to render the current tick.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	f := r.frame.Upto(r.tick, r.ticks)

	r.drawWorld(screen, f)
	for _, boundary := range f.Obstacles {
		r.drawPolyline(screen, boundary, obstacleLineWidth, obstacleColor)
	}
	for _, wp := range f.Waypoints {
		x, y := r.transform.ToScreen(wp.Location)
		vector.DrawFilledRect(screen, x-waypointHalfSize, y-waypointHalfSize, 2*waypointHalfSize, 2*waypointHalfSize, waypointColor, true)
		ebitenutil.DebugPrintAt(screen, wp.Name, int(x)+8, int(y)-8)
	}
	for _, a := range f.Agents {
		clr := agentColor(a.Kind)
		r.drawPolyline(screen, a.Trajectory, trajectoryWidth, clr)
		x, y := r.transform.ToScreen(a.Position)
		if a.Kind == agent.KindDrone {
			// drones are drawn as an x
			vector.StrokeLine(screen, x-objectRadius, y-objectRadius, x+objectRadius, y+objectRadius, 2, clr, true)
			vector.StrokeLine(screen, x-objectRadius, y+objectRadius, x+objectRadius, y-objectRadius, 2, clr, true)
		} else {
			vector.DrawFilledCircle(screen, x, y, objectRadius, clr, true)
		}
	}

	r.drawDebugInfo(screen, f)
}

func (r *Renderer) drawWorld(screen *ebiten.Image, f visualization.Frame) {
	x0, y0 := r.transform.ToScreen(common.Pt(0, f.Height))
	vector.StrokeRect(screen, x0, y0, r.transform.Length(f.Width), r.transform.Length(f.Height), worldBorderWidth, borderColor, true)
}

func (r *Renderer) drawPolyline(screen *ebiten.Image, points []common.Point, width float32, clr color.Color) {
	for i := 1; i < len(points); i++ {
		x0, y0 := r.transform.ToScreen(points[i-1])
		x1, y1 := r.transform.ToScreen(points[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
	}
}

func (r *Renderer) drawDebugInfo(screen *ebiten.Image, f visualization.Frame) {
	lines := []string{
		fmt.Sprintf("Time Step: %d/%d", r.tick+1, r.ticks),
		fmt.Sprintf("TPS: %.1f", ebiten.ActualTPS()),
		fmt.Sprintf("World: %.1f x %.1f, Obstacles: %d", f.Width, f.Height, len(f.Obstacles)),
	}
	for _, a := range f.Agents {
		lines = append(lines, fmt.Sprintf("  %s (%s): %s, trajectory %d", a.Label, a.Kind, a.Position, len(a.Trajectory)))
	}
	ebitenutil.DebugPrint(screen, strings.Join(lines, "\n"))
}

// Layout is called when the window size changes.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != r.screenWidth || outsideHeight != r.screenHeight {
		r.screenWidth = outsideWidth
		r.screenHeight = outsideHeight
		r.transform = visualization.FitTransform(r.frame.Width, r.frame.Height, outsideWidth, outsideHeight, visualization.DefaultPadding)
	}
	return r.screenWidth, r.screenHeight
}

func agentColor(kind agent.Kind) color.Color {
	if kind == agent.KindDrone {
		return droneColor
	}
	return payloadColor
}

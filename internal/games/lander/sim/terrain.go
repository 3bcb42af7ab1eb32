// Package sim is the pure simulation core of the lander game: terrain
// generation, integration, landing qualification and cosmetic particles.
// It has no terminal or Bubble Tea dependencies.
package sim

import (
	"io"
	"math"
	"math/rand"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Point is a terrain vertex in world pixels. Y grows downward.
type Point struct {
	X, Y float64
}

// FlatRun is a maximal sequence of consecutive terrain points sharing one height.
type FlatRun struct {
	StartX, EndX, Y float64
}

// Width returns the horizontal span of the run.
func (r FlatRun) Width() float64 {
	return r.EndX - r.StartX
}

// Terrain is an immutable piecewise-linear height profile.
type Terrain struct {
	points []Point
	width  float64
	height float64
	logger *log.Logger
}

// NewTerrain wraps an explicit point list. width and height describe the
// world the profile lives in; height doubles as the "no ground" fallback.
func NewTerrain(points []Point, width, height float64, logger *log.Logger) *Terrain {
	pts := make([]Point, len(points))
	copy(pts, points)
	return &Terrain{
		points: pts,
		width:  width,
		height: height,
		logger: orDiscard(logger),
	}
}

// GenerateTerrain walks the world left to right emitting rough steps and
// flat landing runs, then patches the result so it spans [0, width].
func GenerateTerrain(rng *rand.Rand, cfg config.TerrainConfig, width, height float64, logger *log.Logger) *Terrain {
	logger = orDiscard(logger)
	step := cfg.Step

	pts := make([]Point, 0, int(width/step)+2)
	x := 0.0
	y := cfg.StartY
	flatSpots := 0
	afterFlat := false

	for x < width {
		forced := flatSpots < cfg.MinFlatSpots && x > cfg.ForcedMinX && x < cfg.ForcedMaxX
		chance := rng.Float64() < cfg.FlatChance

		if (forced || chance) && x < cfg.FlatLimitX && !afterFlat {
			flatWidth := cfg.FlatMinWidth + rng.Float64()*(cfg.FlatMaxWidth-cfg.FlatMinWidth)
			startX := x
			for i := 0; float64(i)*step < flatWidth && x < width; i++ {
				pts = append(pts, Point{X: x, Y: y})
				x += step
			}
			flatSpots++
			afterFlat = true
			logger.Debug("generated flat spot", "y", y, "from", startX, "to", x)
			continue
		}

		prev := y
		delta := (rng.Float64() - 0.5) * cfg.Roughness
		y = core.ClampF(y+delta, cfg.MinY, cfg.MaxY)
		if afterFlat && y == prev {
			// A rough step that fails to move would merge two pads into one.
			y = core.ClampF(prev-delta, cfg.MinY, cfg.MaxY)
			if y == prev {
				y = core.ClampF(prev-step/2, cfg.MinY, cfg.MaxY)
				if y == prev {
					y = core.ClampF(prev+step/2, cfg.MinY, cfg.MaxY)
				}
			}
		}
		afterFlat = false
		pts = append(pts, Point{X: x, Y: y})
		x += step
	}

	if len(pts) == 0 {
		pts = append(pts, Point{X: 0, Y: cfg.StartY}, Point{X: width, Y: cfg.StartY})
	} else if last := pts[len(pts)-1]; last.X < width {
		pts = append(pts, Point{X: width, Y: last.Y})
	}

	if flatSpots < cfg.MinFlatSpots {
		logger.Warn("not enough flat spots generated, adding one manually",
			"generated", flatSpots, "required", cfg.MinFlatSpots)
		flatY := cfg.FailsafeMinY + rng.Float64()*(cfg.FailsafeMaxY-cfg.FailsafeMinY)
		pts = spliceFlat(pts, cfg.FailsafeX, cfg.FailsafeWidth, step, flatY)
	}

	return &Terrain{
		points: pts,
		width:  width,
		height: height,
		logger: logger,
	}
}

// spliceFlat replaces every point in [start, start+w) with a level run at
// flatY that also claims the point at start+w, then restores x ordering
// keeping the first point for any duplicated x.
func spliceFlat(pts []Point, start, w, step, flatY float64) []Point {
	first := -1
	for i, p := range pts {
		if p.X >= start {
			first = i
			break
		}
	}
	if first == -1 {
		return pts
	}

	out := make([]Point, 0, len(pts)+int(w/step)+1)
	out = append(out, pts[:first]...)
	for i := 0; float64(i)*step < w; i++ {
		out = append(out, Point{X: start + float64(i)*step, Y: flatY})
	}
	end := start + w
	if pts[len(pts)-1].X >= end {
		out = append(out, Point{X: end, Y: flatY})
	}
	for _, p := range pts[first:] {
		if p.X >= end {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].X < out[j].X })
	if len(out) == 0 {
		return out
	}

	dedup := out[:1]
	for _, p := range out[1:] {
		if p.X != dedup[len(dedup)-1].X {
			dedup = append(dedup, p)
		}
	}
	return dedup
}

// Points returns a copy of the terrain vertices.
func (t *Terrain) Points() []Point {
	pts := make([]Point, len(t.points))
	copy(pts, t.points)
	return pts
}

// Len returns the number of vertices.
func (t *Terrain) Len() int {
	return len(t.points)
}

// Width returns the world width the terrain was built for.
func (t *Terrain) Width() float64 {
	return t.width
}

// Height returns the world height, which is also the fallback ground level.
func (t *Terrain) Height() float64 {
	return t.height
}

// HeightAt returns the interpolated terrain height under x.
func (t *Terrain) HeightAt(x float64) float64 {
	n := len(t.points)
	if n < 2 {
		t.logger.Warn("terrain has fewer than two points, using world floor", "points", n)
		return t.height
	}
	if x <= t.points[0].X {
		return t.points[0].Y
	}
	if x >= t.points[n-1].X {
		return t.points[n-1].Y
	}

	for i := 0; i < n-1; i++ {
		p1, p2 := t.points[i], t.points[i+1]
		if p1.X >= p2.X {
			continue
		}
		if x >= p1.X && x < p2.X {
			f := (x - p1.X) / (p2.X - p1.X)
			if !core.IsFinite(f) {
				t.logger.Warn("non-finite interpolation factor", "x", x, "p1", p1, "p2", p2)
				return p1.Y
			}
			return core.Lerp(p1.Y, p2.Y, f)
		}
	}

	last := t.points[n-1].Y
	t.logger.Warn("terrain height lookup failed, returning last point", "x", x, "y", last)
	return last
}

// Flatness measures the spread of terrain heights in [x-window, x+window]:
// every vertex inside the window plus the interpolated heights at both
// window edges. The spot is flat when that spread is below tolerance.
// An empty window reports an infinite spread.
func (t *Terrain) Flatness(x, window, tolerance float64) (bool, float64) {
	lo := math.Max(0, x-window)
	hi := math.Min(t.width, x+window)

	minY := math.Inf(1)
	maxY := math.Inf(-1)
	count := 0
	for _, p := range t.points {
		if p.X >= lo && p.X <= hi {
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
			count++
		}
	}

	if count > 0 {
		for _, edge := range [2]float64{t.HeightAt(lo), t.HeightAt(hi)} {
			if core.IsFinite(edge) {
				minY = math.Min(minY, edge)
				maxY = math.Max(maxY, edge)
			}
		}
	}

	diff := math.Inf(1)
	if count > 0 && core.IsFinite(minY) && core.IsFinite(maxY) {
		diff = maxY - minY
	}
	return diff < tolerance, diff
}

// FlatRuns returns every maximal run of two or more consecutive vertices
// with identical heights, left to right.
func (t *Terrain) FlatRuns() []FlatRun {
	var runs []FlatRun
	for i := 0; i < len(t.points); {
		j := i
		for j+1 < len(t.points) && t.points[j+1].Y == t.points[i].Y {
			j++
		}
		if j > i {
			runs = append(runs, FlatRun{StartX: t.points[i].X, EndX: t.points[j].X, Y: t.points[i].Y})
		}
		i = j + 1
	}
	return runs
}

// Pads returns the segments a lander could qualify on: segments that are
// level to within a tenth of a pixel and whose midpoint passes Flatness.
func (t *Terrain) Pads(window, tolerance float64) [][2]Point {
	var pads [][2]Point
	for i := 0; i+1 < len(t.points); i++ {
		p1, p2 := t.points[i], t.points[i+1]
		if math.Abs(p1.Y-p2.Y) >= 0.1 {
			continue
		}
		if ok, _ := t.Flatness((p1.X+p2.X)/2, window, tolerance); ok {
			pads = append(pads, [2]Point{p1, p2})
		}
	}
	return pads
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return log.New(io.Discard)
}

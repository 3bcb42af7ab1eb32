package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/games/lander/sim"
)

var (
	flagTerrainYAML bool
	flagTerrainCols int
	flagTerrainRows int
)

var terrainCmd = &cobra.Command{
	Use:   "terrain",
	Short: "Print the terrain generated for a seed",
	Long: `Generate the terrain a run with the given seed would fly over and
print it as an ASCII profile followed by its flat runs. Pad columns are
drawn with '='.

Examples:
  lander terrain --seed 42
  lander terrain --seed 42 --cols 160 --rows 40
  lander terrain --seed 42 --yaml > terrain.yaml`,
	Args: cobra.NoArgs,
	Run:  runTerrain,
}

func init() {
	terrainCmd.Flags().BoolVar(&flagTerrainYAML, "yaml", false, "Print points and flat runs as YAML")
	terrainCmd.Flags().IntVar(&flagTerrainCols, "cols", 100, "Profile width in characters")
	terrainCmd.Flags().IntVar(&flagTerrainRows, "rows", 30, "Profile height in characters")
}

// terrainDoc is the YAML form of a generated terrain.
type terrainDoc struct {
	Seed     int64          `yaml:"seed"`
	Width    float64        `yaml:"width"`
	Height   float64        `yaml:"height"`
	FlatRuns []flatRunDoc   `yaml:"flat_runs"`
	Points   []terrainPoint `yaml:"points,flow"`
}

type flatRunDoc struct {
	StartX float64 `yaml:"start_x"`
	EndX   float64 `yaml:"end_x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
}

type terrainPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func runTerrain(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr, "terrain")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	t := generateTerrain(seed, cfg, logger)

	if flagTerrainYAML {
		if err := writeTerrainYAML(os.Stdout, seed, t); err != nil {
			logger.Fatal("cannot encode terrain", "error", err)
		}
		return
	}

	fmt.Printf("seed %d\n", seed)
	writeProfile(os.Stdout, renderProfile(t, cfg.Landing, flagTerrainCols, flagTerrainRows))
	fmt.Println()
	writeFlatRuns(os.Stdout, t)
}

// writeProfile prints the profile with trailing sky trimmed from each row.
func writeProfile(w io.Writer, s *core.Screen) {
	for y := 0; y < s.Height(); y++ {
		fmt.Fprintln(w, strings.TrimRight(s.Row(y), " "))
	}
}

// generateTerrain produces the same terrain a run seeded with seed uses,
// since terrain is the first thing drawn from a run's generator.
func generateTerrain(seed int64, cfg config.LanderConfig, logger *log.Logger) *sim.Terrain {
	rng := rand.New(rand.NewSource(seed))
	return sim.GenerateTerrain(rng, cfg.Terrain, cfg.World.Width, cfg.World.Height, logger)
}

// renderProfile draws the terrain into a cols x rows character grid.
func renderProfile(t *sim.Terrain, lc config.LandingConfig, cols, rows int) *core.Screen {
	s := core.NewScreen(cols, rows)
	if cols <= 0 || rows <= 0 {
		return s
	}
	cellW := t.Width() / float64(cols)
	cellH := t.Height() / float64(rows)
	pads := t.Pads(lc.FlatWindow, lc.FlatTolerance)

	for c := 0; c < cols; c++ {
		x := (float64(c) + 0.5) * cellW
		top := int(t.HeightAt(x) / cellH)

		r := '#'
		for _, p := range pads {
			if x >= p[0].X && x <= p[1].X {
				r = '='
				break
			}
		}
		s.Set(c, top, r)
		s.DrawVLine(c, top+1, rows-top-1, '#')
	}
	return s
}

func writeFlatRuns(w io.Writer, t *sim.Terrain) {
	runs := t.FlatRuns()
	fmt.Fprintf(w, "%d flat runs:\n", len(runs))
	for _, r := range runs {
		fmt.Fprintf(w, "  x %6.1f .. %6.1f  y %6.1f  width %5.1f\n", r.StartX, r.EndX, r.Y, r.Width())
	}
}

func writeTerrainYAML(w io.Writer, seed int64, t *sim.Terrain) error {
	doc := terrainDoc{
		Seed:   seed,
		Width:  t.Width(),
		Height: t.Height(),
		Points: make([]terrainPoint, 0, t.Len()),
	}
	for _, r := range t.FlatRuns() {
		doc.FlatRuns = append(doc.FlatRuns, flatRunDoc{StartX: r.StartX, EndX: r.EndX, Y: r.Y, Width: r.Width()})
	}
	for _, p := range t.Points() {
		doc.Points = append(doc.Points, terrainPoint{X: p.X, Y: p.Y})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

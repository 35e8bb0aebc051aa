package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	mbr "github.com/lxxorz/three-mbr"
	"github.com/pkg/profile"
	"github.com/quasilyte/gmath"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := loadConfig()

	genCount := flag.Int("gen", 0, "generate a synthetic cloud of n points instead of reading input")
	genAngle := flag.Float64("angle", 30, "footprint rotation of the generated cloud, in degrees")
	seed := flag.Uint64("seed", cfg.Seed, "seed for the synthetic cloud")
	inPath := flag.String("in", "", "read x y z triples from this file instead of stdin")
	asJSON := flag.Bool("json", false, "print the result as JSON")
	steps := flag.Bool("steps", false, "print every caliper candidate, not only the winner")
	profiling := flag.Bool("profile", false, "write a CPU profile")
	level := flag.String("log-level", cfg.LogLevel, "log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if parsed, err := zerolog.ParseLevel(*level); err == nil {
		zerolog.SetGlobalLevel(parsed)
	}

	if *profiling {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	points, err := collectPoints(*genCount, *seed, gmath.DegToRad(*genAngle), *inPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read points")
	}

	box, err := mbr.Compute(points)
	if err != nil {
		log.Warn().Err(err).Msg("input does not span a proper box")
	}

	if *steps {
		printSteps(points)
	}

	if *asJSON {
		printJSON(box)
		return
	}

	printBox(box, points)
}

func collectPoints(genCount int, seed uint64, angle gmath.Rad, inPath string) ([]mbr.Vec3, error) {
	if genCount > 0 {
		return generateCloud(RandWithSeed(seed), genCount, angle), nil
	}

	in := io.Reader(os.Stdin)

	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return nil, err
		}

		defer f.Close()
		in = f
	}

	return readPoints(in)
}

// readPoints parses whitespace separated x y z triples.
func readPoints(r io.Reader) ([]mbr.Vec3, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var coords []float64

	for scanner.Scan() {
		value, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("bad coordinate %q: %w", scanner.Text(), err)
		}

		coords = append(coords, value)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return mbr.Vec3sFromCoords(coords), nil
}

// printSteps replays the calipers search one edge direction at a time,
// the headless equivalent of the step-through inspector.
func printSteps(points []mbr.Vec3) {
	prep, err := mbr.Prepare(points)
	if err != nil {
		return
	}

	hull := mbr.ConvexHull(prep.Points)

	idx := 0
	for dir, rect := range mbr.Candidates(hull) {
		fmt.Printf("step %d: direction %6.1f°  %.3f x %.3f  area %.4f\n",
			idx, degreesOf(gmath.Rad(math.Atan2(dir.Y, dir.X))), rect.Width, rect.Height, rect.Area())
		idx++
	}
}

func printBox(box mbr.OrientedBox, points []mbr.Vec3) {
	fmt.Printf("points:    %d\n", len(points))
	fmt.Printf("center:    (%.4f, %.4f, %.4f)\n", box.Center.X, box.Center.Y, box.Center.Z)
	fmt.Printf("half size: (%.4f, %.4f, %.4f)\n", box.HalfSize.X, box.HalfSize.Y, box.HalfSize.Z)
	fmt.Printf("rotation:  %.2f° about Y\n", degreesOf(box.RotationY))

	fmt.Println("corners:")
	for _, corner := range box.Corners() {
		fmt.Printf("  (%.4f, %.4f, %.4f)\n", corner.X, corner.Y, corner.Z)
	}
}

func printJSON(box mbr.OrientedBox) {
	result := struct {
		Center    mbr.Vec3    `json:"center"`
		HalfSize  mbr.Vec3    `json:"halfSize"`
		RotationY float64     `json:"rotationY"`
		Corners   [8]mbr.Vec3 `json:"corners"`
	}{
		Center:    box.Center,
		HalfSize:  box.HalfSize,
		RotationY: float64(box.RotationY),
		Corners:   box.Corners(),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(result); err != nil {
		log.Fatal().Err(err).Msg("failed to encode result")
	}
}

func degreesOf(angle gmath.Rad) float64 {
	return float64(angle) * 180 / math.Pi
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/cdtmesh"
)

// Demo of constrained Delaunay triangulation by rendering a mesh described on
// stdin to a PNG. Input is newline separated values, in up to three sections
// separated by an extra newline:
//
//	boundary points "x y", in clockwise order
//	interior points "x y"
//	constraints "i j", indexing the points above in input order
//
// The boundary must be a simple polygon and the interior points must lie
// strictly inside it.

var (
	epsilon = kingpin.Flag("epsilon", "Squared coincidence tolerance.").Default("1e-9").Float64()
	scale   = kingpin.Flag("scale", "Pixels per input unit.").Default("10").Float64()
	out     = kingpin.Flag("out", "Output PNG path.").Default("cdtmesh.png").String()
	cat     = kingpin.Flag("cat", "Preview the PNG inline in the terminal.").Bool()
)

func main() {
	kingpin.Parse()

	sections := readSections(os.Stdin)
	if len(sections) == 0 {
		kingpin.Fatalf("no boundary points on stdin")
	}

	boundary := parsePoints(sections[0])
	m, err := cdtmesh.New(boundary, *epsilon)
	if err != nil {
		kingpin.Fatalf("building mesh: %v", err)
	}

	// Points are tracked in input order so constraints can index them, and
	// insertion may dedup onto an existing point.
	live := append([]*cdtmesh.Point{}, boundary...)
	if len(sections) > 1 {
		for _, p := range parsePoints(sections[1]) {
			added, err := m.AddInteriorPoint(p)
			if err != nil {
				kingpin.Fatalf("adding interior point (%g, %g): %v", p.X, p.Y, err)
			}
			live = append(live, added)
		}
	}
	if len(sections) > 2 {
		for _, line := range sections[2] {
			i, j := parseConstraint(line, len(live))
			if _, err := m.AddConstraint(live[i], live[j]); err != nil {
				kingpin.Fatalf("adding constraint %d -> %d: %v", i, j, err)
			}
		}
	}
	if err := m.Validate(); err != nil {
		kingpin.Fatalf("%v", err)
	}

	c := m.Engine().Draw(*scale)
	if err := c.SavePNG(*out); err != nil {
		kingpin.Fatalf("writing %s: %v", *out, err)
	}
	fmt.Printf("%d points, %d faces -> %s\n", m.Size(), len(m.Faces()), *out)
	if *cat {
		imgcat.CatFile(*out, os.Stdout)
	}
}

func readSections(in *os.File) [][]string {
	sections := [][]string{}
	lines := []string{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(lines) > 0 {
				sections = append(sections, lines)
				lines = []string{}
			}
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) > 0 {
		sections = append(sections, lines)
	}
	return sections
}

func parsePoints(lines []string) []*cdtmesh.Point {
	points := make([]*cdtmesh.Point, 0, len(lines))
	for _, line := range lines {
		parts := strings.Fields(line)
		if len(parts) < 2 {
			kingpin.Fatalf("malformed point %q", line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			kingpin.Fatalf("malformed point %q: %v", line, err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			kingpin.Fatalf("malformed point %q: %v", line, err)
		}
		points = append(points, &cdtmesh.Point{X: x, Y: y})
	}
	return points
}

func parseConstraint(line string, n int) (int, int) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		kingpin.Fatalf("malformed constraint %q", line)
	}
	i, err := strconv.Atoi(parts[0])
	if err != nil {
		kingpin.Fatalf("malformed constraint %q: %v", line, err)
	}
	j, err := strconv.Atoi(parts[1])
	if err != nil {
		kingpin.Fatalf("malformed constraint %q: %v", line, err)
	}
	if i < 0 || i >= n || j < 0 || j >= n {
		kingpin.Fatalf("constraint %q indexes outside the %d points", line, n)
	}
	return i, j
}

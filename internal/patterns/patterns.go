// Package patterns holds named Life seeds and a reader for the plaintext
// pattern format.
package patterns

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"lifegrid/internal/core"
)

// Point is a live cell offset relative to a pattern's top-left corner.
type Point struct {
	X, Y int
}

// Pattern is a named set of live cells.
type Pattern struct {
	Name  string
	Cells []Point
	W, H  int
}

// Parse reads a pattern in plaintext format: '.' is dead, 'O' or '*' is alive
// and lines starting with '!' are comments. Rows may be ragged.
func Parse(name, text string) (Pattern, error) {
	p := Pattern{Name: name}
	sc := bufio.NewScanner(strings.NewReader(text))
	y := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for x, c := range line {
			switch c {
			case 'O', 'o', '*':
				p.Cells = append(p.Cells, Point{X: x, Y: y})
				if x+1 > p.W {
					p.W = x + 1
				}
			case '.':
			default:
				return Pattern{}, errors.Errorf("pattern %q: unexpected %q at line %d", name, c, y+1)
			}
		}
		y++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, errors.Wrapf(err, "pattern %q", name)
	}
	if len(p.Cells) == 0 {
		return Pattern{}, errors.Errorf("pattern %q has no live cells", name)
	}
	for _, c := range p.Cells {
		if c.Y+1 > p.H {
			p.H = c.Y + 1
		}
	}
	return p, nil
}

// ParseFile reads a plaintext pattern file. The pattern is named after the
// file's base name without extension.
func ParseFile(path string) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "[ParseFile] failed to read file: %+v", path)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(name, string(data))
}

// Stamp writes the pattern's live cells into dst with its top-left corner at
// (x, y), wrapping around the grid edges.
func Stamp(dst core.CellSetter, p Pattern, x, y int) {
	size := dst.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	for _, c := range p.Cells {
		cx, cy := size.Wrap(x+c.X, y+c.Y)
		dst.Set(cx, cy, core.Alive)
	}
}

// StampCentered stamps p so its centre lands on (x, y).
func StampCentered(dst core.CellSetter, p Pattern, x, y int) {
	Stamp(dst, p, x-p.W/2, y-p.H/2)
}

var registry = map[string]Pattern{}

func register(name, text string) {
	p, err := Parse(name, text)
	if err != nil {
		panic(err)
	}
	registry[name] = p
}

// Lookup returns the built-in pattern with the given name.
func Lookup(name string) (Pattern, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists the built-in patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	register("block", "OO\nOO")
	register("blinker", "OOO")
	register("toad", ".OOO\nOOO.")
	register("beacon", "OO..\nOO..\n..OO\n..OO")
	register("glider", ".O.\n..O\nOOO")
	register("lwss", ".O..O\nO....\nO...O\nOOOO.")
	register("rpentomino", ".OO\nOO.\n.O.")
	register("diehard", "......O.\nOO......\n.O...OOO")
	register("acorn", ".O.....\n...O...\nOO..OOO")
	register("gosper", `! Gosper glider gun
........................O...........
......................O.O...........
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO..............
OO........O...O.OO....O.O...........
..........O.....O.......O...........
...........O...O....................
............OO......................`)
}

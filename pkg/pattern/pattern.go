// Package pattern holds the catalog of named Game of Life shapes used to build
// sprite entities, plus the pure transforms that derive orientation variants.
package pattern

import "sort"

// Category classifies a pattern by its long-term behavior under B3/S23.
type Category string

const (
	// StillLife patterns never change (period 1).
	StillLife Category = "still-life"
	// Oscillator patterns return to their seed after Period generations in place.
	Oscillator Category = "oscillator"
	// Spaceship patterns return to their seed after Period generations while
	// translating across the grid.
	Spaceship Category = "spaceship"
)

// Pattern is an immutable named cell layout. Transforms return new values and
// never touch the source; catalog entries are shared and must not be written to.
type Pattern struct {
	Name     string
	Cells    [][]bool // row-major, Cells[y][x]
	Period   int
	Category Category
}

// Width returns the number of columns in the layout.
func (p Pattern) Width() int {
	if len(p.Cells) == 0 {
		return 0
	}
	return len(p.Cells[0])
}

// Height returns the number of rows in the layout.
func (p Pattern) Height() int { return len(p.Cells) }

// AliveCells counts the live cells in the layout.
func (p Pattern) AliveCells() int {
	n := 0
	for _, row := range p.Cells {
		for _, c := range row {
			if c {
				n++
			}
		}
	}
	return n
}

var catalog = map[string]Pattern{}

func register(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	catalog[p.Name] = p
}

// Get returns the catalog entry for name.
func Get(name string) (Pattern, bool) {
	p, ok := catalog[name]
	return p, ok
}

// MustGet returns the catalog entry for name and panics when it is missing.
// Intended for static references to known entries.
func MustGet(name string) Pattern {
	p, ok := catalog[name]
	if !ok {
		panic("pattern: unknown catalog entry " + name)
	}
	return p
}

// Names returns the sorted list of catalog entry names.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fromRows builds a Pattern from row art, 'O' marking live cells. Rows shorter
// than the widest row are padded with dead cells.
func fromRows(name string, period int, cat Category, rows ...string) Pattern {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	cells := make([][]bool, len(rows))
	for y, r := range rows {
		row := make([]bool, width)
		for x := 0; x < len(r); x++ {
			row[x] = r[x] == 'O'
		}
		cells[y] = row
	}
	return Pattern{Name: name, Cells: cells, Period: period, Category: cat}
}

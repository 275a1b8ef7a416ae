package pattern

// Rotate90 returns p rotated a quarter turn clockwise. The source is left
// untouched; the result keeps the period and category.
func Rotate90(p Pattern) Pattern {
	w, h := p.Width(), p.Height()
	cells := make([][]bool, w)
	for y := 0; y < w; y++ {
		row := make([]bool, h)
		for x := 0; x < h; x++ {
			row[x] = p.Cells[h-1-x][y]
		}
		cells[y] = row
	}
	return Pattern{Name: p.Name, Cells: cells, Period: p.Period, Category: p.Category}
}

// FlipHorizontal mirrors p left-to-right.
func FlipHorizontal(p Pattern) Pattern {
	w, h := p.Width(), p.Height()
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		row := make([]bool, w)
		for x := 0; x < w; x++ {
			row[x] = p.Cells[y][w-1-x]
		}
		cells[y] = row
	}
	return Pattern{Name: p.Name, Cells: cells, Period: p.Period, Category: p.Category}
}

// FlipVertical mirrors p top-to-bottom.
func FlipVertical(p Pattern) Pattern {
	w, h := p.Width(), p.Height()
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		row := make([]bool, w)
		copy(row, p.Cells[h-1-y])
		cells[y] = row
	}
	return Pattern{Name: p.Name, Cells: cells, Period: p.Period, Category: p.Category}
}

// renamed returns a copy of p under a new catalog name. Cells are shared with
// the input, so callers pass freshly transformed patterns only.
func renamed(p Pattern, name string) Pattern {
	p.Name = name
	return p
}

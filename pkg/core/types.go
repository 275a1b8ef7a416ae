package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns the total cell count.
func (s Size) Area() int { return s.W * s.H }

// Minor returns the smaller of the two dimensions.
func (s Size) Minor() int {
	if s.W < s.H {
		return s.W
	}
	return s.H
}

package render

import (
	"image/color"
	"testing"
)

func TestCellsToRGBA(t *testing.T) {
	cells := []uint8{0, 1, 0, 1}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	off := color.RGBA{A: 255}

	cellsToRGBA(buf, cells, on, off)

	for i, c := range cells {
		base := i * 4
		want := off
		if c != 0 {
			want = on
		}
		got := color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
		if got != want {
			t.Fatalf("cell %d: pixel %v, expected %v", i, got, want)
		}
	}
}

func TestToRGBARoundTrip(t *testing.T) {
	c := color.RGBA{R: 12, G: 200, B: 7, A: 255}
	if got := toRGBA(c); got != c {
		t.Fatalf("toRGBA(%v) = %v", c, got)
	}
	if got := toRGBA(color.White); (got != color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("toRGBA(white) = %v", got)
	}
}

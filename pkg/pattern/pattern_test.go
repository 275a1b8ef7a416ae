package pattern

import "testing"

func TestCatalogComplete(t *testing.T) {
	names := []string{
		Block, Beehive, Loaf, Boat, Tub, Pond, Ship,
		Blinker, Toad, Beacon, Pulsar,
		Glider, LWSS, Copperhead, Dragon,
		LWSSVertical, CopperheadHorizontal, GliderNorthwest,
	}
	for _, name := range names {
		p, ok := Get(name)
		if !ok {
			t.Fatalf("catalog missing %q", name)
		}
		if p.Name != name {
			t.Fatalf("entry %q carries name %q", name, p.Name)
		}
		if p.Period < 1 {
			t.Fatalf("entry %q has period %d", name, p.Period)
		}
		if p.Width() == 0 || p.Height() == 0 {
			t.Fatalf("entry %q has empty layout", name)
		}
		if p.AliveCells() == 0 {
			t.Fatalf("entry %q has no live cells", name)
		}
	}
}

func TestCatalogCategories(t *testing.T) {
	stills := []string{Block, Beehive, Loaf, Boat, Tub, Pond, Ship}
	for _, name := range stills {
		p := MustGet(name)
		if p.Category != StillLife || p.Period != 1 {
			t.Fatalf("%q: category %q period %d, expected still life of period 1", name, p.Category, p.Period)
		}
	}
	for _, name := range []string{Blinker, Toad, Beacon, Pulsar} {
		if p := MustGet(name); p.Category != Oscillator {
			t.Fatalf("%q: category %q, expected oscillator", name, p.Category)
		}
	}
	for _, name := range []string{Glider, LWSS, Copperhead, Dragon, LWSSVertical} {
		if p := MustGet(name); p.Category != Spaceship {
			t.Fatalf("%q: category %q, expected spaceship", name, p.Category)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, ok := Get("no-such-shape"); ok {
		t.Fatal("Get returned an entry for an unknown name")
	}
}

func TestRotate90Geometry(t *testing.T) {
	p := MustGet(Glider)
	r := Rotate90(p)
	if r.Width() != p.Height() || r.Height() != p.Width() {
		t.Fatalf("rotated dims %dx%d, expected %dx%d", r.Width(), r.Height(), p.Height(), p.Width())
	}
	if r.AliveCells() != p.AliveCells() {
		t.Fatalf("rotation changed cell count %d -> %d", p.AliveCells(), r.AliveCells())
	}

	// Four quarter turns are the identity.
	q := Rotate90(Rotate90(Rotate90(r)))
	for y := range p.Cells {
		for x := range p.Cells[y] {
			if q.Cells[y][x] != p.Cells[y][x] {
				t.Fatalf("four rotations differ from source at (%d,%d)", x, y)
			}
		}
	}
}

func TestFlipsAreInvolutions(t *testing.T) {
	p := MustGet(Loaf)
	for name, flip := range map[string]func(Pattern) Pattern{
		"horizontal": FlipHorizontal,
		"vertical":   FlipVertical,
	} {
		twice := flip(flip(p))
		for y := range p.Cells {
			for x := range p.Cells[y] {
				if twice.Cells[y][x] != p.Cells[y][x] {
					t.Fatalf("%s flip applied twice differs from source at (%d,%d)", name, x, y)
				}
			}
		}
	}
}

func TestTransformsDoNotMutateSource(t *testing.T) {
	p := MustGet(LWSS)
	snapshot := make([][]bool, len(p.Cells))
	for y, row := range p.Cells {
		snapshot[y] = append([]bool(nil), row...)
	}

	Rotate90(p)
	FlipHorizontal(p)
	FlipVertical(p)

	for y := range snapshot {
		for x := range snapshot[y] {
			if p.Cells[y][x] != snapshot[y][x] {
				t.Fatalf("transform mutated source at (%d,%d)", x, y)
			}
		}
	}
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	if len(names) != len(catalog) {
		t.Fatalf("Names returned %d entries, catalog holds %d", len(names), len(catalog))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

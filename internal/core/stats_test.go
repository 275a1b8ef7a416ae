package core

import (
	"testing"

	"lifebox/pkg/sprite"
)

func intptr(v int) *int { return &v }

func TestCollect(t *testing.T) {
	e, err := sprite.New(sprite.Config{
		Mode:     sprite.ModeStatic,
		Pattern:  "blinker",
		Phase:    intptr(1),
		CellSize: 4,
		Seed:     1,
	})
	if err != nil {
		t.Fatal(err)
	}

	stats := Collect(e)
	if stats.Pattern != "blinker" || stats.Mode != "static" {
		t.Fatalf("stats identity %q/%q", stats.Pattern, stats.Mode)
	}
	if stats.Phase != 1 || stats.Period != 2 {
		t.Fatalf("stats phase %d/%d, expected 1/2", stats.Phase, stats.Period)
	}
	if stats.Alive != 3 {
		t.Fatalf("stats alive = %d, expected 3 blinker cells", stats.Alive)
	}
	if stats.GridSize != e.Dims.GridSize || stats.Generation != 0 {
		t.Fatalf("stats geometry/generation mismatch: %+v", stats)
	}
}

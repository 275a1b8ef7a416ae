// Command lifebox-tui is the terminal viewer for sprite entities. It drives a
// single entity at the host frame rate and paints its grid with block glyphs,
// so the engine behavior can be inspected over ssh without a GPU.
package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"lifebox/internal/app"
	"lifebox/internal/core"
	"lifebox/pkg/life"

	"github.com/integrii/flaggy"
	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type viewer struct {
	g      *gocui.Gui
	driver *app.Driver

	running bool

	liveFiller string
	deadFiller string
}

func main() {
	cfg := app.NewConfig()
	parser := flaggy.NewParser("lifebox-tui")
	parser.Description = "terminal Game of Life sprite viewer"
	cfg.Register(parser)
	if err := parser.Parse(); err != nil {
		log.Fatal(err)
	}

	driver, err := app.NewDriver(cfg)
	if err != nil {
		log.Fatalf("building entity: %v", err)
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	v := &viewer{
		g:          g,
		driver:     driver,
		running:    true,
		liveFiller: aurora.Green("██").String(),
		deadFiller: "░░",
	}
	g.SetManagerFunc(v.layout)

	bindings := []struct {
		key     interface{}
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{gocui.KeyCtrlC, v.cmdQuit},
		{'q', v.cmdQuit},
		{gocui.KeySpace, v.cmdToggleRun},
		{'n', v.cmdStep},
		{'r', v.cmdReset},
	}
	for _, b := range bindings {
		if err := g.SetKeybinding("", b.key, gocui.ModNone, b.handler); err != nil {
			log.Fatal(err)
		}
	}

	go v.frameLoop()

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Fatal(err)
	}
}

// frameLoop synthesizes the 60 fps host frame clock. All entity mutation and
// drawing happens inside g.Update, on the gocui event loop.
func (v *viewer) frameLoop() {
	fs := core.NewFixedStep(int(life.HostFrameRate))
	ticker := time.NewTicker(4 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		if !fs.ShouldStep() {
			continue
		}
		v.g.Update(func(g *gocui.Gui) error {
			if v.running {
				v.driver.Frame()
			}
			return v.redraw(g)
		})
	}
}

func (v *viewer) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	size := v.driver.Entity.Dims.GridSize
	gridW := min(size*2+1, maxX-1)
	gridH := min(size+1, maxY-4)
	if gv, err := g.SetView("grid", 0, 0, gridW, gridH); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		gv.Title = " " + v.driver.Entity.Meta.Pattern + " "
	}
	if sv, err := g.SetView("status", 0, maxY-3, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		sv.Wrap = true
	}
	return nil
}

func (v *viewer) redraw(g *gocui.Gui) error {
	gv, err := g.View("grid")
	if err != nil {
		return nil
	}
	gv.Clear()

	eng := v.driver.Entity.Engine
	var b strings.Builder
	for y := 0; y < eng.Rows(); y++ {
		for x := 0; x < eng.Cols(); x++ {
			if eng.Cell(x, y) {
				b.WriteString(v.liveFiller)
			} else {
				b.WriteString(v.deadFiller)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(gv, b.String())

	sv, err := g.View("status")
	if err != nil {
		return nil
	}
	sv.Clear()
	stats := core.Collect(v.driver.Entity)
	state := aurora.Cyan("running").String()
	if !v.running {
		state = aurora.Blue("paused").String()
	}
	fmt.Fprintf(sv, "%s  gen %d  alive %d  density %.2f  [%s]\n",
		stats.Pattern, stats.Generation, stats.Alive, stats.Density, state)
	fmt.Fprintf(sv, "space run/pause  n step  r reset  q quit\n")
	return nil
}

func (v *viewer) cmdQuit(*gocui.Gui, *gocui.View) error {
	return gocui.ErrQuit
}

func (v *viewer) cmdToggleRun(*gocui.Gui, *gocui.View) error {
	v.running = !v.running
	return nil
}

func (v *viewer) cmdStep(g *gocui.Gui, _ *gocui.View) error {
	v.running = false
	if v.driver.Masked != nil {
		v.driver.Masked.Update()
	} else if !v.driver.Entity.Engine.Frozen() {
		v.driver.Entity.Engine.Update()
	}
	v.driver.Entity.TickLoop()
	return v.redraw(g)
}

func (v *viewer) cmdReset(g *gocui.Gui, _ *gocui.View) error {
	if err := v.driver.Reset(); err != nil {
		return err
	}
	return v.redraw(g)
}

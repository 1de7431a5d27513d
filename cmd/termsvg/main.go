package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tdewolff/argp"
	"github.com/vasalvit/termsvg"
	"github.com/vasalvit/termsvg/fuelrod"
	"github.com/vasalvit/termsvg/internal/braille"
)

type Plot struct {
	Width   int    `short:"w" default:"80" desc:"Grid width in terminal cells"`
	Height  int    `default:"24" desc:"Grid height in terminal cells"`
	List    bool   `short:"l" desc:"List primitives instead of plotting"`
	NoColor bool   `desc:"Disable colour output"`
	Input   string `index:"0" desc:"Input SVG file"`
}

type FuelRod struct {
	Position float64 `short:"p" default:"50" desc:"Absorber rod position, 0 to 100"`
	Rod      int     `short:"r" desc:"Index of the selected rod in the core grid"`
	Core     int     `default:"5" desc:"Rods per side of the core grid"`
	Width    int     `short:"w" default:"40" desc:"Grid width in terminal cells"`
	Height   int     `default:"20" desc:"Grid height in terminal cells"`
	NoColor  bool    `desc:"Disable colour output"`
}

var stdout io.Writer = os.Stdout

func main() {
	root := argp.NewCmd(&Plot{}, "Plot vector documents onto a terminal character grid")
	root.AddCmd(&FuelRod{}, "fuelrod", "Plot the fuel-rod illustration")
	root.Parse()
	root.PrintHelp()
}

func newRenderer() *termsvg.Renderer {
	opts := termsvg.DefaultOptions()
	opts.Logger = log.New(os.Stderr, "", 0)
	return termsvg.NewRenderer(opts)
}

func plot(r *termsvg.Renderer, set *termsvg.Set, width, height int, ansi bool) error {
	c := braille.New(width, height)
	c.Plot(set, r.Styles())
	return c.Render(stdout, ansi)
}

func (cmd *Plot) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	r := newRenderer()
	set, err := r.RenderFile(cmd.Input, float64(cmd.Width)/float64(cmd.Height))
	if err != nil {
		return err
	}

	if cmd.List {
		for _, p := range set.Primitives {
			kind := "stroke"
			if p.Fill {
				kind = "fill"
			}
			fmt.Fprintf(stdout, "%4d %-6s %5d  %s\n", p.Key, kind, len(p.Points), p.Style)
		}
		return nil
	}
	return plot(r, set, cmd.Width, cmd.Height, !cmd.NoColor)
}

func (cmd *FuelRod) Run() error {
	if cmd.Position < 0 || 100 < cmd.Position {
		fmt.Println("ERROR: position must be between 0 and 100")
		return argp.ShowUsage
	} else if cmd.Core < 1 {
		fmt.Println("ERROR: core must have at least one rod per side")
		return argp.ShowUsage
	}

	grid := fuelrod.NewGrid(cmd.Core, cmd.Core, cmd.Position)
	doc, err := grid.Document(cmd.Rod)
	if err != nil {
		return err
	}

	r := newRenderer()
	set, err := r.RenderString(doc, float64(cmd.Width)/float64(cmd.Height))
	if err != nil {
		return err
	}
	return plot(r, set, cmd.Width, cmd.Height, !cmd.NoColor)
}

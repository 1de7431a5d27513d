package fuelrod_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/cheekybits/is"
	"github.com/vasalvit/termsvg"
	"github.com/vasalvit/termsvg/fuelrod"
)

func TestAbsorberDepth(t *testing.T) {
	is := is.New(t)

	is.Equal(fuelrod.AbsorberDepth(0), 15.0)
	is.Equal(fuelrod.AbsorberDepth(50), 40.0)
	is.Equal(fuelrod.AbsorberDepth(100), 65.0)
}

func TestDocument(t *testing.T) {
	is := is.New(t)

	doc := fuelrod.Document(33.3)
	is.True(strings.Contains(doc, `d="M 50.000 10.000 L 50.000 31.650"`))

	set, err := termsvg.NewRenderer(termsvg.DefaultOptions()).RenderString(fuelrod.Document(50), 1)
	is.NoErr(err)
	is.Equal(len(set.Skipped), 0)
	is.Equal(set.Len(), 3)
	is.False(set.Primitives[0].Fill)
	is.True(set.Primitives[1].Fill)
	is.Equal(set.Primitives[2].Points, []termsvg.Tuple{{50, 90}, {50, 60}})
}

func TestGrid(t *testing.T) {
	is := is.New(t)

	g := fuelrod.NewGrid(3, 2, 20)
	is.Equal(len(g.Positions), 6)

	row, col, err := g.Locate(4)
	is.NoErr(err)
	is.Equal(row, 1)
	is.Equal(col, 1)

	g.Positions[4] = 80
	pos, err := g.Position(4)
	is.NoErr(err)
	is.Equal(pos, 80.0)

	doc, err := g.Document(4)
	is.NoErr(err)
	is.Equal(doc, fuelrod.Document(80))

	for _, index := range []int{-1, 6, 100} {
		_, _, err = g.Locate(index)
		is.True(errors.Is(err, fuelrod.ErrNoSuchRod))
		_, err = g.Document(index)
		is.True(errors.Is(err, fuelrod.ErrNoSuchRod))
	}
}

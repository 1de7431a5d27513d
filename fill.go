package termsvg

import "math"

// canvasExtent is the size of the normalised canvas on both axes.
const canvasExtent = 100

// FillCells approximates the interior of a closed outline by the integer
// cells strictly inside its axis-aligned bounding box, clamped to the
// canvas. Concave outlines are over-filled; this is a bounding-box fill,
// not a polygon fill. Cells are ordered column by column.
func FillCells(points []Tuple) []Tuple {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		if math.IsNaN(p[0]) || math.IsNaN(p[1]) {
			continue
		}
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	if minX > maxX || minY > maxY {
		return nil
	}

	x0, x1 := cellRange(minX, maxX)
	y0, y1 := cellRange(minY, maxY)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	cells := make([]Tuple, 0, (x1-x0)*(y1-y0))
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			cells = append(cells, Tuple{float64(x), float64(y)})
		}
	}
	return cells
}

// cellRange returns the half-open range of integers strictly between lo
// and hi, clamped to [0, canvasExtent].
func cellRange(lo, hi float64) (int, int) {
	first := math.Max(math.Floor(lo)+1, 0)
	last := math.Min(math.Ceil(hi), canvasExtent)
	if first >= last {
		return 0, 0
	}
	return int(first), int(last)
}

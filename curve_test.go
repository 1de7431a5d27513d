package termsvg

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func distance(a, b Tuple) float64 {
	return math.Hypot(a[0]-b[0], a[1]-b[1])
}

func TestEllipticalArc(t *testing.T) {
	got, err := ellipticalArc(Tuple{300, 200}, Tuple{150, 150}, 0, true, false, Tuple{150, 50}, 10)
	require.NoError(t, err)

	want := []Tuple{
		{300.0, 200.0},
		{406.06601717798213, 156.06601717798213},
		{450.0, 50.0},
		{406.06601717798213, -56.06601717798212},
		{300.0, -100.0},
		{193.93398282201787, -56.06601717798213},
		{150.0, 49.99999999999998},
		{193.93398282201787, 156.06601717798213},
		{300.0, 200.0},
		{406.0660171779821, 156.06601717798213},
		{450.0, 50.000000000000036},
	}
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i][0], got[i][0], 1e-6, "x of point %d", i)
		assert.InDelta(t, want[i][1], got[i][1], 1e-6, "y of point %d", i)
	}
}

func TestEllipticalArcUnreachable(t *testing.T) {
	// radius 1 cannot span 10 units; the radii grow to a half circle
	got, err := ellipticalArc(Tuple{0, 0}, Tuple{1, 1}, 0, false, true, Tuple{10, 0}, 20)
	require.NoError(t, err)
	require.Len(t, got, 21)
	for _, p := range got {
		assert.InDelta(t, 5, distance(p, Tuple{5, 0}), 1e-9)
	}
	assert.InDelta(t, 10, got[20][0], 1e-9)
	assert.InDelta(t, 0, got[20][1], 1e-9)
}

func TestEllipticalArcRotated(t *testing.T) {
	got, err := ellipticalArc(Tuple{0, 0}, Tuple{20, 10}, 30, false, true, Tuple{10, 10}, 50)
	require.NoError(t, err)
	for _, p := range got {
		assert.False(t, math.IsNaN(p[0]) || math.IsNaN(p[1]))
	}
	assert.InDelta(t, 0, got[0][0], 1e-9)
	assert.InDelta(t, 0, got[0][1], 1e-9)
}

func TestEllipticalArcDegenerate(t *testing.T) {
	_, err := ellipticalArc(Tuple{0, 0}, Tuple{0, 5}, 0, false, true, Tuple{10, 0}, 10)
	assert.True(t, errors.Is(err, ErrDegenerateArc))

	got, err := ellipticalArc(Tuple{3, 3}, Tuple{5, 5}, 0, false, true, Tuple{3, 3}, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBezierSampling(t *testing.T) {
	p0, p1, p2, p3 := Tuple{0, 0}, Tuple{10, 40}, Tuple{30, 40}, Tuple{40, 0}

	quad := sampleQuadratic(p0, p1, p3, 100)
	require.Len(t, quad, 100)
	assert.Equal(t, p0, quad[0])
	assert.InDelta(t, 20, quad[50][1], 1e-9)

	cube := sampleCubic(p0, p1, p2, p3, 100)
	require.Len(t, cube, 100)
	assert.Equal(t, p0, cube[0])
	assert.InDelta(t, 20, cube[50][0], 1e-9)
	assert.InDelta(t, 30, cube[50][1], 1e-9)
	assert.InDelta(t, 0, distance(cube[99], p3), 1.5)

	for _, p := range sampleQuadratic(Tuple{7, 7}, Tuple{7, 7}, Tuple{7, 7}, 100) {
		assert.Equal(t, Tuple{7, 7}, p)
	}
}

func TestReflect(t *testing.T) {
	assert.Equal(t, Tuple{40, 50}, reflect(Tuple{20, 10}, Tuple{30, 30}))
	assert.Equal(t, Tuple{30, 30}, reflect(Tuple{30, 30}, Tuple{30, 30}))
}

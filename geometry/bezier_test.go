package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"ndplot/types"
)

func TestControlPointsInner(t *testing.T) {
	c1, c2 := ControlPoints(types.Pt(1, 0), types.Pt(-1, 0), 2, 4, true, 0)
	assert.Equal(t, types.Pt(0, 0), c1)
	assert.Equal(t, c1, c2)

	c1, c2 = ControlPoints(types.Pt(2, 0), types.Pt(0, 2), 2, 4, true, 0)
	assert.InDelta(t, 0.01*2, c1.Len(), 1e-12)
	assert.Equal(t, c1, c2)
	assert.InDelta(t, math.Pi/4, c1.Angle(), 1e-12)
}

func TestControlPointsOuter(t *testing.T) {
	c1, c2 := ControlPoints(types.Pt(1, 0), types.Pt(0, 1), 1, 4, false, 3)
	assert.InDelta(t, 2.4*3, c1.Len(), 1e-12)
	assert.InDelta(t, 2.4*3, c2.Len(), 1e-12)
	assert.InDelta(t, math.Pi/4+math.Pi/12, c1.Angle(), 1e-12)
	assert.InDelta(t, math.Pi/4-math.Pi/12, c2.Angle(), 1e-12)
}

func TestTessellate(t *testing.T) {
	a, b := types.Pt(0, 0), types.Pt(3, 3)
	pts := Tessellate(a, types.Pt(1, 1), types.Pt(2, 2), b, CurveSegments)
	assert.Len(t, pts, 11)
	assert.Equal(t, a, pts[0])
	assert.InDelta(t, 3, pts[10].X, 1e-12)
	assert.InDelta(t, 1.5, pts[5].X, 1e-12)
	assert.Len(t, Tessellate(a, a, b, b, 0), 2)
}

func TestAdjustTowardsCenter(t *testing.T) {
	assert.Equal(t, types.Point{}, AdjustTowardsCenter(types.Point{}, 1))
	p := AdjustTowardsCenter(types.Pt(0, 2), 0.5)
	assert.InDelta(t, 1.5, p.Y, 1e-12)
	p = AdjustTowardsCenter(types.Pt(0, 2), -0.5)
	assert.InDelta(t, 2.5, p.Y, 1e-12)
}

func TestCurveChain(t *testing.T) {
	s := snapshot(1, []int{0}, [][]float64{{0.2, 0.4, 0.6}})
	l := Compute(s, types.ModeSCC)
	segs := l.CurveChain(0, l.Chain(0, 0), CurveSegments)
	assert.Len(t, segs, 3)
	for i, seg := range segs {
		assert.Len(t, seg, CurveSegments)
		assert.InDelta(t, 0, seg[0].Dist(l.Chain(0, 0)[i]), 1e-12)
	}
}

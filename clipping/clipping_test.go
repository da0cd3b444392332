package clipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndplot/geometry"
	"ndplot/types"
)

type flags []types.SampleFlags

func (f flags) Flags(i int) types.SampleFlags    { return f[i] }
func (f flags) SetSelected(i int, on bool)       { f[i].Selected = on }
func (f flags) SetVertexIn(i int, in, last bool) { f[i].VertexIn, f[i].LastVertexIn = in, last }
func (f flags) ClearSelection() {
	for i := range f {
		f[i] = types.SampleFlags{Cleared: f[i].Cleared}
	}
}

func (f flags) selected() []int {
	var out []int
	for i, v := range f {
		if v.Selected {
			out = append(out, i)
		}
	}
	return out
}

// snapshot 两个类别交替排列，每行 3 个属性
func snapshot(values [][]float64) *types.Snapshot {
	classes := make([]int, len(values))
	for i := range classes {
		classes[i] = i % 2
	}
	return &types.Snapshot{
		AttributeNames:   []string{"a", "b", "c"},
		AttributeOrder:   []int{0, 1, 2},
		ActiveAttributes: []bool{true, true, true},
		Inversions:       make([]bool, 3),
		Shifts:           make([]float64, 3),
		Coefs:            []float64{100, 100, 100},
		ClassNames:       []string{"x", "y"},
		ClassOrder:       []int{0, 1},
		ActiveClasses:    []bool{true, true},
		Values:           values,
		Classes:          classes,
		Flags:            make([]types.SampleFlags, len(values)),
	}
}

func rows() [][]float64 {
	return [][]float64{
		{0.1, 0.2, 0.3},
		{0.9, 0.8, 0.7},
		{0.5, 0.5, 0.5},
		{0.1, 0.2, 0.3},
	}
}

// TestSelectRectIdempotent 相同框选重复执行结果不变
func TestSelectRectIdempotent(t *testing.T) {
	s := snapshot(rows())
	l := geometry.Compute(s, types.ModeLinear)
	f := make(flags, 4)
	rect := types.NewRect(types.Pt(0.4, 0.45), types.Pt(0.6, 0.55))
	first := SelectRect(f, s, l, rect)
	want := f.selected()
	second := SelectRect(f, s, l, rect)
	assert.Equal(t, first, second)
	assert.Equal(t, want, f.selected())
	assert.Equal(t, []int{2}, want)
	assert.True(t, f[2].VertexIn)
	assert.False(t, f[2].LastVertexIn)
	assert.False(t, f[0].VertexIn)
}

func TestSelectRectAdditive(t *testing.T) {
	s := snapshot(rows())
	l := geometry.Compute(s, types.ModeLinear)
	f := make(flags, 4)
	SelectRect(f, s, l, types.NewRect(types.Pt(-0.1, 0.85), types.Pt(0.1, 0.95)))
	SelectRect(f, s, l, types.NewRect(types.Pt(0.9, 0.25), types.Pt(1.1, 0.35)))
	assert.Equal(t, []int{0, 1, 3}, f.selected())
	assert.True(t, f[3].LastVertexIn)
	assert.False(t, f[1].VertexIn)
}

func TestSelectRectSkipsHidden(t *testing.T) {
	s := snapshot(rows())
	s.Flags[0].Cleared = true
	s.ActiveClasses[1] = false
	l := geometry.Compute(s, types.ModeLinear)
	f := make(flags, 4)
	SelectRect(f, s, l, types.NewRect(types.Pt(-1, -1), types.Pt(2, 2)))
	assert.Equal(t, []int{2}, f.selected())
}

// TestSelectPointTie 两个样本距离相同时选择行号较小者
func TestSelectPointTie(t *testing.T) {
	s := snapshot(rows())
	l := geometry.Compute(s, types.ModeLinear)
	f := make(flags, 4)
	f[1].Selected = true
	row, ok := SelectPoint(f, s, l, types.Pt(0.5, 0.2), DefaultTuning())
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, []int{0}, f.selected())
}

// TestSelectPointNearest 多个候选时保留最近的样本
func TestSelectPointNearest(t *testing.T) {
	s := snapshot([][]float64{{0.5, 0.5, 0.5}, {0.5, 0.5004, 0.2}})
	l := geometry.Compute(s, types.ModeLinear)
	f := make(flags, 2)
	row, ok := SelectPoint(f, s, l, types.Pt(0.5, 0.5003), Tuning{StartExponent: -3, Step: 0.1, MaxExponent: -2})
	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, []int{1}, f.selected())
}

func TestSelectPointMiss(t *testing.T) {
	s := snapshot(rows())
	l := geometry.Compute(s, types.ModeLinear)
	f := make(flags, 4)
	f[2].Selected = true
	_, ok := SelectPoint(f, s, l, types.Pt(0.25, 0.95), DefaultTuning())
	assert.False(t, ok)
	assert.Empty(t, f.selected())
}

// TestSelectPointCircular 圆坐标下点击第一个属性顶点附近选中该样本
func TestSelectPointCircular(t *testing.T) {
	s := snapshot(rows()[:3])
	l := geometry.Compute(s, types.ModeSCC)
	f := make(flags, 3)
	c, k, ok := l.Locate(1)
	require.True(t, ok)
	target := l.Chain(c, k)[0]
	row, ok := SelectPoint(f, s, l, target.Add(types.Pt(0.0002, -0.0001)), DefaultTuning())
	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, []int{1}, f.selected())
	assert.True(t, f[1].VertexIn)
}

func TestRegionsGrow(t *testing.T) {
	var r Regions
	first := r.Grow(types.Pt(1, 1), DefaultGrowEpsilon)
	assert.InDelta(t, 0.01, first.HalfWidth(), 1e-12)
	assert.Equal(t, 1, r.Len())

	grown := r.Grow(types.Pt(1.005, 1), DefaultGrowEpsilon)
	assert.Equal(t, 1, r.Len())
	assert.InDelta(t, 0.02, grown.HalfWidth(), 1e-12)
	assert.Equal(t, types.Pt(1.005, 1), grown.Center())

	r.Grow(types.Pt(5, 5), DefaultGrowEpsilon)
	assert.Equal(t, 2, r.Len())
	r.Clear()
	assert.Empty(t, r.All())
}

func TestRegionsCorner(t *testing.T) {
	var r Regions
	_, done := r.Corner(types.Pt(1, 2))
	assert.False(t, done)
	assert.True(t, r.Pending())
	rect, done := r.Corner(types.Pt(0, 0))
	assert.True(t, done)
	assert.Equal(t, types.Rect{XMin: 0, YMin: 0, XMax: 1, YMax: 2}, rect)
	assert.Equal(t, []types.Rect{rect}, r.All())
	assert.False(t, r.Pending())
}

package overlap

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndplot/geometry"
	"ndplot/types"
)

// twoClasses 2 个属性、2 个类别，各 2 行
// 最后属性值: A {0.1, 0.5}，B {0.4, 0.9}；SCC 下扇区 A=[π,1.4π]，B=[0.6π,1.1π]
func twoClasses() *types.Snapshot {
	values := [][]float64{{0, 0.1}, {0, 0.5}, {0, 0.4}, {0, 0.9}}
	return &types.Snapshot{
		AttributeNames:   []string{"x", "y"},
		AttributeOrder:   []int{0, 1},
		ActiveAttributes: []bool{true, true},
		Inversions:       []bool{false, false},
		Shifts:           []float64{0, 0},
		Coefs:            []float64{100, 100},
		ClassNames:       []string{"A", "B"},
		CountPerClass:    []int{2, 2},
		ClassOrder:       []int{0, 1},
		ActiveClasses:    []bool{true, true},
		ActiveMarkers:    []bool{true, true},
		ActiveSectors:    []bool{true, true},
		Values:           values,
		Classes:          []int{0, 0, 1, 1},
		Flags:            make([]types.SampleFlags, len(values)),
	}
}

func TestAnalyzeSCC(t *testing.T) {
	s := twoClasses()
	l := geometry.Compute(s, types.ModeSCC)
	r := Analyze(l, s)
	require.Len(t, r.Sectors, 2)
	assert.InDelta(t, math.Pi, r.Sectors[0].Start, 1e-9)
	assert.InDelta(t, 1.4*math.Pi, r.Sectors[0].End, 1e-9)
	assert.InDelta(t, 0.6*math.Pi, r.Sectors[1].Start, 1e-9)
	assert.InDelta(t, 1.1*math.Pi, r.Sectors[1].End, 1e-9)

	assert.Equal(t, []int{1, 2}, r.Indices)
	assert.Equal(t, []int{1, 1}, r.PerClass)
	assert.InDelta(t, 50, r.Accuracy(), 1e-12)
	assert.Equal(t, "Class 1 A: 1\nClass 2 B: 1\nTotal Overlaps: 2 / 4 samples\n= 50.00% overlap for 50.00% accuracy.\n", r.Summary())
}

// TestAnalyzeDCCWrapsAngle DCC 下累加弧长超过半圈时，最后顶点的 atan2 角度小于 -π/2，归一化时加 2π
// 最后顶点角度: A {-0.7π, -0.9π} -> {1.3π, 1.1π}，B {-0.8π, 0.1π} -> {1.2π, 0.1π}
func TestAnalyzeDCCWrapsAngle(t *testing.T) {
	s := twoClasses()
	s.Values = [][]float64{{0.6, 0.6}, {0.6, 0.8}, {0.6, 0.7}, {0.2, 0.2}}
	l := geometry.Compute(s, types.ModeDCC)
	require.Less(t, l.Chain(0, 0)[1].Angle(), -math.Pi/2)

	r := Analyze(l, s)
	require.Len(t, r.Sectors, 2)
	assert.InDelta(t, 1.1*math.Pi, r.Sectors[0].Start, 1e-9)
	assert.InDelta(t, 1.3*math.Pi, r.Sectors[0].End, 1e-9)
	assert.InDelta(t, 0.1*math.Pi, r.Sectors[1].Start, 1e-9)
	assert.InDelta(t, 1.2*math.Pi, r.Sectors[1].End, 1e-9)
	for _, sec := range r.Sectors {
		assert.LessOrEqual(t, sec.Start, sec.End)
	}

	// A 第 2 行和 B 第 1 行的最后顶点落入对方扇区
	assert.Equal(t, []int{1, 2}, r.Indices)
	assert.Equal(t, []int{1, 1}, r.PerClass)
	assert.False(t, r.IsOverlap(0, 0, 1, l.VertexCount))
	assert.True(t, r.IsOverlap(0, 1, 1, l.VertexCount))
	assert.True(t, r.IsOverlap(1, 0, 1, l.VertexCount))
	assert.False(t, r.IsOverlap(1, 1, 1, l.VertexCount))
	// 第一个顶点 -0.1π 不在任何扇区
	assert.False(t, r.IsOverlap(0, 1, 0, l.VertexCount))
}

// TestOverlapVerticesInTwoSectors 每个重叠顶点至少落在两个扇区内
func TestOverlapVerticesInTwoSectors(t *testing.T) {
	s := twoClasses()
	for _, mode := range []types.PlotMode{types.ModeSCC, types.ModeDCC} {
		l := geometry.Compute(s, mode)
		r := Analyze(l, s)
		assert.LessOrEqual(t, r.Total(), r.SampleCount)
		for c, flags := range r.VertexFlags {
			for i, on := range flags {
				if !on {
					continue
				}
				assert.GreaterOrEqual(t, r.inSectors(mode, l.Positions[c][i]), 2)
			}
		}
		for _, sec := range r.Sectors {
			assert.LessOrEqual(t, sec.Start, sec.End)
		}
	}
}

func TestAnalyzeLinear(t *testing.T) {
	s := twoClasses()
	r := Analyze(geometry.Compute(s, types.ModeLinear), s)
	assert.False(t, r.Circular)
	assert.Empty(t, r.Indices)
	assert.Equal(t, "Requires Circular Coordinates\n\nSelect SCC or DCC to view overlaps.", r.Summary())
}

// TestClearedAndInactive 隐藏的样本和关闭的类别不参与扇区
func TestClearedAndInactive(t *testing.T) {
	s := twoClasses()
	s.Flags[1].Cleared = true
	r := Analyze(geometry.Compute(s, types.ModeSCC), s)
	assert.InDelta(t, 1.4*math.Pi, r.Sectors[0].Start, 1e-9)
	assert.Empty(t, r.Indices)

	s = twoClasses()
	s.ActiveClasses[1] = false
	r = Analyze(geometry.Compute(s, types.ModeSCC), s)
	assert.Len(t, r.Sectors, 1)
	assert.Zero(t, r.Total())
	assert.InDelta(t, 100, r.Accuracy(), 1e-12)
}

func TestIsOverlap(t *testing.T) {
	s := twoClasses()
	l := geometry.Compute(s, types.ModeSCC)
	r := Analyze(l, s)
	assert.True(t, r.IsOverlap(0, 1, 1, l.VertexCount))
	assert.False(t, r.IsOverlap(0, 0, 1, l.VertexCount))
	assert.False(t, r.IsOverlap(5, 0, 0, l.VertexCount))
}

func TestWriteHTML(t *testing.T) {
	s := twoClasses()
	r := Analyze(geometry.Compute(s, types.ModeSCC), s)
	var buf bytes.Buffer
	require.NoError(t, r.WriteHTML(&buf))
	assert.Contains(t, buf.String(), "echarts")
}

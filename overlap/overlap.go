// Package overlap 圆坐标下类别扇区和重叠样本分析
// 每帧从布局完整重算，不做增量更新
package overlap

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"ndplot/geometry"
	"ndplot/types"
)

// Sector 一个类别最后属性顶点所覆盖的角度范围
type Sector struct {
	Class    int
	Start    float64 // 起始角度（已归一化，Start <= End）
	End      float64
	Closest  types.Point // 顺时针方向最小角度的顶点
	Furthest types.Point // 顺时针方向最大角度的顶点
}

// Contains 点的角度是否落在扇区内（包含边界）
func (s Sector) Contains(mode types.PlotMode, p types.Point) bool {
	a := normalizeAngle(mode, p.Angle())
	return s.Start <= a && a <= s.End
}

// Result 重叠分析结果
type Result struct {
	Circular    bool
	Sectors     []Sector
	PerClass    []int    // 每个类别的重叠样本数，按类别索引
	Indices     []int    // 重叠样本的表格行（去重，升序）
	VertexFlags [][]bool // 与 Layout.Positions 对应的顶点重叠标记
	SampleCount int

	classNames []string
	classOrder []int
}

// Analyze 计算扇区和重叠样本
// 非圆坐标返回空结果
func Analyze(l *geometry.Layout, s *types.Snapshot) *Result {
	r := &Result{
		Circular:    l.Mode.IsCircular(),
		PerClass:    make([]int, s.ClassCount()),
		SampleCount: s.SampleCount(),
		classNames:  append([]string(nil), s.ClassNames...),
		classOrder:  append([]int(nil), s.ClassOrder...),
	}
	if !r.Circular || l.AttributeCount == 0 {
		return r
	}
	for c := range l.Positions {
		if sec, ok := classSector(l, s, c); ok {
			r.Sectors = append(r.Sectors, sec)
		}
	}

	seen := map[int]bool{}
	r.VertexFlags = make([][]bool, len(l.Positions))
	for c, rows := range l.ChainRows {
		r.VertexFlags[c] = make([]bool, len(l.Positions[c]))
		if !s.ActiveClasses[c] {
			continue
		}
		for k, row := range rows {
			if s.Flags[row].Cleared {
				continue
			}
			for j, p := range l.Chain(c, k) {
				if r.inSectors(l.Mode, p) < 2 {
					continue
				}
				r.VertexFlags[c][k*l.VertexCount+j] = true
				if !seen[row] {
					seen[row] = true
					r.PerClass[c]++
					r.Indices = append(r.Indices, row)
				}
			}
		}
	}
	sort.Ints(r.Indices)
	return r
}

// inSectors 包含该点的扇区数量
func (r *Result) inSectors(mode types.PlotMode, p types.Point) int {
	n := 0
	for _, sec := range r.Sectors {
		if sec.Contains(mode, p) {
			n++
		}
	}
	return n
}

// classSector 由类别各链的最后一个属性顶点求扇区
// 最小和最大角度按从顶部顺时针的角度比较
func classSector(l *geometry.Layout, s *types.Snapshot, c int) (Sector, bool) {
	if !s.ActiveClasses[c] {
		return Sector{}, false
	}
	last := l.AttributeCount - 1
	minA, maxA := math.Inf(1), math.Inf(-1)
	var closest, furthest types.Point
	found := false
	for k, row := range l.ChainRows[c] {
		if s.Flags[row].Cleared {
			continue
		}
		p := l.Chain(c, k)[last]
		a := clockwiseAngle(p)
		if a < minA {
			minA, closest = a, p
		}
		if a > maxA {
			maxA, furthest = a, p
		}
		found = true
	}
	if !found {
		return Sector{}, false
	}
	start := normalizeAngle(l.Mode, closest.Angle())
	end := normalizeAngle(l.Mode, furthest.Angle())
	if start > end {
		start, end = end, start
	}
	return Sector{Class: c, Start: start, End: end, Closest: closest, Furthest: furthest}, true
}

// clockwiseAngle 从顶部顺时针的角度 [0, 2π)
func clockwiseAngle(p types.Point) float64 {
	a := math.Atan2(p.X, p.Y)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// normalizeAngle 将 atan2 角度映射到模式对应的区间
// SCC: [0, 2π)；DCC: [-π/2, 3π/2)
func normalizeAngle(mode types.PlotMode, a float64) float64 {
	switch mode {
	case types.ModeSCC:
		if a < 0 {
			a += 2 * math.Pi
		}
	case types.ModeDCC:
		if a < -math.Pi/2 {
			a += 2 * math.Pi
		}
	}
	return a
}

// Total 重叠样本总数
func (r *Result) Total() int { return len(r.Indices) }

// OverlapPercent 重叠样本占比（百分比）
func (r *Result) OverlapPercent() float64 {
	if r.SampleCount == 0 {
		return 0
	}
	return 100 * float64(r.Total()) / float64(r.SampleCount)
}

// Accuracy 估计准确率 (1 - 重叠/样本数)，百分比
func (r *Result) Accuracy() float64 { return 100 - r.OverlapPercent() }

// IsOverlap 类别 c 第 k 条链第 j 个顶点是否重叠
func (r *Result) IsOverlap(c, k, j, vertexCount int) bool {
	if c >= len(r.VertexFlags) {
		return false
	}
	i := k*vertexCount + j
	return i < len(r.VertexFlags[c]) && r.VertexFlags[c][i]
}

// Summary 文本报告，类别按层叠顺序列出
func (r *Result) Summary() string {
	if !r.Circular {
		return "Requires Circular Coordinates\n\nSelect SCC or DCC to view overlaps."
	}
	var b strings.Builder
	for i, c := range r.classOrder {
		fmt.Fprintf(&b, "Class %d %s: %d\n", i+1, r.classNames[c], r.PerClass[c])
	}
	fmt.Fprintf(&b, "Total Overlaps: %d / %d samples\n= %.2f%% overlap for %.2f%% accuracy.\n",
		r.Total(), r.SampleCount, r.OverlapPercent(), r.Accuracy())
	return b.String()
}

// Package geometry 根据快照和绘图模式计算每个样本的顶点链和坐标轴
// 纯函数，不修改输入
package geometry

import (
	"math"

	"ndplot/types"
)

// Layout 一帧的几何布局
type Layout struct {
	Mode           types.PlotMode
	AttributeCount int
	VertexCount    int // 每条链的顶点数

	// Positions[c] 为类别 c 的顶点缓冲，按 ChainRows[c] 的顺序每 VertexCount 个点一条链
	Positions [][]types.Point
	// ChainRows[c][k] 为类别 c 第 k 条链对应的表格行
	ChainRows [][]int

	Radius      float64   // 基础圆半径（圆坐标）
	RingFactors []float64 // 每个类别的环半径系数，按类别索引
	CurveRanks  []int     // 每个类别在 ClassOrder 中的位置
	InnerClass  int       // 最内环类别，不存在为 -1
	SecondClass int       // 与内环共用圆的类别，不存在为 -1

	Axes Axes
}

// Axes 坐标轴几何
type Axes struct {
	Lines   [][2]types.Point // 平行坐标轴线或圆坐标刻度
	Circles []float64        // 圆坐标轴半径
}

// RingRadius 计算圆坐标基础半径 r = n / ((2 + n/100)·π)
func RingRadius(attributeCount int) float64 {
	n := float64(attributeCount)
	return n / ((2 + n/100) * math.Pi)
}

// RingFactor 多环布局中类别层级对应的半径系数
// 前两个层级共用最内环
func RingFactor(rank int) float64 {
	if rank < 2 {
		return 1
	}
	return types.RingScaleFactor * float64(rank-1)
}

// Compute 计算布局
func Compute(s *types.Snapshot, mode types.PlotMode) *Layout {
	n := s.AttributeCount()
	l := &Layout{
		Mode:           mode,
		AttributeCount: n,
		VertexCount:    mode.VertexCount(n),
		ChainRows:      s.ClassRows(),
		InnerClass:     -1,
		SecondClass:    -1,
	}
	classes := s.ClassCount()
	l.Positions = make([][]types.Point, classes)
	l.RingFactors = make([]float64, classes)
	l.CurveRanks = make([]int, classes)
	for c := 0; c < classes; c++ {
		l.CurveRanks[c] = s.ClassRank(c)
		l.RingFactors[c] = 1
		if mode == types.ModeDCC {
			l.RingFactors[c] = RingFactor(l.CurveRanks[c])
		}
	}
	if mode.IsCircular() && classes > 1 {
		l.InnerClass = s.ClassOrder[0]
		l.SecondClass = s.ClassOrder[1]
	}
	if n == 0 {
		return l
	}

	switch mode {
	case types.ModeSCC, types.ModeDCC:
		l.Radius = RingRadius(n)
		l.computeCircular(s)
		l.Axes = circularAxes(l)
	default:
		l.computeLinear(s)
		l.Axes = linearAxes(s)
	}
	return l
}

// Chain 类别 c 第 k 条链
func (l *Layout) Chain(c, k int) []types.Point {
	start := k * l.VertexCount
	return l.Positions[c][start : start+l.VertexCount]
}

// Locate 查找表格行所在的类别和链序号
func (l *Layout) Locate(row int) (class, chain int, ok bool) {
	for c, rows := range l.ChainRows {
		for k, r := range rows {
			if r == row {
				return c, k, true
			}
		}
	}
	return -1, -1, false
}

// IsInner 类别是否在最内环
func (l *Layout) IsInner(class int) bool { return class == l.InnerClass }

package geometry

import (
	"math"

	"github.com/aclements/go-moremath/vec"

	"ndplot/types"
)

// CurveSegments 每段贝塞尔曲线的采样点数
const CurveSegments = 11

// CurveFactor 贝塞尔控制点的层级系数
func CurveFactor(rank int) float64 {
	if rank < 2 {
		return 1
	}
	return float64(rank)
}

// ControlPoints 计算两个相邻顶点之间三次贝塞尔曲线的控制点
// 内环：两个控制点收向原点；中点在原点时直接返回中点
// 外环：控制点位于半径 2.4·r·factor 的圆上，角度为中点方向 ± π/(3n)
func ControlPoints(start, end types.Point, radius float64, attributeCount int, inner bool, rank int) (types.Point, types.Point) {
	mid := start.Mid(end)
	factor := CurveFactor(rank)
	if inner {
		d := mid.Len()
		if d == 0 {
			return mid, mid
		}
		c := mid.Scale(types.InnerControlSize * radius * factor / d)
		return c, c
	}
	r := types.ControlRadius * radius * factor
	angle := mid.Angle()
	adjust := math.Pi / float64(attributeCount) / 3
	return types.Polar(r, angle+adjust), types.Polar(r, angle-adjust)
}

// Bezier 三次贝塞尔曲线上参数 t 处的点
func Bezier(p0, p1, p2, p3 types.Point, t float64) types.Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return types.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// Tessellate 将曲线均匀采样为折线，segments < 2 时按 2 处理
func Tessellate(start, c1, c2, end types.Point, segments int) []types.Point {
	if segments < 2 {
		segments = 2
	}
	ts := vec.Linspace(0, 1, segments)
	out := make([]types.Point, len(ts))
	for i, t := range ts {
		out[i] = Bezier(start, c1, c2, end, t)
	}
	return out
}

// CurveChain 将一条圆坐标顶点链转换为平滑折线
// 相邻顶点之间各用一段贝塞尔曲线
func (l *Layout) CurveChain(class int, chain []types.Point, segments int) [][]types.Point {
	inner := l.IsInner(class)
	rank := l.CurveRanks[class]
	out := make([][]types.Point, 0, len(chain)-1)
	for h := 1; h < len(chain); h++ {
		c1, c2 := ControlPoints(chain[h-1], chain[h], l.Radius, l.AttributeCount, inner, rank)
		out = append(out, Tessellate(chain[h-1], c1, c2, chain[h], segments))
	}
	return out
}

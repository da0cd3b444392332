package geometry

import (
	"math"

	"ndplot/types"
)

// computeCircular 圆坐标布局
// SCC: 第 k 个属性占据第 k 段弧，顶点角度 π/2 - (k+v)·2π/n，从顶部顺时针
// DCC: 顶点沿圆周累加带权重的属性值，s_k = Σ coef_j/100 · v_j
func (l *Layout) computeCircular(s *types.Snapshot) {
	n := l.AttributeCount
	step := 2 * math.Pi / float64(n)
	pull := types.InnerPullScale * float64(n)
	for c, rows := range l.ChainRows {
		radius := l.Radius * l.RingFactors[c]
		buf := make([]types.Point, 0, len(rows)*l.VertexCount)
		for _, row := range rows {
			first := len(buf)
			sum := 0.0
			for pos := 0; pos < n; pos++ {
				v := s.DisplayValue(row, pos)
				var arc float64
				if l.Mode == types.ModeDCC {
					sum += s.Coefs[s.AttributeOrder[pos]] / 100 * v
					arc = sum
				} else {
					arc = float64(pos) + v
				}
				p := types.Polar(radius, math.Pi/2-arc*step)
				switch c {
				case l.InnerClass:
					p = AdjustTowardsCenter(p, pull)
				case l.SecondClass:
					p = AdjustTowardsCenter(p, -pull)
				}
				buf = append(buf, p)
			}
			// 闭合
			buf = append(buf, buf[first])
		}
		l.Positions[c] = buf
	}
}

// AdjustTowardsCenter 沿点自身方向向原点移动 amount，负值向外
// 原点保持不变
func AdjustTowardsCenter(p types.Point, amount float64) types.Point {
	d := p.Len()
	if d == 0 {
		return p
	}
	return p.Sub(p.Scale(amount / d))
}

// circularAxes 每个环一个圆，SCC 额外绘制 n 条刻度
func circularAxes(l *Layout) Axes {
	var a Axes
	seen := map[float64]bool{}
	for _, f := range l.RingFactors {
		r := l.Radius * f
		if !seen[r] {
			seen[r] = true
			a.Circles = append(a.Circles, r)
		}
	}
	if len(a.Circles) == 0 {
		a.Circles = []float64{l.Radius}
	}
	if l.Mode != types.ModeSCC {
		return a
	}
	step := 2 * math.Pi / float64(l.AttributeCount)
	for i := 0; i < l.AttributeCount; i++ {
		angle := math.Mod(-float64(i)*step+math.Pi/2+2*math.Pi, 2*math.Pi)
		a.Lines = append(a.Lines, [2]types.Point{{}, types.Polar(2*l.Radius, angle)})
	}
	return a
}

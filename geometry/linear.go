package geometry

import "ndplot/types"

// axisX 平行坐标第 pos 条轴的横坐标
func axisX(pos, n int) float64 {
	if n < 2 {
		return 0
	}
	return float64(pos) / float64(n-1)
}

// computeLinear 平行坐标：每个属性一条竖直轴，纵坐标为显示值加偏移
func (l *Layout) computeLinear(s *types.Snapshot) {
	n := l.AttributeCount
	for c, rows := range l.ChainRows {
		buf := make([]types.Point, 0, len(rows)*n)
		for _, row := range rows {
			for pos := 0; pos < n; pos++ {
				attr := s.AttributeOrder[pos]
				buf = append(buf, types.Pt(axisX(pos, n), s.DisplayValue(row, pos)+s.Shifts[attr]))
			}
		}
		l.Positions[c] = buf
	}
}

// linearAxes 每条轴从 (x, shift) 到 (x, 1+shift)
func linearAxes(s *types.Snapshot) Axes {
	n := s.AttributeCount()
	var a Axes
	for pos := 0; pos < n; pos++ {
		shift := s.Shifts[s.AttributeOrder[pos]]
		x := axisX(pos, n)
		a.Lines = append(a.Lines, [2]types.Point{types.Pt(x, shift), types.Pt(x, 1+shift)})
	}
	return a
}

// Package clipping 空间查询：框选、点选和选择区域
package clipping

import (
	"log/slog"
	"math"

	"ndplot/geometry"
	"ndplot/types"
)

// Flagger 可修改行选择状态的数据源
type Flagger interface {
	Flags(i int) types.SampleFlags
	SetSelected(i int, on bool)
	SetVertexIn(i int, in, last bool)
	ClearSelection()
}

// Tuning 点选扩展搜索参数
// 窗口半宽为 10^exp，exp 从 StartExponent 按 Step 递增，直到不小于 MaxExponent
type Tuning struct {
	StartExponent float64 `yaml:"start_exponent"`
	Step          float64 `yaml:"step"`
	MaxExponent   float64 `yaml:"max_exponent"`
}

// DefaultTuning 默认点选参数
func DefaultTuning() Tuning {
	return Tuning{StartExponent: -4, Step: 0.005, MaxExponent: -3}
}

// visible 遍历可见的样本链
func visible(s *types.Snapshot, l *geometry.Layout, fn func(c, k, row int, chain []types.Point)) {
	for c, rows := range l.ChainRows {
		if c < len(s.ActiveClasses) && !s.ActiveClasses[c] {
			continue
		}
		for k, row := range rows {
			if s.Flags[row].Cleared {
				continue
			}
			fn(c, k, row, l.Chain(c, k))
		}
	}
}

// hits 链是否有顶点落在矩形内，以及最后一个属性顶点是否在矩形内
func hits(l *geometry.Layout, chain []types.Point, rect types.Rect) (in, last bool) {
	for _, p := range chain {
		if rect.Contains(p) {
			in = true
			break
		}
	}
	if l.AttributeCount > 0 {
		last = rect.Contains(chain[l.AttributeCount-1])
	}
	return in, last
}

// SelectRect 框选：任意顶点在矩形内的样本被选中
// 累加到已有选择上，同时记录每个样本与本次区域的相交情况
func SelectRect(f Flagger, s *types.Snapshot, l *geometry.Layout, rect types.Rect) []int {
	var selected []int
	visible(s, l, func(_, _, row int, chain []types.Point) {
		in, last := hits(l, chain, rect)
		f.SetVertexIn(row, in, last)
		if in {
			f.SetSelected(row, true)
			selected = append(selected, row)
		}
	})
	slog.Debug("框选", "rect", rect, "selected", len(selected))
	return selected
}

// SelectPoint 点选：先清除选择，再由小到大扩展搜索窗口
// 找到多个样本时只保留顶点距离点击位置最近的一个，距离相同取行号最小者
func SelectPoint(f Flagger, s *types.Snapshot, l *geometry.Layout, p types.Point, t Tuning) (int, bool) {
	f.ClearSelection()
	if t.Step <= 0 {
		t = DefaultTuning()
	}
	var candidates []int
	var window types.Rect
	for i := 0; ; i++ {
		exp := t.StartExponent + float64(i)*t.Step
		if exp >= t.MaxExponent {
			break
		}
		window = types.RectAround(p, math.Pow(10, exp))
		visible(s, l, func(_, _, row int, chain []types.Point) {
			if in, _ := hits(l, chain, window); in {
				candidates = append(candidates, row)
			}
		})
		if len(candidates) > 0 {
			break
		}
	}
	if len(candidates) == 0 {
		return -1, false
	}

	best, bestDist := -1, math.Inf(1)
	visible(s, l, func(_, _, row int, chain []types.Point) {
		if !contains(candidates, row) {
			return
		}
		d := nearest(chain, p)
		if d < bestDist || (d == bestDist && row < best) {
			best, bestDist = row, d
		}
	})
	c, k, _ := l.Locate(best)
	_, last := hits(l, l.Chain(c, k), window)
	f.SetSelected(best, true)
	f.SetVertexIn(best, true, last)
	slog.Debug("点选", "point", p, "row", best, "candidates", len(candidates))
	return best, true
}

// nearest 链上顶点到 p 的最小距离
func nearest(chain []types.Point, p types.Point) float64 {
	d := math.Inf(1)
	for _, q := range chain {
		d = math.Min(d, q.Dist(p))
	}
	return d
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

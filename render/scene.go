package render

import (
	"fmt"
	"slices"

	"ndplot/geometry"
	"ndplot/types"
)

// sceneKey 决定场景缓存是否失效
type sceneKey struct {
	version  uint64
	mode     types.PlotMode
	order    string
	segments int
}

// Scene 缓存的折线缓冲
// 只有数据版本、绘图模式或类别顺序改变时才重建
type Scene struct {
	key    sceneKey
	layout *geometry.Layout

	// Segments[c][k][h] 类别 c 第 k 条链第 h 段（从顶点 h 到 h+1）的折线
	Segments [][][][]types.Point
}

func keyOf(s *types.Snapshot, l *geometry.Layout, segments int) sceneKey {
	return sceneKey{version: s.Version, mode: l.Mode, order: fmt.Sprint(s.ClassOrder), segments: segments}
}

// buildScene 平行坐标每段为直线，圆坐标每段为贝塞尔曲线
func buildScene(key sceneKey, l *geometry.Layout, segments int) *Scene {
	sc := &Scene{key: key, layout: l, Segments: make([][][][]types.Point, len(l.Positions))}
	for c, rows := range l.ChainRows {
		sc.Segments[c] = make([][][]types.Point, len(rows))
		for k := range rows {
			chain := l.Chain(c, k)
			if l.Mode.IsCircular() {
				sc.Segments[c][k] = l.CurveChain(c, chain, segments)
				continue
			}
			segs := make([][]types.Point, 0, len(chain)-1)
			for h := 1; h < len(chain); h++ {
				segs = append(segs, []types.Point{chain[h-1], chain[h]})
			}
			sc.Segments[c][k] = segs
		}
	}
	return sc
}

// valid 缓存是否仍然适用
func (sc *Scene) valid(key sceneKey, l *geometry.Layout) bool {
	return sc != nil && sc.key == key && sc.layout == l
}

// reversed 类别按层叠顺序反向排列，先画外层
func reversed(order []int) []int {
	out := slices.Clone(order)
	slices.Reverse(out)
	return out
}

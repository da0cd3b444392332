package clipping

import "ndplot/types"

// DefaultGrowEpsilon 中键新建区域的默认半宽
const DefaultGrowEpsilon = 0.01

// Regions 累积的选择区域
type Regions struct {
	rects []types.Rect
	// 右键框选中尚未完成的第一个角点
	pending *types.Point
}

// Add 添加区域
func (r *Regions) Add(rect types.Rect) { r.rects = append(r.rects, rect) }

// Corner 记录框选角点，第二个角点到达时返回完整矩形
func (r *Regions) Corner(p types.Point) (types.Rect, bool) {
	if r.pending == nil {
		r.pending = &p
		return types.Rect{}, false
	}
	rect := types.NewRect(*r.pending, p)
	r.pending = nil
	r.Add(rect)
	return rect, true
}

// Pending 是否正在等待第二个角点
func (r *Regions) Pending() bool { return r.pending != nil }

// Grow 以 p 为中心新建区域
// p 严格位于已有区域内时删除该区域，新区域半宽为 eps 加上原半宽
func (r *Regions) Grow(p types.Point, eps float64) types.Rect {
	for i, rect := range r.rects {
		if rect.ContainsStrict(p) {
			eps += rect.HalfWidth()
			r.rects = append(r.rects[:i], r.rects[i+1:]...)
			break
		}
	}
	rect := types.RectAround(p, eps)
	r.Add(rect)
	return rect
}

// Clear 清除所有区域
func (r *Regions) Clear() {
	r.rects = nil
	r.pending = nil
}

// All 所有区域（副本）
func (r *Regions) All() []types.Rect { return append([]types.Rect(nil), r.rects...) }

// Len 区域数量
func (r *Regions) Len() int { return len(r.rects) }

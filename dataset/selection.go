package dataset

import "ndplot/types"

// Flags 获取第 i 行的选择状态
func (d *Dataset) Flags(i int) types.SampleFlags { return d.rows[i].Flags }

// SetSelected 设置第 i 行是否选中
func (d *Dataset) SetSelected(i int, on bool) { d.rows[i].Flags.Selected = on }

// SetCleared 设置第 i 行是否隐藏
func (d *Dataset) SetCleared(i int, on bool) { d.rows[i].Flags.Cleared = on }

// SetVertexIn 记录第 i 行与最近一次选择区域的相交情况
func (d *Dataset) SetVertexIn(i int, in, last bool) {
	d.rows[i].Flags.VertexIn = in
	d.rows[i].Flags.LastVertexIn = last
}

// ClearSelection 清除所有选中和相交标记
func (d *Dataset) ClearSelection() {
	for i := range d.rows {
		f := &d.rows[i].Flags
		f.Selected, f.VertexIn, f.LastVertexIn = false, false, false
	}
}

// SelectedCount 选中样本数
func (d *Dataset) SelectedCount() int {
	n := 0
	for _, r := range d.rows {
		if r.Flags.Selected {
			n++
		}
	}
	return n
}

// SelectedIndices 选中样本的行索引
func (d *Dataset) SelectedIndices() []int {
	var out []int
	for i, r := range d.rows {
		if r.Flags.Selected {
			out = append(out, i)
		}
	}
	return out
}

// RollClips 选中状态整体循环移动 dir 行
func (d *Dataset) RollClips(dir int) {
	flags := make([]bool, len(d.rows))
	for i, r := range d.rows {
		flags[i] = r.Flags.Selected
	}
	flags = roll(flags, dir)
	for i := range d.rows {
		d.rows[i].Flags.Selected = flags[i]
	}
}

// RollVertexIn 顶点相交状态整体循环移动 dir 行
func (d *Dataset) RollVertexIn(dir int) {
	flags := make([]bool, len(d.rows))
	for i, r := range d.rows {
		flags[i] = r.Flags.VertexIn
	}
	flags = roll(flags, dir)
	for i := range d.rows {
		d.rows[i].Flags.VertexIn = flags[i]
	}
}

// roll 元素 i 移动到 i+dir（循环）
func roll(in []bool, dir int) []bool {
	n := len(in)
	out := make([]bool, n)
	if n == 0 {
		return out
	}
	for i, v := range in {
		j := ((i+dir)%n + n) % n
		out[j] = v
	}
	return out
}

package dataset

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"ndplot/types"
)

// requireSelection 检查数据表非空且存在选中样本
func (d *Dataset) requireSelection(op string) error {
	if len(d.rows) == 0 {
		slog.Warn("数据表为空", "op", op)
		return ErrEmptyTable
	}
	if d.SelectedCount() == 0 {
		slog.Warn("没有选中的样本", "op", op)
		return ErrNoSelection
	}
	return nil
}

// ensureClass 获取类别索引，不存在时追加新类别
// 已有类别保持原颜色，新类别使用扩展后调色板的最后一个颜色
func (d *Dataset) ensureClass(name string) int {
	for i, n := range d.classNames {
		if n == name {
			return i
		}
	}
	c := len(d.classNames)
	d.classNames = append(d.classNames, name)
	colors := d.palette(len(d.classNames), d.classNames)
	d.classColors = append(d.classColors, colors[c])
	d.classOrder = append(d.classOrder, c)
	d.activeClasses = append(d.activeClasses, true)
	d.activeMarkers = append(d.activeMarkers, true)
	d.activeSectors = append(d.activeSectors, true)
	slog.Info("新增类别", "class", name, "index", c)
	return c
}

// Insert 插入一个样本，values 为归一化值
func (d *Dataset) Insert(values []float64, class string) error {
	if len(values) != len(d.attributeNames) {
		return errors.Wrapf(types.ErrRaggedRow, "插入样本: 期望 %d 个值, 实际 %d", len(d.attributeNames), len(values))
	}
	c := d.ensureClass(class)
	d.rows = append(d.rows, Row{
		Values: append([]float64(nil), values...),
		Raw:    d.denormalize(values),
		Class:  c,
	})
	d.version++
	return nil
}

// DeleteSelected 删除所有选中的样本，剩余样本的状态全部重置
func (d *Dataset) DeleteSelected() error {
	if err := d.requireSelection("delete"); err != nil {
		return err
	}
	kept := d.rows[:0:0]
	for _, r := range d.rows {
		if r.Flags.Selected {
			continue
		}
		r.Flags = types.SampleFlags{}
		kept = append(kept, r)
	}
	slog.Info("删除样本", "deleted", len(d.rows)-len(kept), "remaining", len(kept))
	d.rows = kept
	d.compactClasses()
	d.version++
	return nil
}

// CloneSelected 复制选中的样本追加到末尾，新样本未选中
func (d *Dataset) CloneSelected() error {
	if err := d.requireSelection("clone"); err != nil {
		return err
	}
	n := len(d.rows)
	for i := 0; i < n; i++ {
		r := d.rows[i]
		if !r.Flags.Selected {
			continue
		}
		d.rows = append(d.rows, Row{
			Values: append([]float64(nil), r.Values...),
			Raw:    append([]float64(nil), r.Raw...),
			Class:  r.Class,
		})
	}
	d.version++
	return nil
}

// RelabelSelected 将选中的样本改为类别 class
func (d *Dataset) RelabelSelected(class string) error {
	if err := d.requireSelection("relabel"); err != nil {
		return err
	}
	c := d.ensureClass(class)
	for i := range d.rows {
		if d.rows[i].Flags.Selected {
			d.rows[i].Class = c
		}
	}
	d.compactClasses()
	d.version++
	return nil
}

// compactClasses 移除没有样本的类别
// 剩余类别保持相对顺序、颜色和显示开关，层叠顺序同步重映射
func (d *Dataset) compactClasses() {
	counts := d.CountPerClass()
	remap := make([]int, len(counts))
	n := 0
	for c, k := range counts {
		if k == 0 {
			remap[c] = -1
			continue
		}
		remap[c] = n
		d.classNames[n] = d.classNames[c]
		d.classColors[n] = d.classColors[c]
		d.activeClasses[n] = d.activeClasses[c]
		d.activeMarkers[n] = d.activeMarkers[c]
		d.activeSectors[n] = d.activeSectors[c]
		n++
	}
	if n == len(counts) {
		return
	}
	slog.Info("移除空类别", "removed", len(counts)-n, "remaining", n)
	d.classNames = d.classNames[:n]
	d.classColors = d.classColors[:n]
	d.activeClasses = d.activeClasses[:n]
	d.activeMarkers = d.activeMarkers[:n]
	d.activeSectors = d.activeSectors[:n]
	order := make([]int, 0, n)
	for _, c := range d.classOrder {
		if remap[c] >= 0 {
			order = append(order, remap[c])
		}
	}
	d.classOrder = order
	for i := range d.rows {
		d.rows[i].Class = remap[d.rows[i].Class]
	}
}

// ShiftSelectedBy 按比例平移选中样本的所有属性
// 没有变化的属性跳过；平移后超出 (0,1) 的属性不移动
func (d *Dataset) ShiftSelectedBy(delta float64) error {
	if err := d.requireSelection("shift"); err != nil {
		return err
	}
	if delta == 0 {
		return nil
	}
	col := make([]float64, len(d.rows))
	var sel []float64
	for a := range d.attributeNames {
		sel = sel[:0]
		for i, r := range d.rows {
			col[i] = r.Values[a]
			if r.Flags.Selected {
				sel = append(sel, r.Values[a])
			}
		}
		span := floats.Max(col) - floats.Min(col)
		if span == 0 {
			continue
		}
		step := delta / span
		if floats.Min(sel)+step <= 0 || floats.Max(sel)+step >= 1 {
			continue
		}
		rawSpan := d.maxValues[a] - d.minValues[a]
		for i := range d.rows {
			if d.rows[i].Flags.Selected {
				d.rows[i].Values[a] += step
				d.rows[i].Raw[a] += step * rawSpan
			}
		}
	}
	d.version++
	return nil
}

// AdjustAxisShifts 调整每个属性的竖直偏移，
// 使选中样本在所有属性上的均值与第一个显示属性的均值相同
// 平行坐标下选中样本呈现为水平直线
func (d *Dataset) AdjustAxisShifts() error {
	if err := d.requireSelection("align"); err != nil {
		return err
	}
	n := len(d.attributeNames)
	means := make([]float64, n)
	var xs []float64
	for a := 0; a < n; a++ {
		xs = xs[:0]
		for _, r := range d.rows {
			if r.Flags.Selected {
				v := r.Values[a]
				if d.inversions[a] {
					v = 1 - v
				}
				xs = append(xs, v)
			}
		}
		means[a] = stat.Mean(xs, nil)
	}
	ref := means[d.attributeOrder[0]]
	for a := 0; a < n; a++ {
		d.shifts[a] = clamp(ref-means[a], -1, 1)
	}
	d.version++
	return nil
}

// DuplicateLastAttribute 复制最后一个属性为新属性
func (d *Dataset) DuplicateLastAttribute() error {
	n := len(d.attributeNames)
	if n == 0 || len(d.rows) == 0 {
		slog.Warn("数据表为空", "op", "duplicate")
		return ErrEmptyTable
	}
	last := n - 1
	d.attributeNames = append(d.attributeNames, fmt.Sprintf("%s_copy", d.attributeNames[last]))
	d.minValues = append(d.minValues, d.minValues[last])
	d.maxValues = append(d.maxValues, d.maxValues[last])
	d.attributeOrder = append(d.attributeOrder, n)
	d.activeAttributes = append(d.activeAttributes, true)
	d.inversions = append(d.inversions, false)
	d.shifts = append(d.shifts, 0)
	d.coefs = append(d.coefs, types.DefaultCoef)
	for i := range d.rows {
		d.rows[i].Values = append(d.rows[i].Values, d.rows[i].Values[last])
		d.rows[i].Raw = append(d.rows[i].Raw, d.rows[i].Raw[last])
	}
	d.version++
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package dataset 表格数据与显示状态的唯一持有者
// 所有修改在一次调用内完成，行数据与行状态始终一一对应
package dataset

import (
	"image/color"
	"log/slog"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"ndplot/palette"
	"ndplot/types"
)

// 错误定义
var (
	ErrEmptyTable       = errors.New("数据表为空")
	ErrNoSelection      = errors.New("没有选中的样本")
	ErrUnknownAttribute = errors.New("属性索引越界")
	ErrUnknownClass     = errors.New("类别索引越界")
	ErrBadPermutation   = errors.New("不是有效的排列")
)

// Row 一行样本
type Row struct {
	Values []float64         // 归一化值 [0,1]
	Raw    []float64         // 原始值
	Class  int               // 类别索引
	Flags  types.SampleFlags // 选择状态
}

// Dataset 数据集
type Dataset struct {
	Name string

	palette palette.Func
	version uint64

	// 属性
	attributeNames   []string
	minValues        []float64 // 原始值下界
	maxValues        []float64 // 原始值上界
	attributeOrder   []int
	activeAttributes []bool
	inversions       []bool
	shifts           []float64
	coefs            []float64
	attributeAlpha   uint8
	traceMode        bool

	// 类别
	classNames    []string
	classColors   []color.NRGBA
	classOrder    []int
	activeClasses []bool
	activeMarkers []bool
	activeSectors []bool

	// 样本
	rows []Row
}

// New 创建空数据集，p 为 nil 时使用默认调色
func New(p palette.Func) *Dataset {
	if p == nil {
		p = palette.Colors
	}
	return &Dataset{palette: p, attributeAlpha: types.DefaultAlpha}
}

// Load 整体替换表格，重置所有类别、属性和样本状态
func (d *Dataset) Load(t *types.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	n := len(t.AttributeNames)
	d.attributeNames = append([]string(nil), t.AttributeNames...)
	d.minValues = make([]float64, n)
	d.maxValues = make([]float64, n)
	if len(t.Rows) > 0 {
		col := make([]float64, len(t.Rows))
		for a := 0; a < n; a++ {
			for i, r := range t.Rows {
				col[i] = r.Values[a]
			}
			d.minValues[a] = floats.Min(col)
			d.maxValues[a] = floats.Max(col)
		}
	}
	// 类别按首次出现顺序
	d.classNames = nil
	index := map[string]int{}
	d.rows = make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		c, ok := index[r.Class]
		if !ok {
			c = len(d.classNames)
			index[r.Class] = c
			d.classNames = append(d.classNames, r.Class)
		}
		d.rows[i] = Row{
			Values: d.normalize(r.Values),
			Raw:    append([]float64(nil), r.Values...),
			Class:  c,
		}
	}
	d.classColors = d.palette(len(d.classNames), d.classNames)
	d.resetClassState()
	d.resetAttributeState()
	d.version++
	slog.Debug("数据加载完成", "name", d.Name, "rows", len(d.rows), "attributes", n, "classes", len(d.classNames))
	return nil
}

// Reload 重新加载表格，属性数量不变时保留反转设置
func (d *Dataset) Reload(t *types.Table) error {
	inversions := append([]bool(nil), d.inversions...)
	if err := d.Load(t); err != nil {
		return err
	}
	if len(inversions) == len(d.inversions) {
		d.inversions = inversions
	}
	return nil
}

// Filter 只保留 indices 指定的行重新加载（例如只重绘重叠样本）
// 保留原有类别颜色
func (d *Dataset) Filter(indices []int) error {
	if len(d.rows) == 0 {
		slog.Warn("数据表为空，无法过滤")
		return ErrEmptyTable
	}
	colors := map[string]color.NRGBA{}
	for i, name := range d.classNames {
		colors[name] = d.classColors[i]
	}
	t := &types.Table{AttributeNames: append([]string(nil), d.attributeNames...)}
	for _, i := range indices {
		if i < 0 || i >= len(d.rows) {
			continue
		}
		r := d.rows[i]
		t.Rows = append(t.Rows, types.TableRow{Values: append([]float64(nil), r.Raw...), Class: d.classNames[r.Class]})
	}
	if err := d.Load(t); err != nil {
		return err
	}
	for i, name := range d.classNames {
		if c, ok := colors[name]; ok {
			d.classColors[i] = c
		}
	}
	return nil
}

// normalize 原始值归一化到 [0,1]，无变化的属性取 0
func (d *Dataset) normalize(raw []float64) []float64 {
	out := make([]float64, len(raw))
	for a, v := range raw {
		span := d.maxValues[a] - d.minValues[a]
		if span == 0 {
			continue
		}
		out[a] = (v - d.minValues[a]) / span
	}
	return out
}

// denormalize 归一化值还原为原始值
func (d *Dataset) denormalize(values []float64) []float64 {
	out := make([]float64, len(values))
	for a, v := range values {
		out[a] = v*(d.maxValues[a]-d.minValues[a]) + d.minValues[a]
	}
	return out
}

func (d *Dataset) resetClassState() {
	n := len(d.classNames)
	d.classOrder = identity(n)
	d.activeClasses = repeat(n, true)
	d.activeMarkers = repeat(n, true)
	d.activeSectors = repeat(n, true)
}

func (d *Dataset) resetAttributeState() {
	n := len(d.attributeNames)
	d.attributeOrder = identity(n)
	d.activeAttributes = repeat(n, true)
	d.inversions = repeat(n, false)
	d.shifts = make([]float64, n)
	d.coefs = make([]float64, n)
	for i := range d.coefs {
		d.coefs[i] = types.DefaultCoef
	}
}

// Version 数据版本，几何相关的修改都会递增
func (d *Dataset) Version() uint64 { return d.version }

// SampleCount 样本数量
func (d *Dataset) SampleCount() int { return len(d.rows) }

// AttributeCount 属性数量
func (d *Dataset) AttributeCount() int { return len(d.attributeNames) }

// ClassCount 类别数量
func (d *Dataset) ClassCount() int { return len(d.classNames) }

// ClassNames 类别名称
func (d *Dataset) ClassNames() []string { return append([]string(nil), d.classNames...) }

// ClassColors 类别颜色
func (d *Dataset) ClassColors() []color.NRGBA { return append([]color.NRGBA(nil), d.classColors...) }

// AttributeNames 属性名称（存储顺序）
func (d *Dataset) AttributeNames() []string { return append([]string(nil), d.attributeNames...) }

// Bounds 属性原始值范围
func (d *Dataset) Bounds(attr int) (min, max float64) { return d.minValues[attr], d.maxValues[attr] }

// CountPerClass 每个类别的样本数
func (d *Dataset) CountPerClass() []int {
	counts := make([]int, len(d.classNames))
	for _, r := range d.rows {
		counts[r.Class]++
	}
	return counts
}

// Row 获取一行（副本）
func (d *Dataset) Row(i int) Row {
	r := d.rows[i]
	r.Values = append([]float64(nil), r.Values...)
	r.Raw = append([]float64(nil), r.Raw...)
	return r
}

// Table 导出原始值表格
func (d *Dataset) Table() *types.Table {
	t := &types.Table{AttributeNames: d.AttributeNames(), Rows: make([]types.TableRow, len(d.rows))}
	for i, r := range d.rows {
		t.Rows[i] = types.TableRow{Values: append([]float64(nil), r.Raw...), Class: d.classNames[r.Class]}
	}
	return t
}

// Snapshot 单帧只读快照（深拷贝）
func (d *Dataset) Snapshot() *types.Snapshot {
	s := &types.Snapshot{
		Version:          d.version,
		AttributeNames:   d.AttributeNames(),
		AttributeOrder:   append([]int(nil), d.attributeOrder...),
		ActiveAttributes: append([]bool(nil), d.activeAttributes...),
		Inversions:       append([]bool(nil), d.inversions...),
		Shifts:           append([]float64(nil), d.shifts...),
		Coefs:            append([]float64(nil), d.coefs...),
		AttributeAlpha:   d.attributeAlpha,
		TraceMode:        d.traceMode,
		ClassNames:       d.ClassNames(),
		ClassColors:      d.ClassColors(),
		CountPerClass:    d.CountPerClass(),
		ClassOrder:       append([]int(nil), d.classOrder...),
		ActiveClasses:    append([]bool(nil), d.activeClasses...),
		ActiveMarkers:    append([]bool(nil), d.activeMarkers...),
		ActiveSectors:    append([]bool(nil), d.activeSectors...),
		Values:           make([][]float64, len(d.rows)),
		Classes:          make([]int, len(d.rows)),
		Flags:            make([]types.SampleFlags, len(d.rows)),
	}
	for i, r := range d.rows {
		s.Values[i] = append([]float64(nil), r.Values...)
		s.Classes[i] = r.Class
		s.Flags[i] = r.Flags
	}
	return s
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func repeat(n int, v bool) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// isPermutation 检查 p 是否为 0..n-1 的排列
func isPermutation(p []int, n int) bool {
	if len(p) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

package types

import (
	"image/color"

	"github.com/pkg/errors"
)

// ErrRaggedRow 行属性数量与表头不一致
var ErrRaggedRow = errors.New("行属性数量与表头不一致")

// TableRow 表格中的一行：属性值和类别标签
type TableRow struct {
	Values []float64 // 属性值（按存储顺序）
	Class  string    // 类别名称
}

// Table 带类别标签的数值表格
type Table struct {
	AttributeNames []string   // 属性名称
	Rows           []TableRow // 行数据
}

// Validate 检查每一行都有 len(AttributeNames) 个属性值
func (t *Table) Validate() error {
	n := len(t.AttributeNames)
	for i, r := range t.Rows {
		if len(r.Values) != n {
			return errors.Wrapf(ErrRaggedRow, "第 %d 行: 期望 %d 个值, 实际 %d", i, n, len(r.Values))
		}
	}
	return nil
}

// SampleFlags 单个样本的选择状态
// 与表格行一一对应，随行一起插入删除
type SampleFlags struct {
	Selected     bool // 被空间查询选中 (clipped)
	Cleared      bool // 不显示 (软删除)
	VertexIn     bool // 链上任意顶点落在最近一次选择区域内
	LastVertexIn bool // 链的最后一个属性顶点落在最近一次选择区域内
}

// Snapshot 单帧只读状态快照
// 几何计算、重叠分析和渲染只读取快照，不修改数据集
type Snapshot struct {
	Version uint64 // 数据版本，任何修改都会递增

	// 属性信息
	AttributeNames   []string
	AttributeOrder   []int     // 显示顺序 -> 属性索引
	ActiveAttributes []bool    // 按属性索引
	Inversions       []bool    // 按属性索引
	Shifts           []float64 // 按属性索引，[-1,1]
	Coefs            []float64 // 按属性索引，[0,100]
	AttributeAlpha   uint8
	TraceMode        bool

	// 类别信息
	ClassNames    []string
	ClassColors   []color.NRGBA
	CountPerClass []int
	ClassOrder    []int // 层叠顺序，ClassOrder[0] 为最内环
	ActiveClasses []bool
	ActiveMarkers []bool
	ActiveSectors []bool

	// 样本信息
	Values  [][]float64 // 归一化属性值 [行][属性]
	Classes []int       // 每行的类别索引
	Flags   []SampleFlags
}

// AttributeCount 属性数量
func (s *Snapshot) AttributeCount() int { return len(s.AttributeNames) }

// ClassCount 类别数量
func (s *Snapshot) ClassCount() int { return len(s.ClassNames) }

// SampleCount 样本数量
func (s *Snapshot) SampleCount() int { return len(s.Values) }

// DisplayValue 第 row 行在显示位置 pos 上的归一化值（已应用反转）
func (s *Snapshot) DisplayValue(row, pos int) float64 {
	attr := s.AttributeOrder[pos]
	v := s.Values[row][attr]
	if s.Inversions[attr] {
		v = 1 - v
	}
	return v
}

// ClassRows 每个类别的行索引（按行顺序）
func (s *Snapshot) ClassRows() [][]int {
	rows := make([][]int, s.ClassCount())
	for i, c := range s.Classes {
		rows[c] = append(rows[c], i)
	}
	return rows
}

// ClassRank 类别在 ClassOrder 中的位置，不存在返回 -1
func (s *Snapshot) ClassRank(class int) int {
	for i, c := range s.ClassOrder {
		if c == class {
			return i
		}
	}
	return -1
}

// AnySelected 是否存在被选中的样本
func (s *Snapshot) AnySelected() bool {
	for _, f := range s.Flags {
		if f.Selected {
			return true
		}
	}
	return false
}

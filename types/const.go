package types

import (
	"fmt"
	"strings"
)

// PlotMode 绘图坐标系类型
type PlotMode int

const (
	ModeLinear PlotMode = iota // 平行坐标 (PC)
	ModeSCC                    // 静态圆坐标，单环
	ModeDCC                    // 动态圆坐标，多环
)

// 坐标布局常量
const (
	InnerPullScale   = 0.0025 // 内环向圆心收缩系数（乘属性数量）
	RingScaleFactor  = 2.1    // 外环半径放大系数
	ControlRadius    = 2.4    // 外环贝塞尔控制点半径系数
	InnerControlSize = 0.01   // 内环贝塞尔控制点收缩系数
	DefaultCoef      = 100.0  // 默认属性权重（百分比）
	DefaultAlpha     = 255    // 默认属性透明度
)

// String 名称
func (m PlotMode) String() string {
	switch m {
	case ModeLinear:
		return "PC"
	case ModeSCC:
		return "SCC"
	case ModeDCC:
		return "DCC"
	}
	return fmt.Sprintf("PlotMode(%d)", int(m))
}

// IsCircular 是否为圆坐标模式
func (m PlotMode) IsCircular() bool {
	return m == ModeSCC || m == ModeDCC
}

// VertexCount 每个样本链的顶点数量
// 圆坐标为闭合链，最后一个点重复第一个点
func (m PlotMode) VertexCount(attributeCount int) int {
	if m.IsCircular() {
		return attributeCount + 1
	}
	return attributeCount
}

// ParsePlotMode 解析模式名称（不区分大小写）
func ParsePlotMode(s string) (PlotMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PC", "LINEAR":
		return ModeLinear, nil
	case "SCC":
		return ModeSCC, nil
	case "DCC":
		return ModeDCC, nil
	}
	return ModeLinear, fmt.Errorf("未知绘图模式: %q", s)
}

// Package render 根据布局、选择状态和视口生成绘制指令
package render

import (
	"image/color"

	"ndplot/types"
)

// Canvas 绘图后端，坐标均为数据坐标，由后端映射到像素
// 线宽和点大小为像素
type Canvas interface {
	Clear(c color.NRGBA)
	Polyline(pts []types.Point, width float64, c color.NRGBA)
	Polygon(pts []types.Point, fill color.NRGBA)
	Circle(center types.Point, radius, width float64, c color.NRGBA)
	Dot(p types.Point, size float64, c color.NRGBA)
	Rect(r types.Rect, fill color.NRGBA)
}

// 固定颜色
var (
	Highlight = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	Overlap   = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	ClipBox   = color.NRGBA{R: 255, G: 0, B: 0, A: 128}
	White     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Style 绘制参数
type Style struct {
	Background        color.NRGBA
	Axes              color.NRGBA
	HighlightOverlaps bool
	CurveSegments     int
}

// DefaultStyle 浅灰背景、黑色坐标轴
func DefaultStyle() Style {
	return Style{
		Background:        color.NRGBA{R: 239, G: 239, B: 239, A: 255},
		Axes:              color.NRGBA{A: 255},
		HighlightOverlaps: true,
		CurveSegments:     11,
	}
}

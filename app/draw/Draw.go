package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"ndplot/types"
	"ndplot/viewport"
)

// circleSegments 坐标轴圆的折线段数
const circleSegments = 100

// Draw 绘图，实现 render.Canvas
// 数据坐标经视口映射为像素，线宽和点大小按 Dp 换算
type Draw struct {
	layout.Context                    // 默认上下文
	View           *viewport.Viewport // 视口
}

// New 创建绘图上下文
func New(gtx layout.Context, v *viewport.Viewport) *Draw {
	return &Draw{Context: gtx, View: v}
}

// WorldToScreenF32 坐标计算
func (d *Draw) WorldToScreenF32(p types.Point) f32.Point {
	x, y := d.View.DataToScreen(p)
	return f32.Pt(float32(x), float32(y))
}

// lineWidth 将线宽从 Dp 转换为像素，最小 1 像素
func (d *Draw) lineWidth(width float64) float32 {
	w := float32(d.Dp(unit.Dp(width)))
	if w < 1.0 {
		w = 1.0
	}
	return w
}

// path 依次连接各点
func (d *Draw) path(pts []types.Point, closed bool) clip.PathSpec {
	var path clip.Path
	path.Begin(d.Ops)
	path.MoveTo(d.WorldToScreenF32(pts[0]))
	for _, p := range pts[1:] {
		path.LineTo(d.WorldToScreenF32(p))
	}
	if closed {
		path.Close()
	}
	return path.End()
}

// Clear 用背景色填充整个区域
func (d *Draw) Clear(c color.NRGBA) {
	paint.FillShape(d.Ops, c, clip.Rect{Max: d.Constraints.Max}.Op())
}

// Polyline 绘制折线（不闭合）
func (d *Draw) Polyline(pts []types.Point, width float64, c color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	paint.FillShape(d.Ops, c, clip.Stroke{
		Path:  d.path(pts, false),
		Width: d.lineWidth(width),
	}.Op())
}

// Polygon 填充多边形（闭合）
func (d *Draw) Polygon(pts []types.Point, fill color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	paint.FillShape(d.Ops, fill, clip.Outline{Path: d.path(pts, true)}.Op())
}

// Circle 绘制圆，半径为数据坐标
// 视口横纵比例不同时为椭圆，因此按折线绘制
func (d *Draw) Circle(center types.Point, radius, width float64, c color.NRGBA) {
	pts := make([]types.Point, circleSegments+1)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = center.Add(types.Polar(radius, a))
	}
	d.Polyline(pts, width, c)
}

// Dot 绘制一个点
// 点实际上是一个小圆形，直径由 size 参数控制
func (d *Draw) Dot(p types.Point, size float64, c color.NRGBA) {
	pos := d.WorldToScreenF32(p)
	radius := float32(d.Dp(unit.Dp(size))) / 2
	if radius < 0.5 {
		radius = 0.5
	}
	ellipse := clip.Ellipse{
		Min: image.Pt(int(pos.X-radius), int(pos.Y-radius)),
		Max: image.Pt(int(math.Ceil(float64(pos.X+radius))), int(math.Ceil(float64(pos.Y+radius)))),
	}
	paint.FillShape(d.Ops, c, ellipse.Op(d.Ops))
}

// Rect 填充矩形
func (d *Draw) Rect(r types.Rect, fill color.NRGBA) {
	a := d.WorldToScreenF32(types.Pt(r.XMin, r.YMax))
	b := d.WorldToScreenF32(types.Pt(r.XMax, r.YMin))
	rect := image.Rect(int(a.X), int(a.Y), int(math.Ceil(float64(b.X))), int(math.Ceil(float64(b.Y))))
	paint.FillShape(d.Ops, fill, clip.Rect(rect).Op())
}

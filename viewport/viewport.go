// Package viewport 正交视口：屏幕与数据坐标映射、缩放和平移
package viewport

import (
	"log/slog"
	"math"

	"github.com/pkg/errors"

	"ndplot/types"
)

// ErrDegenerate 视口宽度或高度为 0
var ErrDegenerate = errors.New("视口范围退化")

// DefaultZoomFactor 每格滚轮的缩放倍数
const DefaultZoomFactor = 1.2

// Bounds 数据空间可视范围
type Bounds struct {
	Left, Right, Bottom, Top float64
}

// Width 宽度
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height 高度
func (b Bounds) Height() float64 { return b.Top - b.Bottom }

// Degenerate 是否退化
func (b Bounds) Degenerate() bool { return b.Left == b.Right || b.Bottom == b.Top }

// Viewport 视口
// 屏幕原点在左上角，数据原点在左下角
type Viewport struct {
	Bounds
	ScreenW, ScreenH float64 // 窗口像素尺寸
	ZoomFactor       float64

	dragging bool
	last     types.Point // 上一次拖动位置（数据坐标）
}

// New 创建默认范围 ±1.125 的视口
func New(width, height float64) *Viewport {
	v := &Viewport{ScreenW: width, ScreenH: height, ZoomFactor: DefaultZoomFactor}
	v.Reset()
	return v
}

// Reset 恢复默认范围
func (v *Viewport) Reset() {
	v.Bounds = Bounds{Left: -1.125, Right: 1.125, Bottom: -1.125, Top: 1.125}
}

// Get 当前范围
func (v *Viewport) Get() Bounds { return v.Bounds }

// Set 设置范围，退化的范围被拒绝
func (v *Viewport) Set(b Bounds) error {
	if b.Degenerate() {
		slog.Warn("忽略退化的视口范围", "bounds", b)
		return errors.Wrapf(ErrDegenerate, "%+v", b)
	}
	v.Bounds = b
	return nil
}

// Resize 更新窗口像素尺寸
func (v *Viewport) Resize(width, height float64) {
	v.ScreenW, v.ScreenH = width, height
}

// ResizeToMode 按绘图模式适配范围
func (v *Viewport) ResizeToMode(mode types.PlotMode, attributeCount, classCount int) {
	if !mode.IsCircular() {
		v.Bounds = Bounds{Left: -0.05, Right: 1.05, Bottom: -0.05, Top: 1.05}
		return
	}
	mult := 1.0
	if classCount > 1 {
		mult = float64(classCount - 1)
	}
	e := float64(attributeCount) * 0.35 * mult
	if e == 0 {
		v.Reset()
		return
	}
	v.Bounds = Bounds{Left: -e, Right: e, Bottom: -e, Top: e}
}

// ScreenToData 屏幕像素坐标转换为数据坐标
func (v *Viewport) ScreenToData(px, py float64) types.Point {
	if v.ScreenW == 0 || v.ScreenH == 0 {
		return types.Pt(v.Left, v.Bottom)
	}
	return types.Point{
		X: v.Left + px*v.Width()/v.ScreenW,
		Y: v.Bottom + (v.ScreenH-py)*v.Height()/v.ScreenH,
	}
}

// DataToScreen 数据坐标转换为屏幕像素坐标
func (v *Viewport) DataToScreen(p types.Point) (px, py float64) {
	px = (p.X - v.Left) / v.Width() * v.ScreenW
	py = v.ScreenH - (p.Y-v.Bottom)/v.Height()*v.ScreenH
	return px, py
}

// Zoom 以光标位置为中心缩放，notches < 0 缩小视野（放大范围），> 0 放大视野
// 光标下的数据点在缩放前后保持在同一屏幕位置
func (v *Viewport) Zoom(px, py float64, notches float64) {
	if notches == 0 || v.ScreenW == 0 || v.ScreenH == 0 {
		return
	}
	factor := v.ZoomFactor
	if factor <= 1 {
		factor = DefaultZoomFactor
	}
	scale := math.Pow(factor, -notches)
	mx := px / v.ScreenW
	my := (v.ScreenH - py) / v.ScreenH
	anchor := v.ScreenToData(px, py)
	w := v.Width() * scale
	h := v.Height() * scale
	v.Bounds = Bounds{
		Left:   anchor.X - mx*w,
		Right:  anchor.X + (1-mx)*w,
		Bottom: anchor.Y - my*h,
		Top:    anchor.Y + (1-my)*h,
	}
}

// BeginDrag 记录拖动起点
func (v *Viewport) BeginDrag(px, py float64) {
	v.dragging = true
	v.last = v.ScreenToData(px, py)
}

// Drag 按光标自上次记录以来的数据位移平移视口
func (v *Viewport) Drag(px, py float64) {
	if !v.dragging {
		v.BeginDrag(px, py)
		return
	}
	p := v.ScreenToData(px, py)
	d := p.Sub(v.last)
	v.Left -= d.X
	v.Right -= d.X
	v.Bottom -= d.Y
	v.Top -= d.Y
	// 平移后同一屏幕位置对应的数据坐标
	v.last = v.ScreenToData(px, py)
}

// EndDrag 结束拖动
func (v *Viewport) EndDrag() { v.dragging = false }

// Dragging 是否正在拖动
func (v *Viewport) Dragging() bool { return v.dragging }

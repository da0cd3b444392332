package types

import "math"

// Point 数据空间二维点
type Point struct {
	X, Y float64
}

// Pt 创建点
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add 相加
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub 相减
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale 缩放
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Mid 中点
func (p Point) Mid(q Point) Point { return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2} }

// Len 到原点的距离
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dist 两点距离
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Angle 数学角度 atan2(y, x)，范围 (-π, π]
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }

// Polar 由半径和角度生成点
func Polar(radius, angle float64) Point {
	return Point{radius * math.Cos(angle), radius * math.Sin(angle)}
}

// Rect 数据空间中的轴对齐矩形
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// NewRect 由两个角点创建矩形，自动整理顺序
func NewRect(a, b Point) Rect {
	return Rect{
		XMin: math.Min(a.X, b.X),
		YMin: math.Min(a.Y, b.Y),
		XMax: math.Max(a.X, b.X),
		YMax: math.Max(a.Y, b.Y),
	}
}

// RectAround 以 center 为中心、半宽为 eps 的正方形
func RectAround(center Point, eps float64) Rect {
	return Rect{center.X - eps, center.Y - eps, center.X + eps, center.Y + eps}
}

// Contains 点是否在矩形内（包含边界）
func (r Rect) Contains(p Point) bool {
	return r.XMin <= p.X && p.X <= r.XMax && r.YMin <= p.Y && p.Y <= r.YMax
}

// ContainsStrict 点是否严格在矩形内部
func (r Rect) ContainsStrict(p Point) bool {
	return r.XMin < p.X && p.X < r.XMax && r.YMin < p.Y && p.Y < r.YMax
}

// Center 中心点
func (r Rect) Center() Point {
	return Point{(r.XMin + r.XMax) / 2, (r.YMin + r.YMax) / 2}
}

// HalfWidth 半宽
func (r Rect) HalfWidth() float64 { return (r.XMax - r.XMin) / 2 }

// Package vgcanvas 基于 gonum/plot vg 的离屏画布，输出 PNG 或 SVG
package vgcanvas

import (
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"ndplot/types"
	"ndplot/viewport"
)

// ErrFormat 不支持的输出格式
var ErrFormat = errors.New("不支持的输出格式")

// circleSegments 坐标轴圆的折线段数
const circleSegments = 100

// Canvas 实现 render.Canvas
// vg 原点在左下角，与数据坐标方向一致
type Canvas struct {
	vc     vg.CanvasWriterTo
	w, h   vg.Length
	bounds viewport.Bounds
}

// New 创建画布，width/height 为点 (1/72 英寸)，format 为 png 或 svg
func New(format string, width, height float64, b viewport.Bounds) (*Canvas, error) {
	if b.Degenerate() {
		return nil, errors.Wrapf(viewport.ErrDegenerate, "%+v", b)
	}
	w, h := vg.Length(width), vg.Length(height)
	c := &Canvas{w: w, h: h, bounds: b}
	switch strings.ToLower(format) {
	case "png":
		c.vc = vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(vgimg.DefaultDPI))}
	case "svg":
		c.vc = vgsvg.New(w, h)
	default:
		return nil, errors.Wrapf(ErrFormat, "%q", format)
	}
	return c, nil
}

// FormatOf 根据文件扩展名判断格式
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// pt 数据坐标转换为画布坐标
func (c *Canvas) pt(p types.Point) vg.Point {
	return vg.Point{
		X: vg.Length((p.X - c.bounds.Left) / c.bounds.Width() * float64(c.w)),
		Y: vg.Length((p.Y - c.bounds.Bottom) / c.bounds.Height() * float64(c.h)),
	}
}

func (c *Canvas) path(pts []types.Point) vg.Path {
	var p vg.Path
	for i, q := range pts {
		if i == 0 {
			p.Move(c.pt(q))
		} else {
			p.Line(c.pt(q))
		}
	}
	return p
}

// Clear 填充背景
func (c *Canvas) Clear(col color.NRGBA) {
	var p vg.Path
	p.Move(vg.Point{})
	p.Line(vg.Point{X: c.w})
	p.Line(vg.Point{X: c.w, Y: c.h})
	p.Line(vg.Point{Y: c.h})
	p.Close()
	c.vc.SetColor(col)
	c.vc.Fill(p)
}

// Polyline 折线
func (c *Canvas) Polyline(pts []types.Point, width float64, col color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	c.vc.SetLineWidth(vg.Length(width))
	c.vc.SetColor(col)
	c.vc.Stroke(c.path(pts))
}

// Polygon 填充多边形
func (c *Canvas) Polygon(pts []types.Point, fill color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	p := c.path(pts)
	p.Close()
	c.vc.SetColor(fill)
	c.vc.Fill(p)
}

// Circle 圆（数据坐标半径），用折线近似以适应非等比视口
func (c *Canvas) Circle(center types.Point, radius, width float64, col color.NRGBA) {
	pts := make([]types.Point, circleSegments+1)
	for i := range pts {
		pts[i] = center.Add(types.Polar(radius, float64(i)*2*math.Pi/circleSegments))
	}
	c.Polyline(pts, width, col)
}

// Dot 实心圆点，size 为直径
func (c *Canvas) Dot(p types.Point, size float64, col color.NRGBA) {
	r := vg.Length(size / 2)
	center := c.pt(p)
	var path vg.Path
	path.Move(vg.Point{X: center.X + r, Y: center.Y})
	path.Arc(center, r, 0, 2*math.Pi)
	path.Close()
	c.vc.SetColor(col)
	c.vc.Fill(path)
}

// Rect 填充矩形
func (c *Canvas) Rect(r types.Rect, fill color.NRGBA) {
	c.Polygon([]types.Point{
		{X: r.XMin, Y: r.YMin},
		{X: r.XMax, Y: r.YMin},
		{X: r.XMax, Y: r.YMax},
		{X: r.XMin, Y: r.YMax},
	}, fill)
}

// WriteTo 输出图像
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	return c.vc.WriteTo(w)
}

// Save 保存到文件
func (c *Canvas) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "创建输出文件")
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "写入 %s", path)
	}
	return f.Close()
}

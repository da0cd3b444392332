package render

import (
	"image/color"

	"ndplot/geometry"
	"ndplot/overlap"
	"ndplot/palette"
	"ndplot/types"
)

// 绘制常量
const (
	markerSize         = 5
	terminalMarkerSize = 7
	overlapMarkerSize  = 10
	highlightWidth     = 2
	selectionDim       = 100  // 存在选中样本时未选中曲线降低的透明度
	lastSegmentHue     = 0.1  // 最后一个属性段的色相偏移
	traceHueStep       = 0.02 // 跟踪模式每段的色相偏移
	terminalMarkerHue  = 0.08 // 圆坐标最后一个顶点标记的色相偏移
	sectorAlpha        = 50
	sectorArcSegments  = 50
	ruleAlpha          = 85
)

// Frame 一帧绘制所需的全部输入
type Frame struct {
	Snapshot *types.Snapshot
	Layout   *geometry.Layout
	Overlap  *overlap.Result // 非圆坐标可为 nil
	Regions  []types.Rect    // 选择区域
	Rules    []types.RuleRegion
}

// Renderer 渲染器，持有缓存的场景
type Renderer struct {
	Style  Style
	scene  *Scene
	builds int
}

// New 创建渲染器
func New(style Style) *Renderer {
	if style.CurveSegments < 2 {
		style.CurveSegments = geometry.CurveSegments
	}
	return &Renderer{Style: style}
}

// Scene 获取场景缓存，必要时重建
func (r *Renderer) Scene(s *types.Snapshot, l *geometry.Layout) *Scene {
	key := keyOf(s, l, r.Style.CurveSegments)
	if !r.scene.valid(key, l) {
		r.scene = buildScene(key, l, r.Style.CurveSegments)
		r.builds++
	}
	return r.scene
}

// Builds 场景重建次数
func (r *Renderer) Builds() int { return r.builds }

// Frame 按顺序绘制：背景、坐标轴、普通曲线、扇区、高亮曲线、顶点标记、选择区域、规则区域
func (r *Renderer) Frame(c Canvas, f Frame) {
	c.Clear(r.Style.Background)
	if f.Snapshot == nil || f.Layout == nil {
		return
	}
	sc := r.Scene(f.Snapshot, f.Layout)
	r.drawAxes(c, f.Layout)
	r.drawCurves(c, f, sc)
	r.drawSectors(c, f)
	r.drawHighlighted(c, f, sc)
	r.drawMarkers(c, f)
	for _, rect := range f.Regions {
		c.Rect(rect, ClipBox)
	}
	r.drawRules(c, f)
}

func (r *Renderer) drawAxes(c Canvas, l *geometry.Layout) {
	for _, radius := range l.Axes.Circles {
		c.Circle(types.Point{}, radius, 1, r.Style.Axes)
	}
	if l.Mode.IsCircular() {
		c.Dot(types.Point{}, 1, r.Style.Axes)
	}
	for _, seg := range l.Axes.Lines {
		c.Polyline(seg[:], 1, r.Style.Axes)
	}
}

// segmentAttribute 第 h 段终点对应的属性索引
func segmentAttribute(s *types.Snapshot, l *geometry.Layout, h int) int {
	return s.AttributeOrder[(h+1)%l.AttributeCount]
}

// drawCurves 普通曲线，类别按层叠顺序反向绘制，内层在上
func (r *Renderer) drawCurves(c Canvas, f Frame, sc *Scene) {
	s, l := f.Snapshot, f.Layout
	dim := 0
	if s.AnySelected() {
		dim = selectionDim
	}
	hue := traceHueStep
	for _, class := range reversed(s.ClassOrder) {
		if !s.ActiveClasses[class] {
			continue
		}
		base := s.ClassColors[class]
		for k, row := range l.ChainRows[class] {
			if s.Flags[row].Cleared {
				continue
			}
			for h, seg := range sc.Segments[class][k] {
				col := base
				switch {
				case s.TraceMode:
					col = palette.ShiftHue(base, hue)
					hue += traceHueStep
				case h+1 == l.AttributeCount-1:
					col = palette.ShiftHue(base, lastSegmentHue)
				}
				alpha := 255
				if s.ActiveAttributes[segmentAttribute(s, l, h)] {
					alpha = int(s.AttributeAlpha)
				}
				col.A = uint8(max(alpha-dim, 0))
				c.Polyline(seg, 1, col)
			}
		}
	}
}

// drawSectors 圆坐标类别扇区：半透明扇形和两条边界射线
func (r *Renderer) drawSectors(c Canvas, f Frame) {
	if f.Overlap == nil || !f.Layout.Mode.IsCircular() {
		return
	}
	s, l := f.Snapshot, f.Layout
	radius := l.Radius * float64(s.ClassCount()+1)
	for _, sec := range f.Overlap.Sectors {
		if !s.ActiveSectors[sec.Class] {
			continue
		}
		col := s.ClassColors[sec.Class]
		mult := 5.0
		if sec.Class == s.ClassCount()-1 {
			mult = 2.5
		}
		c.Polyline([]types.Point{{}, sec.Closest.Scale(mult)}, 1, col)
		c.Polyline([]types.Point{{}, sec.Furthest.Scale(mult)}, 1, col)
		c.Polygon(wedge(sec.Start, sec.End, radius), palette.WithAlpha(col, sectorAlpha))
	}
}

// wedge 以原点为顶点的扇形
func wedge(start, end, radius float64) []types.Point {
	pts := make([]types.Point, 0, sectorArcSegments+2)
	pts = append(pts, types.Point{})
	for i := 0; i <= sectorArcSegments; i++ {
		a := start + (end-start)*float64(i)/sectorArcSegments
		pts = append(pts, types.Polar(radius, a))
	}
	return pts
}

// drawHighlighted 选中样本以黄色粗线覆盖绘制，类别顺序与普通曲线相同
func (r *Renderer) drawHighlighted(c Canvas, f Frame, sc *Scene) {
	s, l := f.Snapshot, f.Layout
	for _, class := range reversed(s.ClassOrder) {
		for k, row := range l.ChainRows[class] {
			if !s.Flags[row].Selected || s.Flags[row].Cleared {
				continue
			}
			for _, seg := range sc.Segments[class][k] {
				c.Polyline(seg, highlightWidth, Highlight)
			}
		}
	}
}

// drawMarkers 顶点标记，最后一个顶点更大
// 开启重叠高亮时，重叠顶点先绘制红色大点
func (r *Renderer) drawMarkers(c Canvas, f Frame) {
	s, l := f.Snapshot, f.Layout
	circular := l.Mode.IsCircular()
	last := l.VertexCount - 1
	for _, class := range reversed(s.ClassOrder) {
		if !s.ActiveClasses[class] || !s.ActiveMarkers[class] {
			continue
		}
		base := s.ClassColors[class]
		for k, row := range l.ChainRows[class] {
			if s.Flags[row].Cleared {
				continue
			}
			for j, p := range l.Chain(class, k) {
				if r.Style.HighlightOverlaps && f.Overlap != nil && f.Overlap.IsOverlap(class, k, j, l.VertexCount) {
					c.Dot(p, overlapMarkerSize, Overlap)
				}
				col, size := base, float64(markerSize)
				if j == last {
					size = terminalMarkerSize
					if circular {
						col = palette.ShiftHue(base, terminalMarkerHue)
					}
				}
				col.A = 255
				if s.ActiveAttributes[s.AttributeOrder[j%l.AttributeCount]] {
					col.A = s.AttributeAlpha
				}
				c.Dot(p, size, col)
			}
		}
	}
}

// drawRules 规则区域按标记类型着色
func (r *Renderer) drawRules(c Canvas, f Frame) {
	for _, rule := range f.Rules {
		col := ruleColor(rule, f.Snapshot.ClassColors)
		for _, box := range rule.Boxes {
			c.Rect(box, col)
		}
	}
}

func ruleColor(rule types.RuleRegion, classColors []color.NRGBA) color.NRGBA {
	switch {
	case rule.Kind == types.RuleHighlighted:
		return palette.WithAlpha(Highlight, 128)
	case rule.Kind == types.RulePure && rule.Class >= 0 && rule.Class < len(classColors):
		return palette.WithAlpha(classColors[rule.Class], ruleAlpha)
	case rule.Label != "":
		return palette.WithAlpha(White, ruleAlpha)
	}
	return palette.WithAlpha(Overlap, ruleAlpha)
}

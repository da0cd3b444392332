package app

import (
	"image/color"
	"log/slog"
	"strings"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"ndplot"
	"ndplot/app/draw"
	"ndplot/types"
)

// InteractionMode 表示当前的交互模式
type InteractionMode int

const (
	ModeNone    InteractionMode = iota // 无交互
	ModePanning                        // 中键拖动平移
)

// 快捷键
const (
	KeyLinear    key.Name = "1"                    // 平行坐标
	KeySCC       key.Name = "2"                    // 静态圆坐标
	KeyDCC       key.Name = "3"                    // 动态圆坐标
	KeyClear     key.Name = "C"                    // 清除选择
	KeyReset     key.Name = "R"                    // 视口适配当前模式
	KeyReplot    key.Name = "O"                    // 只保留重叠样本
	KeySummary   key.Name = "S"                    // 显示或隐藏重叠报告
	KeyTrace     key.Name = "T"                    // 轨迹着色
	KeyClone     key.Name = "D"                    // 复制选中样本
	KeyDelete    key.Name = key.NameDeleteBackward // 删除选中样本
	KeyShiftUp   key.Name = key.NameUpArrow        // 选中样本上移
	KeyShiftDown key.Name = key.NameDownArrow      // 选中样本下移
)

// shiftStep 方向键每次移动选中样本的归一化距离
const shiftStep = 0.01

// PlotComponent 可交互的绘图组件
// 左键点选，右键两次框选，中键扩大选择区域并拖动平移，滚轮缩放
type PlotComponent struct {
	Session *ndplot.Session
	Theme   *material.Theme
	Cache   draw.FrameCache

	// 事件拦截钩子
	EventHook func(gtx layout.Context, e pointer.Event) bool

	mode        InteractionMode
	showSummary bool
}

// NewPlotComponent 创建绘图组件
func NewPlotComponent(s *ndplot.Session, theme *material.Theme) *PlotComponent {
	return &PlotComponent{Session: s, Theme: theme}
}

// Layout 实现 Gio 的布局接口
func (p *PlotComponent) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	view := p.Session.View
	if float64(size.X) != view.ScreenW || float64(size.Y) != view.ScreenH {
		view.Resize(float64(size.X), float64(size.Y))
		p.Cache.Invalidate()
	}
	p.handleEvents(gtx)
	return layout.Stack{}.Layout(gtx,
		// 绘图层
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
			// 注册事件监听
			event.Op(gtx.Ops, p)
			p.Cache.Draw(gtx, func(gtx layout.Context) {
				p.Session.Draw(draw.New(gtx, view))
			})
			return layout.Dimensions{Size: size}
		}),
		// 重叠报告层
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			if !p.showSummary || p.Theme == nil {
				return layout.Dimensions{}
			}
			return p.drawSummary(gtx)
		}),
	)
}

// handleEvents 处理交互逻辑
func (p *PlotComponent) handleEvents(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  p,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -1, Max: 1},
		})
		if !ok {
			break
		}
		e, _ := ev.(pointer.Event)
		if p.EventHook != nil && p.EventHook(gtx, e) {
			continue
		}
		p.HandlePointerEvent(e)
	}
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: KeyLinear}, key.Filter{Name: KeySCC}, key.Filter{Name: KeyDCC},
			key.Filter{Name: KeyClear}, key.Filter{Name: KeyReset}, key.Filter{Name: KeyReplot},
			key.Filter{Name: KeySummary}, key.Filter{Name: KeyTrace}, key.Filter{Name: KeyClone},
			key.Filter{Name: KeyDelete}, key.Filter{Name: KeyShiftUp}, key.Filter{Name: KeyShiftDown},
		)
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok && e.State == key.Press {
			p.HandleKey(e.Name)
		}
	}
}

// HandlePointerEvent 处理单个指针事件
func (p *PlotComponent) HandlePointerEvent(e pointer.Event) {
	s := p.Session
	x, y := float64(e.Position.X), float64(e.Position.Y)
	switch e.Kind {
	case pointer.Press:
		switch {
		case e.Buttons.Contain(pointer.ButtonPrimary):
			if row, ok := s.Click(x, y); ok {
				slog.Debug("点选样本", "row", row)
			}
		case e.Buttons.Contain(pointer.ButtonSecondary):
			s.RightClick(x, y)
		case e.Buttons.Contain(pointer.ButtonTertiary):
			s.MiddleClick(x, y)
			p.mode = ModePanning
		}
	case pointer.Drag:
		if p.mode == ModePanning {
			s.Drag(x, y)
		}
	case pointer.Release, pointer.Cancel:
		p.mode = ModeNone
		s.Release()
	case pointer.Scroll:
		// 向上滚动放大
		s.Wheel(x, y, -float64(sign(e.Scroll.Y)))
	default:
		return
	}
	p.Cache.Invalidate()
}

// HandleKey 处理快捷键，前置条件不满足的操作只记录日志
func (p *PlotComponent) HandleKey(name key.Name) {
	s := p.Session
	var err error
	switch name {
	case KeyLinear:
		s.SetMode(types.ModeLinear)
	case KeySCC:
		s.SetMode(types.ModeSCC)
	case KeyDCC:
		s.SetMode(types.ModeDCC)
	case KeyClear:
		s.ClearSelection()
	case KeyReset:
		s.SetMode(s.Mode())
	case KeyReplot:
		err = s.ReplotOverlaps()
	case KeySummary:
		p.showSummary = !p.showSummary
	case KeyTrace:
		snap := s.Snapshot()
		s.Data.SetTraceMode(snap == nil || !snap.TraceMode)
	case KeyClone:
		err = s.Data.CloneSelected()
	case KeyDelete:
		err = s.Data.DeleteSelected()
	case KeyShiftUp:
		err = s.Data.ShiftSelectedBy(shiftStep)
	case KeyShiftDown:
		err = s.Data.ShiftSelectedBy(-shiftStep)
	default:
		return
	}
	if err != nil {
		slog.Info("忽略操作", "key", string(name), "error", err)
	}
	s.Recompute()
	p.Cache.Invalidate()
}

// drawSummary 左上角半透明底色上显示重叠报告
func (p *PlotComponent) drawSummary(gtx layout.Context) layout.Dimensions {
	text := strings.TrimRight(p.Session.OverlapSummary(), "\n")
	inset := layout.UniformInset(unit.Dp(8))
	macro := op.Record(gtx.Ops)
	dims := inset.Layout(gtx, material.Body2(p.Theme, text).Layout)
	call := macro.Stop()
	paint.FillShape(gtx.Ops, color.NRGBA{R: 255, G: 255, B: 255, A: 200}, clip.Rect{Max: dims.Size}.Op())
	call.Add(gtx.Ops)
	return dims
}

func sign(v float32) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

package app

import (
	"log"
	"log/slog"
	"sync"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"ndplot"
	"ndplot/types"
)

// pendingTable 单槽的待重新加载表格，新表格覆盖尚未应用的旧表格
type pendingTable struct {
	mu sync.Mutex
	t  *types.Table
}

// Put 放入表格，返回是否覆盖了尚未应用的表格
func (p *pendingTable) Put(t *types.Table) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	replaced := p.t != nil
	p.t = t
	return replaced
}

// Take 取出表格并清空槽位，没有时返回 nil
func (p *pendingTable) Take() *types.Table {
	p.mu.Lock()
	defer p.mu.Unlock()
	t := p.t
	p.t = nil
	return t
}

// PlotApp 多维数据绘图应用程序
type PlotApp struct {
	window  *app.Window
	theme   *material.Theme
	plot    *PlotComponent
	reloads pendingTable
}

// NewPlotApp 创建新的绘图应用程序，width/height 为窗口大小 (Dp)
func NewPlotApp(s *ndplot.Session, title string, width, height int) *PlotApp {
	window := new(app.Window)
	window.Option(app.Title(title), app.Size(unit.Dp(width), unit.Dp(height)))
	theme := material.NewTheme()
	return &PlotApp{
		window: window,
		theme:  theme,
		plot:   NewPlotComponent(s, theme),
	}
}

// Window 返回应用程序窗口
func (a *PlotApp) Window() *app.Window {
	return a.window
}

// Reload 提交新表格，在下一帧的界面线程中应用
// 可在任意 goroutine 调用；尚未应用的旧表格被丢弃
func (a *PlotApp) Reload(t *types.Table) {
	if a.reloads.Put(t) {
		slog.Debug("丢弃尚未应用的旧表格")
	}
	a.window.Invalidate()
}

// applyReloads 应用最新提交的表格
func (a *PlotApp) applyReloads() {
	latest := a.reloads.Take()
	if latest == nil {
		return
	}
	if err := a.plot.Session.Reload(latest); err != nil {
		slog.Warn("重新加载失败", "error", err)
		return
	}
	a.plot.Cache.Invalidate()
}

// Run 运行应用程序，窗口关闭后返回
func (a *PlotApp) Run() {
	var ops op.Ops
	for {
		e := a.window.Event()
		switch e := e.(type) {
		case app.DestroyEvent:
			if e.Err != nil {
				log.Fatal(e.Err)
			}
			return
		case app.FrameEvent:
			a.applyReloads()
			gtx := app.NewContext(&ops, e)

			// 绘制数据
			a.plot.Layout(gtx)

			e.Frame(gtx.Ops)
		}
	}
}

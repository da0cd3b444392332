// Package ndplot 多维数据可视化会话
// 单线程持有数据集、视口、选择区域以及缓存的布局和重叠分析
package ndplot

import (
	"log/slog"

	"github.com/pkg/errors"

	"ndplot/clipping"
	"ndplot/config"
	"ndplot/dataset"
	"ndplot/geometry"
	"ndplot/overlap"
	"ndplot/render"
	"ndplot/types"
	"ndplot/viewport"
)

// ErrNoOverlaps 没有重叠样本可供重绘
var ErrNoOverlaps = errors.New("没有重叠样本")

// Session 可视化会话
type Session struct {
	Data        *dataset.Dataset
	View        *viewport.Viewport
	Regions     clipping.Regions
	Tuning      clipping.Tuning
	GrowEpsilon float64

	mode     types.PlotMode
	rules    []types.RuleRegion
	renderer *render.Renderer

	snapshot *types.Snapshot
	layout   *geometry.Layout
	overlap  *overlap.Result
}

// New 按配置创建会话
func New(cfg config.Config) (*Session, error) {
	mode, err := cfg.PlotMode()
	if err != nil {
		return nil, err
	}
	s := &Session{
		Data:        dataset.New(nil),
		View:        viewport.New(float64(cfg.Window.Width), float64(cfg.Window.Height)),
		Tuning:      cfg.PointSelect,
		GrowEpsilon: cfg.GrowEpsilon,
		mode:        mode,
		renderer:    render.New(cfg.Style()),
	}
	s.View.ZoomFactor = cfg.ZoomFactor
	s.Data.SetAttributeAlpha(cfg.AttributeAlpha)
	if s.GrowEpsilon <= 0 {
		s.GrowEpsilon = clipping.DefaultGrowEpsilon
	}
	s.Recompute()
	return s, nil
}

// Load 加载新表格，视口适配当前模式，清除选择区域
func (s *Session) Load(t *types.Table) error {
	if err := s.Data.Load(t); err != nil {
		return err
	}
	s.Regions.Clear()
	s.fit()
	s.Recompute()
	return nil
}

// Reload 重新加载表格，保留视口和反转设置
func (s *Session) Reload(t *types.Table) error {
	if err := s.Data.Reload(t); err != nil {
		return err
	}
	s.Regions.Clear()
	s.Recompute()
	return nil
}

// Mode 当前绘图模式
func (s *Session) Mode() types.PlotMode { return s.mode }

// SetMode 切换绘图模式并适配视口
func (s *Session) SetMode(m types.PlotMode) {
	s.mode = m
	s.fit()
	s.Recompute()
}

// SetStyle 更新绘制参数
func (s *Session) SetStyle(style render.Style) { s.renderer.Style = style }

// SetRules 设置外部规则区域
func (s *Session) SetRules(rules []types.RuleRegion) { s.rules = rules }

func (s *Session) fit() {
	s.View.ResizeToMode(s.mode, s.Data.AttributeCount(), s.Data.ClassCount())
}

// Recompute 刷新快照；数据版本或模式改变时重算布局，重叠分析每次重算
func (s *Session) Recompute() {
	snap := s.Data.Snapshot()
	if s.layout == nil || s.snapshot == nil || s.snapshot.Version != snap.Version || s.layout.Mode != s.mode {
		s.layout = geometry.Compute(snap, s.mode)
	}
	s.snapshot = snap
	s.overlap = overlap.Analyze(s.layout, snap)
}

// Snapshot 当前快照
func (s *Session) Snapshot() *types.Snapshot { return s.snapshot }

// Layout 当前布局
func (s *Session) Layout() *geometry.Layout { return s.layout }

// Overlap 当前重叠分析结果
func (s *Session) Overlap() *overlap.Result { return s.overlap }

// Click 左键点选
func (s *Session) Click(px, py float64) (int, bool) {
	s.Recompute()
	row, ok := clipping.SelectPoint(s.Data, s.snapshot, s.layout, s.View.ScreenToData(px, py), s.Tuning)
	s.Recompute()
	return row, ok
}

// RightClick 右键记录框选角点，第二次点击完成框选
func (s *Session) RightClick(px, py float64) bool {
	rect, done := s.Regions.Corner(s.View.ScreenToData(px, py))
	if !done {
		return false
	}
	s.Recompute()
	clipping.SelectRect(s.Data, s.snapshot, s.layout, rect)
	s.Recompute()
	return true
}

// MiddleClick 中键在光标处新建或扩大选择区域，并开始拖动
func (s *Session) MiddleClick(px, py float64) types.Rect {
	rect := s.Regions.Grow(s.View.ScreenToData(px, py), s.GrowEpsilon)
	s.Recompute()
	clipping.SelectRect(s.Data, s.snapshot, s.layout, rect)
	s.Recompute()
	s.View.BeginDrag(px, py)
	return rect
}

// Wheel 滚轮缩放，拖动中忽略
func (s *Session) Wheel(px, py, notches float64) {
	if s.View.Dragging() {
		return
	}
	s.View.Zoom(px, py, notches)
}

// Drag 中键拖动平移
func (s *Session) Drag(px, py float64) { s.View.Drag(px, py) }

// Release 结束拖动
func (s *Session) Release() { s.View.EndDrag() }

// ClearSelection 清除选中状态和选择区域
func (s *Session) ClearSelection() {
	s.Data.ClearSelection()
	s.Regions.Clear()
	s.Recompute()
}

// Draw 绘制一帧
func (s *Session) Draw(c render.Canvas) {
	s.Recompute()
	s.renderer.Frame(c, render.Frame{
		Snapshot: s.snapshot,
		Layout:   s.layout,
		Overlap:  s.overlap,
		Regions:  s.Regions.All(),
		Rules:    s.rules,
	})
}

// OverlapSummary 重叠文本报告
func (s *Session) OverlapSummary() string {
	s.Recompute()
	return s.overlap.Summary()
}

// OverlapIndices 重叠样本行号
func (s *Session) OverlapIndices() []int {
	s.Recompute()
	return append([]int(nil), s.overlap.Indices...)
}

// ReplotOverlaps 只保留重叠样本重新加载
func (s *Session) ReplotOverlaps() error {
	indices := s.OverlapIndices()
	if len(indices) == 0 {
		slog.Warn("没有重叠样本，忽略重绘")
		return ErrNoOverlaps
	}
	if err := s.Data.Filter(indices); err != nil {
		return err
	}
	s.Regions.Clear()
	s.Recompute()
	slog.Info("重绘重叠样本", "rows", len(indices))
	return nil
}

package draw

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
)

// FrameCache 可缓存的绘图指令
// 控件大小改变或被标记失效时重新录制，否则重用缓存的绘制指令
type FrameCache struct {
	// 缓存状态
	lastSize image.Point // 上次绘制时的控件大小
	dirty    bool        // 内容已改变
	records  int         // 录制次数
	cache    op.Ops      // 绘制指令缓存
	call     op.CallOp   // 缓存的绘制调用
}

// Invalidate 标记缓存失效，下一帧重新录制
func (fc *FrameCache) Invalidate() { fc.dirty = true }

// Records 录制次数
func (fc *FrameCache) Records() int { return fc.records }

// Draw 绘制缓存内容，必要时先调用 fn 重新录制
func (fc *FrameCache) Draw(gtx layout.Context, fn func(gtx layout.Context)) {
	size := gtx.Constraints.Max
	if fc.dirty || fc.records == 0 || size != fc.lastSize {
		fc.lastSize = size
		fc.dirty = false
		fc.cache.Reset() // 清空旧的缓存
		macro := op.Record(&fc.cache)
		rgtx := gtx
		rgtx.Ops = &fc.cache
		fn(rgtx)
		fc.call = macro.Stop()
		fc.records++
	}
	fc.call.Add(gtx.Ops)
}

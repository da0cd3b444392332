package app

import (
	"testing"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndplot"
	"ndplot/config"
	"ndplot/types"
)

func newPlot(t *testing.T) *PlotComponent {
	cfg := config.DefaultConfig()
	cfg.Mode = "PC"
	s, err := ndplot.New(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Load(&types.Table{
		AttributeNames: []string{"a", "b"},
		Rows: []types.TableRow{
			{Values: []float64{0, 0}, Class: "A"},
			{Values: []float64{1, 1}, Class: "B"},
		},
	}))
	return NewPlotComponent(s, nil)
}

func press(p *PlotComponent, pt types.Point, b pointer.Buttons) {
	x, y := p.Session.View.DataToScreen(pt)
	p.HandlePointerEvent(pointer.Event{Kind: pointer.Press, Buttons: b, Position: f32.Pt(float32(x), float32(y))})
}

func TestPrimaryClickSelects(t *testing.T) {
	p := newPlot(t)
	press(p, types.Pt(1, 1), pointer.ButtonPrimary)
	assert.Equal(t, []int{1}, p.Session.Data.SelectedIndices())
}

// TestTertiaryPans 中键按下进入平移，释放后结束
func TestTertiaryPans(t *testing.T) {
	p := newPlot(t)
	press(p, types.Pt(0, 0), pointer.ButtonTertiary)
	assert.Equal(t, ModePanning, p.mode)
	assert.Equal(t, []int{0}, p.Session.Data.SelectedIndices())

	before := p.Session.View.Get()
	p.HandlePointerEvent(pointer.Event{Kind: pointer.Drag, Position: f32.Pt(30, 40)})
	assert.NotEqual(t, before, p.Session.View.Get())

	p.HandlePointerEvent(pointer.Event{Kind: pointer.Release})
	assert.Equal(t, ModeNone, p.mode)
	assert.False(t, p.Session.View.Dragging())
}

func TestScrollZooms(t *testing.T) {
	p := newPlot(t)
	before := p.Session.View.Get()
	p.HandlePointerEvent(pointer.Event{Kind: pointer.Scroll, Scroll: f32.Pt(0, -1), Position: f32.Pt(10, 10)})
	assert.Less(t, p.Session.View.Width(), before.Width())
}

func TestSecondaryCorners(t *testing.T) {
	p := newPlot(t)
	press(p, types.Pt(-0.01, -0.01), pointer.ButtonSecondary)
	assert.Zero(t, p.Session.Data.SelectedCount())
	press(p, types.Pt(0.01, 0.01), pointer.ButtonSecondary)
	assert.Equal(t, []int{0}, p.Session.Data.SelectedIndices())
}

func TestHandleKey(t *testing.T) {
	p := newPlot(t)
	p.HandleKey(KeyDCC)
	assert.Equal(t, types.ModeDCC, p.Session.Mode())

	// 没有选中样本时删除被忽略
	p.HandleKey(KeyDelete)
	assert.Equal(t, 2, p.Session.Data.SampleCount())

	p.HandleKey(KeyLinear)
	press(p, types.Pt(0, 0), pointer.ButtonTertiary)
	p.HandlePointerEvent(pointer.Event{Kind: pointer.Release})
	p.HandleKey(KeyClone)
	assert.Equal(t, 3, p.Session.Data.SampleCount())

	p.HandleKey(KeySummary)
	assert.True(t, p.showSummary)
	p.HandleKey(KeyTrace)
	assert.True(t, p.Session.Snapshot().TraceMode)
	p.HandleKey(KeyClear)
	assert.Zero(t, p.Session.Data.SelectedCount())
}

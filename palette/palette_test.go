package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestColorsDeterministic 相同输入产生相同颜色，且颜色互不相同
func TestColorsDeterministic(t *testing.T) {
	names := []string{"setosa", "versicolor", "virginica"}
	a := Colors(3, names)
	b := Colors(3, names)
	require.Len(t, a, 3)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a[0], a[1])
	assert.NotEqual(t, a[1], a[2])
	for _, c := range a {
		assert.Equal(t, uint8(255), c.A)
	}
}

// TestColorsGreenRed 二分类特殊名称固定为绿/红
func TestColorsGreenRed(t *testing.T) {
	c := Colors(2, []string{"Benign", "MALIGNANT"})
	assert.Equal(t, []color.NRGBA{Green, Red}, c)

	c = Colors(2, []string{"positive", "negative"})
	assert.Equal(t, []color.NRGBA{Red, Green}, c)

	c = Colors(3, []string{"positive", "negative", "unsure"})
	assert.Equal(t, Red, c[0])
	assert.Equal(t, Green, c[1])
	assert.NotEqual(t, Red, c[2])
}

func TestColorsEmpty(t *testing.T) {
	assert.Nil(t, Colors(0, nil))
	assert.Len(t, Colors(2, nil), 2)
}

// TestShiftHue 旋转一整圈回到原色，透明度保留
func TestShiftHue(t *testing.T) {
	c := color.NRGBA{R: 200, G: 40, B: 40, A: 120}
	assert.Equal(t, c, ShiftHue(c, 0))
	s := ShiftHue(c, 0.5)
	assert.Equal(t, uint8(120), s.A)
	assert.NotEqual(t, c.R, s.R)
	back := ShiftHue(s, 0.5)
	assert.InDelta(t, int(c.R), int(back.R), 2)
	assert.InDelta(t, int(c.G), int(back.G), 2)
	assert.InDelta(t, int(c.B), int(back.B), 2)
}

// TestHues 色相均匀分布，首尾不重合
func TestHues(t *testing.T) {
	assert.Nil(t, Hues(0))
	h := Hues(4)
	require.Len(t, h, 4)
	for i := range h {
		for j := i + 1; j < len(h); j++ {
			assert.NotEqual(t, h[i], h[j])
		}
	}
}

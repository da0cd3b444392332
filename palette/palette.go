// Package palette 类别颜色分配
package palette

import (
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot/palette"
)

// 二分类医学/情感数据集的固定颜色
var (
	Green = color.NRGBA{R: 0, G: 170, B: 0, A: 255}
	Red   = color.NRGBA{R: 220, G: 0, B: 0, A: 255}
)

var greenNames = map[string]bool{"benign": true, "negative": true}
var redNames = map[string]bool{"malignant": true, "positive": true}

// Func 调色函数签名，作为依赖注入给数据集
type Func func(count int, names []string) []color.NRGBA

// Colors 为 count 个类别生成确定性颜色
// 若类别名包含 benign/malignant/positive/negative 则这些类别固定为绿/红，
// 其余类别使用均匀分布的色相
func Colors(count int, names []string) []color.NRGBA {
	if count <= 0 {
		return nil
	}
	colors := make([]color.NRGBA, count)
	fixed := make([]bool, count)
	rest := 0
	for i := 0; i < count; i++ {
		name := ""
		if i < len(names) {
			name = strings.ToLower(strings.TrimSpace(names[i]))
		}
		switch {
		case greenNames[name]:
			colors[i], fixed[i] = Green, true
		case redNames[name]:
			colors[i], fixed[i] = Red, true
		default:
			rest++
		}
	}
	if rest == 0 {
		return colors
	}
	generic := Hues(rest)
	j := 0
	for i := range colors {
		if !fixed[i] {
			colors[i] = generic[j]
			j++
		}
	}
	return colors
}

// Hues 均匀分布的 n 个色相
func Hues(n int) []color.NRGBA {
	if n <= 0 {
		return nil
	}
	end := float64(n-1) / float64(n)
	p := palette.Rainbow(n, 0, palette.Hue(end), 0.85, 0.9, 1).Colors()
	out := make([]color.NRGBA, len(p))
	for i, c := range p {
		out[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return out
}

// ShiftHue 色相旋转 amount 圈（1 为一整圈），保留透明度
func ShiftHue(c color.NRGBA, amount float64) color.NRGBA {
	if amount == 0 {
		return c
	}
	opaque := c
	opaque.A = 255
	h := palette.HSVAModel.Convert(opaque).(palette.HSVA)
	h.H = math.Mod(h.H+amount, 1)
	if h.H < 0 {
		h.H += 1
	}
	h.A = 1
	out := color.NRGBAModel.Convert(h).(color.NRGBA)
	out.A = c.A
	return out
}

// WithAlpha 替换透明度
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

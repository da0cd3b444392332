// Package config 运行配置，YAML 文件
package config

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"ndplot/clipping"
	"ndplot/render"
	"ndplot/types"
	"ndplot/viewport"
)

// 错误定义
var (
	ErrUnknownMode = errors.New("未知绘图模式")
	ErrBadColor    = errors.New("颜色格式错误")
)

// Window 窗口尺寸
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config 配置
type Config struct {
	Mode              string          `yaml:"mode"`
	Window            Window          `yaml:"window"`
	Background        string          `yaml:"background"`
	Axes              string          `yaml:"axes"`
	AttributeAlpha    uint8           `yaml:"attribute_alpha"`
	HighlightOverlaps bool            `yaml:"highlight_overlaps"`
	CurveSegments     int             `yaml:"curve_segments"`
	ZoomFactor        float64         `yaml:"zoom_factor"`
	PointSelect       clipping.Tuning `yaml:"point_select"`
	GrowEpsilon       float64         `yaml:"grow_epsilon"`
	LogLevel          string          `yaml:"log_level"`
	Watch             bool            `yaml:"watch"`
}

// DefaultConfig 默认配置
func DefaultConfig() Config {
	return Config{
		Mode:              "SCC",
		Window:            Window{Width: 1200, Height: 900},
		Background:        "#efefef",
		Axes:              "#000000",
		AttributeAlpha:    types.DefaultAlpha,
		HighlightOverlaps: true,
		CurveSegments:     11,
		ZoomFactor:        viewport.DefaultZoomFactor,
		PointSelect:       clipping.DefaultTuning(),
		GrowEpsilon:       clipping.DefaultGrowEpsilon,
		LogLevel:          "info",
	}
}

// Load 读取配置，path 为空或文件不存在时返回默认配置
// 文件中未出现的字段保持默认值
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Debug("配置文件不存在，使用默认配置", "path", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "读取配置 %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "解析配置 %s", path)
	}
	return cfg, cfg.Validate()
}

// Write 保存配置
func (c Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "创建配置目录")
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal 序列化为 YAML
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	return data, errors.Wrap(err, "序列化配置")
}

// Validate 检查模式和颜色
func (c Config) Validate() error {
	if _, err := c.PlotMode(); err != nil {
		return err
	}
	if _, err := ParseHex(c.Background); err != nil {
		return err
	}
	_, err := ParseHex(c.Axes)
	return err
}

// PlotMode 解析绘图模式
func (c Config) PlotMode() (types.PlotMode, error) {
	m, err := types.ParsePlotMode(c.Mode)
	if err != nil {
		return m, errors.Wrapf(ErrUnknownMode, "%q", c.Mode)
	}
	return m, nil
}

// Style 渲染参数
func (c Config) Style() render.Style {
	s := render.DefaultStyle()
	if bg, err := ParseHex(c.Background); err == nil {
		s.Background = bg
	}
	if ax, err := ParseHex(c.Axes); err == nil {
		s.Axes = ax
	}
	s.HighlightOverlaps = c.HighlightOverlaps
	if c.CurveSegments >= 2 {
		s.CurveSegments = c.CurveSegments
	}
	return s
}

// SlogLevel 日志级别
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// ParseHex 解析 #rrggbb 或 #rrggbbaa
func ParseHex(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 255}
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	var err error
	switch len(h) {
	case 6:
		_, err = fmt.Sscanf(h, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(h, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = errors.New("长度错误")
	}
	if err != nil {
		return c, errors.Wrapf(ErrBadColor, "%q: %v", s, err)
	}
	return c, nil
}

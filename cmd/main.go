package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gioui.org/app"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"ndplot"
	plotapp "ndplot/app"
	"ndplot/config"
	"ndplot/load"
	"ndplot/render/vgcanvas"
)

var (
	rootCmd = &cobra.Command{
		Use:               "ndplot",
		Short:             "多维数据的平行坐标与圆坐标可视化",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	viewCmd = &cobra.Command{
		Use:   "view [data.csv]",
		Short: "在窗口中交互查看数据",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}
	renderCmd = &cobra.Command{
		Use:   "render [data.csv]",
		Short: "将一帧输出为 PNG 或 SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	overlapsCmd = &cobra.Command{
		Use:   "overlaps [data.csv]",
		Short: "输出圆坐标下的类别重叠报告",
		Args:  cobra.ExactArgs(1),
		RunE:  runOverlaps,
	}
	configCmd = &cobra.Command{
		Use:   "config [path]",
		Short: "写出当前生效的配置",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfig,
	}

	configPath string
	modeFlag   string
	logLevel   string
	rulesPath  string
	watchFlag  bool
	outPath    string
	outWidth   int
	outHeight  int
	htmlPath   string
	replotPath string

	cfg config.Config
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "配置文件 (YAML)")
	pf.StringVarP(&modeFlag, "mode", "m", "", "绘图模式 PC/SCC/DCC")
	pf.StringVar(&logLevel, "log-level", "", "日志级别 debug/info/warn/error")
	pf.StringVar(&rulesPath, "rules", "", "规则区域文件 (YAML)")

	viewCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "数据文件改变时自动重新加载")

	renderCmd.Flags().StringVarP(&outPath, "out", "o", "plot.png", "输出文件，扩展名决定格式")
	renderCmd.Flags().IntVar(&outWidth, "width", 0, "输出宽度，默认取窗口宽度")
	renderCmd.Flags().IntVar(&outHeight, "height", 0, "输出高度，默认取窗口高度")

	overlapsCmd.Flags().StringVar(&htmlPath, "html", "", "输出各类别重叠图表 (HTML)")
	overlapsCmd.Flags().StringVar(&replotPath, "replot", "", "只保留重叠样本写出 CSV")

	rootCmd.AddCommand(viewCmd, renderCmd, overlapsCmd, configCmd)
}

// setup 读取配置，命令行参数优先，并设置日志级别
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if modeFlag != "" {
		c.Mode = modeFlag
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if watchFlag {
		c.Watch = true
	}
	if err := c.Validate(); err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.SlogLevel()})))
	cfg = c
	return nil
}

// openSession 创建会话并加载数据和规则
func openSession(path string) (*ndplot.Session, error) {
	s, err := ndplot.New(cfg)
	if err != nil {
		return nil, err
	}
	t, err := load.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := s.Load(t); err != nil {
		return nil, errors.Wrapf(err, "加载 %s", path)
	}
	if rulesPath != "" {
		rules, err := load.LoadRules(rulesPath, s.Data.ClassNames())
		if err != nil {
			return nil, err
		}
		s.SetRules(rules)
	}
	slog.Info("数据已加载", "path", path, "rows", s.Data.SampleCount(),
		"attributes", s.Data.AttributeCount(), "classes", s.Data.ClassCount(), "mode", s.Mode())
	return s, nil
}

func runView(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	a := plotapp.NewPlotApp(s, "ndplot - "+filepath.Base(args[0]), cfg.Window.Width, cfg.Window.Height)

	ctx, cancel := context.WithCancel(cmd.Context())
	if cfg.Watch {
		go func() {
			if err := load.Watch(ctx, args[0], load.DefaultDebounce, a.Reload); err != nil {
				slog.Error("文件监视退出", "error", err)
			}
		}()
	}
	go func() {
		a.Run()
		cancel()
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func runRender(_ *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	w, h := outWidth, outHeight
	if w <= 0 {
		w = cfg.Window.Width
	}
	if h <= 0 {
		h = cfg.Window.Height
	}
	s.View.Resize(float64(w), float64(h))
	c, err := vgcanvas.New(vgcanvas.FormatOf(outPath), float64(w), float64(h), s.View.Get())
	if err != nil {
		return err
	}
	s.Draw(c)
	if err := c.Save(outPath); err != nil {
		return err
	}
	slog.Info("已输出", "path", outPath, "width", w, "height", h)
	return nil
}

func runOverlaps(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), s.OverlapSummary())
	if htmlPath != "" {
		f, err := os.Create(htmlPath)
		if err != nil {
			return errors.Wrap(err, "创建图表文件")
		}
		if err := s.Overlap().WriteHTML(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return errors.Wrap(err, "关闭图表文件")
		}
	}
	if replotPath != "" {
		if err := s.ReplotOverlaps(); err != nil {
			return err
		}
		return load.SaveFile(replotPath, s.Data.Table())
	}
	return nil
}

func runConfig(_ *cobra.Command, args []string) error {
	return cfg.Write(args[0])
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

package load

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"ndplot/types"
)

// DefaultDebounce 文件连续写入的合并间隔
const DefaultDebounce = 200 * time.Millisecond

// Watch 监视数据文件，内容变化后重新读取并回调 fn
// 监视所在目录以兼容编辑器的替换写入；读取失败只记录日志
// 阻塞直到 ctx 取消
func Watch(ctx context.Context, path string, debounce time.Duration, fn func(*types.Table)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, "解析路径")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "创建文件监视")
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrapf(err, "监视 %s", filepath.Dir(abs))
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if name, _ := filepath.Abs(event.Name); name != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("文件监视错误", "error", err)
		case <-timer.C:
			t, err := LoadFile(abs)
			if err != nil {
				slog.Warn("重新加载失败", "path", abs, "error", err)
				continue
			}
			slog.Info("数据文件已更新", "path", abs, "rows", len(t.Rows))
			fn(t)
		}
	}
}

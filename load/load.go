// Package load 读取带类别标签的 CSV 表格
package load

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"ndplot/types"
)

// ClassColumn 类别列名（不区分大小写）
const ClassColumn = "class"

// 错误定义
var (
	ErrNoHeader      = errors.New("缺少表头")
	ErrNoClassColumn = errors.New("缺少 class 列")
)

// LoadString 从字符串加载表格
func LoadString(s string) (*types.Table, error) {
	return ReadCSV(strings.NewReader(s))
}

// LoadFile 从文件加载表格
func LoadFile(path string) (*types.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "打开数据文件")
	}
	defer f.Close()
	t, err := ReadCSV(f)
	return t, errors.Wrapf(err, "读取 %s", path)
}

// ReadCSV 读取 CSV：第一行为表头，class 列为类别，其余列为数值属性
// 属性按表头顺序排列，class 列不参与属性
func ReadCSV(r io.Reader) (*types.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, errors.Wrap(err, "读取表头")
	}
	classCol := -1
	t := &types.Table{}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if classCol < 0 && strings.EqualFold(h, ClassColumn) {
			classCol = i
			continue
		}
		t.AttributeNames = append(t.AttributeNames, h)
	}
	if classCol < 0 {
		return nil, errors.Wrapf(ErrNoClassColumn, "表头 %v", header)
	}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "第 %d 行", line)
		}
		row := types.TableRow{Values: make([]float64, 0, len(t.AttributeNames))}
		for i, field := range rec {
			field = strings.TrimSpace(field)
			if i == classCol {
				row.Class = field
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "第 %d 行第 %d 列", line, i+1)
			}
			row.Values = append(row.Values, v)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, t.Validate()
}

// WriteCSV 写出表格，class 列在最后
func WriteCSV(w io.Writer, t *types.Table) error {
	cw := csv.NewWriter(w)
	header := append(append([]string(nil), t.AttributeNames...), ClassColumn)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "写表头")
	}
	rec := make([]string, len(header))
	for _, r := range t.Rows {
		for i, v := range r.Values {
			rec[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		rec[len(rec)-1] = r.Class
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(err, "写数据行")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "写 CSV")
}

// SaveFile 写出表格到文件
func SaveFile(path string, t *types.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "创建数据文件")
	}
	if err := WriteCSV(f, t); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "关闭数据文件")
}

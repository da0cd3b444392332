package load

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"ndplot/types"
)

// ErrBadBox 规则矩形不是 4 个数
var ErrBadBox = errors.New("规则矩形需要 4 个坐标")

// ruleFile 规则文件中的一条规则
type ruleFile struct {
	Name  string      `yaml:"name"`
	Label string      `yaml:"label"`
	Boxes [][]float64 `yaml:"boxes"` // 每个矩形为 [x0, y0, x1, y1]
}

// ReadRules 读取 YAML 规则列表，标签后缀在此解析一次
func ReadRules(r io.Reader, classNames []string) ([]types.RuleRegion, error) {
	var raw []ruleFile
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "解析规则")
	}
	rules := make([]types.RuleRegion, 0, len(raw))
	for i, rf := range raw {
		boxes := make([]types.Rect, 0, len(rf.Boxes))
		for j, b := range rf.Boxes {
			if len(b) != 4 {
				return nil, errors.Wrapf(ErrBadBox, "规则 %d 矩形 %d", i, j)
			}
			boxes = append(boxes, types.NewRect(types.Pt(b[0], b[1]), types.Pt(b[2], b[3])))
		}
		rules = append(rules, types.ParseRuleLabel(rf.Name, rf.Label, classNames, boxes))
	}
	return rules, nil
}

// LoadRules 从文件读取规则
func LoadRules(path string, classNames []string) ([]types.RuleRegion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "打开规则文件")
	}
	defer f.Close()
	rules, err := ReadRules(f, classNames)
	return rules, errors.Wrapf(err, "读取 %s", path)
}

package types

import "strings"

// RuleKind 规则区域标记类型
type RuleKind int

const (
	RulePlain       RuleKind = iota // 普通区域
	RulePure                        // 纯类别区域，Class 有效
	RuleHighlighted                 // 高亮区域
)

const (
	pureSuffix        = "(pure)"
	highlightedSuffix = "(highlighted)"
)

// RuleRegion 外部规则挖掘得到的区域（只读）
type RuleRegion struct {
	Name  string   // 规则名称
	Label string   // 去掉后缀后的标签，可能为空
	Kind  RuleKind // 标记类型
	Class int      // Kind == RulePure 时的类别索引
	Boxes []Rect   // 区域矩形
}

// ParseRuleLabel 解析旧格式标签（"xxx (pure)" / "xxx(highlighted)"）
// 在接收规则时调用一次，绘制时不再检查字符串
func ParseRuleLabel(name, label string, classNames []string, boxes []Rect) RuleRegion {
	r := RuleRegion{Name: name, Label: label, Kind: RulePlain, Class: -1, Boxes: boxes}
	if strings.HasSuffix(label, highlightedSuffix) {
		r.Label = strings.TrimSpace(strings.TrimSuffix(label, highlightedSuffix))
		r.Kind = RuleHighlighted
		return r
	}
	if strings.HasSuffix(label, pureSuffix) {
		className := strings.TrimSpace(strings.TrimSuffix(label, pureSuffix))
		for i, n := range classNames {
			if n == className {
				r.Label = className
				r.Kind = RulePure
				r.Class = i
				return r
			}
		}
	}
	return r
}

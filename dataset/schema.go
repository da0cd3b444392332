package dataset

import (
	"github.com/pkg/errors"
)

func (d *Dataset) checkAttribute(i int) error {
	if i < 0 || i >= len(d.attributeNames) {
		return errors.Wrapf(ErrUnknownAttribute, "属性 %d (共 %d)", i, len(d.attributeNames))
	}
	return nil
}

func (d *Dataset) checkClass(i int) error {
	if i < 0 || i >= len(d.classNames) {
		return errors.Wrapf(ErrUnknownClass, "类别 %d (共 %d)", i, len(d.classNames))
	}
	return nil
}

// SetAttributeActive 设置属性是否参与透明度显示
func (d *Dataset) SetAttributeActive(attr int, active bool) error {
	if err := d.checkAttribute(attr); err != nil {
		return err
	}
	d.activeAttributes[attr] = active
	return nil
}

// SetAttributeInverted 设置属性是否反转显示 (1 - v)
func (d *Dataset) SetAttributeInverted(attr int, inverted bool) error {
	if err := d.checkAttribute(attr); err != nil {
		return err
	}
	if d.inversions[attr] != inverted {
		d.inversions[attr] = inverted
		d.version++
	}
	return nil
}

// ToggleInversion 切换属性反转
func (d *Dataset) ToggleInversion(attr int) error {
	if err := d.checkAttribute(attr); err != nil {
		return err
	}
	return d.SetAttributeInverted(attr, !d.inversions[attr])
}

// Inverted 属性是否反转
func (d *Dataset) Inverted(attr int) bool { return d.inversions[attr] }

// SetAxisShift 设置平行坐标轴的竖直偏移，限制在 [-1,1]
func (d *Dataset) SetAxisShift(attr int, shift float64) error {
	if err := d.checkAttribute(attr); err != nil {
		return err
	}
	d.shifts[attr] = clamp(shift, -1, 1)
	d.version++
	return nil
}

// AxisShift 属性竖直偏移
func (d *Dataset) AxisShift(attr int) float64 { return d.shifts[attr] }

// SetCoef 设置动态圆坐标的属性权重（百分比），限制在 [0,100]
func (d *Dataset) SetCoef(attr int, coef float64) error {
	if err := d.checkAttribute(attr); err != nil {
		return err
	}
	d.coefs[attr] = clamp(coef, 0, 100)
	d.version++
	return nil
}

// Coef 属性权重
func (d *Dataset) Coef(attr int) float64 { return d.coefs[attr] }

// SetAttributeAlpha 设置属性透明度
func (d *Dataset) SetAttributeAlpha(alpha uint8) { d.attributeAlpha = alpha }

// SetTraceMode 设置逐样本色相偏移
func (d *Dataset) SetTraceMode(on bool) { d.traceMode = on }

// SetAttributeOrder 设置属性显示顺序
func (d *Dataset) SetAttributeOrder(order []int) error {
	if !isPermutation(order, len(d.attributeNames)) {
		return errors.Wrapf(ErrBadPermutation, "属性顺序 %v", order)
	}
	d.attributeOrder = append([]int(nil), order...)
	d.version++
	return nil
}

// AttributeOrder 属性显示顺序
func (d *Dataset) AttributeOrder() []int { return append([]int(nil), d.attributeOrder...) }

// SwapAttributes 交换两个显示位置上的属性
// 各属性的开关、偏移和权重按属性索引存储，随属性一起移动
func (d *Dataset) SwapAttributes(from, to int) error {
	if err := d.checkAttribute(from); err != nil {
		return err
	}
	if err := d.checkAttribute(to); err != nil {
		return err
	}
	d.attributeOrder[from], d.attributeOrder[to] = d.attributeOrder[to], d.attributeOrder[from]
	d.version++
	return nil
}

// SetClassOrder 设置类别层叠顺序，order[0] 为最内环
func (d *Dataset) SetClassOrder(order []int) error {
	if !isPermutation(order, len(d.classNames)) {
		return errors.Wrapf(ErrBadPermutation, "类别顺序 %v", order)
	}
	d.classOrder = append([]int(nil), order...)
	d.version++
	return nil
}

// ClassOrder 类别层叠顺序
func (d *Dataset) ClassOrder() []int { return append([]int(nil), d.classOrder...) }

// SetClassActive 设置类别是否显示
func (d *Dataset) SetClassActive(class int, on bool) error {
	if err := d.checkClass(class); err != nil {
		return err
	}
	d.activeClasses[class] = on
	return nil
}

// SetClassMarkers 设置类别是否显示顶点标记
func (d *Dataset) SetClassMarkers(class int, on bool) error {
	if err := d.checkClass(class); err != nil {
		return err
	}
	d.activeMarkers[class] = on
	return nil
}

// SetClassSector 设置类别是否显示扇区
func (d *Dataset) SetClassSector(class int, on bool) error {
	if err := d.checkClass(class); err != nil {
		return err
	}
	d.activeSectors[class] = on
	return nil
}

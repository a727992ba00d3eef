package calculator

import "fmt"

// Field 保存电场 Ex 和磁场 Hy。
// electric 位于整数网格点 0..N-1，magnetic 位于相邻电场点之间的半网格点，长度恒为 N-1。
type Field struct {
	electric []float64
	magnetic []float64
}

// NewField 分配全零的场，n 至少为 2
func NewField(n int) (*Field, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d, want >= 2", ErrLengthMismatch, n)
	}
	return &Field{
		electric: make([]float64, n),
		magnetic: make([]float64, n-1),
	}, nil
}

// NewFieldFrom 使用已有的数组构建场，不拷贝
func NewFieldFrom(electric, magnetic []float64) (*Field, error) {
	if len(electric) < 2 || len(magnetic) != len(electric)-1 {
		return nil, fmt.Errorf("%w: len(electric)=%d, len(magnetic)=%d",
			ErrLengthMismatch, len(electric), len(magnetic))
	}
	return &Field{electric: electric, magnetic: magnetic}, nil
}

// 只读，调用方不得修改
func (f *Field) Electric() []float64 { return f.electric }
func (f *Field) Magnetic() []float64 { return f.magnetic }

func (f *Field) Len() int { return len(f.electric) }

// Step 推进一个时间步
func (f *Field) Step(p Parameter) {
	Update(f.electric, f.magnetic, p.ECoef, p.HCoef)
}

// Update 执行一次蛙跳格式更新，原地修改，顺序不能变：
//  1. 用上一步的 H 更新内部的 E
//  2. 两端 E 置 0（理想导体边界）
//  3. 用新的 E 更新 H
func Update(ex, hy []float64, eCoef, hCoef float64) {
	n := len(ex)
	hy = hy[:n-1]
	for i := 1; i < n-1; i++ {
		ex[i] += eCoef * (hy[i] - hy[i-1])
	}

	ex[0] = 0
	ex[n-1] = 0

	for i := 0; i < n-1; i++ {
		hy[i] += hCoef * (ex[i+1] - ex[i])
	}
}

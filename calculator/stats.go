package calculator

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"fdtd/model"
)

// 场的统计量，在写快照时计算
type Stats struct {
	Step   int
	MaxE   float64 // max |E|
	MaxH   float64 // max |H|
	Energy float64 // 单位面积电磁能 Σ (ε0 E² + μ0 H²) dz / 2
}

func Measure(step int, f *Field, dz float64) Stats {
	e, h := f.Electric(), f.Magnetic()
	return Stats{
		Step:   step,
		MaxE:   floats.Norm(e, math.Inf(1)),
		MaxH:   floats.Norm(h, math.Inf(1)),
		Energy: (model.Epsilon0*floats.Dot(e, e) + model.Mu0*floats.Dot(h, h)) * dz / 2,
	}
}

// Finite 判断场是否已经发散
func (s Stats) Finite() bool {
	return !math.IsInf(s.MaxE, 0) && !math.IsInf(s.MaxH, 0) &&
		!math.IsNaN(s.MaxE) && !math.IsNaN(s.MaxH) && !math.IsNaN(s.Energy)
}

// 检查数组中是否存在 NaN
func hasNaN(f *Field) bool {
	return floats.HasNaN(f.Electric()) || floats.HasNaN(f.Magnetic())
}

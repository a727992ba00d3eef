package calculator

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"fdtd/model"
)

// 计算参数，初始化之后不再修改
type Parameter struct {
	Steps int     // 总迭代步数
	Dt    float64 // 时间步长，dt = CFL * dz / c
	DZ    float64
	ECoef float64 // dt / (ε0 * dz)
	HCoef float64 // dt / (μ0 * dz)
}

// NewParameter 由网格配置推导时间步长和更新系数，不做校验。
// CFL >= 1 时得到的系数会使场值发散。
func NewParameter(g model.GridConfig) Parameter {
	dt := g.CFL * g.DZ / model.C
	return Parameter{
		Steps: int(math.Round(float64(g.N) * g.L)),
		Dt:    dt,
		DZ:    g.DZ,
		ECoef: dt / (model.Epsilon0 * g.DZ),
		HCoef: dt / (model.Mu0 * g.DZ),
	}
}

// 初始化计算参数和场
// 电场为以网格中点为中心、峰值为 1 的高斯脉冲，磁场全为 0
func initialize(g model.GridConfig) (Parameter, *Field, error) {
	if err := g.Validate(); err != nil {
		return Parameter{}, nil, err
	}
	p := NewParameter(g)
	f, err := NewFieldFrom(Gaussian(g.N, float64(g.N)/2, g.Sigma), make([]float64, g.N-1))
	if err != nil {
		return Parameter{}, nil, fmt.Errorf("initialize field: %w", err)
	}
	log.WithFields(log.Fields{
		"N":     g.N,
		"steps": p.Steps,
		"dt":    p.Dt,
		"eCoef": p.ECoef,
		"hCoef": p.HCoef,
	}).Info("初始化计算参数")
	return p, f, nil
}

// Gaussian 在 [0, n) 的整数位置上采样 exp(-(x-mean)^2 / (2σ^2))
func Gaussian(n int, mean, sigma float64) []float64 {
	k := -1 / (2 * sigma * sigma)
	arr := make([]float64, n)
	for i := range arr {
		d := float64(i) - mean
		arr[i] = math.Exp(d * d * k)
	}
	return arr
}

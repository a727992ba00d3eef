package calculator

import (
	"errors"
	"math"
	"testing"

	"fdtd/model"
)

func TestGaussian(t *testing.T) {
	e := Gaussian(5, 2.5, 1.0)
	if len(e) != 5 {
		t.Fatalf("len = %d", len(e))
	}
	// 离中心最近的两个点幅值最大且相等
	if e[2] != e[3] {
		t.Errorf("e[2]=%v e[3]=%v, want equal", e[2], e[3])
	}
	for _, i := range []int{0, 1, 4} {
		if e[i] >= e[2] {
			t.Errorf("e[%d]=%v not below center value %v", i, e[i], e[2])
		}
	}
	// 两端最小，e[0] 离中心更远
	for _, i := range []int{1, 2, 3} {
		if e[0] >= e[i] || e[4] > e[i] {
			t.Errorf("edges e[0]=%v e[4]=%v not smallest against e[%d]=%v", e[0], e[4], i, e[i])
		}
	}
	if want := math.Exp(-0.125); math.Abs(e[2]-want) > 1e-15 {
		t.Errorf("e[2] = %v, want %v", e[2], want)
	}
}

func TestGaussianPeak(t *testing.T) {
	e := Gaussian(10, 5, 2)
	if e[5] != 1 {
		t.Errorf("peak = %v, want 1", e[5])
	}
}

func TestNewParameter(t *testing.T) {
	g := model.GridConfig{N: 100, L: 1.5, DZ: 0.5, Sigma: 10, CFL: 0.99}
	p := NewParameter(g)
	if p.Steps != 150 {
		t.Errorf("steps = %d, want 150", p.Steps)
	}
	// 与 NewParameter 一样按 float64 计算，常量表达式是精确计算的
	cfl, dz := 0.99, 0.5
	dt := cfl * dz / model.C
	if math.Abs(p.Dt-dt) > 1e-15*dt {
		t.Errorf("dt = %v, want %v", p.Dt, dt)
	}
	// e_coef * h_coef = CFL^2
	if got := p.ECoef * p.HCoef; math.Abs(got-0.99*0.99) > 1e-9 {
		t.Errorf("eCoef*hCoef = %v, want %v", got, 0.99*0.99)
	}
}

func TestNewParameterRoundsSteps(t *testing.T) {
	p := NewParameter(model.GridConfig{N: 10, L: 0.26, DZ: 1, Sigma: 1, CFL: 0.5})
	if p.Steps != 3 {
		t.Errorf("steps = %d, want 3", p.Steps)
	}
}

func TestInitialize(t *testing.T) {
	g := model.GridConfig{N: 10, L: 1, DZ: 0.5, Sigma: 2, CFL: 0.99}
	p, f, err := initialize(g)
	if err != nil {
		t.Fatal(err)
	}
	if p.Steps != 10 {
		t.Errorf("steps = %d", p.Steps)
	}
	if len(f.Electric()) != 10 || len(f.Magnetic()) != 9 {
		t.Fatalf("lengths = %d, %d", len(f.Electric()), len(f.Magnetic()))
	}
	for i, v := range f.Magnetic() {
		if v != 0 {
			t.Errorf("magnetic[%d] = %v, want 0", i, v)
		}
	}
	if f.Electric()[5] != 1 {
		t.Errorf("electric peak = %v", f.Electric()[5])
	}
}

func TestInitializeRejectsInvalidGrid(t *testing.T) {
	for _, g := range []model.GridConfig{
		{N: 1, L: 1, DZ: 0.5, Sigma: 2, CFL: 0.5},
		{N: 10, L: 1, DZ: 0.5, Sigma: 0, CFL: 0.5},
		{N: 10, L: 1, DZ: 0.5, Sigma: 2, CFL: 0},
		{N: 10, L: 1, DZ: 0.5, Sigma: 2, CFL: 1},
	} {
		if _, _, err := initialize(g); !errors.Is(err, model.ErrInvalidConfig) {
			t.Errorf("%+v: err = %v, want ErrInvalidConfig", g, err)
		}
	}
}

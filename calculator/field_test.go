package calculator

import (
	"errors"
	"testing"
)

func TestUpdateSingleStep(t *testing.T) {
	ex := []float64{0, 1, 0, 0}
	hy := []float64{0, 0, 0}
	Update(ex, hy, 0.5, 0.5)

	wantE := []float64{0, 1, 0, 0}
	for i := range wantE {
		if ex[i] != wantE[i] {
			t.Errorf("electric[%d] = %v, want %v", i, ex[i], wantE[i])
		}
	}
	// H[i] += 0.5 * (E[i+1] - E[i])
	wantH := []float64{0.5, -0.5, 0}
	for i := range wantH {
		if hy[i] != wantH[i] {
			t.Errorf("magnetic[%d] = %v, want %v", i, hy[i], wantH[i])
		}
	}
}

func TestUpdateUsesPreviousMagnetic(t *testing.T) {
	ex := []float64{0, 0, 0, 0}
	hy := []float64{0, 1, 0}
	Update(ex, hy, 1, 1)

	// E 先用旧的 H 更新：E[1] += H[1]-H[0] = 1，E[2] += H[2]-H[1] = -1
	if ex[1] != 1 || ex[2] != -1 {
		t.Fatalf("electric = %v", ex)
	}
	// 然后 H 用新的 E 更新
	want := []float64{1, 1 - 2, 1}
	for i := range want {
		if hy[i] != want[i] {
			t.Errorf("magnetic[%d] = %v, want %v", i, hy[i], want[i])
		}
	}
}

func TestUpdateClampsBoundaries(t *testing.T) {
	ex := []float64{3, 1, 2, 5}
	hy := []float64{1, 2, 3}
	Update(ex, hy, 0.1, 0.1)
	if ex[0] != 0 || ex[3] != 0 {
		t.Errorf("boundaries = %v, %v", ex[0], ex[3])
	}
}

func TestNewFieldFrom(t *testing.T) {
	if _, err := NewFieldFrom(make([]float64, 4), make([]float64, 3)); err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct{ e, h int }{{4, 4}, {4, 2}, {1, 0}, {0, 0}} {
		_, err := NewFieldFrom(make([]float64, tc.e), make([]float64, tc.h))
		if !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("lengths %d/%d: err = %v", tc.e, tc.h, err)
		}
	}
}

func TestNewField(t *testing.T) {
	f, err := NewField(7)
	if err != nil {
		t.Fatal(err)
	}
	if f.Len() != 7 || len(f.Magnetic()) != 6 {
		t.Errorf("lengths = %d, %d", f.Len(), len(f.Magnetic()))
	}
	for _, n := range []int{1, 0, -3} {
		if f, err := NewField(n); !errors.Is(err, ErrLengthMismatch) || f != nil {
			t.Errorf("NewField(%d) = %v, %v, want ErrLengthMismatch", n, f, err)
		}
	}
}

package tensor

import (
	"math/rand"
	"testing"
)

func TestFromSlice(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	tt, err := FromSlice(data, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if !tt.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape: expected [2 3], got %v", tt.Shape())
	}
	if tt.At(1, 2) != 6 {
		t.Errorf("At(1,2): expected 6, got %v", tt.At(1, 2))
	}

	// The slice is copied, not shared.
	data[0] = 100
	if tt.At(0, 0) != 1 {
		t.Errorf("FromSlice should copy data, got %v", tt.At(0, 0))
	}
}

func TestFromSliceShapeMismatch(t *testing.T) {
	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2})
	if err == nil {
		t.Fatal("expected error for mismatched element count")
	}
}

func TestAtSet(t *testing.T) {
	tt := Zeros[float32](Shape{2, 3, 4})
	tt.Set(3.5, 1, 2, 3)
	if tt.At(1, 2, 3) != 3.5 {
		t.Errorf("expected 3.5, got %v", tt.At(1, 2, 3))
	}
	if tt.At(0, 0, 0) != 0 {
		t.Errorf("expected 0, got %v", tt.At(0, 0, 0))
	}
}

func TestAtOutOfBounds(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for out-of-bounds index")
		}
	}()
	tt := Zeros[float32](Shape{2, 2})
	tt.At(2, 0)
}

func TestClone(t *testing.T) {
	a := Ones[float32](Shape{2, 2})
	b := a.Clone()
	b.Set(5, 0, 0)
	if a.At(0, 0) != 1 {
		t.Errorf("Clone must not share data: got %v", a.At(0, 0))
	}
}

func TestReshapeSharesData(t *testing.T) {
	a := Zeros[float32](Shape{2, 3})
	b := a.Reshape(1, 1, 2, 3)
	b.Set(7, 0, 0, 1, 2)
	if a.At(1, 2) != 7 {
		t.Errorf("Reshape should share data, got %v", a.At(1, 2))
	}
}

func TestReshapeElementCountMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for element count mismatch")
		}
	}()
	Zeros[float32](Shape{2, 3}).Reshape(4, 2)
}

func TestEqual(t *testing.T) {
	a := Full[float32](Shape{2, 2}, 3)
	b := Full[float32](Shape{2, 2}, 3)
	if !a.Equal(b) {
		t.Error("identical tensors should be Equal")
	}
	b.Set(3.0001, 1, 1)
	if a.Equal(b) {
		t.Error("differing tensors should not be Equal")
	}
	if a.Equal(Full[float32](Shape{4}, 3)) {
		t.Error("differing shapes should not be Equal")
	}
}

func TestAllClose(t *testing.T) {
	a := Full[float32](Shape{3}, 1)
	b := Full[float32](Shape{3}, 1.00005)
	if !a.AllClose(b, 1e-4, 1e-4) {
		t.Error("expected AllClose within tolerance")
	}
	c := Full[float32](Shape{3}, 1.1)
	if a.AllClose(c, 1e-4, 1e-4) {
		t.Error("expected AllClose to fail outside tolerance")
	}
}

func TestRandReproducible(t *testing.T) {
	a := Rand[float32](Shape{4, 4}, rand.New(rand.NewSource(42)))
	b := Rand[float32](Shape{4, 4}, rand.New(rand.NewSource(42)))
	if !a.Equal(b) {
		t.Error("same seed must produce identical tensors")
	}
	for _, v := range a.Data() {
		if v < 0 || v >= 1 {
			t.Errorf("Rand value %v outside [0, 1)", v)
		}
	}
}

func TestEyeBatch(t *testing.T) {
	e := EyeBatch[float32](2, 3)
	if !e.Shape().Equal(Shape{2, 3, 3}) {
		t.Fatalf("shape: got %v", e.Shape())
	}
	for b := 0; b < 2; b++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := float32(0)
				if i == j {
					want = 1
				}
				if e.At(b, i, j) != want {
					t.Errorf("EyeBatch[%d,%d,%d]: expected %v, got %v", b, i, j, want, e.At(b, i, j))
				}
			}
		}
	}
}

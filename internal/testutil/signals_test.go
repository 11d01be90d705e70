package testutil

import (
	"math"
	"testing"
)

func TestUniformGridDeterministic(t *testing.T) {
	a := UniformGrid(42, 1.0, 8, 8)
	b := UniformGrid(42, 1.0, 8, 8)
	c := UniformGrid(43, 1.0, 8, 8)

	same := true
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a.Data[i] != c.Data[i] {
			same = false
		}
		if math.Abs(a.Data[i]) > 1 {
			t.Fatalf("index %d: %v out of range", i, a.Data[i])
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestNormalGridMoments(t *testing.T) {
	g := NormalGrid(7, 2.0, 200, 200)

	mean, sq := 0.0, 0.0
	for _, v := range g.Data {
		mean += v
		sq += v * v
	}
	mean /= float64(g.Len())
	std := math.Sqrt(sq/float64(g.Len()) - mean*mean)

	if math.Abs(mean) > 0.05 {
		t.Fatalf("mean = %v, want ~0", mean)
	}
	if math.Abs(std-2) > 0.05 {
		t.Fatalf("std = %v, want ~2", std)
	}
}

func TestImpulseAndConstant(t *testing.T) {
	g := ImpulseGrid([]int{3, 3}, 1, 2)
	if g.At(1, 2) != 1 || Dot(g.Data, g.Data) != 1 {
		t.Fatalf("unexpected impulse %v", g.Data)
	}

	c := ConstantGrid(2.5, 4)
	for i, v := range c.Data {
		if v != 2.5 {
			t.Fatalf("c[%d] = %v", i, v)
		}
	}

	a := Affine(c, 2, 1)
	if a.Data[0] != 6 || c.Data[0] != 2.5 {
		t.Fatalf("Affine = %v, source %v", a.Data[0], c.Data[0])
	}
}

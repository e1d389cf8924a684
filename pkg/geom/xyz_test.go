package geom

import (
	"math"
	"testing"
)

func TestArithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, 5, 6)

	if got := a.Add(b); got != New(5, 7, 9) {
		t.Errorf("Add = %v, want (5, 7, 9)", got)
	}
	if got := b.Sub(a); got != New(3, 3, 3) {
		t.Errorf("Sub = %v, want (3, 3, 3)", got)
	}
	if got := a.Scale(2); got != New(2, 4, 6) {
		t.Errorf("Scale = %v, want (2, 4, 6)", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	if got := XAxis.Cross(YAxis); got != ZAxis {
		t.Errorf("Cross = %v, want %v", got, ZAxis)
	}
}

func TestLengthAndNormalize(t *testing.T) {
	v := New(3, 4, 0)
	if v.Length() != 5 {
		t.Errorf("Length = %v, want 5", v.Length())
	}
	if got := v.Normalize(); math.Abs(got.X-0.6) > 1e-12 || math.Abs(got.Y-0.8) > 1e-12 || got.Z != 0 {
		t.Errorf("Normalize = %v", got)
	}
	if got := Zero.Normalize(); got != Zero {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
	if d := New(0, 0, 0).Distance(New(0, 0, 2)); d != 2 {
		t.Errorf("Distance = %v, want 2", d)
	}
}

func TestEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b XYZ
		want bool
	}{
		{"same", New(1, 2, 3), New(1, 2, 3), true},
		{"different", New(1, 2, 3), New(1, 2, 4), false},
		{"nan", New(math.NaN(), 0, 0), New(math.NaN(), 0, 0), false},
		{"negative zero", New(0, 0, 0), New(math.Copysign(0, -1), 0, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !New(1, 2, 3).IsFinite() {
		t.Error("finite point reported non-finite")
	}
	if New(math.Inf(1), 0, 0).IsFinite() {
		t.Error("infinite point reported finite")
	}
	if New(0, math.NaN(), 0).IsFinite() {
		t.Error("NaN point reported finite")
	}
}

func TestArrayRoundTrip(t *testing.T) {
	p := New(1.5, -2, 1e-9)
	if got := FromArray(p.Array()); got != p {
		t.Errorf("FromArray(Array()) = %v, want %v", got, p)
	}
	if s := New(0, 2, 4.5).String(); s != "(0, 2, 4.5)" {
		t.Errorf("String = %q", s)
	}
}

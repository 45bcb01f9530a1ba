package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, tt.got, approx); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}

	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: expected 12, got %f", got)
	}
}

func TestVec3_NormalizeIsUnitLength(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := NewVec3(random.NormFloat64()*100, random.NormFloat64()*100, random.NormFloat64()*100)
		if v.LengthSquared() == 0 {
			continue
		}
		length := v.Normalize().Length()
		if math.Abs(length-1) > 1e-9 {
			t.Fatalf("Normalize(%v) has length %v", v, length)
		}
	}

	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Expected zero vector to stay zero, got %v", got)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-7, 0).NearZero() {
		t.Error("Expected vector with one large component not to be near zero")
	}
}

func TestReflect_Involution(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(3)))
	for i := 0; i < 200; i++ {
		n := RandomUnitVector(sampler)
		d := RandomInUnitSphere(sampler).Multiply(10)
		back := Reflect(Reflect(d, n), n)
		if diff := cmp.Diff(d, back, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Fatalf("reflect(reflect(d, n), n) != d (-want +got):\n%s", diff)
		}
	}
}

func TestReflect_FlipsNormalComponent(t *testing.T) {
	d := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	if diff := cmp.Diff(NewVec3(1, 1, 0), Reflect(d, n), approx); diff != "" {
		t.Errorf("Reflect mismatch (-want +got):\n%s", diff)
	}
}

func TestRefract_UnitRatioIsIdentity(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(11)))
	n := NewVec3(0, 1, 0)
	for i := 0; i < 200; i++ {
		d := RandomUnitVector(sampler)
		if d.Dot(n) > 0 {
			d = Reflect(d, n)
		}
		got := Refract(d, n, 1.0)
		if diff := cmp.Diff(d, got, cmpopts.EquateApprox(0, 1e-7)); diff != "" {
			t.Fatalf("Refract(d, n, 1) != d (-want +got):\n%s", diff)
		}
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	// 45 degree incidence from air into glass
	eta := 1.0 / 1.5
	d := NewVec3(1, -1, 0).Normalize()
	n := NewVec3(0, 1, 0)
	refracted := Refract(d, n, eta)

	sinIn := math.Sqrt(0.5)
	sinOut := math.Abs(refracted.Normalize().X)
	if math.Abs(sinOut-eta*sinIn) > 1e-9 {
		t.Errorf("Snell's law violated: sinOut=%f, want %f", sinOut, eta*sinIn)
	}
	if math.Abs(refracted.Length()-1) > 1e-9 {
		t.Errorf("Expected refracted direction to stay unit length, got %f", refracted.Length())
	}
}

func TestRandomUnitVector_Length(t *testing.T) {
	r := NewRandFromSeed(99)
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(r)
		if l := v.Length(); l < 1-1e-9 || l > 1+1e-9 {
			t.Fatalf("Expected unit vector, got length %v", l)
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	r := NewRandFromSeed(5)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(r)
		if p.Z != 0 || p.LengthSquared() > 1 {
			t.Fatalf("Point %v is outside the unit disk", p)
		}
	}
}

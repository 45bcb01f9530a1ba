package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestNewBox_CornerOrder(t *testing.T) {
	a := core.NewVec3(1, -1, 4)
	b := core.NewVec3(-2, 3, 2)

	box, err := NewBox(a, b, testMaterial)
	if err != nil {
		t.Fatalf("NewBox: %v", err)
	}
	if box.Min != core.NewVec3(-2, -1, 2) || box.Max != core.NewVec3(1, 3, 4) {
		t.Errorf("Expected corners (-2,-1,2)-(1,3,4), got %v-%v", box.Min, box.Max)
	}

	expected := core.NewAABBFromCorners(a, b)
	if bbox := box.BoundingBox(); bbox != expected {
		t.Errorf("Expected bounding box %v, got %v", expected, bbox)
	}
}

func TestNewBox_Flat(t *testing.T) {
	_, err := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 1), testMaterial)
	if !errors.Is(err, core.ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry for a flat box, got %v", err)
	}
}

func TestBox_ComponentsFaceOutward(t *testing.T) {
	box, err := NewBox(core.NewVec3(-1, -2, -3), core.NewVec3(1, 2, 3), testMaterial)
	if err != nil {
		t.Fatalf("NewBox: %v", err)
	}

	faces := box.Components()
	if len(faces) != 6 {
		t.Fatalf("Expected 6 faces, got %d", len(faces))
	}

	seen := make(map[core.Vec3]bool)
	for _, f := range faces {
		face, ok := f.(*Parallelogram)
		if !ok {
			t.Fatalf("Expected parallelogram faces, got %T", f)
		}
		faceCenter := face.Q.Add(face.U.Multiply(0.5)).Add(face.V.Multiply(0.5))
		if faceCenter.Dot(face.Normal) <= 0 {
			t.Errorf("Face at %v has inward normal %v", faceCenter, face.Normal)
		}
		seen[face.Normal] = true
	}
	if len(seen) != 6 {
		t.Errorf("Expected 6 distinct face normals, got %v", seen)
	}
}

func TestBox_Hit(t *testing.T) {
	box, err := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testMaterial)
	if err != nil {
		t.Fatalf("NewBox: %v", err)
	}

	tests := []struct {
		name           string
		ray            core.Ray
		expectHit      bool
		expectedT      float64
		expectedNormal core.Vec3
		expectedFront  bool
	}{
		{
			name:           "front face from outside",
			ray:            core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)),
			expectHit:      true,
			expectedT:      4,
			expectedNormal: core.NewVec3(0, 0, 1),
			expectedFront:  true,
		},
		{
			name:           "left face from outside",
			ray:            core.NewRay(core.NewVec3(-3, 0.5, 0.5), core.NewVec3(1, 0, 0)),
			expectHit:      true,
			expectedT:      2,
			expectedNormal: core.NewVec3(-1, 0, 0),
			expectedFront:  true,
		},
		{
			name:           "right face from inside",
			ray:            core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
			expectHit:      true,
			expectedT:      1,
			expectedNormal: core.NewVec3(-1, 0, 0),
			expectedFront:  false,
		},
		{
			name:      "miss above",
			ray:       core.NewRay(core.NewVec3(0, 3, 5), core.NewVec3(0, 0, -1)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Hit(tt.ray, forward)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if !vecClose(hit.Normal, tt.expectedNormal, 1e-12) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %v, got %v", tt.expectedFront, hit.FrontFace)
			}
		})
	}
}

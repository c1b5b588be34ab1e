package game

import (
	"math"
	"testing"
)

func TestBoxBoundsAndContains(t *testing.T) {
	b := Box{Center: Vec3{X: 5, Y: 2, Z: -3}, Size: Vec3{X: 4, Y: 4, Z: 2}}
	min, max := b.Bounds()
	if min != (Vec3{X: 3, Y: 0, Z: -4}) || max != (Vec3{X: 7, Y: 4, Z: -2}) {
		t.Fatalf("unexpected bounds: min=%v max=%v", min, max)
	}

	if !b.ContainsPoint(Vec3{X: 5, Y: 2, Z: -3}) {
		t.Error("center should be inside")
	}
	if !b.ContainsPoint(Vec3{X: 7, Y: 4, Z: -2}) {
		t.Error("corner is boundary inclusive")
	}
	if b.ContainsPoint(Vec3{X: 7.01, Y: 2, Z: -3}) {
		t.Error("point past the face should be outside")
	}
}

func TestBoxDistanceToPoint(t *testing.T) {
	b := Box{Center: Vec3{Y: 1}, Size: Vec3{X: 2, Y: 2, Z: 2}}

	if d := b.DistanceToPoint(Vec3{X: 3, Y: 1, Z: 0}); math.Abs(d-2.0) > 1e-9 {
		t.Errorf("expected distance 2 from face, got %g", d)
	}
	if d := b.DistanceToPoint(Vec3{X: 0.5, Y: 1, Z: 0}); d >= 0 {
		t.Errorf("inside point should give negative distance, got %g", d)
	}
	if d := b.DistanceToPoint(Vec3{X: 1, Y: 1, Z: 0}); d != 0 {
		t.Errorf("boundary point should give zero distance, got %g", d)
	}
}

func TestBoxIntersectsSphere(t *testing.T) {
	b := Box{Center: Vec3{Y: 1}, Size: Vec3{X: 2, Y: 2, Z: 2}}

	if !b.IntersectsSphere(Vec3{X: 1.4, Y: 1, Z: 0}, 0.5) {
		t.Error("sphere overlapping the face should intersect")
	}
	if b.IntersectsSphere(Vec3{X: 2.0, Y: 1, Z: 0}, 0.5) {
		t.Error("sphere half a meter clear of the face should not intersect")
	}
	// Touching exactly counts as intersecting.
	if !b.IntersectsSphere(Vec3{X: 1.5, Y: 1, Z: 0}, 0.5) {
		t.Error("tangent sphere should intersect")
	}
}

func TestHorizontalOverlap(t *testing.T) {
	a := Box{Center: Vec3{}, Size: Vec3{X: 2, Y: 2, Z: 2}}

	separated := Box{Center: Vec3{X: 5}, Size: Vec3{X: 2, Y: 2, Z: 2}}
	if o := horizontalOverlap(a, separated, 1.0); o != 0 {
		t.Errorf("separated boxes should not overlap, got %g", o)
	}

	touching := Box{Center: Vec3{X: 2.5}, Size: Vec3{X: 2, Y: 2, Z: 2}}
	if o := horizontalOverlap(a, touching, 1.0); o <= 0 {
		t.Errorf("boxes inside the margin should report overlap, got %g", o)
	}

	overlapping := Box{Center: Vec3{X: 1}, Size: Vec3{X: 2, Y: 2, Z: 2}}
	if o := horizontalOverlap(a, overlapping, 0); math.Abs(o-1.0) > 1e-9 {
		t.Errorf("expected 1m penetration, got %g", o)
	}
}

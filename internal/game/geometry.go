package game

// Box is an axis-aligned obstacle sitting on the arena floor. It is defined
// by its center and full size and is immutable once the Environment that
// owns it has been built.
type Box struct {
	Center Vec3
	Size   Vec3
}

func (b Box) halfSize() Vec3 { return b.Size.Scale(0.5) }

// Bounds returns the min and max corners of the box.
func (b Box) Bounds() (Vec3, Vec3) {
	h := b.halfSize()
	return b.Center.Sub(h), b.Center.Add(h)
}

// ContainsPoint reports whether p lies inside the box, boundary inclusive.
func (b Box) ContainsPoint(p Vec3) bool {
	min, max := b.Bounds()
	return p.X >= min.X && p.X <= max.X &&
		p.Y >= min.Y && p.Y <= max.Y &&
		p.Z >= min.Z && p.Z <= max.Z
}

// DistanceToPoint is the distance from p to the box surface, negative when p
// is inside the box.
func (b Box) DistanceToPoint(p Vec3) float64 {
	min, max := b.Bounds()
	closest := Vec3{
		X: Clamp(p.X, min.X, max.X),
		Y: Clamp(p.Y, min.Y, max.Y),
		Z: Clamp(p.Z, min.Z, max.Z),
	}
	d := p.Sub(closest).Len()
	if b.ContainsPoint(p) {
		return -d
	}
	return d
}

// IntersectsSphere reports whether a sphere at center with the given radius
// touches the box. A sphere exactly on the surface counts as intersecting.
func (b Box) IntersectsSphere(center Vec3, radius float64) bool {
	return b.DistanceToPoint(center) <= radius
}

// horizontalOverlap returns the penetration depth of the X/Z footprints of a
// and b, with b expanded by margin on every side. Zero means the boxes keep
// at least margin of clearance on some horizontal axis.
func horizontalOverlap(a, b Box, margin float64) float64 {
	aMin, aMax := a.Bounds()
	bMin, bMax := b.Bounds()
	ox := minf(aMax.X, bMax.X+margin) - maxf(aMin.X, bMin.X-margin)
	oz := minf(aMax.Z, bMax.Z+margin) - maxf(aMin.Z, bMin.Z-margin)
	if ox <= 0 || oz <= 0 {
		return 0
	}
	return minf(ox, oz)
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

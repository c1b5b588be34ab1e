package game

import (
	"math"
	"math/rand"
)

// Spawn formation presets. These produce the initial drone layout before a
// session starts; the AI takes over from wherever the formation put them.
const (
	SpawnV      = "v"
	SpawnLine   = "line"
	SpawnCircle = "circle"
	SpawnGrid   = "grid"
	SpawnRandom = "random"
)

func SpawnPresets() []string {
	return []string{SpawnV, SpawnLine, SpawnCircle, SpawnGrid, SpawnRandom}
}

// SpawnPositions generates n spawn positions for the named preset at the
// given altitude with roughly spacing meters between neighbors. Unknown
// presets fall back to the V formation. The random preset draws from rng so
// placement stays reproducible.
func SpawnPositions(n int, preset string, spacing, alt float64, rng *rand.Rand) []Vec3 {
	if n <= 0 {
		return nil
	}
	switch preset {
	case SpawnLine:
		return spawnLine(n, spacing, alt)
	case SpawnCircle:
		return spawnCircle(n, spacing, alt)
	case SpawnGrid:
		return spawnGrid(n, spacing, alt)
	case SpawnRandom:
		return spawnRandom(n, spacing, alt, rng)
	default:
		return spawnV(n, spacing, alt)
	}
}

func spawnLine(n int, d, alt float64) []Vec3 {
	start := -float64(n-1) * 0.5 * d
	out := make([]Vec3, n)
	for i := range out {
		out[i] = Vec3{X: start + float64(i)*d, Y: alt}
	}
	return out
}

func spawnCircle(n int, d, alt float64) []Vec3 {
	r := d
	if n >= 3 {
		r = maxf(d, d/(2*math.Sin(math.Pi/float64(n))))
	}
	out := make([]Vec3, n)
	for i := range out {
		angle := 2 * math.Pi * float64(i) / float64(n)
		out[i] = Vec3{X: r * math.Cos(angle), Y: alt, Z: r * math.Sin(angle)}
	}
	return out
}

// spawnV puts the leader at the origin and alternates followers onto the
// right and left wings.
func spawnV(n int, d, alt float64) []Vec3 {
	const thetaDeg = 40.0
	theta := thetaDeg * math.Pi / 180.0
	out := []Vec3{{Y: alt}}
	for k := 1; k < n; k++ {
		arm := float64((k + 1) / 2)
		sign := 1.0
		if k%2 == 0 {
			sign = -1.0
		}
		out = append(out, Vec3{
			X: arm * d * math.Cos(theta),
			Y: alt,
			Z: sign * arm * d * math.Sin(theta),
		})
	}
	return out
}

func spawnGrid(n int, d, alt float64) []Vec3 {
	rows := int(math.Floor(math.Sqrt(float64(n))))
	if rows < 1 {
		rows = 1
	}
	cols := (n + rows - 1) / rows
	ox := -float64(cols-1) * 0.5 * d
	oz := -float64(rows-1) * 0.5 * d
	out := make([]Vec3, 0, n)
	for r := 0; r < rows && len(out) < n; r++ {
		for c := 0; c < cols && len(out) < n; c++ {
			out = append(out, Vec3{X: ox + float64(c)*d, Y: alt, Z: oz + float64(r)*d})
		}
	}
	return out
}

func spawnRandom(n int, d, alt float64, rng *rand.Rand) []Vec3 {
	span := maxf(d*math.Sqrt(float64(n)), d*3.0)
	half := span * 0.5
	out := make([]Vec3, n)
	for i := range out {
		out[i] = Vec3{
			X: -half + rng.Float64()*span,
			Y: alt,
			Z: -half + rng.Float64()*span,
		}
	}
	return out
}

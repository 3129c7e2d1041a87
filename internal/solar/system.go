package solar

import (
	"context"
	"math"
	"math/rand/v2"
)

const (
	// Gravity is the gravitational constant of the scaled model.
	Gravity = 0.00001
	// Scalar divides masses and the square root of distances.
	Scalar = 20

	sunRadiusDivisor    = 100000
	planetRadiusDivisor = 1500

	// cancelCheckInterval is how many steps Advance runs between context checks.
	cancelCheckInterval = 1024
)

// Object is a body placed in the simulation, in viewport units.
type Object struct {
	Name       string
	Color      string
	X, Y       float64
	VX, VY     float64
	Radius     float64
	Mass       float64
	Stationary bool
}

// System is the mutable simulation state.
type System struct {
	Objects []Object
}

// NewSystem lays out the catalog around the centre of a width x height
// viewport. The Sun is stationary at the centre; each planet starts on a
// circular orbit at an angle drawn from rng. With scaleSun the Sun is shrunk
// by the same factor as the planets instead of its display factor.
func NewSystem(width, height float64, scaleSun bool, rng *rand.Rand) *System {
	cx, cy := width/2, height/2
	objects := make([]Object, 0, len(catalog))

	var sunMass float64
	for _, b := range catalog {
		if b.Kind != KindStar {
			continue
		}
		divisor := float64(sunRadiusDivisor)
		if scaleSun {
			divisor = planetRadiusDivisor
		}
		sunMass = b.MassE24Kg / Scalar
		objects = append(objects, Object{
			Name:       b.Name,
			Color:      b.Color,
			X:          cx,
			Y:          cy,
			Radius:     b.RadiusKm / divisor,
			Mass:       sunMass,
			Stationary: true,
		})
	}

	for _, b := range catalog {
		if b.Kind != KindPlanet {
			continue
		}
		d := b.DistanceMkm / math.Sqrt(Scalar)
		angle := rng.Float64() * 2 * math.Pi
		sin, cos := math.Sincos(angle)
		speed := math.Sqrt(Gravity * sunMass / d)
		objects = append(objects, Object{
			Name:   b.Name,
			Color:  b.Color,
			X:      cx + d*cos,
			Y:      cy + d*sin,
			VX:     -speed * sin,
			VY:     speed * cos,
			Radius: b.RadiusKm / planetRadiusDivisor,
			Mass:   b.MassE24Kg / Scalar,
		})
	}

	return &System{Objects: objects}
}

// Step advances the system by one frame. Objects are updated in order and
// each sees the positions already moved earlier in the same frame.
func (s *System) Step() {
	for i := range s.Objects {
		o := &s.Objects[i]
		if o.Stationary {
			continue
		}
		var ax, ay float64
		for j := range s.Objects {
			if i == j {
				continue
			}
			other := &s.Objects[j]
			dx, dy := other.X-o.X, other.Y-o.Y
			r2 := dx*dx + dy*dy
			if r2 == 0 {
				continue
			}
			a := Gravity * other.Mass / r2
			r := math.Sqrt(r2)
			ax += a * dx / r
			ay += a * dy / r
		}
		o.VX += ax
		o.VY += ay
		o.X += o.VX
		o.Y += o.VY
	}
}

// Advance runs n steps, stopping early with ctx.Err() if ctx is done.
func (s *System) Advance(ctx context.Context, n int) error {
	for i := range n {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		s.Step()
	}
	return nil
}

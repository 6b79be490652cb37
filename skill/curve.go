package skill

import (
	"math"

	"github.com/udisondev/statkit/internal/satmath"
)

const (
	// PointMax is the saturation sentinel for point values. A required-points
	// result of PointMax means the cost overflowed 64 bits ("effectively
	// unbounded").
	PointMax uint64 = math.MaxUint64

	// LevelMax is the hard ceiling of the level counter, independent of any
	// configured cap.
	LevelMax uint16 = math.MaxUint16
)

// Curve maps a target level to the cumulative points required to reach it.
// The three factors x, y, z change meaning per formula; all arithmetic
// saturates at PointMax instead of wrapping.
type Curve struct {
	formula Formula
	x, y, z uint16
}

// NewCurve builds a growth curve from a formula and its three factors.
func NewCurve(formula Formula, x, y, z uint16) Curve {
	return Curve{formula: formula, x: x, y: y, z: z}
}

// Formula returns the curve's formula family.
func (c Curve) Formula() Formula { return c.formula }

// Factors returns the raw x, y, z factors.
func (c Curve) Factors() (x, y, z uint16) { return c.x, c.y, c.z }

// PointsRequired returns the cumulative points required to reach level.
// Pure; saturates at PointMax on overflow.
func (c Curve) PointsRequired(level uint64) uint64 {
	switch c.formula {
	case Linear:
		return c.linear(level)
	case Logarithmic:
		return c.logarithmic(level)
	case Exponential:
		return c.exponential(level)
	case Quadratic:
		return c.quadratic(level)
	case Cubic:
		return c.cubic(level)
	case Step:
		return c.step(level)
	case Root:
		return c.root(level)
	case Inverse:
		return c.inverse(level)
	}
	return 0
}

// linear: x*y + z*level
func (c Curve) linear(level uint64) uint64 {
	xy := satmath.Mul(uint64(c.x), uint64(c.y))
	zl := satmath.Mul(uint64(c.z), level)
	return satmath.Add(xy, zl)
}

// logarithmic: x * floor(log2(y*level + z)), 0 when the argument is 0
func (c Curve) logarithmic(level uint64) uint64 {
	arg := satmath.Add(satmath.Mul(uint64(c.y), level), uint64(c.z))
	if arg == 0 {
		return 0
	}
	return satmath.Mul(uint64(c.x), satmath.Log2(arg))
}

// exponential: x for level <= z+1, else x * y^(level-(z+1))
func (c Curve) exponential(level uint64) uint64 {
	base := uint64(c.z) + 1
	if level <= base {
		return uint64(c.x)
	}
	power := satmath.Pow(uint64(c.y), level-base)
	return satmath.Mul(uint64(c.x), power)
}

// quadratic: x*level^2 + y*level + z
func (c Curve) quadratic(level uint64) uint64 {
	xPart := satmath.Mul(uint64(c.x), satmath.Mul(level, level))
	yPart := satmath.Mul(uint64(c.y), level)
	return satmath.Add(satmath.Add(xPart, yPart), uint64(c.z))
}

// cubic: x*level^3
func (c Curve) cubic(level uint64) uint64 {
	return satmath.Mul(uint64(c.x), satmath.Mul(satmath.Mul(level, level), level))
}

// step: x * floor((level+z)/y), saturated when y == 0 (undefined step size)
func (c Curve) step(level uint64) uint64 {
	if c.y == 0 {
		return PointMax
	}
	stepped := satmath.Add(level, uint64(c.z))
	return satmath.Mul(uint64(c.x), stepped/uint64(c.y))
}

// root: x*floor(sqrt(level+y)) + z
func (c Curve) root(level uint64) uint64 {
	in := satmath.Add(level, uint64(c.y))
	return satmath.Add(satmath.Mul(uint64(c.x), satmath.Sqrt(in)), uint64(c.z))
}

// inverse: x/(y+level) + z; cost shrinks as level grows, on purpose
func (c Curve) inverse(level uint64) uint64 {
	denom := satmath.Add(uint64(c.y), level)
	if denom == 0 {
		return PointMax
	}
	return satmath.Add(uint64(c.x)/denom, uint64(c.z))
}

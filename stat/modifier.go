package stat

import (
	"fmt"
	"strings"

	"github.com/udisondev/statkit/internal/satmath"
)

// Unsigned constrains stat values to unsigned integers of at least 16 bits.
type Unsigned = satmath.Unsigned

// Op is the stacking operation a modifier applies to a stat's maximum.
type Op uint8

const (
	Multiply Op = iota
	Divide
	Add
	Subtract
)

// String returns the lowercase operation name used in definition files.
func (o Op) String() string {
	switch o {
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// ParseOp converts an operation name (case-insensitive) to an Op.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(s) {
	case "multiply":
		return Multiply, nil
	case "divide":
		return Divide, nil
	case "add":
		return Add, nil
	case "subtract":
		return Subtract, nil
	default:
		return 0, fmt.Errorf("unknown modifier op %q", s)
	}
}

// Modifier is one immutable stacking adjustment to a stat's maximum.
// Proportional modifiers also rescale the stat's current value by the same
// ratio the maximum changed by.
type Modifier[T Unsigned] struct {
	op           Op
	value        T
	proportional bool
}

// NewModifier builds a modifier. A zero value is coerced to 1 for Multiply
// and Divide (a zero multiplier or divisor is never meant); zero stays
// zero for Add and Subtract, which may be an intentional no-op.
func NewModifier[T Unsigned](op Op, value T, proportional bool) Modifier[T] {
	if value == 0 && (op == Multiply || op == Divide) {
		value = 1
	}
	return Modifier[T]{op: op, value: value, proportional: proportional}
}

// Op returns the stacking operation.
func (m Modifier[T]) Op() Op { return m.op }

// Value returns the magnitude.
func (m Modifier[T]) Value() T { return m.value }

// Proportional reports whether the modifier rescales the current value
// when it changes the maximum.
func (m Modifier[T]) Proportional() bool { return m.proportional }

package skill

import (
	"fmt"
	"strings"
)

// Formula selects the growth curve family used to compute the points
// required for each level.
type Formula uint8

const (
	Linear Formula = iota
	Logarithmic
	Exponential
	Quadratic
	Cubic
	Step
	Root
	Inverse
)

// String returns the lowercase formula name used in definition files.
func (f Formula) String() string {
	switch f {
	case Linear:
		return "linear"
	case Logarithmic:
		return "logarithmic"
	case Exponential:
		return "exponential"
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	case Step:
		return "step"
	case Root:
		return "root"
	case Inverse:
		return "inverse"
	default:
		return fmt.Sprintf("formula(%d)", uint8(f))
	}
}

// ParseFormula converts a formula name (case-insensitive) to a Formula.
func ParseFormula(s string) (Formula, error) {
	switch strings.ToLower(s) {
	case "linear":
		return Linear, nil
	case "logarithmic":
		return Logarithmic, nil
	case "exponential":
		return Exponential, nil
	case "quadratic":
		return Quadratic, nil
	case "cubic":
		return Cubic, nil
	case "step":
		return Step, nil
	case "root":
		return Root, nil
	case "inverse":
		return Inverse, nil
	default:
		return 0, fmt.Errorf("unknown formula %q", s)
	}
}

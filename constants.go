package calculator

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// constPrec is the precision in bits used to derive the irrational constants
// before rounding them to float64.
const constPrec = 128

// constants are the names that resolve without a caller-supplied value.
var constants = func() map[string]float64 {
	pi, _ := bigfloat.Pi(new(big.Float).SetPrec(constPrec)).Float64()

	one := new(big.Float).SetPrec(constPrec).SetInt64(1)
	e, _ := bigfloat.Exp(new(big.Float).SetPrec(constPrec), one).Float64()

	// φ = (1 + √5) / 2
	phi := new(big.Float).SetPrec(constPrec).SetInt64(5)
	phi.Sqrt(phi)
	phi.Add(phi, one)
	phi.Quo(phi, big.NewFloat(2))
	golden, _ := phi.Float64()

	return map[string]float64{
		"π":   pi,
		"pi":  pi,
		"e":   e,
		"φ":   golden,
		"phi": golden,
		// Speed of light in vacuum, m/s.
		"c": 299792458,
		// Newtonian constant of gravitation, m³/(kg·s²).
		"G": 6.67430e-11,
	}
}()

// Constant returns the value of a named constant.
func Constant(name string) (float64, bool) {
	v, ok := constants[name]
	return v, ok
}

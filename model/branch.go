package model

import (
	"math"
	"math/cmplx"
)

// branchSteps is the number of maturity sub-steps used to follow the phase
// of the Riccati log term from t=0. The term h(s) = (g e^{-ds} - 1)/(g - 1)
// starts at h(0)=1, so stepping from zero maturity pins the branch uniquely.
const branchSteps = 16

// riccatiLog evaluates log((g e^{-dt} - 1)/(g - 1)) with the argument
// unwound along the maturity path. The principal branch of cmplx.Log jumps
// by 2*pi when h crosses the negative real axis, which happens for long
// maturities and extreme parameter sets; tracking the rotation count across
// sub-steps keeps the log continuous in t.
func riccatiLog(g, d complex128, t float64) complex128 {
	gm1 := g - 1
	prev := 0.0 // arg h(0) = 0
	wind := 0.0
	var h complex128
	for j := 1; j <= branchSteps; j++ {
		s := t * float64(j) / branchSteps
		h = (g*cmplx.Exp(-d*complex(s, 0)) - 1) / gm1
		arg := cmplx.Phase(h)
		// unwind: pick the 2*pi multiple closest to the previous phase
		for arg+wind-prev > math.Pi {
			wind -= 2 * math.Pi
		}
		for arg+wind-prev < -math.Pi {
			wind += 2 * math.Pi
		}
		prev = arg + wind
	}
	return complex(math.Log(cmplx.Abs(h)), prev)
}

package thermo

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CurvePoints is the fixed number of samples per diagram curve, one at each
// t = i/50 for i in 0..50.
const CurvePoints = 51

// PVPoint is one pressure-volume diagram sample.
type PVPoint struct {
	P float64 `json:"P"`
	V float64 `json:"V"`
}

// TSPoint is one temperature-entropy diagram sample.
type TSPoint struct {
	T float64 `json:"T"`
	S float64 `json:"S"`
}

// SamplePV traces the process path on the P-V plane. The volume axis runs
// monotonically from min(V1,V2) to max(V1,V2) in the sampling parameter t,
// regardless of whether the physical process expands or compresses; pressure
// follows the process's own P-V relation. Constant volume instead pins V and
// interpolates pressure.
func SamplePV(kind Kind, P1, V1, P2, V2, gamma, n float64) []PVPoint {
	var (
		points = make([]PVPoint, CurvePoints)
		tGrid  = floats.Span(make([]float64, CurvePoints), 0, 1)
		vGrid  = floats.Span(make([]float64, CurvePoints), math.Min(V1, V2), math.Max(V1, V2))
	)
	for i := range points {
		var P, V float64
		switch kind {
		case ConstantVolume:
			V = V1
			P = P1 + tGrid[i]*(P2-P1)
		case ConstantPressure:
			V = vGrid[i]
			P = P1
		case Isothermal:
			V = vGrid[i]
			P = P1 * V1 / V
		case Adiabatic:
			V = vGrid[i]
			P = P1 * math.Pow(V1/V, gamma)
		case Polytropic:
			V = vGrid[i]
			P = P1 * math.Pow(V1/V, n)
		default:
			V = vGrid[i]
			P = P1
		}
		points[i] = PVPoint{P: P, V: V}
	}
	return points
}

// SampleTS traces the process path on the T-S plane with the initial entropy
// fixed at zero as the relative baseline. For isothermal and polytropic
// processes the entropy is drawn linearly in t between 0 and deltaS; this is
// a deliberate visualization simplification that downstream consumers depend
// on, not a physically derived entropy curve.
func SampleTS(kind Kind, T1, T2, deltaS float64, sub *Substance, mass float64) ([]TSPoint, error) {
	var (
		points = make([]TSPoint, CurvePoints)
		tGrid  = floats.Span(make([]float64, CurvePoints), 0, 1)
	)
	for i, t := range tGrid {
		var T, S float64
		switch kind {
		case ConstantVolume, ConstantPressure:
			T = T1 + t*(T2-T1)
			if T/T1 <= 0 {
				return nil, ErrInvalidInput.Here().WithMessage("temperature ratio must be positive for entropy log calculation")
			}
			C := sub.Cv
			if kind == ConstantPressure {
				C = sub.Cp
			}
			S = mass * C * math.Log(T/T1) / 1000.0
		case Isothermal:
			T = T1
			S = t * deltaS
		case Adiabatic:
			T = T1 + t*(T2-T1)
			S = 0
		case Polytropic:
			T = T1 + t*(T2-T1)
			S = t * deltaS
		default:
			T = T1 + t*(T2-T1)
			S = t * deltaS
		}
		points[i] = TSPoint{T: T, S: S}
	}
	return points, nil
}

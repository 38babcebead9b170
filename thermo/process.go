package thermo

import "math"

// Kind identifies one of the five closed-system process models.
type Kind string

const (
	ConstantVolume   Kind = "constantVolume"
	ConstantPressure Kind = "constantPressure"
	Isothermal       Kind = "isothermal"
	Adiabatic        Kind = "adiabatic"
	Polytropic       Kind = "polytropic"
)

// DefaultPolytropicIndex applies when a polytropic calculation is requested
// without an explicit n.
const DefaultPolytropicIndex = 1.3

// Fallback multipliers for optional target-state fields.
const (
	defaultTemperatureRatio = 1.5 // T2 = 1.5*T1 when not supplied
	defaultVolumeRatio      = 2.0 // V2 = 2*V1 when not supplied
)

// Below this distance from n=1 a polytropic process collapses to the
// isothermal formulas (the 1/(1-n) work term blows up).
const isothermalIndexTol = 1e-9

var kindOrder = []Kind{ConstantVolume, ConstantPressure, Isothermal, Adiabatic, Polytropic}

// Kinds returns the process kinds in presentation order.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}

// ParseKind maps a wire-format process name to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range kindOrder {
		if string(k) == s {
			return k, nil
		}
	}
	return "", ErrUnknownEntity.Here().WithMessagef("unknown process type: %s", s)
}

// DisplayName returns the human-readable process name.
func (k Kind) DisplayName() string {
	switch k {
	case ConstantVolume:
		return "Constant Volume (Isochoric)"
	case ConstantPressure:
		return "Constant Pressure (Isobaric)"
	case Isothermal:
		return "Isothermal"
	case Adiabatic:
		return "Adiabatic (Isentropic)"
	case Polytropic:
		return "Polytropic"
	}
	return string(k)
}

// Equation returns the governing relation for the process.
func (k Kind) Equation() string {
	switch k {
	case ConstantVolume:
		return "V = const, P1/T1 = P2/T2"
	case ConstantPressure:
		return "P = const, V1/T1 = V2/T2"
	case Isothermal:
		return "T = const, P1 V1 = P2 V2"
	case Adiabatic:
		return "Q = 0, P V^γ = const"
	case Polytropic:
		return "P V^n = const"
	}
	return ""
}

// Result is the output record of one calculation: both end states, the
// energy terms and the two sampled diagram curves. Q = deltaU + W holds for
// every kind (first law for a closed system).
type Result struct {
	P1     float64   `json:"P1"`
	V1     float64   `json:"V1"`
	T1     float64   `json:"T1"`
	P2     float64   `json:"P2"`
	V2     float64   `json:"V2"`
	T2     float64   `json:"T2"`
	W      float64   `json:"W"`
	Q      float64   `json:"Q"`
	DeltaU float64   `json:"deltaU"`
	DeltaS float64   `json:"deltaS"`
	PVData []PVPoint `json:"pvData"`
	TSData []TSPoint `json:"tsData"`
}

// Calculate computes the final state, the energy terms and both diagram
// curves for one process of the given mass (kg) of the keyed substance.
// Energies come out in kJ directly from kPa·m^3 products; the /1000 factors
// convert the J-based heat capacity products to kJ.
func (t *Table) Calculate(kind Kind, substanceKey string, in StateInput, mass float64) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if mass <= 0 {
		return nil, ErrInvalidInput.Here().WithMessage("mass must be positive (kg)")
	}
	sub, err := t.Lookup(substanceKey)
	if err != nil {
		return nil, err
	}
	if !sub.complete() {
		return nil, ErrUnknownEntity.Here().WithMessagef("gas properties incomplete for %q: need Cv, Cp and R", substanceKey)
	}

	var (
		P1, V1, T1 = *in.P1, *in.V1, *in.T1
		R, Cv, Cp  = sub.R, sub.Cv, sub.Cp
		n          = DefaultPolytropicIndex
	)
	if in.N != nil {
		n = *in.N
	}
	gamma := sub.Gamma
	if gamma == 0 {
		if Cv == 0 {
			return nil, ErrInvalidInput.Here().WithMessage("invalid gas property: Cv must be non-zero to compute gamma")
		}
		gamma = Cp / Cv
	}

	var P2, V2, T2, W, Q, deltaU, deltaS float64

	switch kind {
	case ConstantVolume:
		V2 = V1
		T2 = T1 * defaultTemperatureRatio
		if in.T2 != nil {
			T2 = *in.T2
		}
		if T2 <= 0 {
			return nil, ErrInvalidInput.Here().WithMessage("computed T2 must be positive")
		}
		P2 = P1 * (T2 / T1)
		W = 0
		deltaU = mass * Cv * (T2 - T1) / 1000.0
		Q = deltaU
		deltaS = mass * Cv * math.Log(T2/T1) / 1000.0

	case ConstantPressure:
		P2 = P1
		T2 = T1 * defaultTemperatureRatio
		if in.T2 != nil {
			T2 = *in.T2
		}
		if T2 <= 0 {
			return nil, ErrInvalidInput.Here().WithMessage("computed T2 must be positive")
		}
		V2 = V1 * (T2 / T1)
		W = P1 * (V2 - V1)
		deltaU = mass * Cv * (T2 - T1) / 1000.0
		Q = mass * Cp * (T2 - T1) / 1000.0
		deltaS = mass * Cp * math.Log(T2/T1) / 1000.0

	case Isothermal:
		T2 = T1
		V2 = V1 * defaultVolumeRatio
		if in.V2 != nil {
			V2 = *in.V2
		}
		if V2 <= 0 {
			return nil, ErrInvalidInput.Here().WithMessage("V2 must be positive for isothermal process")
		}
		P2 = P1 * V1 / V2
		if V2/V1 <= 0 {
			return nil, ErrInvalidInput.Here().WithMessage("volume ratio must be positive for log calculation")
		}
		W = P1 * V1 * math.Log(V2/V1)
		deltaU = 0
		Q = W
		deltaS = mass * R * math.Log(V2/V1) / 1000.0

	case Adiabatic:
		V2 = V1 * defaultVolumeRatio
		if in.V2 != nil {
			V2 = *in.V2
		}
		if V2 <= 0 {
			return nil, ErrInvalidInput.Here().WithMessage("V2 must be positive for adiabatic process")
		}
		P2 = P1 * math.Pow(V1/V2, gamma)
		T2 = T1 * math.Pow(V1/V2, gamma-1.0)
		Q = 0
		deltaU = mass * Cv * (T2 - T1) / 1000.0
		// For an adiabatic closed process W = -deltaU.
		W = -deltaU
		deltaS = 0

	case Polytropic:
		V2 = V1 * defaultVolumeRatio
		if in.V2 != nil {
			V2 = *in.V2
		}
		if V2 <= 0 {
			return nil, ErrInvalidInput.Here().WithMessage("V2 must be positive for polytropic process")
		}
		if math.Abs(n-1.0) < isothermalIndexTol {
			T2 = T1
			P2 = P1 * V1 / V2
			if V2/V1 <= 0 {
				return nil, ErrInvalidInput.Here().WithMessage("volume ratio must be positive for log calculation")
			}
			W = P1 * V1 * math.Log(V2/V1)
			deltaU = 0
			Q = W
			deltaS = mass * R * math.Log(V2/V1) / 1000.0
		} else {
			P2 = P1 * math.Pow(V1/V2, n)
			T2 = T1 * math.Pow(V1/V2, n-1.0)
			W = (P2*V2 - P1*V1) / (1.0 - n)
			deltaU = mass * Cv * (T2 - T1) / 1000.0
			Q = deltaU + W
			if T2/T1 <= 0 || V2/V1 <= 0 {
				return nil, ErrInvalidInput.Here().WithMessage("temperature and volume ratios must be positive for log calculation")
			}
			deltaS = (mass*Cv*math.Log(T2/T1) + mass*R*math.Log(V2/V1)) / 1000.0
		}

	default:
		return nil, ErrUnknownEntity.Here().WithMessagef("unknown process type: %s", kind)
	}

	res := &Result{
		P1: P1, V1: V1, T1: T1,
		P2: P2, V2: V2, T2: T2,
		W: W, Q: Q, DeltaU: deltaU, DeltaS: deltaS,
	}
	res.PVData = SamplePV(kind, P1, V1, P2, V2, gamma, n)
	if res.TSData, err = SampleTS(kind, T1, T2, deltaS, sub, mass); err != nil {
		return nil, err
	}
	return res, nil
}

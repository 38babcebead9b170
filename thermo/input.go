package thermo

// StateInput carries the caller-supplied state for one calculation. P1, V1
// and T1 are mandatory; the rest are optional hints consumed by specific
// process kinds. Nil means "not supplied" and selects the documented
// fallback (T2 -> 1.5*T1, V2 -> 2*V1, n -> 1.3).
type StateInput struct {
	P1 *float64 `json:"P1,omitempty"` // kPa
	V1 *float64 `json:"V1,omitempty"` // m^3
	T1 *float64 `json:"T1,omitempty"` // K
	P2 *float64 `json:"P2,omitempty"`
	V2 *float64 `json:"V2,omitempty"`
	T2 *float64 `json:"T2,omitempty"`
	N  *float64 `json:"n,omitempty"`
}

// Float is a convenience for building optional StateInput fields.
func Float(v float64) *float64 { return &v }

// Validate checks presence and strict positivity of the mandatory fields and
// positivity of any optional field that was supplied. The initial state is
// not checked for consistency against the gas law.
func (in StateInput) Validate() error {
	required := []struct {
		name string
		v    *float64
	}{
		{"P1", in.P1},
		{"V1", in.V1},
		{"T1", in.T1},
	}
	for _, f := range required {
		if f.v == nil {
			return ErrInvalidInput.Here().WithMessagef("missing required input: %s", f.name)
		}
		if *f.v <= 0 {
			return ErrInvalidInput.Here().WithMessagef("%s must be positive", f.name)
		}
	}
	optional := []struct {
		name string
		v    *float64
	}{
		{"P2", in.P2},
		{"V2", in.V2},
		{"T2", in.T2},
		{"n", in.N},
	}
	for _, f := range optional {
		if f.v != nil && *f.v <= 0 {
			return ErrInvalidInput.Here().WithMessagef("%s must be positive if provided", f.name)
		}
	}
	return nil
}

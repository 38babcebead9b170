// Package thermo computes the state evolution of a fixed mass of ideal gas
// undergoing one of the five classical closed-system (non-flow) processes,
// together with the energy terms and the sampled P-V and T-S diagram curves.
//
// Units used throughout: pressure kPa, volume m^3, temperature K, mass kg,
// energy kJ (1 kPa * m^3 = 1 kJ), entropy kJ/K. Gas properties are stored as
// specific (per kg) values so formulas using mass work consistently.
package thermo

// RUniversal is the universal gas constant (J/(mol·K)).
const RUniversal = 8.314462618

// Substance holds the gas properties for one table entry. M is in g/mol for
// readability; R, Cv and Cp are specific values in J/(kg·K), CvMolar and
// CpMolar are J/(mol·K). A zero field means "not given" and is filled in by
// Normalize where derivable.
type Substance struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	M       float64 `json:"M"`
	R       float64 `json:"R,omitempty"`
	Cv      float64 `json:"Cv,omitempty"`
	Cp      float64 `json:"Cp,omitempty"`
	CvMolar float64 `json:"Cv_molar,omitempty"`
	CpMolar float64 `json:"Cp_molar,omitempty"`
	Gamma   float64 `json:"gamma,omitempty"`
}

// Normalize derives the specific properties from whatever raw values are
// present: R from the molar mass, Cv/Cp from their molar counterparts and
// gamma from Cp/Cv. Only zero fields are ever written, so repeated
// application is a no-op.
func (s *Substance) Normalize() {
	if s.M == 0 {
		return
	}
	mKg := s.M / 1000.0
	if s.R == 0 {
		s.R = RUniversal / mKg
	}
	if s.Cv == 0 && s.CvMolar != 0 {
		s.Cv = s.CvMolar / mKg
	}
	if s.Cp == 0 && s.CpMolar != 0 {
		s.Cp = s.CpMolar / mKg
	}
	if s.Gamma == 0 && s.Cv != 0 && s.Cp != 0 {
		s.Gamma = s.Cp / s.Cv
	}
}

// complete reports whether the substance can drive a calculation.
func (s *Substance) complete() bool {
	return s.R != 0 && s.Cv != 0 && s.Cp != 0
}

// Table is the substance registry. It is built and normalized once at
// startup and read-only afterwards, so a single table can serve concurrent
// calculations without locking.
type Table struct {
	order []string
	subs  map[string]*Substance
}

// NewTable returns the built-in substance table.
func NewTable() *Table {
	t := &Table{subs: make(map[string]*Substance)}
	for _, s := range []Substance{
		{Key: "idealGas", Name: "Ideal Gas (air-like)", M: 28.97, CvMolar: 20.8, CpMolar: 29.1},
		{Key: "steam", Name: "Steam (H2O)", M: 18.015, R: 461.5, Cv: 1410.0, Cp: 1996.0, Gamma: 1.33},
		{Key: "methane", Name: "Methane (CH4)", M: 16.04, R: 518.3, Cv: 1700.0, Cp: 2220.0, Gamma: 1.31},
	} {
		t.add(s)
	}
	t.normalize()
	return t
}

func (t *Table) add(s Substance) {
	if _, ok := t.subs[s.Key]; !ok {
		t.order = append(t.order, s.Key)
	}
	c := s
	t.subs[s.Key] = &c
}

func (t *Table) normalize() {
	for _, key := range t.order {
		t.subs[key].Normalize()
	}
}

// Lookup returns the substance for key.
func (t *Table) Lookup(key string) (*Substance, error) {
	s, ok := t.subs[key]
	if !ok {
		return nil, ErrUnknownEntity.Here().WithMessagef("unknown substance: %s", key)
	}
	return s, nil
}

// SubstanceInfo is one row of the listing used to populate UI selects.
type SubstanceInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// List returns {key, name} pairs in table-definition order.
func (t *Table) List() []SubstanceInfo {
	out := make([]SubstanceInfo, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, SubstanceInfo{Key: key, Name: t.subs[key].Name})
	}
	return out
}

package thermo

import (
	"io/ioutil"
	"sort"

	"github.com/ansel1/merry"
	"github.com/ghodss/yaml"
)

// GasFile is the YAML substance override file. Entries merge over the
// built-in table by key; keys new to the table are appended in sorted order.
//
// Example:
//
//	Substances:
//	  ammonia:
//	    name: "Ammonia (NH3)"
//	    M: 17.031
//	    Cv_molar: 26.7
//	    Cp_molar: 35.1
type GasFile struct {
	Substances map[string]Substance `json:"Substances"`
}

// Parse fills the file struct from YAML data.
func (gf *GasFile) Parse(data []byte) error {
	return yaml.Unmarshal(data, gf)
}

// MergeFile loads a YAML substance file into the table and re-normalizes.
// Call before the table is shared; it stays read-only once serving starts.
func (t *Table) MergeFile(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return merry.Wrap(err)
	}
	return t.Merge(data)
}

// Merge applies parsed substance overrides to the table.
func (t *Table) Merge(data []byte) error {
	var gf GasFile
	if err := gf.Parse(data); err != nil {
		return merry.Wrap(err)
	}
	keys := make([]string, 0, len(gf.Substances))
	for k := range gf.Substances {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s := gf.Substances[k]
		s.Key = k
		if s.Name == "" {
			s.Name = k
		}
		t.add(s)
	}
	t.normalize()
	return nil
}

package config

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML server parameters file. Fields absent
// from the file keep their defaults.
type Parameters struct {
	Title          string   `json:"Title"`
	Addr           string   `json:"Addr"`
	AllowedOrigins []string `json:"AllowedOrigins"`
	GasFile        string   `json:"GasFile"`
}

// Default returns the parameters used when no file is supplied.
func Default() *Parameters {
	return &Parameters{
		Title:          "Non-Flow Process Calculator",
		Addr:           ":8080",
		AllowedOrigins: []string{"*"},
	}
}

func (p *Parameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, p)
}

func (p *Parameters) Print() {
	fmt.Printf("\"%s\"\t= Title\n", p.Title)
	fmt.Printf("[%s]\t\t\t= Addr\n", p.Addr)
	fmt.Printf("%v\t\t\t= AllowedOrigins\n", p.AllowedOrigins)
	fmt.Printf("[%s]\t\t\t\t= GasFile\n", p.GasFile)
}

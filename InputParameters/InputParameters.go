package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParametersDiff struct {
	Title       string  `yaml:"Title"`
	Kappa       float64 `yaml:"Kappa"` // Diffusivity
	Sigma       float64 `yaml:"Sigma"` // Initial Gaussian width
	FinalTime   float64 `yaml:"FinalTime"`
	N           int     `yaml:"N"`           // Sample points per axis
	XMax        float64 `yaml:"XMax"`        // Domain length per axis
	Case        string  `yaml:"Case"`        // Blob or Band (2D only)
	RecordSteps int     `yaml:"RecordSteps"` // Diagnostic samples over the run
}

func (ip *InputParametersDiff) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersDiff) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.6f\t\t= Kappa\n", ip.Kappa)
	fmt.Printf("%8.5f\t\t= Sigma\n", ip.Sigma)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%d]\t\t\t= N\n", ip.N)
	fmt.Printf("%8.5f\t\t= XMax\n", ip.XMax)
	fmt.Printf("[%s]\t\t\t= Case\n", ip.Case)
	fmt.Printf("[%d]\t\t\t= RecordSteps\n", ip.RecordSteps)
}

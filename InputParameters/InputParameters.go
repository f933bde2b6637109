package InputParameters

import (
	"encoding/json"
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/mobius/Mobius"
)

// Parameters obtained from the YAML input file
type InputParametersMobius struct {
	Title       string  `yaml:"Title"`
	R           float64 `yaml:"R"`
	W           float64 `yaml:"W"`
	Resolution  int     `yaml:"Resolution"` // N, the mesh points along each parameter direction
	OutputFile  string  `yaml:"OutputFile"`
	ImageWidth  int     `yaml:"ImageWidth"`
	ImageHeight int     `yaml:"ImageHeight"`
}

func NewInputParametersMobius() *InputParametersMobius {
	return &InputParametersMobius{
		Title:       "Möbius Strip",
		R:           Mobius.DefaultR,
		W:           Mobius.DefaultW,
		Resolution:  Mobius.DefaultN,
		OutputFile:  "mobius_strip_plot.png",
		ImageWidth:  1000,
		ImageHeight: 700,
	}
}

// Parse overlays the values present in data onto ip, absent keys keep their
// current value. YAML 1.1 reads the bare keys y, n, yes, no, on and off as
// booleans, so a file using "N:" is rejected rather than silently ignored.
func (ip *InputParametersMobius) Parse(data []byte) (err error) {
	var (
		js   []byte
		keys map[string]json.RawMessage
	)
	if js, err = yaml.YAMLToJSON(data); err != nil {
		return
	}
	if json.Unmarshal(js, &keys) == nil {
		for _, k := range []string{"true", "false"} {
			if _, ok := keys[k]; ok {
				return fmt.Errorf("input parameters key decoded as the boolean %s, use Resolution instead of N", k)
			}
		}
	}
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersMobius) Shape() Mobius.ShapeParameters {
	return Mobius.ShapeParameters{R: ip.R, W: ip.W, N: ip.Resolution}
}

func (ip *InputParametersMobius) Validate() (err error) {
	if err = ip.Shape().Validate(); err != nil {
		return
	}
	if ip.ImageWidth < 1 || ip.ImageHeight < 1 {
		return fmt.Errorf("image size must be positive, got %dx%d", ip.ImageWidth, ip.ImageHeight)
	}
	return
}

func (ip *InputParametersMobius) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= R (centerline radius)\n", ip.R)
	fmt.Printf("%8.5f\t\t= W (strip width)\n", ip.W)
	fmt.Printf("[%d]\t\t\t= N (resolution)\n", ip.Resolution)
	fmt.Printf("[%s]\t= Output File\n", ip.OutputFile)
	fmt.Printf("[%dx%d]\t\t= Image Size\n", ip.ImageWidth, ip.ImageHeight)
}

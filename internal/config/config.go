// internal/config/config.go
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"stkfiles/internal/cli"
)

// File holds YAML defaults merged under explicit flags, so recurring runs
// can keep their axes/encoding setup in one place.
type File struct {
	Format       string `yaml:"format"`
	TimeFormat   string `yaml:"time_format"`
	Epoch        string `yaml:"epoch"`
	Axes         string `yaml:"coordinate_axes"`
	AxesEpoch    string `yaml:"coordinate_axes_epoch"`
	CentralBody  string `yaml:"central_body"`
	InterpMethod string `yaml:"interpolation_method"`
	InterpOrder  int    `yaml:"interpolation_order"`
	Sequence     int    `yaml:"sequence"`
	Precision    int    `yaml:"precision"`
	Strict       bool   `yaml:"strict"`
}

// Load reads and decodes a YAML defaults file. Unknown keys are rejected
// so typos surface instead of silently doing nothing.
func Load(path string) (File, error) {
	var f File
	raw, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return f, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Apply fills flag fields the user left at their zero defaults.
func (f File) Apply(o *cli.Options) {
	if o.Format == "" {
		o.Format = f.Format
	}
	// "ISO-YMD" is the flag default, so a config value takes over unless
	// the user picked something else.
	if f.TimeFormat != "" && (o.TimeFormat == "" || o.TimeFormat == "ISO-YMD") {
		o.TimeFormat = f.TimeFormat
	}
	if o.Epoch == "" {
		o.Epoch = f.Epoch
	}
	if o.Axes == "" {
		o.Axes = f.Axes
	}
	if o.AxesEpoch == "" {
		o.AxesEpoch = f.AxesEpoch
	}
	if o.CentralBody == "" {
		o.CentralBody = f.CentralBody
	}
	if o.InterpMethod == "" {
		o.InterpMethod = f.InterpMethod
	}
	if o.InterpOrder == 0 {
		o.InterpOrder = f.InterpOrder
	}
	if o.Sequence == 0 {
		o.Sequence = f.Sequence
	}
	if o.Precision == 0 {
		o.Precision = f.Precision
	}
	if f.Strict {
		o.Strict = true
	}
}

package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GenerateConfig captures the resolved inputs for one generation run.
type GenerateConfig struct {
	// ModelPath is the data-model file to read. Required.
	ModelPath string
	// TaxonomyPath is the optional taxonomy file; empty means none.
	TaxonomyPath string
	// OutputPath is where the generated document is written. Required.
	OutputPath string
}

// resolveGenerateConfig builds the effective config from the command's flags,
// then normalizes and validates it.
func resolveGenerateConfig(cmd *cobra.Command) (*GenerateConfig, error) {
	cfg := &GenerateConfig{}
	if err := applyGenerateFlags(cfg, cmd.Flags()); err != nil {
		return nil, err
	}
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyGenerateFlags(cfg *GenerateConfig, flags *pflag.FlagSet) error {
	var err error
	if cfg.ModelPath, err = flags.GetString("model"); err != nil {
		return err
	}
	if cfg.TaxonomyPath, err = flags.GetString("taxonomy"); err != nil {
		return err
	}
	if cfg.OutputPath, err = flags.GetString("output"); err != nil {
		return err
	}
	return nil
}

func (c *GenerateConfig) normalize() {
	c.ModelPath = strings.TrimSpace(c.ModelPath)
	c.TaxonomyPath = strings.TrimSpace(c.TaxonomyPath)
	c.OutputPath = strings.TrimSpace(c.OutputPath)
}

func (c *GenerateConfig) validate() error {
	if c.ModelPath == "" {
		return newUsageError("--model is required")
	}
	if c.OutputPath == "" {
		return newUsageError("--output is required")
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/empathyfirstmedia/model2openapi/internal/generator"
	"github.com/empathyfirstmedia/model2openapi/internal/model"
)

// generateRunner is swapped out by tests to observe the resolved config
// without running a full generation.
var generateRunner = runGenerate

// Execute runs the model2openapi CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command so tests can exercise the CLI easily.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model2openapi",
		Short: "Generate OpenAPI 3.0 specifications from declarative data models",
		Long: "model2openapi reads a data-model file describing entities and their typed\n" +
			"attributes and writes an OpenAPI 3.0 document exposing CRUD-style paths and\n" +
			"schemas for every entity, in model order.",
		Example: "  model2openapi --model models/user.model.json --output schemas/user_api.yaml\n" +
			"  model2openapi --model models/user.model.json --taxonomy taxonomy.json --output schemas/user_api.yaml",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveGenerateConfig(cmd)
			if err != nil {
				return err
			}
			return generateRunner(cmd.Context(), cfg)
		},
	}

	// Convert Cobra flag errors (like unknown flags) into friendly usage errors
	// that also show the command's help text.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
	})

	flags := cmd.Flags()
	flags.String("model", "", "Path to the data model file (JSON or YAML)")
	flags.String("taxonomy", "", "Path to an optional taxonomy file")
	flags.String("output", "", "Path for the generated OpenAPI document")

	return cmd
}

// runGenerate wires the pipeline together: load the optional taxonomy, build
// the document from the model, and write it out.
func runGenerate(ctx context.Context, cfg *GenerateConfig) error {
	taxonomy, err := model.LoadTaxonomy(cfg.TaxonomyPath)
	if err != nil {
		return err
	}

	gen := generator.New(generator.Options{Taxonomy: taxonomy})
	doc, err := gen.GenerateFromModel(ctx, cfg.ModelPath)
	if err != nil {
		return err
	}

	if err := generator.WriteDocument(doc, cfg.OutputPath); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "✅ OpenAPI specification generated: %s\n", cfg.OutputPath)
	return nil
}

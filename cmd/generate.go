package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wordnik/wordnik-go/internal/codegen"
)

var (
	flagGenPackage string
	flagGenOutput  string
	flagGenInclude string
	flagGenExclude string
	flagGenQuiet   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate typed Go wrappers for the API methods",
	Long: `Generate a Go source file with one wrapper function per API method.
Path parameters become string arguments; everything else is passed in a
params map. Presets given with --presets or --preset are baked in.

Examples:
  wordnik generate --package dict --output ./dict/wordnik_gen.go
  wordnik generate --include word_get_definitions,word_get_examples`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&flagGenPackage, "package", "wordnikapi", "package name of the generated file")
	f.StringVar(&flagGenOutput, "output", "wordnik_gen.go", "file to write")
	f.StringVar(&flagGenInclude, "include", "", "only generate these methods (comma-separated)")
	f.StringVar(&flagGenExclude, "exclude", "", "leave out these methods (comma-separated)")
	f.BoolVar(&flagGenQuiet, "quiet", false, "suppress all output except errors")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := validateGenerateFlags(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	methods, err := loadMethods(cfg)
	if err != nil {
		return err
	}
	methods, err = filterMethods(methods, flagGenInclude, flagGenExclude)
	if err != nil {
		return err
	}
	presets, err := loadPresets(cfg)
	if err != nil {
		return err
	}

	ctx := codegen.GenerateContext{
		Package:        flagGenPackage,
		WordnikVersion: appVersion,
		Presets:        presets,
	}
	for _, m := range methods {
		ctx.Methods = append(ctx.Methods, codegen.NewMethodDef(m.Name, m.Operation))
	}

	verbose(cmd, "Generating %d wrappers...", len(ctx.Methods))
	if err := codegen.WriteFile(ctx, flagGenOutput); err != nil {
		return err
	}

	if !flagGenQuiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Generated %d methods in %s\n", len(ctx.Methods), flagGenOutput)
	}
	return nil
}

func validateGenerateFlags() error {
	if flagGenInclude != "" && flagGenExclude != "" {
		return fmt.Errorf("--include and --exclude cannot be used together")
	}
	if flagVerbose && flagGenQuiet {
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}
	if flagGenOutput == "" {
		return fmt.Errorf("--output must not be empty")
	}
	return nil
}

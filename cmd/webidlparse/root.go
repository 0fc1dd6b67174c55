package main

import (
	"github.com/spf13/cobra"

	"github.com/perbu/webidlparse/internal/config"
)

// Global flags available to all subcommands.
var (
	configFile          string
	trivia              bool
	allowNestedTypedefs bool
	outputFormat        string
)

// NewRootCmd creates the root command for the webidlparse CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webidlparse",
		Short: "webidlparse - parse Web IDL source files into an AST",
		Long: `webidlparse tokenises and parses Web IDL source text into an AST of
interface, dictionary, namespace, enum, typedef, and callback definitions.`,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file of default options")
	cmd.PersistentFlags().BoolVar(&trivia, "trivia", false, "attach whitespace/comment trivia to the AST")
	cmd.PersistentFlags().BoolVar(&allowNestedTypedefs, "allow-nested-typedefs", false, "permit typedef members inside interface bodies")
	cmd.PersistentFlags().StringVar(&outputFormat, "output", "", `output format, "json" or "text" (default from --config, else "json")`)

	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadEffectiveConfig merges --config file defaults with any flags the
// user set explicitly on the invoking command; explicit flags win.
func loadEffectiveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("trivia") {
		cfg.Trivia = trivia
	}
	if cmd.Flags().Changed("allow-nested-typedefs") {
		cfg.AllowNestedTypedefs = allowNestedTypedefs
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputFormat = outputFormat
	}

	return cfg, nil
}

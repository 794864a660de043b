package cli

import (
	"github.com/spf13/cobra"

	"github.com/turtacn/MolScreen/internal/config"
)

// rootOptions carries flags shared by all subcommands.
type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCmd builds the molscreen command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "molscreen",
		Short: "Drug-likeness and ADMET screening for small molecules",
		Long: `MolScreen screens small molecules given as SMILES strings: it resolves
physicochemical properties through remote ADMET prediction services with a
local fallback, evaluates Lipinski, Veber and Egan drug-likeness rules, and
labels ADMET risk endpoints.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"path to YAML config file (default: environment variables only)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"override log level (debug|info|warn|error)")

	root.AddCommand(
		newServeCmd(opts),
		newScreenCmd(opts),
		newExamplesCmd(),
		newVersionCmd(),
	)
	return root
}

// loadConfig resolves configuration from the --config file or environment,
// applying CLI flag overrides.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, nil
}

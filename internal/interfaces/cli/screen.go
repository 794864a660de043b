package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/turtacn/MolScreen/internal/infrastructure/monitoring/logging"
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

func newScreenCmd(opts *rootOptions) *cobra.Command {
	var (
		source  string
		asJSON  bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "screen <SMILES>",
		Short: "Screen one molecule and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			// One-shot runs stay quiet unless asked otherwise.
			if opts.logLevel == "" {
				cfg.Log.Level = "error"
			}

			logCfg := logging.LogConfig{Level: cfg.Log.Level, Format: "console"}
			logger, err := logging.NewLogger(logCfg)
			if err != nil {
				return err
			}

			svc, err := BuildOfflineService(cfg, logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			report, err := svc.Screen(ctx, mtypes.ScreeningRequest{
				SMILES: args[0],
				Source: source,
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "",
		"pin a single data source (admetlab3|admetlab2|pubchem|local|demo)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the raw report as JSON")
	cmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "overall screening deadline")
	return cmd
}

func printReport(cmd *cobra.Command, r *mtypes.ScreeningReport) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Molecule   %s", r.NormalizedSMILES)
	if r.MolecularFormula != "" {
		fmt.Fprintf(out, "  (%s)", r.MolecularFormula)
	}
	fmt.Fprintf(out, "\nSource     %s\n", r.Source)
	for _, w := range r.Warnings {
		fmt.Fprintf(out, "Warning    %s: %s\n", w.Source, w.Message)
	}

	p := r.Properties
	fmt.Fprintf(out, "\nProperties\n")
	fmt.Fprintf(out, "  MW %.2f g/mol   LogP %.2f   TPSA %.1f\n", p.MolecularWeight, p.LogP, p.TPSA)
	fmt.Fprintf(out, "  HBD %d   HBA %d   RotB %d   rings %d (%d aromatic)\n",
		p.HBondDonors, p.HBondAcceptors, p.RotatableBonds, p.RingCount, p.AromaticRings)

	fmt.Fprintf(out, "\nRules\n")
	for _, rule := range []mtypes.RuleReport{r.Lipinski, r.Veber, r.Egan} {
		fmt.Fprintf(out, "  %-9s %s\n", rule.RuleSet, ruleVerdict(rule))
	}

	fmt.Fprintf(out, "\nADMET\n")
	for _, label := range r.ADMET.Labels {
		suffix := ""
		if label.Heuristic {
			suffix = " (descriptor heuristic)"
		}
		fmt.Fprintf(out, "  %-15s %-12s %s%s\n", label.Endpoint, label.Level, label.Verdict, suffix)
	}
}

func ruleVerdict(r mtypes.RuleReport) string {
	switch {
	case r.Passes:
		return "passes"
	case r.Acceptable:
		return "acceptable (1 violation)"
	default:
		return fmt.Sprintf("fails (%d violations: %s)", r.Violations, failedChecks(r))
	}
}

func failedChecks(r mtypes.RuleReport) string {
	var names []string
	for _, c := range r.Checks {
		if !c.Passed {
			names = append(names, c.Name)
		}
	}
	return strings.Join(names, ", ")
}

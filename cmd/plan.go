package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bwalloc/bwalloc/alloc"
	"github.com/bwalloc/bwalloc/alloc/trace"
)

var (
	planSpecPath  string
	planTraceOut  string
	planReportOut string
)

// planCmd loads a PlanSpec YAML file, allocates and prints the table.
// Optionally writes a per-decision trace (JSON or CSV by extension) and a
// JSON report of the full result.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Allocate from a YAML plan file",
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := alloc.LoadPlanSpec(planSpecPath)
		if err != nil {
			return err
		}
		claims, err := spec.BuildClaims()
		if err != nil {
			return err
		}

		result, err := alloc.Plan(claims, spec.Capacity)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(result.Claims) == 0 {
			fmt.Fprintln(out, "No claims to allocate.")
		} else {
			result.WriteTable(out)
		}

		if planTraceOut != "" {
			if err := writeTrace(alloc.TraceOf(&result), planTraceOut); err != nil {
				return err
			}
			logrus.Infof("Wrote allocation trace to %s", planTraceOut)
		}
		if planReportOut != "" {
			if err := writeReport(&result, planReportOut); err != nil {
				return err
			}
			logrus.Infof("Wrote report to %s", planReportOut)
		}
		return nil
	},
}

// writeTrace writes the trace as CSV when the path ends in .csv, JSON
// otherwise.
func writeTrace(t *trace.AllocationTrace, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer f.Close()
	if strings.HasSuffix(path, ".csv") {
		return t.WriteCSV(f)
	}
	return t.WriteJSON(f)
}

func init() {
	planCmd.Flags().StringVar(&planSpecPath, "spec", "", "Path to PlanSpec YAML file")
	planCmd.Flags().StringVar(&planTraceOut, "trace-out", "", "Write per-claim decision trace (JSON, or CSV if path ends in .csv)")
	planCmd.Flags().StringVar(&planReportOut, "report-out", "", "Write full result as JSON")
	_ = planCmd.MarkFlagRequired("spec")
	rootCmd.AddCommand(planCmd)
}

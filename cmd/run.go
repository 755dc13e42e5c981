package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bwalloc/bwalloc/alloc"
)

var runQuiet bool

// runCmd reads a plan interactively from stdin, mirroring the classic
// prompt-driven tool: capacity, claim count, then one claim at a time.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Read a plan from stdin and allocate",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		prompts := io.Writer(out)
		if runQuiet {
			prompts = io.Discard
		}

		reader := alloc.NewPlanReader(cmd.InOrStdin(), prompts)
		capacity, claims, err := reader.ReadPlan()
		if err != nil {
			return err
		}
		if len(claims) == 0 {
			fmt.Fprintln(out, "No claims to allocate.")
			return nil
		}

		result, err := alloc.Plan(claims, capacity)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		result.WriteTable(out)
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runQuiet, "quiet", false, "Suppress input prompts (for piped input)")
	rootCmd.AddCommand(runCmd)
}

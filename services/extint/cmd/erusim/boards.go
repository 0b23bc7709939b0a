package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"eru-extint-go/services/extint/internal/platform"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List the board profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, p := range platform.Profiles {
			fmt.Fprintf(w, "%-20s eru%d etl%d pin %-6s ogu%d irq %d (%s) prio %d %s/%d bits\n",
				p.Name, p.Trigger.Input.Unit, p.ETL, p.Trigger.Input.Pin, p.OGU,
				p.IRQ, p.Vector, p.Priority, p.Encoding, p.PrioBits)
		}
		return nil
	},
}

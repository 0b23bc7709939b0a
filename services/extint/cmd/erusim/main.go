// Command erusim runs the external interrupt line against a simulated ERU
// and NVIC, driven by a pulse count, a feed file, or a live bench
// generator on a serial port.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"eru-extint-go/x/logx"
)

var rootCmd = &cobra.Command{
	Use:           "erusim",
	Short:         "Simulate the ERU external interrupt line on the host",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var board string

func init() {
	rootCmd.PersistentFlags().StringVarP(&board, "board", "b", "kit_xmc14_boot_001", "board profile to simulate")
	rootCmd.AddCommand(runCmd, boardsCmd, regsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logx.Warn("erusim:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"eru-extint-go/drivers/nvic"
	"eru-extint-go/services/extint"
	"eru-extint-go/services/extint/internal/platform"
	"eru-extint-go/x/logx"
)

var regsCmd = &cobra.Command{
	Use:   "regs",
	Short: "Configure the line and dump the resulting register state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := platform.ByName(board)
		if err != nil {
			return err
		}
		logx.SetOutput(cmd.ErrOrStderr())
		hw := platform.NewSimHardware(p)
		if _, err := extint.Setup(extint.Config{
			Profile: p,
			BringUp: hw.BringUp,
			ERU:     hw.ERU.Unit,
			NVIC:    hw.NVIC,
			LED:     hw.LED,
		}); err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		words := hw.ERU.Memory().Snapshot()
		fmt.Fprintf(w, "EXISEL    %08x\n", words[0])
		for ch := 0; ch < 4; ch++ {
			fmt.Fprintf(w, "EXICON%d   %08x\n", ch, words[4+ch])
		}
		for ch := 0; ch < 4; ch++ {
			fmt.Fprintf(w, "EXOCON%d   %08x\n", ch, words[8+ch])
		}

		etl := hw.ERU.ETL(p.ETL)
		fmt.Fprintf(w, "etl%d: sel a=%d b=%d source=%#x edge=%s flag=%s pe=%t ocs=%d\n",
			p.ETL, etl.SelectA, etl.SelectB, uint8(etl.Source), etl.Edge,
			etl.StatusFlag, etl.OutputTrigger, etl.OutputChannel)
		ogu := hw.ERU.OGU(p.OGU)
		fmt.Fprintf(w, "ogu%d: gp=%s iss=%d geen=%t ipen=%04b\n",
			p.OGU, ogu.ServiceRequest, ogu.PeripheralTrigger, ogu.PatternDetection, ogu.PatternInputs)

		irq := nvic.IRQ(p.IRQ)
		raw := hw.NVIC.Priority(irq)
		fmt.Fprintf(w, "nvic irq %d: priority %#02x preempt %d enabled=%t\n",
			irq, raw, nvic.PreemptLevel(raw, hw.NVIC.PriorityGrouping(), p.PrioBits), hw.NVIC.Enabled(irq))
		return nil
	},
}

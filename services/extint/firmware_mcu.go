//go:build tinygo && (kit_xmc14_boot_001 || kit_xmc47_relax_v1)

package extint

import (
	"context"

	"eru-extint-go/services/extint/internal/platform"
)

// RunSelected runs the line for the board compiled into this image.
func RunSelected(ctx context.Context) error {
	p, _ := platform.Selected()
	hw := platform.NewHardware()
	return Run(ctx, Config{
		Profile: p,
		BringUp: hw.BringUp,
		ERU:     hw.ERU,
		NVIC:    hw.NVIC,
		LED:     hw.LED,
	})
}

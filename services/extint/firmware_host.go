//go:build !tinygo

package extint

import (
	"context"

	"eru-extint-go/errcode"
	"eru-extint-go/services/extint/internal/platform"
)

// RunSelected runs the line for the board compiled into this build. On host
// builds the board is simulated and nothing drives its input.
func RunSelected(ctx context.Context) error {
	p, ok := platform.Selected()
	if !ok {
		return errcode.New("extint.run", errcode.NoBoard, "build with a board tag")
	}
	hw := platform.NewSimHardware(p)
	return Run(ctx, Config{
		Profile: p,
		BringUp: hw.BringUp,
		ERU:     hw.ERU.Unit,
		NVIC:    hw.NVIC,
		LED:     hw.LED,
	})
}

//go:build tinygo && !(kit_xmc14_boot_001 || kit_xmc47_relax_v1)

package extint

import (
	"context"

	"eru-extint-go/errcode"
)

func RunSelected(context.Context) error {
	return errcode.New("extint.run", errcode.NoBoard, "build with a board tag")
}

//go:build tinygo

package extint

import "time"

func defaultHalt() {
	for {
		time.Sleep(time.Hour)
	}
}

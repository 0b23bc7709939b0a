package eru

import "eru-extint-go/errcode"

// XMC4 system control unit: peripheral reset and clock gating. ERU0 is
// always clocked and out of reset; ERU1 is held in reset with its clock
// gated until released here.
const (
	BaseXMC4SCU = 0x50004000

	scuPRSTAT0  = 0x40C
	scuPRCLR0   = 0x414
	scuCGATCLR0 = 0x648

	scuERU1 = 1 << 16 // ERU1 bit in PRxxx0 and CGATxxx0

	releasePolls = 1000
)

// ReleaseERU1 ungates the ERU1 clock and deasserts its reset. It must run
// before any ERU1 register access; writes to a unit held in reset are lost.
func ReleaseERU1(scu Registers) error {
	scu.Store(scuCGATCLR0, scuERU1)
	scu.Store(scuPRCLR0, scuERU1)
	for i := 0; i < releasePolls; i++ {
		if scu.Load(scuPRSTAT0)&scuERU1 == 0 {
			return nil
		}
	}
	return errcode.New("eru.release", errcode.BringUpFailed, "eru1 held in reset")
}

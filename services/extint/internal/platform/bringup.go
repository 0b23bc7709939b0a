package platform

import "eru-extint-go/drivers/eru"

const portPDISC = 0x60 // XMC port pin function decision control

// enableDigitalInput connects the digital input path of one pin. On XMC1
// analog-capable ports (P2) it is disconnected after reset, and the ERU
// then sees a constant level.
func enableDigitalInput(port eru.Registers, pin uint8) {
	port.Store(portPDISC, port.Load(portPDISC)&^(1<<(pin&15)))
}

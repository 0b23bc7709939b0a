//go:build kit_xmc14_boot_001

package platform

import "eru-extint-go/types"

func selectedProfile() (types.Profile, bool) { return XMC14Boot001, true }

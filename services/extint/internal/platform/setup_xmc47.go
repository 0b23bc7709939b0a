//go:build kit_xmc47_relax_v1 && !kit_xmc14_boot_001

package platform

import "eru-extint-go/types"

func selectedProfile() (types.Profile, bool) { return XMC47RelaxV1, true }

//go:build !(kit_xmc14_boot_001 || kit_xmc47_relax_v1)

package platform

import "eru-extint-go/types"

func selectedProfile() (types.Profile, bool) { return types.Profile{}, false }

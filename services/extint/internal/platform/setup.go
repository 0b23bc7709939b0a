package platform

import "eru-extint-go/types"

// Selected returns the profile compiled into this build. Host builds
// without a board tag have none.
func Selected() (types.Profile, bool) { return selectedProfile() }

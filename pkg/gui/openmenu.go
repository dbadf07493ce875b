package gui

import (
	"fmt"

	ns "github.com/go-mclib/protocol/java_protocol/net_structures"
)

// OpenMenu pairs a viewer identity with the menu they have open. It is a
// plain comparable value for session bookkeeping, usable as a map key.
type OpenMenu struct {
	Menu   *Menu
	Viewer ns.UUID
}

func (o OpenMenu) String() string {
	return fmt.Sprintf("OpenMenu[menu=%v, viewer=%x]", o.Menu, o.Viewer)
}

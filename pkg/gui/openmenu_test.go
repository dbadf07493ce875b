package gui

import (
	"testing"

	ns "github.com/go-mclib/protocol/java_protocol/net_structures"
)

func TestOpenMenuEquality(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)
	other := mgr.NewMenu("Other", 1)

	steve, _ := ns.UUIDFromString("069a79f4-44e9-4726-a5be-fca90e38aaf5")
	alex, _ := ns.UUIDFromString("61699b2e-d327-4a01-9f1e-0ea8c3f06bc6")

	a := OpenMenu{Menu: menu, Viewer: steve}
	b := OpenMenu{Menu: menu, Viewer: steve}
	if a != b {
		t.Error("identical sessions are not equal")
	}

	if a == (OpenMenu{Menu: menu, Viewer: alex}) {
		t.Error("sessions with different viewers compare equal")
	}
	if a == (OpenMenu{Menu: other, Viewer: steve}) {
		t.Error("sessions with different menus compare equal")
	}
}

func TestOpenMenuAsMapKey(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)

	steve, _ := ns.UUIDFromString("069a79f4-44e9-4726-a5be-fca90e38aaf5")

	sessions := map[OpenMenu]int{}
	sessions[OpenMenu{Menu: menu, Viewer: steve}]++
	sessions[OpenMenu{Menu: menu, Viewer: steve}]++

	if got := sessions[OpenMenu{Menu: menu, Viewer: steve}]; got != 2 {
		t.Errorf("session count = %d, want 2", got)
	}
	if len(sessions) != 1 {
		t.Errorf("distinct sessions = %d, want 1", len(sessions))
	}
}

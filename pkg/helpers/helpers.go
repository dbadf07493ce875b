package helpers

import (
	"flag"
	"log"

	"github.com/NicksCraft/ParadoxLib/pkg/gui"
	"github.com/NicksCraft/ParadoxLib/pkg/termhost"
)

// Flags holds common CLI flags for example plugins.
type Flags struct {
	Player  string
	Verbose bool
}

// RegisterFlags registers the standard CLI flags on the default flag set.
func RegisterFlags(f *Flags) {
	flag.StringVar(&f.Player, "p", "Steve", "player name shown in the terminal host")
	flag.BoolVar(&f.Verbose, "v", false, "verbose logging")
}

// NewTerminalSetup creates a terminal host and a menu manager from parsed
// flags, with the manager's logger and events wired into the host.
func NewTerminalSetup(plugin string, f Flags) (*gui.Manager, *termhost.Host) {
	host := termhost.New(f.Player)
	host.Verbose = f.Verbose

	mgr := gui.NewManager(plugin, host)
	mgr.Logger = log.New(host.LogWriter(), "", log.LstdFlags)
	mgr.Attach(host.Dispatcher())

	return mgr, host
}

// Run shows the terminal host and blocks until the player quits, logging
// errors.
func Run(mgr *gui.Manager, host *termhost.Host) {
	if err := host.Run(); err != nil {
		mgr.Logger.Println(err)
	}
}

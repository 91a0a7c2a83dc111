// Future Gadget #16: labt, a worldline-accurate countdown timer.

package main

import (
	"os"

	"github.com/future-gadget-lab/labt/internal/audio/speaker"
	"github.com/future-gadget-lab/labt/internal/cli"
	"github.com/future-gadget-lab/labt/internal/lifecycle"
	"github.com/future-gadget-lab/labt/internal/notify"
)

func main() {
	deps := lifecycle.Deps{
		OpenAlarm: openSpeaker,
	}
	os.Exit(cli.ExitCode(cli.Execute(deps)))
}

// openSpeaker acquires the default output device
func openSpeaker() (notify.AlarmPlayer, error) {
	p, err := speaker.Open()
	if err != nil {
		return nil, err
	}
	return p, nil
}

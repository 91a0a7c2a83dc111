// Package audio holds the bundled alarm clip.
//
// The clip is a WAV file embedded in the binary so that playback never
// depends on files being present at run time. Decoding is pure Go; the
// speaker subpackage owns the output device.
package audio

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

//go:embed assets/alarm.wav
var alarmWAV []byte

// Alarm returns a fresh decoder positioned at the start of the alarm clip.
// The caller must Close the streamer.
func Alarm() (beep.StreamSeekCloser, beep.Format, error) {
	s, format, err := wav.Decode(bytes.NewReader(alarmWAV))
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("decoding alarm clip: %w", err)
	}
	return s, format, nil
}

package terminal

import (
	"testing"
	"time"

	"github.com/automoto/buildyguy/components"
	"github.com/gopxl/beep"
)

func TestCueLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		kind     components.EventKind
		duration time.Duration
	}{
		{components.EventJumped, 80 * time.Millisecond},
		{components.EventLanded, 50 * time.Millisecond},
		{components.EventPlatformSpawned, 40 * time.Millisecond},
		{components.EventDied, 400 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			cue := Cue(tt.kind, rate)
			if cue == nil {
				t.Fatal("no cue")
			}

			buf := make([][2]float64, 256)
			total := 0
			for {
				n, ok := cue.Stream(buf)
				for i := 0; i < n; i++ {
					if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][1] < -1 || buf[i][1] > 1 {
						t.Fatalf("sample %d out of range: %v", total+i, buf[i])
					}
				}
				total += n
				if !ok || n == 0 {
					break
				}
			}

			want := rate.N(tt.duration)
			if total < want-len(buf) || total > want {
				t.Errorf("streamed %d samples, want about %d", total, want)
			}
		})
	}
}

func TestCueUnknownIsSilent(t *testing.T) {
	if Cue(components.EventKind(99), beep.SampleRate(44100)) != nil {
		t.Error("unknown event has a cue")
	}
}

func TestSoundsIgnoreEventsBeforeInit(t *testing.T) {
	s := NewSounds()
	s.Play([]components.Event{{Kind: components.EventJumped}})
	s.Close()
}

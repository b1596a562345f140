package terminal

import (
	"sync"
	"time"

	"github.com/automoto/buildyguy/components"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

// cues are the tones played for each event, mixed together.
var cues = map[components.EventKind][]tone{
	components.EventJumped:          {{660, 80 * time.Millisecond}},
	components.EventLanded:          {{220, 50 * time.Millisecond}},
	components.EventPlatformSpawned: {{880, 40 * time.Millisecond}, {1320, 40 * time.Millisecond}},
	components.EventDied:            {{110, 400 * time.Millisecond}, {82.5, 400 * time.Millisecond}},
}

// Cue returns the sound for kind at rate, or nil when kind is silent.
func Cue(kind components.EventKind, rate beep.SampleRate) beep.Streamer {
	tones, ok := cues[kind]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(rate, t.freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(rate.N(t.duration), sine))
	}
	if len(parts) == 0 {
		return nil
	}

	// Halve per tone so mixed cues stay within [-1, 1].
	return &effects.Volume{
		Streamer: beep.Mix(parts...),
		Base:     2,
		Volume:   -float64(len(parts)),
	}
}

// Sounds plays event cues on the default audio device.
type Sounds struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSounds() *Sounds {
	return &Sounds{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Until it succeeds Play does nothing.
func (s *Sounds) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues the cue of every event.
func (s *Sounds) Play(events []components.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	for _, ev := range events {
		cue := Cue(ev.Kind, sampleRate)
		if cue == nil {
			continue
		}
		speaker.Lock()
		s.mixer.Add(cue)
		speaker.Unlock()
	}
}

func (s *Sounds) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

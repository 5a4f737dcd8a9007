package audio

// Instrument is anything that can be mixed into the output stream one
// frame at a time. Once IsFinished reports true, NextFreq returns 0
// forever.
type Instrument interface {
	NextFreq(sampleRate, beatPerMin float32) float32
	IsFinished() bool
}

// Voice is a live, currently-sounding instance of a Sound. Voices are
// created and destroyed on the audio goroutine only.
type Voice struct {
	clock   SampleClock
	freq    float32
	effects []Effect
}

func newVoice(s Sound, sampleRate, beatPerMin float32) *Voice {
	dur := CalcDuration(sampleRate, beatPerMin, s.Duration)
	return &Voice{
		clock:   NewSampleClock(dur),
		freq:    s.Note.Frequency(s.Octave),
		effects: s.Effects,
	}
}

// nextFreq returns the base frequency plus the summed effect
// modulations at the current clock. The clock is not advanced here;
// the instrument ticks it once the frame's sample has been taken.
func (v *Voice) nextFreq() float32 {
	freq := v.freq
	for _, e := range v.effects {
		freq += e.Modulation(v.clock.Clock())
	}
	return freq
}

// Options carries the oscillator and envelope shared by all voices of
// one instrument.
type Options struct {
	Osc Oscillator
	Env Envelope
}

// NewOptions returns the default instrument voicing.
func NewOptions() Options {
	return Options{Osc: AnalogSaw{}, Env: NewEnvelope()}
}

// Synth reads a score of chords front to back, spawning one voice per
// sound when a chord is reached. The first voice of the most recently
// spawned chord drives advancement: when it ends, the next chord is
// popped. Sounds of unequal duration may keep ringing into the next
// chord.
type Synth struct {
	score         []Chord
	voices        []*Voice
	firstVoice    *Voice
	firstFinished bool
	finished      bool
	opts          Options
}

// NewSynth builds an instrument over a normalized score.
func NewSynth(opts Options, score []Chord) *Synth {
	return &Synth{
		score:         score,
		opts:          opts,
		firstFinished: true,
	}
}

// NextFreq produces the instrument's contribution to one output frame.
func (s *Synth) NextFreq(sampleRate, beatPerMin float32) float32 {
	if s.firstFinished && !s.finished {
		if len(s.score) == 0 {
			if len(s.voices) == 0 {
				s.finished = true
			}
		} else {
			chord := s.score[0]
			s.score = s.score[1:]
			for i, snd := range chord {
				v := newVoice(snd, sampleRate, beatPerMin)
				if i == 0 {
					s.firstVoice = v
				}
				s.voices = append(s.voices, v)
			}
			s.firstFinished = false
		}
	}
	if s.finished {
		return 0
	}

	var total float32
	for _, v := range s.voices {
		freq := v.nextFreq()
		clock := v.clock.Clock()
		total += s.opts.Osc.Oscillate(freq, sampleRate, clock) * s.opts.Env.Amplitude(clock)
		v.clock.Tick()
	}

	if s.firstVoice != nil && s.firstVoice.clock.HasEnded() {
		s.firstFinished = true
	}

	// sweep ended voices in place
	live := s.voices[:0]
	for _, v := range s.voices {
		if !v.clock.HasEnded() {
			live = append(live, v)
		}
	}
	s.voices = live

	return total
}

// IsFinished reports whether the score is exhausted and no voices
// remain.
func (s *Synth) IsFinished() bool {
	return s.finished
}
